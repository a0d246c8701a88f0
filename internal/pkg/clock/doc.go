// Package clock provides a tiny time abstraction.
//
// Production code should depend on the Clocker interface instead of calling
// time.Now() or time.AfterFunc directly. Business logic then becomes easy to
// test with Fake, which only moves forward when a test calls Advance.
package clock
