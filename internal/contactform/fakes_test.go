package contactform

import (
	"context"
	"sync"
	"time"
)

type fakeField struct {
	mu sync.Mutex
	v  string
}

func newField(v string) *fakeField { return &fakeField{v: v} }

func (f *fakeField) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.v
}

func (f *fakeField) SetValue(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.v = v
}

type fakeControl struct {
	mu       sync.Mutex
	label    string
	disabled bool
}

func (c *fakeControl) Label() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.label
}

func (c *fakeControl) SetLabel(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.label = label
}

func (c *fakeControl) SetDisabled(disabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disabled = disabled
}

func (c *fakeControl) state() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.label, c.disabled
}

type fakeElement struct {
	msg     FeedbackMessage
	fadedAt time.Duration
	faded   bool
	removed bool
}

func (e *fakeElement) FadeOut(d time.Duration) {
	e.faded = true
	e.fadedAt = d
}

func (e *fakeElement) Remove() { e.removed = true }

type fakeSurface struct {
	mu       sync.Mutex
	elements []*fakeElement
}

func (s *fakeSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.elements {
		e.removed = true
	}
}

func (s *fakeSurface) Append(msg FeedbackMessage) Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := &fakeElement{msg: msg}
	s.elements = append(s.elements, e)
	return e
}

func (s *fakeSurface) visible() []FeedbackMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []FeedbackMessage
	for _, e := range s.elements {
		if !e.removed {
			out = append(out, e.msg)
		}
	}
	return out
}

type fixture struct {
	name, email, message *fakeField
	button               *fakeControl
	surface              *fakeSurface
	form                 Form
}

func newFixture(name, email, message string) *fixture {
	f := &fixture{
		name:    newField(name),
		email:   newField(email),
		message: newField(message),
		button:  &fakeControl{label: "Send Message"},
		surface: &fakeSurface{},
	}
	f.form = Form{Name: f.name, Email: f.email, Message: f.message, Submit: f.button}
	return f
}

func (f *fixture) values() [3]string {
	return [3]string{f.name.Value(), f.email.Value(), f.message.Value()}
}

type countingStrategy struct {
	mu     sync.Mutex
	calls  int
	last   Submission
	result Result
	err    error
}

func (s *countingStrategy) Dispatch(_ context.Context, sub Submission) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.last = sub
	return s.result, s.err
}

func (s *countingStrategy) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type fixedID string

func (f fixedID) Generate() string { return string(f) }

type fakeLinks struct {
	href string
	ok   bool
}

func (l fakeLinks) MailtoHref() (string, bool) { return l.href, l.ok }

type fakeOpener struct {
	mu      sync.Mutex
	targets []string
	err     error
}

func (o *fakeOpener) Open(target string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.targets = append(o.targets, target)
	return o.err
}

func (o *fakeOpener) opened() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.targets...)
}
