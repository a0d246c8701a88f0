//go:build js && wasm

// Package dom adapts browser elements to the contactform interfaces.
package dom

import (
	"errors"
	"fmt"
	"strconv"
	"syscall/js"
	"time"

	"github.com/shandysiswandi/folio/internal/contactform"
)

// Input is a text input or textarea.
type Input struct{ v js.Value }

func (i Input) Value() string     { return i.v.Get("value").String() }
func (i Input) SetValue(s string) { i.v.Set("value", s) }

// Button is the form's submit button.
type Button struct{ v js.Value }

func (b Button) Label() string { return b.v.Get("textContent").String() }

func (b Button) SetLabel(label string) { b.v.Set("textContent", label) }

func (b Button) SetDisabled(disabled bool) {
	b.v.Set("disabled", disabled)
	if disabled {
		b.v.Get("style").Set("opacity", "0.7")
		return
	}
	b.v.Get("style").Set("opacity", "")
}

// Slot renders feedback messages inside the form.
type Slot struct {
	doc  js.Value
	form js.Value
}

// Clear removes every .form-message element in the document.
func (s Slot) Clear() {
	nodes := s.doc.Call("querySelectorAll", ".form-message")
	for i := nodes.Length() - 1; i >= 0; i-- {
		nodes.Index(i).Call("remove")
	}
}

// Append adds a styled message as the form's last child.
func (s Slot) Append(msg contactform.FeedbackMessage) contactform.Element {
	div := s.doc.Call("createElement", "div")
	div.Set("className", "form-message "+string(msg.Kind))
	div.Set("textContent", msg.Text)
	div.Call("setAttribute", "role", "status")

	style := div.Get("style")
	kind := msg.Kind.Style()
	style.Set("padding", "1rem")
	style.Set("borderRadius", "8px")
	style.Set("marginTop", "1rem")
	style.Set("textAlign", "center")
	style.Set("fontWeight", "600")
	style.Set("backgroundColor", kind.Background)
	style.Set("color", kind.Color)
	style.Set("border", kind.Border)

	s.form.Call("appendChild", div)
	return Message{v: div}
}

// Message is one rendered feedback element.
type Message struct{ v js.Value }

func (m Message) FadeOut(d time.Duration) {
	style := m.v.Get("style")
	style.Set("transition", "opacity "+strconv.FormatFloat(d.Seconds(), 'f', -1, 64)+"s ease")
	style.Set("opacity", "0")
}

func (m Message) Remove() { m.v.Call("remove") }

// Document wraps the global document.
type Document struct{ v js.Value }

// CurrentDocument returns the page's document.
func CurrentDocument() Document {
	return Document{v: js.Global().Get("document")}
}

// MailtoHref returns the href of the first mailto: link on the page.
func (d Document) MailtoHref() (string, bool) {
	a := d.v.Call("querySelector", `a[href^="mailto:"]`)
	if !a.Truthy() {
		return "", false
	}
	href := a.Call("getAttribute", "href")
	if !href.Truthy() {
		return "", false
	}
	return href.String(), true
}

// Window wraps the global window.
type Window struct{ v js.Value }

// CurrentWindow returns the page's window.
func CurrentWindow() Window {
	return Window{v: js.Global()}
}

// Href returns the page URL.
func (w Window) Href() string {
	return w.v.Get("location").Get("href").String()
}

// Open asks the browser to open target in a new browsing context.
func (w Window) Open(target string) (err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			var jsErr js.Error
			if e, ok := rvr.(error); ok && errors.As(e, &jsErr) {
				err = jsErr
				return
			}
			err = fmt.Errorf("dom: window.open: %v", rvr)
		}
	}()

	w.v.Call("open", target, "_blank")
	return nil
}
