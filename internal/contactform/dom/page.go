//go:build js && wasm

package dom

import (
	"errors"
	"syscall/js"

	"github.com/shandysiswandi/folio/internal/contactform"
)

// ErrElementMissing is returned when the page lacks a contact form element.
var ErrElementMissing = errors.New("dom: contact form element missing")

// Page is the contact form found in the document.
type Page struct {
	Form  contactform.Form
	Slot  Slot
	form  js.Value
	funcs []js.Func
}

// FindPage looks up the form by id plus the #name, #email and #message fields
// and the submit button inside the form.
func FindPage(doc Document, formID string) (*Page, error) {
	form := doc.v.Call("getElementById", formID)
	if !form.Truthy() {
		return nil, ErrElementMissing
	}

	byID := func(id string) (js.Value, error) {
		el := doc.v.Call("getElementById", id)
		if !el.Truthy() {
			return js.Value{}, errors.Join(ErrElementMissing, errors.New("#"+id))
		}
		return el, nil
	}

	name, err := byID("name")
	if err != nil {
		return nil, err
	}
	email, err := byID("email")
	if err != nil {
		return nil, err
	}
	message, err := byID("message")
	if err != nil {
		return nil, err
	}

	button := form.Call("querySelector", `button[type="submit"]`)
	if !button.Truthy() {
		return nil, errors.Join(ErrElementMissing, errors.New(`button[type="submit"]`))
	}

	return &Page{
		Form: contactform.Form{
			Name:    Input{v: name},
			Email:   Input{v: email},
			Message: Input{v: message},
			Submit:  Button{v: button},
		},
		Slot: Slot{doc: doc.v, form: form},
		form: form,
	}, nil
}

// Data returns the form's data-<key> attribute, or "".
func (p *Page) Data(key string) string {
	v := p.form.Get("dataset").Get(key)
	if !v.Truthy() {
		return ""
	}
	return v.String()
}

// OnSubmit calls fn for every submit event after suppressing the browser's
// own form submission. fn runs on the event loop and must not block.
func (p *Page) OnSubmit(fn func()) {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		fn()
		return nil
	})
	p.funcs = append(p.funcs, cb)
	p.form.Call("addEventListener", "submit", cb)
}

// Release detaches listeners and frees their callbacks.
func (p *Page) Release() {
	for _, cb := range p.funcs {
		p.form.Call("removeEventListener", "submit", cb)
		cb.Release()
	}
	p.funcs = nil
}
