package contactform

import "strings"

// Field is a text input whose value can be read and replaced.
type Field interface {
	Value() string
	SetValue(v string)
}

// Control is the submit button.
type Control interface {
	Label() string
	SetLabel(label string)
	SetDisabled(disabled bool)
}

// Form groups the elements the handler works with.
type Form struct {
	Name    Field
	Email   Field
	Message Field
	Submit  Control
}

// Submission is the trimmed content of a form at submit time.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Read returns the current field values trimmed of surrounding whitespace.
func (f Form) Read() Submission {
	return Submission{
		Name:    strings.TrimSpace(f.Name.Value()),
		Email:   strings.TrimSpace(f.Email.Value()),
		Message: strings.TrimSpace(f.Message.Value()),
	}
}

// Reset empties all three fields.
func (f Form) Reset() {
	f.Name.SetValue("")
	f.Email.SetValue("")
	f.Message.SetValue("")
}

func (f Form) valid() bool {
	return f.Name != nil && f.Email != nil && f.Message != nil && f.Submit != nil
}
