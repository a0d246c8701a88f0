package contactform

import (
	"github.com/shandysiswandi/folio/internal/pkg/goerror"
	"github.com/shandysiswandi/folio/internal/pkg/validator"
)

// User-facing texts.
const (
	MsgFillAllFields  = "Please fill in all fields."
	MsgInvalidEmail   = "Please enter a valid email address."
	MsgSent           = "Message sent successfully! I will get back to you soon."
	MsgSendFailed     = "Failed to send message. Please try again later."
	LabelSending      = "Sending..."
	fieldRequiredText = "required"
)

// Validate checks that every field is present and that the email contains both
// an "@" and a ".". No further address syntax is enforced.
func Validate(s Submission) error {
	var missing []string
	if s.Name == "" {
		missing = append(missing, "name", fieldRequiredText)
	}
	if s.Email == "" {
		missing = append(missing, "email", fieldRequiredText)
	}
	if s.Message == "" {
		missing = append(missing, "message", fieldRequiredText)
	}
	if len(missing) > 0 {
		return goerror.NewInvalidInputMsg(MsgFillAllFields, missing...)
	}

	if !validator.IsLooseEmail(s.Email) {
		return goerror.NewInvalidInputMsg(MsgInvalidEmail, "email", "invalid")
	}

	return nil
}
