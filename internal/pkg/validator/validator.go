package validator

import "strings"

// Validator validates a struct using its `validate` tags.
type Validator interface {
	Validate(data any) error
}

// IsLooseEmail reports whether s contains both an "@" and a ".".
//
// The rule is deliberately permissive: contact forms accept anything a person
// could plausibly type as an address and leave deliverability to the mail
// provider.
func IsLooseEmail(s string) bool {
	return strings.Contains(s, "@") && strings.Contains(s, ".")
}
