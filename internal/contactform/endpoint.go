package contactform

import (
	"errors"
	"net/url"
)

// ErrEndpoint is returned when an endpoint cannot be resolved to an absolute URL.
var ErrEndpoint = errors.New("contactform: invalid endpoint")

// ResolveEndpoint resolves endpoint against the page URL base, so relative
// paths like "/send-message" target the origin that served the page.
func ResolveEndpoint(base, endpoint string) (string, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	ref, err := url.Parse(endpoint)
	if err != nil {
		return "", errors.Join(ErrEndpoint, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}

	b, err := url.Parse(base)
	if err != nil || !b.IsAbs() {
		return "", ErrEndpoint
	}

	return b.ResolveReference(ref).String(), nil
}
