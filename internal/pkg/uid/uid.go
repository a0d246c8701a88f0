// Package uid generates identifiers for correlation ids, idempotency keys and
// contact messages.
package uid

// StringID generates opaque string identifiers.
type StringID interface {
	Generate() string
}

// NumberID generates time-ordered numeric identifiers.
type NumberID interface {
	Generate() int64
}
