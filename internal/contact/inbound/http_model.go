package inbound

// HeaderIdempotencyKey lets a client retry a submission without a second delivery.
const HeaderIdempotencyKey = "Idempotency-Key"

type SendMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SendMessageResponse is the wire shape the contact form reads; success is
// always present.
type SendMessageResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Error   map[string]string `json:"error,omitempty"`
}
