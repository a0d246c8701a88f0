package mail

import (
	"context"
	"io"
	"slices"
)

// Message is one outgoing email.
type Message struct {
	// From overrides the transport's default sender.
	From string
	// ReplyTo is where replies go; for contact messages it is the visitor.
	ReplyTo string
	To      []string
	Cc      []string
	Bcc     []string
	Subject string
	// TextBody and HTMLBody may both be set, producing multipart/alternative.
	TextBody string
	HTMLBody string
}

// Recipients returns every envelope recipient: To, then Cc, then Bcc.
func (m Message) Recipients() []string {
	return slices.Concat(m.To, m.Cc, m.Bcc)
}

// Mail sends messages through some transport.
type Mail interface {
	io.Closer
	Send(ctx context.Context, msg Message) error
}
