package messaging

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrUnsupported is returned when a feature is not supported by the selected broker.
var ErrUnsupported = errors.New("messaging: unsupported operation")

// Messaging is a broker-agnostic client that can publish and consume messages.
type Messaging interface {
	io.Closer

	Publisher
	Consumer
}

// Publisher publishes messages to a destination (topic or subject).
type Publisher interface {
	Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error)
}

// Consumer consumes messages from a source (topic or subject).
//
// Consume blocks until ctx is cancelled or the client is closed.
type Consumer interface {
	Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error
}

// Handler processes a received message.
//
// With auto-ack enabled a nil error acks and a non-nil error requeues.
type Handler func(ctx context.Context, msg Message) error

// OutgoingMessage represents a broker-agnostic message to be published.
type OutgoingMessage struct {
	// Body is the message payload.
	Body []byte
	// Headers are forwarded when the broker supports them (NATS).
	Headers map[string]string
	// Delay is used for deferred delivery (NSQ only).
	Delay time.Duration
}

// PublishResult carries broker metadata about a publish.
type PublishResult struct {
	// Destination is the topic or subject used.
	Destination string
	// Timestamp is when the broker accepted the message.
	Timestamp time.Time
}

// Message is a broker-agnostic received message.
type Message interface {
	// Body returns the message payload.
	Body() []byte
	// Header returns a header value, or "" when absent or unsupported.
	Header(key string) string
	// ID returns the broker message ID when the broker assigns one.
	ID() string
	// Source returns the topic or subject the message came from.
	Source() string
	// Timestamp returns the broker or receive timestamp.
	Timestamp() time.Time
	// Ack acknowledges successful processing.
	Ack(ctx context.Context) error
	// Nack requests redelivery.
	Nack(ctx context.Context) error
}
