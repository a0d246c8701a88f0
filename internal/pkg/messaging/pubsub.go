package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"google.golang.org/api/option"
)

var (
	// ErrPubSubProjectIDRequired is returned when the project id is missing.
	ErrPubSubProjectIDRequired = errors.New("messaging: pubsub project id is required")
	// ErrPubSubTopicRequired is returned when the topic or subscription is empty.
	ErrPubSubTopicRequired = errors.New("messaging: pubsub topic is required")
)

// PubSubConfig configures the Google Pub/Sub implementation. The client
// honours PUBSUB_EMULATOR_HOST on its own.
type PubSubConfig struct {
	ProjectID     string
	ClientOptions []option.ClientOption
}

// PubSub is a messaging implementation backed by Google Pub/Sub. Consume
// receives from the subscription named by WithGroup, or by source when no
// group is set.
type PubSub struct {
	client *pubsub.Client

	mu         sync.Mutex
	publishers map[string]*pubsub.Publisher
	closed     bool
}

// NewPubSub creates the client.
func NewPubSub(ctx context.Context, cfg PubSubConfig) (*PubSub, error) {
	if cfg.ProjectID == "" {
		return nil, ErrPubSubProjectIDRequired
	}

	c, err := pubsub.NewClient(ctx, cfg.ProjectID, cfg.ClientOptions...)
	if err != nil {
		return nil, fmt.Errorf("messaging: pubsub client: %w", err)
	}

	return &PubSub{client: c, publishers: map[string]*pubsub.Publisher{}}, nil
}

// Close flushes publishers and closes the client.
func (p *PubSub) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	pubs := p.publishers
	p.publishers = nil
	p.mu.Unlock()

	for _, pub := range pubs {
		pub.Stop()
	}
	return p.client.Close()
}

// Publish sends a message and waits for the server id. Headers become
// message attributes.
func (p *PubSub) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrPubSubTopicRequired
	}
	if msg.Delay > 0 {
		return PublishResult{}, ErrUnsupported
	}

	pub, err := p.publisher(destination)
	if err != nil {
		return PublishResult{}, err
	}

	if _, err := pub.Publish(ctx, &pubsub.Message{Data: msg.Body, Attributes: msg.Headers}).Get(ctx); err != nil {
		return PublishResult{}, fmt.Errorf("messaging: pubsub publish: %w", err)
	}

	return PublishResult{Destination: destination, Timestamp: time.Now()}, nil
}

// Consume blocks in Receive until ctx is cancelled.
func (p *PubSub) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if source == "" {
		return ErrPubSubTopicRequired
	}
	if handler == nil {
		return ErrHandlerRequired
	}

	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return io.ErrClosedPipe
	}

	co := newConsumeOptions(opts...)
	subscription := source
	if co.group != "" {
		subscription = co.group
	}

	sub := p.client.Subscriber(subscription)
	sub.ReceiveSettings.NumGoroutines = co.concurrency
	if co.maxInFlight > 0 {
		sub.ReceiveSettings.MaxOutstandingMessages = co.maxInFlight
	}

	err := sub.Receive(ctx, func(ctx context.Context, m *pubsub.Message) {
		//nolint:errcheck // handler errors are settled through ack/nack
		handle(ctx, "pubsub", handler, &pubsubMessage{msg: m, subscription: subscription}, co.autoAck)
	})
	if err != nil {
		return fmt.Errorf("messaging: pubsub receive: %w", err)
	}
	return ctx.Err()
}

func (p *PubSub) publisher(topic string) (*pubsub.Publisher, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, io.ErrClosedPipe
	}
	if pub, ok := p.publishers[topic]; ok {
		return pub, nil
	}
	pub := p.client.Publisher(topic)
	p.publishers[topic] = pub
	return pub, nil
}

type pubsubMessage struct {
	msg          *pubsub.Message
	subscription string
	done         atomic.Bool
}

func (m *pubsubMessage) Body() []byte           { return m.msg.Data }
func (m *pubsubMessage) Header(k string) string { return m.msg.Attributes[k] }
func (m *pubsubMessage) ID() string             { return m.msg.ID }
func (m *pubsubMessage) Source() string         { return m.subscription }
func (m *pubsubMessage) Timestamp() time.Time   { return m.msg.PublishTime }
func (m *pubsubMessage) responded() bool        { return m.done.Load() }

func (m *pubsubMessage) Ack(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !m.done.Swap(true) {
		m.msg.Ack()
	}
	return nil
}

func (m *pubsubMessage) Nack(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !m.done.Swap(true) {
		m.msg.Nack()
	}
	return nil
}
