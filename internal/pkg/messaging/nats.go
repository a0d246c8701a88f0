package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats.go"
)

var (
	// ErrNATSSubjectRequired is returned when the subject is empty.
	ErrNATSSubjectRequired = errors.New("messaging: nats subject is required")
	// ErrNATSURLRequired is returned when the NATS server URL is missing.
	ErrNATSURLRequired = errors.New("messaging: nats url is required")
	// ErrHandlerRequired is returned when Consume is called with a nil handler.
	ErrHandlerRequired = errors.New("messaging: handler is required")
)

// NATSConfig configures the NATS implementation.
type NATSConfig struct {
	// URL is the NATS server address.
	URL string
	// Options are passed to the NATS client.
	Options []nats.Option
}

// NATS is a messaging implementation backed by NATS core subjects.
type NATS struct {
	conn *nats.Conn

	mu     sync.Mutex
	subs   []*nats.Subscription
	closed bool
}

// NewNATS connects to the NATS server.
func NewNATS(cfg NATSConfig) (*NATS, error) {
	if cfg.URL == "" {
		return nil, ErrNATSURLRequired
	}

	conn, err := nats.Connect(cfg.URL, cfg.Options...)
	if err != nil {
		return nil, fmt.Errorf("messaging: nats connect: %w", err)
	}

	return &NATS{conn: conn}, nil
}

// Close drains subscriptions and closes the NATS connection.
func (n *NATS) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	subs := n.subs
	n.subs = nil
	n.mu.Unlock()

	var closeErr error
	for _, sub := range subs {
		closeErr = errors.Join(closeErr, sub.Drain())
	}
	closeErr = errors.Join(closeErr, n.conn.Drain())
	n.conn.Close()

	return closeErr
}

// Publish sends a message to a NATS subject.
func (n *NATS) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrNATSSubjectRequired
	}
	if msg.Delay > 0 {
		return PublishResult{}, ErrUnsupported
	}

	nmsg := nats.NewMsg(destination)
	nmsg.Data = msg.Body
	for k, v := range msg.Headers {
		if k != "" {
			nmsg.Header.Set(k, v)
		}
	}

	if err := n.conn.PublishMsg(nmsg); err != nil {
		return PublishResult{}, fmt.Errorf("messaging: nats publish: %w", err)
	}
	if err := n.conn.Flush(); err != nil {
		return PublishResult{}, fmt.Errorf("messaging: nats flush: %w", err)
	}

	return PublishResult{Destination: destination, Timestamp: time.Now()}, nil
}

// Consume subscribes to a NATS subject (queue group when WithGroup is set) and
// blocks until ctx is cancelled.
func (n *NATS) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if source == "" {
		return ErrNATSSubjectRequired
	}
	if handler == nil {
		return ErrHandlerRequired
	}

	co := newConsumeOptions(opts...)
	msgCh := make(chan *nats.Msg, co.concurrency)

	sub, err := n.conn.QueueSubscribe(source, co.group, func(m *nats.Msg) {
		select {
		case msgCh <- m:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return fmt.Errorf("messaging: nats subscribe: %w", err)
	}

	var wg sync.WaitGroup
	for range co.concurrency {
		wg.Go(func() {
			for m := range msgCh {
				//nolint:errcheck // handler errors are settled through ack/nack
				handle(ctx, "nats", handler, &natsMessage{msg: m, receivedAt: time.Now()}, co.autoAck)
			}
		})
	}

	stop := func() error {
		uerr := sub.Drain()
		close(msgCh)
		wg.Wait()
		return uerr
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return errors.Join(io.ErrClosedPipe, stop())
	}
	n.subs = append(n.subs, sub)
	n.mu.Unlock()

	if err := n.conn.Flush(); err != nil {
		return errors.Join(fmt.Errorf("messaging: nats flush: %w", err), stop())
	}

	<-ctx.Done()
	return errors.Join(ctx.Err(), stop())
}

type natsMessage struct {
	msg        *nats.Msg
	receivedAt time.Time
	done       atomic.Bool
}

func (m *natsMessage) Body() []byte           { return m.msg.Data }
func (m *natsMessage) Header(k string) string { return m.msg.Header.Get(k) }
func (m *natsMessage) ID() string             { return "" }
func (m *natsMessage) Source() string         { return m.msg.Subject }
func (m *natsMessage) Timestamp() time.Time   { return m.receivedAt }
func (m *natsMessage) responded() bool        { return m.done.Load() }

func (m *natsMessage) Ack(ctx context.Context) error {
	return m.settle(ctx, m.msg.Ack)
}

func (m *natsMessage) Nack(ctx context.Context) error {
	return m.settle(ctx, m.msg.Nak)
}

// settle runs fn once. Core NATS messages have no ack channel, so the
// unsupported errors are ignored.
func (m *natsMessage) settle(ctx context.Context, fn func(...nats.AckOpt) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.done.Swap(true) {
		return nil
	}
	if err := fn(); err != nil && !errors.Is(err, nats.ErrMsgNoReply) && !errors.Is(err, nats.ErrMsgNotBound) {
		return err
	}
	return nil
}
