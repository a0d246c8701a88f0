package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	nsq "github.com/nsqio/go-nsq"
)

var (
	// ErrNSQTopicRequired is returned when the topic is empty.
	ErrNSQTopicRequired = errors.New("messaging: nsq topic is required")
	// ErrNSQChannelRequired is returned when the channel is empty.
	ErrNSQChannelRequired = errors.New("messaging: nsq channel is required")
	// ErrNSQProducerAddrRequired is returned when the producer address is missing.
	ErrNSQProducerAddrRequired = errors.New("messaging: nsq producer address is required")
	// ErrNSQConsumerAddrsRequired is returned when no NSQD/lookupd consumer addresses are configured.
	ErrNSQConsumerAddrsRequired = errors.New("messaging: nsq consumer nsqd/lookupd addresses are required")
)

// NSQConfig configures the NSQ implementation.
type NSQConfig struct {
	// ProducerAddr is the NSQD address for publishing.
	ProducerAddr string
	// ConsumerNSQDAddrs lists NSQD addresses for consumers.
	ConsumerNSQDAddrs []string
	// ConsumerLookupdAddrs lists lookupd addresses for consumers; preferred when set.
	ConsumerLookupdAddrs []string
}

// NSQ is a messaging implementation backed by NSQ.
type NSQ struct {
	producer *nsq.Producer
	nsqd     []string
	lookupd  []string

	mu        sync.Mutex
	consumers []*nsq.Consumer
	closed    bool
}

// NewNSQ constructs an NSQ messaging client.
func NewNSQ(cfg NSQConfig) (*NSQ, error) {
	n := &NSQ{
		nsqd:    nonEmpty(cfg.ConsumerNSQDAddrs),
		lookupd: nonEmpty(cfg.ConsumerLookupdAddrs),
	}

	if cfg.ProducerAddr != "" {
		p, err := nsq.NewProducer(cfg.ProducerAddr, nsq.NewConfig())
		if err != nil {
			return nil, fmt.Errorf("messaging: nsq new producer: %w", err)
		}
		p.SetLoggerLevel(nsq.LogLevelError)
		n.producer = p
	}

	return n, nil
}

// Close stops NSQ consumers and the producer.
func (n *NSQ) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	consumers := n.consumers
	n.consumers = nil
	n.mu.Unlock()

	for _, c := range consumers {
		stopNSQConsumer(c)
	}
	if n.producer != nil {
		n.producer.Stop()
	}
	return nil
}

// Publish sends a message to an NSQ topic. Headers are not supported by NSQ
// and are dropped.
func (n *NSQ) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrNSQTopicRequired
	}
	if n.producer == nil {
		return PublishResult{}, ErrNSQProducerAddrRequired
	}

	var err error
	if msg.Delay > 0 {
		err = n.producer.DeferredPublish(destination, msg.Delay, msg.Body)
	} else {
		err = n.producer.Publish(destination, msg.Body)
	}
	if err != nil {
		return PublishResult{}, fmt.Errorf("messaging: nsq publish: %w", err)
	}

	return PublishResult{Destination: destination, Timestamp: time.Now()}, nil
}

// Consume reads topic on the channel given by WithGroup and blocks until ctx
// is cancelled or the consumer stops.
func (n *NSQ) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if source == "" {
		return ErrNSQTopicRequired
	}
	if handler == nil {
		return ErrHandlerRequired
	}
	if len(n.nsqd) == 0 && len(n.lookupd) == 0 {
		return ErrNSQConsumerAddrsRequired
	}

	co := newConsumeOptions(opts...)
	if co.group == "" {
		return ErrNSQChannelRequired
	}

	cfg := nsq.NewConfig()
	cfg.MaxInFlight = max(co.maxInFlight, co.concurrency)

	consumer, err := nsq.NewConsumer(source, co.group, cfg)
	if err != nil {
		return fmt.Errorf("messaging: nsq new consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelError)
	consumer.AddConcurrentHandlers(nsq.HandlerFunc(func(m *nsq.Message) error {
		m.DisableAutoResponse()
		return handle(ctx, "nsq", handler, &nsqMessage{topic: source, msg: m}, co.autoAck)
	}), co.concurrency)

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return io.ErrClosedPipe
	}
	n.consumers = append(n.consumers, consumer)
	n.mu.Unlock()

	if len(n.lookupd) > 0 {
		err = consumer.ConnectToNSQLookupds(n.lookupd)
	} else {
		err = consumer.ConnectToNSQDs(n.nsqd)
	}
	if err != nil {
		stopNSQConsumer(consumer)
		return fmt.Errorf("messaging: nsq connect: %w", err)
	}

	select {
	case <-ctx.Done():
		stopNSQConsumer(consumer)
		return ctx.Err()
	case <-consumer.StopChan:
		return nil
	}
}

func stopNSQConsumer(consumer *nsq.Consumer) {
	consumer.Stop()
	<-consumer.StopChan
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

type nsqMessage struct {
	topic string
	msg   *nsq.Message
	done  atomic.Bool
}

func (m *nsqMessage) Body() []byte         { return m.msg.Body }
func (m *nsqMessage) Header(string) string { return "" }
func (m *nsqMessage) ID() string           { return fmt.Sprintf("%x", m.msg.ID) }
func (m *nsqMessage) Source() string       { return m.topic }
func (m *nsqMessage) Timestamp() time.Time { return time.Unix(0, m.msg.Timestamp) }
func (m *nsqMessage) responded() bool      { return m.done.Load() }

func (m *nsqMessage) Ack(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !m.done.Swap(true) {
		m.msg.Finish()
	}
	return nil
}

func (m *nsqMessage) Nack(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !m.done.Swap(true) {
		m.msg.Requeue(-1)
	}
	return nil
}
