package messaging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
)

var (
	// ErrKafkaTopicRequired is returned when the topic is empty.
	ErrKafkaTopicRequired = errors.New("messaging: kafka topic is required")
	// ErrKafkaBrokersRequired is returned when no brokers are configured.
	ErrKafkaBrokersRequired = errors.New("messaging: kafka brokers are required")
	// ErrKafkaGroupRequired is returned when Consume is called without WithGroup.
	ErrKafkaGroupRequired = errors.New("messaging: kafka consumer group is required")
)

const kafkaMaxFetchBytes = 10e6

// KafkaConfig configures the Kafka implementation.
type KafkaConfig struct {
	Brokers []string
	// Dialer is used by readers; nil means kafka.DefaultDialer.
	Dialer *kafka.Dialer
}

// Kafka is a messaging implementation backed by kafka-go. Consumers always
// join a group; Ack commits the offset and Nack leaves it for redelivery.
type Kafka struct {
	brokers []string
	dialer  *kafka.Dialer

	mu      sync.Mutex
	writers map[string]*kafka.Writer
	readers map[*kafka.Reader]struct{}
	closed  bool
}

// NewKafka builds the client; brokers are dialled lazily.
func NewKafka(cfg KafkaConfig) (*Kafka, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrKafkaBrokersRequired
	}

	return &Kafka{
		brokers: append([]string(nil), cfg.Brokers...),
		dialer:  cfg.Dialer,
		writers: map[string]*kafka.Writer{},
		readers: map[*kafka.Reader]struct{}{},
	}, nil
}

// Close closes every reader and writer.
func (k *Kafka) Close() error {
	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		return nil
	}
	k.closed = true
	writers, readers := k.writers, k.readers
	k.writers, k.readers = nil, nil
	k.mu.Unlock()

	var closeErr error
	for r := range readers {
		closeErr = errors.Join(closeErr, r.Close())
	}
	for _, w := range writers {
		closeErr = errors.Join(closeErr, w.Close())
	}
	return closeErr
}

// Publish writes a message to a Kafka topic, headers included.
func (k *Kafka) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrKafkaTopicRequired
	}
	if msg.Delay > 0 {
		return PublishResult{}, ErrUnsupported
	}

	w, err := k.writer(destination)
	if err != nil {
		return PublishResult{}, err
	}

	kmsg := kafka.Message{Value: msg.Body, Time: time.Now()}
	for key, v := range msg.Headers {
		if key != "" {
			kmsg.Headers = append(kmsg.Headers, kafka.Header{Key: key, Value: []byte(v)})
		}
	}

	if err := w.WriteMessages(ctx, kmsg); err != nil {
		return PublishResult{}, fmt.Errorf("messaging: kafka publish: %w", err)
	}

	return PublishResult{Destination: destination, Timestamp: kmsg.Time}, nil
}

// Consume reads source as the consumer group set by WithGroup and blocks
// until ctx is cancelled or fetching fails.
func (k *Kafka) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if source == "" {
		return ErrKafkaTopicRequired
	}
	if handler == nil {
		return ErrHandlerRequired
	}

	co := newConsumeOptions(opts...)
	if co.group == "" {
		return ErrKafkaGroupRequired
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  k.brokers,
		GroupID:  co.group,
		Topic:    source,
		MaxBytes: kafkaMaxFetchBytes,
		Dialer:   k.dialer,
	})
	if err := k.track(reader); err != nil {
		return errors.Join(err, reader.Close())
	}

	msgCh := make(chan kafka.Message, co.concurrency)
	var fetchErr error
	go func() {
		defer close(msgCh)
		for {
			m, err := reader.FetchMessage(ctx)
			if err != nil {
				fetchErr = err
				return
			}
			msgCh <- m
		}
	}()

	var wg sync.WaitGroup
	for range co.concurrency {
		wg.Go(func() {
			for m := range msgCh {
				//nolint:errcheck // handler errors are settled through ack/nack
				handle(ctx, "kafka", handler, &kafkaMessage{reader: reader, msg: m}, co.autoAck)
			}
		})
	}
	wg.Wait()

	closeErr := k.untrack(reader)
	if fetchErr == nil || errors.Is(fetchErr, context.Canceled) || errors.Is(fetchErr, io.EOF) {
		return errors.Join(ctx.Err(), closeErr)
	}
	return errors.Join(fmt.Errorf("messaging: kafka consume: %w", fetchErr), closeErr)
}

func (k *Kafka) writer(topic string) (*kafka.Writer, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return nil, io.ErrClosedPipe
	}
	if w, ok := k.writers[topic]; ok {
		return w, nil
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(k.brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
	}
	k.writers[topic] = w
	return w, nil
}

func (k *Kafka) track(r *kafka.Reader) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return io.ErrClosedPipe
	}
	k.readers[r] = struct{}{}
	return nil
}

// untrack closes r unless Close already did.
func (k *Kafka) untrack(r *kafka.Reader) error {
	k.mu.Lock()
	_, owned := k.readers[r]
	delete(k.readers, r)
	k.mu.Unlock()

	if !owned {
		return nil
	}
	return r.Close()
}

type kafkaMessage struct {
	reader *kafka.Reader
	msg    kafka.Message
	done   atomic.Bool
}

func (m *kafkaMessage) Body() []byte         { return m.msg.Value }
func (m *kafkaMessage) Source() string       { return m.msg.Topic }
func (m *kafkaMessage) Timestamp() time.Time { return m.msg.Time }
func (m *kafkaMessage) responded() bool      { return m.done.Load() }

func (m *kafkaMessage) ID() string {
	return m.msg.Topic + "/" + strconv.Itoa(m.msg.Partition) + "/" + strconv.FormatInt(m.msg.Offset, 10)
}

// Header returns the last value for key, matching how producers overwrite.
func (m *kafkaMessage) Header(key string) string {
	for i := len(m.msg.Headers) - 1; i >= 0; i-- {
		if m.msg.Headers[i].Key == key {
			return string(m.msg.Headers[i].Value)
		}
	}
	return ""
}

func (m *kafkaMessage) Ack(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.done.Swap(true) {
		return nil
	}
	return m.reader.CommitMessages(ctx, m.msg)
}

// Nack leaves the offset uncommitted so the group sees the message again
// after a rebalance or restart.
func (m *kafkaMessage) Nack(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.done.Store(true)
	return nil
}
