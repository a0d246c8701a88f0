package messaging

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessage struct {
	acks, nacks int
	done        bool
}

func (m *fakeMessage) Body() []byte         { return []byte("{}") }
func (m *fakeMessage) Header(string) string { return "" }
func (m *fakeMessage) ID() string           { return "1" }
func (m *fakeMessage) Source() string       { return "topic" }
func (m *fakeMessage) Timestamp() time.Time { return time.Time{} }
func (m *fakeMessage) responded() bool      { return m.done }

func (m *fakeMessage) Ack(context.Context) error {
	m.acks++
	m.done = true
	return nil
}

func (m *fakeMessage) Nack(context.Context) error {
	m.nacks++
	m.done = true
	return nil
}

func TestHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("auto ack on success", func(t *testing.T) {
		msg := &fakeMessage{}
		err := handle(ctx, "test", func(context.Context, Message) error { return nil }, msg, true)
		require.NoError(t, err)
		assert.Equal(t, 1, msg.acks)
		assert.Zero(t, msg.nacks)
	})

	t.Run("auto nack on error", func(t *testing.T) {
		msg := &fakeMessage{}
		boom := errors.New("boom")
		err := handle(ctx, "test", func(context.Context, Message) error { return boom }, msg, true)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, msg.nacks)
	})

	t.Run("panic is recovered and nacked", func(t *testing.T) {
		msg := &fakeMessage{}
		err := handle(ctx, "test", func(context.Context, Message) error { panic("kaboom") }, msg, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "kaboom")
		assert.Equal(t, 1, msg.nacks)
	})

	t.Run("handler settled itself", func(t *testing.T) {
		msg := &fakeMessage{}
		err := handle(ctx, "test", func(ctx context.Context, m Message) error { return m.Ack(ctx) }, msg, true)
		require.NoError(t, err)
		assert.Equal(t, 1, msg.acks)
	})

	t.Run("manual ack leaves message alone", func(t *testing.T) {
		msg := &fakeMessage{}
		_ = handle(ctx, "test", func(context.Context, Message) error { return errors.New("x") }, msg, false)
		assert.Zero(t, msg.acks+msg.nacks)
	})
}

func TestNewConsumeOptions(t *testing.T) {
	co := newConsumeOptions(WithConcurrency(0), WithGroup("mail"), nil, WithAutoAck(true), WithMaxInFlight(8))

	assert.Equal(t, 1, co.concurrency)
	assert.Equal(t, "mail", co.group)
	assert.True(t, co.autoAck)
	assert.Equal(t, 8, co.maxInFlight)
}

func TestNewFromDriver(t *testing.T) {
	t.Run("unknown", func(t *testing.T) {
		_, err := NewFromDriver(context.Background(), "amqp", FactoryOptions{})
		assert.ErrorIs(t, err, ErrUnknownDriver)
	})

	t.Run("nats requires url", func(t *testing.T) {
		_, err := NewFromDriver(context.Background(), " NATS ", FactoryOptions{})
		assert.ErrorIs(t, err, ErrNATSURLRequired)
	})

	t.Run("nsq publish without producer", func(t *testing.T) {
		m, err := NewFromDriver(context.Background(), "nsq", FactoryOptions{})
		require.NoError(t, err)
		t.Cleanup(func() { _ = m.Close() })

		_, err = m.Publish(context.Background(), "topic", OutgoingMessage{Body: []byte("x")})
		assert.ErrorIs(t, err, ErrNSQProducerAddrRequired)

		err = m.Consume(context.Background(), "topic", func(context.Context, Message) error { return nil })
		assert.ErrorIs(t, err, ErrNSQConsumerAddrsRequired)
	})

	t.Run("kafka requires brokers", func(t *testing.T) {
		_, err := NewFromDriver(context.Background(), "kafka", FactoryOptions{})
		assert.ErrorIs(t, err, ErrKafkaBrokersRequired)
	})

	t.Run("pubsub requires project", func(t *testing.T) {
		_, err := NewFromDriver(context.Background(), "pubsub", FactoryOptions{})
		assert.ErrorIs(t, err, ErrPubSubProjectIDRequired)
	})
}

func TestKafka(t *testing.T) {
	k, err := NewKafka(KafkaConfig{Brokers: []string{"localhost:9092"}})
	require.NoError(t, err)

	t.Run("consume requires group", func(t *testing.T) {
		err := k.Consume(context.Background(), "topic", func(context.Context, Message) error { return nil })
		assert.ErrorIs(t, err, ErrKafkaGroupRequired)
	})

	t.Run("delay unsupported", func(t *testing.T) {
		_, err := k.Publish(context.Background(), "topic", OutgoingMessage{Delay: time.Second})
		assert.ErrorIs(t, err, ErrUnsupported)
	})

	t.Run("closed", func(t *testing.T) {
		require.NoError(t, k.Close())
		require.NoError(t, k.Close())

		_, err := k.Publish(context.Background(), "topic", OutgoingMessage{Body: []byte("x")})
		assert.ErrorIs(t, err, io.ErrClosedPipe)
	})
}

func TestKafkaMessage_HeaderAndID(t *testing.T) {
	m := &kafkaMessage{msg: kafka.Message{
		Topic:     "contact",
		Partition: 2,
		Offset:    41,
		Headers: []kafka.Header{
			{Key: "cID", Value: []byte("old")},
			{Key: "cID", Value: []byte("new")},
		},
	}}

	assert.Equal(t, "new", m.Header("cID"))
	assert.Empty(t, m.Header("missing"))
	assert.Equal(t, "contact/2/41", m.ID())
}
