package kafka

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func header(m kafka.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestMessageBuilder(t *testing.T) {
	msg := NewMessage().
		WithKey("booking-1").
		WithValue(map[string]string{"status": "pending"}).
		WithEventType("booking.created").
		WithSource("bookings").
		Build()

	assert.Equal(t, "booking-1", msg.Key)
	assert.NotEmpty(t, msg.GetEventID())
	assert.Equal(t, "booking.created", msg.GetEventType())
	assert.NotEmpty(t, msg.Headers[HeaderTimestamp])

	var payload map[string]string
	require.NoError(t, msg.DecodeValue(&payload))
	assert.Equal(t, "pending", payload["status"])
}

func TestPublish_WritesMessage(t *testing.T) {
	w := &fakeWriter{}
	p := NewProducerWithWriter(w, nil, "booking-events", "")

	msg := NewMessage().WithKey("b1").WithValue("x").WithEventType("booking.rated").Build()
	require.NoError(t, p.Publish(context.Background(), msg))

	require.Len(t, w.messages, 1)
	assert.Equal(t, "b1", string(w.messages[0].Key))
	assert.Equal(t, "booking.rated", header(w.messages[0], HeaderEventType))
}

func TestPublish_Validation(t *testing.T) {
	p := NewProducerWithWriter(&fakeWriter{}, nil, "t", "")

	assert.ErrorIs(t, p.Publish(context.Background(), Message{Value: []byte("x")}), ErrEmptyKey)
	assert.ErrorIs(t, p.Publish(context.Background(), Message{Key: "k"}), ErrEmptyValue)

	require.NoError(t, p.Close())
	assert.ErrorIs(t, p.Publish(context.Background(), Message{Key: "k", Value: []byte("x")}), ErrProducerClosed)
}

func TestPublish_FailureGoesToDLQ(t *testing.T) {
	primary := &fakeWriter{err: errors.New("broker unavailable")}
	dlq := &fakeWriter{}
	p := NewProducerWithWriter(primary, dlq, "booking-events", "booking-events-dlq")

	msg := NewMessage().WithKey("b1").WithValue("x").Build()
	err := p.Publish(context.Background(), msg)

	require.Error(t, err)
	require.Len(t, dlq.messages, 1)
	assert.Equal(t, "booking-events", header(dlq.messages[0], HeaderOriginalTopic))
	assert.Equal(t, "broker unavailable", header(dlq.messages[0], HeaderDLQError))
	assert.Empty(t, msg.Headers[HeaderDLQError], "caller's headers must not be mutated")
}

func TestPublish_MiddlewareOrder(t *testing.T) {
	p := NewProducerWithWriter(&fakeWriter{}, nil, "t", "")

	var calls []string
	for _, name := range []string{"first", "second"} {
		name := name
		p.Use(func(ctx context.Context, msg Message, next func(context.Context, Message) error) error {
			calls = append(calls, name)
			assert.Equal(t, "t", msg.Topic)
			return next(ctx, msg)
		})
	}

	require.NoError(t, p.Publish(context.Background(), NewMessage().WithKey("k").WithValue(1).Build()))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestClose_ClosesWriters(t *testing.T) {
	w, dlq := &fakeWriter{}, &fakeWriter{}
	p := NewProducerWithWriter(w, dlq, "t", "d")

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.True(t, w.closed)
	assert.True(t, dlq.closed)
}
