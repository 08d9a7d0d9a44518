package kafka

import (
	"bytes"
	"context"
	"errors"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConsoleProducer_SendMessage(t *testing.T) {
	var out bytes.Buffer
	p := newConsoleProducer(&out, zap.NewNop())

	err := p.SendMessage(context.Background(), Message{
		Topic:   "activity-logs",
		Key:     []byte("LOG1706788800000"),
		Value:   []byte(`{"action":"Order Created"}`),
		Headers: map[string]string{"event-id": "abc", "content-type": "application/json"},
	})
	require.NoError(t, err)

	printed := out.String()
	assert.Contains(t, printed, "Topic: activity-logs")
	assert.Contains(t, printed, "Key: LOG1706788800000")
	assert.Contains(t, printed, `Value: {"action":"Order Created"}`)
	assert.Less(t, bytes.Index(out.Bytes(), []byte("content-type")), bytes.Index(out.Bytes(), []byte("event-id")))
	assert.NoError(t, p.Close())
}

func TestConsoleProducer_CancelledContext(t *testing.T) {
	var out bytes.Buffer
	p := newConsoleProducer(&out, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.SendMessage(ctx, Message{Topic: "t"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type fakeWriter struct {
	written []kafkago.Message
	err     error
	closed  bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaProducer_SendMessage(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaProducer{writer: w, logger: zap.NewNop()}

	err := p.SendMessage(context.Background(), Message{
		Topic:   "activity-logs",
		Key:     []byte("LOG1"),
		Value:   []byte("{}"),
		Headers: map[string]string{"event-id": "abc"},
	})
	require.NoError(t, err)
	require.Len(t, w.written, 1)
	assert.Equal(t, "activity-logs", w.written[0].Topic)
	assert.Equal(t, []byte("LOG1"), w.written[0].Key)
	assert.Equal(t, []kafkago.Header{{Key: "event-id", Value: []byte("abc")}}, w.written[0].Headers)

	w.err = errors.New("broker down")
	err = p.SendMessage(context.Background(), Message{Topic: "activity-logs"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write message to activity-logs")

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}
