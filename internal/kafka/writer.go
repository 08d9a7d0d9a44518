package kafka

import (
	"context"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaProducer sends messages through a kafka-go writer. The topic is set
// per message, so one producer can serve several topics.
type KafkaProducer struct {
	writer messageWriter
	logger *zap.Logger
}

func NewKafkaProducer(brokers []string, logger *zap.Logger) *KafkaProducer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	logger.Info("initialized kafka producer", zap.Strings("brokers", brokers))
	return &KafkaProducer{writer: w, logger: logger}
}

func (p *KafkaProducer) SendMessage(ctx context.Context, msg Message) error {
	headers := make([]kafkago.Header, 0, len(msg.Headers))
	for k, v := range msg.Headers {
		headers = append(headers, kafkago.Header{Key: k, Value: []byte(v)})
	}

	err := p.writer.WriteMessages(ctx, kafkago.Message{
		Topic:   msg.Topic,
		Key:     msg.Key,
		Value:   msg.Value,
		Headers: headers,
	})
	if err != nil {
		return fmt.Errorf("failed to write message to %s: %w", msg.Topic, err)
	}
	return nil
}

func (p *KafkaProducer) Close() error {
	p.logger.Info("closing kafka producer")
	return p.writer.Close()
}
