//go:generate mockgen -source ./producer.go -destination=./mocks/producer.go -package=mock_kafka

package kafka

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"
)

type Message struct {
	Topic   string
	Key     []byte
	Value   []byte
	Headers map[string]string
}

type Producer interface {
	SendMessage(ctx context.Context, msg Message) error
	Close() error
}

// ConsoleProducer prints messages instead of sending them; used when no
// brokers are configured.
type ConsoleProducer struct {
	mu     sync.Mutex
	out    io.Writer
	logger *zap.Logger
}

func NewConsoleProducer(logger *zap.Logger) *ConsoleProducer {
	return newConsoleProducer(os.Stdout, logger)
}

func newConsoleProducer(out io.Writer, logger *zap.Logger) *ConsoleProducer {
	logger.Info("initialized console producer")
	return &ConsoleProducer{out: out, logger: logger}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		p.logger.Warn("console producer cancelled", zap.String("topic", msg.Topic), zap.ByteString("key", msg.Key))
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.out, "\n--- KAFKA_PRODUCER (CONSOLE) ---\n")
	fmt.Fprintf(p.out, "Topic: %s\n", msg.Topic)
	fmt.Fprintf(p.out, "Key: %s\n", msg.Key)
	keys := make([]string, 0, len(msg.Headers))
	for k := range msg.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(p.out, "Header %s: %s\n", k, msg.Headers[k])
	}
	fmt.Fprintf(p.out, "Value: %s\n", msg.Value)
	fmt.Fprintf(p.out, "--- END KAFKA ---\n")
	return nil
}

func (p *ConsoleProducer) Close() error {
	p.logger.Info("closing console producer")
	return nil
}
