package main

import (
	"context"
	"encoding/json"
	"errors"
	"os/signal"
	"syscall"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/sevenam/diamondstore/internal/config"
	"github.com/sevenam/diamondstore/internal/logger"
	"github.com/sevenam/diamondstore/internal/store"
)

const groupID = "activity-log-consumer-group"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.MustLoad()
	log := logger.New(cfg.LogFile)
	defer log.Sync()

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal("KAFKA_BROKERS is not set")
	}

	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        groupID,
		Topic:          cfg.Kafka.Topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Error("failed to close kafka reader", zap.Error(err))
		}
	}()

	log.Info("consumer started", zap.String("topic", cfg.Kafka.Topic), zap.Strings("brokers", cfg.Kafka.Brokers))

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Info("consumer stopped")
				return
			}
			log.Error("failed to read message", zap.Error(err))
			time.Sleep(5 * time.Second)
			continue
		}

		var entry store.ActivityLog
		if err := json.Unmarshal(m.Value, &entry); err != nil {
			log.Warn("skipping malformed activity event",
				zap.Int64("offset", m.Offset), zap.ByteString("value", m.Value), zap.Error(err))
			continue
		}

		log.Info("activity",
			zap.String("id", entry.ID),
			zap.String("admin", entry.AdminName),
			zap.String("action", entry.Action),
			zap.String("details", entry.Details),
			zap.String("type", string(entry.Type)),
			zap.String("severity", string(entry.Severity)),
			zap.Time("timestamp", entry.Timestamp),
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset))
	}
}
