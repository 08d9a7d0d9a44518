// Package events streams activity log entries to the message bus in batches.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sevenam/diamondstore/internal/kafka"
	"github.com/sevenam/diamondstore/internal/metrics"
	"github.com/sevenam/diamondstore/internal/store"
)

const sendTimeout = 5 * time.Second

type Config struct {
	Topic        string
	Workers      int
	BatchSize    int
	FlushTimeout time.Duration
	MaxAttempts  int
}

type Manager struct {
	producer kafka.Producer
	logger   *zap.Logger
	cfg      Config

	inputChan  chan store.ActivityLog
	batchChan  chan []store.ActivityLog
	shutdownCh chan struct{}
	once       sync.Once

	// closed flips under closeMu so no entry is queued after the final drain
	closeMu sync.RWMutex
	closed  bool

	wg           sync.WaitGroup
	pendingMu    sync.Mutex
	pendingCount int
}

func NewManager(producer kafka.Producer, cfg Config, logger *zap.Logger) *Manager {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 3
	}
	return &Manager{
		producer:   producer,
		logger:     logger.With(zap.String("component", "events")),
		cfg:        cfg,
		inputChan:  make(chan store.ActivityLog, cfg.Workers*cfg.BatchSize*2),
		batchChan:  make(chan []store.ActivityLog, cfg.Workers*2),
		shutdownCh: make(chan struct{}),
	}
}

func (m *Manager) Start(ctx context.Context) {
	m.logger.Info("starting event manager",
		zap.Int("workers", m.cfg.Workers),
		zap.Int("batch_size", m.cfg.BatchSize),
		zap.Duration("flush_timeout", m.cfg.FlushTimeout))

	m.wg.Add(1)
	go m.runAggregator()

	for i := 0; i < m.cfg.Workers; i++ {
		m.wg.Add(1)
		go m.runWorker(i)
	}

	go m.monitorShutdown(ctx)
}

// Shutdown flushes queued entries, waits for the workers and closes the
// producer. Safe to call more than once.
func (m *Manager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		m.logger.Info("initiating event manager shutdown")
		m.closeMu.Lock()
		m.closed = true
		close(m.shutdownCh)
		m.closeMu.Unlock()

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Info("event manager shutdown completed")
		case <-ctx.Done():
			m.logger.Warn("event manager shutdown interrupted")
		}

		if err := m.producer.Close(); err != nil {
			m.logger.Error("failed to close producer", zap.Error(err))
		}
	})
}

func (m *Manager) monitorShutdown(ctx context.Context) {
	select {
	case <-ctx.Done():
		m.logger.Info("context cancellation detected")
		m.Shutdown(context.Background())
	case <-m.shutdownCh:
	}
}

// Hook adapts the manager to store.WithActivityHook.
func (m *Manager) Hook() func(store.ActivityLog) {
	return func(entry store.ActivityLog) {
		m.LogEntry(context.Background(), entry)
	}
}

func (m *Manager) LogEntry(ctx context.Context, entry store.ActivityLog) {
	m.updatePendingCount(1)

	m.closeMu.RLock()
	defer m.closeMu.RUnlock()
	if m.closed {
		m.emergencyLog(entry)
		return
	}

	// the aggregator keeps reading until shutdownCh closes, which needs closeMu
	select {
	case m.inputChan <- entry:
	case <-ctx.Done():
		m.emergencyLog(entry)
	}
}

func (m *Manager) Pending() int {
	m.pendingMu.Lock()
	defer m.pendingMu.Unlock()
	return m.pendingCount
}

func (m *Manager) runAggregator() {
	defer m.wg.Done()

	var (
		batch    []store.ActivityLog
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		// entries already accepted are still delivered
	drain:
		for {
			select {
			case entry := <-m.inputChan:
				batch = append(batch, entry)
			default:
				break drain
			}
		}
		if len(batch) > 0 {
			m.dispatchBatch(batch)
		}
		close(m.batchChan)
	}()

	for {
		select {
		case entry := <-m.inputChan:
			batch = append(batch, entry)
			if len(batch) >= m.cfg.BatchSize {
				m.dispatchBatch(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				if timer != nil {
					timer.Stop()
				}
				timer = time.NewTimer(m.cfg.FlushTimeout)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatchBatch(batch)
			batch = nil
			timeoutC = nil

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *Manager) dispatchBatch(batch []store.ActivityLog) {
	batchCopy := make([]store.ActivityLog, len(batch))
	copy(batchCopy, batch)

	select {
	case m.batchChan <- batchCopy:
	default:
		m.publishBatch(-1, batchCopy)
	}
}

func (m *Manager) runWorker(id int) {
	defer m.wg.Done()
	log := m.logger.With(zap.Int("worker", id))
	log.Debug("worker started")

	for batch := range m.batchChan {
		m.publishBatch(id, batch)
	}
	log.Debug("worker exiting")
}

func (m *Manager) publishBatch(workerID int, batch []store.ActivityLog) {
	defer m.updatePendingCount(-len(batch))

	for _, entry := range batch {
		if err := m.publish(entry); err != nil {
			metrics.EventsFailedTotal.Inc()
			m.logger.Error("failed to publish activity event",
				zap.Int("worker", workerID),
				zap.String("log_id", entry.ID),
				zap.Error(err))
			continue
		}
		metrics.EventsPublishedTotal.Inc()
	}
}

func (m *Manager) publish(entry store.ActivityLog) error {
	msg, err := newMessage(m.cfg.Topic, entry)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= m.cfg.MaxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		lastErr = m.producer.SendMessage(ctx, msg)
		cancel()
		if lastErr == nil {
			return nil
		}
		m.logger.Warn("send attempt failed",
			zap.String("log_id", entry.ID),
			zap.Int("attempt", attempt),
			zap.Error(lastErr))
	}
	return fmt.Errorf("giving up after %d attempts: %w", m.cfg.MaxAttempts, lastErr)
}

func newMessage(topic string, entry store.ActivityLog) (kafka.Message, error) {
	value, err := json.Marshal(entry)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal activity log %s: %w", entry.ID, err)
	}
	return kafka.Message{
		Topic: topic,
		Key:   []byte(entry.ID),
		Value: value,
		Headers: map[string]string{
			"event-id":   uuid.NewString(),
			"event-type": string(entry.Type),
		},
	}, nil
}

func (m *Manager) emergencyLog(entry store.ActivityLog) {
	defer m.updatePendingCount(-1)

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		m.logger.Error("failed to marshal emergency entry", zap.Error(err))
		return
	}
	m.logger.Warn("activity event not queued", zap.ByteString("entry", entryJSON))
}

func (m *Manager) updatePendingCount(delta int) {
	m.pendingMu.Lock()
	defer m.pendingMu.Unlock()
	m.pendingCount += delta
}
