// Package report sends the scheduled daily order summary to admins.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/sevenam/diamondstore/internal/notify"
	"github.com/sevenam/diamondstore/internal/store"
)

const sendTimeout = 30 * time.Second

type Source interface {
	GetStats() store.Stats
	Settings() store.SystemSettings
	CountOrdersSince(t time.Time) int
}

type Reporter struct {
	source   Source
	notifier notify.Notifier
	logger   *zap.Logger
	timeNow  func() time.Time

	cron *cron.Cron
}

func New(source Source, notifier notify.Notifier, logger *zap.Logger) *Reporter {
	return &Reporter{
		source:   source,
		notifier: notifier,
		logger:   logger.With(zap.String("component", "report")),
		timeNow:  time.Now,
	}
}

// Start schedules the summary using a standard five-field cron spec.
func (r *Reporter) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, r.run); err != nil {
		return fmt.Errorf("invalid report schedule %q: %w", spec, err)
	}
	r.cron = c
	c.Start()
	r.logger.Info("daily report scheduled", zap.String("schedule", spec))
	return nil
}

// Stop waits for a running report to finish or ctx to expire.
func (r *Reporter) Stop(ctx context.Context) {
	if r.cron == nil {
		return
	}
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
		r.logger.Warn("report shutdown interrupted")
	}
}

func (r *Reporter) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if err := r.Send(ctx); err != nil {
		r.logger.Error("failed to send daily report", zap.Error(err))
	}
}

// Send builds the summary for the 24 hours before now and delivers it.
func (r *Reporter) Send(ctx context.Context) error {
	now := r.timeNow()
	stats := r.source.GetStats()
	recent := r.source.CountOrdersSince(now.Add(-24 * time.Hour))
	settings := r.source.Settings()

	r.logger.Info("daily summary",
		zap.Int("orders_24h", recent),
		zap.Int("total_orders", stats.TotalOrders),
		zap.Int("pending_orders", stats.PendingOrders),
		zap.Int64("total_revenue", stats.TotalRevenue),
		zap.Int64("pending_revenue", stats.PendingRevenue))

	return r.notifier.Notify(ctx, notify.DailySummaryMessage(settings.SiteName, now, stats, recent))
}
