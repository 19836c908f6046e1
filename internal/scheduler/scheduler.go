// Package scheduler drives the periodic scan batches. A fine-grained timer
// fires every tick; a gate compares the current hour against the configured
// interval and skips unaligned ticks, realizing an "every N hours" cadence on
// top of an hourly primitive.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"riskmonitor/internal/config"
	"riskmonitor/internal/monitor"
	"riskmonitor/pkg/logger"
	"riskmonitor/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure the scheduler cadence and batch bounds.
type Options struct {
	// IntervalHours is the scan cadence; batches run only on ticks whose
	// hour is a multiple of it. Values below 1 behave as 1 (every tick).
	IntervalHours int
	// BatchSize caps how many active websites a single batch loads.
	BatchSize uint
	// TickInterval is the timer granularity. It defaults to one hour and is
	// only shortened in tests.
	TickInterval time.Duration
}

// NewOptions constructs an Options value from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		IntervalHours: cfg.Monitor.IntervalHours,
		BatchSize:     cfg.Monitor.BatchSize,
	}
}

// Scheduler enqueues one scan job per active website on every aligned tick.
// It owns no scan logic itself; the queue workers do the per-website work.
type Scheduler struct {
	options Options
	storage storage.Storage

	// now is the clock used by the tick gate, replaceable in tests.
	now func() time.Time
}

// New creates a scheduler backed by the given storage.
func New(strg storage.Storage, options Options) *Scheduler {
	if options.IntervalHours < 1 {
		options.IntervalHours = 1
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Hour
	}

	return &Scheduler{
		options: options,
		storage: strg,
		now:     time.Now,
	}
}

// Run blocks, firing ticks until the context is canceled. No tick failure is
// ever fatal: the timer keeps firing on the next cadence regardless of what
// happened during the previous one.
func (s *Scheduler) Run(ctx context.Context) {
	logger.Info(ctx, "scheduler enabled",
		zap.Int("intervalHours", s.options.IntervalHours),
		zap.Uint("batchSize", s.options.BatchSize))

	ticker := time.NewTicker(s.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "scheduler stopped")

			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs the cadence gate and, when aligned, enqueues a scan batch.
// Batch failures are logged and contained here.
func (s *Scheduler) Tick(ctx context.Context) {
	now := s.now().UTC()
	if !s.aligned(now) {
		logger.Debug(ctx, "tick not aligned with scan interval, skipping",
			zap.Int("hour", now.Hour()),
			zap.Int("intervalHours", s.options.IntervalHours))

		return
	}

	if err := s.runBatch(ctx); err != nil {
		logger.Error(ctx, "scan batch failed", zap.Error(err))
	}
}

// aligned reports whether the current hour matches the configured cadence.
func (s *Scheduler) aligned(now time.Time) bool {
	if s.options.IntervalHours <= 1 {
		return true
	}

	return now.Hour()%s.options.IntervalHours == 0
}

// runBatch loads the active websites and enqueues one scan job each. A
// failure to enqueue one website never blocks the others.
func (s *Scheduler) runBatch(ctx context.Context) error {
	websites, err := s.storage.ActiveWebsites(ctx, s.options.BatchSize)
	if err != nil {
		return fmt.Errorf("could not load active websites: %w", err)
	}

	logger.Info(ctx, "running scheduled scans", zap.Int("websites", len(websites)))

	uniquePeriod := time.Duration(s.options.IntervalHours) * time.Hour
	for _, website := range websites {
		added, err := s.storage.AddJob(ctx,
			monitor.NewScanJobArgs(uuid.UUID(website.ID), uniquePeriod), nil)
		if err != nil {
			logger.Error(ctx, "could not enqueue scan job",
				zap.String("websiteURL", website.URL),
				zap.Error(err))

			continue
		}
		if !added {
			logger.Debug(ctx, "scan already enqueued for this window",
				zap.String("websiteURL", website.URL))
		}
	}

	return nil
}
