package worker

import (
	"context"
	"fmt"

	"riskmonitor/internal/monitor"
	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/logger"
	"riskmonitor/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// WebsiteScanWorker is a River worker that runs the full scan pipeline for a
// single website. Concurrency across websites is bounded by the queue's
// MaxWorkers setting; the worker itself does one website at a time.
type WebsiteScanWorker struct {
	river.WorkerDefaults[monitor.ScanJobArgs]

	storage  storage.Storage
	pipeline *monitor.Pipeline
}

// NewWebsiteScanWorker constructs a worker that loads websites from the given
// storage and scans them through the given pipeline.
func NewWebsiteScanWorker(strg storage.Storage, pipeline *monitor.Pipeline) *WebsiteScanWorker {
	return &WebsiteScanWorker{
		storage:  strg,
		pipeline: pipeline,
	}
}

// Work executes a single scan job. Websites that were removed or deactivated
// between enqueue and execution are skipped without error.
func (w *WebsiteScanWorker) Work(ctx context.Context, job *river.Job[monitor.ScanJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("websiteID", job.Args.WebsiteID.String()))

	website, err := w.storage.WebsiteByID(ctx, domain.WebsiteID(job.Args.WebsiteID))
	if err != nil {
		logger.Error(ctx, "error loading website for scan", zap.Error(err))

		return fmt.Errorf("could not load website: %w", err)
	}

	if website == nil || website.Status != domain.WebsiteStatusActive {
		logger.Info(ctx, "website gone or inactive, skipping scan")

		return nil
	}

	scan, err := w.pipeline.ScanWebsite(ctx, *website)
	if err != nil {
		logger.Error(ctx, "error scanning website", zap.Error(err))

		return fmt.Errorf("could not scan website: %w", err)
	}

	logger.Info(ctx, "website scanned successfully",
		zap.Int("score", scan.Score),
		zap.String("level", string(scan.Level)))

	return nil
}
