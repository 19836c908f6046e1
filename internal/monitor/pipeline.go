// Package monitor implements the website risk-monitoring pipeline: the
// per-website scan flow (fetch, checks, scoring, persistence), the diff
// engine comparing consecutive scans, and the alert rule deciding whether a
// posture change is worth a notification.
package monitor

import (
	"context"
	"fmt"
	"time"

	"riskmonitor/internal/checks"
	"riskmonitor/internal/config"
	"riskmonitor/internal/scoring"
	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/fetcher"
	"riskmonitor/pkg/logger"
	"riskmonitor/pkg/metrics"
	"riskmonitor/pkg/notifier"
	"riskmonitor/pkg/storage"

	"go.uber.org/zap"
)

// Options configure the per-website scan pipeline.
type Options struct {
	// AlertTo is the recipient address for posture change alerts.
	AlertTo string
}

// NewOptions constructs an Options value from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		AlertTo: cfg.Monitor.AlertTo,
	}
}

// Pipeline runs the full scan flow for a single website: previous-scan read,
// main fetch, checks, scoring, persistence, diff, alert decision and
// notification. Instances are safe for concurrent use; every invocation is
// independent.
type Pipeline struct {
	options  Options
	storage  storage.Storage
	fetcher  fetcher.Fetcher
	notifier notifier.Notifier
	metrics  *metrics.Monitor
}

// New creates a pipeline backed by the provided collaborators.
func New(strg storage.Storage,
	f fetcher.Fetcher,
	n notifier.Notifier,
	m *metrics.Monitor,
	options Options) *Pipeline {
	return &Pipeline{
		options:  options,
		storage:  strg,
		fetcher:  f,
		notifier: n,
		metrics:  m,
	}
}

// ScanWebsite executes one scan pass for the website and returns the
// persisted scan. A main-fetch or persistence failure aborts the pass with no
// partial record written; a notification failure is logged and never
// propagated, the scan is already durable at that point.
func (p *Pipeline) ScanWebsite(ctx context.Context, website domain.Website) (*domain.Scan, error) {
	ctx = logger.WithFields(ctx, zap.String("websiteURL", website.URL))

	start := time.Now()
	p.metrics.ScansStarted.Add(ctx, 1)

	scan, err := p.scan(ctx, website)

	p.metrics.ScanDuration.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		p.metrics.ScansFailed.Add(ctx, 1)

		return nil, err
	}
	p.metrics.ScansSucceeded.Add(ctx, 1)

	return scan, nil
}

func (p *Pipeline) scan(ctx context.Context, website domain.Website) (*domain.Scan, error) {
	// the previous scan must be read before the new one is persisted, it is
	// the diff baseline
	prev, err := p.storage.LatestScan(ctx, website.ID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch previous scan: %w", err)
	}

	res, err := p.fetcher.Fetch(ctx, website.URL)
	if err != nil {
		return nil, fmt.Errorf("could not fetch %q: %w", website.URL, err)
	}

	findings := checks.Run(ctx, p.fetcher, res)
	score, level := scoring.Score(findings)

	stored, err := p.storage.StoreScan(ctx, domain.Scan{
		WebsiteID: website.ID,
		ScannedAt: time.Now().UTC(),
		Findings:  findings,
		Score:     score,
		Level:     level,
		Summary:   scoring.Summary(level),
	})
	if err != nil {
		return nil, fmt.Errorf("could not store scan: %w", err)
	}

	diff := DiffScans(prev, *stored)
	if !ShouldAlert(diff) {
		return stored, nil
	}

	p.metrics.AlertsSent.Add(ctx, 1)
	if err := p.notifier.SendAlert(ctx, buildAlert(p.options.AlertTo, website.URL, *stored, diff)); err != nil {
		// fire-and-forget: the scan is persisted, a lost alert is only logged
		logger.Error(ctx, "could not send alert", zap.Error(err))
	}

	return stored, nil
}

// buildAlert renders the notification for a newsworthy diff.
func buildAlert(to, websiteURL string, scan domain.Scan, diff Diff) notifier.Alert {
	subject := fmt.Sprintf("Risk Monitor update for %s: %s (score %d)", websiteURL, scan.Level, scan.Score)
	body := fmt.Sprintf(`Scheduled scan update
Website: %s
Scanned: %s
Overall: %s (score %d)
New issues: %d
Resolved issues: %d
Severity changes: %d
`,
		websiteURL,
		scan.ScannedAt.Format(time.RFC3339),
		scan.Level,
		scan.Score,
		len(diff.Added),
		len(diff.Resolved),
		len(diff.SeverityChanged),
	)

	return notifier.Alert{To: to, Subject: subject, Body: body}
}
