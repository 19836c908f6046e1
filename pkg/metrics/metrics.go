// Package metrics defines the OpenTelemetry instruments recorded by the
// monitoring pipeline. The meter provider itself is wired in the ops server
// and exported through Prometheus.
package metrics

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Monitor groups the instruments recorded while scanning websites.
type Monitor struct {
	// ScansStarted counts per-website pipeline runs that began.
	ScansStarted metric.Int64Counter
	// ScansSucceeded counts pipeline runs that persisted a scan.
	ScansSucceeded metric.Int64Counter
	// ScansFailed counts pipeline runs aborted by fetch or persistence errors.
	ScansFailed metric.Int64Counter
	// AlertsSent counts notifications handed to the alert channel.
	AlertsSent metric.Int64Counter
	// ScanDuration measures wall time of a full per-website pipeline run.
	ScanDuration metric.Float64Histogram
}

// NewMonitor registers the pipeline instruments on the given meter.
func NewMonitor(meter metric.Meter) (*Monitor, error) {
	started, err := meter.Int64Counter("riskmonitor_scans_started_total",
		metric.WithDescription("Number of per-website scan pipeline runs started"))
	if err != nil {
		return nil, fmt.Errorf("could not create scans started counter: %w", err)
	}

	succeeded, err := meter.Int64Counter("riskmonitor_scans_succeeded_total",
		metric.WithDescription("Number of scan pipeline runs that persisted a scan"))
	if err != nil {
		return nil, fmt.Errorf("could not create scans succeeded counter: %w", err)
	}

	failed, err := meter.Int64Counter("riskmonitor_scans_failed_total",
		metric.WithDescription("Number of scan pipeline runs aborted by an error"))
	if err != nil {
		return nil, fmt.Errorf("could not create scans failed counter: %w", err)
	}

	alerts, err := meter.Int64Counter("riskmonitor_alerts_sent_total",
		metric.WithDescription("Number of alerts handed to the notification channel"))
	if err != nil {
		return nil, fmt.Errorf("could not create alerts sent counter: %w", err)
	}

	duration, err := meter.Float64Histogram("riskmonitor_scan_duration_seconds",
		metric.WithDescription("Duration of a full per-website pipeline run"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create scan duration histogram: %w", err)
	}

	return &Monitor{
		ScansStarted:   started,
		ScansSucceeded: succeeded,
		ScansFailed:    failed,
		AlertsSent:     alerts,
		ScanDuration:   duration,
	}, nil
}
