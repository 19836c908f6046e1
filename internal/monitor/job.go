package monitor

import (
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// ScanJobArgs is the queue payload for one per-website scan. The website ID
// is the uniqueness key so a website is scanned at most once per cadence
// window, however often the scheduler ticks.
type ScanJobArgs struct {
	// WebsiteID identifies the website to scan.
	WebsiteID uuid.UUID `json:"websiteId" river:"unique"`

	// uniquePeriod is the lookback window during which a job for the same
	// website is considered a duplicate. The scheduler sets it to the scan
	// interval.
	uniquePeriod time.Duration
}

// NewScanJobArgs constructs the job payload for the given website.
func NewScanJobArgs(websiteID uuid.UUID, uniquePeriod time.Duration) ScanJobArgs {
	return ScanJobArgs{
		WebsiteID:    websiteID,
		uniquePeriod: uniquePeriod,
	}
}

// Kind returns the River job kind used to register and dispatch the scan worker.
func (args ScanJobArgs) Kind() string { return "WebsiteScanJob" }

// InsertOpts returns the River options controlling how the job is enqueued.
// A failed website is not retried within the tick; it is picked up again
// naturally on the next cadence.
func (args ScanJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		// make sure we only have one job per website within a cadence window
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
