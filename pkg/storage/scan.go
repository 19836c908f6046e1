package storage

import (
	"context"
	"time"

	"riskmonitor/pkg/domain"
)

// WebsiteScans groups a page of scans for a website together with an optional
// NextCursor used for pagination.
type WebsiteScans struct {
	// Scans contains the current page of scan records, most recent first.
	Scans []domain.Scan
	// NextCursor is the scanned-at timestamp to use as the cursor for the
	// next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// ScanStorage defines operations on scan snapshots. Scans are append-only:
// there is no update or delete surface, history is immutable once written.
type ScanStorage interface {
	// StoreScan inserts a single scan atomically and returns the stored row
	// including generated fields. On error nothing is persisted.
	StoreScan(ctx context.Context, scan domain.Scan) (*domain.Scan, error)
	// LatestScan returns the most recent scan for the website, or nil when
	// the website has never been scanned.
	LatestScan(ctx context.Context, websiteID domain.WebsiteID) (*domain.Scan, error)
	// ScanByID fetches a scan by its ID. Returns nil when not found.
	ScanByID(ctx context.Context, id domain.ScanID) (*domain.Scan, error)
	// WebsiteScans returns a page of scans for a website taken before the
	// optional cursor time, most recent first, limited by limit.
	WebsiteScans(ctx context.Context,
		websiteID domain.WebsiteID,
		cursor time.Time,
		limit uint) (WebsiteScans, error)
}
