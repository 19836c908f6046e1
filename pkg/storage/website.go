package storage

import (
	"context"

	"riskmonitor/pkg/domain"
)

// WebsiteStorage defines query operations on monitored websites. Website
// records are created by the user-facing registration flow; the pipeline
// itself only reads them, so the write surface is limited to what the
// registration flow and tests need.
type WebsiteStorage interface {
	// StoreWebsites inserts one or more websites and returns the stored rows
	// as they exist in the database (including generated fields). Inserting a
	// duplicate (user, url) pair fails.
	StoreWebsites(ctx context.Context, websites ...domain.Website) ([]domain.Website, error)
	// ActiveWebsites returns up to limit websites with active status, oldest
	// registrations first so long-standing targets are never starved by the
	// batch cap.
	ActiveWebsites(ctx context.Context, limit uint) ([]domain.Website, error)
	// WebsiteByID fetches a website by its ID. Returns nil when not found.
	WebsiteByID(ctx context.Context, id domain.WebsiteID) (*domain.Website, error)
	// UpdateWebsiteStatus sets the monitoring status of a website and returns
	// the updated row, or nil when the website does not exist. Deactivation
	// stops future scans but keeps scan history.
	UpdateWebsiteStatus(ctx context.Context,
		id domain.WebsiteID,
		status domain.WebsiteStatus) (*domain.Website, error)
}
