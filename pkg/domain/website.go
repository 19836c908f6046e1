package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies the principal owning a website. The identity
// domain itself (signup, login, entitlements) lives outside this service;
// only the reference is carried here.
type UserID uuid.UUID

// WebsiteID uniquely identifies a monitored website.
// It wraps uuid.UUID to provide type safety at the domain layer.
type WebsiteID uuid.UUID

// WebsiteStatus represents the monitoring state of a website.
type WebsiteStatus string

const (
	// WebsiteStatusActive means the website is picked up by scheduled scans.
	WebsiteStatusActive WebsiteStatus = "active"
	// WebsiteStatusInactive means the website is excluded from future scans.
	// Deactivation does not delete scan history.
	WebsiteStatusInactive WebsiteStatus = "inactive"
)

// Website is a monitored target registered by a user. The (UserID, URL) pair
// is unique. Websites are created by the user-facing registration flow and are
// read-only from the monitoring pipeline's perspective.
type Website struct {
	// ID is the unique identifier of the website.
	ID WebsiteID `json:"id"`
	// UserID references the owning principal.
	UserID UserID `json:"userId"`

	// URL is the normalized, scheme-qualified target address.
	URL string `json:"url"`
	// Status controls whether scheduled scans include this website.
	Status WebsiteStatus `json:"status"`

	// CreatedAt is the time the website was registered.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the website record was last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}
