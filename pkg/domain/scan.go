package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanID uniquely identifies a scan snapshot.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ScanID uuid.UUID

// Severity is the ordinal weakness rank of a finding, LOW < MEDIUM < HIGH.
// It drives both scoring weight and alerting decisions.
type Severity string

const (
	// SeverityLow marks informational or best-practice findings.
	SeverityLow Severity = "LOW"
	// SeverityMedium marks findings that reduce browser-level protection.
	SeverityMedium Severity = "MEDIUM"
	// SeverityHigh marks findings that can expose users or traffic directly.
	SeverityHigh Severity = "HIGH"
)

// Rank returns the priority rank of the severity for sorting, HIGH first.
// Unknown severities sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 9
	}
}

// Finding is one observed posture weakness. Findings are value objects
// embedded in a Scan, never persisted on their own.
//
// Key is the join identity across scans in time: it must stay stable across
// runs for the same underlying condition so the diff engine can match
// occurrences. Renaming a key silently breaks historical diffing.
type Finding struct {
	// Key is the stable identifier used for cross-scan matching,
	// e.g. "missing_content-security-policy". Unique within one scan.
	Key string `json:"key"`
	// Title is the display name of the finding.
	Title string `json:"title"`
	// Severity is the ordinal rank of the weakness.
	Severity Severity `json:"severity"`
	// Details is the human-readable explanation text.
	Details string `json:"details"`
	// Evidence is an optional raw snippet, truncated at capture time.
	Evidence string `json:"evidence"`
}

// Scan is one timestamped snapshot of a website's security posture. Scans are
// immutable after creation and form an append-only history per website,
// queried most-recently-first to obtain the previous scan for diffing.
//
// Score and Level are a deterministic pure function of the finding set; they
// are never set independently.
type Scan struct {
	// ID is the unique identifier of the scan.
	ID ScanID `json:"id"`
	// WebsiteID references the website this snapshot belongs to.
	WebsiteID WebsiteID `json:"websiteId"`

	// ScannedAt is the time the probe was taken.
	ScannedAt time.Time `json:"scannedAt"`
	// Findings is the ordered finding set produced by the checks.
	Findings []Finding `json:"findings"`
	// Score is the derived posture score in [0,100].
	Score int `json:"score"`
	// Level is the derived overall severity level.
	Level Severity `json:"level"`
	// Summary is a one-line description of the overall level.
	Summary string `json:"summary"`

	// CreatedAt is the time the record was persisted.
	CreatedAt time.Time `json:"createdAt"`
}
