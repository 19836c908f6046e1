package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"riskmonitor/pkg/domain"

	"github.com/google/uuid"
)

type PgWebsite struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	URL    string `db:"url"`
	Status string `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgWebsite) ToDomain() *domain.Website {
	return &domain.Website{
		ID:        domain.WebsiteID(p.ID),
		UserID:    domain.UserID(p.UserID),
		URL:       p.URL,
		Status:    domain.WebsiteStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgWebsite) FromDomain(website domain.Website) {
	*p = PgWebsite{
		ID:        uuid.UUID(website.ID),
		UserID:    uuid.UUID(website.UserID),
		URL:       website.URL,
		Status:    string(website.Status),
		CreatedAt: website.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  website.UpdatedAt,
			Valid: !website.UpdatedAt.IsZero(),
		},
	}
}

func pgWebsitesToDomain(websites []PgWebsite) []domain.Website {
	out := make([]domain.Website, 0, len(websites))
	for i := range websites {
		out = append(out, *websites[i].ToDomain())
	}

	return out
}

type PgScan struct {
	ID        uuid.UUID `db:"id" goqu:"skipinsert"`
	WebsiteID uuid.UUID `db:"website_id"`

	ScannedAt time.Time       `db:"scanned_at"`
	Findings  json.RawMessage `db:"findings"`
	Score     int             `db:"score"`
	Level     string          `db:"level"`
	Summary   string          `db:"summary"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgScan) ToDomain() (*domain.Scan, error) {
	var findings []domain.Finding
	if len(p.Findings) > 0 {
		if err := json.Unmarshal(p.Findings, &findings); err != nil {
			return nil, fmt.Errorf("could not unmarshal findings: %w", err)
		}
	}

	return &domain.Scan{
		ID:        domain.ScanID(p.ID),
		WebsiteID: domain.WebsiteID(p.WebsiteID),
		ScannedAt: p.ScannedAt,
		Findings:  findings,
		Score:     p.Score,
		Level:     domain.Severity(p.Level),
		Summary:   p.Summary,
		CreatedAt: p.CreatedAt,
	}, nil
}

func (p *PgScan) FromDomain(scan domain.Scan) error {
	findings := scan.Findings
	if findings == nil {
		findings = []domain.Finding{}
	}
	b, err := json.Marshal(findings)
	if err != nil {
		return fmt.Errorf("could not marshal findings: %w", err)
	}

	*p = PgScan{
		ID:        uuid.UUID(scan.ID),
		WebsiteID: uuid.UUID(scan.WebsiteID),
		ScannedAt: scan.ScannedAt,
		Findings:  b,
		Score:     scan.Score,
		Level:     string(scan.Level),
		Summary:   scan.Summary,
		CreatedAt: scan.CreatedAt,
	}

	return nil
}

func pgScansToDomain(scans []PgScan) ([]domain.Scan, error) {
	out := make([]domain.Scan, 0, len(scans))
	for i := range scans {
		d, err := scans[i].ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
