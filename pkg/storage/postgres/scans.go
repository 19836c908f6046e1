package postgres

import (
	"context"
	"fmt"
	"time"

	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	scansTable = "scans"
)

// StoreScan inserts a single scan snapshot and returns the stored row. The
// insert is a single statement, so a failure persists nothing.
func (p *PgSQL) StoreScan(ctx context.Context, scan domain.Scan) (*domain.Scan, error) {
	var row PgScan
	if err := row.FromDomain(scan); err != nil {
		return nil, err
	}

	var result PgScan
	found, err := p.Builder.Insert(scansTable).
		Rows(row).
		Returning(&PgScan{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store scan into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store scan into pg: no row returned")
	}

	return result.ToDomain()
}

// LatestScan returns the most recent scan for the website, or nil when the
// website has never been scanned.
func (p *PgSQL) LatestScan(ctx context.Context, websiteID domain.WebsiteID) (*domain.Scan, error) {
	var row PgScan
	found, err := p.Builder.From(scansTable).
		Where(goqu.I("website_id").Eq(uuid.UUID(websiteID))).
		Order(goqu.I("scanned_at").Desc(), goqu.I("id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest scan from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// ScanByID returns a scan by its ID, or nil when not found.
func (p *PgSQL) ScanByID(ctx context.Context, id domain.ScanID) (*domain.Scan, error) {
	var row PgScan
	found, err := p.Builder.From(scansTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scan by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// WebsiteScans returns a page of scans for a website taken before the
// optional cursor, most recent first. It fetches one extra row to decide
// whether a next page exists.
func (p *PgSQL) WebsiteScans(ctx context.Context,
	websiteID domain.WebsiteID,
	cursor time.Time,
	limit uint) (storage.WebsiteScans, error) {
	w := []goqu.Expression{
		goqu.I("website_id").Eq(uuid.UUID(websiteID)),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("scanned_at").Lt(cursor))
	}

	fetch := limit + 1
	ds := p.Builder.From(scansTable).
		Where(w...).
		Order(goqu.I("scanned_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgScan
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.WebsiteScans{}, fmt.Errorf("could not fetch website scans from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].ScannedAt
		rows = trimmed
	}

	domainRows, err := pgScansToDomain(rows)
	if err != nil {
		return storage.WebsiteScans{}, err
	}

	return storage.WebsiteScans{
		Scans:      domainRows,
		NextCursor: nextCursor,
	}, nil
}
