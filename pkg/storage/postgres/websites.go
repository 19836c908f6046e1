package postgres

import (
	"context"
	"fmt"

	"riskmonitor/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	websitesTable = "websites"
)

// StoreWebsites inserts the given websites and returns the stored rows. The
// unique (user_id, url) index rejects duplicate registrations.
func (p *PgSQL) StoreWebsites(ctx context.Context, websites ...domain.Website) ([]domain.Website, error) {
	if len(websites) == 0 {
		return nil, nil
	}

	rows := make([]PgWebsite, len(websites))
	for i := range rows {
		rows[i].FromDomain(websites[i])
	}

	var result []PgWebsite
	if err := p.Builder.Insert(websitesTable).
		Rows(rows).
		Returning(&PgWebsite{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store websites into pg: %w", err)
	}

	return pgWebsitesToDomain(result), nil
}

// ActiveWebsites returns up to limit active websites, oldest first.
func (p *PgSQL) ActiveWebsites(ctx context.Context, limit uint) ([]domain.Website, error) {
	var rows []PgWebsite
	if err := p.Builder.From(websitesTable).
		Where(goqu.I("status").Eq(string(domain.WebsiteStatusActive))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch active websites from pg: %w", err)
	}

	return pgWebsitesToDomain(rows), nil
}

// WebsiteByID returns a website by its ID, or nil when not found.
func (p *PgSQL) WebsiteByID(ctx context.Context, id domain.WebsiteID) (*domain.Website, error) {
	var row PgWebsite
	found, err := p.Builder.From(websitesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch website by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateWebsiteStatus sets the monitoring status of the website and returns
// the updated row, or nil when it does not exist.
func (p *PgSQL) UpdateWebsiteStatus(ctx context.Context,
	id domain.WebsiteID,
	status domain.WebsiteStatus) (*domain.Website, error) {
	var row PgWebsite
	found, err := p.Builder.Update(websitesTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Returning(&PgWebsite{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update website status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
