package postgres_test

import (
	"context"
	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func storeWebsite(t *testing.T, pgSQL *postgres.PgSQL, url string) domain.Website {
	t.Helper()

	stored, err := pgSQL.StoreWebsites(context.Background(), domain.Website{
		UserID: domain.UserID(uuid.New()),
		URL:    url,
		Status: domain.WebsiteStatusActive,
	})
	require.NoError(t, err)
	require.Len(t, stored, 1)

	return stored[0]
}

func sampleScan(websiteID domain.WebsiteID, scannedAt time.Time) domain.Scan {
	return domain.Scan{
		WebsiteID: websiteID,
		ScannedAt: scannedAt,
		Findings: []domain.Finding{{
			Key:      "https_missing",
			Title:    "HTTPS not enforced",
			Severity: domain.SeverityHigh,
			Details:  "Site did not resolve to HTTPS. HTTPS is required to protect traffic in transit.",
			Evidence: "http://example.com/",
		}},
		Score:   70,
		Level:   domain.SeverityMedium,
		Summary: "Medium risk: improvements recommended.",
	}
}

func TestPgSQL_StoreScan(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	website := storeWebsite(t, pgSQL, "https://scans.test/")

	t.Run("round trips findings", func(t *testing.T) {
		scannedAt := time.Now().UTC().Truncate(time.Microsecond)
		stored, err := pgSQL.StoreScan(ctx, sampleScan(website.ID, scannedAt))
		require.NoError(t, err)
		require.NotNil(t, stored)
		require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
		require.Equal(t, website.ID, stored.WebsiteID)
		require.Equal(t, scannedAt, stored.ScannedAt.UTC())
		require.Equal(t, 70, stored.Score)
		require.Equal(t, domain.SeverityMedium, stored.Level)
		require.Len(t, stored.Findings, 1)
		require.Equal(t, "https_missing", stored.Findings[0].Key)
		require.Equal(t, domain.SeverityHigh, stored.Findings[0].Severity)
	})

	t.Run("empty findings kept as empty list", func(t *testing.T) {
		scan := sampleScan(website.ID, time.Now().UTC())
		scan.Findings = nil
		scan.Score = 100
		scan.Level = domain.SeverityLow

		stored, err := pgSQL.StoreScan(ctx, scan)
		require.NoError(t, err)
		require.Empty(t, stored.Findings)
	})

	t.Run("unknown website rejected", func(t *testing.T) {
		_, err := pgSQL.StoreScan(ctx, sampleScan(domain.WebsiteID(uuid.New()), time.Now().UTC()))
		require.Error(t, err)
	})
}

func TestPgSQL_LatestScan(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	website := storeWebsite(t, pgSQL, "https://latest.test/")

	t.Run("never scanned returns nil", func(t *testing.T) {
		scan, err := pgSQL.LatestScan(ctx, website.ID)
		require.NoError(t, err)
		require.Nil(t, scan)
	})

	t.Run("returns most recent", func(t *testing.T) {
		base := time.Now().UTC().Truncate(time.Microsecond)
		for _, offset := range []time.Duration{-48 * time.Hour, -24 * time.Hour, 0} {
			_, err := pgSQL.StoreScan(ctx, sampleScan(website.ID, base.Add(offset)))
			require.NoError(t, err)
		}

		scan, err := pgSQL.LatestScan(ctx, website.ID)
		require.NoError(t, err)
		require.NotNil(t, scan)
		require.Equal(t, base, scan.ScannedAt.UTC())
	})
}

func TestPgSQL_ScanByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	website := storeWebsite(t, pgSQL, "https://byid-scan.test/")

	stored, err := pgSQL.StoreScan(ctx, sampleScan(website.ID, time.Now().UTC()))
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		scan, err := pgSQL.ScanByID(ctx, stored.ID)
		require.NoError(t, err)
		require.NotNil(t, scan)
		require.Equal(t, stored.ID, scan.ID)
	})

	t.Run("missing returns nil", func(t *testing.T) {
		scan, err := pgSQL.ScanByID(ctx, domain.ScanID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, scan)
	})
}

func TestPgSQL_WebsiteScans_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	website := storeWebsite(t, pgSQL, "https://history.test/")

	base := time.Now().UTC().Truncate(time.Microsecond)
	for i := range 5 {
		_, err := pgSQL.StoreScan(ctx, sampleScan(website.ID, base.Add(-time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	// first page: newest two, with a cursor to continue
	page, err := pgSQL.WebsiteScans(ctx, website.ID, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, page.Scans, 2)
	require.NotNil(t, page.NextCursor)
	require.Equal(t, base, page.Scans[0].ScannedAt.UTC())
	require.Equal(t, base.Add(-time.Hour), page.Scans[1].ScannedAt.UTC())

	// second page resumes below the cursor
	page2, err := pgSQL.WebsiteScans(ctx, website.ID, *page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page2.Scans, 2)
	require.NotNil(t, page2.NextCursor)
	require.Equal(t, base.Add(-2*time.Hour), page2.Scans[0].ScannedAt.UTC())

	// last page has the remainder and no cursor
	page3, err := pgSQL.WebsiteScans(ctx, website.ID, *page2.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page3.Scans, 1)
	require.Nil(t, page3.NextCursor)
}
