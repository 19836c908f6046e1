package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"riskmonitor/internal/api"
	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/logger"
	"riskmonitor/pkg/storage"
	mockstorage "riskmonitor/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestServer(t *testing.T) (*mockstorage.MockStorage, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	server := api.NewServer(api.Deps{Storage: st}, api.Options{
		Addr:           ":0",
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
	})

	return st, server.Handler
}

func TestReportEndpoint_InvalidID(t *testing.T) {
	_, handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/websites/not-a-uuid/report", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportEndpoint_WebsiteNotFound(t *testing.T) {
	st, handler := newTestServer(t)

	id := uuid.New()
	st.EXPECT().WebsiteByID(gomock.Any(), domain.WebsiteID(id)).Return(nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/websites/"+id.String()+"/report", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportEndpoint_NeverScanned(t *testing.T) {
	st, handler := newTestServer(t)

	website := domain.Website{
		ID:     domain.WebsiteID(uuid.New()),
		URL:    "https://example.com/",
		Status: domain.WebsiteStatusActive,
	}
	st.EXPECT().WebsiteByID(gomock.Any(), website.ID).Return(&website, nil)
	st.EXPECT().LatestScan(gomock.Any(), website.ID).Return(nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/v1/websites/"+uuid.UUID(website.ID).String()+"/report", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportEndpoint_ReturnsLatestReport(t *testing.T) {
	st, handler := newTestServer(t)

	website := domain.Website{
		ID:     domain.WebsiteID(uuid.New()),
		URL:    "https://example.com/",
		Status: domain.WebsiteStatusActive,
	}
	scan := domain.Scan{
		ID:        domain.ScanID(uuid.New()),
		WebsiteID: website.ID,
		ScannedAt: time.Now().UTC(),
		Findings: []domain.Finding{{
			Key:      "https_missing",
			Title:    "HTTPS not enforced",
			Severity: domain.SeverityHigh,
		}},
		Score:   70,
		Level:   domain.SeverityMedium,
		Summary: "Medium risk: improvements recommended.",
	}

	st.EXPECT().WebsiteByID(gomock.Any(), website.ID).Return(&website, nil)
	st.EXPECT().LatestScan(gomock.Any(), website.ID).Return(&scan, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/v1/websites/"+uuid.UUID(website.ID).String()+"/report", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "https://example.com/", body["website"])
	require.Equal(t, uuid.UUID(scan.ID).String(), body["scanId"])

	overall, ok := body["overall"].(map[string]any)
	require.True(t, ok)
	require.InDelta(t, 70, overall["score"], 0.1)
	require.Equal(t, "MEDIUM", overall["level"])
}

func TestScansEndpoint_InvalidCursor(t *testing.T) {
	_, handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/v1/websites/"+uuid.NewString()+"/scans?cursor=yesterday", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScansEndpoint_InvalidLimit(t *testing.T) {
	_, handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/v1/websites/"+uuid.NewString()+"/scans?limit=1000", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScansEndpoint_ReturnsPageWithCursor(t *testing.T) {
	st, handler := newTestServer(t)

	website := domain.Website{
		ID:     domain.WebsiteID(uuid.New()),
		URL:    "https://example.com/",
		Status: domain.WebsiteStatusActive,
	}
	scannedAt := time.Date(2026, 8, 20, 3, 0, 0, 0, time.UTC)
	next := scannedAt.Add(-24 * time.Hour)
	scan := domain.Scan{
		ID:        domain.ScanID(uuid.New()),
		WebsiteID: website.ID,
		ScannedAt: scannedAt,
		Findings: []domain.Finding{{
			Key:      "server_header_present",
			Title:    "Server version disclosed",
			Severity: domain.SeverityLow,
		}},
		Score:   97,
		Level:   domain.SeverityLow,
		Summary: "Low risk: posture looks healthy.",
	}

	st.EXPECT().WebsiteByID(gomock.Any(), website.ID).Return(&website, nil)
	st.EXPECT().WebsiteScans(gomock.Any(), website.ID, gomock.Any(), uint(1)).
		Return(storage.WebsiteScans{Scans: []domain.Scan{scan}, NextCursor: &next}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/v1/websites/"+uuid.UUID(website.ID).String()+"/scans?limit=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Scans []struct {
			ScanID   string `json:"scanId"`
			Score    int    `json:"score"`
			Level    string `json:"level"`
			Findings int    `json:"findings"`
		} `json:"scans"`
		NextCursor *time.Time `json:"nextCursor"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Scans, 1)
	require.Equal(t, uuid.UUID(scan.ID).String(), body.Scans[0].ScanID)
	require.Equal(t, 97, body.Scans[0].Score)
	require.Equal(t, "LOW", body.Scans[0].Level)
	require.Equal(t, 1, body.Scans[0].Findings)
	require.NotNil(t, body.NextCursor)
	require.True(t, next.Equal(*body.NextCursor))
}

func TestScansEndpoint_WebsiteNotFound(t *testing.T) {
	st, handler := newTestServer(t)

	id := uuid.New()
	st.EXPECT().WebsiteByID(gomock.Any(), domain.WebsiteID(id)).Return(nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/websites/"+id.String()+"/scans", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	_, handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}
