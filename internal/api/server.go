// Package api exposes the operational HTTP server: website risk reports,
// Prometheus metrics and pprof profiling endpoints.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"riskmonitor/internal/config"
	"riskmonitor/internal/report"
	"riskmonitor/pkg/controller"
	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/logger"
	"riskmonitor/pkg/storage"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// Options holds configuration for the HTTP server.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Deps holds the external collaborators the HTTP handlers need.
type Deps struct {
	Storage storage.Storage
}

// NewMeterProvider creates the OpenTelemetry meter provider backed by the
// default Prometheus registry, which the metrics endpoint serves.
func NewMeterProvider() (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - the latest risk report and scan history endpoints for a website
// - pprof endpoints for profiling
// It also wraps the mux with CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) *http.Server {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	mux.HandleFunc("GET /v1/websites/{id}/report", reportHandler(deps.Storage))
	mux.HandleFunc("GET /v1/websites/{id}/scans", scansHandler(deps.Storage))

	// pprof
	mux.Handle("/debug/pprof/", controller.PprofMux())

	// cors
	handler := controller.WithCORS(mux)

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"error":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}
}

// reportHandler serves the human-readable risk report built from the latest
// stored scan of a website.
func reportHandler(strg storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid website id")

			return
		}

		website, err := strg.WebsiteByID(ctx, domain.WebsiteID(id))
		if err != nil {
			logger.Error(ctx, "error loading website for report", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal error")

			return
		}
		if website == nil {
			writeError(w, http.StatusNotFound, "website not found")

			return
		}

		scan, err := strg.LatestScan(ctx, website.ID)
		if err != nil {
			logger.Error(ctx, "error loading latest scan for report", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal error")

			return
		}
		if scan == nil {
			writeError(w, http.StatusNotFound, "website has not been scanned yet")

			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report.Build(website.URL, *scan)); err != nil {
			logger.Error(ctx, "error encoding report", zap.Error(err))
		}
	}
}

// scanHistoryEntry is one row of the scan history listing. It carries the
// posture summary of a scan without the full finding payload.
type scanHistoryEntry struct {
	ScanID    domain.ScanID   `json:"scanId"`
	ScannedAt time.Time       `json:"scannedAt"`
	Score     int             `json:"score"`
	Level     domain.Severity `json:"level"`
	Summary   string          `json:"summary"`
	Findings  int             `json:"findings"`
}

type scanHistoryResponse struct {
	Scans      []scanHistoryEntry `json:"scans"`
	NextCursor *time.Time         `json:"nextCursor"`
}

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// scansHandler serves the paginated scan history of a website, most recent
// first. The cursor query parameter is the nextCursor value of the previous
// page, in RFC 3339 format.
func scansHandler(strg storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid website id")

			return
		}

		var cursor time.Time
		if raw := r.URL.Query().Get("cursor"); raw != "" {
			cursor, err = time.Parse(time.RFC3339Nano, raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid cursor")

				return
			}
		}

		limit := uint(defaultHistoryLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 32)
			if err != nil || parsed < 1 || parsed > maxHistoryLimit {
				writeError(w, http.StatusBadRequest, "invalid limit")

				return
			}
			limit = uint(parsed)
		}

		website, err := strg.WebsiteByID(ctx, domain.WebsiteID(id))
		if err != nil {
			logger.Error(ctx, "error loading website for scan history", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal error")

			return
		}
		if website == nil {
			writeError(w, http.StatusNotFound, "website not found")

			return
		}

		page, err := strg.WebsiteScans(ctx, website.ID, cursor, limit)
		if err != nil {
			logger.Error(ctx, "error loading scan history", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal error")

			return
		}

		resp := scanHistoryResponse{
			Scans:      make([]scanHistoryEntry, 0, len(page.Scans)),
			NextCursor: page.NextCursor,
		}
		for _, scan := range page.Scans {
			resp.Scans = append(resp.Scans, scanHistoryEntry{
				ScanID:    scan.ID,
				ScannedAt: scan.ScannedAt,
				Score:     scan.Score,
				Level:     scan.Level,
				Summary:   scan.Summary,
				Findings:  len(scan.Findings),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Error(ctx, "error encoding scan history", zap.Error(err))
		}
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, `{"error":%q}`, message)
}
