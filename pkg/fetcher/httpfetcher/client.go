// Package httpfetcher provides a fetcher.Fetcher implementation backed by
// net/http with a cooperative rate limit so batch scans cannot hammer targets.
package httpfetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"riskmonitor/pkg/fetcher"
	"riskmonitor/pkg/serrors"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout      = 15 * time.Second
	defaultMaxBodyBytes = 1 << 20 // 1 MiB
	defaultUserAgent    = "riskmonitor/1.0 (+posture checks)"
)

// Options configure the HTTP fetch client.
type Options struct {
	// Timeout bounds a single fetch including redirects and body read.
	Timeout time.Duration
	// RequestsPerSecond caps outgoing request rate across all goroutines
	// sharing this client. Zero disables limiting.
	RequestsPerSecond float64
	// MaxBodyBytes caps how much of the response body is retained.
	MaxBodyBytes int64
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// Client fetches URLs over HTTP. It is safe for concurrent use.
type Client struct {
	httpClient   *http.Client
	limiter      *rate.Limiter
	maxBodyBytes int64
	userAgent    string
}

// New creates a fetch client with the given options. Zero values fall back to
// package defaults.
func New(options Options) *Client {
	if options.Timeout <= 0 {
		options.Timeout = defaultTimeout
	}
	if options.MaxBodyBytes <= 0 {
		options.MaxBodyBytes = defaultMaxBodyBytes
	}
	if options.UserAgent == "" {
		options.UserAgent = defaultUserAgent
	}

	var limiter *rate.Limiter
	if options.RequestsPerSecond > 0 {
		burst := int(options.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(options.RequestsPerSecond), burst)
	}

	return &Client{
		// net/http follows redirects by default (up to 10 hops), which is
		// exactly the behavior the transport check relies on.
		httpClient:   &http.Client{Timeout: options.Timeout},
		limiter:      limiter,
		maxBodyBytes: options.MaxBodyBytes,
		userAgent:    options.UserAgent,
	}
}

// Fetch performs a GET request and returns the normalized response. Header
// names are lower-cased and the final post-redirect URL is reported.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*fetcher.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("could not wait for fetch rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid fetch URL %q", rawURL)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "fetch timed out for %q", rawURL)
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not fetch %q", rawURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// body read failures degrade to an empty body rather than failing the
	// whole fetch; the checks only need headers and the final URL.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))

	headers := make(map[string][]string, len(resp.Header))
	for name, values := range resp.Header {
		headers[strings.ToLower(name)] = values
	}

	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &fetcher.Response{
		Status:  resp.StatusCode,
		URL:     finalURL,
		Headers: headers,
		Body:    string(body),
	}, nil
}
