// Package fetcher defines the HTTP fetch primitive consumed by the checks
// and the monitoring pipeline. Implementations follow redirects and normalize
// header names so callers can do case-insensitive lookups.
//
//go:generate mockgen -package mockfetcher -source=fetcher.go -destination=mock/mockfetcher.go *
package fetcher

import (
	"context"
	"strings"
)

// Fetcher performs a GET request against the given URL. Transport failures
// propagate as errors, never as a Response.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Response, error)
}

// Response is the normalized outcome of a successful fetch.
type Response struct {
	// Status is the HTTP status code of the final response.
	Status int
	// URL is the final address after following redirects.
	URL string
	// Headers maps lower-cased header names to their values. Multi-valued
	// headers (notably set-cookie) keep every value.
	Headers map[string][]string
	// Body is the response body, truncated at the implementation's cap.
	Body string
}

// Header returns the first value of the named header, or "" when absent.
// The lookup is case-insensitive.
func (r *Response) Header(name string) string {
	values := r.Headers[strings.ToLower(name)]
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

// HeaderValues returns every value of the named header. The lookup is
// case-insensitive.
func (r *Response) HeaderValues(name string) []string {
	return r.Headers[strings.ToLower(name)]
}
