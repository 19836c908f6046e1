// Package checks contains the posture checks run against a fetched website
// response. Each check maps raw response data to a list of findings; apart
// from the footprint probes none of them touch the network.
//
// Finding keys form a stable, versioned namespace: the key emitted for a
// condition is the join identity the diff engine uses across scans, so keys
// must never be respelled once deployed. No two checks emit the same key.
package checks

import (
	"context"

	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/fetcher"
)

// evidenceLimit caps raw snippets captured as finding evidence.
const evidenceLimit = 200

// Run executes all checks against the fetched main response and merges their
// findings. The base URL for the footprint probes is the final post-redirect
// URL of the main fetch.
func Run(ctx context.Context, f fetcher.Fetcher, res *fetcher.Response) []domain.Finding {
	findings := make([]domain.Finding, 0, 8)
	findings = append(findings, Headers(res)...)
	findings = append(findings, Cookies(res)...)
	findings = append(findings, Footprint(ctx, f, res.URL)...)
	findings = append(findings, Transport(res)...)

	return findings
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit]
}
