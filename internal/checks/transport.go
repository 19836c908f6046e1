package checks

import (
	"strings"

	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/fetcher"
)

// Transport emits one HIGH finding when the final resolved URL (after
// following redirects) is not delivered over HTTPS.
func Transport(res *fetcher.Response) []domain.Finding {
	if strings.HasPrefix(strings.ToLower(res.URL), "https://") {
		return nil
	}

	return []domain.Finding{{
		Key:      "https_missing",
		Title:    "HTTPS not enforced",
		Severity: domain.SeverityHigh,
		Details:  "Site did not resolve to HTTPS. HTTPS is required to protect traffic in transit.",
		Evidence: res.URL,
	}}
}
