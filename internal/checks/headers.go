package checks

import (
	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/fetcher"
)

// requiredHeaders is the fixed set of hardening headers every site is
// expected to serve. Keys are lower-cased header names; they also form the
// "missing_<header>" finding keys, so the spelling is load-bearing.
var requiredHeaders = []struct {
	key  string
	name string
}{
	{"strict-transport-security", "HSTS"},
	{"content-security-policy", "CSP (presence only)"},
	{"x-frame-options", "X-Frame-Options"},
	{"x-content-type-options", "X-Content-Type-Options"},
	{"referrer-policy", "Referrer-Policy"},
	{"permissions-policy", "Permissions-Policy"},
}

// Headers emits one MEDIUM finding per absent hardening header, plus a LOW
// information-disclosure finding when a Server header is present.
func Headers(res *fetcher.Response) []domain.Finding {
	var findings []domain.Finding

	for _, h := range requiredHeaders {
		if res.Header(h.key) != "" {
			continue
		}

		findings = append(findings, domain.Finding{
			Key:      "missing_" + h.key,
			Title:    "Missing security header: " + h.name,
			Severity: domain.SeverityMedium,
			Details:  h.name + " header is not present. This can reduce browser-level protection.",
		})
	}

	if server := res.Header("server"); server != "" {
		findings = append(findings, domain.Finding{
			Key:      "server_header_present",
			Title:    "Server header present (info leakage)",
			Severity: domain.SeverityLow,
			Details:  "The Server header is present and may reveal technology details.",
			Evidence: "server: " + server,
		})
	}

	return findings
}
