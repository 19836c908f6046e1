package report_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"riskmonitor/internal/report"
	"riskmonitor/pkg/domain"
)

func scanWith(score int, level domain.Severity, findings ...domain.Finding) domain.Scan {
	return domain.Scan{
		ID:        domain.ScanID(uuid.New()),
		WebsiteID: domain.WebsiteID(uuid.New()),
		ScannedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Findings:  findings,
		Score:     score,
		Level:     level,
		Summary:   "Medium risk: improvements recommended.",
	}
}

func TestBuild_CleanScan(t *testing.T) {
	scan := scanWith(100, domain.SeverityLow)
	scan.Summary = "Low risk based on public checks."

	rep := report.Build("https://example.com/", scan)

	require.Equal(t, "https://example.com/", rep.Website)
	require.Equal(t, uuid.UUID(scan.ID).String(), rep.ScanID)
	require.Equal(t, scan.ScannedAt, rep.ScannedAt)
	require.False(t, rep.GeneratedAt.IsZero())

	require.Equal(t, 100, rep.Overall.Score)
	require.Equal(t, domain.SeverityLow, rep.Overall.Level)
	require.Equal(t, "Low risk based on public checks.", rep.Overall.Summary)

	require.Equal(t, []string{"No issues detected in this scan."}, rep.WhatsGood)
	require.Empty(t, rep.WhatsRisky)
	require.Empty(t, rep.WhatToFixFirst)
	require.Empty(t, rep.VerificationGuidance)
}

func TestBuild_SortsBySeverityHighFirst(t *testing.T) {
	scan := scanWith(47, domain.SeverityHigh,
		domain.Finding{Key: "robots_missing", Title: "robots.txt not reachable", Severity: domain.SeverityLow},
		domain.Finding{Key: "cookie_flags_missing", Title: "Cookie flags missing", Severity: domain.SeverityMedium},
		domain.Finding{Key: "https_missing", Title: "HTTPS not enforced", Severity: domain.SeverityHigh},
		domain.Finding{Key: "missing_referrer-policy", Title: "Missing security header: Referrer-Policy", Severity: domain.SeverityMedium},
	)

	rep := report.Build("https://example.com/", scan)

	require.Len(t, rep.WhatsRisky, 4)
	require.Equal(t, "HTTPS not enforced", rep.WhatsRisky[0].Title)
	// ties keep input order
	require.Equal(t, "Cookie flags missing", rep.WhatsRisky[1].Title)
	require.Equal(t, "Missing security header: Referrer-Policy", rep.WhatsRisky[2].Title)
	require.Equal(t, "robots.txt not reachable", rep.WhatsRisky[3].Title)

	// fix list mirrors the sorted order
	require.Equal(t, "HTTPS not enforced", rep.WhatToFixFirst[0].Title)
	require.Equal(t, domain.SeverityHigh, rep.WhatToFixFirst[0].Severity)
}

func TestBuild_FixListCappedAtFive(t *testing.T) {
	findings := make([]domain.Finding, 0, 7)
	for _, key := range []string{
		"missing_strict-transport-security",
		"missing_content-security-policy",
		"missing_x-frame-options",
		"missing_x-content-type-options",
		"missing_referrer-policy",
		"missing_permissions-policy",
		"cookie_flags_missing",
	} {
		findings = append(findings, domain.Finding{Key: key, Title: key, Severity: domain.SeverityMedium})
	}

	rep := report.Build("https://example.com/", scanWith(30, domain.SeverityHigh, findings...))

	require.Len(t, rep.WhatToFixFirst, 5)
	// the full list is still present elsewhere
	require.Len(t, rep.WhatsRisky, 7)
	require.Len(t, rep.VerificationGuidance, 7)
}

func TestBuild_CompoundedMediumsAreCalledOut(t *testing.T) {
	findings := make([]domain.Finding, 0, 6)
	for _, key := range []string{
		"missing_strict-transport-security",
		"missing_content-security-policy",
		"missing_x-frame-options",
		"missing_x-content-type-options",
		"missing_referrer-policy",
		"missing_permissions-policy",
	} {
		findings = append(findings, domain.Finding{Key: key, Title: key, Severity: domain.SeverityMedium})
	}

	rep := report.Build("https://example.com/", scanWith(40, domain.SeverityHigh, findings...))

	require.Contains(t, rep.WhatsGood, "No HIGH-severity issues detected.")
	require.Contains(t, rep.WhatsGood, "No LOW-severity issues detected.")
	require.Contains(t, rep.WhatsGood,
		"Note: overall risk is HIGH due to multiple medium issues combined.")
}

func TestBuild_VerificationGuidance(t *testing.T) {
	rep := report.Build("https://example.com/", scanWith(90, domain.SeverityLow,
		domain.Finding{Key: "server_header_present", Title: "Server header present (info leakage)", Severity: domain.SeverityLow},
		domain.Finding{Key: "not_a_known_key", Title: "Mystery", Severity: domain.SeverityLow},
	))

	require.Len(t, rep.VerificationGuidance, 2)
	require.Equal(t,
		"Open DevTools → Network → reload → Response Headers. Look for Server.",
		rep.VerificationGuidance[0].HowToVerify)
	require.Equal(t,
		"Check using browser DevTools (Network → Response Headers) or a public header checker.",
		rep.VerificationGuidance[1].HowToVerify)
}

func TestBuild_WhyItMattersCoversAllSeverities(t *testing.T) {
	rep := report.Build("https://example.com/", scanWith(100, domain.SeverityLow))

	require.Len(t, rep.WhyItMatters, 3)
	for _, severity := range []domain.Severity{
		domain.SeverityHigh, domain.SeverityMedium, domain.SeverityLow,
	} {
		require.NotEmpty(t, rep.WhyItMatters[severity])
	}
}

func TestBuild_JSONShape(t *testing.T) {
	rep := report.Build("https://example.com/", scanWith(90, domain.SeverityLow,
		domain.Finding{Key: "robots_missing", Title: "robots.txt not reachable", Severity: domain.SeverityLow}))

	raw, err := json.Marshal(rep)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{
		"website", "generatedAt", "scanId", "scannedAt", "overall",
		"whatsGood", "whatsRisky", "whyItMatters", "whatToFixFirst",
		"verificationGuidance",
	} {
		require.Contains(t, decoded, key)
	}

	overall, ok := decoded["overall"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, overall, "score")
	require.Contains(t, overall, "level")
	require.Contains(t, overall, "summary")
}
