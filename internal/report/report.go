// Package report renders a stored scan into a prioritized, human-readable
// report document. All text is assembled from static lookup tables keyed by
// severity and finding key; nothing here is dynamic beyond sorting.
package report

import (
	"sort"
	"time"

	"riskmonitor/pkg/domain"

	"github.com/google/uuid"
)

// fixListLimit caps the "what to fix first" section.
const fixListLimit = 5

// impact maps a severity to its static "why it matters" sentence.
var impact = map[domain.Severity]string{
	domain.SeverityHigh:   "High impact: could expose users, sessions, or critical data if combined with other weaknesses.",
	domain.SeverityMedium: "Medium impact: reduces browser-level protection and increases risk in common real-world scenarios.",
	domain.SeverityLow:    "Low impact: mostly informational or best-practice improvement.",
}

// verify maps a finding key to its static "how to verify" instruction.
// Unregistered keys fall back to genericVerify.
var verify = map[string]string{
	"missing_strict-transport-security": "Open DevTools → Network → reload → click the main request → Response Headers. Look for Strict-Transport-Security.",
	"missing_content-security-policy":   "Open DevTools → Network → reload → Response Headers. Look for Content-Security-Policy.",
	"missing_x-frame-options":           "Open DevTools → Network → reload → Response Headers. Look for X-Frame-Options.",
	"missing_x-content-type-options":    "Open DevTools → Network → reload → Response Headers. Look for X-Content-Type-Options.",
	"missing_referrer-policy":           "Open DevTools → Network → reload → Response Headers. Look for Referrer-Policy.",
	"missing_permissions-policy":        "Open DevTools → Network → reload → Response Headers. Look for Permissions-Policy.",
	"server_header_present":             "Open DevTools → Network → reload → Response Headers. Look for Server.",
	"cookie_flags_missing":              "Open DevTools → Application → Cookies. Check Secure / HttpOnly and SameSite attributes.",
	"robots_missing":                    "Open https://yourdomain/robots.txt in a browser and confirm if it loads.",
	"sitemap_missing":                   "Open https://yourdomain/sitemap.xml in a browser and confirm if it loads.",
	"https_missing":                     "Try opening the site with http:// and see if it redirects to https:// automatically.",
}

const genericVerify = "Check using browser DevTools (Network → Response Headers) or a public header checker."

// Overall summarizes the derived posture of the scan.
type Overall struct {
	Score   int             `json:"score"`
	Level   domain.Severity `json:"level"`
	Summary string          `json:"summary"`
}

// RiskItem is one finding as listed in the whatsRisky section.
type RiskItem struct {
	Title    string          `json:"title"`
	Severity domain.Severity `json:"severity"`
	Details  string          `json:"details"`
	Evidence string          `json:"evidence"`
}

// FixItem is one prioritized entry of the whatToFixFirst section.
type FixItem struct {
	Title        string          `json:"title"`
	Severity     domain.Severity `json:"severity"`
	WhyItMatters string          `json:"whyItMatters"`
	HowToVerify  string          `json:"howToVerify"`
}

// VerificationItem pairs a finding with its verification instruction.
type VerificationItem struct {
	Title       string `json:"title"`
	HowToVerify string `json:"howToVerify"`
}

// Report is the document produced for one stored scan.
type Report struct {
	Website     string    `json:"website"`
	GeneratedAt time.Time `json:"generatedAt"`
	ScanID      string    `json:"scanId"`
	ScannedAt   time.Time `json:"scannedAt"`

	Overall Overall `json:"overall"`

	WhatsGood            []string                   `json:"whatsGood"`
	WhatsRisky           []RiskItem                 `json:"whatsRisky"`
	WhyItMatters         map[domain.Severity]string `json:"whyItMatters"`
	WhatToFixFirst       []FixItem                  `json:"whatToFixFirst"`
	VerificationGuidance []VerificationItem         `json:"verificationGuidance"`
}

// Build renders the report for a scan of the given website. Findings are
// sorted by severity rank (HIGH first, stable for ties); every text field is
// a static lookup.
func Build(websiteURL string, scan domain.Scan) Report {
	findings := make([]domain.Finding, len(scan.Findings))
	copy(findings, scan.Findings)
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Severity.Rank() < findings[j].Severity.Rank()
	})

	counts := map[domain.Severity]int{}
	for _, f := range findings {
		counts[f.Severity]++
	}

	good := make([]string, 0, 4)
	if len(findings) == 0 {
		good = append(good, "No issues detected in this scan.")
	} else {
		if counts[domain.SeverityHigh] == 0 {
			good = append(good, "No HIGH-severity issues detected.")
		}
		if counts[domain.SeverityMedium] == 0 {
			good = append(good, "No MEDIUM-severity issues detected.")
		}
		if counts[domain.SeverityLow] == 0 {
			good = append(good, "No LOW-severity issues detected.")
		}
	}
	// when compounded MEDIUMs alone pushed the overall level to HIGH, say so
	if scan.Level == domain.SeverityHigh && counts[domain.SeverityHigh] == 0 {
		good = append(good, "Note: overall risk is HIGH due to multiple medium issues combined.")
	}

	risky := make([]RiskItem, 0, len(findings))
	guidance := make([]VerificationItem, 0, len(findings))
	for _, f := range findings {
		risky = append(risky, RiskItem{
			Title:    f.Title,
			Severity: f.Severity,
			Details:  f.Details,
			Evidence: f.Evidence,
		})
		guidance = append(guidance, VerificationItem{
			Title:       f.Title,
			HowToVerify: verifyFor(f.Key),
		})
	}

	fixFirst := make([]FixItem, 0, fixListLimit)
	for _, f := range findings {
		if len(fixFirst) == fixListLimit {
			break
		}
		fixFirst = append(fixFirst, FixItem{
			Title:        f.Title,
			Severity:     f.Severity,
			WhyItMatters: impact[f.Severity],
			HowToVerify:  verifyFor(f.Key),
		})
	}

	return Report{
		Website:     websiteURL,
		GeneratedAt: time.Now().UTC(),
		ScanID:      uuid.UUID(scan.ID).String(),
		ScannedAt:   scan.ScannedAt,

		Overall: Overall{
			Score:   scan.Score,
			Level:   scan.Level,
			Summary: scan.Summary,
		},

		WhatsGood:  good,
		WhatsRisky: risky,
		WhyItMatters: map[domain.Severity]string{
			domain.SeverityHigh:   impact[domain.SeverityHigh],
			domain.SeverityMedium: impact[domain.SeverityMedium],
			domain.SeverityLow:    impact[domain.SeverityLow],
		},
		WhatToFixFirst:       fixFirst,
		VerificationGuidance: guidance,
	}
}

func verifyFor(key string) string {
	if v, ok := verify[key]; ok {
		return v
	}

	return genericVerify
}
