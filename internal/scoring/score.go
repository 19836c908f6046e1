// Package scoring derives the posture score and overall level from a finding
// set. The weights, cap and thresholds are product constants carried over
// unchanged for compatibility with historical scans.
package scoring

import "riskmonitor/pkg/domain"

// deductions per finding severity.
const (
	deductionHigh   = 30
	deductionMedium = 10
	deductionLow    = 3
)

// maxTotalDeduction caps the summed deduction so the score never falls below
// 30 regardless of finding count; the metric stays interpretable instead of
// cratering to 0.
const maxTotalDeduction = 70

// Score maps a finding set to its score in [0,100] and overall level. It is a
// total, deterministic, order-independent function of the multiset of
// severities only; titles, keys and evidence do not affect the result.
func Score(findings []domain.Finding) (int, domain.Severity) {
	deduction := 0
	for _, f := range findings {
		switch f.Severity {
		case domain.SeverityHigh:
			deduction += deductionHigh
		case domain.SeverityMedium:
			deduction += deductionMedium
		case domain.SeverityLow:
			deduction += deductionLow
		}
	}

	if deduction > maxTotalDeduction {
		deduction = maxTotalDeduction
	}

	score := 100 - deduction
	if score < 0 {
		score = 0
	}

	// 80-100 LOW, 50-79 MEDIUM, 0-49 HIGH
	level := domain.SeverityLow
	switch {
	case score < 50:
		level = domain.SeverityHigh
	case score < 80:
		level = domain.SeverityMedium
	}

	return score, level
}

// Summary returns the one-line description stored alongside a scan's level.
func Summary(level domain.Severity) string {
	switch level {
	case domain.SeverityLow:
		return "Low risk based on public checks."
	case domain.SeverityMedium:
		return "Medium risk: improvements recommended."
	default:
		return "High risk: prioritize fixes."
	}
}
