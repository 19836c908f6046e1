package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"riskmonitor/internal/scoring"
	"riskmonitor/pkg/domain"
)

func findingsOf(severities ...domain.Severity) []domain.Finding {
	findings := make([]domain.Finding, 0, len(severities))
	for i, s := range severities {
		findings = append(findings, domain.Finding{Key: string(rune('a' + i)), Severity: s})
	}

	return findings
}

func TestScore_NoFindings(t *testing.T) {
	score, level := scoring.Score(nil)
	require.Equal(t, 100, score)
	require.Equal(t, domain.SeverityLow, level)
}

func TestScore_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		findings  []domain.Finding
		wantScore int
		wantLevel domain.Severity
	}{
		{
			name:      "two mediums stay low",
			findings:  findingsOf(domain.SeverityMedium, domain.SeverityMedium),
			wantScore: 80,
			wantLevel: domain.SeverityLow,
		},
		{
			name: "one more point crosses into medium",
			findings: findingsOf(domain.SeverityMedium, domain.SeverityMedium,
				domain.SeverityLow),
			wantScore: 77,
			wantLevel: domain.SeverityMedium,
		},
		{
			name: "exactly fifty is medium",
			findings: findingsOf(domain.SeverityHigh, domain.SeverityMedium,
				domain.SeverityMedium),
			wantScore: 50,
			wantLevel: domain.SeverityMedium,
		},
		{
			name: "below fifty is high",
			findings: findingsOf(domain.SeverityHigh, domain.SeverityMedium,
				domain.SeverityMedium, domain.SeverityLow),
			wantScore: 47,
			wantLevel: domain.SeverityHigh,
		},
		{
			name:      "single high",
			findings:  findingsOf(domain.SeverityHigh),
			wantScore: 70,
			wantLevel: domain.SeverityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, level := scoring.Score(tt.findings)
			require.Equal(t, tt.wantScore, score)
			require.Equal(t, tt.wantLevel, level)
		})
	}
}

func TestScore_DeductionIsCapped(t *testing.T) {
	// 3 highs would deduct 90 uncapped; the floor is 30
	score, level := scoring.Score(findingsOf(
		domain.SeverityHigh, domain.SeverityHigh, domain.SeverityHigh))
	require.Equal(t, 30, score)
	require.Equal(t, domain.SeverityHigh, level)
}

func TestScore_OrderIndependent(t *testing.T) {
	a := findingsOf(domain.SeverityHigh, domain.SeverityLow, domain.SeverityMedium)
	b := findingsOf(domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh)

	scoreA, levelA := scoring.Score(a)
	scoreB, levelB := scoring.Score(b)
	require.Equal(t, scoreA, scoreB)
	require.Equal(t, levelA, levelB)
}

func TestScore_FullCheckSetWorstCase(t *testing.T) {
	// 6 missing headers + cookie flags -> 7 mediums, server header + robots +
	// sitemap -> 3 lows, no https -> 1 high: 30+70+9 deduction capped at 70
	findings := findingsOf(
		domain.SeverityMedium, domain.SeverityMedium, domain.SeverityMedium,
		domain.SeverityMedium, domain.SeverityMedium, domain.SeverityMedium,
		domain.SeverityMedium,
		domain.SeverityLow, domain.SeverityLow, domain.SeverityLow,
		domain.SeverityHigh)

	score, level := scoring.Score(findings)
	require.Equal(t, 30, score)
	require.Equal(t, domain.SeverityHigh, level)
}

func TestSummary(t *testing.T) {
	require.Equal(t, "Low risk based on public checks.", scoring.Summary(domain.SeverityLow))
	require.Equal(t, "Medium risk: improvements recommended.", scoring.Summary(domain.SeverityMedium))
	require.Equal(t, "High risk: prioritize fixes.", scoring.Summary(domain.SeverityHigh))
}
