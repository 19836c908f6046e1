package monitor

import "riskmonitor/pkg/domain"

// ShouldAlert decides whether a diff warrants a notification: any new MEDIUM
// or HIGH finding, any severity change ending at MEDIUM or HIGH, or any
// resolved finding (resolutions confirm a fix landed, which is newsworthy
// too). LOW-only additions never alert.
func ShouldAlert(diff Diff) bool {
	for _, f := range diff.Added {
		if f.Severity == domain.SeverityHigh || f.Severity == domain.SeverityMedium {
			return true
		}
	}
	for _, c := range diff.SeverityChanged {
		if c.After == domain.SeverityHigh || c.After == domain.SeverityMedium {
			return true
		}
	}

	return len(diff.Resolved) > 0
}
