package monitor

import "riskmonitor/pkg/domain"

// SeverityChange records a finding whose severity differs between two scans.
// Title is taken from the current scan.
type SeverityChange struct {
	Key    string          `json:"key"`
	Before domain.Severity `json:"before"`
	After  domain.Severity `json:"after"`
	Title  string          `json:"title"`
}

// Diff is the added/resolved/severity-changed delta between two scans of the
// same website.
type Diff struct {
	// Added holds current findings whose key is absent from the previous scan.
	Added []domain.Finding `json:"added"`
	// Resolved holds previous findings whose key is absent from the current scan.
	Resolved []domain.Finding `json:"resolved"`
	// SeverityChanged holds keys present in both scans with differing severity.
	SeverityChanged []SeverityChange `json:"severityChanged"`
}

// keyMap indexes findings by key, preserving first-insertion order. On a
// duplicate key the value is replaced (last write wins) while the position is
// kept; duplicates should not occur given the checks' key-uniqueness
// invariant, this just makes the diff total.
func keyMap(findings []domain.Finding) ([]string, map[string]domain.Finding) {
	keys := make([]string, 0, len(findings))
	m := make(map[string]domain.Finding, len(findings))
	for _, f := range findings {
		if _, ok := m[f.Key]; !ok {
			keys = append(keys, f.Key)
		}
		m[f.Key] = f
	}

	return keys, m
}

// DiffScans compares the previous scan (nil for a website's first scan ever)
// against the current one. With no previous scan every current finding is
// classified as added and nothing is resolved or severity-changed.
func DiffScans(prev *domain.Scan, current domain.Scan) Diff {
	var prevFindings []domain.Finding
	if prev != nil {
		prevFindings = prev.Findings
	}

	prevKeys, prevMap := keyMap(prevFindings)
	currentKeys, currentMap := keyMap(current.Findings)

	diff := Diff{
		Added:           []domain.Finding{},
		Resolved:        []domain.Finding{},
		SeverityChanged: []SeverityChange{},
	}

	for _, key := range currentKeys {
		cf := currentMap[key]
		pf, ok := prevMap[key]
		if !ok {
			diff.Added = append(diff.Added, cf)

			continue
		}
		if pf.Severity != cf.Severity {
			diff.SeverityChanged = append(diff.SeverityChanged, SeverityChange{
				Key:    key,
				Before: pf.Severity,
				After:  cf.Severity,
				Title:  cf.Title,
			})
		}
	}

	for _, key := range prevKeys {
		if _, ok := currentMap[key]; !ok {
			diff.Resolved = append(diff.Resolved, prevMap[key])
		}
	}

	return diff
}
