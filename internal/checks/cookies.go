package checks

import (
	"strings"

	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/fetcher"
)

// cookieFlags are the attributes every cookie is expected to carry. Matching
// is a case-insensitive substring check against the raw Set-Cookie string.
var cookieFlags = []string{"Secure", "HttpOnly", "SameSite"}

// Cookies inspects Set-Cookie response headers. A response without cookies
// yields no findings; otherwise the first cookie missing any expected flag
// produces a single MEDIUM finding and the remaining cookies are skipped.
func Cookies(res *fetcher.Response) []domain.Finding {
	cookies := res.HeaderValues("set-cookie")
	if len(cookies) == 0 {
		return nil
	}

	for _, cookie := range cookies {
		lower := strings.ToLower(cookie)

		var missing []string
		for _, flag := range cookieFlags {
			if !strings.Contains(lower, strings.ToLower(flag)) {
				missing = append(missing, flag)
			}
		}
		if len(missing) == 0 {
			continue
		}

		// first offending cookie is enough, the fix is the same for all
		return []domain.Finding{{
			Key:      "cookie_flags_missing",
			Title:    "Cookie flags missing",
			Severity: domain.SeverityMedium,
			Details:  "Some cookies are missing recommended flags: " + strings.Join(missing, ", ") + ".",
			Evidence: truncate(cookie, evidenceLimit),
		}}
	}

	return nil
}
