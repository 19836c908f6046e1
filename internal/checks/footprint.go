package checks

import (
	"context"
	"net/url"
	"sync"

	"riskmonitor/pkg/domain"
	"riskmonitor/pkg/fetcher"
)

// footprintProbes are the crawl artifacts public sites are expected to serve.
var footprintProbes = []struct {
	path    string
	key     string
	title   string
	details string
}{
	{
		path:    "/robots.txt",
		key:     "robots_missing",
		title:   "robots.txt not reachable",
		details: "robots.txt could not be reached. Not always required, but common for public sites.",
	},
	{
		path:    "/sitemap.xml",
		key:     "sitemap_missing",
		title:   "sitemap.xml not reachable",
		details: "sitemap.xml could not be reached. Not always required, but helpful for indexing/visibility.",
	},
}

// Footprint probes robots.txt and sitemap.xml relative to the site's base URL
// and emits a LOW finding for each artifact that is unreachable or answers
// with status >= 400. A fetch failure counts as unreachable, never as an
// error: footprint probes are findings-producing, not fatal. The two probes
// run concurrently.
func Footprint(ctx context.Context, f fetcher.Fetcher, baseURL string) []domain.Finding {
	base, err := url.Parse(baseURL)
	if err != nil {
		// no base to resolve against, nothing to probe
		return nil
	}

	results := make([]*domain.Finding, len(footprintProbes))

	var wg sync.WaitGroup
	for i, probe := range footprintProbes {
		target := base.ResolveReference(&url.URL{Path: probe.path}).String()

		wg.Add(1)
		go func() {
			defer wg.Done()

			res, err := f.Fetch(ctx, target)
			if err == nil && res.Status < 400 {
				return
			}

			results[i] = &domain.Finding{
				Key:      probe.key,
				Title:    probe.title,
				Severity: domain.SeverityLow,
				Details:  probe.details,
				Evidence: target,
			}
		}()
	}
	wg.Wait()

	// keep probe order stable regardless of completion order
	var findings []domain.Finding
	for _, res := range results {
		if res != nil {
			findings = append(findings, *res)
		}
	}

	return findings
}
