package scraper

import "regexp"

// Tried in order; the first pattern with any match wins.
var jobLinkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`href="/job/([^/]+)/"`),
	regexp.MustCompile(`/job/([^/]+)/"`),
}

// ParseJobSlugs extracts job-detail slugs from a listing page, deduplicated
// in first-seen order and capped at limit. A non-positive limit means no cap.
func ParseJobSlugs(html string, limit int) []string {
	var matches [][]string
	for _, pattern := range jobLinkPatterns {
		matches = pattern.FindAllStringSubmatch(html, -1)
		if len(matches) > 0 {
			break
		}
	}

	seen := make(map[string]bool, len(matches))
	slugs := make([]string, 0, len(matches))
	for _, m := range matches {
		slug := m[1]
		if seen[slug] {
			continue
		}
		seen[slug] = true
		slugs = append(slugs, slug)
		if limit > 0 && len(slugs) == limit {
			break
		}
	}
	return slugs
}
