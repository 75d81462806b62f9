package scraper

import "strings"

// FilterByKeywords keeps postings where any whitespace-separated term of
// query occurs, case-insensitively, in the title, company, a skill, or (when
// searchDescription is set) the description. An empty query returns jobs
// unchanged.
func FilterByKeywords(query string, jobs []JobPosting, searchDescription bool) []JobPosting {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return jobs
	}

	filtered := make([]JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if matchesAny(job, terms, searchDescription) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

func matchesAny(job JobPosting, terms []string, searchDescription bool) bool {
	title := strings.ToLower(job.Title)
	company := strings.ToLower(job.Company)
	description := strings.ToLower(job.Description)

	for _, term := range terms {
		if strings.Contains(title, term) || strings.Contains(company, term) {
			return true
		}
		for _, skill := range job.Skills {
			if strings.Contains(strings.ToLower(skill), term) {
				return true
			}
		}
		if searchDescription && strings.Contains(description, term) {
			return true
		}
	}
	return false
}
