package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterFixture() []JobPosting {
	return []JobPosting{
		{
			Title:       "Audit Officer",
			Company:     "Government Agency",
			Skills:      []string{"Officer"},
			Description: "Review ledgers for the district council.",
		},
		{
			Title:       "Data Analyst",
			Company:     "Data Insights Ltd",
			Skills:      []string{"SQL", "Python"},
			Description: "Build dashboards.",
		},
	}
}

func TestFilterByKeywordsEmptyQueryIsIdentity(t *testing.T) {
	jobs := filterFixture()

	assert.Equal(t, jobs, FilterByKeywords("", jobs, true))
	assert.Equal(t, jobs, FilterByKeywords("   \t", jobs, false))
}

func TestFilterByKeywords(t *testing.T) {
	tests := []struct {
		name              string
		query             string
		searchDescription bool
		wantTitles        []string
	}{
		{"no term matches", "plumber", true, []string{}},
		{"case insensitive title", "AUDIT", true, []string{"Audit Officer"}},
		{"company substring", "insights", true, []string{"Data Analyst"}},
		{"skill substring", "pyth", true, []string{"Data Analyst"}},
		{"any term matches", "python officer", true, []string{"Audit Officer", "Data Analyst"}},
		{"description searched", "ledgers", true, []string{"Audit Officer"}},
		{"description ignored", "ledgers", false, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByKeywords(tt.query, filterFixture(), tt.searchDescription)

			titles := make([]string, 0, len(got))
			for _, j := range got {
				titles = append(titles, j.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}
