package scraper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkedInScrape(t *testing.T) {
	l := NewLinkedIn()
	ctx := context.Background()

	tests := []struct {
		name      string
		params    SearchParams
		wantCount int
	}{
		{"all samples", SearchParams{}, 3},
		{"skill match", SearchParams{Keywords: "python"}, 1},
		{"company match", SearchParams{Keywords: "growth"}, 1},
		{"description is not searched", SearchParams{Keywords: "datasets"}, 0},
		{"limit", SearchParams{Limit: 2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := l.Scrape(ctx, tt.params)

			assert.Len(t, jobs, tt.wantCount)
			for _, j := range jobs {
				assert.Equal(t, SourceLinkedIn, j.Source)
				assert.True(t, IsJobType(j.Type), j.Type)
				assert.NotEmpty(t, j.Skills)
			}
		})
	}
}
