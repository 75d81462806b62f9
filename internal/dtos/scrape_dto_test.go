package dtos

import (
	"testing"

	"github.com/salonejobs/jobmatch/internal/scraper"
	"github.com/stretchr/testify/assert"
)

func TestScrapeRequestParamsDefaults(t *testing.T) {
	p := ScrapeRequest{}.Params()

	assert.Equal(t, scraper.SearchParams{Location: "Sierra Leone", Limit: 20}, p)
}

func TestScrapeRequestParamsKeepsValues(t *testing.T) {
	p := ScrapeRequest{Keywords: "nurse", Location: "Kono", Limit: 5}.Params()

	assert.Equal(t, scraper.SearchParams{Keywords: "nurse", Location: "Kono", Limit: 5}, p)
}
