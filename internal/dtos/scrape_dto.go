package dtos

import (
	"github.com/salonejobs/jobmatch/internal/models"
	"github.com/salonejobs/jobmatch/internal/scraper"
)

type ScrapeRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
	// values <= 0 mean the default of 20
	Limit int `json:"limit" binding:"max=100"`
}

// Params applies the request defaults.
func (r ScrapeRequest) Params() scraper.SearchParams {
	p := scraper.SearchParams{
		Keywords: r.Keywords,
		Location: r.Location,
		Limit:    r.Limit,
	}
	if p.Location == "" {
		p.Location = scraper.DefaultLocation
	}
	if p.Limit <= 0 {
		p.Limit = scraper.DefaultLimit
	}
	return p
}

type ScrapeResponse struct {
	Success bool                 `json:"success"`
	Jobs    []scraper.JobPosting `json:"jobs"`
	Saved   int                  `json:"saved"`
	Source  string               `json:"source,omitempty"`
	Message string               `json:"message,omitempty"`
}

type AggregateScrapeResponse struct {
	Success bool                 `json:"success"`
	Jobs    []scraper.JobPosting `json:"jobs"`
	Saved   int                  `json:"saved"`
	Sources map[string]int       `json:"sources"`
}

type TestScrapeResponse struct {
	Success bool                 `json:"success"`
	Jobs    []scraper.JobPosting `json:"jobs"`
	Count   int                  `json:"count"`
	Message string               `json:"message"`
}

type ListJobsResponse struct {
	Jobs []models.ScrapedJob `json:"jobs"`
}
