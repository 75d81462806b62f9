package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salonejobs/jobmatch/internal/dtos"
	apperrors "github.com/salonejobs/jobmatch/internal/errors"
	"github.com/salonejobs/jobmatch/internal/models"
	"github.com/salonejobs/jobmatch/internal/scraper"
	"github.com/salonejobs/jobmatch/internal/services"
)

const (
	msgSaved       = "Jobs scraped and saved successfully"
	msgNotSaved    = "Jobs scraped successfully (database not available)"
	msgTestScraped = "Test scrape completed"
)

// JobScraper is what the handler needs from the scrape service.
type JobScraper interface {
	Scrape(ctx context.Context, source string, params scraper.SearchParams) (services.ScrapeResult, error)
	ScrapeAll(ctx context.Context, params scraper.SearchParams) services.AggregateResult
	TestScrape(ctx context.Context, params scraper.SearchParams) ([]scraper.JobPosting, error)
	List(ctx context.Context, source string) ([]models.ScrapedJob, error)
	ListAll(ctx context.Context) []models.ScrapedJob
}

type ScrapeHandler struct {
	scraper JobScraper
}

func NewScrapeHandler(s JobScraper) *ScrapeHandler {
	return &ScrapeHandler{scraper: s}
}

// Register mounts the scrape routes on the group.
func (h *ScrapeHandler) Register(rg *gin.RouterGroup) {
	for _, source := range []string{scraper.SourceCareerSL, scraper.SourceLinkedIn} {
		rg.POST("/scrape-jobs/"+source, h.ScrapeSource(source))
		rg.GET("/scrape-jobs/"+source, h.ListSource(source))
	}
	rg.POST("/scrape-jobs/all", h.ScrapeAll)
	rg.GET("/scrape-jobs/all", h.ListAll)
	rg.POST("/test-scraper", h.TestScrape)
}

// ScrapeSource is POST /scrape-jobs/:source
func (h *ScrapeHandler) ScrapeSource(source string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := bindScrapeRequest(c)
		if err != nil {
			respondError(c, err)
			return
		}

		res, err := h.scraper.Scrape(c.Request.Context(), source, req.Params())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, dtos.ScrapeResponse{
			Success: true,
			Jobs:    res.Jobs,
			Saved:   res.Saved,
			Source:  source,
			Message: saveMessage(res.Persisted),
		})
	}
}

// ListSource is GET /scrape-jobs/:source
func (h *ScrapeHandler) ListSource(source string) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobs, err := h.scraper.List(c.Request.Context(), source)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dtos.ListJobsResponse{Jobs: jobs})
	}
}

// ScrapeAll is POST /scrape-jobs/all
func (h *ScrapeHandler) ScrapeAll(c *gin.Context) {
	req, err := bindScrapeRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	res := h.scraper.ScrapeAll(c.Request.Context(), req.Params())
	c.JSON(http.StatusOK, dtos.AggregateScrapeResponse{
		Success: true,
		Jobs:    res.Jobs,
		Saved:   res.Saved,
		Sources: res.Sources,
	})
}

// ListAll is GET /scrape-jobs/all
func (h *ScrapeHandler) ListAll(c *gin.Context) {
	c.JSON(http.StatusOK, dtos.ListJobsResponse{Jobs: h.scraper.ListAll(c.Request.Context())})
}

// TestScrape is POST /test-scraper: a careers.sl scrape that is not persisted.
func (h *ScrapeHandler) TestScrape(c *gin.Context) {
	req, err := bindScrapeRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	jobs, err := h.scraper.TestScrape(c.Request.Context(), req.Params())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.TestScrapeResponse{
		Success: true,
		Jobs:    jobs,
		Count:   len(jobs),
		Message: msgTestScraped,
	})
}

// bindScrapeRequest treats an empty body as {}.
func bindScrapeRequest(c *gin.Context) (dtos.ScrapeRequest, error) {
	var req dtos.ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, apperrors.InvalidInput("Invalid request", err)
	}
	return req, nil
}

func saveMessage(persisted bool) string {
	if persisted {
		return msgSaved
	}
	return msgNotSaved
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
}
