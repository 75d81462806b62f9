package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	apperrors "github.com/salonejobs/jobmatch/internal/errors"
	"github.com/salonejobs/jobmatch/internal/logger"
	"github.com/salonejobs/jobmatch/internal/models"
	"github.com/salonejobs/jobmatch/internal/scraper"
	"golang.org/x/sync/errgroup"
)

// JobStore is the persistence side of a scrape. JobService implements it.
type JobStore interface {
	Upsert(ctx context.Context, jobs []scraper.JobPosting, scrapedAt time.Time) (int, error)
	ListActive(ctx context.Context, source string, limit int) ([]models.ScrapedJob, error)
}

// aggregateOrder is the order sources appear in aggregate results.
var aggregateOrder = []string{scraper.SourceLinkedIn, scraper.SourceCareerSL}

type ScrapeResult struct {
	Jobs []scraper.JobPosting
	// Saved is the number of rows written; 0 when persistence failed.
	Saved     int
	Persisted bool
}

type AggregateResult struct {
	ScrapeResult
	Sources map[string]int
}

// ScrapeService runs sources and hands their output to the store. Persistence
// failures never fail a scrape.
type ScrapeService struct {
	sources map[string]scraper.Source
	store   JobStore
	now     func() time.Time
	logger  zerolog.Logger
}

func NewScrapeService(store JobStore, sources ...scraper.Source) *ScrapeService {
	byName := make(map[string]scraper.Source, len(sources))
	for _, src := range sources {
		byName[src.Name()] = src
	}
	return &ScrapeService{
		sources: byName,
		store:   store,
		now:     time.Now,
		logger:  logger.Component("scrape_service"),
	}
}

func (s *ScrapeService) source(name string) (scraper.Source, error) {
	src, ok := s.sources[name]
	if !ok {
		return nil, apperrors.NotFound(fmt.Sprintf("unknown source %q", name), nil)
	}
	return src, nil
}

// Scrape runs one source and persists its postings.
func (s *ScrapeService) Scrape(ctx context.Context, name string, params scraper.SearchParams) (ScrapeResult, error) {
	src, err := s.source(name)
	if err != nil {
		return ScrapeResult{}, err
	}

	jobs := src.Scrape(ctx, params)
	saved, persisted := s.persist(ctx, jobs)
	return ScrapeResult{Jobs: jobs, Saved: saved, Persisted: persisted}, nil
}

// ScrapeAll runs every configured source concurrently with half the limit
// each (rounded up) and persists the union, capped at the limit.
func (s *ScrapeService) ScrapeAll(ctx context.Context, params scraper.SearchParams) AggregateResult {
	if params.Limit <= 0 {
		params.Limit = scraper.DefaultLimit
	}
	perSource := params
	perSource.Limit = (params.Limit + 1) / 2

	results := make([][]scraper.JobPosting, len(aggregateOrder))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range aggregateOrder {
		i := i
		src, ok := s.sources[name]
		if !ok {
			continue
		}
		g.Go(func() error {
			results[i] = src.Scrape(gctx, perSource)
			return nil
		})
	}
	_ = g.Wait()

	// Rounding up can overshoot an odd limit by one; the tail is cut and the
	// per-source counts describe what is returned.
	counts := make(map[string]int, len(aggregateOrder))
	jobs := []scraper.JobPosting{}
	for i, name := range aggregateOrder {
		take := min(len(results[i]), params.Limit-len(jobs))
		counts[name] = take
		jobs = append(jobs, results[i][:take]...)
	}

	saved, persisted := s.persist(ctx, jobs)
	return AggregateResult{
		ScrapeResult: ScrapeResult{Jobs: jobs, Saved: saved, Persisted: persisted},
		Sources:      counts,
	}
}

// TestScrape runs the careers.sl source without persisting anything.
func (s *ScrapeService) TestScrape(ctx context.Context, params scraper.SearchParams) ([]scraper.JobPosting, error) {
	src, err := s.source(scraper.SourceCareerSL)
	if err != nil {
		return nil, err
	}
	return src.Scrape(ctx, params), nil
}

// List returns the stored active rows of one source.
func (s *ScrapeService) List(ctx context.Context, name string) ([]models.ScrapedJob, error) {
	if _, err := s.source(name); err != nil {
		return nil, err
	}
	return s.store.ListActive(ctx, name, DefaultListLimit)
}

// ListAll unions the stored rows of every source. A source whose listing
// fails contributes nothing.
func (s *ScrapeService) ListAll(ctx context.Context) []models.ScrapedJob {
	results := make([][]models.ScrapedJob, len(aggregateOrder))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range aggregateOrder {
		i, name := i, name
		if _, ok := s.sources[name]; !ok {
			continue
		}
		g.Go(func() error {
			rows, err := s.store.ListActive(gctx, name, DefaultListLimit)
			if err != nil {
				s.logger.Warn().Err(err).Str("source", name).Msg("list failed, skipping source")
				return nil
			}
			results[i] = rows
			return nil
		})
	}
	_ = g.Wait()

	jobs := []models.ScrapedJob{}
	for _, rows := range results {
		jobs = append(jobs, rows...)
	}
	return jobs
}

// persist hands every batch to the store, empty ones included, so a missing
// database is reported even when nothing was scraped.
func (s *ScrapeService) persist(ctx context.Context, jobs []scraper.JobPosting) (int, bool) {
	saved, err := s.store.Upsert(ctx, jobs, s.now())
	if err != nil {
		s.logger.Warn().Err(err).Int("jobs", len(jobs)).Msg("persistence unavailable, returning unsaved jobs")
		return 0, false
	}
	return saved, true
}
