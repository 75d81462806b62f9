package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// careers.sl lists roughly ten postings per page.
	slugsPerPage     = 10
	defaultPageDelay = 2 * time.Second
)

// Detail pages are fetched once per posting.
const detailRequestsPerSecond = 2

// CareerSL scrapes the careers.sl listing pages.
type CareerSL struct {
	baseURL       string
	fetcher       Fetcher
	synth         *Synthesizer
	enrichDetails bool
	enricher      *DetailEnricher
	pageDelay     time.Duration
	now           func() time.Time
	logger        zerolog.Logger
}

type CareerSLOption func(*CareerSL)

func WithFetcher(f Fetcher) CareerSLOption {
	return func(c *CareerSL) { c.fetcher = f }
}

// WithPageDelay sets the pause between successive listing pages.
func WithPageDelay(d time.Duration) CareerSLOption {
	return func(c *CareerSL) { c.pageDelay = d }
}

func WithRand(r Rand) CareerSLOption {
	return func(c *CareerSL) { c.synth.Rand = r }
}

func WithClock(now func() time.Time) CareerSLOption {
	return func(c *CareerSL) {
		c.now = now
		c.synth.Now = now
	}
}

func WithLogger(l zerolog.Logger) CareerSLOption {
	return func(c *CareerSL) { c.logger = l }
}

// WithDetailEnrichment makes every synthesized posting fetch its detail page.
func WithDetailEnrichment(enabled bool) CareerSLOption {
	return func(c *CareerSL) { c.enrichDetails = enabled }
}

func NewCareerSL(baseURL string, opts ...CareerSLOption) *CareerSL {
	baseURL = strings.TrimRight(baseURL, "/")
	c := &CareerSL{
		baseURL:   baseURL,
		fetcher:   NewHTTPFetcher(nil),
		synth:     NewSynthesizer(baseURL),
		pageDelay: defaultPageDelay,
		now:       time.Now,
		logger:    log.With().Str("component", SourceCareerSL).Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.enrichDetails {
		c.enricher = NewDetailEnricher(NewRateLimitedFetcher(c.fetcher, detailRequestsPerSecond), c.logger)
	}
	return c
}

func (c *CareerSL) Name() string {
	return SourceCareerSL
}

// Scrape walks up to ceil(limit/10) listing pages, synthesizes a posting per
// slug, filters by keywords and truncates to limit. It never fails: when no
// slug is found, or anything panics, the fallback catalog is returned.
func (c *CareerSL) Scrape(ctx context.Context, params SearchParams) (jobs []JobPosting) {
	limit := normalizeLimit(params.Limit)

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().Interface("panic", r).Msg("scrape aborted, serving fallback catalog")
			jobs = c.fallback(limit)
		}
	}()

	c.logger.Info().
		Str("keywords", params.Keywords).
		Str("location", params.Location).
		Int("limit", limit).
		Msg("starting scrape")

	slugs := c.collectSlugs(ctx, limit)
	if len(slugs) == 0 {
		c.logger.Warn().Msg("no job links found, serving fallback catalog")
		return c.fallback(limit)
	}

	jobs = make([]JobPosting, 0, len(slugs))
	for _, slug := range slugs {
		job := c.synth.FromSlug(slug)
		if c.enricher != nil {
			job = c.enricher.Enrich(ctx, job)
		}
		jobs = append(jobs, job)
	}

	jobs = FilterByKeywords(params.Keywords, jobs, true)
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}

	c.logger.Info().Int("count", len(jobs)).Msg("scrape complete")
	return jobs
}

func (c *CareerSL) collectSlugs(ctx context.Context, limit int) []string {
	maxPages := (limit + slugsPerPage - 1) / slugsPerPage
	seen := make(map[string]bool)
	slugs := make([]string, 0, limit)

	for page := 1; page <= maxPages && len(slugs) < limit; page++ {
		if page > 1 {
			if err := pause(ctx, c.pageDelay); err != nil {
				c.logger.Warn().Err(err).Int("page", page).Msg("stopped paginating")
				break
			}
		}

		url := c.pageURL(page)
		html, err := c.fetcher.Fetch(ctx, url)
		if err != nil {
			c.logger.Warn().Err(err).Str("url", url).Msg("failed to fetch listing page")
			continue
		}

		found := ParseJobSlugs(html, 0)
		c.logger.Debug().Str("url", url).Int("html_len", len(html)).Int("slugs", len(found)).Msg("parsed listing page")

		for _, slug := range found {
			if seen[slug] {
				continue
			}
			seen[slug] = true
			slugs = append(slugs, slug)
			if len(slugs) == limit {
				break
			}
		}
	}
	return slugs
}

// pause sleeps for d, measured from the end of the previous page fetch.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *CareerSL) pageURL(page int) string {
	if page == 1 {
		return c.baseURL + "/jobs/"
	}
	return fmt.Sprintf("%s/jobs/page/%d/", c.baseURL, page)
}

func (c *CareerSL) fallback(limit int) []JobPosting {
	jobs := FallbackJobs(c.now())
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs
}
