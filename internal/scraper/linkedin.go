package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LinkedIn serves a fixed sample of postings. LinkedIn blocks anonymous
// scraping, so there is no live fetch behind this source.
type LinkedIn struct {
	now    func() time.Time
	logger zerolog.Logger
}

func NewLinkedIn() *LinkedIn {
	return &LinkedIn{
		now:    time.Now,
		logger: log.With().Str("component", SourceLinkedIn).Logger(),
	}
}

func (l *LinkedIn) Name() string {
	return SourceLinkedIn
}

// Scrape filters the sample by keywords over title, company and skills, then
// truncates to the limit.
func (l *LinkedIn) Scrape(ctx context.Context, params SearchParams) []JobPosting {
	limit := normalizeLimit(params.Limit)

	jobs := FilterByKeywords(params.Keywords, linkedInSample(l.now()), false)
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}

	l.logger.Info().Str("keywords", params.Keywords).Int("count", len(jobs)).Msg("scrape complete")
	return jobs
}

func linkedInSample(now time.Time) []JobPosting {
	ts := now.UnixMilli()
	id := func(n int) string {
		return fmt.Sprintf("%s_%d_%d", SourceLinkedIn, ts, n)
	}

	return []JobPosting{
		{
			ID:          id(1),
			Title:       "Senior Software Engineer",
			Company:     "Tech Innovation Hub",
			Location:    "Freetown, Sierra Leone",
			Type:        TypeFullTime,
			Salary:      "$3,000-5,000/month",
			Skills:      []string{"React", "Node.js", "TypeScript", "MongoDB"},
			PostedAt:    "2 days ago",
			Description: "We're looking for a senior software engineer to join our growing team...",
			URL:         "https://linkedin.com/jobs/view/senior-software-engineer-123456",
			Source:      SourceLinkedIn,
		},
		{
			ID:          id(2),
			Title:       "Digital Marketing Manager",
			Company:     "Growth Agency SL",
			Location:    "Freetown, Sierra Leone",
			Type:        TypeFullTime,
			Salary:      "$2,000-3,500/month",
			Skills:      []string{"Digital Marketing", "SEO", "Social Media", "Analytics"},
			PostedAt:    "1 week ago",
			Description: "Lead our digital marketing efforts and help clients grow their online presence...",
			URL:         "https://linkedin.com/jobs/view/digital-marketing-manager-789012",
			Source:      SourceLinkedIn,
		},
		{
			ID:          id(3),
			Title:       "Data Analyst",
			Company:     "Data Insights Ltd",
			Location:    "Freetown, Sierra Leone",
			Type:        TypeContract,
			Salary:      "$1,800-2,800/month",
			Skills:      []string{"SQL", "Excel", "Python", "Data Visualization"},
			PostedAt:    "3 days ago",
			Description: "Analyze complex datasets and provide actionable insights for business decisions...",
			URL:         "https://linkedin.com/jobs/view/data-analyst-345678",
			Source:      SourceLinkedIn,
		},
	}
}
