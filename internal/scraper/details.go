package scraper

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

const (
	maxDescriptionRunes = 800
	minDescriptionRunes = 50
	maxCategorySkills   = 8
	maxCategorySkillLen = 50
)

var (
	locationRe = regexp.MustCompile(`(?i)\b(Freetown|Sierra Leone|Western Area|Kono|Makeni|Bo)\b`)
	jobTypeRe  = regexp.MustCompile(`(?i)\b(Full Time|Part Time|Contract|Fixed Term|Bidding|Temporary)\b`)

	descriptionHeadingRe = regexp.MustCompile(`(?is)Job Description.*?</p>(.*?)(?:<h|<div|<section)`)
	tagRe                = regexp.MustCompile(`<[^>]*>`)
	spaceRe              = regexp.MustCompile(`\s+`)

	// Acronyms are matched case-sensitively so that "who" in prose is not
	// taken for the WHO.
	aboutOrgRe = regexp.MustCompile(`About (GIZ|UNDP|UNICEF|WHO|World Bank)\b`)
	orgRe      = regexp.MustCompile(`\b(GIZ|UNDP|UNICEF|WHO|World Bank|(?:Ministry|University|Hospital|Foundation) of(?: [A-Z][A-Za-z&]*)+)`)
)

var knownLocations = []string{"Freetown", "Sierra Leone", "Western Area", "Kono", "Makeni", "Bo"}

var descriptionSelectors = []string{".job-description", ".description"}

// DetailEnricher refines a synthesized posting from its detail page.
type DetailEnricher struct {
	fetcher Fetcher
	logger  zerolog.Logger
}

func NewDetailEnricher(fetcher Fetcher, logger zerolog.Logger) *DetailEnricher {
	return &DetailEnricher{fetcher: fetcher, logger: logger}
}

// Enrich fetches job.URL and overlays whatever the page reveals. Any failure
// leaves job unchanged.
func (e *DetailEnricher) Enrich(ctx context.Context, job JobPosting) JobPosting {
	html, err := e.fetcher.Fetch(ctx, job.URL)
	if err != nil {
		e.logger.Warn().Err(err).Str("url", job.URL).Msg("failed to fetch job details")
		return job
	}

	enriched, err := EnrichFromHTML(html, job)
	if err != nil {
		e.logger.Warn().Err(err).Str("url", job.URL).Msg("failed to parse job details")
		return job
	}
	return enriched
}

// EnrichFromHTML applies detail-page extraction field by field, keeping the
// basic value wherever nothing matches.
func EnrichFromHTML(html string, basic JobPosting) (JobPosting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return basic, fmt.Errorf("parsing HTML: %w", err)
	}
	text := collapseSpace(doc.Text())

	job := basic
	if m := locationRe.FindString(text); m != "" {
		loc := canonical(m, knownLocations)
		if loc == DefaultLocation {
			job.Location = DefaultLocation
		} else {
			job.Location = loc + ", " + DefaultLocation
		}
	}

	if m := jobTypeRe.FindString(text); m != "" {
		job.Type = canonical(m, JobTypes)
	}
	job.Salary = SalaryFor(job.Type)

	if desc := extractDescription(doc, html); desc != "" {
		job.Description = desc
	}

	if skills := extractCategories(doc); len(skills) > 0 {
		job.Skills = skills
	}

	if m := aboutOrgRe.FindStringSubmatch(text); m != nil {
		job.Company = m[1]
	} else if m := orgRe.FindStringSubmatch(text); m != nil {
		job.Company = strings.TrimSpace(m[1])
	}

	return job, nil
}

func extractDescription(doc *goquery.Document, html string) string {
	candidates := make([]string, 0, len(descriptionSelectors)+1)
	for _, sel := range descriptionSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			candidates = append(candidates, s.Text())
		}
	}
	if m := descriptionHeadingRe.FindStringSubmatch(html); m != nil {
		candidates = append(candidates, tagRe.ReplaceAllString(m[1], ""))
	}

	for _, c := range candidates {
		desc := []rune(collapseSpace(c))
		if len(desc) > maxDescriptionRunes {
			desc = desc[:maxDescriptionRunes]
		}
		if len(desc) > minDescriptionRunes {
			return string(desc) + "..."
		}
	}
	return ""
}

func extractCategories(doc *goquery.Document) []string {
	var skills []string
	doc.Find(`a[href*="/job-category/"]`).EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= maxCategorySkills {
			return false
		}
		name := strings.TrimSpace(s.Text())
		if name != "" && len(name) < maxCategorySkillLen {
			skills = append(skills, name)
		}
		return true
	})
	return skills
}

func canonical(match string, values []string) string {
	for _, v := range values {
		if strings.EqualFold(v, match) {
			return v
		}
	}
	return match
}

func collapseSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
