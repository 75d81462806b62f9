package scraper

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailHTML = `<html>
<head><title>Tvet Advisor | careers.sl</title></head>
<body>
  <h1>Tvet Advisor</h1>
  <p class="meta">Location: Makeni</p>
  <span class="job-type">Contract</span>
  <div class="job-description">
    <p>The advisor will support technical and vocational training institutions
    across the northern region, working closely with local partners.</p>
  </div>
  <a href="/job-category/education/">Education</a>
  <a href="/job-category/development/">Development</a>
  <p>About GIZ</p>
</body>
</html>`

func basicPosting() JobPosting {
	s := NewSynthesizer("https://careers.sl")
	s.Rand = fixedRand{}
	return s.FromSlug("tvet-advisor")
}

func TestEnrichFromHTML(t *testing.T) {
	job, err := EnrichFromHTML(detailHTML, basicPosting())
	require.NoError(t, err)

	assert.Equal(t, "Makeni, Sierra Leone", job.Location)
	assert.Equal(t, TypeContract, job.Type)
	assert.Equal(t, "SLE 6,000-15,000/month", job.Salary)
	assert.Equal(t, []string{"Education", "Development"}, job.Skills)
	assert.Equal(t, "GIZ", job.Company)
	assert.True(t, strings.HasPrefix(job.Description, "The advisor will support technical and vocational training institutions across"))
	assert.True(t, strings.HasSuffix(job.Description, "..."))
}

func TestEnrichFromHTMLKeepsBasicFields(t *testing.T) {
	basic := basicPosting()

	job, err := EnrichFromHTML(`<html><body><p>Nothing to see</p></body></html>`, basic)
	require.NoError(t, err)

	assert.Equal(t, basic, job)
}

func TestEnrichFromHTMLFieldRules(t *testing.T) {
	long := strings.Repeat("word ", 300)
	html := `<html><body>
	<p>Based in sierra leone. This is a part time role.</p>
	<div class="description">` + long + `</div>
	<a href="https://careers.sl/job-category/health/">Health</a>
	<p>Funded by the Ministry of Health and Sanitation.</p>
	</body></html>`

	job, err := EnrichFromHTML(html, basicPosting())
	require.NoError(t, err)

	assert.Equal(t, "Sierra Leone", job.Location)
	assert.Equal(t, TypePartTime, job.Type, "type is canonicalised")
	assert.Equal(t, SalaryFor(TypePartTime), job.Salary)
	assert.Equal(t, maxDescriptionRunes+len("..."), len([]rune(job.Description)))
	assert.Equal(t, []string{"Health"}, job.Skills)
	assert.Equal(t, "Ministry of Health", job.Company)
}

func TestEnrichFromHTMLShortDescriptionIgnored(t *testing.T) {
	basic := basicPosting()

	job, err := EnrichFromHTML(`<div class="job-description">Apply now.</div>`, basic)
	require.NoError(t, err)

	assert.Equal(t, basic.Description, job.Description)
}

func TestDetailEnricherFetchFailureKeepsBasic(t *testing.T) {
	basic := basicPosting()
	e := NewDetailEnricher(failingFetcher{}, zerolog.Nop())

	assert.Equal(t, basic, e.Enrich(context.Background(), basic))
}
