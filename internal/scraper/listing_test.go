package scraper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func listingHTML(slugs ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><ul class="jobs">`)
	for _, s := range slugs {
		fmt.Fprintf(&b, `<li><a href="/job/%s/">%s</a></li>`, s, s)
	}
	b.WriteString(`</ul></body></html>`)
	return b.String()
}

func numberedSlugs(prefix string, n int) []string {
	slugs := make([]string, n)
	for i := range slugs {
		slugs[i] = fmt.Sprintf("%s-%d", prefix, i+1)
	}
	return slugs
}

func TestParseJobSlugs(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		limit int
		want  []string
	}{
		{
			name: "relative links deduplicated in order",
			html: listingHTML("tvet-advisor", "audit-officer-2", "tvet-advisor"),
			want: []string{"tvet-advisor", "audit-officer-2"},
		},
		{
			name: "absolute links use second pattern",
			html: `<a href="https://careers.sl/job/digital-media-producer/">x</a>`,
			want: []string{"digital-media-producer"},
		},
		{
			name: "first matching pattern wins",
			html: `<a href="/job/first/">a</a><a href="https://careers.sl/job/second/">b</a>`,
			want: []string{"first"},
		},
		{
			name:  "limit caps result",
			html:  listingHTML(numberedSlugs("role", 12)...),
			limit: 5,
			want:  []string{"role-1", "role-2", "role-3", "role-4", "role-5"},
		},
		{
			name: "no job links",
			html: `<html><body><a href="/about/">About</a></body></html>`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseJobSlugs(tt.html, tt.limit))
		})
	}
}
