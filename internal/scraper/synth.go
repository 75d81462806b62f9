package scraper

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
	"unicode"
)

type keywordValue struct {
	keyword string
	value   string
}

// First match wins, so order matters.
var companyKeywords = []keywordValue{
	{"TVET", "GIZ"},
	{"Advisor", "International Organization"},
	{"Manager", "Corporate"},
	{"Officer", "Government Agency"},
	{"Nurse", "Healthcare Facility"},
	{"Coordinator", "NGO"},
	{"Executive", "Corporate"},
	{"Audit", "Financial Institution"},
}

var skillKeywords = []string{
	"Manager", "Advisor", "Officer", "Coordinator", "Specialist", "Consultant",
	"Engineer", "Developer", "Analyst", "Administrator", "Assistant", "Director",
	"Nurse", "Doctor", "Teacher", "Accountant", "Finance", "HR", "IT", "Communication",
}

var salaryByType = map[string]string{
	TypeFullTime:  "SLE 5,000-20,000/month",
	TypePartTime:  "SLE 2,500-10,000/month",
	TypeContract:  "SLE 6,000-15,000/month",
	TypeFixedTerm: "SLE 7,000-18,000/month",
	TypeBidding:   "Project-based",
	TypeTemporary: "SLE 3,000-8,000/month",
}

const defaultSalary = "SLE 5,000-15,000/month"

var postedAtLabels = []string{"1 day ago", "2 days ago", "3 days ago", "1 week ago", "2 weeks ago", "3 weeks ago"}

var titleWordRe = regexp.MustCompile(`\b\w+(?:'\w+)?\b`)

// Rand picks an index in [0, n).
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.Intn(n) }

// Synthesizer builds JobPostings from listing slugs. The generated metadata
// (company, salary, age) is inferred from the slug, not read from the site.
type Synthesizer struct {
	BaseURL string
	Rand    Rand
	Now     func() time.Time
}

func NewSynthesizer(baseURL string) *Synthesizer {
	return &Synthesizer{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Rand:    globalRand{},
		Now:     time.Now,
	}
}

// FromSlug builds the basic careers.sl record for a listing slug.
func (s *Synthesizer) FromSlug(slug string) JobPosting {
	title := SlugToTitle(slug)
	return JobPosting{
		ID:          fmt.Sprintf("%s_%s_%d", SourceCareerSL, slug, s.Now().UnixMilli()),
		Title:       title,
		Company:     InferCompany(title),
		Location:    DefaultLocation,
		Type:        TypeFullTime,
		Salary:      SalaryFor(TypeFullTime),
		Skills:      SkillsFromTitle(title),
		PostedAt:    s.PostedAt(),
		Description: fmt.Sprintf("Job opportunity: %s. Click to view full details and application instructions.", title),
		URL:         fmt.Sprintf("%s/job/%s/", s.BaseURL, slug),
		Source:      SourceCareerSL,
	}
}

func (s *Synthesizer) PostedAt() string {
	return postedAtLabels[s.Rand.IntN(len(postedAtLabels))]
}

// SlugToTitle turns "ncd-state-registered-nurse" into "Ncd State Registered Nurse".
// Each word is capitalised and the rest of it lowercased, so acronyms are
// not preserved.
func SlugToTitle(slug string) string {
	spaced := strings.ReplaceAll(slug, "-", " ")
	return titleWordRe.ReplaceAllStringFunc(spaced, capitalize)
}

func capitalize(word string) string {
	r := []rune(strings.ToLower(word))
	if len(r) == 0 {
		return word
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// InferCompany maps a title to an organisation type by keyword,
// case-insensitively. Unknown titles get "Organization".
func InferCompany(title string) string {
	lower := strings.ToLower(title)
	for _, kv := range companyKeywords {
		if strings.Contains(lower, strings.ToLower(kv.keyword)) {
			return kv.value
		}
	}
	return "Organization"
}

// SkillsFromTitle returns every vocabulary keyword contained in title, in
// vocabulary order, or ["General"].
func SkillsFromTitle(title string) []string {
	lower := strings.ToLower(title)
	var skills []string
	for _, skill := range skillKeywords {
		if strings.Contains(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}
	if len(skills) == 0 {
		return []string{"General"}
	}
	return skills
}

func SalaryFor(jobType string) string {
	if salary, ok := salaryByType[jobType]; ok {
		return salary
	}
	return defaultSalary
}
