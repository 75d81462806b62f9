package scraper

import "context"

const (
	SourceCareerSL = "careersl"
	SourceLinkedIn = "linkedin"
)

// Job types. Every JobPosting.Type is one of these.
const (
	TypeFullTime  = "Full Time"
	TypePartTime  = "Part Time"
	TypeContract  = "Contract"
	TypeFixedTerm = "Fixed Term"
	TypeBidding   = "Bidding"
	TypeTemporary = "Temporary"
)

var JobTypes = []string{TypeFullTime, TypePartTime, TypeContract, TypeFixedTerm, TypeBidding, TypeTemporary}

const (
	DefaultLocation = "Sierra Leone"
	DefaultLimit    = 20
)

type JobPosting struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Salary      string   `json:"salary"`
	Skills      []string `json:"skills"`
	PostedAt    string   `json:"postedAt"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Source      string   `json:"source"`
}

type SearchParams struct {
	Keywords string
	Location string
	Limit    int
}

// Source is a job listing site. Scrape never fails: sources degrade to
// fewer or substitute postings instead of returning an error.
type Source interface {
	Name() string
	Scrape(ctx context.Context, params SearchParams) []JobPosting
}

// IsJobType reports whether t is one of JobTypes.
func IsJobType(t string) bool {
	for _, jt := range JobTypes {
		if jt == t {
			return true
		}
	}
	return false
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
