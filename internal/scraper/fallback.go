package scraper

import (
	"fmt"
	"time"
)

// FallbackJobs is the fixed careers.sl catalog served when live scraping
// yields nothing. IDs embed now and a 1-based position.
func FallbackJobs(now time.Time) []JobPosting {
	ts := now.UnixMilli()
	id := func(n int) string {
		return fmt.Sprintf("%s_fallback_%d_%d", SourceCareerSL, ts, n)
	}

	return []JobPosting{
		{
			ID:          id(1),
			Title:       "TVET Advisor",
			Company:     "GIZ",
			Location:    "Freetown, Sierra Leone",
			Type:        TypeFullTime,
			Salary:      "SLE 15,000-25,000/month",
			Skills:      []string{"Development", "Economics", "Education", "Training", "Technical Vocational"},
			PostedAt:    "1 day ago",
			Description: "Technical Vocational Education and Training Advisor position with GIZ Sierra Leone. Focus on strengthening TVET systems and promoting youth employment.",
			URL:         "https://careers.sl/job/tvet-advisor/",
			Source:      SourceCareerSL,
		},
		{
			ID:          id(2),
			Title:       "Cocoa Coffee Value Chain Advisor",
			Company:     "International Organization",
			Location:    "Freetown, Sierra Leone",
			Type:        TypeFullTime,
			Salary:      "SLE 12,000-20,000/month",
			Skills:      []string{"Agriculture", "Value Chain", "Cocoa", "Coffee", "Development"},
			PostedAt:    "3 days ago",
			Description: "Advisor position for cocoa and coffee value chain development. Experience in agricultural value chains required.",
			URL:         "https://careers.sl/job/cocoa-coffee-value-chain-advisor/",
			Source:      SourceCareerSL,
		},
		{
			ID:          id(3),
			Title:       "Communications Manager II",
			Company:     "International Organization",
			Location:    "Freetown, Sierra Leone",
			Type:        TypeFixedTerm,
			Salary:      "SLE 8,000-15,000/month",
			Skills:      []string{"Communications", "Public Relations", "Media", "Writing", "Strategy"},
			PostedAt:    "1 week ago",
			Description: "Communications Manager role with focus on public relations and media outreach for international organization.",
			URL:         "https://careers.sl/job/communications-manager-ii/",
			Source:      SourceCareerSL,
		},
		{
			ID:          id(4),
			Title:       "Digital Media Producer",
			Company:     "Media Company",
			Location:    "Freetown, Sierra Leone",
			Type:        TypeBidding,
			Salary:      "Project-based",
			Skills:      []string{"Digital Media", "Video Production", "Content Creation", "Social Media"},
			PostedAt:    "2 days ago",
			Description: "Digital Media Producer for content creation and media production projects.",
			URL:         "https://careers.sl/job/digital-media-producer/",
			Source:      SourceCareerSL,
		},
		{
			ID:          id(5),
			Title:       "Audit Officer",
			Company:     "Financial Institution",
			Location:    "Freetown, Sierra Leone",
			Type:        TypeFullTime,
			Salary:      "SLE 6,000-12,000/month",
			Skills:      []string{"Accounting", "Finance", "Auditing", "Compliance", "Reporting"},
			PostedAt:    "4 days ago",
			Description: "Audit Officer position responsible for financial auditing and compliance monitoring.",
			URL:         "https://careers.sl/job/audit-officer-2/",
			Source:      SourceCareerSL,
		},
		{
			ID:          id(6),
			Title:       "Executive Personal Assistant",
			Company:     "Corporate",
			Location:    "Freetown, Sierra Leone",
			Type:        TypeFullTime,
			Salary:      "SLE 5,000-10,000/month",
			Skills:      []string{"Administration", "Communication", "Organization", "MS Office"},
			PostedAt:    "5 days ago",
			Description: "Executive Personal Assistant providing high-level administrative support to executive team.",
			URL:         "https://careers.sl/job/executive-personal-assistant/",
			Source:      SourceCareerSL,
		},
		{
			ID:          id(7),
			Title:       "NCD State Registered Nurse",
			Company:     "Healthcare Facility",
			Location:    "Kono, Sierra Leone",
			Type:        TypeFullTime,
			Salary:      "SLE 4,000-8,000/month",
			Skills:      []string{"Nursing", "Healthcare", "Patient Care", "Medical Records"},
			PostedAt:    "1 week ago",
			Description: "State Registered Nurse position for Non-Communicable Disease program in Kono district.",
			URL:         "https://careers.sl/job/ncd-state-registered-nurse/",
			Source:      SourceCareerSL,
		},
		{
			ID:          id(8),
			Title:       "AHD Counsellor IMPAACT4HIV",
			Company:     "Healthcare NGO",
			Location:    "Freetown, Sierra Leone",
			Type:        TypeFullTime,
			Salary:      "SLE 6,000-10,000/month",
			Skills:      []string{"Counseling", "Healthcare", "HIV/AIDS", "Support Services"},
			PostedAt:    "2 weeks ago",
			Description: "Counsellor for HIV/AIDS program providing support and counseling services.",
			URL:         "https://careers.sl/job/ahd-counsellor-impaact4hiv-3/",
			Source:      SourceCareerSL,
		},
	}
}
