package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/salonejobs/jobmatch/internal/scraper"
)

const StatusActive = "active"

// ScrapedJob is a row of scraped_jobs. It is written by upsert keyed on ID,
// so a re-scrape of the same posting overwrites the previous row.
type ScrapedJob struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Company     string         `json:"company"`
	Location    string         `json:"location"`
	Type        string         `json:"type"`
	Salary      string         `json:"salary"`
	Skills      pq.StringArray `gorm:"type:text[]" json:"skills"`
	PostedAt    string         `gorm:"column:posted_at" json:"postedAt"`
	Description string         `gorm:"type:text" json:"description"`
	URL         string         `json:"url"`
	Source      string         `gorm:"index:idx_scraped_jobs_listing,priority:1" json:"source"`
	Status      string         `gorm:"default:'active';index:idx_scraped_jobs_listing,priority:2" json:"status"`
	ScrapedAt   time.Time      `gorm:"index:idx_scraped_jobs_listing,priority:3" json:"scraped_at"`
}

func (ScrapedJob) TableName() string {
	return "scraped_jobs"
}

// FromPosting converts a scraped posting into an active row captured at scrapedAt.
func FromPosting(p scraper.JobPosting, scrapedAt time.Time) ScrapedJob {
	return ScrapedJob{
		ID:          p.ID,
		Title:       p.Title,
		Company:     p.Company,
		Location:    p.Location,
		Type:        p.Type,
		Salary:      p.Salary,
		Skills:      pq.StringArray(p.Skills),
		PostedAt:    p.PostedAt,
		Description: p.Description,
		URL:         p.URL,
		Source:      p.Source,
		Status:      StatusActive,
		ScrapedAt:   scrapedAt,
	}
}
