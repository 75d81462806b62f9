package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/salonejobs/jobmatch/internal/cache"
	apperrors "github.com/salonejobs/jobmatch/internal/errors"
	"github.com/salonejobs/jobmatch/internal/logger"
	"github.com/salonejobs/jobmatch/internal/models"
	"github.com/salonejobs/jobmatch/internal/scraper"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultListLimit caps the rows returned by ListActive.
const DefaultListLimit = 50

const undefinedTable = "42P01"

// JobService is the persistence gateway for scraped_jobs. A nil DB means no
// database is configured; every call then fails with an Unavailable error.
type JobService struct {
	DB     *gorm.DB
	cache  cache.Cache
	ttl    time.Duration
	logger zerolog.Logger
}

func NewJobService(db *gorm.DB, c cache.Cache, ttl time.Duration) *JobService {
	if c == nil {
		c = cache.Noop{}
	}
	return &JobService{
		DB:     db,
		cache:  c,
		ttl:    ttl,
		logger: logger.Component("job_service"),
	}
}

// Upsert writes the postings keyed by id, replacing any existing row, and
// returns the number of rows written. Repeated ids in one batch keep the last
// occurrence.
func (s *JobService) Upsert(ctx context.Context, jobs []scraper.JobPosting, scrapedAt time.Time) (int, error) {
	if s.DB == nil {
		return 0, apperrors.Unavailable("database not configured", nil)
	}
	if len(jobs) == 0 {
		return 0, nil
	}

	rows := dedupeRows(jobs, scrapedAt)

	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&rows).Error
	if err != nil {
		return 0, classify("upsert scraped jobs", err)
	}

	sources := make(map[string]struct{})
	for _, row := range rows {
		sources[row.Source] = struct{}{}
	}
	for source := range sources {
		if err := s.cache.Delete(ctx, listCacheKey(source)); err != nil {
			s.logger.Warn().Err(err).Str("source", source).Msg("failed to invalidate list cache")
		}
	}

	s.logger.Info().Int("rows", len(rows)).Msg("upserted scraped jobs")
	return len(rows), nil
}

// ListActive returns up to limit active rows of the source, newest scrape
// first. limit <= 0 means DefaultListLimit.
func (s *JobService) ListActive(ctx context.Context, source string, limit int) ([]models.ScrapedJob, error) {
	if s.DB == nil {
		return nil, apperrors.Unavailable("database not configured", nil)
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	key := listCacheKey(source)
	if limit == DefaultListLimit {
		if jobs, ok := s.cached(ctx, key); ok {
			return jobs, nil
		}
	}

	var jobs []models.ScrapedJob
	err := s.DB.WithContext(ctx).
		Where("source = ? AND status = ?", source, models.StatusActive).
		Order("scraped_at DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, classify("list scraped jobs", err)
	}
	if jobs == nil {
		jobs = []models.ScrapedJob{}
	}

	if limit == DefaultListLimit {
		s.store(ctx, key, jobs)
	}
	return jobs, nil
}

func (s *JobService) cached(ctx context.Context, key string) ([]models.ScrapedJob, bool) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			s.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return nil, false
	}
	var jobs []models.ScrapedJob
	if err := json.Unmarshal(data, &jobs); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("discarding malformed cache entry")
		return nil, false
	}
	return jobs, true
}

func (s *JobService) store(ctx context.Context, key string, jobs []models.ScrapedJob) {
	data, err := json.Marshal(jobs)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// dedupeRows converts postings to rows, keeping the first position of each id
// and the last posting seen for it. A single upsert cannot touch a row twice.
func dedupeRows(jobs []scraper.JobPosting, scrapedAt time.Time) []models.ScrapedJob {
	index := make(map[string]int, len(jobs))
	rows := make([]models.ScrapedJob, 0, len(jobs))
	for _, job := range jobs {
		row := models.FromPosting(job, scrapedAt)
		if i, ok := index[row.ID]; ok {
			rows[i] = row
			continue
		}
		index[row.ID] = len(rows)
		rows = append(rows, row)
	}
	return rows
}

func listCacheKey(source string) string {
	return "scraped_jobs:active:" + source
}

func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
		return apperrors.Unavailable(fmt.Sprintf("%s: table missing", op), err)
	}
	return apperrors.Internal(op, err)
}
