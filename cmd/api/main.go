package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/salonejobs/jobmatch/internal/cache"
	rediscache "github.com/salonejobs/jobmatch/internal/cache/redis"
	"github.com/salonejobs/jobmatch/internal/config"
	"github.com/salonejobs/jobmatch/internal/database"
	"github.com/salonejobs/jobmatch/internal/handlers"
	"github.com/salonejobs/jobmatch/internal/logger"
	"github.com/salonejobs/jobmatch/internal/scraper"
	"github.com/salonejobs/jobmatch/internal/services"
	"gorm.io/gorm"
)

func main() {
	// 1. Configuration and logging
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// 2. Database connection. Without one, scrapes still succeed but nothing is saved.
	var db *gorm.DB
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set, running without persistence")
	} else if db, err = database.Connect(cfg.DatabaseURL, cfg.DBAutoMigrate); err != nil {
		log.Error().Err(err).Msg("Database unavailable, running without persistence")
	}

	// 3. List cache
	listCache := newCache(cfg)
	defer listCache.Close()

	// 4. Sources and services
	careersl := scraper.NewCareerSL(cfg.CareerSLBaseURL,
		scraper.WithPageDelay(cfg.PageDelay),
		scraper.WithDetailEnrichment(cfg.EnrichDetails),
	)
	jobService := services.NewJobService(db, listCache, cfg.CacheTTL)
	scrapeService := services.NewScrapeService(jobService, careersl, scraper.NewLinkedIn())
	scrapeHandler := handlers.NewScrapeHandler(scrapeService)

	// 5. Router and CORS
	r := gin.New()
	r.Use(gin.Recovery(), handlers.RequestLogger())

	corsConfig := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", handlers.RequestIDHeader}
	r.Use(cors.New(corsConfig))

	// 6. Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		scrapeHandler.Register(api)
	}

	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}

// newCache connects to redis when configured and falls back to no caching.
func newCache(cfg *config.Config) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.Noop{}
	}

	opts := cache.DefaultOptions()
	opts.RedisURL = cfg.RedisAddr
	opts.RedisPassword = cfg.RedisPassword
	opts.RedisDB = cfg.RedisDB
	if cfg.CacheTTL > 0 {
		opts.DefaultTTL = cfg.CacheTTL
	}

	rc := rediscache.New(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unavailable, list cache disabled")
		_ = rc.Close()
		return cache.Noop{}
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("Redis list cache enabled")
	return rc
}
