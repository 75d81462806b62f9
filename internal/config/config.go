package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/config.yaml"

type Config struct {
	Port     string `yaml:"port"`
	GinMode  string `yaml:"gin_mode"`
	LogLevel string `yaml:"log_level"`
	// console or json
	LogFormat string `yaml:"log_format"`

	DatabaseURL    string        `yaml:"database_url"`
	DBAutoMigrate  bool          `yaml:"db_auto_migrate"`
	RedisAddr      string        `yaml:"redis_addr"`
	RedisPassword  string        `yaml:"redis_password"`
	RedisDB        int           `yaml:"redis_db"`
	CacheTTL       time.Duration `yaml:"cache_ttl"`
	AllowedOrigins []string      `yaml:"cors_allowed_origins"`

	CareerSLBaseURL string        `yaml:"careersl_base_url"`
	PageDelay       time.Duration `yaml:"scrape_page_delay"`
	EnrichDetails   bool          `yaml:"scrape_enrich_details"`
}

func defaults() *Config {
	return &Config{
		Port:            "8080",
		GinMode:         "release",
		LogLevel:        "info",
		LogFormat:       "console",
		DBAutoMigrate:   true,
		CacheTTL:        5 * time.Minute,
		AllowedOrigins:  []string{"*"},
		CareerSLBaseURL: "https://careers.sl",
		PageDelay:       2 * time.Second,
	}
}

// Load builds the configuration from defaults, the YAML file at $CONFIG_PATH
// and the environment, in increasing order of precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	path := getEnvString("CONFIG_PATH", defaultConfigPath)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg.Port = getEnvString("PORT", cfg.Port)
	cfg.GinMode = getEnvString("GIN_MODE", cfg.GinMode)
	cfg.LogLevel = getEnvString("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvString("LOG_FORMAT", cfg.LogFormat)
	cfg.DatabaseURL = getEnvString("DATABASE_URL", cfg.DatabaseURL)
	cfg.DBAutoMigrate = getEnvBool("DB_AUTO_MIGRATE", cfg.DBAutoMigrate)
	cfg.RedisAddr = getEnvString("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getEnvString("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = getEnvInt("REDIS_DB", cfg.RedisDB)
	cfg.CacheTTL = getEnvDuration("CACHE_TTL", cfg.CacheTTL)
	cfg.CareerSLBaseURL = strings.TrimRight(getEnvString("CAREERSL_BASE_URL", cfg.CareerSLBaseURL), "/")
	cfg.PageDelay = getEnvDuration("SCRAPE_PAGE_DELAY", cfg.PageDelay)
	cfg.EnrichDetails = getEnvBool("SCRAPE_ENRICH_DETAILS", cfg.EnrichDetails)
	if origins, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		cfg.AllowedOrigins = splitList(origins)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid PORT %q: %w", c.Port, err)
	}
	if c.PageDelay < 0 {
		return fmt.Errorf("SCRAPE_PAGE_DELAY must not be negative, got %s", c.PageDelay)
	}
	if c.CareerSLBaseURL == "" {
		return errors.New("CAREERSL_BASE_URL is required")
	}
	return nil
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.AllowedOrigins) == 0
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
