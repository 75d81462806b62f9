package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://careers.sl", cfg.CareerSLBaseURL)
	assert.Equal(t, 2*time.Second, cfg.PageDelay)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.DBAutoMigrate)
	assert.False(t, cfg.EnrichDetails)
	assert.True(t, cfg.AllowAllOrigins())
}

func TestLoadYAMLThenEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlDoc := `
port: "9090"
careersl_base_url: "http://careers.test/"
scrape_page_delay: 500ms
scrape_enrich_details: true
cors_allowed_origins:
  - https://app.example.org
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "7070")
	t.Setenv("CACHE_TTL", "1m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port, "env wins over yaml")
	assert.Equal(t, "http://careers.test", cfg.CareerSLBaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.PageDelay)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.EnrichDetails)
	assert.False(t, cfg.AllowAllOrigins())
	assert.Equal(t, []string{"https://app.example.org"}, cfg.AllowedOrigins)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("PORT", "eighty")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNegativeDelay(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("SCRAPE_PAGE_DELAY", "-1s")

	_, err := Load()
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b ,"))
	assert.Nil(t, splitList(""))
}
