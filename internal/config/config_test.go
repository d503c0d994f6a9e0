package config_test

import (
	"testing"
	"time"

	"go-pms/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("KPI_SUMMARY_TTL", "")

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.KPISummaryTTL)
	assert.False(t, cfg.AparHardDeleteSuperseded)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("KPI_SUMMARY_TTL", "90")
	t.Setenv("SCORE_CACHE_TTL", "30s")
	t.Setenv("ANALYSIS_WORKERS", "8")
	t.Setenv("APAR_HARD_DELETE_SUPERSEDED", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("APP_ENV", "Production")

	cfg := config.Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 90*time.Second, cfg.KPISummaryTTL)
	assert.Equal(t, 30*time.Second, cfg.ScoreCacheTTL)
	assert.Equal(t, 8, cfg.AnalysisWorkers)
	assert.True(t, cfg.AparHardDeleteSuperseded)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("ANALYSIS_WORKERS", "many")
	t.Setenv("KPI_SUMMARY_TTL", "soon")

	cfg := config.Load()

	assert.Equal(t, 4, cfg.AnalysisWorkers)
	assert.Equal(t, 24*time.Hour, cfg.KPISummaryTTL)
}
