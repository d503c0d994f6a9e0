package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go-pms/internal/shared/connection"
)

type Config struct {
	Port        string
	Environment string

	Postgres     connection.PostgresConfig
	DBMaxRetries int

	RedisAddr   string
	KafkaBroker string
	JWTSecret   string

	RBACModelPath  string
	RBACPolicyPath string

	KPISummaryTTL   time.Duration
	ScoreCacheTTL   time.Duration
	AnalysisWorkers int

	AparHardDeleteSuperseded bool

	RateLimitRPS   float64
	RateLimitBurst int

	OutboxPollInterval time.Duration
	OutboxBatchSize    int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment. Call godotenv.Load first
// when a .env file should be honoured.
func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),

		Postgres: connection.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "pms_db"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		DBMaxRetries: getEnvInt("DB_MAX_RETRIES", 10),

		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: getEnv("KAFKA_BROKER", "localhost:9092"),
		JWTSecret:   getEnv("JWT_SECRET", ""),

		RBACModelPath:  getEnv("RBAC_MODEL_PATH", ""),
		RBACPolicyPath: getEnv("RBAC_POLICY_PATH", ""),

		KPISummaryTTL:   getEnvDuration("KPI_SUMMARY_TTL", 24*time.Hour),
		ScoreCacheTTL:   getEnvDuration("SCORE_CACHE_TTL", 5*time.Minute),
		AnalysisWorkers: getEnvInt("ANALYSIS_WORKERS", 4),

		AparHardDeleteSuperseded: getEnvBool("APAR_HARD_DELETE_SUPERSEDED", false),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),

		OutboxPollInterval: getEnvDuration("OUTBOX_POLL_INTERVAL", 2*time.Second),
		OutboxBatchSize:    getEnvInt("OUTBOX_BATCH_SIZE", 100),

		ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:     getEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("90s") or plain seconds ("90").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
