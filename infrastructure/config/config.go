package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"

	"marketloop-backend/application/services"
)

// Config holds all application configuration
type Config struct {
	// Environment
	Environment string `validate:"required,oneof=development staging production"`
	LogLevel    string `validate:"required,oneof=debug info warn error"`

	// Database
	DatabaseDSN string

	// Ranking configuration file (hot-reloaded when set)
	RankingConfigPath string
	Ranking           RankingConfig

	// Observability
	EnableMetrics    bool
	EnableTracing    bool
	TracingEndpoint  string
	MetricsNamespace string
}

// RankingConfig holds the tunable constants of the ranking pipeline. The
// values are heuristics, not semantic contracts, so they live in config
// rather than in code.
type RankingConfig struct {
	FollowerWeight     int `yaml:"followerWeight" validate:"gte=0"`
	LikeWeight         int `yaml:"likeWeight" validate:"gte=0"`
	SharedGroupWeight  int `yaml:"sharedGroupWeight" validate:"gte=0"`
	SharedFocusWeight  int `yaml:"sharedFocusWeight" validate:"gte=0"`
	GroupOverfetch     int `yaml:"groupOverfetch" validate:"gt=0"`
	TrendingOverfetch  int `yaml:"trendingOverfetch" validate:"gt=0"`
	TrendingMinFollows int `yaml:"trendingMinFollows" validate:"gte=0"`
}

// DefaultRankingConfig returns the production scoring defaults.
func DefaultRankingConfig() RankingConfig {
	tuning := services.DefaultTuning()
	return RankingConfig{
		FollowerWeight:     tuning.FollowerWeight,
		LikeWeight:         tuning.LikeWeight,
		SharedGroupWeight:  tuning.SharedGroupWeight,
		SharedFocusWeight:  tuning.SharedFocusWeight,
		GroupOverfetch:     tuning.GroupOverfetch,
		TrendingOverfetch:  tuning.TrendingOverfetch,
		TrendingMinFollows: tuning.TrendingMinFollows,
	}
}

// Tuning converts the config into the services tuning shape.
func (c RankingConfig) Tuning() services.Tuning {
	return services.Tuning{
		FollowerWeight:     c.FollowerWeight,
		LikeWeight:         c.LikeWeight,
		SharedGroupWeight:  c.SharedGroupWeight,
		SharedFocusWeight:  c.SharedFocusWeight,
		GroupOverfetch:     c.GroupOverfetch,
		TrendingOverfetch:  c.TrendingOverfetch,
		TrendingMinFollows: c.TrendingMinFollows,
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DatabaseDSN:       getEnv("DATABASE_DSN", ""),
		RankingConfigPath: getEnv("RANKING_CONFIG_PATH", ""),
		Ranking:           DefaultRankingConfig(),
		EnableMetrics:     getEnvBool("ENABLE_METRICS", true),
		EnableTracing:     getEnvBool("ENABLE_TRACING", false),
		TracingEndpoint:   getEnv("TRACING_ENDPOINT", "localhost:4317"),
		MetricsNamespace:  getEnv("METRICS_NAMESPACE", "marketloop"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validator.New().Struct(cfg.Ranking); err != nil {
		return nil, fmt.Errorf("invalid ranking configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
