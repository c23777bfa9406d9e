package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// storage
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	CorsAllowedOrigins          []string `toml:"cors_allowed_origins"`
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	SessionTTLHours             int      `toml:"session_ttl_hours"`
	CatalogCacheSizeMB          int      `toml:"catalog_cache_size_mb"`

	// third party exercise database, used for exercise demo animations
	ExerciseDBBaseURL string `toml:"exercisedb_base_url"`
	ExerciseDBHost    string `toml:"exercisedb_host"`
}

// Secrets are never kept in the config file.
type Secrets struct {
	PostgresUser     string `env:"GYMPRO_POSTGRES_USER, default=postgres"`
	PostgresPassword string `env:"GYMPRO_POSTGRES_PASS"`
	RedisPassword    string `env:"GYMPRO_REDIS_PASS"`
	SentryDSN        string `env:"SENTRY_DSN"`
	ExerciseDBAPIKey string `env:"EXERCISEDB_API_KEY"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}

	return cfg, nil
}

func Load(env, configPath string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(configPath, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", configPath, err)
	}
	return t.Get(env)
}

// LoadSecrets reads secrets from the environment, after loading the optional dotenv files.
// Variables already set in the environment are not overridden by dotenv values.
func LoadSecrets(ctx context.Context, dotenvFiles ...string) (*Secrets, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load dotenv [%s]: %w", f, err)
		}
	}

	var secrets Secrets
	if err := envconfig.Process(ctx, &secrets); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &secrets, nil
}
