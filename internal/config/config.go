// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Scorer backends.
const (
	ScorerNone   = "none"
	ScorerOpenAI = "openai"
	ScorerGemini = "gemini"
)

// Config holds every server setting.
type Config struct {
	Port     int    `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`

	DBDriver string `mapstructure:"db_driver"`
	DBPath   string `mapstructure:"db_path"`
	SeedDemo bool   `mapstructure:"seed_demo"`
	// MockLatency delays every storage call, imitating a remote backend.
	MockLatency time.Duration `mapstructure:"mock_latency"`

	JWTSecret string        `mapstructure:"jwt_secret"`
	JWTTTL    time.Duration `mapstructure:"jwt_ttl"`

	Scorer              string        `mapstructure:"scorer"`
	OpenAIAPIKey        string        `mapstructure:"openai_api_key"`
	OpenAIModel         string        `mapstructure:"openai_model"`
	GeminiAPIKey        string        `mapstructure:"gemini_api_key"`
	GeminiModel         string        `mapstructure:"gemini_model"`
	GamificationTimeout time.Duration `mapstructure:"gamification_timeout"`
	// GamificationRate is the number of scorer calls allowed per second.
	GamificationRate float64 `mapstructure:"gamification_rate"`

	// RedisAddr enables the insight cache when set.
	RedisAddr  string        `mapstructure:"redis_addr"`
	InsightTTL time.Duration `mapstructure:"insight_ttl"`
}

const devSecret = "dev-secret-change-me"

var defaults = map[string]any{
	"port":                 8080,
	"log_level":            "info",
	"db_driver":            DriverSQLite,
	"db_path":              "./data/chama.db",
	"seed_demo":            false,
	"mock_latency":         time.Duration(0),
	"jwt_secret":           devSecret,
	"jwt_ttl":              24 * time.Hour,
	"scorer":               ScorerNone,
	"openai_api_key":       "",
	"openai_model":         "gpt-4o-mini",
	"gemini_api_key":       "",
	"gemini_model":         "gemini-2.0-flash",
	"gamification_timeout": 30 * time.Second,
	"gamification_rate":    1.0,
	"redis_addr":           "",
	"insight_ttl":          10 * time.Minute,
}

// Load reads envFiles (missing files are skipped), then the environment.
// With no envFiles, ".env" in the working directory is tried.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		slog.Debug("Loaded env file", "path", path)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.JWTSecret == devSecret {
		slog.Warn("JWT_SECRET not set, using development secret")
	}
	return &cfg, nil
}

// Validate checks enumerated settings and scorer credentials.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}

	switch c.Scorer {
	case ScorerNone:
	case ScorerOpenAI:
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required for the openai scorer")
		}
	case ScorerGemini:
		if c.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY is required for the gemini scorer")
		}
	default:
		return fmt.Errorf("unknown SCORER %q", c.Scorer)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	return nil
}
