package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, ScorerNone, cfg.Scorer)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10*time.Minute, cfg.InsightTTL)
	assert.Zero(t, cfg.MockLatency)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("SEED_DEMO", "true")
	t.Setenv("MOCK_LATENCY", "250ms")
	t.Setenv("GAMIFICATION_RATE", "0.5")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, DriverMemory, cfg.DBDriver)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, 250*time.Millisecond, cfg.MockLatency)
	assert.Equal(t, 0.5, cfg.GamificationRate)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SCORER=openai\nOPENAI_API_KEY=sk-test\nOPENAI_MODEL=gpt-4o\n"), 0o600))
	// godotenv sets process env; register cleanup for the keys it writes.
	for _, key := range []string{"SCORER", "OPENAI_API_KEY", "OPENAI_MODEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ScorerOpenAI, cfg.Scorer)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Port: 8080, DBDriver: DriverSQLite, DBPath: "x.db", Scorer: ScorerNone, JWTTTL: time.Hour}
	}
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.DBDriver = "postgres" }},
		{"sqlite without path", func(c *Config) { c.DBPath = "" }},
		{"unknown scorer", func(c *Config) { c.Scorer = "claude" }},
		{"openai without key", func(c *Config) { c.Scorer = ScorerOpenAI }},
		{"gemini without key", func(c *Config) { c.Scorer = ScorerGemini }},
		{"bad port", func(c *Config) { c.Port = 0 }},
		{"zero jwt ttl", func(c *Config) { c.JWTTTL = 0 }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
