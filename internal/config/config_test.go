package config_test

import (
	"testing"

	"github.com/budgetglass/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.UpstreamURL)
	assert.Equal(t, cfg.UpstreamURL, cfg.AskURL)
	assert.Equal(t, "/documents", cfg.DocumentsBaseURL)
	assert.Equal(t, "./data", cfg.DataDir)

	assert.Nil(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "3001")
	t.Setenv("UPSTREAM_API_URL", "https://data.example.com/api/v1")
	t.Setenv("ASK_API_URL", "https://ask.example.com")

	cfg := config.Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "https://data.example.com/api/v1", cfg.UpstreamURL)
	assert.Equal(t, "https://ask.example.com", cfg.AskURL)
	assert.Nil(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		message string
	}{
		{"port not a number", func(c *config.Config) { c.Port = "http" }, "invalid port"},
		{"port out of range", func(c *config.Config) { c.Port = "70000" }, "between 1 and 65535"},
		{"relative upstream URL", func(c *config.Config) { c.UpstreamURL = "/api/v1" }, "must be an absolute URL"},
		{"empty data dir", func(c *config.Config) { c.DataDir = "" }, "DATA_DIR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Load()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.NotNil(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
