package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the dashboard backend.
//
// It is loaded exactly once in main and injected into the components
// that need it, so no package reads the process environment at call
// sites.
type Config struct {
	// Port the HTTP server listens on
	Port string

	// UpstreamURL is the base URL of the public-finance data API
	UpstreamURL string

	// AskURL is the base URL of the Q&A service. Defaults to the
	// upstream URL since both are served by the same deployment.
	AskURL string

	// DocumentsBaseURL is the path prefix under which source PDFs
	// are served. Citation deep links resolve against it.
	DocumentsBaseURL string

	// DataDir holds the sqlite database for the device identity store
	DataDir string
}

// Load reads the configuration from the environment, applying local
// development defaults for anything unset.
func Load() *Config {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		UpstreamURL:      getEnv("UPSTREAM_API_URL", "http://localhost:8000/api/v1"),
		DocumentsBaseURL: getEnv("DOCUMENTS_BASE_URL", "/documents"),
		DataDir:          getEnv("DATA_DIR", "./data"),
	}
	cfg.AskURL = getEnv("ASK_API_URL", cfg.UpstreamURL)

	return cfg
}

// Validate returns an error describing every invalid setting.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	for name, value := range map[string]string{
		"UPSTREAM_API_URL": c.UpstreamURL,
		"ASK_API_URL":      c.AskURL,
	} {
		u, err := url.Parse(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, fmt.Sprintf("invalid %s %q: must be an absolute URL", name, value))
		}
	}

	if c.DataDir == "" {
		problems = append(problems, "DATA_DIR must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration errors: %v", problems)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
