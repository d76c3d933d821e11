package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds all dynamic configuration for the frontend gateway.
type Config struct {
	Environment string // "development", "production" or "test"
	Port        string
	AllowedOrigins []string

	// Downstream dependency probed by /api/health
	BackendBaseURL string
	ProbeTimeout   time.Duration

	// Deployment commit identifier, injected by the build pipeline.
	// Empty when running outside a deployment (local dev).
	CommitSHA string
}

// Load parses the environment and applies sensible default fallbacks.
func Load() *Config {
	env := getEnv("ENVIRONMENT", "production")

	backendURL := getEnv("BACKEND_BASE_URL", "")
	if backendURL == "" {
		if env == "production" {
			log.Fatal("[FATAL] BACKEND_BASE_URL environment variable is required in production.")
		}
		// Sensible default for local development ONLY
		backendURL = "http://localhost:4000"
	}

	// Strict CORS: must be explicitly defined in production
	corsOrigins := getEnv("CORS_ALLOWED_ORIGINS", "")
	if corsOrigins == "" {
		if env == "production" {
			log.Fatal("[FATAL] CORS_ALLOWED_ORIGINS environment variable is required in production.")
		}
		corsOrigins = "http://localhost:3000"
	}

	probeTimeout := 5 * time.Second
	if raw := getEnv("PROBE_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("[FATAL] PROBE_TIMEOUT is not a valid duration: %q", raw)
		}
		probeTimeout = d
	}

	return &Config{
		Environment:    env,
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: strings.Split(corsOrigins, ","),
		BackendBaseURL: strings.TrimRight(backendURL, "/"),
		ProbeTimeout:   probeTimeout,
		CommitSHA:      getEnv("GIT_COMMIT_SHA", ""),
	}
}

// ShortCommit returns the abbreviated (7-character) deployment commit
// identifier, or the literal "local" when none was injected.
func (c *Config) ShortCommit() string {
	if c.CommitSHA == "" {
		return "local"
	}
	if len(c.CommitSHA) > 7 {
		return c.CommitSHA[:7]
	}
	return c.CommitSHA
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
