package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Development(t *testing.T) {
	os.Setenv("ENVIRONMENT", "development")
	os.Unsetenv("BACKEND_BASE_URL")
	os.Unsetenv("CORS_ALLOWED_ORIGINS")
	os.Unsetenv("PROBE_TIMEOUT")
	os.Unsetenv("GIT_COMMIT_SHA")

	cfg := Load()

	if cfg.Environment != "development" {
		t.Errorf("Expected environment development, got %s", cfg.Environment)
	}

	expectedBackend := "http://localhost:4000"
	if cfg.BackendBaseURL != expectedBackend {
		t.Errorf("Expected default backend URL %s, got %s", expectedBackend, cfg.BackendBaseURL)
	}

	if cfg.ProbeTimeout != 5*time.Second {
		t.Errorf("Expected default probe timeout 5s, got %s", cfg.ProbeTimeout)
	}

	if cfg.ShortCommit() != "local" {
		t.Errorf("Expected ShortCommit to fall back to local, got %s", cfg.ShortCommit())
	}
}

func TestLoad_Production(t *testing.T) {
	// We can't easily test log.Fatal without extra effort,
	// but we can test that it doesn't crash if the required values ARE set.
	os.Setenv("ENVIRONMENT", "production")
	os.Setenv("BACKEND_BASE_URL", "https://api.example.com/")
	os.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com")
	os.Setenv("PROBE_TIMEOUT", "2s")
	os.Setenv("GIT_COMMIT_SHA", "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678")

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Load() panicked: %v", r)
		}
	}()

	cfg := Load()

	if cfg.Environment != "production" {
		t.Errorf("Expected environment production, got %s", cfg.Environment)
	}

	// Trailing slash is stripped so probe paths join cleanly
	if cfg.BackendBaseURL != "https://api.example.com" {
		t.Errorf("Expected trimmed backend URL, got %s", cfg.BackendBaseURL)
	}

	if cfg.ProbeTimeout != 2*time.Second {
		t.Errorf("Expected probe timeout 2s, got %s", cfg.ProbeTimeout)
	}

	if cfg.ShortCommit() != "a1b2c3d" {
		t.Errorf("Expected 7-char commit abbreviation, got %s", cfg.ShortCommit())
	}
}

func TestShortCommit_ShortValue(t *testing.T) {
	cfg := &Config{CommitSHA: "abc"}
	if cfg.ShortCommit() != "abc" {
		t.Errorf("Expected abc, got %s", cfg.ShortCommit())
	}
}
