package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PUBLIC_DIR", "")
	t.Setenv("CONTENT_BASE_URL", "")
	t.Setenv("CONTENT_FETCH_TIMEOUT", "")
	t.Setenv("CONTENT_MAX_CONCURRENT", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("expected port %q, got %q", "8080", cfg.Port)
	}
	if cfg.PublicDir != "./public" {
		t.Errorf("expected public dir %q, got %q", "./public", cfg.PublicDir)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("expected fetch timeout 10s, got %s", cfg.FetchTimeout)
	}
	if cfg.MaxConcurrentFetches != 8 {
		t.Errorf("expected 8 concurrent fetches, got %d", cfg.MaxConcurrentFetches)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_ClampsInvalidValues(t *testing.T) {
	t.Setenv("CONTENT_FETCH_TIMEOUT", "-5s")
	t.Setenv("CONTENT_FETCH_RETRIES", "-1")
	t.Setenv("CONTENT_MAX_CONCURRENT", "0")

	cfg := Load()
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("expected clamped timeout 10s, got %s", cfg.FetchTimeout)
	}
	if cfg.FetchRetries != 0 {
		t.Errorf("expected clamped retries 0, got %d", cfg.FetchRetries)
	}
	if cfg.MaxConcurrentFetches != 8 {
		t.Errorf("expected clamped concurrency 8, got %d", cfg.MaxConcurrentFetches)
	}
}

func TestLoad_TrimsBaseURL(t *testing.T) {
	t.Setenv("CONTENT_BASE_URL", "https://example.org/")
	cfg := Load()
	if cfg.ContentBaseURL != "https://example.org" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.ContentBaseURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"dir only", Config{Port: "80", PublicDir: "./public"}, false},
		{"url only", Config{Port: "80", ContentBaseURL: "http://cms.local"}, false},
		{"missing port", Config{PublicDir: "./public"}, true},
		{"no source", Config{Port: "80"}, true},
		{"bad scheme", Config{Port: "80", ContentBaseURL: "ftp://cms.local"}, true},
		{"too many retries", Config{Port: "80", PublicDir: "p", FetchRetries: 9}, true},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: expected error=%v, got %v", tt.name, tt.wantErr, err)
		}
	}
}
