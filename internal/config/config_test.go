package config

import (
	"testing"
	"time"
)

func TestLoadRequiresBearerToken(t *testing.T) {
	t.Setenv("BEARER_TOKEN", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when BEARER_TOKEN is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BEARER_TOKEN", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "gemini" {
		t.Errorf("unexpected default provider: %q", cfg.Provider)
	}
	if cfg.BatchSize != 7 {
		t.Errorf("unexpected default batch size: %d", cfg.BatchSize)
	}
	if cfg.MaxAttempts != 3 {
		t.Errorf("unexpected default max attempts: %d", cfg.MaxAttempts)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("unexpected default timeout: %s", cfg.Timeout)
	}
	if cfg.BestEffort {
		t.Error("fail-fast must be the default policy")
	}
	if cfg.ServerAddr != ":8000" {
		t.Errorf("unexpected default server addr: %q", cfg.ServerAddr)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BEARER_TOKEN", "secret")
	t.Setenv("CONDENSE_PROVIDER", "ollama")
	t.Setenv("CONDENSE_MODEL", "llama3")
	t.Setenv("CONDENSE_BATCH_SIZE", "12")
	t.Setenv("CONDENSE_MAX_CONCURRENCY", "2")
	t.Setenv("CONDENSE_TIMEOUT_SECONDS", "15")
	t.Setenv("CONDENSE_BEST_EFFORT", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "ollama" || cfg.Model != "llama3" {
		t.Errorf("provider/model overrides not applied: %q %q", cfg.Provider, cfg.Model)
	}
	if cfg.BatchSize != 12 || cfg.MaxConcurrency != 2 {
		t.Errorf("numeric overrides not applied: %d %d", cfg.BatchSize, cfg.MaxConcurrency)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("timeout override not applied: %s", cfg.Timeout)
	}
	if !cfg.BestEffort {
		t.Error("best-effort override not applied")
	}
}
