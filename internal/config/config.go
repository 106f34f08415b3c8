package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the service needs from the environment. A .env
// file in the working directory is honored when present.
type Config struct {
	Provider       string
	Model          string
	BatchSize      int
	MaxConcurrency int
	MaxAttempts    int
	Timeout        time.Duration
	BestEffort     bool
	BearerToken    string
	ServerAddr     string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("BEARER_TOKEN")
	if token == "" {
		return nil, errors.New("BEARER_TOKEN not set")
	}

	return &Config{
		Provider:       getenv("CONDENSE_PROVIDER", "gemini"),
		Model:          getenv("CONDENSE_MODEL", "gemini-2.5-flash"),
		BatchSize:      getint("CONDENSE_BATCH_SIZE", 7),
		MaxConcurrency: getint("CONDENSE_MAX_CONCURRENCY", 4),
		MaxAttempts:    getint("CONDENSE_MAX_ATTEMPTS", 3),
		Timeout:        time.Duration(getint("CONDENSE_TIMEOUT_SECONDS", 60)) * time.Second,
		BestEffort:     getbool("CONDENSE_BEST_EFFORT", false),
		BearerToken:    token,
		ServerAddr:     getenv("SERVER_ADDR", ":8000"),
	}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
