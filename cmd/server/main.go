package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/condenselabs/condense/internal/api"
	"github.com/condenselabs/condense/internal/config"
	"github.com/condenselabs/condense/pkg/models"
	"github.com/condenselabs/condense/pkg/summarize"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	backend, err := models.NewProvider(context.Background(), cfg.Provider, cfg.Model)
	if err != nil {
		log.Fatalf("backend: %v", err)
	}
	backend = models.TryCreateCachedLLM(backend)

	policy := summarize.FailFast
	if cfg.BestEffort {
		policy = summarize.BestEffort
	}

	svc, err := summarize.New(summarize.Options{
		Backend:        backend,
		BatchSize:      cfg.BatchSize,
		MaxConcurrency: cfg.MaxConcurrency,
		MaxAttempts:    cfg.MaxAttempts,
		Timeout:        cfg.Timeout,
		Policy:         policy,
	})
	if err != nil {
		log.Fatalf("summarizer: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:   "condense",
		BodyLimit: 32 * 1024 * 1024,
	})
	api.RegisterRoutes(app, api.NewHandler(svc), cfg.BearerToken)

	log.Printf("listening on %s (provider=%s model=%s)", cfg.ServerAddr, cfg.Provider, cfg.Model)
	log.Fatal(app.Listen(cfg.ServerAddr))
}
