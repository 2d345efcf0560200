package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	drinkservice "cantina/contexts/catalog/drink-service"
	catalogpostgres "cantina/contexts/catalog/drink-service/adapters/postgres"
	"cantina/contexts/catalog/drink-service/domain/entities"
	catalogports "cantina/contexts/catalog/drink-service/ports"
	tokenservice "cantina/contexts/identity-access/token-service"
	"cantina/contexts/identity-access/token-service/adapters/jwks"
	"cantina/internal/platform/config"
	"cantina/internal/platform/db"
	"cantina/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI(ctx context.Context) (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := catalogpostgres.Migrate(pg.DB); err != nil {
		_ = pg.Close()
		return nil, err
	}

	repo := catalogpostgres.NewRepository(pg.DB, logger)
	catalog := drinkservice.NewModule(drinkservice.Dependencies{
		Repository: repo,
		Logger:     logger,
	})

	if cfg.SeedDemoCatalog {
		seedCatalog(ctx, catalog, logger)
	}

	keys, err := jwks.NewProvider(ctx, cfg.AuthJWKSURL, cfg.JWKSRefreshInterval)
	if err != nil {
		_ = pg.Close()
		return nil, err
	}
	tokens := tokenservice.NewModule(tokenservice.Dependencies{
		Keys:     keys,
		Issuer:   cfg.AuthIssuer,
		Audience: cfg.AuthAudience,
		Logger:   logger,
	})

	server := httpserver.New(catalog, tokens, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run() error {
	defer func() { _ = a.postgres.Close() }()
	return a.server.Start()
}

// seedCatalog inserts a demo drink on first boot; duplicate titles are
// ignored so reruns stay clean.
func seedCatalog(ctx context.Context, catalog drinkservice.Module, logger *slog.Logger) {
	_, err := catalog.Handler.Service.CreateDrink(ctx, seedInput())
	if err != nil {
		logger.Info("demo catalog seed skipped",
			"event", "demo_seed_skipped",
			"reason", err.Error(),
		)
	}
}

func seedInput() catalogports.CreateDrinkInput {
	return catalogports.CreateDrinkInput{
		Title: "Water",
		Recipe: []entities.RecipeEntry{
			{Name: "water", Color: "blue", Parts: 1},
		},
	}
}

func normalizeAddr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return ":8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
