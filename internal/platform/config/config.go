package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	AuthIssuer          string
	AuthAudience        string
	AuthJWKSURL         string
	JWKSRefreshInterval time.Duration

	SeedDemoCatalog bool
}

func Load() (Config, error) {
	// Missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "cantina"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	issuer := strings.TrimSpace(os.Getenv("AUTH_ISSUER"))
	if issuer == "" {
		return Config{}, errors.New("AUTH_ISSUER is required")
	}
	audience := strings.TrimSpace(os.Getenv("AUTH_AUDIENCE"))
	if audience == "" {
		return Config{}, errors.New("AUTH_AUDIENCE is required")
	}

	jwksURL := strings.TrimSpace(os.Getenv("AUTH_JWKS_URL"))
	if jwksURL == "" {
		jwksURL = strings.TrimRight(issuer, "/") + "/.well-known/jwks.json"
	}

	refresh := 15 * time.Minute
	if raw := strings.TrimSpace(os.Getenv("AUTH_JWKS_REFRESH_INTERVAL")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, errors.New("AUTH_JWKS_REFRESH_INTERVAL must be a duration, e.g. 15m")
		}
		refresh = parsed
	}

	return Config{
		ServiceName:         service,
		HTTPPort:            port,
		PostgresDSN:         os.Getenv("POSTGRES_DSN"),
		AuthIssuer:          issuer,
		AuthAudience:        audience,
		AuthJWKSURL:         jwksURL,
		JWKSRefreshInterval: refresh,
		SeedDemoCatalog:     envBool("SEED_DEMO_CATALOG", false),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
