// Package db connects to PostgreSQL and materializes patient records in the
// pbc_patients table.
package db

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/meldlab/pbckit/pkg/pbc"
)

// ResolveConnectionConfig builds a ConnectionConfig from the environment with
// the loader's documented defaults. Callers layer flag overrides on top.
//
// Precedence for each field: environment variable > default. The caller is
// expected to have loaded any .env file (godotenv) before resolving.
func ResolveConnectionConfig() (pbc.ConnectionConfig, error) {
	cfg := pbc.ConnectionConfig{
		Host:     envOr(pbc.EnvHost, pbc.DefaultHost),
		Database: envOr(pbc.EnvDatabase, pbc.DefaultDatabase),
		Username: envOr(pbc.EnvUser, pbc.DefaultUser),
		Password: envOr(pbc.EnvPassword, pbc.DefaultPassword),
		Port:     pbc.DefaultPort,
	}

	if raw := os.Getenv(pbc.EnvPort); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return pbc.ConnectionConfig{}, fmt.Errorf("%s=%q is not a valid port: %w", pbc.EnvPort, raw, pbc.ErrInvalidConfig)
		}
		cfg.Port = port
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BuildConnectionString converts a ConnectionConfig to a PostgreSQL URI for pgx.
func BuildConnectionString(cfg *pbc.ConnectionConfig) string {
	u := &url.URL{
		Scheme: "postgresql",
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:   "/" + cfg.Database,
	}

	if cfg.Username != "" {
		if cfg.Password != "" {
			u.User = url.UserPassword(cfg.Username, cfg.Password)
		} else {
			u.User = url.User(cfg.Username)
		}
	}

	if cfg.SSLMode != "" {
		query := url.Values{}
		query.Set("sslmode", cfg.SSLMode)
		u.RawQuery = query.Encode()
	}

	return u.String()
}
