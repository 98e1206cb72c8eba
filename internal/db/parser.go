package db

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/meldlab/pbckit/pkg/pbc"
)

// ParseConnectionString parses a PostgreSQL URI into a ConnectionConfig.
//
// Format: postgresql://[user[:password]@][host][:port][/dbname][?sslmode=...]
func ParseConnectionString(connStr string) (*pbc.ConnectionConfig, error) {
	if connStr == "" {
		return nil, fmt.Errorf("connection string is empty: %w", pbc.ErrInvalidConfig)
	}
	if !strings.HasPrefix(connStr, "postgresql://") && !strings.HasPrefix(connStr, "postgres://") {
		return nil, fmt.Errorf("unrecognized connection string format: %w", pbc.ErrInvalidConfig)
	}

	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PostgreSQL URI: %w", err)
	}

	cfg := &pbc.ConnectionConfig{
		Host:     pbc.DefaultHost,
		Port:     pbc.DefaultPort,
		Database: pbc.DefaultDatabase,
	}

	if u.Hostname() != "" {
		cfg.Host = u.Hostname()
	}
	if u.Port() != "" {
		port, err := strconv.Atoi(u.Port())
		if err != nil {
			return nil, fmt.Errorf("invalid port: %w", err)
		}
		cfg.Port = port
	}

	if u.User != nil {
		cfg.Username = u.User.Username()
		if pass, ok := u.User.Password(); ok {
			cfg.Password = pass
		}
	}

	if len(u.Path) > 1 {
		cfg.Database = strings.TrimPrefix(u.Path, "/")
	}

	if sslmode := u.Query().Get("sslmode"); sslmode != "" {
		cfg.SSLMode = sslmode
	}

	return cfg, nil
}
