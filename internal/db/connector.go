package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meldlab/pbckit/pkg/pbc"
)

// Connection pool configuration constants
const (
	// DefaultMaxConns is deliberately small: the loader is a sequential
	// one-shot tool and needs a single working connection.
	DefaultMaxConns = 2

	// DefaultMinConns maintains at least one connection in the pool.
	DefaultMinConns = 1

	// DefaultMaxConnIdleTime keeps the connection alive for the whole run.
	DefaultMaxConnIdleTime = 5 * time.Minute
)

func configurePool(poolConfig *pgxpool.Config) {
	poolConfig.MaxConns = DefaultMaxConns
	poolConfig.MinConns = DefaultMinConns
	poolConfig.MaxConnIdleTime = DefaultMaxConnIdleTime
	poolConfig.ConnConfig.OnNotice = func(_ *pgconn.PgConn, notice *pgconn.Notice) {
		fmt.Println(notice.Message)
	}
}

// Connect establishes a connection pool and verifies it with a ping.
// The caller owns the pool and must Close it on every exit path.
func Connect(ctx context.Context, cfg *pbc.ConnectionConfig) (*pgxpool.Pool, error) {
	connStr := BuildConnectionString(cfg)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", err)
	}

	configurePool(poolConfig)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, wrapConnectionError(err, cfg.Host, cfg.Port, cfg.Database)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, wrapConnectionError(err, cfg.Host, cfg.Port, cfg.Database)
	}

	return pool, nil
}

// wrapConnectionError wraps raw pgx connection errors with actionable guidance.
// Every branch carries pbc.ErrConnectionFailed so callers can classify.
func wrapConnectionError(err error, host string, port int, database string) error {
	errStr := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", host, port)

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`%w: connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong host or port
  - Firewall blocking the connection

Original error: %v`, pbc.ErrConnectionFailed, addr, host, port, err)

	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "no host"):
		return fmt.Errorf(`%w: cannot resolve host %q

Possible causes:
  - Hostname is misspelled
  - DNS is not configured or reachable
  - Network connection issue

Original error: %v`, pbc.ErrConnectionFailed, host, err)

	case strings.Contains(errStr, "password authentication failed"):
		return fmt.Errorf(`%w: password authentication failed for database %q

Possible causes:
  - Wrong password (check $%s)
  - Wrong username
  - User does not have access to the database

Original error: %v`, pbc.ErrConnectionFailed, database, pbc.EnvPassword, err)

	case strings.Contains(errStr, "does not exist"):
		return fmt.Errorf(`%w: database %q does not exist

To create it:
  createdb %s

Original error: %v`, pbc.ErrConnectionFailed, database, database, err)

	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		return fmt.Errorf(`%w: connection timed out to %s

Possible causes:
  - Server is overloaded or unresponsive
  - Network latency or packet loss
  - Wrong host/port (server not listening)

Original error: %v`, pbc.ErrConnectionFailed, addr, err)

	default:
		return fmt.Errorf("%w: %v", pbc.ErrConnectionFailed, err)
	}
}
