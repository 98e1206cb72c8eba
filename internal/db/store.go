package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meldlab/pbckit/internal/dataset"
	"github.com/meldlab/pbckit/pkg/pbc"
)

// upsertSQL inserts one patient row, overwriting every non-key column when
// the identifier already exists.
const upsertSQL = `
INSERT INTO pbc_patients (
    id, futime, status, drug, age, sex, ascites, hepato, spiders,
    edema, bili, chol, albumin, copper, alk_phos, sgot, trig,
    platelet, protime, stage
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
          $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
ON CONFLICT (id) DO UPDATE SET
    futime = EXCLUDED.futime,
    status = EXCLUDED.status,
    drug = EXCLUDED.drug,
    age = EXCLUDED.age,
    sex = EXCLUDED.sex,
    ascites = EXCLUDED.ascites,
    hepato = EXCLUDED.hepato,
    spiders = EXCLUDED.spiders,
    edema = EXCLUDED.edema,
    bili = EXCLUDED.bili,
    chol = EXCLUDED.chol,
    albumin = EXCLUDED.albumin,
    copper = EXCLUDED.copper,
    alk_phos = EXCLUDED.alk_phos,
    sgot = EXCLUDED.sgot,
    trig = EXCLUDED.trig,
    platelet = EXCLUDED.platelet,
    protime = EXCLUDED.protime,
    stage = EXCLUDED.stage`

const aggregateSQL = `
SELECT
    COUNT(*) AS total_patients,
    COUNT(CASE WHEN status = 2 THEN 1 END) AS deaths,
    COUNT(CASE WHEN status = 1 THEN 1 END) AS transplants,
    COUNT(CASE WHEN status = 0 THEN 1 END) AS alive,
    ROUND(AVG(futime))::float8 AS avg_followup_days,
    ROUND(AVG(bili), 2)::float8 AS avg_bilirubin
FROM pbc_patients`

// Store runs the loader's SQL against an established pool.
type Store struct {
	pool   *pgxpool.Pool
	logger pbc.Logger
}

// NewStore creates a Store. Panics on nil dependencies; that is programmer
// error, not a runtime condition.
func NewStore(pool *pgxpool.Pool, logger pbc.Logger) *Store {
	if pool == nil {
		panic("pool cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Store{pool: pool, logger: logger}
}

// EnsureSchema executes the schema statements one by one, in file order.
func (s *Store) EnsureSchema(ctx context.Context, statements []string) error {
	for i, stmt := range statements {
		s.logger.Verbose("Executing schema statement %d/%d", i+1, len(statements))
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d failed: %v: %w", i+1, err, pbc.ErrExecutionFailed)
		}
	}
	return nil
}

// UpsertRecords writes all records in a single transaction, keyed by patient
// identifier. Any failure rolls the whole batch back; there are no partial
// commits.
func (s *Store) UpsertRecords(ctx context.Context, records []dataset.Record) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %v: %w", err, pbc.ErrExecutionFailed)
	}
	// No-op after a successful Commit.
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}
	for i := range records {
		batch.Queue(upsertSQL, records[i].Values()...)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range records {
		if _, err := results.Exec(); err != nil {
			results.Close() //nolint:errcheck
			return fmt.Errorf("upsert patient %d: %v: %w", records[i].ID, err, pbc.ErrExecutionFailed)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close batch: %v: %w", err, pbc.ErrExecutionFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %v: %w", err, pbc.ErrExecutionFailed)
	}

	s.logger.Verbose("Upserted %d records", len(records))
	return nil
}

// AggregateStats is the read-only console summary queried after a load.
type AggregateStats struct {
	TotalPatients int64
	Deaths        int64
	Transplants   int64
	Alive         int64

	// Averages are nil when no row carries a value.
	AvgFollowUpDays *float64
	AvgBilirubin    *float64
}

// Aggregates runs the summary query over pbc_patients.
func (s *Store) Aggregates(ctx context.Context) (*AggregateStats, error) {
	var stats AggregateStats
	err := s.pool.QueryRow(ctx, aggregateSQL).Scan(
		&stats.TotalPatients,
		&stats.Deaths,
		&stats.Transplants,
		&stats.Alive,
		&stats.AvgFollowUpDays,
		&stats.AvgBilirubin,
	)
	if err != nil {
		return nil, fmt.Errorf("aggregate query: %v: %w", err, pbc.ErrExecutionFailed)
	}
	return &stats, nil
}

// Count returns the number of rows currently in pbc_patients.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM pbc_patients").Scan(&count); err != nil {
		return 0, fmt.Errorf("count query: %v: %w", err, pbc.ErrExecutionFailed)
	}
	return count, nil
}
