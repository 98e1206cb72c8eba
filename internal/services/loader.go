package services

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"

	"github.com/meldlab/pbckit/internal/dataset"
	"github.com/meldlab/pbckit/internal/db"
	"github.com/meldlab/pbckit/pkg/pbc"
)

// Loader materializes the source file in the pbc_patients table: ensure
// schema, upsert every record in one transaction, then report aggregate
// statistics.
type Loader struct {
	logger pbc.Logger
	out    io.Writer
}

// NewLoader creates a Loader.
//
// Panics if any dependency is nil; incorrect wiring is programmer error.
func NewLoader(logger pbc.Logger, out io.Writer) *Loader {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}
	return &Loader{logger: logger, out: out}
}

// Run executes the load. The connection pool is released on every exit path.
func (l *Loader) Run(ctx context.Context, cfg pbc.LoadConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.New()
	l.logger.Verbose("Load run %s", runID)

	l.logger.Info("Reading PBC data from %s...", cfg.DataFile)
	records, err := dataset.ReadDataFile(cfg.DataFile)
	if err != nil {
		return err
	}
	l.printSourceSummary(records)

	l.logger.Info("Loading database schema from %s...", cfg.SchemaFile)
	statements, err := db.ReadSchemaFile(cfg.SchemaFile)
	if err != nil {
		return err
	}

	l.logger.Info("Connecting to PostgreSQL at %s:%d...", cfg.Connection.Host, cfg.Connection.Port)
	pool, err := db.Connect(ctx, &cfg.Connection)
	if err != nil {
		return err
	}
	defer pool.Close()

	store := db.NewStore(pool, l.logger)

	if err := store.EnsureSchema(ctx, statements); err != nil {
		return err
	}

	l.logger.Info("Inserting PBC data...")
	if err := store.UpsertRecords(ctx, records); err != nil {
		return err
	}
	fmt.Fprintf(l.out, "Successfully inserted %d records into %s table\n", len(records), pbc.PatientsTable)

	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(l.out, "Total records in database: %d\n", count)

	stats, err := store.Aggregates(ctx)
	if err != nil {
		return err
	}
	l.printAggregates(stats)

	l.logger.Verbose("Load run %s complete", runID)
	return nil
}

// printSourceSummary reports what was read before any database work, so a
// connection failure still leaves the operator with the file-level counts.
func (l *Loader) printSourceSummary(records []dataset.Record) {
	fmt.Fprintf(l.out, "Loaded %d records with %d columns\n", len(records), len(dataset.ColumnNames))

	minTime, maxTime := int64(math.MaxInt64), int64(math.MinInt64)
	seen := false
	statusCounts := make(map[int64]int)
	for i := range records {
		if t := records[i].Futime; t != nil {
			if *t < minTime {
				minTime = *t
			}
			if *t > maxTime {
				maxTime = *t
			}
			seen = true
		}
		if s := records[i].Status; s != nil {
			statusCounts[*s]++
		}
	}

	if seen {
		fmt.Fprintf(l.out, "Survival time range: %d-%d days\n", minTime, maxTime)
	}
	fmt.Fprintf(l.out, "Status distribution: alive=%d transplant=%d dead=%d\n",
		statusCounts[pbc.StatusAlive], statusCounts[pbc.StatusTransplant], statusCounts[pbc.StatusDead])
}

func (l *Loader) printAggregates(stats *db.AggregateStats) {
	fmt.Fprintf(l.out, "Dataset summary: %d patients, %d deaths, %d transplants, %d alive\n",
		stats.TotalPatients, stats.Deaths, stats.Transplants, stats.Alive)

	if stats.AvgFollowUpDays != nil && stats.AvgBilirubin != nil {
		fmt.Fprintf(l.out, "Average follow-up: %.0f days, Average bilirubin: %.2f mg/dl\n",
			*stats.AvgFollowUpDays, *stats.AvgBilirubin)
	}
}
