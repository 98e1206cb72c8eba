// Package services orchestrates the pbckit pipelines: text-to-CSV conversion
// and text-to-database loading. Each service is sequential and runs to
// completion or fails once; there are no retries.
package services

import (
	"fmt"
	"io"

	"github.com/meldlab/pbckit/internal/csvfile"
	"github.com/meldlab/pbckit/internal/dataset"
	"github.com/meldlab/pbckit/pkg/pbc"
)

// Converter turns the whitespace-delimited source file into the raw and
// ML-ready CSV materializations.
type Converter struct {
	logger pbc.Logger
	out    io.Writer
}

// NewConverter creates a Converter. Data summaries go to out (stdout in the
// CLI); progress and diagnostics go through the logger.
//
// Panics if any dependency is nil. This is intentional fail-fast behavior:
// a nil dependency is programmer error.
func NewConverter(logger pbc.Logger, out io.Writer) *Converter {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}
	return &Converter{logger: logger, out: out}
}

// Run executes the conversion: read, derive, write both CSVs, report counts.
func (c *Converter) Run(cfg pbc.ConvertConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.logger.Info("Reading %s...", cfg.DataFile)
	records, err := dataset.ReadDataFile(cfg.DataFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Loaded %d patients with %d features\n", len(records), len(dataset.ColumnNames))
	c.printMissingCounts(records)

	if err := csvfile.WriteRecords(cfg.OutputPath, records); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Saved to %s\n", cfg.OutputPath)

	rows := dataset.DeriveAll(records)
	if err := csvfile.WriteFeatureRows(cfg.MLOutputPath, rows); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Saved ML-ready version to %s\n", cfg.MLOutputPath)

	return nil
}

func (c *Converter) printMissingCounts(records []dataset.Record) {
	fmt.Fprintln(c.out, "Missing values per column:")
	counts := dataset.MissingCounts(records)
	for i, name := range dataset.ColumnNames {
		fmt.Fprintf(c.out, "  %-10s %d\n", name, counts[i])
	}
}
