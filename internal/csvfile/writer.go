// Package csvfile materializes patient records as CSV files and reads them
// back. Output is UTF-8, comma-separated, one header row, one row per
// patient, row order identical to the source file. Missing values are empty
// cells in both directions.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/meldlab/pbckit/internal/dataset"
)

// WriteRecords writes the raw 20-column CSV, overwriting any existing file.
func WriteRecords(path string, records []dataset.Record) error {
	rows := make([][]string, 0, len(records))
	for i := range records {
		rows = append(rows, records[i].Cells())
	}
	return writeCSV(path, dataset.ColumnNames, rows)
}

// WriteFeatureRows writes the ML-ready CSV (20 source columns plus derived
// columns), overwriting any existing file.
func WriteFeatureRows(path string, rows []dataset.FeatureRow) error {
	cells := make([][]string, 0, len(rows))
	for i := range rows {
		cells = append(cells, rows[i].Cells())
	}
	return writeCSV(path, dataset.MLColumnNames(), cells)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header to %q: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row to %q: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %q: %w", path, err)
	}
	return f.Close()
}
