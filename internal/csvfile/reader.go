package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/meldlab/pbckit/internal/dataset"
	"github.com/meldlab/pbckit/pkg/pbc"
)

// ReadRecords reads a raw 20-column CSV produced by WriteRecords back into
// records. Empty cells map to missing values.
func ReadRecords(path string) ([]dataset.Record, error) {
	rows, err := readCSV(path, dataset.ColumnNames)
	if err != nil {
		return nil, err
	}

	records := make([]dataset.Record, 0, len(rows))
	for i, row := range rows {
		rec, err := recordFromCells(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func recordFromCells(cells []string) (dataset.Record, error) {
	p := &cellParser{cells: cells}

	rec := dataset.Record{
		ID:       p.requiredInt(0),
		Futime:   p.nullableInt(1),
		Status:   p.nullableInt(2),
		Drug:     p.nullableInt(3),
		Age:      p.nullableInt(4),
		Sex:      p.nullableInt(5),
		Ascites:  p.nullableInt(6),
		Hepato:   p.nullableInt(7),
		Spiders:  p.nullableInt(8),
		Edema:    p.nullableFloat(9),
		Bili:     p.nullableFloat(10),
		Chol:     p.nullableFloat(11),
		Albumin:  p.nullableFloat(12),
		Copper:   p.nullableFloat(13),
		AlkPhos:  p.nullableFloat(14),
		Sgot:     p.nullableFloat(15),
		Trig:     p.nullableFloat(16),
		Platelet: p.nullableFloat(17),
		Protime:  p.nullableFloat(18),
		Stage:    p.nullableInt(19),
	}

	if p.err != nil {
		return dataset.Record{}, p.err
	}
	return rec, nil
}

func readCSV(path string, wantHeader []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("csv file %q: %w", path, pbc.ErrInputNotFound)
		}
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%q is empty", path)
	}

	header := all[0]
	if len(header) != len(wantHeader) {
		return nil, fmt.Errorf("%q: expected %d columns, got %d", path, len(wantHeader), len(header))
	}
	for i, name := range wantHeader {
		if header[i] != name {
			return nil, fmt.Errorf("%q: column %d is %q, expected %q", path, i+1, header[i], name)
		}
	}

	return all[1:], nil
}

type cellParser struct {
	cells []string
	err   error
}

func (p *cellParser) requiredInt(col int) int64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(p.cells[col], 10, 64)
	if err != nil {
		p.err = fmt.Errorf("column %q: invalid integer %q", dataset.ColumnNames[col], p.cells[col])
	}
	return v
}

func (p *cellParser) nullableInt(col int) *int64 {
	if p.err != nil || p.cells[col] == "" {
		return nil
	}
	v, err := strconv.ParseInt(p.cells[col], 10, 64)
	if err != nil {
		p.err = fmt.Errorf("column %q: invalid integer %q", dataset.ColumnNames[col], p.cells[col])
		return nil
	}
	return &v
}

func (p *cellParser) nullableFloat(col int) *float64 {
	if p.err != nil || p.cells[col] == "" {
		return nil
	}
	v, err := strconv.ParseFloat(p.cells[col], 64)
	if err != nil {
		p.err = fmt.Errorf("column %q: invalid number %q", dataset.ColumnNames[col], p.cells[col])
		return nil
	}
	return &v
}
