// Package survival loads an ML-ready CSV back into memory and prepares
// survival-analysis inputs: the follow-up duration vector, the death event
// vector, and a median-imputed feature matrix.
package survival

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/meldlab/pbckit/internal/dataset"
	"github.com/meldlab/pbckit/pkg/pbc"
)

// Series is one named column of float values with an explicit missing-value
// mask. Missing positions also hold NaN so a stray unmasked read is loud.
type Series struct {
	Name    string
	Values  []float64
	Missing []bool

	// Integer marks columns that were validated as nullable integers
	// during categorical coercion.
	Integer bool
}

// Len returns the number of rows in the series.
func (s *Series) Len() int { return len(s.Values) }

// MissingCount returns the number of missing values in the series.
func (s *Series) MissingCount() int {
	n := 0
	for _, m := range s.Missing {
		if m {
			n++
		}
	}
	return n
}

// Present returns the non-missing values in row order.
func (s *Series) Present() []float64 {
	out := make([]float64, 0, len(s.Values))
	for i, v := range s.Values {
		if !s.Missing[i] {
			out = append(out, v)
		}
	}
	return out
}

// Ints returns the series as nullable integers: nil where the value is
// missing. Only meaningful for Integer series.
func (s *Series) Ints() []*int64 {
	out := make([]*int64, len(s.Values))
	for i, v := range s.Values {
		if s.Missing[i] {
			continue
		}
		n := int64(v)
		out[i] = &n
	}
	return out
}

// Frame is a column-oriented view of a loaded CSV. Column order follows the
// file header; row order follows the file.
type Frame struct {
	names []string
	cols  map[string]*Series
	nrows int
}

// Load reads a CSV produced by the converter into a Frame. Every column is
// parsed as float with empty cells marked missing, then the known categorical
// columns are coerced to nullable integers: each present value must be
// integral, and missingness is preserved rather than defaulted.
func Load(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("csv file %q: %w", path, pbc.ErrInputNotFound)
		}
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%q is empty", path)
	}

	header := rows[0]
	body := rows[1:]

	frame := &Frame{
		names: append([]string(nil), header...),
		cols:  make(map[string]*Series, len(header)),
		nrows: len(body),
	}

	for col, name := range header {
		s := &Series{
			Name:    name,
			Values:  make([]float64, len(body)),
			Missing: make([]bool, len(body)),
		}
		for row, cells := range body {
			if col >= len(cells) {
				return nil, fmt.Errorf("%q row %d: %d cells, expected %d", path, row+1, len(cells), len(header))
			}
			cell := cells[col]
			if cell == "" {
				s.Values[row] = math.NaN()
				s.Missing[row] = true
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%q row %d column %q: invalid number %q", path, row+1, name, cell)
			}
			s.Values[row] = v
		}
		frame.cols[name] = s
	}

	if err := frame.coerceCategoricals(); err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return frame, nil
}

// coerceCategoricals validates the known categorical columns as nullable
// integers. Values stay stored as floats; the check guarantees they are
// integral wherever present.
func (f *Frame) coerceCategoricals() error {
	for _, name := range dataset.CategoricalColumns {
		s, ok := f.cols[name]
		if !ok {
			continue
		}
		for i, v := range s.Values {
			if s.Missing[i] {
				continue
			}
			if v != math.Trunc(v) {
				return fmt.Errorf("column %q row %d: %v is not an integer", name, i+1, v)
			}
		}
		s.Integer = true
	}
	return nil
}

// NumRows returns the number of data rows.
func (f *Frame) NumRows() int { return f.nrows }

// Names returns the column names in file order.
func (f *Frame) Names() []string { return append([]string(nil), f.names...) }

// Has reports whether a column exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Column returns the named series, or an error naming the missing column.
func (f *Frame) Column(name string) (*Series, error) {
	s, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("column %q not present", name)
	}
	return s, nil
}
