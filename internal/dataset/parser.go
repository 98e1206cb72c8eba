package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/meldlab/pbckit/pkg/pbc"
)

// ReadDataFile reads the whitespace-delimited source file into records,
// preserving row order. Each line must carry exactly 20 fields; a line with
// any other field count fails the whole run rather than being skipped.
func ReadDataFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("data file %q: %w", path, pbc.ErrInputNotFound)
		}
		return nil, fmt.Errorf("open data file %q: %w", path, err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rec, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read data file %q: %w", path, err)
	}

	return records, nil
}

// ParseLine parses one whitespace-delimited data row into a Record.
// The "." token maps to a missing value.
func ParseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != pbc.PatientColumnCount {
		return Record{}, fmt.Errorf("expected %d fields, got %d: %w",
			pbc.PatientColumnCount, len(fields), pbc.ErrMalformedRow)
	}

	p := &fieldParser{fields: fields}

	rec := Record{
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
		return Record{}, p.err
	}
	return rec, nil
}

// fieldParser accumulates the first parse error so the field list above
// stays flat instead of threading err through twenty call sites.
type fieldParser struct {
	fields []string
	err    error
}

func (p *fieldParser) requiredInt(col int) int64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(p.fields[col], 10, 64)
	if err != nil {
		p.err = fmt.Errorf("column %q: invalid integer %q", ColumnNames[col], p.fields[col])
	}
	return v
}

func (p *fieldParser) nullableInt(col int) *int64 {
	if p.err != nil || p.fields[col] == pbc.MissingToken {
		return nil
	}
	v, err := strconv.ParseInt(p.fields[col], 10, 64)
	if err != nil {
		p.err = fmt.Errorf("column %q: invalid integer %q", ColumnNames[col], p.fields[col])
		return nil
	}
	return &v
}

func (p *fieldParser) nullableFloat(col int) *float64 {
	if p.err != nil || p.fields[col] == pbc.MissingToken {
		return nil
	}
	v, err := strconv.ParseFloat(p.fields[col], 64)
	if err != nil {
		p.err = fmt.Errorf("column %q: invalid number %q", ColumnNames[col], p.fields[col])
		return nil
	}
	return &v
}
