package dataset

import (
	"strconv"

	"github.com/meldlab/pbckit/pkg/pbc"
)

// FeatureRow is a Record plus the derived modeling columns. It is a pure
// function of the record: deriving it again always yields the same values,
// and row order mirrors the source order.
//
// The binary indicators treat a missing source value as 0, matching the
// published ML-ready exports of this dataset. age_years stays nullable
// because there is no defensible default age.
type FeatureRow struct {
	Record

	AgeYears      *float64
	DeathEvent    int64 // 1 iff status == 2
	Male          int64 // 1 iff sex == 0
	Female        int64 // 1 iff sex == 1
	DrugTreatment int64 // 1 iff drug == 1 (D-penicillamine)
}

// Derive computes the ML feature columns for one record.
func Derive(r Record) FeatureRow {
	row := FeatureRow{Record: r}

	if r.Age != nil {
		years := float64(*r.Age) / pbc.DaysPerYear
		row.AgeYears = &years
	}
	if r.Status != nil && *r.Status == pbc.StatusDead {
		row.DeathEvent = 1
	}
	if r.Sex != nil {
		if *r.Sex == 0 {
			row.Male = 1
		}
		if *r.Sex == 1 {
			row.Female = 1
		}
	}
	if r.Drug != nil && *r.Drug == 1 {
		row.DrugTreatment = 1
	}

	return row
}

// DeriveAll computes feature rows for every record, preserving order.
func DeriveAll(records []Record) []FeatureRow {
	rows := make([]FeatureRow, len(records))
	for i, r := range records {
		rows[i] = Derive(r)
	}
	return rows
}

// Cells returns the feature row serialized for CSV output: the 20 source
// cells followed by the derived cells, matching MLColumnNames.
func (f *FeatureRow) Cells() []string {
	cells := f.Record.Cells()
	cells = append(cells,
		floatCell(f.AgeYears),
		strconv.FormatInt(f.DeathEvent, 10),
		strconv.FormatInt(f.Male, 10),
		strconv.FormatInt(f.Female, 10),
		strconv.FormatInt(f.DrugTreatment, 10),
	)
	return cells
}
