package dataset

import "strconv"

// Record is one patient row from the source file. The identifier is always
// present; every other field is nullable and carried as a pointer so that
// missing values survive every materialization as an explicit NULL.
type Record struct {
	ID       int64
	Futime   *int64
	Status   *int64
	Drug     *int64
	Age      *int64 // age in days
	Sex      *int64
	Ascites  *int64
	Hepato   *int64
	Spiders  *int64
	Edema    *float64 // 0, 0.5 or 1
	Bili     *float64
	Chol     *float64
	Albumin  *float64
	Copper   *float64
	AlkPhos  *float64
	Sgot     *float64
	Trig     *float64
	Platelet *float64
	Protime  *float64
	Stage    *int64
}

// Values returns the record's fields in source column order, with nil for
// missing values. The order matches ColumnNames and the pbc_patients table.
func (r *Record) Values() []interface{} {
	return []interface{}{
		r.ID,
		intVal(r.Futime),
		intVal(r.Status),
		intVal(r.Drug),
		intVal(r.Age),
		intVal(r.Sex),
		intVal(r.Ascites),
		intVal(r.Hepato),
		intVal(r.Spiders),
		floatVal(r.Edema),
		floatVal(r.Bili),
		floatVal(r.Chol),
		floatVal(r.Albumin),
		floatVal(r.Copper),
		floatVal(r.AlkPhos),
		floatVal(r.Sgot),
		floatVal(r.Trig),
		floatVal(r.Platelet),
		floatVal(r.Protime),
		intVal(r.Stage),
	}
}

// Cells returns the record serialized for CSV output, in source column order.
// Missing values serialize as empty cells.
func (r *Record) Cells() []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		intCell(r.Futime),
		intCell(r.Status),
		intCell(r.Drug),
		intCell(r.Age),
		intCell(r.Sex),
		intCell(r.Ascites),
		intCell(r.Hepato),
		intCell(r.Spiders),
		floatCell(r.Edema),
		floatCell(r.Bili),
		floatCell(r.Chol),
		floatCell(r.Albumin),
		floatCell(r.Copper),
		floatCell(r.AlkPhos),
		floatCell(r.Sgot),
		floatCell(r.Trig),
		floatCell(r.Platelet),
		floatCell(r.Protime),
		intCell(r.Stage),
	}
}

// MissingCounts returns the number of missing values per column, indexed in
// step with ColumnNames.
func MissingCounts(records []Record) []int {
	counts := make([]int, len(ColumnNames))
	for i := range records {
		for col, v := range records[i].Values() {
			if v == nil {
				counts[col]++
			}
		}
	}
	return counts
}

// intVal unwraps a nullable integer for driver-level parameters.
// A typed nil inside interface{} would not round-trip as SQL NULL.
func intVal(p *int64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func floatVal(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func intCell(p *int64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(*p, 10)
}

func floatCell(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'g', -1, 64)
}
