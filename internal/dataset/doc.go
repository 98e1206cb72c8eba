// Package dataset models the Primary Biliary Cirrhosis study data: the
// 20-column patient record read from the whitespace-delimited source file,
// and the derived columns appended for survival-analysis workflows.
//
// A "." token in the source marks a missing value. Missing values are carried
// as nil pointers and must never collapse to zero in any materialization.
package dataset
