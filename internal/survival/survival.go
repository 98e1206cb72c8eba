package survival

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/meldlab/pbckit/internal/dataset"
)

// Data is the survival-analysis tuple extracted from a loaded frame.
// All three pieces have one entry (or row) per source row, in source order.
type Data struct {
	// Durations is the follow-up time in days (futime).
	Durations []float64

	// Events is the binary death indicator (1=death, 0=censored).
	Events []int64

	// Features is the imputed feature matrix, NumRows x len(FeatureNames).
	Features *mat.Dense

	// FeatureNames names the matrix columns, in order.
	FeatureNames []string
}

// Extract builds the survival tuple from a frame. The feature matrix uses
// the fixed survival feature list minus any column absent from the input.
// Missing feature values are filled with that column's median over the full
// table, computed once per column. Extraction does not mutate the frame.
func Extract(f *Frame) (*Data, error) {
	futime, err := f.Column("futime")
	if err != nil {
		return nil, fmt.Errorf("survival extraction: %w", err)
	}
	event, err := f.Column("death_event")
	if err != nil {
		return nil, fmt.Errorf("survival extraction: %w", err)
	}

	n := f.NumRows()

	durations := append([]float64(nil), futime.Values...)

	events := make([]int64, n)
	for i, v := range event.Values {
		if !event.Missing[i] && v != 0 {
			events[i] = 1
		}
	}

	var names []string
	for _, name := range dataset.SurvivalFeatureColumns {
		if f.Has(name) {
			names = append(names, name)
		}
	}
	if n == 0 || len(names) == 0 {
		return nil, fmt.Errorf("survival extraction: no data (%d rows, %d feature columns)", n, len(names))
	}

	features := mat.NewDense(n, len(names), nil)
	for j, name := range names {
		s, err := f.Column(name)
		if err != nil {
			return nil, err
		}

		fill := 0.0
		if s.MissingCount() > 0 {
			present := s.Present()
			if len(present) == 0 {
				return nil, fmt.Errorf("column %q has no present values to impute from", name)
			}
			fill = median(present)
		}

		for i := 0; i < n; i++ {
			v := s.Values[i]
			if s.Missing[i] {
				v = fill
			}
			features.Set(i, j, v)
		}
	}

	return &Data{
		Durations:    durations,
		Events:       events,
		Features:     features,
		FeatureNames: names,
	}, nil
}

// median returns the statistical median: the middle value for odd counts,
// the average of the two middle values for even counts.
func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
