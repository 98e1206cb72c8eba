package survival

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"odd count", []float64{1, 2, 4}, 2},
		{"even count averages middles", []float64{1, 2, 3, 4}, 2.5},
		{"single value", []float64{7}, 7},
		{"unsorted input", []float64{4, 1, 2}, 2},
		{"two values", []float64{10, 20}, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, median(tt.in))
		})
	}
}

func TestMedian_DoesNotReorderInput(t *testing.T) {
	in := []float64{4, 1, 2}
	median(in)
	assert.Equal(t, []float64{4, 1, 2}, in)
}

func TestExtract_ImputesColumnMedian(t *testing.T) {
	// bili column [1, 2, missing, 4]: the median of the three present
	// values is 2, and that is what must be imputed.
	path := writeCSV(t, "futime,death_event,bili\n400,1,1\n500,0,2\n600,0,\n700,1,4\n")

	f, err := Load(path)
	require.NoError(t, err)

	data, err := Extract(f)
	require.NoError(t, err)

	require.Equal(t, []string{"bili"}, data.FeatureNames)
	assert.Equal(t, 1.0, data.Features.At(0, 0))
	assert.Equal(t, 2.0, data.Features.At(1, 0))
	assert.Equal(t, 2.0, data.Features.At(2, 0), "missing value must impute the median of present values")
	assert.Equal(t, 4.0, data.Features.At(3, 0))
}

func TestExtract_ShapesMatchRowCount(t *testing.T) {
	path := writeCSV(t,
		"futime,death_event,age_years,male,bili,chol\n"+
			"400,1,58.8,0,14.5,261\n"+
			"4500,0,56.4,0,1.1,302\n"+
			"1012,1,70.1,1,1.4,176\n")

	f, err := Load(path)
	require.NoError(t, err)

	data, err := Extract(f)
	require.NoError(t, err)

	assert.Len(t, data.Durations, 3)
	assert.Len(t, data.Events, 3)
	rows, cols := data.Features.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, len(data.FeatureNames), cols)

	// Fixed feature order, minus the columns absent from the input.
	assert.Equal(t, []string{"age_years", "male", "bili", "chol"}, data.FeatureNames)

	assert.Equal(t, []float64{400, 4500, 1012}, data.Durations)
	assert.Equal(t, []int64{1, 0, 1}, data.Events)
}

func TestExtract_RequiresOutcomeColumns(t *testing.T) {
	f, err := Load(writeCSV(t, "bili\n1.0\n"))
	require.NoError(t, err)

	_, err = Extract(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "futime" not present`)

	f, err = Load(writeCSV(t, "futime\n400\n"))
	require.NoError(t, err)

	_, err = Extract(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "death_event" not present`)
}

func TestExtract_DoesNotMutateFrame(t *testing.T) {
	path := writeCSV(t, "futime,death_event,bili\n400,1,1\n500,0,\n")

	f, err := Load(path)
	require.NoError(t, err)

	_, err = Extract(f)
	require.NoError(t, err)

	bili, err := f.Column("bili")
	require.NoError(t, err)
	assert.True(t, bili.Missing[1])
	assert.True(t, math.IsNaN(bili.Values[1]))
}

func TestExtract_AllMissingFeatureColumn(t *testing.T) {
	f, err := Load(writeCSV(t, "futime,death_event,bili\n400,1,\n500,0,\n"))
	require.NoError(t, err)

	_, err = Extract(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no present values to impute")
}

func TestPrintSummary(t *testing.T) {
	path := writeCSV(t,
		"futime,status,death_event,age_years,bili\n"+
			"400,2,1,58.8,14.5\n"+
			"4500,0,0,56.4,\n"+
			"1012,1,0,70.1,1.4\n")

	f, err := Load(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, f))
	out := buf.String()

	assert.Contains(t, out, "Total patients:")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "Deaths:")
	assert.Contains(t, out, "Transplants:")
	assert.Contains(t, out, "Median survival time:")
	assert.Contains(t, out, "1012 days")
	assert.Contains(t, out, "56.4 - 70.1 years")
	assert.Contains(t, out, "bili")
}

func TestPrintShapes(t *testing.T) {
	f, err := Load(writeCSV(t, "futime,death_event,bili\n400,1,1\n500,0,2\n"))
	require.NoError(t, err)

	data, err := Extract(f)
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintShapes(&buf, data)
	out := buf.String()

	assert.Contains(t, out, "(2,)")
	assert.Contains(t, out, "(2, 1)")
	assert.Contains(t, out, "bili")
}

func TestPrintDescriptions(t *testing.T) {
	var buf bytes.Buffer
	PrintDescriptions(&buf)
	out := buf.String()

	assert.Contains(t, out, "age_years")
	assert.Contains(t, out, "Serum bilirubin")
	assert.Contains(t, out, "Prothrombin time")
}
