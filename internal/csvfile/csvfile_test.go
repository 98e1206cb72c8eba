package csvfile

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meldlab/pbckit/internal/dataset"
	"github.com/meldlab/pbckit/pkg/pbc"
)

var sampleLines = []string{
	"1 400 2 1 21464 1 1 1 1 1.0 14.5 261 2.60 156 1718 137.95 172 190 12.2 4",
	"2 4500 0 1 20617 1 0 1 1 0.0 1.1 302 4.14 54 7394.8 113.52 88 221 10.6 3",
	"313 1077 0 . 20442 1 . . . 0.0 0.6 . 3.5 . . . . . 10.6 .",
}

func sampleRecords(t *testing.T) []dataset.Record {
	t.Helper()
	records := make([]dataset.Record, 0, len(sampleLines))
	for _, line := range sampleLines {
		rec, err := dataset.ParseLine(line)
		require.NoError(t, err)
		records = append(records, rec)
	}
	return records
}

func TestWriteRecords_RoundTrip(t *testing.T) {
	records := sampleRecords(t)
	path := filepath.Join(t.TempDir(), "pbc_data.csv")

	require.NoError(t, WriteRecords(path, records))

	got, err := ReadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestWriteRecords_MissingValuesAreEmptyCells(t *testing.T) {
	records := sampleRecords(t)
	path := filepath.Join(t.TempDir(), "pbc_data.csv")
	require.NoError(t, WriteRecords(path, records))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, strings.Join(dataset.ColumnNames, ","), lines[0])
	// drug, ascites, hepato, spiders missing on row 313
	assert.True(t, strings.HasPrefix(lines[3], "313,1077,0,,20442,1,,,,"),
		"row 313 should serialize missing values as empty cells: %s", lines[3])
	// a zero cell must stay distinguishable from a missing cell
	assert.NotContains(t, lines[3], ",0,0,0,0,0.6")
}

func TestWriteRecords_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pbc_data.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0644))

	require.NoError(t, WriteRecords(path, sampleRecords(t)[:1]))

	got, err := ReadRecords(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestWriteFeatureRows_HeaderAndDerivedColumns(t *testing.T) {
	rows := dataset.DeriveAll(sampleRecords(t))
	path := filepath.Join(t.TempDir(), "pbc_ml_ready.csv")
	require.NoError(t, WriteFeatureRows(path, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, all, 4)

	assert.Equal(t, dataset.MLColumnNames(), all[0])

	// Scenario row: death_event=1, male=0, female=1, age_years ~= 58.77
	first := all[1]
	assert.Equal(t, "1", first[21])
	assert.Equal(t, "0", first[22])
	assert.Equal(t, "1", first[23])
	assert.True(t, strings.HasPrefix(first[20], "58.77"), "age_years = %s", first[20])
}

func TestReadRecords_Missing(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, pbc.ErrInputNotFound)
}

func TestReadRecords_HeaderMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0644))

	_, err := ReadRecords(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 20 columns")
}
