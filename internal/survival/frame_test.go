package survival

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meldlab/pbckit/pkg/pbc"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ParsesValuesAndMissing(t *testing.T) {
	path := writeCSV(t, "futime,bili,drug\n400,14.5,1\n1077,,\n4500,1.1,2\n")

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, f.NumRows())
	assert.Equal(t, []string{"futime", "bili", "drug"}, f.Names())

	bili, err := f.Column("bili")
	require.NoError(t, err)
	assert.Equal(t, 14.5, bili.Values[0])
	assert.True(t, bili.Missing[1])
	assert.True(t, math.IsNaN(bili.Values[1]))
	assert.Equal(t, 1, bili.MissingCount())
	assert.Equal(t, []float64{14.5, 1.1}, bili.Present())
}

func TestLoad_CategoricalCoercion(t *testing.T) {
	path := writeCSV(t, "drug,sex\n1,0\n,1\n2,0\n")

	f, err := Load(path)
	require.NoError(t, err)

	drug, err := f.Column("drug")
	require.NoError(t, err)
	assert.True(t, drug.Integer)

	ints := drug.Ints()
	require.Len(t, ints, 3)
	require.NotNil(t, ints[0])
	assert.Equal(t, int64(1), *ints[0])
	assert.Nil(t, ints[1], "explicit missing must stay missing, not default")
	require.NotNil(t, ints[2])
	assert.Equal(t, int64(2), *ints[2])
}

func TestLoad_NonIntegralCategoricalRejected(t *testing.T) {
	path := writeCSV(t, "drug\n1.5\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "drug"`)
	assert.Contains(t, err.Error(), "not an integer")
}

func TestLoad_EdemaStaysContinuous(t *testing.T) {
	// edema is an enum over {0, 0.5, 1}, not an integer column
	path := writeCSV(t, "edema\n0.5\n")

	f, err := Load(path)
	require.NoError(t, err)

	edema, err := f.Column("edema")
	require.NoError(t, err)
	assert.False(t, edema.Integer)
	assert.Equal(t, 0.5, edema.Values[0])
}

func TestLoad_InvalidNumber(t *testing.T) {
	path := writeCSV(t, "bili\nabc\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "bili"`)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, pbc.ErrInputNotFound)
}

func TestFrame_Column_NotPresent(t *testing.T) {
	f, err := Load(writeCSV(t, "bili\n1.0\n"))
	require.NoError(t, err)

	assert.True(t, f.Has("bili"))
	assert.False(t, f.Has("chol"))

	_, err = f.Column("chol")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "chol" not present`)
}
