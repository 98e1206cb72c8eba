package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_SampleRow(t *testing.T) {
	rec := mustParse(t, sampleLine)
	row := Derive(rec)

	require.NotNil(t, row.AgeYears)
	assert.InDelta(t, 58.77, *row.AgeYears, 0.01)
	assert.InDelta(t, 21464.0/365.25, *row.AgeYears, 1e-12)
	assert.Equal(t, int64(1), row.DeathEvent)
	assert.Equal(t, int64(0), row.Male)
	assert.Equal(t, int64(1), row.Female)
	assert.Equal(t, int64(1), row.DrugTreatment)
}

func TestDerive_DeathEventOnlyForStatusDead(t *testing.T) {
	for status := int64(0); status <= 2; status++ {
		s := status
		row := Derive(Record{ID: 1, Status: &s})
		want := int64(0)
		if status == 2 {
			want = 1
		}
		assert.Equal(t, want, row.DeathEvent, "status %d", status)
	}
}

func TestDerive_MissingSourcesYieldZeroIndicators(t *testing.T) {
	row := Derive(Record{ID: 7})

	assert.Nil(t, row.AgeYears)
	assert.Equal(t, int64(0), row.DeathEvent)
	assert.Equal(t, int64(0), row.Male)
	assert.Equal(t, int64(0), row.Female)
	assert.Equal(t, int64(0), row.DrugTreatment)
}

func TestDerive_MaleRecord(t *testing.T) {
	sex := int64(0)
	row := Derive(Record{ID: 3, Sex: &sex})
	assert.Equal(t, int64(1), row.Male)
	assert.Equal(t, int64(0), row.Female)
}

func TestDeriveAll_IdempotentAndOrderPreserving(t *testing.T) {
	recs := []Record{
		mustParse(t, sampleLine),
		mustParse(t, "313 1077 0 . 20442 1 . . . 0.0 0.6 . 3.5 . . . . . 10.6 ."),
	}

	first := DeriveAll(recs)
	second := DeriveAll(recs)

	require.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), first[0].ID)
	assert.Equal(t, int64(313), first[1].ID)
}

func TestFeatureRow_Cells(t *testing.T) {
	row := Derive(mustParse(t, sampleLine))
	cells := row.Cells()

	require.Len(t, cells, len(MLColumnNames()))
	assert.Equal(t, "1", cells[0])   // id
	assert.Equal(t, "400", cells[1]) // futime
	assert.Equal(t, "1", cells[21])  // death_event
	assert.Equal(t, "0", cells[22])  // male
	assert.Equal(t, "1", cells[23])  // female
	assert.Equal(t, "1", cells[24])  // drug_treatment
}

func TestFeatureDescriptions_CoverSurvivalFeatures(t *testing.T) {
	desc := FeatureDescriptions()
	for _, name := range SurvivalFeatureColumns {
		assert.NotEmpty(t, desc[name], "missing description for %s", name)
	}
	assert.NotEmpty(t, desc["futime"])
	assert.NotEmpty(t, desc["death_event"])
}
