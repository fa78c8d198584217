package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindhealth/internal/model"
)

var fixedNow = time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

func TestBuildDashboard_NoData(t *testing.T) {
	for _, records := range [][]model.AssessmentRecord{
		nil,
		{record("2025-03-01T00:00:00Z")},
	} {
		d := BuildDashboard("u1", records, fixedNow)

		require.NotNil(t, d)
		assert.False(t, d.HasData)
		assert.Equal(t, "Sin datos", d.Status.Label)
		assert.Equal(t, model.FaceNeutral, d.Face)
		assert.Empty(t, d.Cards)
		assert.Empty(t, d.Trend)
		assert.Nil(t, d.Profile)
		assert.Equal(t, fixedNow, d.GeneratedAt)
	}
}

func TestBuildDashboard_SadOnly(t *testing.T) {
	d := BuildDashboard("u1", []model.AssessmentRecord{
		record("2025-03-01T10:00:00.000Z", vectorResult(0, 0, 0, 0, 1, 0, 0)),
	}, fixedNow)

	require.True(t, d.HasData)
	assert.Equal(t, "u1", d.UserID)
	assert.Equal(t, "Consulta recomendada", d.Status.Label)
	assert.Equal(t, model.FaceSad, d.Face)
	assert.Equal(t, "Triste", d.FaceLabel)
	assert.InDelta(t, 0.7875, d.OverallRisk, 1e-9)
	assert.Equal(t, 79, d.OverallPercent)
	assert.Equal(t, "Alto", d.OverallLevel.Label)

	require.Len(t, d.Cards, 4)
	assert.Equal(t, "depression", d.Cards[0].Key)
	assert.Equal(t, "Alto", d.Cards[0].Level.Label)
	assert.Equal(t, "anger", d.Cards[3].Key)

	assert.Equal(t, []string{depressionAdvice.high}, d.Recommendations)
	assert.Equal(t, 1.0, d.EmotionAvg["sad"])
	assert.Equal(t, 1, d.AssessmentCount)
}

func TestBuildDashboard_TrendIsChronological(t *testing.T) {
	d := BuildDashboard("u1", []model.AssessmentRecord{
		record("2025-03-03", vectorResult(1, 0, 0, 0, 0, 0, 0)),
		record("2025-03-02", vectorResult(0, 0, 0, 0, 0, 0, 1)),
		record("2025-03-01", vectorResult(0, 0, 0, 1, 0, 0, 0)),
	}, fixedNow)

	require.Len(t, d.Trend, 3)
	assert.Equal(t, "2025-03-01", d.Trend[0].Timestamp)
	assert.Equal(t, "2025-03-03", d.Trend[2].Timestamp)
	assert.Equal(t, 0.25, d.Trend[2].Value)
}

func TestBuildDashboard_UsesProfileWindow(t *testing.T) {
	p := DefaultParams()
	p.ProfileWindow = 1
	e := NewEngine(p)

	d := e.BuildDashboard("u1", []model.AssessmentRecord{
		record("new", vectorResult(0, 0, 0, 1, 0, 0, 0)),
		record("old", vectorResult(0, 0, 0, 0, 1, 0, 0)),
	}, fixedNow)

	assert.Equal(t, 1, d.AssessmentCount)
	assert.Equal(t, model.FaceHappy, d.Face)
	assert.Equal(t, "Bien", d.Status.Label)
}
