package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindhealth/internal/model"
)

func vectorResult(scores ...float64) model.QuestionResult {
	return model.QuestionResult{
		QuestionID:       "q",
		PredictedEmotion: &model.PredictedEmotion{AllScores: scores},
	}
}

func record(ts string, results ...model.QuestionResult) model.AssessmentRecord {
	return model.AssessmentRecord{Timestamp: ts, SummarizedResults: results}
}

func TestComputeAggregates_NoData(t *testing.T) {
	assert.Nil(t, ComputeAggregates(nil, 8))
	assert.Nil(t, ComputeAggregates([]model.AssessmentRecord{}, 8))
	assert.Nil(t, ComputeAggregates([]model.AssessmentRecord{
		record("2025-01-02T00:00:00Z"),
		record("2025-01-01T00:00:00Z"),
	}, 8))
}

func TestComputeAggregates_SingleSadObservation(t *testing.T) {
	agg := ComputeAggregates([]model.AssessmentRecord{
		record("2025-03-01T10:00:00.000Z", vectorResult(0, 0, 0, 0, 1, 0, 0)),
	}, 8)
	require.NotNil(t, agg)

	assert.Equal(t, model.EmotionVector{0, 0, 0, 0, 1, 0, 0}, agg.EmotionAvg)
	assert.Equal(t, model.TextSignals{}, agg.TextAvg)
	require.Len(t, agg.PerEvalNegIndex, 1)
	assert.Equal(t, "2025-03-01T10:00:00.000Z", agg.PerEvalNegIndex[0].Timestamp)
	assert.Equal(t, 0.25, agg.PerEvalNegIndex[0].Value)
}

func TestComputeAggregates_GrandAverageAcrossQuestions(t *testing.T) {
	// averaging is per question, not per record
	agg := ComputeAggregates([]model.AssessmentRecord{
		record("b", vectorResult(1, 0, 0, 0, 0, 0, 0)),
		record("a",
			vectorResult(0, 0, 0, 1, 0, 0, 0),
			vectorResult(0, 0, 0, 1, 0, 0, 0),
			vectorResult(0, 0, 0, 1, 0, 0, 0),
		),
	}, 8)
	require.NotNil(t, agg)

	assert.InDelta(t, 0.25, agg.EmotionAvg[model.EmotionAngry], 1e-12)
	assert.InDelta(t, 0.75, agg.EmotionAvg[model.EmotionHappy], 1e-12)
	assert.Equal(t, 4, agg.QuestionCount)

	require.Len(t, agg.PerEvalNegIndex, 2)
	assert.Equal(t, model.TrendPoint{Timestamp: "b", Value: 0.25}, agg.PerEvalNegIndex[0])
	assert.Equal(t, model.TrendPoint{Timestamp: "a", Value: 0}, agg.PerEvalNegIndex[1])
}

func TestComputeAggregates_CapsWindow(t *testing.T) {
	var records []model.AssessmentRecord
	for i := 0; i < 12; i++ {
		records = append(records, record(fmt.Sprintf("t%02d", i), vectorResult(0, 0, 0, 0, 0, 0, 1)))
	}
	// older records beyond the window must not count
	records[10].SummarizedResults = []model.QuestionResult{vectorResult(1, 1, 1, 1, 1, 1, 1)}

	agg := ComputeAggregates(records, 8)
	require.NotNil(t, agg)
	assert.Len(t, agg.PerEvalNegIndex, 8)
	assert.Equal(t, "t07", agg.PerEvalNegIndex[7].Timestamp)
	assert.Equal(t, model.EmotionVector{0, 0, 0, 0, 0, 0, 1}, agg.EmotionAvg)
}

func TestComputeAggregates_DefaultWindow(t *testing.T) {
	var records []model.AssessmentRecord
	for i := 0; i < 10; i++ {
		records = append(records, record(fmt.Sprintf("t%d", i), vectorResult(0, 0, 0, 0, 0, 0, 1)))
	}
	agg := ComputeAggregates(records, 0)
	require.NotNil(t, agg)
	assert.Len(t, agg.PerEvalNegIndex, 8)

	agg = ComputeAggregates(records, -3)
	require.NotNil(t, agg)
	assert.Len(t, agg.PerEvalNegIndex, 8)
}

func TestComputeAggregates_SkipsEmptyRecordsInTrend(t *testing.T) {
	agg := ComputeAggregates([]model.AssessmentRecord{
		record("c", vectorResult(0, 0, 1, 0, 0, 0, 0)),
		record("b"),
		record("a", vectorResult(0, 0, 0, 0, 1, 0, 0)),
	}, 8)
	require.NotNil(t, agg)

	require.Len(t, agg.PerEvalNegIndex, 2)
	assert.Equal(t, "c", agg.PerEvalNegIndex[0].Timestamp)
	assert.Equal(t, "a", agg.PerEvalNegIndex[1].Timestamp)
}

func TestComputeAggregates_TextAverageOnlyOverAnswers(t *testing.T) {
	withText := vectorResult(0, 0, 0, 0, 0, 0, 1)
	withText.UserAnswer = "triste"
	blank := vectorResult(0, 0, 0, 0, 0, 0, 1)
	blank.UserAnswer = "   "

	agg := ComputeAggregates([]model.AssessmentRecord{record("a", withText, blank)}, 8)
	require.NotNil(t, agg)

	assert.Equal(t, 1, agg.TextCount)
	assert.Equal(t, 1.0, agg.TextAvg.Negative)
	assert.Equal(t, 1.0, agg.TextAvg.Depression)
	assert.Zero(t, agg.TextAvg.Positive)
}

func TestComputeAggregates_MalformedObservationDegrades(t *testing.T) {
	bad := model.QuestionResult{QuestionID: "q2", PredictedEmotion: &model.PredictedEmotion{CategoryName: "???"}}
	agg := ComputeAggregates([]model.AssessmentRecord{
		record("a", vectorResult(0, 0, 0, 0, 1, 0, 0), bad),
	}, 8)
	require.NotNil(t, agg)

	assert.Equal(t, 2, agg.QuestionCount)
	assert.Equal(t, 0.5, agg.EmotionAvg[model.EmotionSad])
}

func TestComputeAggregates_CategoricalFallback(t *testing.T) {
	r := model.QuestionResult{PredictedEmotion: &model.PredictedEmotion{CategoryName: "fear", Score: 0.2}}
	agg := ComputeAggregates([]model.AssessmentRecord{record("a", r)}, 8)
	require.NotNil(t, agg)
	assert.Equal(t, 0.6, agg.EmotionAvg[model.EmotionFear])
}

func TestChronological(t *testing.T) {
	in := []model.TrendPoint{{Timestamp: "3", Value: 0.3}, {Timestamp: "2", Value: 0.2}, {Timestamp: "1", Value: 0.1}}
	out := Chronological(in)

	assert.Equal(t, []model.TrendPoint{{Timestamp: "1", Value: 0.1}, {Timestamp: "2", Value: 0.2}, {Timestamp: "3", Value: 0.3}}, out)
	assert.Equal(t, "3", in[0].Timestamp, "input untouched")
	assert.Empty(t, Chronological(nil))
}
