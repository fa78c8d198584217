package scoring

import (
	"strings"

	"mindhealth/internal/model"
)

// ComputeAggregates folds records with the default parameters. maxDocs <= 0
// means the default window of 8, not an empty window.
func ComputeAggregates(records []model.AssessmentRecord, maxDocs int) *model.Aggregate {
	return defaultEngine.ComputeAggregates(records, maxDocs)
}

// ComputeAggregates folds at most maxDocs records (most recent first) into
// average emotion and text vectors plus one negative-index point per record
// that has results. maxDocs <= 0 uses the profile window. Returns nil when
// there is no question result to average.
func (e *Engine) ComputeAggregates(records []model.AssessmentRecord, maxDocs int) *model.Aggregate {
	if maxDocs <= 0 {
		maxDocs = e.p.ProfileWindow
	}
	if len(records) > maxDocs {
		records = records[:maxDocs]
	}
	if len(records) == 0 {
		return nil
	}

	var (
		totals    model.EmotionVector
		count     int
		textTotal model.TextSignals
		textCount int
		trend     = make([]model.TrendPoint, 0, len(records))
	)

	for _, rec := range records {
		var evalTotals model.EmotionVector
		evalCount := 0

		for _, r := range rec.SummarizedResults {
			scores := e.NormalizeResult(r)
			totals = totals.Add(scores)
			evalTotals = evalTotals.Add(scores)
			count++
			evalCount++

			if strings.TrimSpace(r.UserAnswer) != "" {
				textTotal = textTotal.Add(e.ScoreText(r.UserAnswer))
				textCount++
			}
		}

		if evalCount > 0 {
			avg := evalTotals.Div(float64(evalCount))
			trend = append(trend, model.TrendPoint{
				Timestamp: rec.Timestamp,
				Value:     negIndex(avg),
			})
		}
	}

	if count == 0 {
		return nil
	}

	agg := &model.Aggregate{
		EmotionAvg:      totals.Div(float64(count)),
		PerEvalNegIndex: trend,
		QuestionCount:   count,
		TextCount:       textCount,
	}
	if textCount > 0 {
		agg.TextAvg = textTotal.Div(float64(textCount))
	}
	return agg
}

// Chronological returns points reversed into oldest-first order. The input is
// not modified.
func Chronological(points []model.TrendPoint) []model.TrendPoint {
	out := make([]model.TrendPoint, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

func negIndex(v model.EmotionVector) float64 {
	return (v[model.EmotionAngry] + v[model.EmotionDisgust] + v[model.EmotionFear] + v[model.EmotionSad]) / 4
}
