package scoring

import (
	"math"

	"mindhealth/internal/model"
)

// BuildRiskProfile blends an aggregate with the default parameters.
func BuildRiskProfile(agg model.Aggregate) model.RiskProfile {
	return defaultEngine.BuildRiskProfile(agg)
}

// BuildRiskProfile combines the facial emotion average and the text signals
// into four indices in [0,1]. Each text term is capped at Blend.BoostCap
// before the sum is clamped.
func (e *Engine) BuildRiskProfile(agg model.Aggregate) model.RiskProfile {
	b := e.p.Blend
	v := agg.EmotionAvg
	t := agg.TextAvg

	sad := v[model.EmotionSad]
	fear := v[model.EmotionFear]
	angry := v[model.EmotionAngry]
	happy := v[model.EmotionHappy]

	neg := negIndex(v)
	pos := happy
	calmness := math.Max(0, 1-(fear+angry)/2)

	boost := func(x, w float64) float64 {
		return clamp(x*w, 0, b.BoostCap)
	}

	depression := clamp01(b.DepressionSad*sad + b.DepressionNeg*neg + b.DepressionNotHappy*(1-pos) +
		boost(t.Depression, b.DepressionTextDep) + boost(t.Negative, b.DepressionTextNeg))
	anxiety := clamp01(b.AnxietyFear*fear + b.AnxietyNeg*neg + b.AnxietyNotCalm*(1-calmness) +
		boost(t.Anxiety, b.AnxietyTextAnx) + boost(t.Stress, b.AnxietyTextStress))
	stress := clamp01(b.StressFearAngry*(fear+angry)/2 + b.StressNeg*neg +
		boost(t.Stress, b.StressTextStress) + boost(t.Negative, b.StressTextNeg))
	anger := clamp01(b.AngerAngry*angry + b.AngerNeg*neg + boost(t.Anger, b.AngerTextAnger))

	return model.RiskProfile{
		Indices: model.RiskIndices{
			Depression: depression,
			Anxiety:    anxiety,
			Stress:     stress,
			Anger:      anger,
		},
		Summaries: model.RiskSummaries{
			NegIndex: clamp01(neg),
			PosIndex: clamp01(pos),
			Neutral:  clamp01(v[model.EmotionNeutral]),
		},
	}
}

// OverallRisk is the worst of the four indices.
func OverallRisk(p model.RiskProfile) float64 {
	return p.Indices.Max()
}
