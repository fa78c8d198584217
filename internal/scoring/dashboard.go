package scoring

import (
	"math"
	"time"

	"mindhealth/internal/model"
)

// BuildDashboard runs the full pipeline with the default parameters.
func BuildDashboard(userID string, records []model.AssessmentRecord, now time.Time) *model.Dashboard {
	return defaultEngine.BuildDashboard(userID, records, now)
}

// BuildDashboard aggregates the profile window of records (most recent first)
// and derives everything the status page shows. Records without any question
// result produce the no-data dashboard.
func (e *Engine) BuildDashboard(userID string, records []model.AssessmentRecord, now time.Time) *model.Dashboard {
	agg := e.ComputeAggregates(records, e.p.ProfileWindow)
	if agg == nil {
		return NoDataDashboard(userID, now)
	}

	profile := e.BuildRiskProfile(*agg)
	overall := OverallRisk(profile)
	face := e.EmotionForFace(profile)

	return &model.Dashboard{
		UserID:         userID,
		HasData:        true,
		Status:         e.GlobalStatus(profile),
		Face:           face,
		FaceLabel:      FaceLabel(face),
		OverallRisk:    overall,
		OverallPercent: percent(overall),
		OverallLevel:   e.LevelFromScore(overall),
		Cards: []model.IndexCard{
			e.card("depression", profile.Indices.Depression),
			e.card("anxiety", profile.Indices.Anxiety),
			e.card("stress", profile.Indices.Stress),
			e.card("anger", profile.Indices.Anger),
		},
		Profile:         &profile,
		Recommendations: e.GenerateRecommendations(profile),
		Trend:           Chronological(agg.PerEvalNegIndex),
		EmotionAvg:      agg.EmotionAvg.Map(),
		AssessmentCount: len(agg.PerEvalNegIndex),
		GeneratedAt:     now,
	}
}

// NoDataDashboard is the empty state: neutral face and an empty bar.
func NoDataDashboard(userID string, now time.Time) *model.Dashboard {
	return &model.Dashboard{
		UserID:          userID,
		Status:          StatusNoData,
		Face:            model.FaceNeutral,
		FaceLabel:       FaceLabel(model.FaceNeutral),
		OverallLevel:    levelLow,
		Cards:           []model.IndexCard{},
		Recommendations: []string{},
		Trend:           []model.TrendPoint{},
		GeneratedAt:     now,
	}
}

func (e *Engine) card(key string, score float64) model.IndexCard {
	return model.IndexCard{
		Key:     key,
		Score:   score,
		Percent: percent(score),
		Level:   e.LevelFromScore(score),
	}
}

func percent(score float64) int {
	return int(math.Round(score * 100))
}
