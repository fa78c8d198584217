package scoring

import (
	"math"

	"mindhealth/internal/model"
)

// Observation is the shape a recorded predictedEmotion arrived in.
// It is one of FullVector, CategoricalFallback or Unknown.
type Observation interface {
	observation()
}

// FullVector is a complete classifier output in slot order.
type FullVector struct {
	Scores model.EmotionVector
}

// CategoricalFallback carries only the winning label and its score.
type CategoricalFallback struct {
	Label model.Emotion
	Score float64
}

// Unknown is an observation with neither scores nor a known label.
type Unknown struct{}

func (FullVector) observation()          {}
func (CategoricalFallback) observation() {}
func (Unknown) observation()             {}

// ClassifyObservation decides which shape pe has. A nil pe is Unknown.
func ClassifyObservation(pe *model.PredictedEmotion) Observation {
	if pe == nil {
		return Unknown{}
	}
	if len(pe.AllScores) == model.EmotionCount {
		var v model.EmotionVector
		copy(v[:], pe.AllScores)
		return FullVector{Scores: v}
	}
	if label, ok := model.ParseEmotion(pe.CategoryName); ok {
		return CategoricalFallback{Label: label, Score: pe.Score}
	}
	return Unknown{}
}

// Normalize converts an observation to a fixed emotion vector.
func (e *Engine) Normalize(obs Observation) model.EmotionVector {
	var v model.EmotionVector
	switch o := obs.(type) {
	case FullVector:
		v = o.Scores
	case CategoricalFallback:
		score := o.Score
		if math.IsNaN(score) {
			score = 0
		}
		v[o.Label] = math.Max(e.p.FallbackConfidenceFloor, score)
	case Unknown, nil:
	}
	return v
}

// NormalizeResult classifies and normalises the emotion of one question result.
func (e *Engine) NormalizeResult(r model.QuestionResult) model.EmotionVector {
	return e.Normalize(ClassifyObservation(r.PredictedEmotion))
}

// NormalizeResult uses the default parameters.
func NormalizeResult(r model.QuestionResult) model.EmotionVector {
	return defaultEngine.NormalizeResult(r)
}
