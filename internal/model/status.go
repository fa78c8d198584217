package model

import "time"

// TextSignals are the keyword-derived affect scores of free-text answers, each in [0,1]
type TextSignals struct {
	Positive   float64 `json:"positive"`
	Negative   float64 `json:"negative"`
	Anxiety    float64 `json:"anxiety"`
	Depression float64 `json:"depression"`
	Anger      float64 `json:"anger"`
	Stress     float64 `json:"stress"`
}

// Add returns the field-wise sum of t and o.
func (t TextSignals) Add(o TextSignals) TextSignals {
	return TextSignals{
		Positive:   t.Positive + o.Positive,
		Negative:   t.Negative + o.Negative,
		Anxiety:    t.Anxiety + o.Anxiety,
		Depression: t.Depression + o.Depression,
		Anger:      t.Anger + o.Anger,
		Stress:     t.Stress + o.Stress,
	}
}

// Div returns t with every field divided by n.
func (t TextSignals) Div(n float64) TextSignals {
	return TextSignals{
		Positive:   t.Positive / n,
		Negative:   t.Negative / n,
		Anxiety:    t.Anxiety / n,
		Depression: t.Depression / n,
		Anger:      t.Anger / n,
		Stress:     t.Stress / n,
	}
}

// TrendPoint is the negative-affect index of one assessment
type TrendPoint struct {
	Timestamp string  `json:"timestamp"`
	Value     float64 `json:"value"`
}

// Aggregate is the fold of a window of assessments. Never persisted.
type Aggregate struct {
	EmotionAvg      EmotionVector `json:"emotionAvg"`
	TextAvg         TextSignals   `json:"textAvg"`
	PerEvalNegIndex []TrendPoint  `json:"perEvalNegIndex"` // same order as the input records
	QuestionCount   int           `json:"questionCount"`
	TextCount       int           `json:"textCount"`
}

// RiskIndices are the four clamped category indices
type RiskIndices struct {
	Depression float64 `json:"depression"`
	Anxiety    float64 `json:"anxiety"`
	Stress     float64 `json:"stress"`
	Anger      float64 `json:"anger"`
}

// Max returns the largest index.
func (r RiskIndices) Max() float64 {
	m := r.Depression
	for _, v := range []float64{r.Anxiety, r.Stress, r.Anger} {
		if v > m {
			m = v
		}
	}
	return m
}

// RiskSummaries are the scalar summaries of the emotion average
type RiskSummaries struct {
	NegIndex float64 `json:"negIndex"`
	PosIndex float64 `json:"posIndex"`
	Neutral  float64 `json:"neutral"`
}

// RiskProfile is derived from an Aggregate
type RiskProfile struct {
	Indices   RiskIndices   `json:"indices"`
	Summaries RiskSummaries `json:"summaries"`
}

// LevelKey identifies a severity band
type LevelKey string

const (
	LevelLow    LevelKey = "low"
	LevelMedium LevelKey = "medium"
	LevelHigh   LevelKey = "high"
)

// Level is a severity band with its presentation tokens
type Level struct {
	Label    string   `json:"label"`
	LevelKey LevelKey `json:"levelKey"`
	Color    string   `json:"color"`
	Text     string   `json:"text"`
}

// Status is the overall dashboard badge
type Status struct {
	Label    string   `json:"label"`
	LevelKey LevelKey `json:"levelKey"`
	Bg       string   `json:"bg"`
	Text     string   `json:"text"`
	Dot      string   `json:"dot"`
}

// Face is the avatar expression
type Face string

const (
	FaceHappy   Face = "happy"
	FaceSad     Face = "sad"
	FaceAnxious Face = "anxious"
	FaceAngry   Face = "angry"
	FaceNeutral Face = "neutral"
)

// IndexCard is one category card of the dashboard
type IndexCard struct {
	Key     string  `json:"key"`
	Score   float64 `json:"score"`
	Percent int     `json:"percent"`
	Level   Level   `json:"level"`
}

// Dashboard is everything the status page renders
type Dashboard struct {
	UserID          string             `json:"userId"`
	HasData         bool               `json:"hasData"`
	Status          Status             `json:"status"`
	Face            Face               `json:"face"`
	FaceLabel       string             `json:"faceLabel"`
	OverallRisk     float64            `json:"overallRisk"`
	OverallPercent  int                `json:"overallPercent"`
	OverallLevel    Level              `json:"overallLevel"`
	Cards           []IndexCard        `json:"cards"`
	Profile         *RiskProfile       `json:"profile,omitempty"`
	Recommendations []string           `json:"recommendations"`
	Trend           []TrendPoint       `json:"trend"` // oldest first
	EmotionAvg      map[string]float64 `json:"emotionAvg,omitempty"`
	AssessmentCount int                `json:"assessmentCount"`
	GeneratedAt     time.Time          `json:"generatedAt"`
}
