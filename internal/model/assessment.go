package model

// PredictedEmotion is the classifier output attached to a question result.
// AllScores, when present, is aligned to the Emotion slot order.
type PredictedEmotion struct {
	CategoryName   string    `json:"categoryName" bson:"categoryName"`
	Score          float64   `json:"score" bson:"score"`
	TranslatedName string    `json:"translatedName,omitempty" bson:"translatedName,omitempty"`
	AllScores      []float64 `json:"allScores,omitempty" bson:"allScores,omitempty"`
}

// BlendshapeAverage is one averaged blendshape in a question summary
type BlendshapeAverage struct {
	CategoryName string  `json:"categoryName" bson:"categoryName"`
	AverageScore float64 `json:"averageScore" bson:"averageScore"`
}

// EmotionSummary is the per-question blendshape digest recorded by the capture flow
type EmotionSummary struct {
	TotalFrames        int                 `json:"totalFrames,omitempty" bson:"totalFrames,omitempty"`
	AverageEmotions    []BlendshapeAverage `json:"averageEmotions,omitempty" bson:"averageEmotions,omitempty"`
	DominantBlendshape *BlendshapeAverage  `json:"dominantBlendshape,omitempty" bson:"dominantBlendshape,omitempty"`
}

// QuestionResult is one answered question inside an assessment
type QuestionResult struct {
	QuestionID       string            `json:"questionId" bson:"questionId"`
	QuestionText     string            `json:"questionText" bson:"questionText"`
	Summary          EmotionSummary    `json:"summary" bson:"summary"`
	PredictedEmotion *PredictedEmotion `json:"predictedEmotion,omitempty" bson:"predictedEmotion,omitempty"`
	UserAnswer       string            `json:"userAnswer" bson:"userAnswer"`
}

// AssessmentRecord is a stored self-assessment. Immutable once stored.
type AssessmentRecord struct {
	ID                string           `json:"id" bson:"_id,omitempty"`
	UserID            string           `json:"userId" bson:"userId"`
	Timestamp         string           `json:"timestamp" bson:"timestamp"` // ISO-8601
	SummarizedResults []QuestionResult `json:"summarizedResults" bson:"summarizedResults"`
}
