package model

// Emotion is one of the seven classifier labels.
//
// The numeric values are the slot positions used by stored allScores arrays
// and must never be reordered.
type Emotion int

const (
	EmotionAngry Emotion = iota
	EmotionDisgust
	EmotionFear
	EmotionHappy
	EmotionSad
	EmotionSurprise
	EmotionNeutral

	// EmotionCount is the length of every emotion score vector
	EmotionCount = 7
)

var emotionNames = [EmotionCount]string{
	EmotionAngry:    "angry",
	EmotionDisgust:  "disgust",
	EmotionFear:     "fear",
	EmotionHappy:    "happy",
	EmotionSad:      "sad",
	EmotionSurprise: "surprise",
	EmotionNeutral:  "neutral",
}

// String returns the stored label, or "" for out-of-range values.
func (e Emotion) String() string {
	if !e.Valid() {
		return ""
	}
	return emotionNames[e]
}

// Valid reports whether e is one of the seven labels.
func (e Emotion) Valid() bool {
	return e >= EmotionAngry && e <= EmotionNeutral
}

// ParseEmotion maps a stored categoryName to its Emotion.
func ParseEmotion(name string) (Emotion, bool) {
	switch name {
	case "angry":
		return EmotionAngry, true
	case "disgust":
		return EmotionDisgust, true
	case "fear":
		return EmotionFear, true
	case "happy":
		return EmotionHappy, true
	case "sad":
		return EmotionSad, true
	case "surprise":
		return EmotionSurprise, true
	case "neutral":
		return EmotionNeutral, true
	}
	return 0, false
}

// Emotions returns the labels in slot order.
func Emotions() []Emotion {
	return []Emotion{
		EmotionAngry, EmotionDisgust, EmotionFear, EmotionHappy,
		EmotionSad, EmotionSurprise, EmotionNeutral,
	}
}

// EmotionVector holds one score per Emotion, indexed by the Emotion value.
// After averaging it is not a probability distribution.
type EmotionVector [EmotionCount]float64

// Add returns the element-wise sum of v and o.
func (v EmotionVector) Add(o EmotionVector) EmotionVector {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

// Div returns v with every element divided by n.
func (v EmotionVector) Div(n float64) EmotionVector {
	for i := range v {
		v[i] /= n
	}
	return v
}

// Map returns the vector keyed by label, for display.
func (v EmotionVector) Map() map[string]float64 {
	out := make(map[string]float64, EmotionCount)
	for _, e := range Emotions() {
		out[e.String()] = v[e]
	}
	return out
}
