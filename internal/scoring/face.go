package scoring

import "mindhealth/internal/model"

var faceLabels = map[model.Face]string{
	model.FaceHappy:   "Feliz",
	model.FaceNeutral: "Neutral",
	model.FaceSad:     "Triste",
	model.FaceAnxious: "Ansioso",
	model.FaceAngry:   "Enojado",
}

// EmotionForFace picks the avatar expression with the default parameters.
func EmotionForFace(p model.RiskProfile) model.Face {
	return defaultEngine.EmotionForFace(p)
}

// EmotionForFace picks one avatar expression for a profile.
//
// Clearly dominant positive affect wins outright. Otherwise the strongest
// index shows its own face once it is severe enough, stress sharing the sad
// face. Diffuse negative affect still reads as sad.
func (e *Engine) EmotionForFace(p model.RiskProfile) model.Face {
	if p.Summaries.PosIndex > p.Summaries.NegIndex+e.p.FaceHappyMargin {
		return model.FaceHappy
	}

	// ties keep the earlier entry
	candidates := []struct {
		face  model.Face
		score float64
	}{
		{model.FaceAngry, p.Indices.Anger},
		{model.FaceAnxious, p.Indices.Anxiety},
		{model.FaceSad, p.Indices.Depression},
		{model.FaceSad, p.Indices.Stress},
	}
	top := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > top.score {
			top = c
		}
	}
	if top.score >= e.p.FaceSevereThreshold {
		return top.face
	}

	if p.Summaries.NegIndex > e.p.FaceSadNegFloor {
		return model.FaceSad
	}
	return model.FaceNeutral
}

// FaceLabel returns the display name of a face.
func FaceLabel(f model.Face) string {
	if l, ok := faceLabels[f]; ok {
		return l
	}
	return string(f)
}
