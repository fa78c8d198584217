// Package scoring turns stored self-assessments into the risk profile shown
// on the status dashboard.
//
// Everything here is pure: no I/O, no shared state. The numeric weights and
// thresholds are empirically chosen and live in Params so they can be tuned
// in one place. DefaultParams returns the values every existing dashboard was
// computed with.
package scoring

// Blend holds the linear weights of the risk model.
type Blend struct {
	DepressionSad      float64
	DepressionNeg      float64
	DepressionNotHappy float64
	DepressionTextDep  float64
	DepressionTextNeg  float64

	AnxietyFear       float64
	AnxietyNeg        float64
	AnxietyNotCalm    float64
	AnxietyTextAnx    float64
	AnxietyTextStress float64

	StressFearAngry  float64
	StressNeg        float64
	StressTextStress float64
	StressTextNeg    float64

	AngerAngry     float64
	AngerNeg       float64
	AngerTextAnger float64

	// BoostCap bounds every single text contribution
	BoostCap float64
}

// Params are the tunable constants of the engine.
type Params struct {
	Blend Blend

	HighThreshold   float64
	MediumThreshold float64

	// FaceHappyMargin is how far posIndex must exceed negIndex to show a happy face
	FaceHappyMargin float64
	// FaceSevereThreshold is the index a category needs to pick its own face
	FaceSevereThreshold float64
	// FaceSadNegFloor shows a sad face for diffuse negative affect
	FaceSadNegFloor float64

	// FallbackConfidenceFloor is the minimum slot value of a label-only observation
	FallbackConfidenceFloor float64
	// MaxPerWord is the keyword density that saturates a text signal
	MaxPerWord float64

	// ProfileWindow is the number of assessments folded into a profile
	ProfileWindow int
	// FetchWindow is the number of assessments read from the store
	FetchWindow int
}

// DefaultParams returns the historical constants.
func DefaultParams() Params {
	return Params{
		Blend: Blend{
			DepressionSad:      0.65,
			DepressionNeg:      0.15,
			DepressionNotHappy: 0.10,
			DepressionTextDep:  0.6,
			DepressionTextNeg:  0.4,

			AnxietyFear:       0.60,
			AnxietyNeg:        0.15,
			AnxietyNotCalm:    0.10,
			AnxietyTextAnx:    0.7,
			AnxietyTextStress: 0.4,

			StressFearAngry:  0.50,
			StressNeg:        0.15,
			StressTextStress: 0.7,
			StressTextNeg:    0.3,

			AngerAngry:     0.70,
			AngerNeg:       0.10,
			AngerTextAnger: 0.8,

			BoostCap: 0.5,
		},
		HighThreshold:           0.65,
		MediumThreshold:         0.45,
		FaceHappyMargin:         0.18,
		FaceSevereThreshold:     0.55,
		FaceSadNegFloor:         0.35,
		FallbackConfidenceFloor: 0.6,
		MaxPerWord:              0.08,
		ProfileWindow:           8,
		FetchWindow:             12,
	}
}

// Engine evaluates profiles with a fixed set of Params.
type Engine struct {
	p Params
}

// NewEngine returns an Engine using p.
func NewEngine(p Params) *Engine {
	return &Engine{p: p}
}

// Params returns the engine's parameters.
func (e *Engine) Params() Params {
	return e.p
}

var defaultEngine = NewEngine(DefaultParams())

// Default returns the engine built from DefaultParams.
func Default() *Engine {
	return defaultEngine
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clamp01(x float64) float64 {
	return clamp(x, 0, 1)
}
