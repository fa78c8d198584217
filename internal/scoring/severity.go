package scoring

import "mindhealth/internal/model"

var (
	levelHigh   = model.Level{Label: "Alto", LevelKey: model.LevelHigh, Color: "bg-red-500", Text: "text-red-600"}
	levelMedium = model.Level{Label: "Medio", LevelKey: model.LevelMedium, Color: "bg-amber-400", Text: "text-amber-600"}
	levelLow    = model.Level{Label: "Bajo", LevelKey: model.LevelLow, Color: "bg-emerald-500", Text: "text-emerald-600"}

	statusHigh   = model.Status{Label: "Consulta recomendada", LevelKey: model.LevelHigh, Bg: "bg-red-100", Text: "text-red-700", Dot: "bg-red-600"}
	statusMedium = model.Status{Label: "Atención", LevelKey: model.LevelMedium, Bg: "bg-amber-100", Text: "text-amber-700", Dot: "bg-amber-500"}
	statusLow    = model.Status{Label: "Bien", LevelKey: model.LevelLow, Bg: "bg-emerald-100", Text: "text-emerald-700", Dot: "bg-emerald-600"}

	// StatusNoData is shown when a user has no usable assessment
	StatusNoData = model.Status{Label: "Sin datos", LevelKey: model.LevelLow, Bg: "bg-slate-100", Text: "text-slate-700", Dot: "bg-slate-400"}
)

// LevelFromScore bands a score with the default thresholds.
func LevelFromScore(score float64) model.Level {
	return defaultEngine.LevelFromScore(score)
}

// GlobalStatus picks the overall badge with the default thresholds.
func GlobalStatus(p model.RiskProfile) model.Status {
	return defaultEngine.GlobalStatus(p)
}

// LevelKeyFor returns the band of score. Lower edges are inclusive.
func (e *Engine) LevelKeyFor(score float64) model.LevelKey {
	switch {
	case score >= e.p.HighThreshold:
		return model.LevelHigh
	case score >= e.p.MediumThreshold:
		return model.LevelMedium
	default:
		return model.LevelLow
	}
}

// LevelFromScore returns the band of score with its display tokens.
func (e *Engine) LevelFromScore(score float64) model.Level {
	switch e.LevelKeyFor(score) {
	case model.LevelHigh:
		return levelHigh
	case model.LevelMedium:
		return levelMedium
	default:
		return levelLow
	}
}

// GlobalStatus applies worst-index-wins over the four indices.
func (e *Engine) GlobalStatus(p model.RiskProfile) model.Status {
	switch e.LevelKeyFor(p.Indices.Max()) {
	case model.LevelHigh:
		return statusHigh
	case model.LevelMedium:
		return statusMedium
	default:
		return statusLow
	}
}
