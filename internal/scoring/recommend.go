package scoring

import "mindhealth/internal/model"

type advice struct {
	high   string
	medium string
}

var (
	depressionAdvice = advice{
		high:   "Considera agendar una cita con un profesional. Tristeza o apatía persistentes merecen atención.",
		medium: "Refuerza hábitos: sueño regular, luz solar, actividad física suave y conexión social.",
	}
	anxietyAdvice = advice{
		high:   "Practica respiración diafragmática 5–10 minutos, 2–3 veces/día. Si persiste, consulta a un especialista.",
		medium: "Técnicas de relajación: 4-7-8, meditación breve o pausas conscientes.",
	}
	stressAdvice = advice{
		high:   "Ajusta carga de tareas y establece límites. Prioriza y delega. Busca apoyo si te sobrepasa.",
		medium: "Microdescansos, higiene del sueño y limitar pantallas en la noche.",
	}
	angerAdvice = advice{
		high:   "Antes de responder en tensión, respira y aléjate 2–3 minutos. Explora reestructuración cognitiva.",
		medium: "Identifica detonantes y planifica respuestas alternativas (escritura, caminar, hablar).",
	}

	wellnessAdvice = []string{
		"Mantén hábitos saludables: movimiento diario, hidratación y espacios de descanso.",
		"Sigue usando la autoevaluación para monitorear tu bienestar emocional.",
	}
)

// GenerateRecommendations uses the default thresholds.
func GenerateRecommendations(p model.RiskProfile) []string {
	return defaultEngine.GenerateRecommendations(p)
}

// GenerateRecommendations returns advice for every index in the medium or
// high band, in the order depression, anxiety, stress, anger. The result is
// never empty.
func (e *Engine) GenerateRecommendations(p model.RiskProfile) []string {
	recs := make([]string, 0, 4)
	for _, item := range []struct {
		score float64
		adv   advice
	}{
		{p.Indices.Depression, depressionAdvice},
		{p.Indices.Anxiety, anxietyAdvice},
		{p.Indices.Stress, stressAdvice},
		{p.Indices.Anger, angerAdvice},
	} {
		switch e.LevelKeyFor(item.score) {
		case model.LevelHigh:
			recs = append(recs, item.adv.high)
		case model.LevelMedium:
			recs = append(recs, item.adv.medium)
		}
	}

	if len(recs) == 0 {
		recs = append(recs, wellnessAdvice...)
	}
	return recs
}
