package scoring

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"mindhealth/internal/model"
)

// Signal is one of the six text affect categories.
type Signal int

const (
	SignalPositive Signal = iota
	SignalNegative
	SignalAnxiety
	SignalDepression
	SignalAnger
	SignalStress

	signalCount = 6
)

// Spanish keyword lists. Entries are normalised the same way as answers, so
// accented and unaccented spellings collapse to one token and both count.
// Multi-word entries never match a single token and are kept for parity with
// the stored lexicon.
var lexicon = [signalCount][]string{
	SignalPositive:   {"feliz", "contento", "contenta", "bien", "tranquilo", "tranquila", "relajado", "relajada", "motivado", "motivada", "agradecido", "agradecida", "entusiasmado", "entusiasmada", "satisfecho", "satisfecha", "optimista", "esperanzado", "esperanzada"},
	SignalNegative:   {"mal", "triste", "cansado", "cansada", "agotado", "agotada", "desesperado", "desesperada", "culpable", "inutil", "inútil", "sin", "solo", "sola", "vacio", "vacío", "decaido", "decaído"},
	SignalAnxiety:    {"ansioso", "ansiosa", "ansiedad", "nervioso", "nerviosa", "preocupado", "preocupada", "preocupacion", "preocupación", "miedo", "panico", "pánico", "tenso", "tensa", "inquieto", "inquieta", "estresado", "estresada"},
	SignalDepression: {"deprimido", "deprimida", "depresion", "depresión", "sin energia", "sin energía", "apatia", "apatía", "anhedonia", "desinteresado", "desinteresada", "insomnio", "fatiga", "llanto", "triste"},
	SignalAnger:      {"enojado", "enojada", "ira", "furioso", "furiosa", "rabia", "molesto", "molesta", "irritado", "irritada", "frustrado", "frustrada"},
	SignalStress:     {"estres", "estrés", "estresado", "estresada", "saturado", "saturada", "abrumado", "abrumada", "presion", "presión", "colapsado", "colapsada"},
}

// keywordHits maps a normalised token to the number of lexicon entries it
// matches in each category.
var keywordHits = buildKeywordHits()

func buildKeywordHits() map[string][signalCount]int {
	hits := make(map[string][signalCount]int)
	for sig, words := range lexicon {
		for _, w := range words {
			nw := NormalizeText(w)
			h := hits[nw]
			h[sig]++
			hits[nw] = h
		}
	}
	return hits
}

// NormalizeText lowercases s and strips combining diacritical marks
// (U+0300..U+036F) after canonical decomposition.
func NormalizeText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isCombiningMark)))
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

func isCombiningMark(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
}

// Tokenize splits normalised text on runs of characters outside [a-zñ].
func Tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || r == 'ñ')
	})
}

// ScoreText scores an answer with the default parameters.
func ScoreText(text string) model.TextSignals {
	return defaultEngine.ScoreText(text)
}

// ScoreText counts keyword hits per category and normalises them by token
// count. Total over any input; empty text yields the zero vector.
func (e *Engine) ScoreText(text string) model.TextSignals {
	tokens := Tokenize(NormalizeText(text))

	var counts [signalCount]int
	for _, tok := range tokens {
		h, ok := keywordHits[tok]
		if !ok {
			continue
		}
		for i := range counts {
			counts[i] += h[i]
		}
	}

	total := float64(len(tokens))
	if total < 1 {
		total = 1
	}
	clip := func(n int) float64 {
		return clamp01(float64(n) / total / e.p.MaxPerWord)
	}

	return model.TextSignals{
		Positive:   clip(counts[SignalPositive]),
		Negative:   clip(counts[SignalNegative]),
		Anxiety:    clip(counts[SignalAnxiety]),
		Depression: clip(counts[SignalDepression]),
		Anger:      clip(counts[SignalAnger]),
		Stress:     clip(counts[SignalStress]),
	}
}
