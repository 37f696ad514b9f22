package similarity

import (
	"github.com/agext/levenshtein"
)

// Blend weights for combining text and phonetic similarity when a phonetic
// backend has produced a phoneme-level similarity for the attempt.
const (
	TextWeight     = 0.7
	PhoneticWeight = 0.3
)

// Ratio returns the normalized edit-distance similarity between two
// already-normalized strings: 1 - distance/max(len). An empty string on
// either side scores 0; two empty strings also score 0 (no match, and no
// division by zero).
func Ratio(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	if la == 0 || lb == 0 {
		return 0
	}

	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}

	dist := levenshtein.Distance(a, b, nil)
	sim := 1.0 - float64(dist)/float64(maxLen)
	if sim < 0 {
		return 0
	}
	return sim
}

// Score computes the correctness score for a user attempt against the
// phrase's accepted answers: the maximum normalized similarity over all
// candidates, in [0, 1]. Pure function of its inputs.
func Score(userText string, expectedAnswers []string) float64 {
	user := Normalize(userText)

	best := 0.0
	for _, candidate := range expectedAnswers {
		if sim := Ratio(user, Normalize(candidate)); sim > best {
			best = sim
		}
	}
	return best
}

// ScoreBlended refines the text score with a phoneme-level similarity when
// one is available. phonemeSim is nil when no phonetic backend produced a
// value for this attempt, in which case the text score stands alone.
func ScoreBlended(userText string, expectedAnswers []string, phonemeSim *float64) float64 {
	text := Score(userText, expectedAnswers)
	if phonemeSim == nil {
		return text
	}

	p := *phonemeSim
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return TextWeight*text + PhoneticWeight*p
}
