package review

import "github.com/storyspark/vocab-engine/internal/domain"

// Mastery estimates how well a word is known on a 0..1 scale. The
// repetition streak contributes up to 0.7 and the ease factor up to
// 0.3. Informational only; scheduling decisions never read it. A word
// with no successful repetitions scores zero even though its ease
// factor starts at the default.
func Mastery(state domain.ReviewState) float64 {
	if state.Repetitions == 0 {
		return 0
	}

	fromRepetitions := float64(state.Repetitions) / 10
	if fromRepetitions > 0.7 {
		fromRepetitions = 0.7
	}

	fromEase := (state.EaseFactor - domain.MinEaseFactor) / 2
	if fromEase > 0.3 {
		fromEase = 0.3
	}
	if fromEase < 0 {
		fromEase = 0
	}

	m := fromRepetitions + fromEase
	if m > 1 {
		m = 1
	}
	return m
}
