package recommend

import "github.com/storyspark/vocab-engine/internal/domain"

// difficultyBand is the difficulty window recommendations are drawn
// from: hard enough to stretch the speaker, not so hard they stall.
type difficultyBand struct {
	Min int
	Max int
}

// targetBand derives the band from the profile. With a known grade it
// spans the next one or two grade bands; otherwise it sits a fixed
// step above the speaker's effective level.
func (e *Engine) targetBand(profile *domain.VocabularyProfile) difficultyBand {
	next := profile.GradeLevel.NextLevels()

	if profile.GradeLevel != domain.GradeUnknown && len(next) > 0 {
		lo, _ := next[0].DifficultyRange()
		_, hi := next[len(next)-1].DifficultyRange()
		return difficultyBand{Min: lo, Max: hi}
	}

	level := effectiveLevel(profile)
	band := difficultyBand{Min: int(level) + 5, Max: int(level) + 15}
	if band.Max > 75 {
		band.Max = 75
	}
	if band.Min >= band.Max {
		band.Min = band.Max - 10
	}
	return band
}

// effectiveLevel blends average difficulty with structural complexity
// so a speaker with simple words but rich sentences still gets
// stretched.
func effectiveLevel(profile *domain.VocabularyProfile) float64 {
	if profile.UniqueWordCount == 0 {
		return 30
	}
	level := profile.AverageDifficulty() * (0.7 + 0.3*profile.ComplexityScore)
	if level > 100 {
		level = 100
	}
	return level
}
