package recommend

import (
	"fmt"
	"strings"

	"github.com/storyspark/vocab-engine/internal/domain"
)

// rationale builds a short human-readable reason for a recommendation:
// one primary clause tied to the speaker's level, plus up to two
// supporting signals.
func (e *Engine) rationale(rec domain.Recommendation, profile *domain.VocabularyProfile) string {
	var clauses []string

	recMin, _ := rec.GradeLevel.DifficultyRange()
	profMin, _ := profile.GradeLevel.DifficultyRange()
	if rec.GradeLevel != domain.GradeUnknown && recMin > profMin {
		clauses = append(clauses, fmt.Sprintf("builds toward grade %s vocabulary", rec.GradeLevel))
	} else {
		gap := float64(rec.Difficulty) - profile.AverageDifficulty()
		switch {
		case gap > 5:
			clauses = append(clauses, "a step up from the words used so far")
		default:
			clauses = append(clauses, "reinforces the current vocabulary level")
		}
	}

	secondary := 0
	if thematicScore(domain.CatalogWord{Word: rec.Word, Difficulty: rec.Difficulty}, profile) >= 1 {
		clauses = append(clauses, "connects to topics they already talk about")
		secondary++
	}
	if secondary < 2 && profile.UniqueWordCount > 0 {
		share := float64(profile.POSDistribution[rec.PartOfSpeech]) / float64(profile.UniqueWordCount)
		if share < 0.15 {
			clauses = append(clauses, fmt.Sprintf("adds variety as %s", posPhrase(rec.PartOfSpeech)))
			secondary++
		}
	}
	if secondary < 2 && domain.TierForScore(rec.Difficulty) == domain.TierStretch {
		clauses = append(clauses, "sits in the stretch zone where growth is fastest")
	}

	return strings.Join(clauses, "; ")
}

func posPhrase(pos domain.PartOfSpeech) string {
	switch pos {
	case domain.PartOfSpeechNoun, domain.PartOfSpeechProperNoun:
		return "a noun"
	case domain.PartOfSpeechVerb:
		return "a verb"
	case domain.PartOfSpeechAdjective:
		return "an adjective"
	case domain.PartOfSpeechAdverb:
		return "an adverb"
	default:
		return "a new kind of word"
	}
}
