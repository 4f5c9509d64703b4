package recommend

import "github.com/storyspark/vocab-engine/internal/domain"

// masteryForEvolution is the minimum mastery before a richer synonym
// is suggested. Evolving a word the speaker has not secured yet just
// doubles their workload.
const masteryForEvolution = 0.8

type evolution struct {
	word       string
	difficulty int
}

// evolutions maps well-mastered simple words to more expressive
// replacements.
var evolutions = map[string]evolution{
	"big":   {word: "enormous", difficulty: 45},
	"happy": {word: "ecstatic", difficulty: 60},
	"sad":   {word: "melancholy", difficulty: 70},
	"good":  {word: "excellent", difficulty: 50},
	"bad":   {word: "terrible", difficulty: 50},
}

// Evolve suggests a more sophisticated replacement for a mastered
// word. It returns nil when mastery is still below the evolution
// threshold or no replacement is known.
func Evolve(word string, mastery float64) *domain.Recommendation {
	if mastery < masteryForEvolution {
		return nil
	}
	ev, ok := evolutions[domain.NormalizeWord(word)]
	if !ok {
		return nil
	}
	return &domain.Recommendation{
		Word:           ev.word,
		Difficulty:     ev.difficulty,
		GradeLevel:     domain.GradeForDifficulty(float64(ev.difficulty)),
		RelevanceScore: 1,
		Rationale:      "a richer way to say \"" + domain.NormalizeWord(word) + "\", which they already use confidently",
	}
}
