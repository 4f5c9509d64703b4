// Package difficulty scores words on a 0-100 scale and assigns one of
// four tiers. Scoring is a pure function over read-only reference
// tables with three fallbacks: grade-referenced score, frequency
// bucket, structural heuristic.
package difficulty

import (
	"strings"

	"github.com/storyspark/vocab-engine/internal/domain"
	"github.com/storyspark/vocab-engine/internal/refdata"
)

// Model scores words against the injected reference tables.
// Safe for concurrent use.
type Model struct {
	tables *refdata.Tables
	params Params
}

// New creates a Model over the given tables. A nil tables pointer gets
// an empty table set, leaving only the structural heuristic.
func New(tables *refdata.Tables, params Params) *Model {
	if tables == nil {
		tables = refdata.NewTables(nil, nil)
	}
	return &Model{tables: tables, params: params}
}

// Score returns the difficulty score and tier for a word. It never
// fails: missing reference data falls through to cruder heuristics.
func (m *Model) Score(word string) domain.WordDifficulty {
	normalized := domain.NormalizeWord(word)
	score := m.rawScore(normalized)
	return domain.WordDifficulty{
		Word:  normalized,
		Score: score,
		Tier:  domain.TierForScore(score),
	}
}

// Frequency returns the corpus frequency (occurrences per million) for
// a word, or 0 if unknown.
func (m *Model) Frequency(word string) int {
	return m.tables.Frequency(word)
}

func (m *Model) rawScore(word string) int {
	// Preferred: grade-referenced difficulty, normalized linearly to 0-100.
	if grade, ok := m.tables.GradeScore(word); ok {
		score := grade * 100 / m.params.GradeScaleMax
		return clampScore(score)
	}

	// Next: frequency buckets, very frequent → low difficulty.
	if freq := m.tables.Frequency(word); freq > 0 {
		for _, bucket := range m.params.FrequencyBuckets {
			if freq >= bucket.MinFrequency {
				return bucket.Score
			}
		}
		return m.params.RareWordScore
	}

	// Last: structural heuristic over the word's shape.
	return m.structuralScore(word)
}

// structuralScore estimates difficulty from word length and uncommon
// letter patterns when no reference data exists.
func (m *Model) structuralScore(word string) int {
	score := m.params.StructuralBase

	switch {
	case len(word) > m.params.LongWordLength:
		score += m.params.LongWordBonus
	case len(word) >= m.params.MediumWordLength:
		score += m.params.MediumWordBonus
	}

	for _, pattern := range m.params.UncommonPatterns {
		if strings.Contains(word, pattern) {
			score += m.params.UncommonPatternBonus
		}
	}

	return clampScore(score)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
