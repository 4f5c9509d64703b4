package domain

import (
	"github.com/google/uuid"
)

// WordDifficulty is the scored form of a single word. Immutable once
// computed from reference data; derived, never stored per learner.
type WordDifficulty struct {
	Word  string `json:"word"` // lowercased canonical form
	Score int    `json:"difficulty_score"`
	Tier  Tier   `json:"tier"`
}

// CatalogWord is an entry from the persistent word catalog used as a
// recommendation candidate source.
type CatalogWord struct {
	ID           uuid.UUID    `json:"id"`
	Word         string       `json:"word"`
	Difficulty   int          `json:"difficulty_score"`
	PartOfSpeech PartOfSpeech `json:"part_of_speech"`
	Definition   string       `json:"definition"`
	Example      string       `json:"example"`
	Frequency    int          `json:"frequency"` // occurrences per million
}

// Validate checks catalog entry fields before persistence.
func (w CatalogWord) Validate() error {
	if NormalizeWord(w.Word) == "" {
		return NewValidationError("word", "cannot be empty")
	}
	if w.Difficulty < 0 || w.Difficulty > 100 {
		return NewValidationError("difficulty_score", "must be within 0-100")
	}
	if w.Frequency < 0 {
		return NewValidationError("frequency", "cannot be negative")
	}
	return nil
}
