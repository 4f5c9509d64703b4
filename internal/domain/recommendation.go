package domain

// Recommendation is a scored, ranked vocabulary suggestion produced for
// a single profile. Ephemeral: built, ranked, and filtered in memory per
// request; the caller persists accepted results.
type Recommendation struct {
	Word                 string       `json:"word"`
	Difficulty           int          `json:"difficulty_score"`
	GradeLevel           GradeLevel   `json:"grade_level"`
	Definition           string       `json:"definition"`
	Example              string       `json:"example"`
	PartOfSpeech         PartOfSpeech `json:"part_of_speech"`
	RelevanceScore       float64      `json:"relevance_score"`       // position in the ZPD band
	PersonalizationScore float64      `json:"personalization_score"` // weighted multi-factor fit
	Rationale            string       `json:"rationale"`
}
