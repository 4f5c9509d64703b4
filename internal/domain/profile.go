package domain

// WordUsageRecord describes one distinct word a learner used, keyed by
// its lemmatized form.
type WordUsageRecord struct {
	Word         string       `json:"word"`
	Difficulty   int          `json:"difficulty_score"`
	Tier         Tier         `json:"tier"`
	GradeLevel   GradeLevel   `json:"grade_level"`
	PartOfSpeech PartOfSpeech `json:"part_of_speech"`
	Frequency    int          `json:"frequency"` // occurrences per million
	Occurrences  int          `json:"occurrence_count"`
}

// WordCategories buckets a learner's words by usage quality. The lists
// are disjoint: a word never appears in more than one of them.
type WordCategories struct {
	UsesWell      []WordUsageRecord `json:"uses_well"`      // at or above level, sorted by difficulty desc
	NeedsPractice []WordUsageRecord `json:"needs_practice"` // common words below level, sorted asc
	ToMaster      []WordUsageRecord `json:"to_master"`      // next-band growth words, sorted asc
}

// VocabularyProfile is the aggregate analysis of one submission.
// Immutable after creation; consumed by the recommendation engine.
type VocabularyProfile struct {
	WordUsage           map[string]WordUsageRecord `json:"word_usage"`
	GradeLevel          GradeLevel                 `json:"grade_level"`
	TotalWordCount      int                        `json:"total_word_count"`
	UniqueWordCount     int                        `json:"unique_word_count"`
	TierDistribution    map[Tier]int               `json:"tier_distribution"`
	POSDistribution     map[PartOfSpeech]int       `json:"pos_distribution"`
	LexicalDiversity    float64                    `json:"lexical_diversity"`    // unique / total occurrences
	SophisticationScore float64                    `json:"sophistication_score"` // fraction of words with difficulty >= 60
	ComplexityScore     float64                    `json:"complexity_score"`     // mean difficulty / 100
	ThemeKeywords       []string                   `json:"theme_keywords"`
	Categories          WordCategories             `json:"word_categories"`
}

// AverageDifficulty returns the mean difficulty over distinct words,
// or 0 for an empty profile.
func (p *VocabularyProfile) AverageDifficulty() float64 {
	if len(p.WordUsage) == 0 {
		return 0
	}
	sum := 0
	for _, rec := range p.WordUsage {
		sum += rec.Difficulty
	}
	return float64(sum) / float64(len(p.WordUsage))
}

// Contains reports whether the profile already includes the word,
// matching case-insensitively on the lemmatized key.
func (p *VocabularyProfile) Contains(word string) bool {
	_, ok := p.WordUsage[NormalizeWord(word)]
	return ok
}
