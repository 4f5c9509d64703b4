// Package profiler turns a speaker's raw text into a vocabulary
// profile: per-word difficulty records, an aggregate grade-level
// estimate, richness metrics, and usage categorization.
package profiler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/storyspark/vocab-engine/internal/difficulty"
	"github.com/storyspark/vocab-engine/internal/domain"
	"github.com/storyspark/vocab-engine/internal/nlp"
)

// Params holds the profiling thresholds. All values have working
// defaults via DefaultParams.
type Params struct {
	// MinTextLength is the minimum cleaned-text length in characters;
	// shorter input fails with domain.ErrInputTooShort.
	MinTextLength int

	// MinTokenLength: retained tokens must be strictly longer than this.
	MinTokenLength int

	// CommonWordCutoff: scores below this are discarded before grade
	// inference unless that would discard over 90% of words.
	CommonWordCutoff int

	// CutoffKeepFraction: minimum fraction of words that must survive
	// the common-word cutoff for the filter to apply.
	CutoffKeepFraction float64

	// PercentileFraction: the representative difficulty averages all
	// scores at or above this percentile.
	PercentileFraction float64

	// SophisticationThreshold: words at or above this difficulty count
	// as sophisticated.
	SophisticationThreshold int

	// ThemeCount: number of theme keywords to extract.
	ThemeCount int

	Categories CategoryParams
}

// DefaultParams returns the standard profiling policy.
func DefaultParams() Params {
	return Params{
		MinTextLength:           10,
		MinTokenLength:          2,
		CommonWordCutoff:        20,
		CutoffKeepFraction:      0.1,
		PercentileFraction:      0.75,
		SophisticationThreshold: 60,
		ThemeCount:              3,
		Categories:              DefaultCategoryParams(),
	}
}

// Profiler analyzes one speaker's text. Pure over its injected
// collaborators; safe for concurrent use.
type Profiler struct {
	tokenizer nlp.Tokenizer
	model     *difficulty.Model
	params    Params
}

// New creates a Profiler with the given tokenizer and difficulty model.
func New(tokenizer nlp.Tokenizer, model *difficulty.Model, params Params) *Profiler {
	return &Profiler{tokenizer: tokenizer, model: model, params: params}
}

// nonLinguistic strips symbols while preserving word characters,
// whitespace, and terminal punctuation.
var (
	extraWhitespace = regexp.MustCompile(`\s+`)
	nonLinguistic   = regexp.MustCompile(`[^\w\s.,!?;:'"]`)
)

// Analyze profiles the text. It fails only on insufficient input;
// every other condition degrades gracefully.
func (p *Profiler) Analyze(text string) (*domain.VocabularyProfile, error) {
	cleaned := cleanText(text)
	if len(cleaned) < p.params.MinTextLength {
		return nil, fmt.Errorf("cleaned text is %d chars: %w", len(cleaned), domain.ErrInputTooShort)
	}

	tokens, err := p.tokenizer.Tokenize(cleaned)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	usage, totalCount := p.collectUsage(tokens)

	difficulties := make([]int, 0, len(usage))
	for _, rec := range usage {
		difficulties = append(difficulties, rec.Difficulty)
	}
	grade := p.inferGrade(difficulties)

	profile := &domain.VocabularyProfile{
		WordUsage:        usage,
		GradeLevel:       grade,
		TotalWordCount:   totalCount,
		UniqueWordCount:  len(usage),
		TierDistribution: tierDistribution(usage),
		POSDistribution:  posDistribution(usage),
		ThemeKeywords:    p.extractThemes(tokens),
	}

	if totalCount > 0 {
		profile.LexicalDiversity = float64(len(usage)) / float64(totalCount)
	}
	if len(usage) > 0 {
		sophisticated := 0
		for _, rec := range usage {
			if rec.Difficulty >= p.params.SophisticationThreshold {
				sophisticated++
			}
		}
		profile.SophisticationScore = float64(sophisticated) / float64(len(usage))
		profile.ComplexityScore = minFloat(1, profile.AverageDifficulty()/100)
	}

	profile.Categories = p.categorize(usage, grade)

	return profile, nil
}

// cleanText normalizes whitespace and strips non-linguistic symbols.
func cleanText(text string) string {
	text = nonLinguistic.ReplaceAllString(text, "")
	text = extraWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// collectUsage retains alphabetic, non-stopword tokens longer than the
// minimum length, deduplicates by lemma, and scores each distinct
// lemma. The second return value is the total count of retained token
// occurrences.
func (p *Profiler) collectUsage(tokens []nlp.Token) (map[string]domain.WordUsageRecord, int) {
	usage := make(map[string]domain.WordUsageRecord)
	total := 0

	for _, tok := range tokens {
		if !tok.IsAlpha || tok.IsStop || len([]rune(tok.Text)) <= p.params.MinTokenLength {
			continue
		}

		lemma := domain.NormalizeWord(tok.Lemma)
		if lemma == "" {
			continue
		}
		total++

		if rec, seen := usage[lemma]; seen {
			rec.Occurrences++
			usage[lemma] = rec
			continue
		}

		scored := p.model.Score(lemma)
		usage[lemma] = domain.WordUsageRecord{
			Word:         lemma,
			Difficulty:   scored.Score,
			Tier:         scored.Tier,
			GradeLevel:   domain.GradeForDifficulty(float64(scored.Score)),
			PartOfSpeech: tok.POS,
			Frequency:    p.model.Frequency(lemma),
			Occurrences:  1,
		}
	}

	return usage, total
}

func tierDistribution(usage map[string]domain.WordUsageRecord) map[domain.Tier]int {
	dist := make(map[domain.Tier]int, 4)
	for _, rec := range usage {
		dist[rec.Tier]++
	}
	return dist
}

func posDistribution(usage map[string]domain.WordUsageRecord) map[domain.PartOfSpeech]int {
	dist := make(map[domain.PartOfSpeech]int)
	for _, rec := range usage {
		dist[rec.PartOfSpeech]++
	}
	return dist
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
