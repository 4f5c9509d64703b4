// Package recommend selects personalized vocabulary targets from a
// word catalog, aimed just beyond what a speaker already commands.
package recommend

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/storyspark/vocab-engine/internal/domain"
)

// DefaultCount is the number of recommendations returned when the
// caller does not ask for a specific amount.
const DefaultCount = 7

// poolOversample controls how many candidates are pulled from the
// catalog per requested recommendation, leaving the diversity filter
// room to work.
const poolOversample = 4

// WordFilter narrows a catalog search.
type WordFilter struct {
	MinDifficulty int
	MaxDifficulty int
	PartsOfSpeech []domain.PartOfSpeech
	Limit         uint64
}

// WordPool is the catalog the engine draws candidates from.
type WordPool interface {
	Search(ctx context.Context, filter WordFilter) ([]domain.CatalogWord, error)
}

// Engine scores and ranks candidate words against a vocabulary
// profile.
type Engine struct {
	pool    WordPool
	weights Weights
	log     *slog.Logger
}

// New creates an Engine. The pool may be nil, in which case every
// request is served from the built-in fallback list.
func New(pool WordPool, weights Weights, log *slog.Logger) *Engine {
	return &Engine{pool: pool, weights: weights, log: log}
}

// Recommend returns up to count words the speaker should learn next.
// It never fails: an unreachable or empty catalog degrades to the
// built-in fallback list, minus anything the speaker already uses.
func (e *Engine) Recommend(ctx context.Context, profile *domain.VocabularyProfile, count int) []domain.Recommendation {
	if count <= 0 {
		count = DefaultCount
	}

	band := e.targetBand(profile)
	candidates := e.loadCandidates(ctx, band, count)

	exclude := make(map[string]struct{}, len(profile.WordUsage))
	for word := range profile.WordUsage {
		exclude[domain.NormalizeWord(word)] = struct{}{}
	}

	scored := make([]domain.Recommendation, 0, len(candidates))
	for _, cw := range candidates {
		normalized := domain.NormalizeWord(cw.Word)
		if _, used := exclude[normalized]; used {
			continue
		}

		relevance := e.relevance(cw, band)
		personalization := e.personalization(cw, profile, band)
		rec := domain.Recommendation{
			Word:                 cw.Word,
			Difficulty:           cw.Difficulty,
			GradeLevel:           domain.GradeForDifficulty(float64(cw.Difficulty)),
			Definition:           cw.Definition,
			Example:              cw.Example,
			PartOfSpeech:         cw.PartOfSpeech,
			RelevanceScore:       relevance,
			PersonalizationScore: personalization,
		}
		rec.Rationale = e.rationale(rec, profile)
		scored = append(scored, rec)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return finalScore(scored[i], e.weights) > finalScore(scored[j], e.weights)
	})

	return diversify(scored, count, e.weights)
}

// loadCandidates queries the pool for the target band, widening once
// to the full catalog before giving up and using the fallback list.
func (e *Engine) loadCandidates(ctx context.Context, band difficultyBand, count int) []domain.CatalogWord {
	if e.pool == nil {
		return fallbackWords()
	}

	limit := uint64(count * poolOversample)

	words, err := e.pool.Search(ctx, WordFilter{
		MinDifficulty: band.Min,
		MaxDifficulty: band.Max,
		Limit:         limit,
	})
	if err != nil {
		e.log.Warn("candidate search failed, using fallback words", slog.Any("error", err))
		return fallbackWords()
	}
	if len(words) == 0 {
		words, err = e.pool.Search(ctx, WordFilter{MinDifficulty: 0, MaxDifficulty: 100, Limit: limit})
		if err != nil || len(words) == 0 {
			e.log.Info("catalog empty for target band, using fallback words",
				slog.Int("band_min", band.Min), slog.Int("band_max", band.Max))
			return fallbackWords()
		}
	}
	return words
}

func finalScore(rec domain.Recommendation, w Weights) float64 {
	return w.Relevance*rec.RelevanceScore + w.Personalization*rec.PersonalizationScore
}

// relevance measures how centered a word sits in the target band.
func (e *Engine) relevance(cw domain.CatalogWord, band difficultyBand) float64 {
	center := float64(band.Min+band.Max) / 2
	halfWidth := float64(band.Max-band.Min) / 2
	if halfWidth < 1 {
		halfWidth = 1
	}
	score := 1 - abs(float64(cw.Difficulty)-center)/halfWidth
	return clamp01(score)
}

func (e *Engine) personalization(cw domain.CatalogWord, profile *domain.VocabularyProfile, band difficultyBand) float64 {
	w := e.weights
	score := w.GapFit*gapFitScore(cw, profile, band) +
		w.Utility*utilityScore(cw) +
		w.POSDiversity*posDiversityScore(cw, profile) +
		w.Thematic*thematicScore(cw, profile) +
		w.Growth*growthScore(cw, profile)
	return clamp01(score)
}

// gapFitScore rewards words that land where the speaker's vocabulary
// thins out: just above their current average difficulty.
func gapFitScore(cw domain.CatalogWord, profile *domain.VocabularyProfile, band difficultyBand) float64 {
	ideal := profile.AverageDifficulty() + 10
	if ideal < float64(band.Min) {
		ideal = float64(band.Min)
	}
	if ideal > float64(band.Max) {
		ideal = float64(band.Max)
	}
	return clamp01(1 - abs(float64(cw.Difficulty)-ideal)/25)
}

// utilityScore favors words common enough to be worth learning. The
// log scale keeps the handful of extremely frequent words from
// dominating.
func utilityScore(cw domain.CatalogWord) float64 {
	if cw.Frequency <= 0 {
		return 0.3
	}
	return clamp01(math.Log10(float64(cw.Frequency)+1) / 5)
}

// posDiversityScore rewards parts of speech the speaker rarely uses.
func posDiversityScore(cw domain.CatalogWord, profile *domain.VocabularyProfile) float64 {
	if profile.UniqueWordCount == 0 {
		return 0.5
	}
	share := float64(profile.POSDistribution[cw.PartOfSpeech]) / float64(profile.UniqueWordCount)
	return clamp01(1 - share)
}

// thematicScore rewards words connected to what the speaker talks
// about: a lexical overlap with a theme keyword, or a difficulty close
// to their average, which suggests the word belongs to the same
// register.
func thematicScore(cw domain.CatalogWord, profile *domain.VocabularyProfile) float64 {
	word := domain.NormalizeWord(cw.Word)
	for _, theme := range profile.ThemeKeywords {
		theme = domain.NormalizeWord(theme)
		if theme == "" {
			continue
		}
		if strings.Contains(word, theme) || strings.Contains(theme, word) {
			return 1
		}
	}
	if abs(float64(cw.Difficulty)-profile.AverageDifficulty()) <= 10 {
		return 1
	}
	return 0.5
}

// growthScore calibrates to the speaker's range. A narrow vocabulary
// grows fastest on common words; a varied one is ready for harder
// ones.
func growthScore(cw domain.CatalogWord, profile *domain.VocabularyProfile) float64 {
	if profile.LexicalDiversity < 0.5 {
		return utilityScore(cw)
	}
	return clamp01(float64(cw.Difficulty) / 100)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
