package profiler

import (
	"sort"

	"github.com/storyspark/vocab-engine/internal/domain"
)

// CategoryParams tunes how word usage is split into the three
// feedback categories.
type CategoryParams struct {
	// PracticeGapPoints: a word this far (or less) below the band
	// minimum still counts as needs-practice when frequent enough.
	PracticeGapPoints int

	// PracticeHighFrequency qualifies words more than the gap below
	// the band minimum; PracticeNearFrequency qualifies words within
	// the gap.
	PracticeHighFrequency int
	PracticeNearFrequency int

	UsesWellLimit      int
	NeedsPracticeLimit int
	ToMasterLimit      int
}

// DefaultCategoryParams returns the standard categorization policy.
func DefaultCategoryParams() CategoryParams {
	return CategoryParams{
		PracticeGapPoints:     10,
		PracticeHighFrequency: 1000,
		PracticeNearFrequency: 500,
		UsesWellLimit:         20,
		NeedsPracticeLimit:    15,
		ToMasterLimit:         10,
	}
}

// categorize splits the speaker's words into disjoint feedback lists.
// Precedence runs to-master, then uses-well, then needs-practice: a
// word in the next grade band is a stretch win, not a routine one, so
// it never appears in both lists.
func (p *Profiler) categorize(usage map[string]domain.WordUsageRecord, grade domain.GradeLevel) domain.WordCategories {
	cp := p.params.Categories
	bandMin, _ := grade.DifficultyRange()
	next := grade.NextLevels()[0]
	nextMin, nextMax := next.DifficultyRange()

	var cats domain.WordCategories
	for _, rec := range usage {
		d := rec.Difficulty
		switch {
		case next != grade && d >= nextMin && d <= nextMax && d >= bandMin:
			cats.ToMaster = append(cats.ToMaster, rec)
		case d >= bandMin:
			cats.UsesWell = append(cats.UsesWell, rec)
		case d >= bandMin-cp.PracticeGapPoints && rec.Frequency > cp.PracticeNearFrequency:
			cats.NeedsPractice = append(cats.NeedsPractice, rec)
		case rec.Frequency > cp.PracticeHighFrequency:
			cats.NeedsPractice = append(cats.NeedsPractice, rec)
		}
	}

	sortByDifficulty(cats.UsesWell, true)
	sortByDifficulty(cats.NeedsPractice, false)
	sortByDifficulty(cats.ToMaster, false)

	cats.UsesWell = truncate(cats.UsesWell, cp.UsesWellLimit)
	cats.NeedsPractice = truncate(cats.NeedsPractice, cp.NeedsPracticeLimit)
	cats.ToMaster = truncate(cats.ToMaster, cp.ToMasterLimit)

	return cats
}

func sortByDifficulty(records []domain.WordUsageRecord, descending bool) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Difficulty != records[j].Difficulty {
			if descending {
				return records[i].Difficulty > records[j].Difficulty
			}
			return records[i].Difficulty < records[j].Difficulty
		}
		return records[i].Word < records[j].Word
	})
}

func truncate(records []domain.WordUsageRecord, limit int) []domain.WordUsageRecord {
	if len(records) > limit {
		return records[:limit]
	}
	return records
}
