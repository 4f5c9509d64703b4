package profiler

import (
	"sort"

	"github.com/storyspark/vocab-engine/internal/domain"
)

// inferGrade maps a set of word difficulties to a grade level. Very
// common words drag the estimate down without saying anything about
// ability, so scores below the cutoff are discarded first, unless the
// speaker used almost nothing else. The estimate then averages the top
// quartile of what remains, which tracks the hardest words a speaker
// handles comfortably rather than their median.
func (p *Profiler) inferGrade(difficulties []int) domain.GradeLevel {
	if len(difficulties) == 0 {
		return domain.GradeK1
	}

	filtered := make([]int, 0, len(difficulties))
	for _, d := range difficulties {
		if d >= p.params.CommonWordCutoff {
			filtered = append(filtered, d)
		}
	}
	if float64(len(filtered)) < float64(len(difficulties))*p.params.CutoffKeepFraction {
		filtered = append(filtered[:0], difficulties...)
	}

	sort.Ints(filtered)

	idx := int(float64(len(filtered)) * p.params.PercentileFraction)
	if idx >= len(filtered) {
		idx = len(filtered) - 1
	}
	top := filtered[idx:]

	sum := 0
	for _, d := range top {
		sum += d
	}
	return domain.GradeForDifficulty(float64(sum) / float64(len(top)))
}
