package recommend

import (
	"sort"

	"github.com/storyspark/vocab-engine/internal/domain"
)

// diversify greedily picks from the ranked candidates while capping
// how many share a part of speech or a difficulty tier, so the final
// list is not seven adjectives of the same weight. If the caps leave
// the list short, the best remaining candidates backfill it.
func diversify(ranked []domain.Recommendation, count int, w Weights) []domain.Recommendation {
	if count <= 0 || len(ranked) == 0 {
		return []domain.Recommendation{}
	}

	perGroup := count/3 + 1

	posCounts := make(map[domain.PartOfSpeech]int)
	tierCounts := make(map[domain.Tier]int)
	seen := make(map[string]struct{}, count)

	picked := make([]domain.Recommendation, 0, count)
	var skipped []domain.Recommendation

	for _, rec := range ranked {
		if len(picked) == count {
			break
		}
		key := domain.NormalizeWord(rec.Word)
		if _, dup := seen[key]; dup {
			continue
		}
		tier := domain.TierForScore(rec.Difficulty)
		if posCounts[rec.PartOfSpeech] >= perGroup || tierCounts[tier] >= perGroup {
			skipped = append(skipped, rec)
			continue
		}
		seen[key] = struct{}{}
		posCounts[rec.PartOfSpeech]++
		tierCounts[tier]++
		picked = append(picked, rec)
	}

	for _, rec := range skipped {
		if len(picked) == count {
			break
		}
		key := domain.NormalizeWord(rec.Word)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		picked = append(picked, rec)
	}

	sort.SliceStable(picked, func(i, j int) bool {
		return finalScore(picked[i], w) > finalScore(picked[j], w)
	})
	return picked
}
