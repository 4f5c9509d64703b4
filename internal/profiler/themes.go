package profiler

import (
	"sort"

	"github.com/storyspark/vocab-engine/internal/domain"
	"github.com/storyspark/vocab-engine/internal/nlp"
)

// extractThemes picks the most frequent noun lemmas as theme keywords.
// Nouns carry the topical content; everything else is grammar.
func (p *Profiler) extractThemes(tokens []nlp.Token) []string {
	counts := make(map[string]int)
	var order []string

	for _, tok := range tokens {
		if tok.POS != domain.PartOfSpeechNoun && tok.POS != domain.PartOfSpeechProperNoun {
			continue
		}
		if !tok.IsAlpha || tok.IsStop || len([]rune(tok.Text)) <= p.params.MinTokenLength {
			continue
		}
		lemma := domain.NormalizeWord(tok.Lemma)
		if lemma == "" {
			continue
		}
		if _, seen := counts[lemma]; !seen {
			order = append(order, lemma)
		}
		counts[lemma]++
	}

	// Ties break by first appearance in the text.
	rank := make(map[string]int, len(order))
	for i, lemma := range order {
		rank[lemma] = i
	}
	sort.Slice(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return rank[order[i]] < rank[order[j]]
	})

	if len(order) > p.params.ThemeCount {
		order = order[:p.params.ThemeCount]
	}
	return order
}
