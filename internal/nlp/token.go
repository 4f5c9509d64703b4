// Package nlp defines the tokenizer/lemmatizer collaborator boundary
// and an English implementation. Profiling quality follows tokenizer
// quality, but scoring correctness does not depend on it.
package nlp

import (
	"strings"
	"unicode"

	"github.com/storyspark/vocab-engine/internal/domain"
)

// Token is one tokenized unit of input text with its linguistic
// annotations.
type Token struct {
	Text    string
	Lemma   string // dictionary base form, lowercased
	POS     domain.PartOfSpeech
	IsAlpha bool
	IsStop  bool
}

// Tokenizer produces ordered annotated tokens from raw text.
type Tokenizer interface {
	Tokenize(text string) ([]Token, error)
}

// pennTags maps Penn Treebank tag prefixes to the domain POS enum.
// Longer prefixes are checked before shorter ones.
var pennTags = map[string]domain.PartOfSpeech{
	"NNPS": domain.PartOfSpeechProperNoun,
	"NNP":  domain.PartOfSpeechProperNoun,
	"NNS":  domain.PartOfSpeechNoun,
	"NN":   domain.PartOfSpeechNoun,
	"VB":   domain.PartOfSpeechVerb,
	"JJ":   domain.PartOfSpeechAdjective,
	"RB":   domain.PartOfSpeechAdverb,
	"PRP":  domain.PartOfSpeechPronoun,
	"WP":   domain.PartOfSpeechPronoun,
	"IN":   domain.PartOfSpeechPreposition,
	"CC":   domain.PartOfSpeechConjunction,
	"UH":   domain.PartOfSpeechInterjection,
}

// tagLookupOrder checks longer tag prefixes first so "NNP" does not
// resolve through "NN".
var tagLookupOrder = []string{"NNPS", "NNP", "NNS", "NN", "VB", "JJ", "RB", "PRP", "WP", "IN", "CC", "UH"}

// MapTag converts a Penn Treebank tag to the domain PartOfSpeech.
// Unknown or empty tags map to PartOfSpeechOther.
func MapTag(tag string) domain.PartOfSpeech {
	upper := strings.ToUpper(tag)
	for _, prefix := range tagLookupOrder {
		if strings.HasPrefix(upper, prefix) {
			return pennTags[prefix]
		}
	}
	return domain.PartOfSpeechOther
}

// isAlphabetic reports whether the text consists entirely of letters.
func isAlphabetic(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
