package nlp

import (
	"testing"

	"github.com/storyspark/vocab-engine/internal/domain"
)

func TestMapTag(t *testing.T) {
	tests := []struct {
		tag  string
		want domain.PartOfSpeech
	}{
		{"NN", domain.PartOfSpeechNoun},
		{"NNS", domain.PartOfSpeechNoun},
		{"NNP", domain.PartOfSpeechProperNoun},
		{"NNPS", domain.PartOfSpeechProperNoun},
		{"VB", domain.PartOfSpeechVerb},
		{"VBD", domain.PartOfSpeechVerb},
		{"VBG", domain.PartOfSpeechVerb},
		{"JJ", domain.PartOfSpeechAdjective},
		{"JJR", domain.PartOfSpeechAdjective},
		{"RB", domain.PartOfSpeechAdverb},
		{"RBS", domain.PartOfSpeechAdverb},
		{"PRP", domain.PartOfSpeechPronoun},
		{"PRP$", domain.PartOfSpeechPronoun},
		{"WP", domain.PartOfSpeechPronoun},
		{"IN", domain.PartOfSpeechPreposition},
		{"CC", domain.PartOfSpeechConjunction},
		{"UH", domain.PartOfSpeechInterjection},
		{"nn", domain.PartOfSpeechNoun}, // case-insensitive
		{"DT", domain.PartOfSpeechOther},
		{"CD", domain.PartOfSpeechOther},
		{"", domain.PartOfSpeechOther},
	}

	for _, tt := range tests {
		if got := MapTag(tt.tag); got != tt.want {
			t.Errorf("MapTag(%q) = %s, want %s", tt.tag, got, tt.want)
		}
	}
}

func TestIsStopword(t *testing.T) {
	stops := []string{"the", "and", "is", "The", "WAS", "of"}
	for _, w := range stops {
		if !IsStopword(w) {
			t.Errorf("IsStopword(%q) = false, want true", w)
		}
	}

	content := []string{"dragon", "perseverance", "sunny", ""}
	for _, w := range content {
		if IsStopword(w) {
			t.Errorf("IsStopword(%q) = true, want false", w)
		}
	}
}

func TestIsAlphabetic(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"hello", true},
		{"Café", true},
		{"don't", false},
		{"123", false},
		{"", false},
		{"co-op", false},
	}
	for _, tt := range tests {
		if got := isAlphabetic(tt.text); got != tt.want {
			t.Errorf("isAlphabetic(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
