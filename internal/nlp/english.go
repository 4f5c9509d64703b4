package nlp

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	prose "github.com/jdkato/prose/v2"
)

// English tokenizes and annotates English text using prose for
// tokenization and POS tagging and golem for lemmatization.
// Safe for concurrent use after construction.
type English struct {
	lemmatizer *golem.Lemmatizer
}

var _ Tokenizer = (*English)(nil)

// NewEnglish loads the English lemmatizer dictionary and returns a
// ready tokenizer.
func NewEnglish() (*English, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load english lemmatizer: %w", err)
	}
	return &English{lemmatizer: lemmatizer}, nil
}

// Tokenize annotates the text with lemmas, POS tags, and
// alphabetic/stopword flags, preserving token order.
func (e *English) Tokenize(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	for _, tok := range proseTokens {
		lower := strings.ToLower(tok.Text)

		lemma := lower
		if e.lemmatizer.InDict(lower) {
			lemma = strings.ToLower(e.lemmatizer.Lemma(lower))
		}

		tokens = append(tokens, Token{
			Text:    tok.Text,
			Lemma:   lemma,
			POS:     MapTag(tok.Tag),
			IsAlpha: isAlphabetic(tok.Text),
			IsStop:  IsStopword(lower),
		})
	}

	return tokens, nil
}
