package recommend

import "github.com/storyspark/vocab-engine/internal/domain"

// fallbackWords is the built-in candidate list used when no catalog is
// configured or the catalog has nothing to offer. Small on purpose: it
// exists so a recommendation request never comes back empty, not to
// replace a real catalog.
func fallbackWords() []domain.CatalogWord {
	return []domain.CatalogWord{
		{
			Word:         "curious",
			Difficulty:   35,
			PartOfSpeech: domain.PartOfSpeechAdjective,
			Definition:   "eager to know or learn something",
			Example:      "The curious kitten explored every corner of the house.",
			Frequency:    900,
		},
		{
			Word:         "adventure",
			Difficulty:   40,
			PartOfSpeech: domain.PartOfSpeechNoun,
			Definition:   "an unusual and exciting experience",
			Example:      "Their hike through the canyon turned into a real adventure.",
			Frequency:    850,
		},
		{
			Word:         "challenge",
			Difficulty:   45,
			PartOfSpeech: domain.PartOfSpeechNoun,
			Definition:   "something that tests a person's ability",
			Example:      "Learning to ride a bike was a challenge at first.",
			Frequency:    1200,
		},
		{
			Word:         "discover",
			Difficulty:   50,
			PartOfSpeech: domain.PartOfSpeechVerb,
			Definition:   "to find something for the first time",
			Example:      "Scientists discover new species in the rainforest every year.",
			Frequency:    1100,
		},
		{
			Word:         "accomplish",
			Difficulty:   55,
			PartOfSpeech: domain.PartOfSpeechVerb,
			Definition:   "to succeed in doing something",
			Example:      "She worked hard to accomplish her goal of making the team.",
			Frequency:    600,
		},
		{
			Word:         "resilient",
			Difficulty:   65,
			PartOfSpeech: domain.PartOfSpeechAdjective,
			Definition:   "able to recover quickly from setbacks",
			Example:      "The resilient seedling straightened up after the storm.",
			Frequency:    200,
		},
		{
			Word:         "perseverance",
			Difficulty:   75,
			PartOfSpeech: domain.PartOfSpeechNoun,
			Definition:   "continued effort despite difficulty",
			Example:      "Her perseverance paid off when she finally solved the puzzle.",
			Frequency:    150,
		},
	}
}
