package domain

// Tier is one of four ordered difficulty labels assigned to a word.
// The 0-100 difficulty scale is partitioned into four equal 25-point bands.
type Tier string

const (
	TierEveryday  Tier = "EVERYDAY"  // [0, 25)
	TierCore      Tier = "CORE"      // [25, 50)
	TierStretch   Tier = "STRETCH"   // [50, 75)
	TierChallenge Tier = "CHALLENGE" // [75, 100]
)

// tierOrder lists the tiers from easiest to hardest.
var tierOrder = []Tier{TierEveryday, TierCore, TierStretch, TierChallenge}

func (t Tier) String() string { return string(t) }

func (t Tier) IsValid() bool {
	switch t {
	case TierEveryday, TierCore, TierStretch, TierChallenge:
		return true
	}
	return false
}

// Rank returns the tier's position in ascending difficulty order (0-3).
// Invalid tiers rank as -1.
func (t Tier) Rank() int {
	for i, tier := range tierOrder {
		if tier == t {
			return i
		}
	}
	return -1
}

// TierForScore maps a 0-100 difficulty score to its tier.
func TierForScore(score int) Tier {
	switch {
	case score < 25:
		return TierEveryday
	case score < 50:
		return TierCore
	case score < 75:
		return TierStretch
	default:
		return TierChallenge
	}
}

// PartOfSpeech represents the grammatical category of a word.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "NOUN"
	PartOfSpeechProperNoun   PartOfSpeech = "PROPER_NOUN"
	PartOfSpeechVerb         PartOfSpeech = "VERB"
	PartOfSpeechAdjective    PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb       PartOfSpeech = "ADVERB"
	PartOfSpeechPronoun      PartOfSpeech = "PRONOUN"
	PartOfSpeechPreposition  PartOfSpeech = "PREPOSITION"
	PartOfSpeechConjunction  PartOfSpeech = "CONJUNCTION"
	PartOfSpeechInterjection PartOfSpeech = "INTERJECTION"
	PartOfSpeechOther        PartOfSpeech = "OTHER"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechProperNoun, PartOfSpeechVerb,
		PartOfSpeechAdjective, PartOfSpeechAdverb, PartOfSpeechPronoun,
		PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechOther:
		return true
	}
	return false
}
