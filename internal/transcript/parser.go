// Package transcript detects the encoding of a raw transcript
// (structured JSON, labeled dialogue, or plain prose) and extracts
// per-speaker text segments.
//
// Detection is an ordered list of parser strategies; each returns an
// optional result and the first non-empty result wins. Parsing never
// fails: malformed input degrades to the plain format.
package transcript

import (
	"strings"
)

// Format tags the transcript encoding that was detected.
type Format string

const (
	FormatStructured Format = "structured"
	FormatLabeled    Format = "labeled"
	FormatPlain      Format = "plain"
)

// SpeakerSegment is the concatenated text attributed to one speaker.
type SpeakerSegment struct {
	Name      string `json:"name"`
	Text      string `json:"text"`
	WordCount int    `json:"word_count"`
}

// Parsed is the result of format detection and speaker extraction.
type Parsed struct {
	Format   Format           `json:"format_detected"`
	Speakers []SpeakerSegment `json:"speakers"`
}

// strategy attempts one format; ok is false when the input does not
// match.
type strategy func(text string) (Parsed, bool)

// strategies in fixed priority order.
var strategies = []strategy{parseStructured, parseLabeled, parsePlain}

// Parse detects the transcript format and extracts speakers. It always
// terminates with a best-effort result; empty or whitespace-only input
// yields the plain format with no speakers.
func Parse(transcript string) Parsed {
	if strings.TrimSpace(transcript) == "" {
		return Parsed{Format: FormatPlain, Speakers: []SpeakerSegment{}}
	}

	for _, try := range strategies {
		if parsed, ok := try(transcript); ok {
			return parsed
		}
	}

	// Unreachable: parsePlain always matches non-empty input.
	return Parsed{Format: FormatPlain, Speakers: []SpeakerSegment{}}
}

// ExtractSpeakerText returns the text for the named speaker,
// case-insensitively. With no name, or no match, it falls back to the
// first speaker. An empty parse returns "".
func ExtractSpeakerText(parsed Parsed, name string) string {
	if len(parsed.Speakers) == 0 {
		return ""
	}

	if name != "" {
		for _, speaker := range parsed.Speakers {
			if strings.EqualFold(speaker.Name, name) {
				return speaker.Text
			}
		}
	}

	return parsed.Speakers[0].Text
}

// parsePlain treats the entire input as one undifferentiated speaker.
func parsePlain(text string) (Parsed, bool) {
	trimmed := strings.TrimSpace(text)
	return Parsed{
		Format: FormatPlain,
		Speakers: []SpeakerSegment{{
			Name:      "Speaker",
			Text:      trimmed,
			WordCount: len(strings.Fields(trimmed)),
		}},
	}, true
}

// segmentCollector groups text fragments by speaker while preserving
// the order in which speakers were first encountered.
type segmentCollector struct {
	order []string
	texts map[string][]string
}

func newSegmentCollector() *segmentCollector {
	return &segmentCollector{texts: make(map[string][]string)}
}

func (c *segmentCollector) add(name, text string) {
	if text == "" {
		return
	}
	if _, seen := c.texts[name]; !seen {
		c.order = append(c.order, name)
	}
	c.texts[name] = append(c.texts[name], text)
}

func (c *segmentCollector) len() int { return len(c.order) }

func (c *segmentCollector) segments() []SpeakerSegment {
	segments := make([]SpeakerSegment, 0, len(c.order))
	for _, name := range c.order {
		combined := strings.Join(c.texts[name], " ")
		segments = append(segments, SpeakerSegment{
			Name:      name,
			Text:      combined,
			WordCount: len(strings.Fields(combined)),
		})
	}
	return segments
}
