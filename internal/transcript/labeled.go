package transcript

import (
	"regexp"
	"strings"
)

// flexiblePatterns find speaker labels anywhere in the text, so
// transcripts work whether or not turns are separated by newlines.
// Tried in order; the first pattern with at least one match wins.
var flexiblePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\w+):\s*`),      // "Speaker: "
	regexp.MustCompile(`(?i)\[(\w+)\]:\s*`),  // "[Speaker]: "
	regexp.MustCompile(`(?i)<(\w+)>\s*`),     // "<Speaker> "
	regexp.MustCompile(`(?i)(\w+)\s*-\s*`),   // "Speaker - "
}

// linePatterns anchor to line starts for the strict line-by-line
// fallback.
var linePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(\w+):\s*(.+)$`),
	regexp.MustCompile(`(?i)^\[(\w+)\]:\s*(.+)$`),
	regexp.MustCompile(`(?i)^<(\w+)>\s*(.+)$`),
	regexp.MustCompile(`(?i)^(\w+)\s*-\s*(.+)$`),
}

// parseLabeled attempts to read the input as labeled dialogue. A result
// with at least one speaker is accepted; a single labeled speaker still
// counts as labeled.
func parseLabeled(text string) (Parsed, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Parsed{}, false
	}

	collector := scanFlexible(trimmed)
	if collector == nil {
		collector = scanLines(trimmed)
	}
	if collector == nil || collector.len() == 0 {
		return Parsed{}, false
	}

	return Parsed{Format: FormatLabeled, Speakers: collector.segments()}, true
}

// scanFlexible matches speaker labels across the whole text. The text
// between one label and the next (or end of text) belongs to that
// label's speaker. Returns nil when no pattern matches.
func scanFlexible(text string) *segmentCollector {
	for _, pattern := range flexiblePatterns {
		matches := pattern.FindAllStringSubmatchIndex(text, -1)
		if len(matches) == 0 {
			continue
		}

		collector := newSegmentCollector()
		for i, match := range matches {
			name := strings.TrimSpace(text[match[2]:match[3]])
			start := match[1] // position just after the label
			end := len(text)
			if i+1 < len(matches) {
				end = matches[i+1][0]
			}
			collector.add(name, strings.TrimSpace(text[start:end]))
		}
		return collector
	}
	return nil
}

// scanLines is the strict line-by-line fallback kept for backward
// compatibility. Unmatched non-empty lines are continuations of the
// current speaker.
func scanLines(text string) *segmentCollector {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil
	}

	collector := newSegmentCollector()
	currentSpeaker := ""

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		matched := false
		for _, pattern := range linePatterns {
			if m := pattern.FindStringSubmatch(line); m != nil {
				currentSpeaker = strings.TrimSpace(m[1])
				collector.add(currentSpeaker, strings.TrimSpace(m[2]))
				matched = true
				break
			}
		}

		if !matched && currentSpeaker != "" {
			collector.add(currentSpeaker, line)
		}
	}

	return collector
}
