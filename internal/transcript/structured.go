package transcript

import (
	"encoding/json"
	"strings"
)

// Field-name variants accepted in structured (JSON) transcripts.
var (
	turnListKeys = []string{"speakers", "transcript", "turns"}
	nameKeys     = []string{"speaker", "name", "label"}
	textKeys     = []string{"text", "content", "transcript"}
)

// parseStructured attempts to read the input as a JSON transcript:
// either an object holding a speaker-keyed turn list under one of the
// known keys, or a bare array of turn objects.
func parseStructured(text string) (Parsed, bool) {
	raw := strings.TrimSpace(text)

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return Parsed{}, false
	}

	var turns []any
	switch v := value.(type) {
	case map[string]any:
		for _, key := range turnListKeys {
			if list, ok := v[key].([]any); ok {
				turns = list
				break
			}
		}
	case []any:
		if len(v) > 0 && turnHasSpeaker(v[0]) {
			turns = v
		}
	}

	if len(turns) == 0 {
		return Parsed{}, false
	}

	collector := newSegmentCollector()
	for _, turn := range turns {
		obj, ok := turn.(map[string]any)
		if !ok {
			continue
		}
		name := firstString(obj, nameKeys)
		if name == "" {
			name = "Unknown"
		}
		collector.add(name, strings.TrimSpace(firstString(obj, textKeys)))
	}

	if collector.len() == 0 {
		return Parsed{}, false
	}

	return Parsed{Format: FormatStructured, Speakers: collector.segments()}, true
}

func turnHasSpeaker(turn any) bool {
	obj, ok := turn.(map[string]any)
	if !ok {
		return false
	}
	_, hasSpeaker := obj["speaker"]
	_, hasName := obj["name"]
	return hasSpeaker || hasName
}

// firstString returns the first non-empty string value among the given
// keys.
func firstString(obj map[string]any, keys []string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
