// Package refdata loads the word frequency and grade-difficulty
// reference tables from static dataset files. Tables are read-only
// after loading and safe for concurrent readers; construct once at
// startup and inject where needed.
package refdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/storyspark/vocab-engine/internal/domain"
)

// Tables holds the two reference lookups. Absent data is valid: a word
// missing from both tables falls back to heuristic scoring.
type Tables struct {
	frequency map[string]int // word → occurrences per million
	grade     map[string]int // word → grade-difficulty score (0-1600 scale)
}

// Frequency returns the corpus frequency for a word, or 0 if unknown.
func (t *Tables) Frequency(word string) int {
	return t.frequency[domain.NormalizeWord(word)]
}

// GradeScore returns the grade-difficulty score for a word and whether
// the word is present in the grade table.
func (t *Tables) GradeScore(word string) (int, bool) {
	score, ok := t.grade[domain.NormalizeWord(word)]
	return score, ok
}

// FrequencyCount returns the number of loaded frequency entries.
func (t *Tables) FrequencyCount() int { return len(t.frequency) }

// GradeCount returns the number of loaded grade entries.
func (t *Tables) GradeCount() int { return len(t.grade) }

// Load reads both reference tables from CSV files (word,value rows
// with a header). A missing file yields an empty table rather than an
// error. When both tables come back empty a small built-in common-word
// table is installed so development scoring stays sane.
func Load(frequencyPath, gradePath string, log *slog.Logger) (*Tables, error) {
	if log == nil {
		log = slog.Default()
	}

	freq, err := loadCSVTable(frequencyPath)
	if err != nil {
		return nil, fmt.Errorf("load frequency table: %w", err)
	}

	grade, err := loadCSVTable(gradePath)
	if err != nil {
		return nil, fmt.Errorf("load grade table: %w", err)
	}

	t := &Tables{frequency: freq, grade: grade}

	if len(freq) == 0 && len(grade) == 0 {
		log.Warn("no reference datasets found, using built-in placeholder table")
		t.installPlaceholder()
	} else {
		log.Info("reference tables loaded",
			slog.Int("frequency_entries", len(freq)),
			slog.Int("grade_entries", len(grade)))
	}

	return t, nil
}

// NewTables builds Tables directly from in-memory maps. Intended for
// tests and callers with synthetic reference data.
func NewTables(frequency, grade map[string]int) *Tables {
	if frequency == nil {
		frequency = map[string]int{}
	}
	if grade == nil {
		grade = map[string]int{}
	}
	return &Tables{frequency: frequency, grade: grade}
}

// loadCSVTable reads a word,value CSV. Rows with a missing or
// non-numeric value column are skipped.
func loadCSVTable(path string) (map[string]int, error) {
	table := make(map[string]int)
	if path == "" {
		return table, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // allow variable column count

	// Skip header row.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return table, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		if len(record) < 2 {
			continue
		}

		word := domain.NormalizeWord(record[0])
		if word == "" {
			continue
		}

		value, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}

		table[word] = value
	}

	return table, nil
}

// installPlaceholder seeds the most common English function words so
// they score as very easy even with no datasets on disk.
func (t *Tables) installPlaceholder() {
	common := []string{
		"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
		"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
	}
	for _, word := range common {
		t.frequency[word] = 1000000
		t.grade[word] = 200
	}
}
