package domain

import (
	"time"

	"github.com/google/uuid"
)

// SRS bounds and defaults shared by the scheduler and stores.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// ReviewState tracks a learner's spaced-repetition state for one word.
// Created on first exposure, updated on every review event, never
// deleted. The scheduler returns new values; the caller persists them.
type ReviewState struct {
	StudentID    uuid.UUID `json:"student_id"`
	WordID       uuid.UUID `json:"word_id"`
	EaseFactor   float64   `json:"ease_factor"`   // >= 1.3
	IntervalDays int       `json:"interval_days"` // >= 1
	Repetitions  int       `json:"repetitions"`   // consecutive successful recalls
	DueDate      time.Time `json:"due_date"`      // date precision, UTC midnight
	LastReviewed time.Time `json:"last_reviewed"` // zero time = never reviewed
}

// NewReviewState creates state for a word the learner was just exposed
// to: due immediately, default ease, no history.
func NewReviewState(studentID, wordID uuid.UUID, today time.Time) ReviewState {
	return ReviewState{
		StudentID:    studentID,
		WordID:       wordID,
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: 1,
		Repetitions:  0,
		DueDate:      DateOf(today),
	}
}

// Reviewed reports whether the word has any review history.
func (s ReviewState) Reviewed() bool {
	return s.Repetitions > 0 || !s.LastReviewed.IsZero()
}

// Validate checks the state invariants.
func (s ReviewState) Validate() error {
	if s.StudentID == uuid.Nil {
		return NewValidationError("student_id", "cannot be empty")
	}
	if s.WordID == uuid.Nil {
		return NewValidationError("word_id", "cannot be empty")
	}
	if s.EaseFactor < MinEaseFactor {
		return NewValidationError("ease_factor", "must be at least 1.3")
	}
	if s.IntervalDays < 1 {
		return NewValidationError("interval_days", "must be at least 1")
	}
	if s.Repetitions < 0 {
		return NewValidationError("repetitions", "cannot be negative")
	}
	return nil
}

// SessionPlan is the word mix selected for one practice session.
type SessionPlan struct {
	New    []ReviewState `json:"new"`
	Review []ReviewState `json:"review"`
}

// DateOf truncates a wall-clock instant to its UTC calendar date.
// All due-date math works at date precision.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
