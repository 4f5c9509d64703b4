// Package review implements SM-2 spaced-repetition scheduling over
// review states: quality updates, session selection, and mastery
// estimation. All functions are pure; the caller owns persistence and
// supplies the current time.
package review

import (
	"math"
	"time"

	"github.com/storyspark/vocab-engine/internal/domain"
)

// Quality grades a recall attempt on the SM-2 scale.
const (
	QualityBlackout   = 0 // no recall at all
	QualityWrong      = 1 // wrong, but the answer felt familiar
	QualityWrongEasy  = 2 // wrong, yet easy to recall once shown
	QualityHard       = 3 // correct with serious difficulty
	QualityHesitant   = 4 // correct after hesitation
	QualityPerfect    = 5 // instant correct recall
	qualityPassFloor  = 3
	qualityScaleLimit = 5
)

// Params holds the SM-2 tuning knobs.
type Params struct {
	// MinEaseFactor is the floor the ease factor can never drop below.
	MinEaseFactor float64

	// FirstInterval and SecondInterval are the fixed intervals, in
	// days, for the first two successful repetitions.
	FirstInterval  int
	SecondInterval int

	// FailureInterval is the reschedule distance after a failed recall.
	FailureInterval int
}

// DefaultParams returns the classic SM-2 schedule.
func DefaultParams() Params {
	return Params{
		MinEaseFactor:   domain.MinEaseFactor,
		FirstInterval:   1,
		SecondInterval:  6,
		FailureInterval: 1,
	}
}

// Update applies one graded recall to the state and returns the next
// state. The input is never mutated; two calls with identical inputs
// produce identical ease, interval, and repetition values. Out-of-range
// quality is clamped to the 0..5 scale. A failed recall resets the
// streak and reschedules for tomorrow but leaves the ease factor
// alone: ease measures how hard the word is, not how this session
// went.
func Update(state domain.ReviewState, quality int, today time.Time, params Params) domain.ReviewState {
	if quality < QualityBlackout {
		quality = QualityBlackout
	}
	if quality > qualityScaleLimit {
		quality = qualityScaleLimit
	}

	next := state

	if quality < qualityPassFloor {
		next.Repetitions = 0
		next.IntervalDays = params.FailureInterval
	} else {
		next.EaseFactor = adjustEase(state.EaseFactor, quality, params.MinEaseFactor)
		switch state.Repetitions {
		case 0:
			next.IntervalDays = params.FirstInterval
		case 1:
			next.IntervalDays = params.SecondInterval
		default:
			next.IntervalDays = int(math.Round(float64(state.IntervalDays) * next.EaseFactor))
		}
		next.Repetitions = state.Repetitions + 1
	}
	if next.IntervalDays < 1 {
		next.IntervalDays = 1
	}

	next.LastReviewed = domain.DateOf(today)
	next.DueDate = next.LastReviewed.AddDate(0, 0, next.IntervalDays)

	return next
}

// adjustEase applies the SM-2 ease formula and clamps at the floor.
func adjustEase(ease float64, quality int, floor float64) float64 {
	q := float64(quality)
	ease += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	if ease < floor {
		ease = floor
	}
	return ease
}
