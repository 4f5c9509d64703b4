package review

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/storyspark/vocab-engine/internal/domain"
)

func freshState() domain.ReviewState {
	return domain.ReviewState{
		StudentID:    uuid.New(),
		WordID:       uuid.New(),
		EaseFactor:   2.5,
		IntervalDays: 1,
		Repetitions:  0,
	}
}

func TestUpdate(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	date := domain.DateOf(today)
	params := DefaultParams()

	tests := []struct {
		name         string
		state        domain.ReviewState
		quality      int
		wantReps     int
		wantInterval int
		wantEaseMin  float64
		wantEaseMax  float64
		wantDue      time.Time
	}{
		{
			name:         "first perfect recall",
			state:        freshState(),
			quality:      QualityPerfect,
			wantReps:     1,
			wantInterval: 1,
			wantEaseMin:  2.51,
			wantEaseMax:  2.7,
			wantDue:      date.AddDate(0, 0, 1),
		},
		{
			name: "second success moves to six days",
			state: domain.ReviewState{
				StudentID: uuid.New(), WordID: uuid.New(),
				EaseFactor: 2.5, IntervalDays: 1, Repetitions: 1,
			},
			quality:      QualityPerfect,
			wantReps:     2,
			wantInterval: 6,
			wantEaseMin:  2.5,
			wantEaseMax:  2.7,
			wantDue:      date.AddDate(0, 0, 6),
		},
		{
			name: "third success multiplies by ease",
			state: domain.ReviewState{
				StudentID: uuid.New(), WordID: uuid.New(),
				EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2,
			},
			quality:      QualityPerfect,
			wantReps:     3,
			wantInterval: 16, // round(6 * 2.6)
			wantEaseMin:  2.5,
			wantEaseMax:  2.7,
			wantDue:      date.AddDate(0, 0, 16),
		},
		{
			name: "failure resets streak but not ease",
			state: domain.ReviewState{
				StudentID: uuid.New(), WordID: uuid.New(),
				EaseFactor: 2.2, IntervalDays: 15, Repetitions: 4,
			},
			quality:      QualityWrong,
			wantReps:     0,
			wantInterval: 1,
			wantEaseMin:  2.2,
			wantEaseMax:  2.2,
			wantDue:      date.AddDate(0, 0, 1),
		},
		{
			name: "hesitant recall keeps ease flat",
			state: domain.ReviewState{
				StudentID: uuid.New(), WordID: uuid.New(),
				EaseFactor: 2.5, IntervalDays: 1, Repetitions: 0,
			},
			quality:      QualityHesitant,
			wantReps:     1,
			wantInterval: 1,
			wantEaseMin:  2.5,
			wantEaseMax:  2.5,
			wantDue:      date.AddDate(0, 0, 1),
		},
		{
			name: "ease never drops below the floor",
			state: domain.ReviewState{
				StudentID: uuid.New(), WordID: uuid.New(),
				EaseFactor: 1.3, IntervalDays: 1, Repetitions: 0,
			},
			quality:      QualityHard,
			wantReps:     1,
			wantInterval: 1,
			wantEaseMin:  1.3,
			wantEaseMax:  1.3,
			wantDue:      date.AddDate(0, 0, 1),
		},
		{
			name:         "quality above scale clamps to perfect",
			state:        freshState(),
			quality:      9,
			wantReps:     1,
			wantInterval: 1,
			wantEaseMin:  2.51,
			wantEaseMax:  2.7,
			wantDue:      date.AddDate(0, 0, 1),
		},
		{
			name: "negative quality clamps to blackout",
			state: domain.ReviewState{
				StudentID: uuid.New(), WordID: uuid.New(),
				EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2,
			},
			quality:      -3,
			wantReps:     0,
			wantInterval: 1,
			wantEaseMin:  2.5,
			wantEaseMax:  2.5,
			wantDue:      date.AddDate(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Update(tt.state, tt.quality, today, params)

			if got.Repetitions != tt.wantReps {
				t.Errorf("repetitions = %d, want %d", got.Repetitions, tt.wantReps)
			}
			if got.IntervalDays != tt.wantInterval {
				t.Errorf("interval = %d, want %d", got.IntervalDays, tt.wantInterval)
			}
			if got.EaseFactor < tt.wantEaseMin || got.EaseFactor > tt.wantEaseMax {
				t.Errorf("ease = %v, want within [%v, %v]", got.EaseFactor, tt.wantEaseMin, tt.wantEaseMax)
			}
			if !got.DueDate.Equal(tt.wantDue) {
				t.Errorf("due = %v, want %v", got.DueDate, tt.wantDue)
			}
			if !got.LastReviewed.Equal(date) {
				t.Errorf("last reviewed = %v, want %v", got.LastReviewed, date)
			}
		})
	}
}

func TestUpdateSecondCallSequence(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	params := DefaultParams()

	first := Update(freshState(), QualityHesitant, today, params)
	if first.Repetitions != 1 || first.IntervalDays != 1 {
		t.Fatalf("after quality 4: reps=%d interval=%d, want 1 and 1", first.Repetitions, first.IntervalDays)
	}

	second := Update(first, QualityPerfect, today.AddDate(0, 0, 1), params)
	if second.Repetitions != 2 {
		t.Errorf("repetitions = %d, want 2", second.Repetitions)
	}
	if second.IntervalDays != 6 {
		t.Errorf("interval = %d, want 6", second.IntervalDays)
	}
	wantDue := domain.DateOf(today.AddDate(0, 0, 1)).AddDate(0, 0, 6)
	if !second.DueDate.Equal(wantDue) {
		t.Errorf("due = %v, want %v", second.DueDate, wantDue)
	}
}

func TestUpdateIdempotent(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	params := DefaultParams()
	state := domain.ReviewState{
		StudentID: uuid.New(), WordID: uuid.New(),
		EaseFactor: 2.36, IntervalDays: 6, Repetitions: 2,
	}

	a := Update(state, QualityHard, today, params)
	b := Update(state, QualityHard, today, params)

	if a.EaseFactor != b.EaseFactor || a.IntervalDays != b.IntervalDays || a.Repetitions != b.Repetitions {
		t.Errorf("repeated update diverged: %+v vs %+v", a, b)
	}
	if state.Repetitions != 2 || state.IntervalDays != 6 {
		t.Errorf("input state was mutated: %+v", state)
	}
}

func TestUpdatePerfectStreakIntervalsNonDecreasing(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	params := DefaultParams()

	state := freshState()
	prev := 0
	for i := 0; i < 10; i++ {
		state = Update(state, QualityPerfect, today, params)
		if state.IntervalDays < prev {
			t.Fatalf("interval shrank from %d to %d on repetition %d", prev, state.IntervalDays, i+1)
		}
		prev = state.IntervalDays
		today = state.DueDate
	}
	if state.IntervalDays < 30 {
		t.Errorf("after 10 perfect recalls interval = %d, expected long-term spacing", state.IntervalDays)
	}
}
