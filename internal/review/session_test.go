package review

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/storyspark/vocab-engine/internal/domain"
)

func TestSelectSession(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	date := domain.DateOf(today)

	state := func(reps, dueOffset int) domain.ReviewState {
		s := domain.ReviewState{
			StudentID: uuid.New(), WordID: uuid.New(),
			EaseFactor: 2.5, IntervalDays: 1, Repetitions: reps,
			DueDate: date.AddDate(0, 0, dueOffset),
		}
		if reps > 0 {
			s.LastReviewed = date.AddDate(0, 0, -1)
		}
		return s
	}

	t.Run("partitions new from due and skips future words", func(t *testing.T) {
		states := []domain.ReviewState{
			state(0, 0),  // new
			state(3, -2), // overdue
			state(1, 0),  // due today
			state(2, 5),  // not due yet
			state(0, 0),  // new
		}

		plan := SelectSession(states, 4, 8, today)

		if len(plan.New) != 2 {
			t.Errorf("new = %d, want 2", len(plan.New))
		}
		if len(plan.Review) != 2 {
			t.Errorf("review = %d, want 2", len(plan.Review))
		}
		if len(plan.Review) == 2 && !plan.Review[0].DueDate.Before(plan.Review[1].DueDate) {
			t.Errorf("overdue word should come before due-today word")
		}
	})

	t.Run("caps both lists at the requested sizes", func(t *testing.T) {
		var states []domain.ReviewState
		for i := 0; i < 10; i++ {
			states = append(states, state(0, 0))
			states = append(states, state(1, -i))
		}

		plan := SelectSession(states, 3, 5, today)

		if len(plan.New) != 3 {
			t.Errorf("new = %d, want 3", len(plan.New))
		}
		if len(plan.Review) != 5 {
			t.Errorf("review = %d, want 5", len(plan.Review))
		}
	})

	t.Run("zero counts fall back to defaults", func(t *testing.T) {
		var states []domain.ReviewState
		for i := 0; i < 20; i++ {
			states = append(states, state(0, 0))
			states = append(states, state(1, -1))
		}

		plan := SelectSession(states, 0, 0, today)

		if len(plan.New) != DefaultNewCount {
			t.Errorf("new = %d, want %d", len(plan.New), DefaultNewCount)
		}
		if len(plan.Review) != DefaultReviewCount {
			t.Errorf("review = %d, want %d", len(plan.Review), DefaultReviewCount)
		}
	})

	t.Run("new words keep their original order", func(t *testing.T) {
		a, b, c := state(0, 0), state(0, 0), state(0, 0)
		plan := SelectSession([]domain.ReviewState{a, b, c}, 4, 8, today)

		want := []uuid.UUID{a.WordID, b.WordID, c.WordID}
		for i, s := range plan.New {
			if s.WordID != want[i] {
				t.Fatalf("new[%d] = %s, want %s", i, s.WordID, want[i])
			}
		}
	})

	t.Run("empty input yields an empty plan", func(t *testing.T) {
		plan := SelectSession(nil, 4, 8, today)
		if len(plan.New) != 0 || len(plan.Review) != 0 {
			t.Errorf("plan = %+v, want empty", plan)
		}
	})
}

func TestMastery(t *testing.T) {
	tests := []struct {
		name  string
		state domain.ReviewState
		want  float64
	}{
		{
			name:  "never reviewed scores zero",
			state: domain.ReviewState{EaseFactor: 2.5, Repetitions: 0},
			want:  0,
		},
		{
			name:  "early streak",
			state: domain.ReviewState{EaseFactor: 1.3, Repetitions: 2},
			want:  0.2,
		},
		{
			name:  "repetitions cap at 0.7",
			state: domain.ReviewState{EaseFactor: 1.3, Repetitions: 30},
			want:  0.7,
		},
		{
			name:  "ease contribution caps at 0.3",
			state: domain.ReviewState{EaseFactor: 3.2, Repetitions: 30},
			want:  1,
		},
		{
			name:  "mixed contributions",
			state: domain.ReviewState{EaseFactor: 1.7, Repetitions: 4},
			want:  0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mastery(tt.state)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Mastery() = %v, want %v", got, tt.want)
			}
		})
	}
}
