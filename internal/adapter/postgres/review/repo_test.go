package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyspark/vocab-engine/internal/adapter/postgres/testhelper"
	wordrepo "github.com/storyspark/vocab-engine/internal/adapter/postgres/word"
	"github.com/storyspark/vocab-engine/internal/domain"
)

// seedWord inserts a catalog word and returns its id, satisfying the
// review_states foreign key.
func seedWord(t *testing.T, words *wordrepo.Repo, text string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	_, err := words.BulkUpsert(ctx, []domain.CatalogWord{
		{Word: text, Difficulty: 40, PartOfSpeech: domain.PartOfSpeechNoun, Frequency: 100},
	})
	require.NoError(t, err)

	w, err := words.GetByText(ctx, text)
	require.NoError(t, err)
	return w.ID
}

func TestRepo_UpsertAndGet(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	words := wordrepo.New(pool)

	ctx := context.Background()
	studentID := uuid.New()
	wordID := seedWord(t, words, "thicket")
	today := domain.DateOf(time.Now())

	t.Run("round trip", func(t *testing.T) {
		state := domain.NewReviewState(studentID, wordID, time.Now())
		require.NoError(t, repo.Upsert(ctx, state))

		got, err := repo.Get(ctx, studentID, wordID)
		require.NoError(t, err)
		assert.Equal(t, state.EaseFactor, got.EaseFactor)
		assert.Equal(t, state.IntervalDays, got.IntervalDays)
		assert.Equal(t, 0, got.Repetitions)
		assert.True(t, got.DueDate.Equal(today))
		assert.True(t, got.LastReviewed.IsZero())
		assert.False(t, got.Reviewed())
	})

	t.Run("upsert replaces previous state", func(t *testing.T) {
		state := domain.ReviewState{
			StudentID:    studentID,
			WordID:       wordID,
			EaseFactor:   2.6,
			IntervalDays: 6,
			Repetitions:  2,
			DueDate:      today.AddDate(0, 0, 6),
			LastReviewed: today,
		}
		require.NoError(t, repo.Upsert(ctx, state))

		got, err := repo.Get(ctx, studentID, wordID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Repetitions)
		assert.Equal(t, 6, got.IntervalDays)
		assert.True(t, got.Reviewed())
		assert.True(t, got.LastReviewed.Equal(today))
	})

	t.Run("missing state maps to domain error", func(t *testing.T) {
		_, err := repo.Get(ctx, uuid.New(), wordID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("invalid state rejected", func(t *testing.T) {
		state := domain.NewReviewState(studentID, wordID, time.Now())
		state.EaseFactor = 0.5
		err := repo.Upsert(ctx, state)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})
}

func TestRepo_ListByStudent(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	words := wordrepo.New(pool)

	ctx := context.Background()
	studentID := uuid.New()
	today := domain.DateOf(time.Now())

	ids := []uuid.UUID{
		seedWord(t, words, "meadow"),
		seedWord(t, words, "scamper"),
		seedWord(t, words, "venture"),
	}

	for i, wordID := range ids {
		state := domain.NewReviewState(studentID, wordID, time.Now())
		state.DueDate = today.AddDate(0, 0, 2-i) // later words due sooner
		require.NoError(t, repo.Upsert(ctx, state))
	}

	states, err := repo.ListByStudent(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, states, 3)

	for i := 1; i < len(states); i++ {
		assert.False(t, states[i].DueDate.Before(states[i-1].DueDate), "states not ordered by due date")
	}

	t.Run("unknown student returns empty list", func(t *testing.T) {
		states, err := repo.ListByStudent(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, states)
	})
}
