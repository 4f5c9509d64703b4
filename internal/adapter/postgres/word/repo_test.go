package word

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyspark/vocab-engine/internal/adapter/postgres/testhelper"
	"github.com/storyspark/vocab-engine/internal/domain"
	"github.com/storyspark/vocab-engine/internal/recommend"
)

func seedCatalog(t *testing.T, repo *Repo) {
	t.Helper()

	words := []domain.CatalogWord{
		{Word: "playground", Difficulty: 27, PartOfSpeech: domain.PartOfSpeechNoun, Definition: "an outdoor play area", Example: "We met at the playground.", Frequency: 800},
		{Word: "wander", Difficulty: 30, PartOfSpeech: domain.PartOfSpeechVerb, Definition: "to walk without a fixed route", Example: "They wander through the woods.", Frequency: 400},
		{Word: "gleeful", Difficulty: 32, PartOfSpeech: domain.PartOfSpeechAdjective, Definition: "full of joy", Example: "A gleeful shout rang out.", Frequency: 120},
		{Word: "resilient", Difficulty: 65, PartOfSpeech: domain.PartOfSpeechAdjective, Definition: "quick to recover", Example: "The resilient team tried again.", Frequency: 200},
		{Word: "perseverance", Difficulty: 75, PartOfSpeech: domain.PartOfSpeechNoun, Definition: "continued effort", Example: "Perseverance pays off.", Frequency: 150},
	}

	n, err := repo.BulkUpsert(context.Background(), words)
	require.NoError(t, err)
	require.Equal(t, len(words), n)
}

func TestRepo_Search(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	seedCatalog(t, repo)

	ctx := context.Background()

	t.Run("difficulty band", func(t *testing.T) {
		words, err := repo.Search(ctx, recommend.WordFilter{MinDifficulty: 25, MaxDifficulty: 45})
		require.NoError(t, err)
		require.Len(t, words, 3)
		for _, w := range words {
			assert.GreaterOrEqual(t, w.Difficulty, 25)
			assert.LessOrEqual(t, w.Difficulty, 45)
		}
		// Easiest first.
		assert.Equal(t, "playground", words[0].Word)
	})

	t.Run("part of speech filter", func(t *testing.T) {
		words, err := repo.Search(ctx, recommend.WordFilter{
			MinDifficulty: 0,
			MaxDifficulty: 100,
			PartsOfSpeech: []domain.PartOfSpeech{domain.PartOfSpeechAdjective},
		})
		require.NoError(t, err)
		require.Len(t, words, 2)
		for _, w := range words {
			assert.Equal(t, domain.PartOfSpeechAdjective, w.PartOfSpeech)
		}
	})

	t.Run("limit", func(t *testing.T) {
		words, err := repo.Search(ctx, recommend.WordFilter{MinDifficulty: 0, MaxDifficulty: 100, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, words, 2)
	})

	t.Run("empty band", func(t *testing.T) {
		words, err := repo.Search(ctx, recommend.WordFilter{MinDifficulty: 96, MaxDifficulty: 100})
		require.NoError(t, err)
		assert.Empty(t, words)
	})
}

func TestRepo_GetByText(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	seedCatalog(t, repo)

	ctx := context.Background()

	t.Run("found with normalization", func(t *testing.T) {
		w, err := repo.GetByText(ctx, "  Gleeful ")
		require.NoError(t, err)
		assert.Equal(t, "gleeful", w.Word)
		assert.Equal(t, 32, w.Difficulty)
		assert.NotEmpty(t, w.Definition)
	})

	t.Run("not found maps to domain error", func(t *testing.T) {
		_, err := repo.GetByText(ctx, "nonexistent")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestRepo_BulkUpsert(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	seedCatalog(t, repo)

	ctx := context.Background()

	t.Run("upsert refreshes existing rows", func(t *testing.T) {
		n, err := repo.BulkUpsert(ctx, []domain.CatalogWord{
			{Word: "wander", Difficulty: 35, PartOfSpeech: domain.PartOfSpeechVerb, Frequency: 500},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		w, err := repo.GetByText(ctx, "wander")
		require.NoError(t, err)
		assert.Equal(t, 35, w.Difficulty)
		assert.Equal(t, 500, w.Frequency)
	})

	t.Run("invalid word rejected before writing", func(t *testing.T) {
		_, err := repo.BulkUpsert(ctx, []domain.CatalogWord{
			{Word: "", Difficulty: 30, PartOfSpeech: domain.PartOfSpeechNoun},
		})
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		n, err := repo.BulkUpsert(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
