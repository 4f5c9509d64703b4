// Package word implements the word-catalog repository using
// PostgreSQL. Fixed-shape queries use raw SQL; the difficulty search
// is assembled with squirrel because its filter set varies per call.
package word

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/storyspark/vocab-engine/internal/adapter/postgres"
	"github.com/storyspark/vocab-engine/internal/domain"
	"github.com/storyspark/vocab-engine/internal/recommend"
)

// Repo provides catalog-word persistence backed by PostgreSQL.
// Implements recommend.WordPool.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const wordColumns = "id, word, difficulty, part_of_speech, definition, example, frequency"

const getByTextSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE word = $1`

const upsertSQL = `
INSERT INTO words (word, difficulty, part_of_speech, definition, example, frequency)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (word) DO UPDATE SET
  difficulty = EXCLUDED.difficulty,
  part_of_speech = EXCLUDED.part_of_speech,
  definition = EXCLUDED.definition,
  example = EXCLUDED.example,
  frequency = EXCLUDED.frequency,
  updated_at = now()`

// Search returns catalog words matching the filter, easiest first so
// truncation by limit keeps the lower end of the band represented.
func (r *Repo) Search(ctx context.Context, filter recommend.WordFilter) ([]domain.CatalogWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Select("id", "word", "difficulty", "part_of_speech", "definition", "example", "frequency").
		From("words").
		Where(sq.GtOrEq{"difficulty": filter.MinDifficulty}).
		Where(sq.LtOrEq{"difficulty": filter.MaxDifficulty}).
		OrderBy("difficulty ASC", "frequency DESC", "word ASC")

	if len(filter.PartsOfSpeech) > 0 {
		builder = builder.Where(sq.Eq{"part_of_speech": filter.PartsOfSpeech})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word search query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "words", "search")
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, postgres.MapError(err, "words", "search")
	}
	return words, nil
}

// GetByText returns the catalog entry for an exact word.
func (r *Repo) GetByText(ctx context.Context, text string) (domain.CatalogWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	normalized := domain.NormalizeWord(text)

	var w domain.CatalogWord
	err := q.QueryRow(ctx, getByTextSQL, normalized).Scan(
		&w.ID, &w.Word, &w.Difficulty, &w.PartOfSpeech,
		&w.Definition, &w.Example, &w.Frequency,
	)
	if err != nil {
		return domain.CatalogWord{}, postgres.MapError(err, "word", normalized)
	}
	return w, nil
}

// BulkUpsert inserts or refreshes catalog words in one batch and
// returns how many rows were written. Words failing validation are
// rejected before anything is sent.
func (r *Repo) BulkUpsert(ctx context.Context, words []domain.CatalogWord) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}
	for _, w := range words {
		if err := w.Validate(); err != nil {
			return 0, fmt.Errorf("word %q: %w", w.Word, err)
		}
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, w := range words {
		batch.Queue(upsertSQL,
			domain.NormalizeWord(w.Word), w.Difficulty, w.PartOfSpeech,
			w.Definition, w.Example, w.Frequency,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	written := 0
	for _, w := range words {
		if _, err := results.Exec(); err != nil {
			return written, postgres.MapError(err, "word", w.Word)
		}
		written++
	}
	return written, nil
}

func scanWords(rows pgx.Rows) ([]domain.CatalogWord, error) {
	var words []domain.CatalogWord
	for rows.Next() {
		var w domain.CatalogWord
		if err := rows.Scan(
			&w.ID, &w.Word, &w.Difficulty, &w.PartOfSpeech,
			&w.Definition, &w.Example, &w.Frequency,
		); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
