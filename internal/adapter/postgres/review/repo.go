// Package review implements the review-state repository using
// PostgreSQL.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/storyspark/vocab-engine/internal/adapter/postgres"
	"github.com/storyspark/vocab-engine/internal/domain"
)

// Repo provides review-state persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review-state repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const reviewColumns = "student_id, word_id, ease_factor, interval_days, repetitions, due_date, last_reviewed"

const getSQL = `
SELECT ` + reviewColumns + `
FROM review_states
WHERE student_id = $1 AND word_id = $2`

const listByStudentSQL = `
SELECT ` + reviewColumns + `
FROM review_states
WHERE student_id = $1
ORDER BY due_date ASC, word_id ASC`

const upsertSQL = `
INSERT INTO review_states (student_id, word_id, ease_factor, interval_days, repetitions, due_date, last_reviewed)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (student_id, word_id) DO UPDATE SET
  ease_factor = EXCLUDED.ease_factor,
  interval_days = EXCLUDED.interval_days,
  repetitions = EXCLUDED.repetitions,
  due_date = EXCLUDED.due_date,
  last_reviewed = EXCLUDED.last_reviewed,
  updated_at = now()`

// Get returns one learner-word review state.
func (r *Repo) Get(ctx context.Context, studentID, wordID uuid.UUID) (domain.ReviewState, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getSQL, studentID, wordID)
	state, err := scanState(row)
	if err != nil {
		return domain.ReviewState{}, postgres.MapError(err, "review state", wordID.String())
	}
	return state, nil
}

// ListByStudent returns every review state for a learner, soonest due
// first.
func (r *Repo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]domain.ReviewState, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByStudentSQL, studentID)
	if err != nil {
		return nil, postgres.MapError(err, "review states", studentID.String())
	}
	defer rows.Close()

	var states []domain.ReviewState
	for rows.Next() {
		state, err := scanState(rows)
		if err != nil {
			return nil, postgres.MapError(err, "review states", studentID.String())
		}
		states = append(states, state)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "review states", studentID.String())
	}
	return states, nil
}

// Upsert writes a review state, replacing any previous state for the
// same learner and word.
func (r *Repo) Upsert(ctx context.Context, state domain.ReviewState) error {
	if err := state.Validate(); err != nil {
		return fmt.Errorf("review state for word %s: %w", state.WordID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var lastReviewed any
	if !state.LastReviewed.IsZero() {
		lastReviewed = state.LastReviewed
	}

	_, err := q.Exec(ctx, upsertSQL,
		state.StudentID, state.WordID, state.EaseFactor,
		state.IntervalDays, state.Repetitions, state.DueDate, lastReviewed,
	)
	if err != nil {
		return postgres.MapError(err, "review state", state.WordID.String())
	}
	return nil
}

func scanState(row pgx.Row) (domain.ReviewState, error) {
	var (
		state        domain.ReviewState
		lastReviewed *time.Time
	)
	err := row.Scan(
		&state.StudentID, &state.WordID, &state.EaseFactor,
		&state.IntervalDays, &state.Repetitions, &state.DueDate, &lastReviewed,
	)
	if err != nil {
		return domain.ReviewState{}, err
	}
	if lastReviewed != nil {
		state.LastReviewed = *lastReviewed
	}
	return state, nil
}
