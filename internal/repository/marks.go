package repository

import (
	"context"
	"fmt"
)

type MarksR struct {
	db QueryI
}

func NewMarksRepository(db QueryI) *MarksR {
	return &MarksR{db: db}
}

// RecordFailure bumps the user's failure counter for the question.
func (m *MarksR) RecordFailure(ctx context.Context, userID, questionID int64) error {
	query := `
		INSERT INTO failures (user_id, question_id, fail_count, last_failed_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (user_id, question_id)
		DO UPDATE SET fail_count = failures.fail_count + 1, last_failed_at = NOW()
	`
	if _, err := m.db.ExecContext(ctx, query, userID, questionID); err != nil {
		return fmt.Errorf("failed to record failure: %w", err)
	}
	return nil
}

// ClearFailure forgets the question for the user after a correct answer.
func (m *MarksR) ClearFailure(ctx context.Context, userID, questionID int64) error {
	query := `DELETE FROM failures WHERE user_id = $1 AND question_id = $2`
	if _, err := m.db.ExecContext(ctx, query, userID, questionID); err != nil {
		return fmt.Errorf("failed to clear failure: %w", err)
	}
	return nil
}

// RecomputeFailure rebuilds the failure row from the user's recorded wrong
// answers for that question. Used when an answer is reverted so the counter
// stays a pure function of the ledger.
func (m *MarksR) RecomputeFailure(ctx context.Context, userID, questionID int64) error {
	del := `DELETE FROM failures WHERE user_id = $1 AND question_id = $2`
	if _, err := m.db.ExecContext(ctx, del, userID, questionID); err != nil {
		return fmt.Errorf("failed to reset failure: %w", err)
	}

	query := `
		INSERT INTO failures (user_id, question_id, fail_count, last_failed_at)
		SELECT a.user_id, ai.question_id, COUNT(*), MAX(a.started_at)
		FROM attempt_items ai
		JOIN attempts a ON a.id = ai.attempt_id
		WHERE a.user_id = $1 AND ai.question_id = $2 AND ai.is_correct = FALSE
		GROUP BY a.user_id, ai.question_id
		HAVING COUNT(*) > 0
	`
	if _, err := m.db.ExecContext(ctx, query, userID, questionID); err != nil {
		return fmt.Errorf("failed to recompute failure: %w", err)
	}
	return nil
}

func (m *MarksR) IsFavorite(ctx context.Context, userID, questionID int64) (bool, error) {
	var favorite bool
	query := `SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND question_id = $2)`
	if err := m.db.GetContext(ctx, &favorite, query, userID, questionID); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return favorite, nil
}

func (m *MarksR) AddFavorite(ctx context.Context, userID, questionID int64) error {
	query := `
		INSERT INTO favorites (user_id, question_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, question_id) DO NOTHING
	`
	if _, err := m.db.ExecContext(ctx, query, userID, questionID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (m *MarksR) RemoveFavorite(ctx context.Context, userID, questionID int64) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND question_id = $2`
	if _, err := m.db.ExecContext(ctx, query, userID, questionID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
