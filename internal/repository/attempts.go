package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AngelaMMoreno/testbot.git/internal/models"
)

type AttemptsR struct {
	db QueryI
}

func NewAttemptsRepository(db QueryI) *AttemptsR {
	return &AttemptsR{db: db}
}

// CreateAttempt opens a new attempt row. quizID 0 is stored as NULL,
// used by failure, favorite and exam runs that have no catalog quiz.
func (a *AttemptsR) CreateAttempt(ctx context.Context, userID, quizID int64, kind models.AttemptKind) (int64, error) {
	var quiz sql.NullInt64
	if quizID != 0 {
		quiz = sql.NullInt64{Int64: quizID, Valid: true}
	}

	var id int64
	query := `
		INSERT INTO attempts (user_id, quiz_id, attempt_type)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := a.db.GetContext(ctx, &id, query, userID, quiz, kind); err != nil {
		return 0, fmt.Errorf("failed to create attempt: %w", err)
	}
	return id, nil
}

func (a *AttemptsR) FinishAttempt(ctx context.Context, attemptID int64, correct, wrong int) error {
	query := `UPDATE attempts SET finished_at = NOW(), correct = $1, wrong = $2 WHERE id = $3`
	if _, err := a.db.ExecContext(ctx, query, correct, wrong, attemptID); err != nil {
		return fmt.Errorf("failed to finish attempt %d: %w", attemptID, err)
	}
	return nil
}

// DeleteAttempt drops the attempt and its items.
func (a *AttemptsR) DeleteAttempt(ctx context.Context, attemptID int64) error {
	if _, err := a.db.ExecContext(ctx, `DELETE FROM attempt_items WHERE attempt_id = $1`, attemptID); err != nil {
		return fmt.Errorf("failed to delete attempt items: %w", err)
	}
	if _, err := a.db.ExecContext(ctx, `DELETE FROM attempts WHERE id = $1`, attemptID); err != nil {
		return fmt.Errorf("failed to delete attempt %d: %w", attemptID, err)
	}
	return nil
}

// AddItem records one resolved question. A duplicate question within the
// same attempt is silently ignored.
func (a *AttemptsR) AddItem(ctx context.Context, item models.AttemptItem) error {
	query := `
		INSERT INTO attempt_items (attempt_id, question_id, selected_option, is_correct)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (attempt_id, question_id) DO NOTHING
	`
	if _, err := a.db.ExecContext(ctx, query, item.AttemptID, item.QuestionID, item.Selected, item.IsCorrect); err != nil {
		return fmt.Errorf("failed to add attempt item: %w", err)
	}
	return nil
}

// RemoveItem un-records a question, used when a content edit reverts an
// already-resolved answer.
func (a *AttemptsR) RemoveItem(ctx context.Context, attemptID, questionID int64) error {
	query := `DELETE FROM attempt_items WHERE attempt_id = $1 AND question_id = $2`
	if _, err := a.db.ExecContext(ctx, query, attemptID, questionID); err != nil {
		return fmt.Errorf("failed to remove attempt item: %w", err)
	}
	return nil
}

func (a *AttemptsR) Items(ctx context.Context, attemptID int64) ([]models.AttemptItem, error) {
	query := `
		SELECT attempt_id, question_id, selected_option, is_correct
		FROM attempt_items
		WHERE attempt_id = $1
		ORDER BY id ASC
	`
	var items []models.AttemptItem
	if err := a.db.SelectContext(ctx, &items, query, attemptID); err != nil {
		return nil, fmt.Errorf("failed to load attempt items: %w", err)
	}
	return items, nil
}

// PendingAttempt finds the user's most recent unfinished attempt for the
// quiz and kind. quizID 0 matches the NULL quiz attempts.
func (a *AttemptsR) PendingAttempt(ctx context.Context, userID, quizID int64, kind models.AttemptKind) (models.Attempt, error) {
	query := `
		SELECT id, user_id, quiz_id, attempt_type, started_at, finished_at, correct, wrong
		FROM attempts
		WHERE user_id = $1
		  AND attempt_type = $2
		  AND finished_at IS NULL
		  AND ($3 = 0 AND quiz_id IS NULL OR quiz_id = $3)
		ORDER BY started_at DESC
		LIMIT 1
	`
	var attempt models.Attempt
	if err := a.db.GetContext(ctx, &attempt, query, userID, kind, quizID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Attempt{}, ErrNotFound
		}
		return models.Attempt{}, fmt.Errorf("failed to find pending attempt: %w", err)
	}
	return attempt, nil
}

// ClosePending finishes every unfinished attempt the user has for the
// quiz and kind, preserving the counters accumulated so far.
func (a *AttemptsR) ClosePending(ctx context.Context, userID, quizID int64, kind models.AttemptKind) error {
	query := `
		UPDATE attempts SET finished_at = NOW()
		WHERE user_id = $1
		  AND attempt_type = $2
		  AND finished_at IS NULL
		  AND ($3 = 0 AND quiz_id IS NULL OR quiz_id = $3)
	`
	if _, err := a.db.ExecContext(ctx, query, userID, kind, quizID); err != nil {
		return fmt.Errorf("failed to close pending attempts: %w", err)
	}
	return nil
}

// PendingQuizIDs lists the quizzes the user has an unfinished quiz
// attempt on.
func (a *AttemptsR) PendingQuizIDs(ctx context.Context, userID int64) ([]int64, error) {
	query := `
		SELECT DISTINCT quiz_id
		FROM attempts
		WHERE user_id = $1 AND attempt_type = $2 AND finished_at IS NULL AND quiz_id IS NOT NULL
	`
	var ids []int64
	if err := a.db.SelectContext(ctx, &ids, query, userID, models.KindQuiz); err != nil {
		return nil, fmt.Errorf("failed to list pending quizzes: %w", err)
	}
	return ids, nil
}

func (a *AttemptsR) FinishedQuizIDs(ctx context.Context, userID int64) ([]int64, error) {
	query := `
		SELECT DISTINCT quiz_id
		FROM attempts
		WHERE user_id = $1 AND attempt_type = $2 AND finished_at IS NOT NULL AND quiz_id IS NOT NULL
	`
	var ids []int64
	if err := a.db.SelectContext(ctx, &ids, query, userID, models.KindQuiz); err != nil {
		return nil, fmt.Errorf("failed to list finished quizzes: %w", err)
	}
	return ids, nil
}

// LatestFinishedTotals sums the counters of the user's latest finished
// attempt per quiz.
func (a *AttemptsR) LatestFinishedTotals(ctx context.Context, userID int64) (models.ProgressTotals, error) {
	query := `
		SELECT COALESCE(SUM(correct), 0) AS total_correct, COALESCE(SUM(wrong), 0) AS total_wrong
		FROM (
			SELECT DISTINCT ON (quiz_id) correct, wrong
			FROM attempts
			WHERE user_id = $1 AND attempt_type = $2 AND finished_at IS NOT NULL AND quiz_id IS NOT NULL
			ORDER BY quiz_id, finished_at DESC
		) latest
	`
	var totals models.ProgressTotals
	if err := a.db.GetContext(ctx, &totals, query, userID, models.KindQuiz); err != nil {
		return models.ProgressTotals{}, fmt.Errorf("failed to sum progress totals: %w", err)
	}
	return totals, nil
}

// QuizAttemptHistory lists the user's finished quiz attempts, most
// recent first.
func (a *AttemptsR) QuizAttemptHistory(ctx context.Context, userID int64, limit int) ([]models.AttemptRecord, error) {
	query := `
		SELECT a.quiz_id, q.title, a.correct, a.wrong, a.started_at
		FROM attempts a
		JOIN quizzes q ON q.id = a.quiz_id
		WHERE a.user_id = $1 AND a.attempt_type = $2 AND a.finished_at IS NOT NULL
		ORDER BY a.started_at DESC
		LIMIT $3
	`
	var records []models.AttemptRecord
	if err := a.db.SelectContext(ctx, &records, query, userID, models.KindQuiz, limit); err != nil {
		return nil, fmt.Errorf("failed to load attempt history: %w", err)
	}
	return records, nil
}

// AnsweredToday counts the questions the user resolved since local
// midnight, across all attempt kinds.
func (a *AttemptsR) AnsweredToday(ctx context.Context, userID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM attempt_items ai
		JOIN attempts a ON a.id = ai.attempt_id
		WHERE a.user_id = $1 AND a.started_at >= date_trunc('day', NOW())
	`
	var total int
	if err := a.db.GetContext(ctx, &total, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count today's answers: %w", err)
	}
	return total, nil
}
