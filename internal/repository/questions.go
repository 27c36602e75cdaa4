package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/AngelaMMoreno/testbot.git/internal/models"
)

var ErrNotFound = errors.New("not found")

type QuestionsR struct {
	db QueryI
}

func NewQuestionsRepository(db QueryI) *QuestionsR {
	return &QuestionsR{db: db}
}

type optionRow struct {
	QuestionID int64  `db:"question_id"`
	Text       string `db:"text"`
}

// QuizQuestions returns the quiz's questions in stored order with their
// options ordered by position.
func (q *QuestionsR) QuizQuestions(ctx context.Context, quizID int64) ([]models.Question, error) {
	query := `
		SELECT id, quiz_id, text, explanation, block, topic
		FROM questions
		WHERE quiz_id = $1
		ORDER BY id ASC
	`

	var questions []models.Question
	if err := q.db.SelectContext(ctx, &questions, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to load questions for quiz %d: %w", quizID, err)
	}
	if len(questions) == 0 {
		return nil, nil
	}

	optQuery := `
		SELECT o.question_id, o.text
		FROM options o
		JOIN questions qs ON qs.id = o.question_id
		WHERE qs.quiz_id = $1
		ORDER BY o.question_id ASC, o.position ASC
	`
	var opts []optionRow
	if err := q.db.SelectContext(ctx, &opts, optQuery, quizID); err != nil {
		return nil, fmt.Errorf("failed to load options for quiz %d: %w", quizID, err)
	}

	return attachOptions(questions, opts), nil
}

func attachOptions(questions []models.Question, opts []optionRow) []models.Question {
	byID := make(map[int64][]string, len(questions))
	for _, o := range opts {
		byID[o.QuestionID] = append(byID[o.QuestionID], o.Text)
	}
	out := questions[:0]
	for _, question := range questions {
		question.Options = byID[question.ID]
		out = append(out, question)
	}
	return out
}

func (q *QuestionsR) QuestionByID(ctx context.Context, id int64) (models.Question, error) {
	query := `
		SELECT id, quiz_id, text, explanation, block, topic
		FROM questions
		WHERE id = $1
	`

	var question models.Question
	if err := q.db.GetContext(ctx, &question, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Question{}, ErrNotFound
		}
		return models.Question{}, fmt.Errorf("failed to load question %d: %w", id, err)
	}

	optQuery := `SELECT question_id, text FROM options WHERE question_id = $1 ORDER BY position ASC`
	var opts []optionRow
	if err := q.db.SelectContext(ctx, &opts, optQuery, id); err != nil {
		return models.Question{}, fmt.Errorf("failed to load options for question %d: %w", id, err)
	}
	for _, o := range opts {
		question.Options = append(question.Options, o.Text)
	}

	return question, nil
}

// FailedQuestions is the user's failure snapshot, most recently failed first.
func (q *QuestionsR) FailedQuestions(ctx context.Context, userID int64, limit int) ([]models.Question, error) {
	query := `
		SELECT qs.id, qs.quiz_id, qs.text, qs.explanation, qs.block, qs.topic
		FROM failures f
		JOIN questions qs ON qs.id = f.question_id
		WHERE f.user_id = $1
		ORDER BY f.last_failed_at DESC
		LIMIT $2
	`
	return q.markedQuestions(ctx, query, userID, limit)
}

// FavoriteQuestions is the user's favorites snapshot, most recently starred first.
func (q *QuestionsR) FavoriteQuestions(ctx context.Context, userID int64, limit int) ([]models.Question, error) {
	query := `
		SELECT qs.id, qs.quiz_id, qs.text, qs.explanation, qs.block, qs.topic
		FROM favorites f
		JOIN questions qs ON qs.id = f.question_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
		LIMIT $2
	`
	return q.markedQuestions(ctx, query, userID, limit)
}

func (q *QuestionsR) markedQuestions(ctx context.Context, query string, userID int64, limit int) ([]models.Question, error) {
	var questions []models.Question
	if err := q.db.SelectContext(ctx, &questions, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to load marked questions for user %d: %w", userID, err)
	}

	for i := range questions {
		optQuery := `SELECT question_id, text FROM options WHERE question_id = $1 ORDER BY position ASC`
		var opts []optionRow
		if err := q.db.SelectContext(ctx, &opts, optQuery, questions[i].ID); err != nil {
			return nil, fmt.Errorf("failed to load options for question %d: %w", questions[i].ID, err)
		}
		for _, o := range opts {
			questions[i].Options = append(questions[i].Options, o.Text)
		}
	}

	return questions, nil
}

func (q *QuestionsR) Quizzes(ctx context.Context, offset, limit int) ([]models.Quiz, error) {
	query := `
		SELECT q.id, q.title, q.description, q.created_at, COUNT(qs.id) AS question_count
		FROM quizzes q
		LEFT JOIN questions qs ON qs.quiz_id = q.id
		GROUP BY q.id
		ORDER BY q.id DESC
		LIMIT $1 OFFSET $2
	`

	quizzes := make([]models.Quiz, 0, limit)
	if err := q.db.SelectContext(ctx, &quizzes, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	return quizzes, nil
}

func (q *QuestionsR) CountQuizzes(ctx context.Context) (int, error) {
	var total int
	if err := q.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM quizzes`); err != nil {
		return 0, fmt.Errorf("failed to count quizzes: %w", err)
	}
	return total, nil
}

func (q *QuestionsR) QuizTitle(ctx context.Context, quizID int64) (string, error) {
	var title string
	err := q.db.GetContext(ctx, &title, `SELECT title FROM quizzes WHERE id = $1`, quizID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load quiz %d title: %w", quizID, err)
	}
	return title, nil
}

// CreateQuiz inserts the quiz with its questions and options. Questions
// with fewer than two non-empty options are dropped.
func (q *QuestionsR) CreateQuiz(ctx context.Context, payload models.QuizPayload) (int64, error) {
	var quizID int64
	err := q.db.GetContext(ctx, &quizID,
		`INSERT INTO quizzes (title, description) VALUES ($1, NULLIF($2, '')) RETURNING id`,
		payload.Title, payload.Description)
	if err != nil {
		return 0, fmt.Errorf("failed to create quiz: %w", err)
	}

	inserted := 0
	for _, question := range payload.Questions {
		text := strings.TrimSpace(question.Text)
		options := cleanOptions(question.Options)
		if text == "" || len(options) < 2 {
			continue
		}

		var questionID int64
		err := q.db.GetContext(ctx, &questionID,
			`INSERT INTO questions (quiz_id, text, explanation, block, topic)
			 VALUES ($1, $2, NULLIF($3, ''), $4, $5) RETURNING id`,
			quizID, text, strings.TrimSpace(question.Explanation), question.Block, question.Topic)
		if err != nil {
			return 0, fmt.Errorf("failed to insert question: %w", err)
		}

		for position, option := range options {
			_, err := q.db.ExecContext(ctx,
				`INSERT INTO options (question_id, text, position) VALUES ($1, $2, $3)`,
				questionID, option, position)
			if err != nil {
				return 0, fmt.Errorf("failed to insert option: %w", err)
			}
		}
		inserted++
	}

	if inserted == 0 {
		_, _ = q.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = $1`, quizID)
		return 0, fmt.Errorf("quiz has no usable questions")
	}

	return quizID, nil
}

func cleanOptions(options []string) []string {
	out := make([]string, 0, len(options))
	for _, option := range options {
		option = strings.TrimSpace(option)
		if option != "" {
			out = append(out, option)
		}
	}
	return out
}

// DeleteQuiz removes the quiz; questions, options, marks, attempts and
// items follow via ON DELETE CASCADE.
func (q *QuestionsR) DeleteQuiz(ctx context.Context, quizID int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = $1`, quizID)
	if err != nil {
		return fmt.Errorf("failed to delete quiz %d: %w", quizID, err)
	}
	return nil
}

func (q *QuestionsR) DeleteQuestion(ctx context.Context, questionID int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, questionID)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", questionID, err)
	}
	return nil
}

// UpdateQuestion replaces the question's text, metadata and full option
// list and returns the updated entity.
func (q *QuestionsR) UpdateQuestion(ctx context.Context, questionID int64, payload models.QuestionPayload) (models.Question, error) {
	text := strings.TrimSpace(payload.Text)
	options := cleanOptions(payload.Options)
	if text == "" || len(options) < 2 {
		return models.Question{}, fmt.Errorf("question needs text and at least two options")
	}

	_, err := q.db.ExecContext(ctx,
		`UPDATE questions SET text = $1, explanation = NULLIF($2, ''), block = $3, topic = $4 WHERE id = $5`,
		text, strings.TrimSpace(payload.Explanation), payload.Block, payload.Topic, questionID)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to update question %d: %w", questionID, err)
	}

	if _, err := q.db.ExecContext(ctx, `DELETE FROM options WHERE question_id = $1`, questionID); err != nil {
		return models.Question{}, fmt.Errorf("failed to reset options for question %d: %w", questionID, err)
	}
	for position, option := range options {
		_, err := q.db.ExecContext(ctx,
			`INSERT INTO options (question_id, text, position) VALUES ($1, $2, $3)`,
			questionID, option, position)
		if err != nil {
			return models.Question{}, fmt.Errorf("failed to insert option: %w", err)
		}
	}

	return q.QuestionByID(ctx, questionID)
}

// QuizAsPayload exports the quiz in the JSON exchange format.
func (q *QuestionsR) QuizAsPayload(ctx context.Context, quizID int64) (models.QuizPayload, error) {
	var quiz models.Quiz
	err := q.db.GetContext(ctx, &quiz,
		`SELECT id, title, description, created_at FROM quizzes WHERE id = $1`, quizID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QuizPayload{}, ErrNotFound
		}
		return models.QuizPayload{}, fmt.Errorf("failed to load quiz %d: %w", quizID, err)
	}

	questions, err := q.QuizQuestions(ctx, quizID)
	if err != nil {
		return models.QuizPayload{}, err
	}

	payload := models.QuizPayload{
		Title:       quiz.Title,
		Description: quiz.Description.String,
	}
	for _, question := range questions {
		if !question.Usable() {
			continue
		}
		item := models.QuestionPayload{
			Text:        question.Text,
			Options:     question.Options,
			Explanation: question.Explanation.String,
		}
		if question.Block.Valid {
			block := question.Block.Int64
			item.Block = &block
		}
		if question.Topic.Valid {
			topic := question.Topic.Int64
			item.Topic = &topic
		}
		payload.Questions = append(payload.Questions, item)
	}

	return payload, nil
}

func (q *QuestionsR) Explanation(ctx context.Context, questionID int64) (string, error) {
	var explanation sql.NullString
	err := q.db.GetContext(ctx, &explanation,
		`SELECT explanation FROM questions WHERE id = $1`, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load explanation for question %d: %w", questionID, err)
	}
	return explanation.String, nil
}

func (q *QuestionsR) UpdateExplanation(ctx context.Context, questionID int64, explanation string) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE questions SET explanation = NULLIF($1, '') WHERE id = $2`,
		strings.TrimSpace(explanation), questionID)
	if err != nil {
		return fmt.Errorf("failed to update explanation for question %d: %w", questionID, err)
	}
	return nil
}
