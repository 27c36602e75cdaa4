package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/AngelaMMoreno/testbot.git/internal/config"
	"github.com/AngelaMMoreno/testbot.git/internal/models"
	"go.uber.org/zap"
)

// QuizS is the catalog side: listing, import/export, question editing
// and the user's progress report.
type QuizS struct {
	repo RepositoryI
	cfg  config.QuizConfig
	log  *zap.Logger
}

func NewQuizService(repo RepositoryI, cfg config.QuizConfig, log *zap.Logger) *QuizS {
	return &QuizS{
		repo: repo,
		cfg:  cfg,
		log:  log,
	}
}

// QuizPage lists one page of the catalog, marking each quiz the user has
// an interrupted or a finished attempt on.
func (q *QuizS) QuizPage(ctx context.Context, userID int64, page int) (models.QuizPage, error) {
	total, err := q.repo.CountQuizzes(ctx)
	if err != nil {
		return models.QuizPage{}, err
	}

	totalPages := (total + q.cfg.PageSize - 1) / q.cfg.PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 0 {
		page = 0
	}
	if page >= totalPages {
		page = totalPages - 1
	}

	quizzes, err := q.repo.Quizzes(ctx, page*q.cfg.PageSize, q.cfg.PageSize)
	if err != nil {
		return models.QuizPage{}, err
	}

	pending, err := q.repo.PendingQuizIDs(ctx, userID)
	if err != nil {
		return models.QuizPage{}, err
	}
	finished, err := q.repo.FinishedQuizIDs(ctx, userID)
	if err != nil {
		return models.QuizPage{}, err
	}

	pendingSet := make(map[int64]bool, len(pending))
	for _, id := range pending {
		pendingSet[id] = true
	}
	finishedSet := make(map[int64]bool, len(finished))
	for _, id := range finished {
		finishedSet[id] = true
	}

	result := models.QuizPage{Page: page, TotalPages: totalPages}
	for _, quiz := range quizzes {
		result.Items = append(result.Items, models.QuizListItem{
			Quiz:     quiz,
			Pending:  pendingSet[quiz.ID],
			Finished: finishedSet[quiz.ID],
		})
	}

	return result, nil
}

// ParseQuizJSON accepts either a bare question array or a full quiz
// object with metadata.
func ParseQuizJSON(raw []byte) (models.QuizPayload, error) {
	var payload models.QuizPayload
	if err := json.Unmarshal(raw, &payload); err == nil && len(payload.Questions) > 0 {
		return payload, nil
	}

	var questions []models.QuestionPayload
	if err := json.Unmarshal(raw, &questions); err != nil {
		return models.QuizPayload{}, fmt.Errorf("invalid quiz JSON: %w", err)
	}
	if len(questions) == 0 {
		return models.QuizPayload{}, errors.New("quiz JSON has no questions")
	}
	return models.QuizPayload{Questions: questions}, nil
}

// CreateQuizJSON imports a quiz from its JSON exchange form. The title
// and description given by the user win over the ones embedded in the
// payload. Returns the new quiz id and its question count.
func (q *QuizS) CreateQuizJSON(ctx context.Context, title, description string, raw []byte) (int64, int, error) {
	payload, err := ParseQuizJSON(raw)
	if err != nil {
		return 0, 0, err
	}

	if title = strings.TrimSpace(title); title != "" {
		payload.Title = title
	}
	if description = strings.TrimSpace(description); description != "" {
		payload.Description = description
	}
	if payload.Title == "" {
		return 0, 0, errors.New("quiz needs a title")
	}

	quizID, err := q.repo.CreateQuiz(ctx, payload)
	if err != nil {
		q.log.Warn("failed to import quiz", zap.String("title", payload.Title), zap.Error(err))
		return 0, 0, err
	}

	q.log.Info("quiz imported", zap.Int64("quiz_id", quizID), zap.Int("questions", len(payload.Questions)))

	return quizID, len(payload.Questions), nil
}

func (q *QuizS) QuizTitle(ctx context.Context, quizID int64) (string, error) {
	return q.repo.QuizTitle(ctx, quizID)
}

func (q *QuizS) DeleteQuiz(ctx context.Context, quizID int64) error {
	return q.repo.DeleteQuiz(ctx, quizID)
}

// ExportQuiz renders the quiz back into its JSON exchange form, with a
// filesystem-friendly filename derived from the title.
func (q *QuizS) ExportQuiz(ctx context.Context, quizID int64) (string, []byte, error) {
	payload, err := q.repo.QuizAsPayload(ctx, quizID)
	if err != nil {
		return "", nil, err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode quiz %d: %w", quizID, err)
	}

	return exportFilename(payload.Title), data, nil
}

func exportFilename(title string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			sb.WriteRune('_')
		}
	}
	name := sb.String()
	if name == "" {
		name = "test"
	}
	return name + ".json"
}

// QuestionJSON renders one question in its editable JSON form.
func (q *QuizS) QuestionJSON(ctx context.Context, questionID int64) (string, error) {
	question, err := q.repo.QuestionByID(ctx, questionID)
	if err != nil {
		return "", err
	}

	payload := models.QuestionPayload{
		Text:        question.Text,
		Options:     question.Options,
		Explanation: question.Explanation.String,
	}
	if question.Block.Valid {
		block := question.Block.Int64
		payload.Block = &block
	}
	if question.Topic.Valid {
		topic := question.Topic.Int64
		payload.Topic = &topic
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode question %d: %w", questionID, err)
	}
	return string(data), nil
}

// UpdateQuestionJSON applies an edited JSON form to the stored question
// and returns the updated entity for live-session synchronization.
func (q *QuizS) UpdateQuestionJSON(ctx context.Context, questionID int64, raw []byte) (models.Question, error) {
	var payload models.QuestionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return models.Question{}, fmt.Errorf("invalid question JSON: %w", err)
	}

	question, err := q.repo.UpdateQuestion(ctx, questionID, payload)
	if err != nil {
		return models.Question{}, err
	}

	q.log.Info("question updated", zap.Int64("question_id", questionID))

	return question, nil
}

func (q *QuizS) DeleteQuestion(ctx context.Context, questionID int64) error {
	if err := q.repo.DeleteQuestion(ctx, questionID); err != nil {
		return err
	}
	q.log.Info("question deleted", zap.Int64("question_id", questionID))
	return nil
}

func (q *QuizS) Explanation(ctx context.Context, questionID int64) (string, error) {
	return q.repo.Explanation(ctx, questionID)
}

func (q *QuizS) UpdateExplanation(ctx context.Context, questionID int64, explanation string) error {
	return q.repo.UpdateExplanation(ctx, questionID, explanation)
}

// ToggleFavorite flips the user's favorite mark and returns the new
// state.
func (q *QuizS) ToggleFavorite(ctx context.Context, userID, questionID int64) (bool, error) {
	favorite, err := q.repo.IsFavorite(ctx, userID, questionID)
	if err != nil {
		return false, err
	}

	if favorite {
		if err := q.repo.RemoveFavorite(ctx, userID, questionID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := q.repo.AddFavorite(ctx, userID, questionID); err != nil {
		return false, err
	}
	return true, nil
}

func (q *QuizS) IsFavorite(ctx context.Context, userID, questionID int64) (bool, error) {
	return q.repo.IsFavorite(ctx, userID, questionID)
}

// Progress formats the user's study report: aggregate totals over the
// latest finished attempt per quiz, today's activity and the most recent
// attempts.
func (q *QuizS) Progress(ctx context.Context, userID int64) (string, error) {
	totals, err := q.repo.LatestFinishedTotals(ctx, userID)
	if err != nil {
		return "", err
	}
	today, err := q.repo.AnsweredToday(ctx, userID)
	if err != nil {
		return "", err
	}
	history, err := q.repo.QuizAttemptHistory(ctx, userID, 5)
	if err != nil {
		return "", err
	}

	return progressFormat(totals, today, history), nil
}

func progressFormat(totals models.ProgressTotals, today int, history []models.AttemptRecord) string {
	var sb strings.Builder

	sb.WriteString("📊 *Tu progreso*\n\n")

	sb.WriteString("✅ Aciertos: *")
	sb.WriteString(strconv.Itoa(totals.Correct))
	sb.WriteString("*\n")

	sb.WriteString("❌ Fallos: *")
	sb.WriteString(strconv.Itoa(totals.Wrong))
	sb.WriteString("*\n")

	sb.WriteString("📅 Preguntas hoy: *")
	sb.WriteString(strconv.Itoa(today))
	sb.WriteString("*\n")

	if len(history) > 0 {
		sb.WriteString("\n🕑 *Últimos tests*\n")
		for _, record := range history {
			grade := Grade(record.Correct, record.Wrong, record.Correct+record.Wrong)
			sb.WriteString("· ")
			sb.WriteString(record.Title)
			sb.WriteString(": ")
			sb.WriteString(strconv.Itoa(record.Correct))
			sb.WriteString("/")
			sb.WriteString(strconv.Itoa(record.Correct + record.Wrong))
			sb.WriteString(" (nota ")
			sb.WriteString(strconv.FormatFloat(grade, 'f', 2, 64))
			sb.WriteString(")\n")
		}
	}

	return sb.String()
}
