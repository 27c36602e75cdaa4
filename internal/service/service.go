package service

import (
	"context"
	"errors"

	"github.com/AngelaMMoreno/testbot.git/internal/config"
	"github.com/AngelaMMoreno/testbot.git/internal/models"
	"github.com/AngelaMMoreno/testbot.git/internal/storage/cache"
	"go.uber.org/zap"
)

var (
	ErrNoSession       = errors.New("no active session")
	ErrAlreadyResolved = errors.New("question already resolved")
	ErrEmptySource     = errors.New("no questions to run")
	ErrNothingToResume = errors.New("nothing to resume")
)

type QuestionRI interface {
	QuizQuestions(ctx context.Context, quizID int64) ([]models.Question, error)
	QuestionByID(ctx context.Context, id int64) (models.Question, error)
	FailedQuestions(ctx context.Context, userID int64, limit int) ([]models.Question, error)
	FavoriteQuestions(ctx context.Context, userID int64, limit int) ([]models.Question, error)
	Quizzes(ctx context.Context, offset, limit int) ([]models.Quiz, error)
	CountQuizzes(ctx context.Context) (int, error)
	QuizTitle(ctx context.Context, quizID int64) (string, error)
	CreateQuiz(ctx context.Context, payload models.QuizPayload) (int64, error)
	DeleteQuiz(ctx context.Context, quizID int64) error
	DeleteQuestion(ctx context.Context, questionID int64) error
	UpdateQuestion(ctx context.Context, questionID int64, payload models.QuestionPayload) (models.Question, error)
	QuizAsPayload(ctx context.Context, quizID int64) (models.QuizPayload, error)
	Explanation(ctx context.Context, questionID int64) (string, error)
	UpdateExplanation(ctx context.Context, questionID int64, explanation string) error
}

type MarkRI interface {
	RecordFailure(ctx context.Context, userID, questionID int64) error
	ClearFailure(ctx context.Context, userID, questionID int64) error
	RecomputeFailure(ctx context.Context, userID, questionID int64) error
	IsFavorite(ctx context.Context, userID, questionID int64) (bool, error)
	AddFavorite(ctx context.Context, userID, questionID int64) error
	RemoveFavorite(ctx context.Context, userID, questionID int64) error
}

type AttemptRI interface {
	CreateAttempt(ctx context.Context, userID, quizID int64, kind models.AttemptKind) (int64, error)
	FinishAttempt(ctx context.Context, attemptID int64, correct, wrong int) error
	DeleteAttempt(ctx context.Context, attemptID int64) error
	AddItem(ctx context.Context, item models.AttemptItem) error
	RemoveItem(ctx context.Context, attemptID, questionID int64) error
	Items(ctx context.Context, attemptID int64) ([]models.AttemptItem, error)
	PendingAttempt(ctx context.Context, userID, quizID int64, kind models.AttemptKind) (models.Attempt, error)
	ClosePending(ctx context.Context, userID, quizID int64, kind models.AttemptKind) error
	PendingQuizIDs(ctx context.Context, userID int64) ([]int64, error)
	FinishedQuizIDs(ctx context.Context, userID int64) ([]int64, error)
	LatestFinishedTotals(ctx context.Context, userID int64) (models.ProgressTotals, error)
	QuizAttemptHistory(ctx context.Context, userID int64, limit int) ([]models.AttemptRecord, error)
	AnsweredToday(ctx context.Context, userID int64) (int, error)
}

type RepositoryI interface {
	QuestionRI
	MarkRI
	AttemptRI
}

type Service struct {
	*SessionS
	*QuizS
}

func InitServices(repo RepositoryI, sessions *cache.Cache, quizCfg config.QuizConfig, examCfg config.ExamConfig, log *zap.Logger) *Service {
	return &Service{
		SessionS: NewSessionService(repo, sessions, quizCfg, examCfg, log),
		QuizS:    NewQuizService(repo, quizCfg, log),
	}
}
