package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/AngelaMMoreno/testbot.git/internal/config"
	"github.com/AngelaMMoreno/testbot.git/internal/models"
	mock_service "github.com/AngelaMMoreno/testbot.git/internal/service/mock"
	"github.com/AngelaMMoreno/testbot.git/internal/storage/cache"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSessionServiceMock(ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *SessionS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	quizCfg := config.QuizConfig{
		QuestionTimeout:   time.Minute,
		FailuresTestSize:  40,
		FavoritesTestSize: 40,
		PageSize:          20,
	}
	examCfg := config.ExamConfig{
		QuizID:        1,
		Part1Size:     2,
		Part2Weight:   4,
		ScaleMax:      100,
		FloorFraction: 0.3,
		ReferenceRank: 3500,
	}

	return NewSessionService(repo, cache.NewCache(), quizCfg, examCfg, zap.NewNop())
}

func sourceQuestions(n int) []models.Question {
	questions := make([]models.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, models.Question{
			ID:      int64(i),
			Text:    "pregunta " + strconv.Itoa(i),
			Options: []string{"correcta " + strconv.Itoa(i), "mala", "peor"},
		})
	}
	return questions
}

func choiceOf(t *testing.T, prompt *models.Prompt, text string) int {
	t.Helper()
	for i, option := range prompt.Options {
		if option == text {
			return i
		}
	}
	t.Fatalf("option %q not presented", text)
	return -1
}

func TestSessionS_fullQuizRun(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().ClosePending(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(sourceQuestions(2), nil)
		repo.EXPECT().CreateAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(int64(9), nil)

		repo.EXPECT().ClearFailure(gomock.Any(), int64(1), int64(1)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), models.AttemptItem{
			AttemptID: 9, QuestionID: 1, Selected: "correcta 1", IsCorrect: true,
		}).Return(nil)

		repo.EXPECT().RecordFailure(gomock.Any(), int64(1), int64(2)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), models.AttemptItem{
			AttemptID: 9, QuestionID: 2, Selected: "mala", IsCorrect: false,
		}).Return(nil)

		repo.EXPECT().FinishAttempt(gomock.Any(), int64(9), 1, 1).Return(nil)
	})

	ctx := context.Background()

	step, err := svc.Start(ctx, 1, 100, 5, models.KindQuiz)
	require.NoError(t, err)
	require.NotNil(t, step.Prompt)
	assert.Equal(t, 1, step.Prompt.Number)
	assert.Equal(t, 2, step.Prompt.Total)
	assert.False(t, step.Prompt.CanSkip)
	assert.ElementsMatch(t, []string{"correcta 1", "mala", "peor"}, step.Prompt.Options)

	step, err = svc.Answer(ctx, 1, choiceOf(t, step.Prompt, "correcta 1"))
	require.NoError(t, err)
	require.NotNil(t, step.Feedback)
	assert.True(t, step.Feedback.Correct)

	// A duplicate submission must change nothing.
	_, err = svc.Answer(ctx, 1, 0)
	require.ErrorIs(t, err, ErrAlreadyResolved)

	step, err = svc.Advance(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, step.Prompt)
	assert.Equal(t, 2, step.Prompt.Number)

	step, err = svc.Answer(ctx, 1, choiceOf(t, step.Prompt, "mala"))
	require.NoError(t, err)
	require.NotNil(t, step.Feedback)
	assert.False(t, step.Feedback.Correct)
	assert.Equal(t, "correcta 2", step.Feedback.CorrectText)

	step, err = svc.Advance(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, step.Summary)
	assert.Equal(t, 1, step.Summary.OK)
	assert.Equal(t, 1, step.Summary.Fail)
	assert.Equal(t, 2, step.Summary.Total)
	assert.InDelta(t, Grade(1, 1, 2), step.Summary.Grade, 1e-9)

	assert.False(t, svc.HasSession(1))
}

func TestSessionS_Answer_noSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, nil)

	_, err := svc.Answer(context.Background(), 1, 0)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestSessionS_Start_emptySource(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().ClosePending(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(nil, nil)
	})

	_, err := svc.Start(context.Background(), 1, 100, 5, models.KindQuiz)
	require.ErrorIs(t, err, ErrEmptySource)
	assert.False(t, svc.HasSession(1))
}

func TestSessionS_timeout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().ClosePending(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(sourceQuestions(2), nil)
		repo.EXPECT().CreateAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(int64(9), nil)

		repo.EXPECT().RecordFailure(gomock.Any(), int64(1), int64(1)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), models.AttemptItem{
			AttemptID: 9, QuestionID: 1, Selected: models.NoAnswer, IsCorrect: false,
		}).Return(nil)
	})

	var events []models.TimeoutEvent
	svc.OnTimeout(func(event models.TimeoutEvent) {
		events = append(events, event)
	})

	step, err := svc.Start(context.Background(), 1, 100, 5, models.KindQuiz)
	require.NoError(t, err)

	svc.timeUp(1, 0, step.Prompt.QuestionID)

	require.Len(t, events, 1)
	assert.Equal(t, int64(100), events[0].ChatID)
	assert.Equal(t, "correcta 1", events[0].CorrectText)
	require.NotNil(t, events[0].Step.Feedback)
	assert.Equal(t, models.NoAnswer, events[0].Step.Feedback.Chosen)

	// The deadline has resolved the question; a late answer is rejected.
	_, err = svc.Answer(context.Background(), 1, 0)
	require.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestSessionS_staleTimeoutIgnored(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().ClosePending(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(sourceQuestions(2), nil)
		repo.EXPECT().CreateAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(int64(9), nil)

		repo.EXPECT().ClearFailure(gomock.Any(), int64(1), int64(1)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(nil)
	})

	fired := false
	svc.OnTimeout(func(models.TimeoutEvent) { fired = true })

	ctx := context.Background()

	step, err := svc.Start(ctx, 1, 100, 5, models.KindQuiz)
	require.NoError(t, err)

	_, err = svc.Answer(ctx, 1, choiceOf(t, step.Prompt, "correcta 1"))
	require.NoError(t, err)

	// A timer that lost the race against the manual answer must not
	// double-count: no second item, no counter change, no notification.
	svc.timeUp(1, 0, step.Prompt.QuestionID)
	assert.False(t, fired)
}

func TestSessionS_examSkip(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().ClosePending(gomock.Any(), int64(1), int64(0), models.KindExam).Return(nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(1)).Return(sourceQuestions(3), nil)
		repo.EXPECT().CreateAttempt(gomock.Any(), int64(1), int64(0), models.KindExam).Return(int64(9), nil)

		repo.EXPECT().RecordFailure(gomock.Any(), int64(1), int64(1)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), models.AttemptItem{
			AttemptID: 9, QuestionID: 1, Selected: models.NoAnswer, IsCorrect: false,
		}).Return(nil)

		repo.EXPECT().ClearFailure(gomock.Any(), int64(1), int64(2)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(nil)

		repo.EXPECT().ClearFailure(gomock.Any(), int64(1), int64(3)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(nil)

		repo.EXPECT().FinishAttempt(gomock.Any(), int64(9), 2, 0).Return(nil)
	})

	ctx := context.Background()

	step, err := svc.Start(ctx, 1, 100, 0, models.KindExam)
	require.NoError(t, err)
	assert.True(t, step.Prompt.CanSkip)

	step, err = svc.Skip(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, step.Feedback)
	assert.Equal(t, models.NoAnswer, step.Feedback.Chosen)

	for i := 2; i <= 3; i++ {
		step, err = svc.Advance(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, step.Prompt)

		step, err = svc.Answer(ctx, 1, choiceOf(t, step.Prompt, "correcta "+strconv.Itoa(i)))
		require.NoError(t, err)
	}

	step, err = svc.Advance(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, step.Summary)
	assert.Equal(t, 2, step.Summary.OK)
	assert.Equal(t, 0, step.Summary.Fail)
	assert.Equal(t, 1, step.Summary.Unanswered)

	require.NotNil(t, step.Summary.Exam)
	// Part 1 holds the first two questions, question 3 falls into part 2.
	assert.Equal(t, 1, step.Summary.Exam.Part1Correct)
	assert.Equal(t, 1, step.Summary.Exam.Part2Correct)
	assert.InDelta(t, 1.0+4.0, step.Summary.Exam.DirectScore, 1e-9)
	assert.InDelta(t, 2.0+4.0, step.Summary.Exam.RawMax, 1e-9)
}

func TestSessionS_skipOutsideExam(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().ClosePending(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(sourceQuestions(1), nil)
		repo.EXPECT().CreateAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(int64(9), nil)
	})

	_, err := svc.Start(context.Background(), 1, 100, 5, models.KindQuiz)
	require.NoError(t, err)

	_, err = svc.Skip(context.Background(), 1)
	require.Error(t, err)
}

func TestSessionS_Abandon(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().ClosePending(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(sourceQuestions(3), nil)
		repo.EXPECT().CreateAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(int64(9), nil)

		repo.EXPECT().ClearFailure(gomock.Any(), int64(1), int64(1)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(nil)

		repo.EXPECT().FinishAttempt(gomock.Any(), int64(9), 1, 0).Return(nil)
	})

	ctx := context.Background()

	step, err := svc.Start(ctx, 1, 100, 5, models.KindQuiz)
	require.NoError(t, err)

	_, err = svc.Answer(ctx, 1, choiceOf(t, step.Prompt, "correcta 1"))
	require.NoError(t, err)

	step, err = svc.Abandon(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, step.Summary)
	assert.Equal(t, 1, step.Summary.OK)
	assert.False(t, svc.HasSession(1))
}
