package service

import (
	"context"
	"testing"

	"github.com/AngelaMMoreno/testbot.git/internal/models"
	"github.com/AngelaMMoreno/testbot.git/internal/repository"
	mock_service "github.com/AngelaMMoreno/testbot.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionS_Resume_rebuildsFromAttempt(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().PendingAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).
			Return(models.Attempt{ID: 9, UserID: 1, Kind: models.KindQuiz}, nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(sourceQuestions(4), nil)
		repo.EXPECT().Items(gomock.Any(), int64(9)).Return([]models.AttemptItem{
			{AttemptID: 9, QuestionID: 1, Selected: "correcta 1", IsCorrect: true},
			{AttemptID: 9, QuestionID: 2, Selected: "mala", IsCorrect: false},
		}, nil)

		repo.EXPECT().ClearFailure(gomock.Any(), int64(1), int64(3)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().ClearFailure(gomock.Any(), int64(1), int64(4)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().FinishAttempt(gomock.Any(), int64(9), 3, 1).Return(nil)
	})

	ctx := context.Background()

	step, err := svc.Resume(ctx, 1, 100, 5, models.KindQuiz)
	require.NoError(t, err)
	require.NotNil(t, step.Prompt)

	// The remaining list is the source minus the two answered questions,
	// in source order, and the position display accounts for them.
	assert.Equal(t, int64(3), step.Prompt.QuestionID)
	assert.Equal(t, 3, step.Prompt.Number)
	assert.Equal(t, 4, step.Prompt.Total)

	step, err = svc.Answer(ctx, 1, choiceOf(t, step.Prompt, "correcta 3"))
	require.NoError(t, err)

	step, err = svc.Advance(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, step.Prompt)
	assert.Equal(t, int64(4), step.Prompt.QuestionID)

	step, err = svc.Answer(ctx, 1, choiceOf(t, step.Prompt, "correcta 4"))
	require.NoError(t, err)

	step, err = svc.Advance(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, step.Summary)

	// Replayed counters carry over: 1 ok + 1 fail before the restart,
	// 2 ok after.
	assert.Equal(t, 3, step.Summary.OK)
	assert.Equal(t, 1, step.Summary.Fail)
	assert.Equal(t, 4, step.Summary.Total)
}

func TestSessionS_Resume_alreadyComplete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().PendingAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).
			Return(models.Attempt{ID: 9, UserID: 1, Kind: models.KindQuiz}, nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(sourceQuestions(2), nil)
		repo.EXPECT().Items(gomock.Any(), int64(9)).Return([]models.AttemptItem{
			{AttemptID: 9, QuestionID: 1, Selected: "correcta 1", IsCorrect: true},
			{AttemptID: 9, QuestionID: 2, Selected: "correcta 2", IsCorrect: true},
		}, nil)
		repo.EXPECT().FinishAttempt(gomock.Any(), int64(9), 2, 0).Return(nil)
	})

	step, err := svc.Resume(context.Background(), 1, 100, 5, models.KindQuiz)
	require.NoError(t, err)

	// Every question was already recorded: the run closes immediately.
	require.NotNil(t, step.Summary)
	assert.Equal(t, 2, step.Summary.OK)
	assert.False(t, svc.HasSession(1))
}

func TestSessionS_Resume_nothingToResume(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().PendingAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).
			Return(models.Attempt{}, repository.ErrNotFound)
	})

	_, err := svc.Resume(context.Background(), 1, 100, 5, models.KindQuiz)
	require.ErrorIs(t, err, ErrNothingToResume)
}

func TestSessionS_Resume_sourceDeleted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().PendingAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).
			Return(models.Attempt{ID: 9, UserID: 1, Correct: 3, Wrong: 2}, nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(nil, nil)

		// The orphaned attempt is closed with the counts it had.
		repo.EXPECT().FinishAttempt(gomock.Any(), int64(9), 3, 2).Return(nil)
	})

	_, err := svc.Resume(context.Background(), 1, 100, 5, models.KindQuiz)
	require.ErrorIs(t, err, ErrNothingToResume)
}

func TestSessionS_Resumable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().PendingAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).
			Return(models.Attempt{ID: 9}, nil)
		repo.EXPECT().PendingAttempt(gomock.Any(), int64(2), int64(5), models.KindQuiz).
			Return(models.Attempt{}, repository.ErrNotFound)
	})

	resumable, err := svc.Resumable(context.Background(), 1, 5, models.KindQuiz)
	require.NoError(t, err)
	assert.True(t, resumable)

	resumable, err = svc.Resumable(context.Background(), 2, 5, models.KindQuiz)
	require.NoError(t, err)
	assert.False(t, resumable)
}

func TestSessionS_StartFresh_discardsDanglingAttempt(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		first := repo.EXPECT().PendingAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).
			Return(models.Attempt{ID: 9, UserID: 1}, nil)
		repo.EXPECT().DeleteAttempt(gomock.Any(), int64(9)).Return(nil)
		repo.EXPECT().PendingAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).
			Return(models.Attempt{}, repository.ErrNotFound).After(first)

		repo.EXPECT().ClosePending(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(sourceQuestions(2), nil)
		repo.EXPECT().CreateAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(int64(10), nil)
	})

	step, err := svc.StartFresh(context.Background(), 1, 100, 5, models.KindQuiz)
	require.NoError(t, err)
	require.NotNil(t, step.Prompt)
	assert.Equal(t, 1, step.Prompt.Number)
	assert.Equal(t, 2, step.Prompt.Total)
}

func TestSessionS_Resume_examReplaysPartCounters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().PendingAttempt(gomock.Any(), int64(1), int64(0), models.KindExam).
			Return(models.Attempt{ID: 9, UserID: 1, Kind: models.KindExam}, nil)
		// Exam sources always come from the configured exam quiz.
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(1)).Return(sourceQuestions(3), nil)
		repo.EXPECT().Items(gomock.Any(), int64(9)).Return([]models.AttemptItem{
			{AttemptID: 9, QuestionID: 1, Selected: "correcta 1", IsCorrect: true},
			{AttemptID: 9, QuestionID: 2, Selected: models.NoAnswer, IsCorrect: false},
		}, nil)

		repo.EXPECT().ClearFailure(gomock.Any(), int64(1), int64(3)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().FinishAttempt(gomock.Any(), int64(9), 2, 0).Return(nil)
	})

	ctx := context.Background()

	step, err := svc.Resume(ctx, 1, 100, 0, models.KindExam)
	require.NoError(t, err)
	require.NotNil(t, step.Prompt)
	assert.Equal(t, int64(3), step.Prompt.QuestionID)

	step, err = svc.Answer(ctx, 1, choiceOf(t, step.Prompt, "correcta 3"))
	require.NoError(t, err)

	step, err = svc.Advance(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, step.Summary)
	require.NotNil(t, step.Summary.Exam)

	// Question 1 replays into part 1; the timed-out question 2 stays out
	// of both parts; question 3 lands in part 2 by its original position.
	assert.Equal(t, 1, step.Summary.Exam.Part1Correct)
	assert.Equal(t, 0, step.Summary.Exam.Part1Wrong)
	assert.Equal(t, 1, step.Summary.Exam.Part2Correct)
	assert.Equal(t, 1, step.Summary.Exam.Unanswered)
}
