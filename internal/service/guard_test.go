package service

import (
	"context"
	"testing"

	"github.com/AngelaMMoreno/testbot.git/internal/models"
	mock_service "github.com/AngelaMMoreno/testbot.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionS_SyncEditedQuestion_revertsAnsweredCurrent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().ClosePending(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(sourceQuestions(2), nil)
		repo.EXPECT().CreateAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(int64(9), nil)

		// First resolution of question 1.
		repo.EXPECT().ClearFailure(gomock.Any(), int64(1), int64(1)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(nil)

		// The edit reverts it.
		repo.EXPECT().RemoveItem(gomock.Any(), int64(9), int64(1)).Return(nil)
		repo.EXPECT().RecomputeFailure(gomock.Any(), int64(1), int64(1)).Return(nil)

		// Second resolution after re-presentation, now wrong.
		repo.EXPECT().RecordFailure(gomock.Any(), int64(1), int64(1)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), models.AttemptItem{
			AttemptID: 9, QuestionID: 1, Selected: "regular", IsCorrect: false,
		}).Return(nil)
	})

	ctx := context.Background()

	step, err := svc.Start(ctx, 1, 100, 5, models.KindQuiz)
	require.NoError(t, err)

	_, err = svc.Answer(ctx, 1, choiceOf(t, step.Prompt, "correcta 1"))
	require.NoError(t, err)

	edited := models.Question{
		ID:      1,
		Text:    "pregunta 1 corregida",
		Options: []string{"nueva correcta", "regular", "peor"},
	}
	prompt, err := svc.SyncEditedQuestion(ctx, 1, edited)
	require.NoError(t, err)
	require.NotNil(t, prompt)

	// Re-issued with the new content, unresolved again.
	assert.Equal(t, "pregunta 1 corregida", prompt.Text)
	assert.ElementsMatch(t, []string{"nueva correcta", "regular", "peor"}, prompt.Options)
	assert.Equal(t, 1, prompt.Number)

	step, err = svc.Answer(ctx, 1, choiceOf(t, prompt, "regular"))
	require.NoError(t, err)
	require.NotNil(t, step.Feedback)
	assert.False(t, step.Feedback.Correct)
	assert.Equal(t, "nueva correcta", step.Feedback.CorrectText)
}

func TestSessionS_SyncEditedQuestion_notCurrent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().ClosePending(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(sourceQuestions(2), nil)
		repo.EXPECT().CreateAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(int64(9), nil)
	})

	ctx := context.Background()

	_, err := svc.Start(ctx, 1, 100, 5, models.KindQuiz)
	require.NoError(t, err)

	// Editing a not-yet-reached question only swaps the copy.
	edited := models.Question{ID: 2, Text: "editada", Options: []string{"sí", "no"}}
	prompt, err := svc.SyncEditedQuestion(ctx, 1, edited)
	require.NoError(t, err)
	assert.Nil(t, prompt)

	// A user with no session is untouched too.
	prompt, err = svc.SyncEditedQuestion(ctx, 2, edited)
	require.NoError(t, err)
	assert.Nil(t, prompt)
}

func TestSessionS_DropDeletedQuestion_current(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().ClosePending(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(sourceQuestions(2), nil)
		repo.EXPECT().CreateAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(int64(9), nil)

		repo.EXPECT().ClearFailure(gomock.Any(), int64(1), int64(2)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().FinishAttempt(gomock.Any(), int64(9), 1, 0).Return(nil)
	})

	ctx := context.Background()

	step, err := svc.Start(ctx, 1, 100, 5, models.KindQuiz)
	require.NoError(t, err)
	require.Equal(t, int64(1), step.Prompt.QuestionID)

	// Deleting the presented question advances without an answer.
	next, err := svc.DropDeletedQuestion(ctx, 1, 1)
	require.NoError(t, err)
	require.NotNil(t, next)
	require.NotNil(t, next.Prompt)
	assert.Equal(t, int64(2), next.Prompt.QuestionID)
	assert.Equal(t, 1, next.Prompt.Total)

	step, err = svc.Answer(ctx, 1, choiceOf(t, next.Prompt, "correcta 2"))
	require.NoError(t, err)

	step, err = svc.Advance(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, step.Summary)

	// The denominator shrank by exactly the deleted question.
	assert.Equal(t, 1, step.Summary.Total)
	assert.InDelta(t, 10.0, step.Summary.Grade, 1e-9)
}

func TestSessionS_DropDeletedQuestion_lastRemaining(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().ClosePending(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(sourceQuestions(1), nil)
		repo.EXPECT().CreateAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(int64(9), nil)
		repo.EXPECT().FinishAttempt(gomock.Any(), int64(9), 0, 0).Return(nil)
	})

	ctx := context.Background()

	_, err := svc.Start(ctx, 1, 100, 5, models.KindQuiz)
	require.NoError(t, err)

	step, err := svc.DropDeletedQuestion(ctx, 1, 1)
	require.NoError(t, err)
	require.NotNil(t, step)
	require.NotNil(t, step.Summary)
	assert.False(t, svc.HasSession(1))
}

func TestSessionS_DropDeletedQuestion_notReached(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().ClosePending(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(sourceQuestions(3), nil)
		repo.EXPECT().CreateAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(int64(9), nil)

		repo.EXPECT().ClearFailure(gomock.Any(), int64(1), int64(1)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().ClearFailure(gomock.Any(), int64(1), int64(3)).Return(nil)
		repo.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().FinishAttempt(gomock.Any(), int64(9), 2, 0).Return(nil)
	})

	ctx := context.Background()

	step, err := svc.Start(ctx, 1, 100, 5, models.KindQuiz)
	require.NoError(t, err)

	// Question 2 disappears before the cursor reaches it.
	next, err := svc.DropDeletedQuestion(ctx, 1, 2)
	require.NoError(t, err)
	assert.Nil(t, next)

	step, err = svc.Answer(ctx, 1, choiceOf(t, step.Prompt, "correcta 1"))
	require.NoError(t, err)

	step, err = svc.Advance(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, step.Prompt)
	assert.Equal(t, int64(3), step.Prompt.QuestionID)

	step, err = svc.Answer(ctx, 1, choiceOf(t, step.Prompt, "correcta 3"))
	require.NoError(t, err)

	step, err = svc.Advance(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, step.Summary)
	assert.Equal(t, 2, step.Summary.Total)
}

func TestSessionS_DropDeletedQuiz(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSessionServiceMock(ctrl, func(repo *mock_service.MockRepositoryI) {
		repo.EXPECT().ClosePending(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(nil)
		repo.EXPECT().QuizQuestions(gomock.Any(), int64(5)).Return(sourceQuestions(2), nil)
		repo.EXPECT().CreateAttempt(gomock.Any(), int64(1), int64(5), models.KindQuiz).Return(int64(9), nil)
		repo.EXPECT().FinishAttempt(gomock.Any(), int64(9), 0, 0).Return(nil)
	})

	ctx := context.Background()

	_, err := svc.Start(ctx, 1, 100, 5, models.KindQuiz)
	require.NoError(t, err)

	svc.DropDeletedQuiz(ctx, 5)
	assert.False(t, svc.HasSession(1))
}
