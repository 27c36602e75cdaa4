package service

import (
	"context"
	"math/rand"

	"github.com/AngelaMMoreno/testbot.git/internal/models"
)

// loadSource resolves a kind to its ordered question list. Questions
// with fewer than two options are filtered out.
func (s *SessionS) loadSource(ctx context.Context, userID, quizID int64, kind models.AttemptKind) ([]models.Question, error) {
	var (
		questions []models.Question
		err       error
	)

	switch kind {
	case models.KindQuiz:
		questions, err = s.repo.QuizQuestions(ctx, quizID)
	case models.KindFailures:
		questions, err = s.repo.FailedQuestions(ctx, userID, s.cfg.FailuresTestSize)
	case models.KindFavorites:
		questions, err = s.repo.FavoriteQuestions(ctx, userID, s.cfg.FavoritesTestSize)
	case models.KindExam:
		questions, err = s.repo.QuizQuestions(ctx, s.examCfg.QuizID)
	}
	if err != nil {
		return nil, err
	}

	usable := questions[:0]
	for _, question := range questions {
		if question.Usable() {
			usable = append(usable, question)
		}
	}
	return usable, nil
}

func (s *SessionS) newExamPlan(questions []models.Question) *models.ExamPlan {
	plan := &models.ExamPlan{
		Part1Size:     s.examCfg.Part1Size,
		Part2Weight:   s.examCfg.Part2Weight,
		ScaleMax:      s.examCfg.ScaleMax,
		FloorFraction: s.examCfg.FloorFraction,
		ReferenceRank: s.examCfg.ReferenceRank,
		Tables:        s.examCfg.Tables,
		Position:      make(map[int64]int, len(questions)),
	}
	for i, question := range questions {
		plan.Position[question.ID] = i
	}
	return plan
}

// presentLocked issues the question at the cursor: a fresh permutation
// of its options for this presentation only, plus an armed deadline. The
// stored question is never mutated.
func (s *SessionS) presentLocked(session *models.Session) *models.Prompt {
	question := session.Questions[session.Cursor]

	perm := rand.Perm(len(question.Options))
	options := make([]string, len(question.Options))
	correctIndex := 0
	for dst, src := range perm {
		options[dst] = question.Options[src]
		if src == 0 {
			correctIndex = dst
		}
	}

	session.Current = &models.Presented{
		QuestionID:   question.ID,
		Cursor:       session.Cursor,
		Options:      options,
		CorrectIndex: correctIndex,
	}
	session.AwaitingAdvance = false

	userID, cursor, questionID := session.UserID, session.Cursor, question.ID
	s.timers.arm(userID, s.cfg.QuestionTimeout, func() {
		s.timeUp(userID, cursor, questionID)
	})

	return s.promptLocked(session)
}

// promptLocked rebuilds the view of the already-presented question,
// keeping the permutation and the running deadline.
func (s *SessionS) promptLocked(session *models.Session) *models.Prompt {
	question := session.Questions[session.Cursor]
	return &models.Prompt{
		QuestionID: question.ID,
		Number:     session.AnsweredBefore + session.Cursor + 1,
		Total:      session.TotalOriginal,
		Text:       question.Text,
		Options:    session.Current.Options,
		CanSkip:    session.Kind == models.KindExam,
	}
}
