package service

import (
	"context"

	"github.com/AngelaMMoreno/testbot.git/internal/models"
	"go.uber.org/zap"
)

// SyncEditedQuestion propagates a content edit into the user's live
// session. Copies of the question in the remaining source are replaced;
// if the edited question is the one currently presented, it is
// re-shuffled and re-issued, and a resolution it already received in
// this run is reverted first so it cannot be graded twice.
func (s *SessionS) SyncEditedQuestion(ctx context.Context, userID int64, question models.Question) (*models.Prompt, error) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	session, exists := s.sessions.Session(userID)
	if !exists {
		return nil, nil
	}

	for i := range session.Questions {
		if session.Questions[i].ID == question.ID {
			session.Questions[i] = question
		}
	}

	if session.Current == nil || session.Current.QuestionID != question.ID {
		return nil, nil
	}

	if outcome, resolved := session.Resolved[question.ID]; resolved {
		s.revertResolutionLocked(ctx, session, question.ID, outcome)
	}

	return s.presentLocked(session), nil
}

// revertResolutionLocked undoes one question's grading contribution:
// counters, the attempt item, and the failure mark, which is recomputed
// from the remaining recorded items rather than patched.
func (s *SessionS) revertResolutionLocked(ctx context.Context, session *models.Session, questionID int64, outcome models.Outcome) {
	switch outcome {
	case models.OutcomeCorrect:
		session.OK--
	case models.OutcomeWrong:
		session.Fail--
	case models.OutcomeUnanswered:
		if session.Kind == models.KindExam {
			session.Unanswered--
		} else {
			session.Fail--
		}
	}

	if session.Exam != nil && outcome != models.OutcomeUnanswered {
		plan := session.Exam
		switch {
		case plan.InPart1(questionID) && outcome == models.OutcomeCorrect:
			plan.P1Correct--
		case plan.InPart1(questionID):
			plan.P1Wrong--
		case outcome == models.OutcomeCorrect:
			plan.P2Correct--
		default:
			plan.P2Wrong--
		}
	}

	delete(session.Resolved, questionID)
	session.AwaitingAdvance = false

	if err := s.repo.RemoveItem(ctx, session.AttemptID, questionID); err != nil {
		s.log.Warn("failed to remove attempt item", zap.Int64("attempt_id", session.AttemptID), zap.Error(err))
	}
	if err := s.repo.RecomputeFailure(ctx, session.UserID, questionID); err != nil {
		s.log.Warn("failed to recompute failure", zap.Int64("question_id", questionID), zap.Error(err))
	}
}

// DropDeletedQuestion removes a deleted question from the user's live
// session. A not-yet-reached copy leaves the remaining source and the
// grading denominator; the current question additionally advances
// without waiting for an answer. Returns the next step when the current
// question was dropped, nil otherwise.
func (s *SessionS) DropDeletedQuestion(ctx context.Context, userID, questionID int64) (*models.Step, error) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	session, exists := s.sessions.Session(userID)
	if !exists {
		return nil, nil
	}

	isCurrent := session.Current != nil && session.Current.QuestionID == questionID

	if isCurrent && session.AwaitingAdvance {
		// Already resolved, just not advanced past. Its contribution
		// stands; move on without shrinking the denominator.
		session.Cursor++
		session.AwaitingAdvance = false
		session.Current = nil
	} else {
		index := -1
		for i := session.Cursor; i < len(session.Questions); i++ {
			if session.Questions[i].ID == questionID {
				index = i
				break
			}
		}
		if index < 0 {
			return nil, nil
		}

		session.Questions = append(session.Questions[:index], session.Questions[index+1:]...)
		session.TotalOriginal--

		if !isCurrent {
			return nil, nil
		}

		s.timers.cancel(userID)
		session.Current = nil
		session.AwaitingAdvance = false
	}

	if session.Exhausted() {
		summary, err := s.finishLocked(ctx, session)
		if err != nil {
			return nil, err
		}
		return &models.Step{Summary: summary}, nil
	}

	return &models.Step{Prompt: s.presentLocked(session)}, nil
}

// DropDeletedQuiz sweeps every live session over the deleted quiz and
// closes it with the counters it had.
func (s *SessionS) DropDeletedQuiz(ctx context.Context, quizID int64) {
	for _, userID := range s.sessions.UserIDs() {
		lock := s.sessions.UserLock(userID)
		lock.Lock()

		if session, exists := s.sessions.Session(userID); exists && session.QuizID == quizID {
			if err := s.closeLocked(ctx, session); err != nil {
				s.log.Warn("failed to close session of deleted quiz",
					zap.Int64("user_id", userID), zap.Int64("quiz_id", quizID), zap.Error(err))
			}
		}

		lock.Unlock()
	}
}
