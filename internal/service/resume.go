package service

import (
	"context"
	"errors"

	"github.com/AngelaMMoreno/testbot.git/internal/models"
	"github.com/AngelaMMoreno/testbot.git/internal/repository"
	"go.uber.org/zap"
)

// Resumable reports whether the user has an interrupted run for the
// (quiz, kind) pair: a live in-memory session, or an open attempt left
// behind by a process restart.
func (s *SessionS) Resumable(ctx context.Context, userID, quizID int64, kind models.AttemptKind) (bool, error) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if session, exists := s.sessions.Session(userID); exists {
		if session.QuizID == quizID && session.Kind == kind && !session.Exhausted() {
			return true, nil
		}
	}

	_, err := s.repo.PendingAttempt(ctx, userID, quizID, kind)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Resume continues an interrupted run. A matching in-memory session is
// picked up as-is; otherwise the session is rebuilt from the open
// attempt: full source minus the already-resolved questions, counters
// replayed from the recorded items.
func (s *SessionS) Resume(ctx context.Context, userID, chatID, quizID int64, kind models.AttemptKind) (models.Step, error) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if session, exists := s.sessions.Session(userID); exists {
		if session.QuizID == quizID && session.Kind == kind && !session.Exhausted() {
			session.ChatID = chatID
			if session.AwaitingAdvance || session.Current == nil {
				session.Cursor++
				session.AwaitingAdvance = false
				session.Current = nil
				if session.Exhausted() {
					summary, err := s.finishLocked(ctx, session)
					if err != nil {
						return models.Step{}, err
					}
					return models.Step{Summary: summary}, nil
				}
			}
			return models.Step{Prompt: s.presentLocked(session)}, nil
		}
		if err := s.closeLocked(ctx, session); err != nil {
			s.log.Warn("failed to close mismatched session", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	attempt, err := s.repo.PendingAttempt(ctx, userID, quizID, kind)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Step{}, ErrNothingToResume
		}
		return models.Step{}, err
	}

	source, err := s.loadSource(ctx, userID, quizID, kind)
	if err != nil {
		return models.Step{}, err
	}
	if len(source) == 0 {
		// The quiz was deleted while the attempt was open. Close it with
		// whatever counts it had so it stops dangling.
		if err := s.repo.FinishAttempt(ctx, attempt.ID, attempt.Correct, attempt.Wrong); err != nil {
			s.log.Warn("failed to close orphaned attempt", zap.Int64("attempt_id", attempt.ID), zap.Error(err))
		}
		return models.Step{}, ErrNothingToResume
	}

	items, err := s.repo.Items(ctx, attempt.ID)
	if err != nil {
		return models.Step{}, err
	}

	session := s.rebuild(attempt, chatID, quizID, kind, source, items)
	s.sessions.SetSession(userID, session)

	s.log.Info("session resumed",
		zap.Int64("user_id", userID),
		zap.String("kind", string(kind)),
		zap.Int("answered", len(items)),
		zap.Int("remaining", len(session.Questions)))

	if session.Exhausted() {
		summary, err := s.finishLocked(ctx, session)
		if err != nil {
			return models.Step{}, err
		}
		return models.Step{Summary: summary}, nil
	}

	return models.Step{Prompt: s.presentLocked(session)}, nil
}

// rebuild reconstructs the session state: remaining questions keep the
// source order minus the resolved set, counters come from replaying the
// recorded item flags.
func (s *SessionS) rebuild(attempt models.Attempt, chatID, quizID int64, kind models.AttemptKind, source []models.Question, items []models.AttemptItem) *models.Session {
	session := &models.Session{
		UserID:        attempt.UserID,
		ChatID:        chatID,
		AttemptID:     attempt.ID,
		QuizID:        quizID,
		Kind:          kind,
		TotalOriginal: len(source),
		Resolved:      make(map[int64]models.Outcome, len(items)),
	}
	if kind == models.KindExam {
		session.Exam = s.newExamPlan(source)
	}

	answered := make(map[int64]bool, len(items))
	for _, item := range items {
		answered[item.QuestionID] = true

		switch {
		case item.Unanswered() && kind == models.KindExam:
			session.Unanswered++
			session.Resolved[item.QuestionID] = models.OutcomeUnanswered
		case item.Unanswered():
			session.Fail++
			session.Resolved[item.QuestionID] = models.OutcomeUnanswered
		case item.IsCorrect:
			session.OK++
			session.Resolved[item.QuestionID] = models.OutcomeCorrect
		default:
			session.Fail++
			session.Resolved[item.QuestionID] = models.OutcomeWrong
		}

		if session.Exam != nil && !item.Unanswered() {
			s.bumpExamCounters(session.Exam, item.QuestionID, item.IsCorrect)
		}
	}

	remaining := make([]models.Question, 0, len(source))
	for _, question := range source {
		if !answered[question.ID] {
			remaining = append(remaining, question)
		}
	}
	session.Questions = remaining
	session.AnsweredBefore = len(source) - len(remaining)

	return session
}

// StartFresh discards the interrupted run, deleting the open attempt and
// its items so it never pollutes progress statistics, then starts over.
func (s *SessionS) StartFresh(ctx context.Context, userID, chatID, quizID int64, kind models.AttemptKind) (models.Step, error) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if session, exists := s.sessions.Session(userID); exists {
		s.timers.cancel(userID)
		s.sessions.DeleteSession(userID)
		if session.QuizID == quizID && session.Kind == kind {
			if err := s.repo.DeleteAttempt(ctx, session.AttemptID); err != nil {
				s.log.Warn("failed to discard attempt", zap.Int64("attempt_id", session.AttemptID), zap.Error(err))
			}
		} else if err := s.repo.FinishAttempt(ctx, session.AttemptID, session.OK, session.Fail); err != nil {
			s.log.Warn("failed to close mismatched attempt", zap.Int64("attempt_id", session.AttemptID), zap.Error(err))
		}
	}

	for {
		attempt, err := s.repo.PendingAttempt(ctx, userID, quizID, kind)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				break
			}
			return models.Step{}, err
		}
		if err := s.repo.DeleteAttempt(ctx, attempt.ID); err != nil {
			return models.Step{}, err
		}
	}

	return s.startLocked(ctx, userID, chatID, quizID, kind)
}
