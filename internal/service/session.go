package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/AngelaMMoreno/testbot.git/internal/config"
	"github.com/AngelaMMoreno/testbot.git/internal/models"
	"github.com/AngelaMMoreno/testbot.git/internal/storage/cache"
	"go.uber.org/zap"
)

// SessionS owns every live run: presenting questions, resolving answers
// and timeouts, advancing, finishing. All state transitions for one user
// run under that user's lock, including the timer callback.
type SessionS struct {
	repo     RepositoryI
	sessions *cache.Cache
	timers   *timerSet
	cfg      config.QuizConfig
	examCfg  config.ExamConfig
	log      *zap.Logger

	notifyMu sync.RWMutex
	notify   func(models.TimeoutEvent)
}

func NewSessionService(repo RepositoryI, sessions *cache.Cache, cfg config.QuizConfig, examCfg config.ExamConfig, log *zap.Logger) *SessionS {
	return &SessionS{
		repo:     repo,
		sessions: sessions,
		timers:   newTimerSet(),
		cfg:      cfg,
		examCfg:  examCfg,
		log:      log,
	}
}

// OnTimeout registers the callback that delivers expired-question events
// to the front-end. Must be set before any session starts.
func (s *SessionS) OnTimeout(fn func(models.TimeoutEvent)) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.notify = fn
}

// Start opens a fresh run. Any prior live session for the user is closed
// with its counters so far, and any dangling open attempt for the same
// (quiz, kind) pair is closed first so at most one stays open.
func (s *SessionS) Start(ctx context.Context, userID, chatID, quizID int64, kind models.AttemptKind) (models.Step, error) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	return s.startLocked(ctx, userID, chatID, quizID, kind)
}

func (s *SessionS) startLocked(ctx context.Context, userID, chatID, quizID int64, kind models.AttemptKind) (models.Step, error) {
	if prev, exists := s.sessions.Session(userID); exists {
		if err := s.closeLocked(ctx, prev); err != nil {
			s.log.Warn("failed to close previous session", zap.Int64("user_id", userID), zap.Error(err))
		}
	}
	if err := s.repo.ClosePending(ctx, userID, quizID, kind); err != nil {
		s.log.Warn("failed to close dangling attempts", zap.Int64("user_id", userID), zap.Error(err))
	}

	questions, err := s.loadSource(ctx, userID, quizID, kind)
	if err != nil {
		return models.Step{}, err
	}
	if len(questions) == 0 {
		return models.Step{}, ErrEmptySource
	}

	attemptID, err := s.repo.CreateAttempt(ctx, userID, quizID, kind)
	if err != nil {
		return models.Step{}, err
	}

	session := &models.Session{
		UserID:        userID,
		ChatID:        chatID,
		AttemptID:     attemptID,
		QuizID:        quizID,
		Kind:          kind,
		Questions:     questions,
		TotalOriginal: len(questions),
		Resolved:      make(map[int64]models.Outcome),
	}
	if kind == models.KindExam {
		session.Exam = s.newExamPlan(questions)
	}
	s.sessions.SetSession(userID, session)

	s.log.Info("session started",
		zap.Int64("user_id", userID),
		zap.String("kind", string(kind)),
		zap.Int64("quiz_id", quizID),
		zap.Int("questions", len(questions)))

	return models.Step{Prompt: s.presentLocked(session)}, nil
}

// Answer resolves the current question with the chosen permuted option.
// Double submissions land in Resolved and are rejected without side
// effects.
func (s *SessionS) Answer(ctx context.Context, userID int64, choice int) (models.Step, error) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	session, exists := s.sessions.Session(userID)
	if !exists {
		return models.Step{}, ErrNoSession
	}
	if session.AwaitingAdvance || session.Current == nil {
		return models.Step{}, ErrAlreadyResolved
	}
	if choice < 0 || choice >= len(session.Current.Options) {
		return models.Step{}, fmt.Errorf("choice %d out of range", choice)
	}

	s.timers.cancel(userID)

	question := session.Questions[session.Cursor]
	chosen := session.Current.Options[choice]
	correct := chosen == question.CorrectText()

	if correct {
		session.OK++
		session.Resolved[question.ID] = models.OutcomeCorrect
		if err := s.repo.ClearFailure(ctx, userID, question.ID); err != nil {
			s.log.Warn("failed to clear failure", zap.Int64("question_id", question.ID), zap.Error(err))
		}
	} else {
		session.Fail++
		session.Resolved[question.ID] = models.OutcomeWrong
		if err := s.repo.RecordFailure(ctx, userID, question.ID); err != nil {
			s.log.Warn("failed to record failure", zap.Int64("question_id", question.ID), zap.Error(err))
		}
	}
	if session.Exam != nil {
		s.bumpExamCounters(session.Exam, question.ID, correct)
	}

	if err := s.repo.AddItem(ctx, models.AttemptItem{
		AttemptID:  session.AttemptID,
		QuestionID: question.ID,
		Selected:   chosen,
		IsCorrect:  correct,
	}); err != nil {
		s.log.Warn("failed to append attempt item", zap.Int64("attempt_id", session.AttemptID), zap.Error(err))
	}

	session.AwaitingAdvance = true

	return models.Step{Feedback: &models.Feedback{
		QuestionID:  question.ID,
		Correct:     correct,
		Chosen:      chosen,
		CorrectText: question.CorrectText(),
	}}, nil
}

// Skip resolves the current exam question as unanswered without waiting
// for the deadline.
func (s *SessionS) Skip(ctx context.Context, userID int64) (models.Step, error) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	session, exists := s.sessions.Session(userID)
	if !exists {
		return models.Step{}, ErrNoSession
	}
	if session.Kind != models.KindExam {
		return models.Step{}, fmt.Errorf("skip is only available in exam runs")
	}
	if session.AwaitingAdvance || session.Current == nil {
		return models.Step{}, ErrAlreadyResolved
	}

	s.timers.cancel(userID)
	feedback := s.expireCurrentLocked(ctx, session)

	return models.Step{Feedback: feedback}, nil
}

// Advance moves past a resolved question: the next prompt, or the final
// summary when the source is exhausted.
func (s *SessionS) Advance(ctx context.Context, userID int64) (models.Step, error) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	session, exists := s.sessions.Session(userID)
	if !exists {
		return models.Step{}, ErrNoSession
	}
	if !session.AwaitingAdvance {
		if session.Current == nil {
			return models.Step{}, ErrNoSession
		}
		return models.Step{Prompt: s.promptLocked(session)}, nil
	}

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

	return models.Step{Prompt: s.presentLocked(session)}, nil
}

// Abandon closes the run with the counters accumulated so far and drops
// the session. The attempt is finished, not left open.
func (s *SessionS) Abandon(ctx context.Context, userID int64) (models.Step, error) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	session, exists := s.sessions.Session(userID)
	if !exists {
		return models.Step{}, ErrNoSession
	}

	summary := s.summaryLocked(session)
	if err := s.closeLocked(ctx, session); err != nil {
		return models.Step{}, err
	}

	s.log.Info("session abandoned", zap.Int64("user_id", userID), zap.String("kind", string(session.Kind)))

	return models.Step{Summary: summary}, nil
}

// Current re-issues the current prompt without touching the deadline.
func (s *SessionS) Current(userID int64) (models.Step, error) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	session, exists := s.sessions.Session(userID)
	if !exists || session.Current == nil {
		return models.Step{}, ErrNoSession
	}

	return models.Step{Prompt: s.promptLocked(session)}, nil
}

// HasSession reports whether the user has a live run.
func (s *SessionS) HasSession(userID int64) bool {
	_, exists := s.sessions.Session(userID)
	return exists
}

// timeUp is the timer callback. It re-checks under the user's lock that
// the armed question is still current, comparing both the cursor and the
// question id, and no-ops on any mismatch.
func (s *SessionS) timeUp(userID int64, cursor int, questionID int64) {
	lock := s.sessions.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	session, exists := s.sessions.Session(userID)
	if !exists || session.Current == nil || session.AwaitingAdvance {
		return
	}
	if session.Cursor != cursor || session.Current.QuestionID != questionID {
		s.log.Debug("stale timeout ignored", zap.Int64("user_id", userID), zap.Int64("question_id", questionID))
		return
	}

	ctx := context.Background()
	feedback := s.expireCurrentLocked(ctx, session)

	event := models.TimeoutEvent{
		UserID:      userID,
		ChatID:      session.ChatID,
		QuestionID:  questionID,
		CorrectText: feedback.CorrectText,
		Step:        models.Step{Feedback: feedback},
	}

	s.notifyMu.RLock()
	notify := s.notify
	s.notifyMu.RUnlock()
	if notify != nil {
		notify(event)
	}
}

// expireCurrentLocked applies the no-answer bookkeeping shared by
// timeouts and exam skips: a fail for ordinary kinds, an unanswered for
// exam kind, a failure mark and a sentinel item either way.
func (s *SessionS) expireCurrentLocked(ctx context.Context, session *models.Session) *models.Feedback {
	question := session.Questions[session.Cursor]

	if session.Kind == models.KindExam {
		session.Unanswered++
	} else {
		session.Fail++
	}
	session.Resolved[question.ID] = models.OutcomeUnanswered

	if err := s.repo.RecordFailure(ctx, session.UserID, question.ID); err != nil {
		s.log.Warn("failed to record failure", zap.Int64("question_id", question.ID), zap.Error(err))
	}
	if err := s.repo.AddItem(ctx, models.AttemptItem{
		AttemptID:  session.AttemptID,
		QuestionID: question.ID,
		Selected:   models.NoAnswer,
		IsCorrect:  false,
	}); err != nil {
		s.log.Warn("failed to append attempt item", zap.Int64("attempt_id", session.AttemptID), zap.Error(err))
	}

	session.AwaitingAdvance = true

	return &models.Feedback{
		QuestionID:  question.ID,
		Correct:     false,
		Chosen:      models.NoAnswer,
		CorrectText: question.CorrectText(),
	}
}

func (s *SessionS) finishLocked(ctx context.Context, session *models.Session) (*models.Summary, error) {
	summary := s.summaryLocked(session)
	if err := s.closeLocked(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info("session finished",
		zap.Int64("user_id", session.UserID),
		zap.String("kind", string(session.Kind)),
		zap.Int("ok", session.OK),
		zap.Int("fail", session.Fail),
		zap.Int("unanswered", session.Unanswered))

	return summary, nil
}

func (s *SessionS) summaryLocked(session *models.Session) *models.Summary {
	summary := &models.Summary{
		Kind:       session.Kind,
		OK:         session.OK,
		Fail:       session.Fail,
		Unanswered: session.Unanswered,
		Total:      session.TotalOriginal,
		Grade:      Grade(session.OK, session.Fail, session.TotalOriginal),
	}
	if session.Exam != nil {
		result := ExamOutcome(session.Exam, session.TotalOriginal, session.Unanswered)
		summary.Exam = &result
	}
	return summary
}

// closeLocked finishes the attempt with the counters so far and drops
// the session and its timer.
func (s *SessionS) closeLocked(ctx context.Context, session *models.Session) error {
	s.timers.cancel(session.UserID)
	s.sessions.DeleteSession(session.UserID)
	return s.repo.FinishAttempt(ctx, session.AttemptID, session.OK, session.Fail)
}

func (s *SessionS) bumpExamCounters(plan *models.ExamPlan, questionID int64, correct bool) {
	switch {
	case plan.InPart1(questionID) && correct:
		plan.P1Correct++
	case plan.InPart1(questionID):
		plan.P1Wrong++
	case correct:
		plan.P2Correct++
	default:
		plan.P2Wrong++
	}
}
