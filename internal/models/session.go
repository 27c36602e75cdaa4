package models

// Outcome records which counter a resolved question contributed to,
// so an edit can revert exactly that contribution.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeWrong
	OutcomeUnanswered
)

// Presented is the current question as issued to the user: a fresh
// permutation of its options valid for this presentation only.
type Presented struct {
	QuestionID   int64
	Cursor       int
	Options      []string
	CorrectIndex int
}

// Session is the in-memory state of one user's run through a question
// source. It is owned by the session engine and must only be touched
// while holding that user's lock.
type Session struct {
	UserID    int64
	ChatID    int64
	AttemptID int64
	QuizID    int64 // 0 for failures/favorites/exam attempts
	Kind      AttemptKind

	// Questions holds the remaining source in original order; on a fresh
	// start it is the whole source and Cursor walks it, on resume it is
	// the not-yet-answered tail.
	Questions []Question
	Cursor    int

	OK         int
	Fail       int
	Unanswered int

	Current         *Presented
	AwaitingAdvance bool

	// TotalOriginal is the grading denominator; shrinks when a question
	// is deleted out from under the session.
	TotalOriginal  int
	AnsweredBefore int

	// Resolved maps question ids answered in this run to their outcome.
	Resolved map[int64]Outcome

	Exam *ExamPlan
}

func (s *Session) Exhausted() bool {
	return s.Cursor >= len(s.Questions)
}

// Prompt asks the caller to present a question.
type Prompt struct {
	QuestionID int64
	Number     int
	Total      int
	Text       string
	Options    []string
	CanSkip    bool
}

// Feedback reports how the current question was resolved.
type Feedback struct {
	QuestionID  int64
	Correct     bool
	Chosen      string
	CorrectText string
}

// Summary is the terminal payload of a finished run.
type Summary struct {
	Kind       AttemptKind
	OK         int
	Fail       int
	Unanswered int
	Total      int
	Grade      float64
	Exam       *ExamResult
}

// Step is what every session operation hands back: exactly one of the
// three fields is set.
type Step struct {
	Prompt   *Prompt
	Feedback *Feedback
	Summary  *Summary
}

// TimeoutEvent is delivered to the registered notifier when a question
// deadline fires.
type TimeoutEvent struct {
	UserID      int64
	ChatID      int64
	QuestionID  int64
	CorrectText string
	Step        Step
}
