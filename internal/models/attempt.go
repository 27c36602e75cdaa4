package models

import (
	"database/sql"
	"time"
)

type AttemptKind string

const (
	KindQuiz      AttemptKind = "quiz"
	KindFailures  AttemptKind = "failures"
	KindFavorites AttemptKind = "favorites"
	KindExam      AttemptKind = "exam"
)

// NoAnswer is the selected-option sentinel recorded when a question
// times out or is skipped.
const NoAnswer = "Sin respuesta"

type Attempt struct {
	ID         int64         `db:"id"`
	UserID     int64         `db:"user_id"`
	QuizID     sql.NullInt64 `db:"quiz_id"`
	Kind       AttemptKind   `db:"attempt_type"`
	StartedAt  time.Time     `db:"started_at"`
	FinishedAt sql.NullTime  `db:"finished_at"`
	Correct    int           `db:"correct"`
	Wrong      int           `db:"wrong"`
}

type AttemptItem struct {
	AttemptID  int64  `db:"attempt_id"`
	QuestionID int64  `db:"question_id"`
	Selected   string `db:"selected_option"`
	IsCorrect  bool   `db:"is_correct"`
}

func (i AttemptItem) Unanswered() bool {
	return i.Selected == NoAnswer
}

type ProgressTotals struct {
	Correct int `db:"total_correct"`
	Wrong   int `db:"total_wrong"`
}

type AttemptRecord struct {
	QuizID    int64     `db:"quiz_id"`
	Title     string    `db:"title"`
	Correct   int       `db:"correct"`
	Wrong     int       `db:"wrong"`
	StartedAt time.Time `db:"started_at"`
}
