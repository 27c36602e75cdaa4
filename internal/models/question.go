package models

import (
	"database/sql"
	"time"
)

type Question struct {
	ID          int64          `db:"id"`
	QuizID      sql.NullInt64  `db:"quiz_id"`
	Text        string         `db:"text"`
	Explanation sql.NullString `db:"explanation"`
	Block       sql.NullInt64  `db:"block"`
	Topic       sql.NullInt64  `db:"topic"`
	Options     []string
}

// CorrectText is the canonical answer: the option stored at position 0.
func (q Question) CorrectText() string {
	if len(q.Options) == 0 {
		return ""
	}
	return q.Options[0]
}

func (q Question) Usable() bool {
	return len(q.Options) >= 2
}

type Quiz struct {
	ID            int64          `db:"id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	CreatedAt     time.Time      `db:"created_at"`
	QuestionCount int            `db:"question_count"`
}

// QuestionPayload is the JSON exchange format for a single question.
// The first option is always the correct one.
type QuestionPayload struct {
	Text        string   `json:"pregunta"`
	Options     []string `json:"opciones"`
	Block       *int64   `json:"bloque"`
	Topic       *int64   `json:"tema"`
	Explanation string   `json:"explicacion,omitempty"`
}

type QuizPayload struct {
	Title       string            `json:"titulo"`
	Description string            `json:"descripcion,omitempty"`
	Questions   []QuestionPayload `json:"preguntas"`
}

type QuizListItem struct {
	Quiz
	Pending  bool
	Finished bool
}

type QuizPage struct {
	Items      []QuizListItem
	Page       int
	TotalPages int
}
