package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/AngelaMMoreno/testbot.git/internal/models"
	"github.com/AngelaMMoreno/testbot.git/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type SessionSI interface {
	Start(ctx context.Context, userID, chatID, quizID int64, kind models.AttemptKind) (models.Step, error)
	Resume(ctx context.Context, userID, chatID, quizID int64, kind models.AttemptKind) (models.Step, error)
	StartFresh(ctx context.Context, userID, chatID, quizID int64, kind models.AttemptKind) (models.Step, error)
	Resumable(ctx context.Context, userID, quizID int64, kind models.AttemptKind) (bool, error)
	Answer(ctx context.Context, userID int64, choice int) (models.Step, error)
	Skip(ctx context.Context, userID int64) (models.Step, error)
	Advance(ctx context.Context, userID int64) (models.Step, error)
	Abandon(ctx context.Context, userID int64) (models.Step, error)
	Current(userID int64) (models.Step, error)
	HasSession(userID int64) bool
	OnTimeout(fn func(models.TimeoutEvent))
	SyncEditedQuestion(ctx context.Context, userID int64, question models.Question) (*models.Prompt, error)
	DropDeletedQuestion(ctx context.Context, userID, questionID int64) (*models.Step, error)
	DropDeletedQuiz(ctx context.Context, quizID int64)
}

// QuizT drives a run through the chat: presenting questions, collecting
// answers, rendering feedback and the final summary.
type QuizT struct {
	bot     BotSender
	service ServiceI
}

func NewQuizTAPI(bot BotSender, service ServiceI) *QuizT {
	return &QuizT{
		bot:     bot,
		service: service,
	}
}

// offerRun starts the run, or shows the resume dialog first when an
// interrupted attempt exists for the pair.
func (t *QuizT) offerRun(chatID, userID, quizID int64, kind models.AttemptKind) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resumable, err := t.service.Resumable(ctx, userID, quizID, kind)
	if err != nil {
		log.Printf("failed to check resumable run for user %d: %v", userID, err)
	}
	if !resumable {
		t.startRun(chatID, userID, quizID, kind)
		return
	}

	ref := string(kind) + "_" + strconv.FormatInt(quizID, 10)
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Continuar", "continuar_"+ref),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Empezar de nuevo", "reiniciar_"+ref),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✖️ Cancelar", "cancelar_reanudar"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "⏸ Tienes un test a medias. ¿Quieres continuar donde lo dejaste?")
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *QuizT) startRun(chatID, userID, quizID int64, kind models.AttemptKind) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	step, err := t.service.Start(ctx, userID, chatID, quizID, kind)
	if err != nil {
		if errors.Is(err, service.ErrEmptySource) {
			msg := tgbotapi.NewMessage(chatID, emptySourceText(kind))
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("failed to start run for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ No se pudo empezar el test. Inténtalo más tarde.")
		sendMessage(t.bot, msg)
		return
	}

	t.renderStep(chatID, step)
}

func emptySourceText(kind models.AttemptKind) string {
	switch kind {
	case models.KindFailures:
		return "🎉 No tienes preguntas falladas pendientes."
	case models.KindFavorites:
		return "⭐ Todavía no has marcado ninguna pregunta como favorita."
	default:
		return "❌ Este test no tiene preguntas válidas."
	}
}

func (t *QuizT) resumeRun(chatID, userID int64, ref string) {
	kind, quizID, ok := parseRunRef(ref)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	step, err := t.service.Resume(ctx, userID, chatID, quizID, kind)
	if err != nil {
		if errors.Is(err, service.ErrNothingToResume) {
			msg := tgbotapi.NewMessage(chatID, "No quedaba nada que continuar, empezamos de cero.")
			sendMessage(t.bot, msg)
			t.startRun(chatID, userID, quizID, kind)
			return
		}
		log.Printf("failed to resume run for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ No se pudo continuar el test.")
		sendMessage(t.bot, msg)
		return
	}

	t.renderStep(chatID, step)
}

func (t *QuizT) restartRun(chatID, userID int64, ref string) {
	kind, quizID, ok := parseRunRef(ref)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	step, err := t.service.StartFresh(ctx, userID, chatID, quizID, kind)
	if err != nil {
		if errors.Is(err, service.ErrEmptySource) {
			msg := tgbotapi.NewMessage(chatID, emptySourceText(kind))
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("failed to restart run for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ No se pudo reiniciar el test.")
		sendMessage(t.bot, msg)
		return
	}

	t.renderStep(chatID, step)
}

func parseRunRef(ref string) (models.AttemptKind, int64, bool) {
	sep := strings.LastIndex(ref, "_")
	if sep < 0 {
		log.Printf("bad run reference %q", ref)
		return "", 0, false
	}
	quizID, err := strconv.ParseInt(ref[sep+1:], 10, 64)
	if err != nil {
		log.Printf("bad run reference %q: %v", ref, err)
		return "", 0, false
	}
	return models.AttemptKind(ref[:sep]), quizID, true
}

func (t *QuizT) processAnswer(chatID, userID int64, choiceData string) {
	choice, err := strconv.Atoi(choiceData)
	if err != nil {
		log.Printf("bad answer index %q from user %d", choiceData, userID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	step, err := t.service.Answer(ctx, userID, choice)
	if err != nil {
		// Duplicate taps and answers into a dead session are dropped
		// quietly.
		if errors.Is(err, service.ErrAlreadyResolved) || errors.Is(err, service.ErrNoSession) {
			log.Printf("ignored answer from user %d: %v", userID, err)
			return
		}
		log.Printf("failed to process answer for user %d: %v", userID, err)
		return
	}

	t.renderStep(chatID, step)
}

func (t *QuizT) advance(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	step, err := t.service.Advance(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			return
		}
		log.Printf("failed to advance for user %d: %v", userID, err)
		return
	}

	t.renderStep(chatID, step)
}

func (t *QuizT) skip(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	step, err := t.service.Skip(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyResolved) || errors.Is(err, service.ErrNoSession) {
			return
		}
		log.Printf("failed to skip for user %d: %v", userID, err)
		return
	}

	t.renderStep(chatID, step)
}

func (t *QuizT) abandonSession(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	step, err := t.service.Abandon(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			msg := tgbotapi.NewMessage(chatID, "No tienes ningún test en curso.")
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("failed to abandon for user %d: %v", userID, err)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "🏁 Test abandonado.")
	sendMessage(t.bot, msg)

	t.renderStep(chatID, step)
}

func (t *QuizT) toggleFavorite(chatID, userID, questionID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	favorite, err := t.service.ToggleFavorite(ctx, userID, questionID)
	if err != nil {
		log.Printf("failed to toggle favorite for user %d: %v", userID, err)
		return
	}

	text := "⭐ Pregunta guardada en favoritas."
	if !favorite {
		text = "☆ Pregunta quitada de favoritas."
	}
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
}

// deleteQuestion removes the question from the catalog and keeps the
// user's live session consistent with the deletion.
func (t *QuizT) deleteQuestion(chatID, userID, questionID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := t.service.DeleteQuestion(ctx, questionID); err != nil {
		log.Printf("failed to delete question %d: %v", questionID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ No se pudo borrar la pregunta.")
		sendMessage(t.bot, msg)
		return
	}

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, "🗑 Pregunta borrada."))

	step, err := t.service.DropDeletedQuestion(ctx, userID, questionID)
	if err != nil {
		log.Printf("failed to drop deleted question %d for user %d: %v", questionID, userID, err)
		return
	}
	if step != nil {
		t.renderStep(chatID, *step)
	}
}

// applyQuestionEdit saves the edited JSON form and re-issues the
// question if the user is currently facing it.
func (t *QuizT) applyQuestionEdit(chatID, userID, questionID int64, raw string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	question, err := t.service.UpdateQuestionJSON(ctx, questionID, []byte(raw))
	if err != nil {
		log.Printf("failed to update question %d: %v", questionID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ JSON no válido. La pregunta no se ha modificado.")
		sendMessage(t.bot, msg)
		return
	}

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, "✏️ Pregunta actualizada."))

	prompt, err := t.service.SyncEditedQuestion(ctx, userID, question)
	if err != nil {
		log.Printf("failed to sync edited question %d for user %d: %v", questionID, userID, err)
		return
	}
	if prompt != nil {
		t.sendPrompt(chatID, prompt)
	}
}

func (t *QuizT) handleTimeout(event models.TimeoutEvent) {
	text := "⏰ ¡Tiempo agotado! La respuesta correcta era: " + event.CorrectText
	sendMessage(t.bot, tgbotapi.NewMessage(event.ChatID, text))

	if event.Step.Feedback != nil {
		t.sendAnswerPanel(event.ChatID, event.Step.Feedback.QuestionID)
	}
}

func (t *QuizT) renderStep(chatID int64, step models.Step) {
	switch {
	case step.Prompt != nil:
		t.sendPrompt(chatID, step.Prompt)
	case step.Feedback != nil:
		t.sendFeedback(chatID, step.Feedback)
	case step.Summary != nil:
		t.sendSummary(chatID, step.Summary)
	}
}

func (t *QuizT) sendPrompt(chatID int64, prompt *models.Prompt) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "❓ Pregunta %d/%d\n\n%s\n\n", prompt.Number, prompt.Total, prompt.Text)
	for i, option := range prompt.Options {
		fmt.Fprintf(&sb, "%d) %s\n", i+1, option)
	}

	var rows [][]tgbotapi.InlineKeyboardButton

	row := make([]tgbotapi.InlineKeyboardButton, 0, 4)
	for i := range prompt.Options {
		label := strconv.Itoa(i + 1)
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, "resp_"+strconv.Itoa(i)))
		if len(row) == 4 {
			rows = append(rows, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 4)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	extra := []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🏳️ Abandonar", "abandonar"),
	}
	if prompt.CanSkip {
		extra = append([]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("⏭ Saltar", "saltar"),
		}, extra...)
	}
	rows = append(rows, extra)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *QuizT) sendFeedback(chatID int64, feedback *models.Feedback) {
	var text string
	switch {
	case feedback.Correct:
		text = "✅ ¡Correcto!"
	case feedback.Chosen == models.NoAnswer:
		text = "⏭ Sin respuesta. La correcta era: " + feedback.CorrectText
	default:
		text = "❌ Incorrecto. La respuesta correcta era: " + feedback.CorrectText
	}

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))

	t.sendAnswerPanel(chatID, feedback.QuestionID)
}

// sendAnswerPanel offers the post-resolution affordances before the
// user asks for the next question.
func (t *QuizT) sendAnswerPanel(chatID, questionID int64) {
	id := strconv.FormatInt(questionID, 10)
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭐ Favorita", "favorita_"+id),
			tgbotapi.NewInlineKeyboardButtonData("💡 Explicación", "explicacion_"+id),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Editar", "editar_pregunta_"+id),
			tgbotapi.NewInlineKeyboardButtonData("🗑 Borrar", "borrar_pregunta_"+id),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡️ Siguiente", "siguiente"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "¿Qué quieres hacer?")
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *QuizT) sendSummary(chatID int64, summary *models.Summary) {
	var sb strings.Builder

	sb.WriteString("🏁 *Test terminado*\n\n")
	fmt.Fprintf(&sb, "✅ Aciertos: %d\n", summary.OK)
	fmt.Fprintf(&sb, "❌ Fallos: %d\n", summary.Fail)
	if summary.Unanswered > 0 {
		fmt.Fprintf(&sb, "⏭ Sin responder: %d\n", summary.Unanswered)
	}
	fmt.Fprintf(&sb, "📋 Preguntas: %d\n", summary.Total)

	if summary.Exam != nil {
		writeExamSummary(&sb, summary.Exam)
	} else {
		fmt.Fprintf(&sb, "\n🎓 Nota: *%.2f/10*\n", summary.Grade)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Menú", "menu"),
			tgbotapi.NewInlineKeyboardButtonData("📊 Progreso", "progreso"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func writeExamSummary(sb *strings.Builder, exam *models.ExamResult) {
	sb.WriteString("\n🎓 *Resultado del simulacro*\n")
	fmt.Fprintf(sb, "1ª parte: %d✅ %d❌\n", exam.Part1Correct, exam.Part1Wrong)
	fmt.Fprintf(sb, "2ª parte: %d✅ %d❌\n", exam.Part2Correct, exam.Part2Wrong)
	fmt.Fprintf(sb, "Puntuación directa: *%.2f* (máx %.0f)\n", exam.DirectScore, exam.RawMax)
	fmt.Fprintf(sb, "Corte estimado: %.2f – %.2f\n", exam.CutoffOptimistic, exam.CutoffPessimistic)
	fmt.Fprintf(sb, "Nota normalizada: *%.2f/%.0f*\n", exam.Normalized, exam.ScaleMax)

	for _, rank := range exam.Ranks {
		fmt.Fprintf(sb, "Posición estimada (%s): %d\n", rank.Table, rank.Rank)
	}

	switch exam.Verdict {
	case models.VerdictPass:
		sb.WriteString("\n🟢 Por encima del corte en ambos escenarios. ¡Aprobarías!\n")
	case models.VerdictBorderline:
		sb.WriteString("\n🟡 En la zona de corte. Depende del año.\n")
	default:
		sb.WriteString("\n🔴 Por debajo del corte. ¡A seguir repasando!\n")
	}
}
