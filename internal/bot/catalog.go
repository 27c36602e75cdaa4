package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/AngelaMMoreno/testbot.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type CatalogSI interface {
	QuizPage(ctx context.Context, userID int64, page int) (models.QuizPage, error)
	CreateQuizJSON(ctx context.Context, title, description string, raw []byte) (int64, int, error)
	QuizTitle(ctx context.Context, quizID int64) (string, error)
	DeleteQuiz(ctx context.Context, quizID int64) error
	ExportQuiz(ctx context.Context, quizID int64) (string, []byte, error)
	QuestionJSON(ctx context.Context, questionID int64) (string, error)
	UpdateQuestionJSON(ctx context.Context, questionID int64, raw []byte) (models.Question, error)
	DeleteQuestion(ctx context.Context, questionID int64) error
	Explanation(ctx context.Context, questionID int64) (string, error)
	UpdateExplanation(ctx context.Context, questionID int64, explanation string) error
	ToggleFavorite(ctx context.Context, userID, questionID int64) (bool, error)
	IsFavorite(ctx context.Context, userID, questionID int64) (bool, error)
	Progress(ctx context.Context, userID int64) (string, error)
}

// CatalogT covers everything outside a running test: the quiz list,
// import/export, explanations and the progress report.
type CatalogT struct {
	bot     BotSender
	service ServiceI
}

func NewCatalogTAPI(bot BotSender, service ServiceI) *CatalogT {
	return &CatalogT{
		bot:     bot,
		service: service,
	}
}

func (t *CatalogT) sendQuizPage(chatID, userID int64, page int) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	quizPage, err := t.service.QuizPage(ctx, userID, page)
	if err != nil {
		log.Printf("failed to load quiz page %d for user %d: %v", page, userID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ No se pudo cargar la lista de tests.")
		sendMessage(t.bot, msg)
		return
	}

	if len(quizPage.Items) == 0 {
		msg := tgbotapi.NewMessage(chatID, "📭 Todavía no hay tests. Crea uno con \"➕ Crear test\".")
		sendMessage(t.bot, msg)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range quizPage.Items {
		id := strconv.FormatInt(item.ID, 10)

		label := item.Title
		switch {
		case item.Pending:
			label = "⏸ " + label
		case item.Finished:
			label = "✅ " + label
		}
		label = fmt.Sprintf("%s (%d)", label, item.QuestionCount)

		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(label, "empezar_"+id),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📥 Descargar", "descargar_"+id),
				tgbotapi.NewInlineKeyboardButtonData("🗑 Borrar", "borrar_test_"+id),
			),
		)
	}

	var nav []tgbotapi.InlineKeyboardButton
	if quizPage.Page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️", "tests_pagina_"+strconv.Itoa(quizPage.Page-1)))
	}
	if quizPage.Page+1 < quizPage.TotalPages {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("➡️", "tests_pagina_"+strconv.Itoa(quizPage.Page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)

	text := fmt.Sprintf("📝 Tests disponibles (página %d/%d):", quizPage.Page+1, quizPage.TotalPages)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *CatalogT) createQuiz(chatID int64, title, description, raw string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	quizID, count, err := t.service.CreateQuizJSON(ctx, title, description, []byte(raw))
	if err != nil {
		log.Printf("failed to create quiz %q: %v", title, err)
		msg := tgbotapi.NewMessage(chatID, "❌ No se pudo crear el test. Revisa el JSON e inténtalo de nuevo.")
		sendMessage(t.bot, msg)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Empezar", "empezar_"+strconv.FormatInt(quizID, 10)),
			tgbotapi.NewInlineKeyboardButtonData("🏠 Menú", "menu"),
		),
	)

	text := fmt.Sprintf("✅ Test \"%s\" creado con %d preguntas.", title, count)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *CatalogT) confirmDeleteQuiz(chatID, quizID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	title, err := t.service.QuizTitle(ctx, quizID)
	if err != nil {
		log.Printf("failed to load quiz %d title: %v", quizID, err)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Sí, borrar", "confirmar_borrar_"+strconv.FormatInt(quizID, 10)),
			tgbotapi.NewInlineKeyboardButtonData("✖️ Cancelar", "menu"),
		),
	)

	text := fmt.Sprintf("⚠️ ¿Seguro que quieres borrar \"%s\"? Se perderán sus preguntas y su historial.", title)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

// deleteQuiz removes the quiz and closes every live session that was
// running it.
func (t *CatalogT) deleteQuiz(chatID, userID, quizID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := t.service.DeleteQuiz(ctx, quizID); err != nil {
		log.Printf("failed to delete quiz %d: %v", quizID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ No se pudo borrar el test.")
		sendMessage(t.bot, msg)
		return
	}

	t.service.DropDeletedQuiz(ctx, quizID)

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, "🗑 Test borrado."))
	t.sendQuizPage(chatID, userID, 0)
}

func (t *CatalogT) exportQuiz(chatID, quizID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filename, data, err := t.service.ExportQuiz(ctx, quizID)
	if err != nil {
		log.Printf("failed to export quiz %d: %v", quizID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ No se pudo exportar el test.")
		sendMessage(t.bot, msg)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  filename,
		Bytes: data,
	})
	doc.Caption = "📥 Aquí tienes el test en JSON. Puedes importarlo con \"➕ Crear test\"."

	sendMessage(t.bot, doc)
}

func (t *CatalogT) sendExplanation(chatID, questionID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	explanation, err := t.service.Explanation(ctx, questionID)
	if err != nil {
		log.Printf("failed to load explanation for question %d: %v", questionID, err)
		return
	}

	id := strconv.FormatInt(questionID, 10)
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Editar explicación", "editar_explicacion_"+id),
		),
	)

	text := "💡 " + explanation
	if explanation == "" {
		text = "💡 Esta pregunta todavía no tiene explicación."
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *CatalogT) saveExplanation(chatID, questionID int64, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := t.service.UpdateExplanation(ctx, questionID, text); err != nil {
		log.Printf("failed to save explanation for question %d: %v", questionID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ No se pudo guardar la explicación.")
		sendMessage(t.bot, msg)
		return
	}

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, "💡 Explicación guardada."))
}

func (t *CatalogT) sendProgress(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	report, err := t.service.Progress(ctx, userID)
	if err != nil {
		log.Printf("failed to build progress for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ No se pudo cargar tu progreso.")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, report)
	msg.ParseMode = "markdown"

	sendMessage(t.bot, msg)
}
