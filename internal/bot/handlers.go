package bot

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/AngelaMMoreno/testbot.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonTests     = "📝 Tests"
	ButtonFailures  = "🧠 Test de fallos"
	ButtonFavorites = "⭐ Test de favoritas"
	ButtonExam      = "🎓 Simulacro"
	ButtonProgress  = "📊 Mi progreso"
	ButtonCreate    = "➕ Crear test"
	ButtonHelp      = "ℹ️ Ayuda"
)

const (
	modeCreateTitle       = "crear_test_titulo"
	modeCreateDescription = "crear_test_descripcion"
	modeCreateJSON        = "crear_test_json"
	modeEditQuestion      = "editar_pregunta_json"
	modeEditExplanation   = "editar_explicacion"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "fin":
		if message.From != nil {
			t.quiz.abandonSession(message.Chat.ID, message.From.ID)
		}
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Comando desconocido. Usa /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 ¡Hola! Soy tu bot de tests de oposición.\n\n" +
		"✨ Qué puedo hacer:\n" +
		"• 📝 Tests por temas con corrección automática\n" +
		"• 🧠 Repasar tus preguntas falladas\n" +
		"• ⭐ Repasar tus preguntas favoritas\n" +
		"• 🎓 Simulacro de examen con nota de corte\n" +
		"• 📊 Seguir tu progreso\n\n" +
		"¡Pulsa un botón para empezar!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) showMainMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "🏠 Menú principal:")
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonTests),
			tgbotapi.NewKeyboardButton(ButtonExam),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonFailures),
			tgbotapi.NewKeyboardButton(ButtonFavorites),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonProgress),
			tgbotapi.NewKeyboardButton(ButtonCreate),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Comandos disponibles:
/start — abrir el menú
/help — este mensaje
/fin — abandonar el test en curso

🎯 Usa los botones:
• "Tests" — elige un tema y responde
• "Test de fallos" — repasa lo que fallaste
• "Test de favoritas" — repasa tus marcadas
• "Simulacro" — examen completo con nota de corte
• "Mi progreso" — aciertos, fallos y última actividad

Cada pregunta tiene un tiempo límite. Si se agota, cuenta como no contestada.
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	userID := message.From.ID

	if mode, exists := t.mode(userID); exists {
		t.handleModeInput(message, mode)
		return
	}

	text := message.Text

	switch text {
	case ButtonTests:
		t.catalog.sendQuizPage(message.Chat.ID, userID, 0)
	case ButtonFailures:
		t.quiz.startRun(message.Chat.ID, userID, 0, models.KindFailures)
	case ButtonFavorites:
		t.quiz.startRun(message.Chat.ID, userID, 0, models.KindFavorites)
	case ButtonExam:
		t.quiz.offerRun(message.Chat.ID, userID, 0, models.KindExam)
	case ButtonProgress:
		t.catalog.sendProgress(message.Chat.ID, userID)
	case ButtonCreate:
		t.setMode(userID, &inputMode{name: modeCreateTitle})
		msg := tgbotapi.NewMessage(message.Chat.ID, "✍️ Escribe el título del nuevo test:")
		sendMessage(t.bot, msg)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "No te he entendido. Usa los botones de abajo.")
		sendMessage(t.bot, msg)
	}
}

// handleModeInput consumes one plain-text message inside a multi-step
// flow.
func (t *TelegramAPI) handleModeInput(message *tgbotapi.Message, mode *inputMode) {
	userID := message.From.ID
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	if text == "/cancelar" || text == "cancelar" {
		t.setMode(userID, nil)
		msg := tgbotapi.NewMessage(chatID, "Operación cancelada.")
		sendMessage(t.bot, msg)
		return
	}

	switch mode.name {
	case modeCreateTitle:
		t.setMode(userID, &inputMode{name: modeCreateDescription, title: text})
		msg := tgbotapi.NewMessage(chatID, "📝 Ahora una descripción (o un guion \"-\" para omitirla):")
		sendMessage(t.bot, msg)

	case modeCreateDescription:
		desc := text
		if desc == "-" {
			desc = ""
		}
		t.setMode(userID, &inputMode{name: modeCreateJSON, title: mode.title, desc: desc})
		msg := tgbotapi.NewMessage(chatID, "📄 Pega el JSON con las preguntas, o envíalo como archivo. La primera opción de cada pregunta debe ser la correcta.")
		sendMessage(t.bot, msg)

	case modeCreateJSON:
		raw := message.Text
		if message.Document != nil {
			content, err := t.downloadDocument(message.Document)
			if err != nil {
				log.Printf("failed to download document from user %d: %v", userID, err)
				msg := tgbotapi.NewMessage(chatID, "❌ No se pudo descargar el archivo. Inténtalo de nuevo.")
				sendMessage(t.bot, msg)
				return
			}
			raw = content
		}
		t.setMode(userID, nil)
		t.catalog.createQuiz(chatID, mode.title, mode.desc, raw)

	case modeEditQuestion:
		t.setMode(userID, nil)
		t.quiz.applyQuestionEdit(chatID, userID, mode.questionID, message.Text)

	case modeEditExplanation:
		t.setMode(userID, nil)
		t.catalog.saveExplanation(chatID, mode.questionID, message.Text)

	default:
		t.setMode(userID, nil)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	if query.Message == nil || query.From == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	data := query.Data
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	switch {
	case strings.HasPrefix(data, "resp_"):
		t.quiz.processAnswer(chatID, userID, strings.TrimPrefix(data, "resp_"))
	case data == "siguiente":
		t.quiz.advance(chatID, userID)
	case data == "saltar":
		t.quiz.skip(chatID, userID)
	case data == "abandonar":
		t.quiz.abandonSession(chatID, userID)

	case strings.HasPrefix(data, "empezar_"):
		if quizID, ok := parseID(data, "empezar_"); ok {
			t.quiz.offerRun(chatID, userID, quizID, models.KindQuiz)
		}
	case strings.HasPrefix(data, "continuar_"):
		t.quiz.resumeRun(chatID, userID, strings.TrimPrefix(data, "continuar_"))
	case strings.HasPrefix(data, "reiniciar_"):
		t.quiz.restartRun(chatID, userID, strings.TrimPrefix(data, "reiniciar_"))
	case data == "cancelar_reanudar":
		t.showMainMenu(chatID)

	case strings.HasPrefix(data, "tests_pagina_"):
		if page, ok := parseID(data, "tests_pagina_"); ok {
			t.catalog.sendQuizPage(chatID, userID, int(page))
		}
	case strings.HasPrefix(data, "borrar_test_"):
		if quizID, ok := parseID(data, "borrar_test_"); ok {
			t.catalog.confirmDeleteQuiz(chatID, quizID)
		}
	case strings.HasPrefix(data, "confirmar_borrar_"):
		if quizID, ok := parseID(data, "confirmar_borrar_"); ok {
			t.catalog.deleteQuiz(chatID, userID, quizID)
		}
	case strings.HasPrefix(data, "descargar_"):
		if quizID, ok := parseID(data, "descargar_"); ok {
			t.catalog.exportQuiz(chatID, quizID)
		}

	case strings.HasPrefix(data, "favorita_"):
		if questionID, ok := parseID(data, "favorita_"); ok {
			t.quiz.toggleFavorite(chatID, userID, questionID)
		}
	case strings.HasPrefix(data, "explicacion_"):
		if questionID, ok := parseID(data, "explicacion_"); ok {
			t.catalog.sendExplanation(chatID, questionID)
		}
	case strings.HasPrefix(data, "editar_explicacion_"):
		if questionID, ok := parseID(data, "editar_explicacion_"); ok {
			t.setMode(userID, &inputMode{name: modeEditExplanation, questionID: questionID})
			msg := tgbotapi.NewMessage(chatID, "💡 Escribe la nueva explicación:")
			sendMessage(t.bot, msg)
		}
	case strings.HasPrefix(data, "editar_pregunta_"):
		if questionID, ok := parseID(data, "editar_pregunta_"); ok {
			t.startQuestionEdit(chatID, userID, questionID)
		}
	case strings.HasPrefix(data, "borrar_pregunta_"):
		if questionID, ok := parseID(data, "borrar_pregunta_"); ok {
			t.quiz.deleteQuestion(chatID, userID, questionID)
		}

	case data == "progreso":
		t.catalog.sendProgress(chatID, userID)
	case data == "menu":
		t.showMainMenu(chatID)

	default:
		log.Printf("Unknown callback data: %s from user %d", data, userID)
	}
}

// startQuestionEdit shows the question's editable JSON form and waits
// for the replacement in the next message.
func (t *TelegramAPI) startQuestionEdit(chatID, userID, questionID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	form, err := t.catalog.service.QuestionJSON(ctx, questionID)
	if err != nil {
		log.Printf("failed to load question %d for edit: %v", questionID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ No se pudo cargar la pregunta.")
		sendMessage(t.bot, msg)
		return
	}

	t.setMode(userID, &inputMode{name: modeEditQuestion, questionID: questionID})

	msg := tgbotapi.NewMessage(chatID, "✏️ Edita este JSON y envíamelo de vuelta. Recuerda: la primera opción es la correcta.\n\n"+form)
	sendMessage(t.bot, msg)
}

func parseID(data, prefix string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
	if err != nil {
		log.Printf("bad callback id in %q: %v", data, err)
		return 0, false
	}
	return id, true
}
