package bot

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/AngelaMMoreno/testbot.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxDocumentSize caps imported quiz files.
const maxDocumentSize = 5 << 20

type ServiceI interface {
	SessionSI
	CatalogSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// inputMode marks that the next plain-text message from a user belongs
// to a multi-step flow (quiz import, question edit).
type inputMode struct {
	name       string
	questionID int64
	title      string
	desc       string
}

type TelegramAPI struct {
	bot     *tgbotapi.BotAPI
	quiz    *QuizT
	catalog *CatalogT

	modeMu sync.Mutex
	modes  map[int64]*inputMode
}

func NewTelegramAPI(botToken, env string, service ServiceI) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	if env == "development" {
		bot.Debug = true
	} else {
		bot.Debug = false
	}

	t := &TelegramAPI{
		bot:     bot,
		quiz:    NewQuizTAPI(bot, service),
		catalog: NewCatalogTAPI(bot, service),
		modes:   make(map[int64]*inputMode),
	}

	service.OnTimeout(func(event models.TimeoutEvent) {
		t.quiz.handleTimeout(event)
	})

	return t, nil
}

func (t *TelegramAPI) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			if update.Message.IsCommand() {
				t.handleCommand(update.Message)
			} else {
				t.handleMessage(update.Message)
			}
			continue
		}

		if update.CallbackQuery != nil {
			t.handleCallbackQuery(update.CallbackQuery)
		}
	}
}

func (t *TelegramAPI) setMode(userID int64, mode *inputMode) {
	t.modeMu.Lock()
	defer t.modeMu.Unlock()
	if mode == nil {
		delete(t.modes, userID)
		return
	}
	t.modes[userID] = mode
}

func (t *TelegramAPI) mode(userID int64) (*inputMode, bool) {
	t.modeMu.Lock()
	defer t.modeMu.Unlock()
	mode, exists := t.modes[userID]
	return mode, exists
}

// downloadDocument fetches an attached file through the bot file API.
func (t *TelegramAPI) downloadDocument(doc *tgbotapi.Document) (string, error) {
	if doc.FileSize > maxDocumentSize {
		return "", fmt.Errorf("document too large: %d bytes", doc.FileSize)
	}

	url, err := t.bot.GetFileDirectURL(doc.FileID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve file %s: %w", doc.FileID, err)
	}

	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch file %s: %w", doc.FileID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch file %s: status %d", doc.FileID, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", doc.FileID, err)
	}
	return string(data), nil
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
	} else {
		log.Printf("Sent message to %d", sentMsg.Chat.ID)
	}
}
