package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/hawkarm/heval-bot/internal/models"
)

// Bot is the Telegram transport: it feeds inbound updates into a Dispatcher
// and implements Channel for outbound messages.
type Bot struct {
	api    *tgbotapi.BotAPI
	logger *zap.Logger
}

func NewBot(token string, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:    api,
		logger: logger,
	}, nil
}

// Run long-polls Telegram and hands each message to the dispatcher on its
// own goroutine. Blocks until the update channel closes.
func (b *Bot) Run(ctx context.Context, dispatcher *Dispatcher) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		go dispatcher.HandleMessage(ctx, toInbound(update.Message))
	}

	return nil
}

func toInbound(m *tgbotapi.Message) *Inbound {
	msg := &Inbound{
		ChatID:      m.Chat.ID,
		ContentType: contentType(m),
		Text:        m.Text,
	}
	if m.From != nil {
		msg.UserID = m.From.ID
		msg.FirstName = m.From.FirstName
		msg.Username = m.From.UserName
	}
	return msg
}

func contentType(m *tgbotapi.Message) models.ContentType {
	switch {
	case m.Voice != nil:
		return models.VoiceContent
	case m.Photo != nil:
		return models.PhotoContent
	case m.Text != "":
		return models.TextContent
	default:
		return models.OtherContent
	}
}

func (b *Bot) SendText(chatID int64, text string, keyboard Keyboard) error {
	msg := tgbotapi.NewMessage(chatID, text)
	switch keyboard {
	case KeyboardMainMenu:
		msg.ReplyMarkup = mainMenuKeyboard()
	case KeyboardLanguages:
		msg.ReplyMarkup = languageKeyboard()
	case KeyboardRemove:
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	}

	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendTyping(chatID int64) error {
	_, err := b.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))
	return err
}

func languageKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(labelEnglish),
			tgbotapi.NewKeyboardButton(labelArabic),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(labelKurdish),
		),
	)
	keyboard.OneTimeKeyboard = true
	return keyboard
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/help"),
			tgbotapi.NewKeyboardButton("/clear"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/stats"),
			tgbotapi.NewKeyboardButton("/language"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/feedback"),
		),
	)
}
