package bot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hawkarm/heval-bot/internal/completion"
	"github.com/hawkarm/heval-bot/internal/i18n"
	"github.com/hawkarm/heval-bot/internal/models"
	"github.com/hawkarm/heval-bot/internal/session"
	"github.com/hawkarm/heval-bot/internal/storage"
)

// Keyboard selects the reply markup attached to an outbound message.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardMainMenu
	KeyboardLanguages
	KeyboardRemove
)

// Channel is the outbound half of the messaging transport.
type Channel interface {
	SendText(chatID int64, text string, keyboard Keyboard) error
	SendTyping(chatID int64) error
}

// Dispatcher runs the full per-message flow: classify, apply the rate limit,
// update session state, call the completion service, and emit the reply.
// All mutation of one user's session happens under that session's lock, so
// two messages from the same user never interleave; different users proceed
// concurrently.
type Dispatcher struct {
	sessions  *session.Store
	channel   Channel
	completer completion.Completer
	localizer *i18n.Localizer
	storage   storage.Storage
	logger    *zap.Logger

	adminChatID       int64
	rateLimit         time.Duration
	completionTimeout time.Duration
	now               func() time.Time
}

func NewDispatcher(
	sessions *session.Store,
	channel Channel,
	completer completion.Completer,
	localizer *i18n.Localizer,
	store storage.Storage,
	adminChatID int64,
	rateLimit time.Duration,
	completionTimeout time.Duration,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		sessions:          sessions,
		channel:           channel,
		completer:         completer,
		localizer:         localizer,
		storage:           store,
		logger:            logger,
		adminChatID:       adminChatID,
		rateLimit:         rateLimit,
		completionTimeout: completionTimeout,
		now:               time.Now,
	}
}

// HandleMessage processes one inbound message end to end. It never returns
// an error: every failure path ends in a locally recovered outcome and an
// emitted reply, so one user's trouble cannot take down anyone else.
func (d *Dispatcher) HandleMessage(ctx context.Context, msg *Inbound) {
	s := d.sessions.GetOrCreate(msg.UserID)
	s.Lock()
	defer s.Unlock()

	switch route := Classify(s, msg); route.Kind {
	case RouteFeedback:
		d.handleFeedback(ctx, s, msg)
	case RouteCommand:
		d.handleCommand(s, msg, route.Command)
	case RouteLanguageSelect:
		s.Language = route.Language
		d.send(msg.ChatID, s.Language, i18n.KeyLanguageSet, nil, KeyboardMainMenu)
	case RouteUnsupported:
		d.send(msg.ChatID, s.Language, i18n.KeyVoiceNotSupported, nil, KeyboardNone)
	case RouteChat:
		d.handleChat(ctx, s, msg)
	}
}

func (d *Dispatcher) handleCommand(s *session.UserSession, msg *Inbound, command string) {
	switch command {
	case "start":
		text := d.localizer.Localize(i18n.KeyWelcome, s.Language, map[string]string{"name": msg.FirstName}) +
			d.localizer.Localize(i18n.KeyCommands, s.Language, nil)
		d.sendText(msg.ChatID, text, KeyboardMainMenu)
	case "help":
		text := d.localizer.Localize(i18n.KeyHelp, s.Language, nil) +
			d.localizer.Localize(i18n.KeyCommands, s.Language, nil)
		d.sendText(msg.ChatID, text, KeyboardMainMenu)
	case "clear":
		s.ClearHistory()
		d.send(msg.ChatID, s.Language, i18n.KeyCleared, nil, KeyboardMainMenu)
	case "stats":
		d.send(msg.ChatID, s.Language, i18n.KeyStats, map[string]string{
			"count": strconv.Itoa(s.MessageCount),
			"lang":  s.Language.DisplayName(),
		}, KeyboardMainMenu)
	case "language":
		d.send(msg.ChatID, s.Language, i18n.KeyLanguagePrompt, nil, KeyboardLanguages)
	case "feedback":
		s.AwaitingFeedback = true
		d.send(msg.ChatID, s.Language, i18n.KeyFeedbackPrompt, nil, KeyboardRemove)
	}
}

func (d *Dispatcher) handleFeedback(ctx context.Context, s *session.UserSession, msg *Inbound) {
	s.AwaitingFeedback = false

	feedback := &models.Feedback{
		ID:        uuid.New().String(),
		UserID:    msg.UserID,
		Username:  msg.Username,
		Content:   msg.Text,
		CreatedAt: d.now(),
	}
	if err := d.storage.SaveFeedback(ctx, feedback); err != nil {
		d.logger.Error("Failed to save feedback",
			zap.Error(err),
			zap.Int64("user_id", msg.UserID))
	}

	d.send(msg.ChatID, s.Language, i18n.KeyFeedbackThanks, nil, KeyboardMainMenu)

	if d.adminChatID != 0 {
		note := fmt.Sprintf("📩 New feedback from @%s (%d):\n\n%s", msg.Username, msg.UserID, msg.Text)
		if err := d.channel.SendText(d.adminChatID, note, KeyboardNone); err != nil {
			d.logger.Error("Failed to forward feedback to admin",
				zap.Error(err),
				zap.Int64("admin_chat_id", d.adminChatID))
		}
		d.send(msg.ChatID, s.Language, i18n.KeyAdminNotified, nil, KeyboardNone)
	}
}

func (d *Dispatcher) handleChat(ctx context.Context, s *session.UserSession, msg *Inbound) {
	now := d.now()
	admit, remaining := session.CheckRate(now, s.LastMessageTime, d.rateLimit)
	if !admit {
		d.send(msg.ChatID, s.Language, i18n.KeyRateLimit, map[string]string{
			"seconds": strconv.FormatFloat(remaining, 'f', 1, 64),
		}, KeyboardNone)
		return
	}

	s.LastMessageTime = now
	s.MessageCount++
	s.AppendTurn(models.Turn{Role: models.RoleUser, Text: msg.Text})

	// Best-effort; a failed typing indicator never blocks the reply.
	if err := d.channel.SendTyping(msg.ChatID); err != nil {
		d.logger.Debug("Failed to send typing action",
			zap.Error(err),
			zap.Int64("chat_id", msg.ChatID))
	}

	cctx, cancel := context.WithTimeout(ctx, d.completionTimeout)
	defer cancel()

	reply, err := d.completer.Complete(cctx, s.HistorySnapshot())
	if err != nil {
		d.logger.Error("Completion failed",
			zap.Error(err),
			zap.Int64("user_id", msg.UserID))
		reply = d.localizer.Localize(i18n.KeyError, s.Language, nil)
	}

	// The fallback error text is the model's turn too: later completion
	// calls see it verbatim in context.
	s.AppendTurn(models.Turn{Role: models.RoleModel, Text: reply})
	d.sendText(msg.ChatID, reply, KeyboardMainMenu)
}

func (d *Dispatcher) send(chatID int64, lang models.Language, key i18n.Key, params map[string]string, keyboard Keyboard) {
	d.sendText(chatID, d.localizer.Localize(key, lang, params), keyboard)
}

func (d *Dispatcher) sendText(chatID int64, text string, keyboard Keyboard) {
	if err := d.channel.SendText(chatID, text, keyboard); err != nil {
		d.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
