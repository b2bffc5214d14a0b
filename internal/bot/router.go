package bot

import (
	"strings"

	"github.com/hawkarm/heval-bot/internal/models"
	"github.com/hawkarm/heval-bot/internal/session"
)

// Inbound is one message delivered by the messaging channel.
type Inbound struct {
	UserID      int64
	ChatID      int64
	FirstName   string
	Username    string
	ContentType models.ContentType
	Text        string
}

// Reply-keyboard button labels for the language selector.
const (
	labelEnglish = "English 🇬🇧"
	labelArabic  = "العربية 🇸🇦"
	labelKurdish = "کوردی (سۆرانی) 🇹🇯"
)

var languageLabels = map[string]models.Language{
	labelEnglish: models.English,
	labelArabic:  models.Arabic,
	labelKurdish: models.Kurdish,
}

var knownCommands = map[string]bool{
	"start":    true,
	"help":     true,
	"clear":    true,
	"stats":    true,
	"language": true,
	"feedback": true,
}

// RouteKind is the classification of one inbound message.
type RouteKind int

const (
	RouteFeedback RouteKind = iota
	RouteCommand
	RouteLanguageSelect
	RouteUnsupported
	RouteChat
)

// Route is the outcome of classifying an inbound message. Command carries
// the bare command token for RouteCommand; Language carries the selected
// language for RouteLanguageSelect.
type Route struct {
	Kind     RouteKind
	Command  string
	Language models.Language
}

// Classify decides, exactly once per message, what happens to it:
//
//  1. awaiting-feedback sessions consume the next message as feedback, no
//     matter its content — even text matching a command token;
//  2. a known /command token routes to the command branch (unknown tokens
//     fall through to chat);
//  3. text exactly matching a language-selector label changes the language;
//  4. non-text content gets the fixed unsupported reply;
//  5. anything else is chat.
//
// Caller must hold the session lock.
func Classify(s *session.UserSession, msg *Inbound) Route {
	if s.AwaitingFeedback {
		return Route{Kind: RouteFeedback}
	}

	if msg.ContentType == models.TextContent {
		if cmd, ok := commandToken(msg.Text); ok {
			return Route{Kind: RouteCommand, Command: cmd}
		}
		if lang, ok := languageLabels[msg.Text]; ok {
			return Route{Kind: RouteLanguageSelect, Language: lang}
		}
	}

	if msg.ContentType != models.TextContent {
		return Route{Kind: RouteUnsupported}
	}

	return Route{Kind: RouteChat}
}

func commandToken(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	token := strings.TrimPrefix(strings.Fields(text)[0], "/")
	// Strip the @botname suffix Telegram appends in group chats.
	if at := strings.Index(token, "@"); at >= 0 {
		token = token[:at]
	}
	if !knownCommands[token] {
		return "", false
	}
	return token, true
}
