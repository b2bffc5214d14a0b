// Package i18n holds the bot's reply catalog in English, Arabic, and Kurdish
// (Sorani) and renders templates with named parameters.
package i18n

import (
	"regexp"
	"strings"

	"github.com/hawkarm/heval-bot/internal/models"
	"go.uber.org/zap"
)

// Key identifies one localized message template.
type Key string

const (
	KeyWelcome           Key = "welcome"
	KeyCommands          Key = "commands"
	KeyCleared           Key = "cleared"
	KeyStats             Key = "stats"
	KeyHelp              Key = "help"
	KeyRateLimit         Key = "rate_limit"
	KeyLanguageSet       Key = "language_set"
	KeyLanguagePrompt    Key = "language_prompt"
	KeyError             Key = "error"
	KeyFeedbackPrompt    Key = "feedback_prompt"
	KeyFeedbackThanks    Key = "feedback_thanks"
	KeyVoiceNotSupported Key = "voice_not_supported"
	KeyAdminNotified     Key = "admin_notified"
)

var catalog = map[Key]map[models.Language]string{
	KeyWelcome: {
		models.English: "Hello {name}! I'm your AI assistant ",
		models.Arabic:  "مرحباً {name}! أنا مساعدك الذكي",
		models.Kurdish: "سڵاو {name}! من یاریدەدەری AI-م بۆ تۆم",
	},
	KeyCommands: {
		models.English: "\n\nCommands:\n/start - Restart\n/clear - Clear history\n/stats - Your stats\n/help - Help\n/language - Change language\n/feedback - Send feedback",
		models.Arabic:  "\n\nالأوامر:\n/start - إعادة التشغيل\n/clear - مسح المحادثة\n/stats - إحصائياتك\n/help - مساعدة\n/language - تغيير اللغة\n/feedback - إرسال ملاحظات",
		models.Kurdish: "\n\nفەرمانەکان:\n/start - دەستپێکردنەوە\n/clear - پاککردنەوەی مێژوو\n/stats - ئامارەکان\n/help - یارمەتی\n/language - گۆڕینی زمان\n/feedback - ناردنی ڕەخنە",
	},
	KeyCleared: {
		models.English: "History cleared!",
		models.Arabic:  "تم مسح المحادثة!",
		models.Kurdish: "مێژوو پاککرایەوە!",
	},
	KeyStats: {
		models.English: "📊 Stats:\nMessages: {count}\nLanguage: {lang}",
		models.Arabic:  "📊 الإحصائيات:\nالرسائل: {count}\nاللغة: {lang}",
		models.Kurdish: "📊 ئامارەکان:\nنامەکان: {count}\nزمان: {lang}",
	},
	KeyHelp: {
		models.English: "ℹ️ I'm an AI assistant. I support multiple languages.",
		models.Arabic:  "ℹ️ أنا مساعد ذكي. أدعم عدة لغات.",
		models.Kurdish: "ℹ️ من یاریدەدەری AI-م. پشتیوانی چەند زمانێک دەکەم.",
	},
	KeyRateLimit: {
		models.English: "⏳ Please wait {seconds} seconds...",
		models.Arabic:  "⏳ انتظر {seconds} ثانية...",
		models.Kurdish: "⏳ تکایە {seconds} چرکە چاوەڕێ بکە...",
	},
	KeyLanguageSet: {
		models.English: "✅ Language set to English",
		models.Arabic:  "✅ تم تعيين اللغة إلى العربية",
		models.Kurdish: "✅ زمان گۆڕدرا بۆ کوردی",
	},
	KeyLanguagePrompt: {
		models.English: "🌍 Please choose your language:",
		models.Arabic:  "🌍 الرجاء اختيار لغتك:",
		models.Kurdish: "🌍 تکایە زمان هەڵبژێرە:",
	},
	KeyError: {
		models.English: "❌ Error occurred. Please try again.",
		models.Arabic:  "❌ حدث خطأ. يرجى المحاولة مرة أخرى.",
		models.Kurdish: "❌ هەڵەیەک ڕوویدا. تکایە دووبارە هەوڵبدەرەوە.",
	},
	KeyFeedbackPrompt: {
		models.English: "📝 Please send your feedback or suggestions:",
		models.Arabic:  "📝 الرجاء إرسال ملاحظاتك أو اقتراحاتك:",
		models.Kurdish: "📝 تکایە ڕەخنە یان پێشنیارەکانت بنێرە:",
	},
	KeyFeedbackThanks: {
		models.English: "🙏 Thank you for your feedback!",
		models.Arabic:  "🙏 شكراً لك على ملاحظاتك!",
		models.Kurdish: "🙏 سوپاس بۆ ڕەخنەکەت!",
	},
	KeyVoiceNotSupported: {
		models.English: "🔇 Voice messages are not supported yet.",
		models.Arabic:  "🔇 الرسائل الصوتية غير مدعومة حالياً.",
		models.Kurdish: "🔇 هێشتا پشتگیری نامەی دەنگی ناکرێت.",
	},
	KeyAdminNotified: {
		models.English: "👤 Admin has been notified about your feedback.",
		models.Arabic:  "👤 تم إعلام المسؤول بملاحظاتك.",
		models.Kurdish: "👤 ئەدمین ئاگادارکرایەوە لە ڕەخنەکەت.",
	},
}

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// Localizer renders catalog templates for a language with named parameters.
type Localizer struct {
	logger *zap.Logger
}

func NewLocalizer(logger *zap.Logger) *Localizer {
	return &Localizer{logger: logger}
}

// Localize returns the template for key in lang with every {param}
// placeholder substituted. An unknown key renders as the key itself. If any
// placeholder has no matching parameter the unformatted template is returned
// and the failure is logged; formatting never fails hard.
func (l *Localizer) Localize(key Key, lang models.Language, params map[string]string) string {
	byLang, ok := catalog[key]
	if !ok {
		return string(key)
	}
	template, ok := byLang[lang]
	if !ok {
		return string(key)
	}

	missing := false
	rendered := placeholderPattern.ReplaceAllStringFunc(template, func(placeholder string) string {
		name := strings.Trim(placeholder, "{}")
		if value, ok := params[name]; ok {
			return value
		}
		missing = true
		return placeholder
	})
	if missing {
		l.logger.Error("Failed to format translation",
			zap.String("key", string(key)),
			zap.String("language", string(lang)))
		return template
	}
	return rendered
}
