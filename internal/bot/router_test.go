package bot

import (
	"testing"

	"github.com/hawkarm/heval-bot/internal/models"
	"github.com/hawkarm/heval-bot/internal/session"
)

func textMsg(text string) *Inbound {
	return &Inbound{UserID: 1, ChatID: 1, ContentType: models.TextContent, Text: text}
}

func TestClassify_Commands(t *testing.T) {
	s := &session.UserSession{}

	for _, cmd := range []string{"start", "help", "clear", "stats", "language", "feedback"} {
		route := Classify(s, textMsg("/"+cmd))
		if route.Kind != RouteCommand {
			t.Errorf("/%s classified as %v, want RouteCommand", cmd, route.Kind)
		}
		if route.Command != cmd {
			t.Errorf("/%s command token = %q, want %q", cmd, route.Command, cmd)
		}
	}
}

func TestClassify_CommandWithBotSuffix(t *testing.T) {
	s := &session.UserSession{}
	route := Classify(s, textMsg("/help@HevalBot"))
	if route.Kind != RouteCommand || route.Command != "help" {
		t.Errorf("got %+v, want RouteCommand help", route)
	}
}

func TestClassify_UnknownCommandIsChat(t *testing.T) {
	s := &session.UserSession{}
	if route := Classify(s, textMsg("/frobnicate")); route.Kind != RouteChat {
		t.Errorf("unknown command classified as %v, want RouteChat", route.Kind)
	}
}

func TestClassify_LanguageLabels(t *testing.T) {
	s := &session.UserSession{}

	tests := []struct {
		label string
		want  models.Language
	}{
		{labelEnglish, models.English},
		{labelArabic, models.Arabic},
		{labelKurdish, models.Kurdish},
	}
	for _, tt := range tests {
		route := Classify(s, textMsg(tt.label))
		if route.Kind != RouteLanguageSelect {
			t.Errorf("%q classified as %v, want RouteLanguageSelect", tt.label, route.Kind)
			continue
		}
		if route.Language != tt.want {
			t.Errorf("%q mapped to %q, want %q", tt.label, route.Language, tt.want)
		}
	}
}

func TestClassify_AwaitingFeedbackWinsOverEverything(t *testing.T) {
	s := &session.UserSession{AwaitingFeedback: true}

	// Even command tokens and language labels are consumed as feedback.
	for _, text := range []string{"/help", labelArabic, "great bot"} {
		if route := Classify(s, textMsg(text)); route.Kind != RouteFeedback {
			t.Errorf("%q with awaiting-feedback classified as %v, want RouteFeedback", text, route.Kind)
		}
	}

	// Any content type, too.
	voice := &Inbound{UserID: 1, ChatID: 1, ContentType: models.VoiceContent}
	if route := Classify(s, voice); route.Kind != RouteFeedback {
		t.Errorf("voice with awaiting-feedback classified as %v, want RouteFeedback", route.Kind)
	}
}

func TestClassify_NonTextIsUnsupported(t *testing.T) {
	s := &session.UserSession{}
	for _, ct := range []models.ContentType{models.VoiceContent, models.PhotoContent, models.OtherContent} {
		msg := &Inbound{UserID: 1, ChatID: 1, ContentType: ct}
		if route := Classify(s, msg); route.Kind != RouteUnsupported {
			t.Errorf("%q classified as %v, want RouteUnsupported", ct, route.Kind)
		}
	}
}

func TestClassify_PlainTextIsChat(t *testing.T) {
	s := &session.UserSession{}
	if route := Classify(s, textMsg("hello there")); route.Kind != RouteChat {
		t.Errorf("plain text classified as %v, want RouteChat", route.Kind)
	}
}
