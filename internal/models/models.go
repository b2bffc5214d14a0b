package models

// Language is a supported display language for bot replies.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
	Kurdish Language = "ku"
)

// DisplayName returns the language name as rendered in the /stats reply.
func (l Language) DisplayName() string {
	switch l {
	case English:
		return "English"
	case Arabic:
		return "العربية"
	case Kurdish:
		return "کوردی"
	default:
		return string(l)
	}
}

// Role tags one side of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is a single role-tagged message in a session's history.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

type ContentType string

const (
	TextContent  ContentType = "text"
	VoiceContent ContentType = "voice"
	PhotoContent ContentType = "photo"
	OtherContent ContentType = "other"
)
