package session

import (
	"sync"
	"time"

	"github.com/hawkarm/heval-bot/internal/models"
)

// MaxHistory is the per-session cap on stored conversation turns.
// Insertion past the cap drops the oldest turns first.
const MaxHistory = 20

// UserSession holds all per-user conversational state. State lives for the
// process lifetime; nothing is persisted.
//
// All field access must happen with the session locked. Sessions for
// different users are independent, so holding one session's lock never
// blocks another user's messages.
type UserSession struct {
	mu sync.Mutex

	UserID           int64
	Language         models.Language
	History          []models.Turn
	MessageCount     int
	LastMessageTime  time.Time
	AwaitingFeedback bool
}

func (s *UserSession) Lock()   { s.mu.Lock() }
func (s *UserSession) Unlock() { s.mu.Unlock() }
