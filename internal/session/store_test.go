package session

import (
	"sync"
	"testing"

	"github.com/hawkarm/heval-bot/internal/models"
)

func TestGetOrCreate_Defaults(t *testing.T) {
	st := NewStore(models.Kurdish)
	s := st.GetOrCreate(42)

	if s.UserID != 42 {
		t.Errorf("UserID = %d, want 42", s.UserID)
	}
	if s.Language != models.Kurdish {
		t.Errorf("Language = %q, want %q", s.Language, models.Kurdish)
	}
	if len(s.History) != 0 || s.MessageCount != 0 {
		t.Errorf("new session not empty: history=%d count=%d", len(s.History), s.MessageCount)
	}
	if !s.LastMessageTime.IsZero() {
		t.Errorf("LastMessageTime = %v, want zero so the first message is never rate-limited", s.LastMessageTime)
	}
	if s.AwaitingFeedback {
		t.Error("AwaitingFeedback = true on a fresh session")
	}
}

func TestGetOrCreate_ReturnsSameSession(t *testing.T) {
	st := NewStore(models.Kurdish)
	a := st.GetOrCreate(1)
	a.MessageCount = 5

	b := st.GetOrCreate(1)
	if a != b {
		t.Fatal("GetOrCreate returned a different session for the same user")
	}
	if b.MessageCount != 5 {
		t.Errorf("MessageCount = %d, want 5", b.MessageCount)
	}
	if st.Len() != 1 {
		t.Errorf("store has %d sessions, want 1", st.Len())
	}
}

func TestGetOrCreate_ConcurrentSameUser(t *testing.T) {
	st := NewStore(models.Kurdish)

	const goroutines = 50
	sessions := make([]*UserSession, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i] = st.GetOrCreate(7)
		}(i)
	}
	wg.Wait()

	if st.Len() != 1 {
		t.Fatalf("store has %d sessions, want 1", st.Len())
	}
	for i := 1; i < goroutines; i++ {
		if sessions[i] != sessions[0] {
			t.Fatal("concurrent GetOrCreate produced distinct sessions for one user")
		}
	}
}

func TestGetOrCreate_DistinctUsers(t *testing.T) {
	st := NewStore(models.English)
	a := st.GetOrCreate(1)
	b := st.GetOrCreate(2)
	if a == b {
		t.Fatal("distinct users share a session")
	}
	if st.Len() != 2 {
		t.Errorf("store has %d sessions, want 2", st.Len())
	}
}
