package session

import (
	"fmt"
	"testing"

	"github.com/hawkarm/heval-bot/internal/models"
)

func TestAppendTurn_KeepsInsertionOrder(t *testing.T) {
	s := &UserSession{}
	s.AppendTurn(models.Turn{Role: models.RoleUser, Text: "hello"})
	s.AppendTurn(models.Turn{Role: models.RoleModel, Text: "hi there"})

	if len(s.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(s.History))
	}
	if s.History[0].Text != "hello" || s.History[1].Text != "hi there" {
		t.Errorf("history order wrong: %+v", s.History)
	}
}

func TestAppendTurn_EvictsOldestPastCapacity(t *testing.T) {
	s := &UserSession{}
	total := MaxHistory + 7
	for i := 0; i < total; i++ {
		s.AppendTurn(models.Turn{Role: models.RoleUser, Text: fmt.Sprintf("turn-%d", i)})
	}

	if len(s.History) != MaxHistory {
		t.Fatalf("history length = %d, want %d", len(s.History), MaxHistory)
	}
	// The retained entries are exactly the most recent MaxHistory, in order.
	for i, turn := range s.History {
		want := fmt.Sprintf("turn-%d", total-MaxHistory+i)
		if turn.Text != want {
			t.Errorf("history[%d] = %q, want %q", i, turn.Text, want)
		}
	}
}

func TestClearHistory(t *testing.T) {
	s := &UserSession{MessageCount: 3}
	s.AppendTurn(models.Turn{Role: models.RoleUser, Text: "hello"})
	s.ClearHistory()

	if len(s.History) != 0 {
		t.Errorf("history length after clear = %d, want 0", len(s.History))
	}
	if s.MessageCount != 3 {
		t.Errorf("clear must not touch MessageCount, got %d", s.MessageCount)
	}
}

func TestHistorySnapshot_IsACopy(t *testing.T) {
	s := &UserSession{}
	s.AppendTurn(models.Turn{Role: models.RoleUser, Text: "hello"})

	snapshot := s.HistorySnapshot()
	snapshot[0].Text = "mutated"

	if s.History[0].Text != "hello" {
		t.Errorf("mutating the snapshot changed the session history: %q", s.History[0].Text)
	}
}
