package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hawkarm/heval-bot/internal/models"
)

func TestMemoryStorage_SaveAndList(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := s.SaveFeedback(ctx, &models.Feedback{
			ID:        fmt.Sprintf("id-%d", i),
			UserID:    int64(i),
			Content:   fmt.Sprintf("feedback %d", i),
			CreatedAt: time.Date(2025, 6, 1, 12, i, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("SaveFeedback: %v", err)
		}
	}

	all, err := s.ListFeedback(ctx, 0)
	if err != nil {
		t.Fatalf("ListFeedback: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListFeedback returned %d records, want 3", len(all))
	}
	// Most recent first.
	if all[0].ID != "id-2" || all[2].ID != "id-0" {
		t.Errorf("order wrong: got %s..%s", all[0].ID, all[2].ID)
	}

	limited, err := s.ListFeedback(ctx, 2)
	if err != nil {
		t.Fatalf("ListFeedback: %v", err)
	}
	if len(limited) != 2 || limited[0].ID != "id-2" || limited[1].ID != "id-1" {
		t.Errorf("limited list = %+v, want the two most recent", limited)
	}
}

func TestMemoryStorage_Close(t *testing.T) {
	s := NewMemoryStorage()
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
