package store

import (
	"context"
	"testing"
	"time"

	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCreateAndGetMessages(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	msgs := []*domain.ChatMessage{
		{ID: "m1", UserID: "u1", Role: "user", Content: "hello", CreatedAt: base},
		{ID: "m2", UserID: "u1", Role: "assistant", Content: "hi there", CreatedAt: base.Add(time.Second)},
		{ID: "m3", UserID: "u2", Role: "user", Content: "other user", CreatedAt: base},
	}
	for _, m := range msgs {
		if err := s.CreateMessage(ctx, m); err != nil {
			t.Fatalf("CreateMessage failed: %v", err)
		}
	}

	got, err := s.GetMessages(ctx, "u1", 50, "")
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got))
	}
	if got[0].ID != "m1" || got[1].ID != "m2" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].Role != "user" || got[1].Content != "hi there" {
		t.Fatalf("unexpected messages: %+v", got)
	}
}

func TestGetMessagesLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		msg := &domain.ChatMessage{
			ID:        string(rune('a' + i)),
			UserID:    "u1",
			Role:      "user",
			Content:   "msg",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := s.CreateMessage(ctx, msg); err != nil {
			t.Fatalf("CreateMessage failed: %v", err)
		}
	}

	got, err := s.GetMessages(ctx, "u1", 3, "")
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got))
	}
}

func TestGetMessagesEmpty(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetMessages(context.Background(), "nobody", 10, "")
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no messages, got %d", len(got))
	}
}
