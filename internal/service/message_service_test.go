package service

import (
	"context"
	"errors"
	"testing"

	"app/internal/repository"
)

func newMessageService(db *repository.DB) MessageService {
	return NewMessageService(repository.NewMessageRepo(db), repository.NewUserRepo(db))
}

func TestSendAndConversationOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(db)
	ctx := context.Background()

	if _, err := svc.Send(ctx, 1, 2, "Hello Mrs. Lopez"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if _, err := svc.Send(ctx, 2, 1, "Hi JOY"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	// A message with a third party must not leak into the conversation.
	if _, err := svc.Send(ctx, 1, 3, "Hi admin"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	msgs, err := svc.Conversation(ctx, 1, 2)
	if err != nil {
		t.Fatalf("Conversation returned error: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages in the conversation, got %d", len(msgs))
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i].Timestamp.Before(msgs[i-1].Timestamp) {
			t.Fatal("expected messages sorted by timestamp ascending")
		}
	}

	// The pair is unordered: both directions see the same conversation.
	flipped, _ := svc.Conversation(ctx, 2, 1)
	if len(flipped) != len(msgs) {
		t.Fatalf("expected the same conversation from both sides, got %d vs %d", len(flipped), len(msgs))
	}
}

func TestSendValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(db)
	ctx := context.Background()

	if _, err := svc.Send(ctx, 1, 99, "hello?"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for unknown receiver, got %v", err)
	}
	if _, err := svc.Send(ctx, 1, 2, ""); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}
