package repository

import (
	"context"
	"time"

	"app/internal/model"
)

type MessageRepository interface {
	CreateMessage(ctx context.Context, m *model.Message) (*model.Message, error)
	// ListMessagesBetween returns every message exchanged between the
	// two users in insertion order, regardless of direction.
	ListMessagesBetween(ctx context.Context, userA, userB int) ([]model.Message, error)
}

type messageRepo struct {
	db *DB
}

func NewMessageRepo(db *DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) CreateMessage(ctx context.Context, m *model.Message) (*model.Message, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	m.ID = r.db.nextMessageID
	r.db.nextMessageID++
	m.Timestamp = time.Now().UTC()
	r.db.messages = append(r.db.messages, *m)
	created := *m
	return &created, nil
}

func (r *messageRepo) ListMessagesBetween(ctx context.Context, userA, userB int) ([]model.Message, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []model.Message
	for i := range r.db.messages {
		m := r.db.messages[i]
		if (m.SenderID == userA && m.ReceiverID == userB) || (m.SenderID == userB && m.ReceiverID == userA) {
			out = append(out, m)
		}
	}
	return out, nil
}
