package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"app/internal/model"
	"app/internal/repository"
)

var ErrEmptyMessage = errors.New("message text is required")

type MessageService interface {
	Send(ctx context.Context, senderID, receiverID int, text string) (*model.Message, error)
	// Conversation returns every message between the two users sorted by
	// timestamp ascending, which is the order the client renders.
	Conversation(ctx context.Context, userA, userB int) ([]model.Message, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) MessageService {
	return &messageService{messageRepo: messageRepo, userRepo: userRepo}
}

func (s *messageService) Send(ctx context.Context, senderID, receiverID int, text string) (*model.Message, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}
	receiver, err := s.userRepo.GetUserByID(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("looking up receiver: %w", err)
	}
	if receiver == nil {
		return nil, ErrUserNotFound
	}

	m, err := s.messageRepo.CreateMessage(ctx, &model.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
	})
	if err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}
	return m, nil
}

func (s *messageService) Conversation(ctx context.Context, userA, userB int) ([]model.Message, error) {
	msgs, err := s.messageRepo.ListMessagesBetween(ctx, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].Timestamp.Before(msgs[j].Timestamp) })
	return msgs, nil
}
