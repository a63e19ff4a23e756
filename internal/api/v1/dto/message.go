package dto

import (
	"time"

	"app/internal/model"
)

// SendMessageDTO sends a direct message from the authenticated caller.
type SendMessageDTO struct {
	ReceiverID int    `json:"receiverId" validate:"required"`
	Text       string `json:"text" validate:"required"`
}

type MessageResponseDTO struct {
	ID         int       `json:"id"`
	SenderID   int       `json:"senderId"`
	ReceiverID int       `json:"receiverId"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewMessageResponse(m *model.Message) MessageResponseDTO {
	return MessageResponseDTO{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Text:       m.Text,
		Timestamp:  m.Timestamp,
	}
}
