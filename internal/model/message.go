package model

import "time"

// Message is one direct message between two users. Messages are never
// edited or deleted; a conversation is derived by filtering on the
// unordered {sender, receiver} pair.
type Message struct {
	ID         int       `json:"id"`
	SenderID   int       `json:"senderId"`
	ReceiverID int       `json:"receiverId"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}
