package model

import (
	"time"

	"parkplan/internal/domain/entity"
)

// Message is the Firestore document under vacations/{vacationId}/messages/{messageId}.
type Message struct {
	ID         string            `firestore:"-" json:"-"`
	VacationID string            `firestore:"vacationId" json:"vacationId"`
	SenderID   string            `firestore:"senderId" json:"senderId"`
	Body       string            `firestore:"body" json:"body"`
	Edited     bool              `firestore:"edited" json:"edited"`
	Reactions  map[string]string `firestore:"reactions,omitempty" json:"reactions,omitempty"`
	CreatedAt  time.Time         `firestore:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time         `firestore:"updatedAt" json:"updatedAt"`
}

// NewMessageFromEntity converts a domain message into its storage form.
func NewMessageFromEntity(message *entity.Message) *Message {
	return &Message{
		ID:         message.ID,
		VacationID: message.VacationID,
		SenderID:   message.SenderID,
		Body:       message.Body,
		Edited:     message.Edited,
		Reactions:  message.Reactions,
		CreatedAt:  message.CreatedAt,
		UpdatedAt:  message.UpdatedAt,
	}
}

// ToEntity converts the storage form back into a domain message.
func (m *Message) ToEntity() *entity.Message {
	return &entity.Message{
		ID:         m.ID,
		VacationID: m.VacationID,
		SenderID:   m.SenderID,
		Body:       m.Body,
		Edited:     m.Edited,
		Reactions:  m.Reactions,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
