// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"parkplan/internal/domain/entity"
	"parkplan/internal/errors"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the interface for vacation chat persistence.
// Messages live in a subcollection under their vacation.
type MessageRepository interface {
	// CreateMessage persists a new chat message.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// FindMessageByID retrieves one message of a vacation.
	FindMessageByID(ctx context.Context, vacationID, messageID string) (*entity.Message, error)

	// FindMessagesByVacation retrieves the newest messages of a vacation,
	// ordered by creation time descending, up to limit.
	FindMessagesByVacation(ctx context.Context, vacationID string, limit int) ([]*entity.Message, error)

	// UpdateMessage replaces the stored message document.
	UpdateMessage(ctx context.Context, message *entity.Message) error

	// DeleteMessage removes one message.
	DeleteMessage(ctx context.Context, vacationID, messageID string) error
}
