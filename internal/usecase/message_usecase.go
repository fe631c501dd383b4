package usecase

import (
	"context"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
)

// MessageUsecase defines the interface for group-chat use cases
type MessageUsecase interface {
	// SendMessage posts a message to the vacation chat.
	SendMessage(ctx context.Context, ident *authz.Identity, vacationID, body string) (*entity.Message, error)

	// ListMessages retrieves the newest messages of a vacation, up to limit.
	ListMessages(ctx context.Context, ident *authz.Identity, vacationID string, limit int) ([]*entity.Message, error)

	// EditMessage replaces the body of the caller's own message and marks it
	// edited.
	EditMessage(ctx context.Context, ident *authz.Identity, vacationID, messageID, body string) (*entity.Message, error)

	// ReactToMessage sets the caller's reaction on a message. An empty emoji
	// removes the reaction.
	ReactToMessage(ctx context.Context, ident *authz.Identity, vacationID, messageID, emoji string) (*entity.Message, error)

	// DeleteMessage removes a message. Allowed for the author, the vacation
	// owner and admins.
	DeleteMessage(ctx context.Context, ident *authz.Identity, vacationID, messageID string) error
}
