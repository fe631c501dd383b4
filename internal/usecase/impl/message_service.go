package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
	domainerrors "parkplan/internal/domain/errors"
	"parkplan/internal/domain/repository"
	"parkplan/internal/domain/service"
	"parkplan/internal/errors"
	"parkplan/internal/infra/persistence/model"
	"parkplan/internal/usecase"
)

// defaultMessagePage bounds unpaged chat history reads.
const defaultMessagePage = 50

type messageService struct {
	guard
	messageRepo repository.MessageRepository
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	Authorizer  authz.Authorizer
	Limiter     service.RateLimiter
	Broadcaster service.StreamBroadcaster
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewMessageService creates a new group-chat service instance
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		guard:       newGuard(params.Authorizer, params.Limiter, params.Broadcaster, params.Publisher, params.Logger),
		messageRepo: params.MessageRepo,
	}
}

// SendMessage posts a message to the vacation chat.
func (s *messageService) SendMessage(ctx context.Context, ident *authz.Identity, vacationID, body string) (*entity.Message, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	now := s.now()
	message := &entity.Message{
		ID:         uuid.New().String(),
		VacationID: vacationID,
		SenderID:   ident.UID,
		Body:       body,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	doc, err := documentOf(model.NewMessageFromEntity(message))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionMessages,
		Action:     authz.ActionCreate,
		Identity:   ident,
		ResourceID: message.ID,
		VacationID: vacationID,
		New:        doc,
	}); err != nil {
		return nil, err
	}

	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, errors.Wrap(err, "send message")
	}

	s.announce(ctx, ident, authz.CollectionMessages, authz.ActionCreate, message.ID, vacationID, doc)

	return message, nil
}

// ListMessages retrieves the newest messages of a vacation, up to limit.
func (s *messageService) ListMessages(ctx context.Context, ident *authz.Identity, vacationID string, limit int) ([]*entity.Message, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionMessages,
		Action:     authz.ActionRead,
		Identity:   ident,
		VacationID: vacationID,
	}); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultMessagePage
	}

	messages, err := s.messageRepo.FindMessagesByVacation(ctx, vacationID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list messages")
	}

	return messages, nil
}

// EditMessage replaces the body of the caller's own message. The policy
// requires the edited flag to flip alongside the body change.
func (s *messageService) EditMessage(ctx context.Context, ident *authz.Identity, vacationID, messageID, body string) (*entity.Message, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	old, err := s.loadMessage(ctx, vacationID, messageID)
	if err != nil {
		return nil, err
	}

	updated := *old
	updated.Body = body
	updated.Edited = true
	updated.UpdatedAt = s.now()

	newDoc, err := s.authorizeMessageUpdate(ctx, ident, old, &updated)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.UpdateMessage(ctx, &updated); err != nil {
		return nil, errors.Wrap(err, "edit message")
	}

	s.announce(ctx, ident, authz.CollectionMessages, authz.ActionUpdate, messageID, vacationID, newDoc)

	return &updated, nil
}

// ReactToMessage sets the caller's reaction on a message. An empty emoji
// removes the reaction.
func (s *messageService) ReactToMessage(ctx context.Context, ident *authz.Identity, vacationID, messageID, emoji string) (*entity.Message, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	old, err := s.loadMessage(ctx, vacationID, messageID)
	if err != nil {
		return nil, err
	}

	updated := *old
	updated.Reactions = make(map[string]string, len(old.Reactions)+1)
	for uid, reaction := range old.Reactions {
		updated.Reactions[uid] = reaction
	}
	if emoji == "" {
		delete(updated.Reactions, ident.UID)
	} else {
		updated.Reactions[ident.UID] = emoji
	}
	updated.UpdatedAt = s.now()

	newDoc, err := s.authorizeMessageUpdate(ctx, ident, old, &updated)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.UpdateMessage(ctx, &updated); err != nil {
		return nil, errors.Wrap(err, "react to message")
	}

	s.announce(ctx, ident, authz.CollectionMessages, authz.ActionUpdate, messageID, vacationID, newDoc)

	return &updated, nil
}

// DeleteMessage removes a message. Allowed for the author, the vacation
// owner and admins.
func (s *messageService) DeleteMessage(ctx context.Context, ident *authz.Identity, vacationID, messageID string) error {
	if err := s.admit(ident); err != nil {
		return err
	}

	old, err := s.loadMessage(ctx, vacationID, messageID)
	if err != nil {
		return err
	}

	oldDoc, err := documentOf(model.NewMessageFromEntity(old))
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionMessages,
		Action:     authz.ActionDelete,
		Identity:   ident,
		ResourceID: messageID,
		VacationID: vacationID,
		Old:        oldDoc,
	}); err != nil {
		return err
	}

	if err := s.messageRepo.DeleteMessage(ctx, vacationID, messageID); err != nil {
		return errors.Wrap(err, "delete message")
	}

	s.announce(ctx, ident, authz.CollectionMessages, authz.ActionDelete, messageID, vacationID, nil)

	return nil
}

func (s *messageService) loadMessage(ctx context.Context, vacationID, messageID string) (*entity.Message, error) {
	message, err := s.messageRepo.FindMessageByID(ctx, vacationID, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrPermissionDenied
		}

		return nil, errors.Wrap(err, "load message")
	}

	return message, nil
}

func (s *messageService) authorizeMessageUpdate(ctx context.Context, ident *authz.Identity, old, updated *entity.Message) (authz.Document, error) {
	oldDoc, err := documentOf(model.NewMessageFromEntity(old))
	if err != nil {
		return nil, err
	}
	newDoc, err := documentOf(model.NewMessageFromEntity(updated))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionMessages,
		Action:     authz.ActionUpdate,
		Identity:   ident,
		ResourceID: old.ID,
		VacationID: old.VacationID,
		Old:        oldDoc,
		New:        newDoc,
	}); err != nil {
		return nil, err
	}

	return newDoc, nil
}
