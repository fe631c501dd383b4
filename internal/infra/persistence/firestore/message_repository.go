package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"parkplan/internal/domain/entity"
	"parkplan/internal/domain/repository"
	"parkplan/internal/errors"
	"parkplan/internal/infra/persistence/model"
)

const messagesSubcollection = "messages"

// messageRepository implements repository.MessageRepository on Firestore.
type messageRepository struct {
	client *firestore.Client
}

// NewMessageRepository creates a Firestore-backed message repository.
func NewMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &messageRepository{client: client}
}

func (r *messageRepository) messageDoc(vacationID, messageID string) *firestore.DocumentRef {
	return r.client.Collection(vacationsCollection).
		Doc(vacationID).
		Collection(messagesSubcollection).
		Doc(messageID)
}

func (r *messageRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	_, err := r.messageDoc(message.VacationID, message.ID).
		Create(ctx, model.NewMessageFromEntity(message))
	if err != nil {
		return errors.Wrap(err, "create message")
	}

	return nil
}

func (r *messageRepository) FindMessageByID(ctx context.Context, vacationID, messageID string) (*entity.Message, error) {
	snap, err := r.messageDoc(vacationID, messageID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "get message")
	}

	var doc model.Message
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode message")
	}
	doc.ID = snap.Ref.ID

	return doc.ToEntity(), nil
}

func (r *messageRepository) FindMessagesByVacation(ctx context.Context, vacationID string, limit int) ([]*entity.Message, error) {
	query := r.client.Collection(vacationsCollection).
		Doc(vacationID).
		Collection(messagesSubcollection).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var messages []*entity.Message
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate messages")
		}

		var doc model.Message
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "decode message")
		}
		doc.ID = snap.Ref.ID
		messages = append(messages, doc.ToEntity())
	}

	return messages, nil
}

func (r *messageRepository) UpdateMessage(ctx context.Context, message *entity.Message) error {
	_, err := r.messageDoc(message.VacationID, message.ID).
		Set(ctx, model.NewMessageFromEntity(message))
	if err != nil {
		if isNotFound(err) {
			return repository.ErrMessageNotFound
		}

		return errors.Wrap(err, "update message")
	}

	return nil
}

func (r *messageRepository) DeleteMessage(ctx context.Context, vacationID, messageID string) error {
	_, err := r.messageDoc(vacationID, messageID).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "delete message")
	}

	return nil
}
