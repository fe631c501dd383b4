package firestore

import (
	"context"

	"cloud.google.com/go/firestore"

	"parkplan/internal/domain/entity"
	"parkplan/internal/domain/repository"
	"parkplan/internal/errors"
	"parkplan/internal/infra/persistence/model"
)

const usersCollection = "users"

// userRepository implements repository.UserRepository on Firestore.
// Documents are keyed by the Firebase Auth UID.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates a Firestore-backed user repository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	doc := model.NewUserFromEntity(user)

	_, err := r.client.Collection(usersCollection).Doc(user.ID).Create(ctx, doc)
	if err != nil {
		if isAlreadyExists(err) {
			return repository.ErrDuplicateUser
		}

		return errors.Wrap(err, "create user")
	}

	return nil
}

func (r *userRepository) FindUserByID(ctx context.Context, uid string) (*entity.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "get user")
	}

	var doc model.User
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode user")
	}
	doc.ID = snap.Ref.ID

	return doc.ToEntity(), nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	doc := model.NewUserFromEntity(user)

	_, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, doc)
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "update user")
	}

	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, uid string) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "delete user")
	}

	return nil
}

func (r *userRepository) AddDeviceToken(ctx context.Context, uid string, token string) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "deviceTokens", Value: firestore.ArrayUnion(token)},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "add device token")
	}

	return nil
}

func (r *userRepository) RemoveDeviceToken(ctx context.Context, uid string, token string) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "deviceTokens", Value: firestore.ArrayRemove(token)},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "remove device token")
	}

	return nil
}
