package impl

import (
	"context"
	"log/slog"

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

type userService struct {
	guard
	userRepo repository.UserRepository
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	Authorizer  authz.Authorizer
	Limiter     service.RateLimiter
	Broadcaster service.StreamBroadcaster
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewUserService creates a new profile service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		guard:    newGuard(params.Authorizer, params.Limiter, params.Broadcaster, params.Publisher, params.Logger),
		userRepo: params.UserRepo,
	}
}

// RegisterUser creates the caller's profile document. UID and email always
// come from the verified identity.
func (s *userService) RegisterUser(ctx context.Context, ident *authz.Identity, input *usecase.RegisterUserInput) (*entity.User, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	now := s.now()
	user := &entity.User{
		ID:           ident.UID,
		Email:        ident.Email,
		DisplayName:  input.DisplayName,
		PhotoURL:     input.PhotoURL,
		Phone:        input.Phone,
		Preferences:  input.Preferences,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastActiveAt: now,
	}

	doc, err := documentOf(model.NewUserFromEntity(user))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionUsers,
		Action:     authz.ActionCreate,
		Identity:   ident,
		ResourceID: user.ID,
		New:        doc,
	}); err != nil {
		return nil, err
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "register user")
	}

	s.announce(ctx, ident, authz.CollectionUsers, authz.ActionCreate, user.ID, "", doc)

	return user, nil
}

// GetUser retrieves a profile, subject to the read policy.
func (s *userService) GetUser(ctx context.Context, ident *authz.Identity, uid string) (*entity.User, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionUsers,
		Action:     authz.ActionRead,
		Identity:   ident,
		ResourceID: uid,
	}); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "get user")
	}

	return user, nil
}

// UpdateUser applies a partial patch to a profile.
func (s *userService) UpdateUser(ctx context.Context, ident *authz.Identity, uid string, input *usecase.UpdateUserInput) (*entity.User, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	old, err := s.userRepo.FindUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrPermissionDenied
		}

		return nil, errors.Wrap(err, "load user for update")
	}

	updated := *old
	if input.DisplayName != nil {
		updated.DisplayName = *input.DisplayName
	}
	if input.PhotoURL != nil {
		updated.PhotoURL = *input.PhotoURL
	}
	if input.Phone != nil {
		updated.Phone = *input.Phone
	}
	if input.Preferences != nil {
		updated.Preferences = input.Preferences
	}
	updated.UpdatedAt = s.now()

	oldDoc, err := documentOf(model.NewUserFromEntity(old))
	if err != nil {
		return nil, err
	}
	newDoc, err := documentOf(model.NewUserFromEntity(&updated))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionUsers,
		Action:     authz.ActionUpdate,
		Identity:   ident,
		ResourceID: uid,
		Old:        oldDoc,
		New:        newDoc,
	}); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateUser(ctx, &updated); err != nil {
		return nil, errors.Wrap(err, "update user")
	}

	s.announce(ctx, ident, authz.CollectionUsers, authz.ActionUpdate, uid, "", newDoc)

	return &updated, nil
}

// DeleteUser removes a profile document.
func (s *userService) DeleteUser(ctx context.Context, ident *authz.Identity, uid string) error {
	if err := s.admit(ident); err != nil {
		return err
	}

	old, err := s.userRepo.FindUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrPermissionDenied
		}

		return errors.Wrap(err, "load user for delete")
	}

	oldDoc, err := documentOf(model.NewUserFromEntity(old))
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionUsers,
		Action:     authz.ActionDelete,
		Identity:   ident,
		ResourceID: uid,
		Old:        oldDoc,
	}); err != nil {
		return err
	}

	if err := s.userRepo.DeleteUser(ctx, uid); err != nil {
		return errors.Wrap(err, "delete user")
	}

	s.announce(ctx, ident, authz.CollectionUsers, authz.ActionDelete, uid, "", nil)

	return nil
}

// RegisterDevice stores an FCM registration token on the caller's profile.
func (s *userService) RegisterDevice(ctx context.Context, ident *authz.Identity, token string) error {
	return s.changeDeviceToken(ctx, ident, token, s.userRepo.AddDeviceToken)
}

// UnregisterDevice removes an FCM registration token from the caller's profile.
func (s *userService) UnregisterDevice(ctx context.Context, ident *authz.Identity, token string) error {
	return s.changeDeviceToken(ctx, ident, token, s.userRepo.RemoveDeviceToken)
}

func (s *userService) changeDeviceToken(ctx context.Context, ident *authz.Identity, token string, apply func(context.Context, string, string) error) error {
	if err := s.admit(ident); err != nil {
		return err
	}
	if token == "" {
		return domainerrors.ErrValidationFailed
	}

	// Device tokens live on the caller's own profile, so the update gate
	// reduces to an ownership check.
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionUsers,
		Action:     authz.ActionRead,
		Identity:   ident,
		ResourceID: ident.UID,
	}); err != nil {
		return err
	}

	if err := apply(ctx, ident.UID, token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "change device token")
	}

	return nil
}
