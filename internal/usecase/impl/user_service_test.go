package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
	domainerrors "parkplan/internal/domain/errors"
	"parkplan/internal/domain/repository"
	mockRepo "parkplan/internal/mocks/repository"
	"parkplan/internal/usecase"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service     usecase.UserUsecase
	userRepo    *mockRepo.MockUserRepository
	authorizer  *stubAuthorizer
	limiter     *stubLimiter
	broadcaster *recordingBroadcaster
	publisher   *recordingPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	authorizer := &stubAuthorizer{}
	limiter := &stubLimiter{}
	broadcaster := &recordingBroadcaster{}
	publisher := &recordingPublisher{}

	svc := NewUserService(UserServiceParams{
		UserRepo:    userRepo,
		Authorizer:  authorizer,
		Limiter:     limiter,
		Broadcaster: broadcaster,
		Publisher:   publisher,
		Logger:      testLogger(),
	})

	return userServiceFixtures{
		service:     svc,
		userRepo:    userRepo,
		authorizer:  authorizer,
		limiter:     limiter,
		broadcaster: broadcaster,
		publisher:   publisher,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	ident := testIdentity("alice")

	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := fx.service.RegisterUser(ctx, ident, &usecase.RegisterUserInput{
		DisplayName: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.DisplayName)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)

	req := fx.authorizer.last()
	require.NotNil(t, req)
	assert.Equal(t, authz.CollectionUsers, req.Collection)
	assert.Equal(t, authz.ActionCreate, req.Action)
	assert.Equal(t, "alice", req.ResourceID)
	assert.NotNil(t, req.New)
	assert.Nil(t, req.Old)

	require.Len(t, fx.publisher.activity, 1)
	assert.Equal(t, "alice", fx.publisher.activity[0].ActorID)
	assert.Equal(t, authz.CollectionUsers, fx.publisher.activity[0].Collection)
}

func TestUserService_RegisterUser_Duplicate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	ident := testIdentity("alice")

	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	_, err := fx.service.RegisterUser(ctx, ident, &usecase.RegisterUserInput{DisplayName: "Alice"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterUser_Denied(t *testing.T) {
	fx := createTestUserService(t)
	fx.authorizer.err = domainerrors.ErrPermissionDenied

	_, err := fx.service.RegisterUser(context.Background(), testIdentity("alice"), &usecase.RegisterUserInput{})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	assert.Empty(t, fx.publisher.activity)
}

func TestUserService_RegisterUser_RateLimited(t *testing.T) {
	fx := createTestUserService(t)
	fx.limiter.denied = true

	_, err := fx.service.RegisterUser(context.Background(), testIdentity("alice"), &usecase.RegisterUserInput{})
	assert.ErrorIs(t, err, domainerrors.ErrTooManyRequests)
	assert.Empty(t, fx.authorizer.requests)
}

func TestUserService_GetUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{ID: "bob", DisplayName: "Bob"}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, "bob").
		Return(stored, nil)

	user, err := fx.service.GetUser(ctx, testIdentity("bob"), "bob")
	require.NoError(t, err)
	assert.Equal(t, stored, user)

	req := fx.authorizer.last()
	assert.Equal(t, authz.ActionRead, req.Action)
	assert.Equal(t, "bob", req.ResourceID)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindUserByID(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(ctx, testIdentity("ghost"), "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUser_PatchesOnlyGivenFields(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{ID: "alice", DisplayName: "Alice", Phone: "+1-555-0100"}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, "alice").
		Return(stored, nil)
	fx.userRepo.EXPECT().
		UpdateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	name := "Alice B"
	user, err := fx.service.UpdateUser(ctx, testIdentity("alice"), "alice", &usecase.UpdateUserInput{
		DisplayName: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", user.DisplayName)
	assert.Equal(t, "+1-555-0100", user.Phone)
	assert.False(t, user.UpdatedAt.IsZero())

	req := fx.authorizer.last()
	assert.Equal(t, authz.ActionUpdate, req.Action)
	assert.NotNil(t, req.Old)
	assert.NotNil(t, req.New)
}

func TestUserService_UpdateUser_MissingProfileIsOpaque(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindUserByID(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.UpdateUser(ctx, testIdentity("alice"), "ghost", &usecase.UpdateUserInput{})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindUserByID(ctx, "alice").
		Return(&entity.User{ID: "alice"}, nil)
	fx.userRepo.EXPECT().
		DeleteUser(ctx, "alice").
		Return(nil)

	err := fx.service.DeleteUser(ctx, testIdentity("alice"), "alice")
	require.NoError(t, err)
	assert.Equal(t, authz.ActionDelete, fx.authorizer.last().Action)
}

func TestUserService_RegisterDevice_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		AddDeviceToken(ctx, "alice", "fcm-token-1").
		Return(nil)

	err := fx.service.RegisterDevice(ctx, testIdentity("alice"), "fcm-token-1")
	require.NoError(t, err)
}

func TestUserService_RegisterDevice_EmptyToken(t *testing.T) {
	fx := createTestUserService(t)

	err := fx.service.RegisterDevice(context.Background(), testIdentity("alice"), "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_UnregisterDevice_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		RemoveDeviceToken(ctx, "alice", "fcm-token-1").
		Return(nil)

	err := fx.service.UnregisterDevice(ctx, testIdentity("alice"), "fcm-token-1")
	require.NoError(t, err)
}
