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

// messageServiceFixtures holds all test dependencies for message service tests.
type messageServiceFixtures struct {
	service     usecase.MessageUsecase
	messageRepo *mockRepo.MockMessageRepository
	authorizer  *stubAuthorizer
	broadcaster *recordingBroadcaster
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	authorizer := &stubAuthorizer{}
	broadcaster := &recordingBroadcaster{}

	svc := NewMessageService(MessageServiceParams{
		MessageRepo: messageRepo,
		Authorizer:  authorizer,
		Limiter:     &stubLimiter{},
		Broadcaster: broadcaster,
		Publisher:   &recordingPublisher{},
		Logger:      testLogger(),
	})

	return messageServiceFixtures{
		service:     svc,
		messageRepo: messageRepo,
		authorizer:  authorizer,
		broadcaster: broadcaster,
	}
}

func TestMessageService_SendMessage_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	fx.messageRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)

	message, err := fx.service.SendMessage(ctx, testIdentity("alice"), "vac-1", "anyone up for rope drop?")
	require.NoError(t, err)
	assert.NotEmpty(t, message.ID)
	assert.Equal(t, "alice", message.SenderID)
	assert.False(t, message.Edited)

	req := fx.authorizer.last()
	assert.Equal(t, authz.CollectionMessages, req.Collection)
	assert.Equal(t, authz.ActionCreate, req.Action)

	require.Len(t, fx.broadcaster.vacation, 1)
}

func TestMessageService_ListMessages_DefaultsLimit(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	fx.messageRepo.EXPECT().
		FindMessagesByVacation(ctx, "vac-1", defaultMessagePage).
		Return([]*entity.Message{}, nil)

	_, err := fx.service.ListMessages(ctx, testIdentity("alice"), "vac-1", 0)
	require.NoError(t, err)
}

func TestMessageService_EditMessage_FlipsEditedFlag(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	stored := &entity.Message{ID: "msg-1", VacationID: "vac-1", SenderID: "alice", Body: "typo"}
	fx.messageRepo.EXPECT().
		FindMessageByID(ctx, "vac-1", "msg-1").
		Return(stored, nil)
	fx.messageRepo.EXPECT().
		UpdateMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)

	message, err := fx.service.EditMessage(ctx, testIdentity("alice"), "vac-1", "msg-1", "fixed")
	require.NoError(t, err)
	assert.Equal(t, "fixed", message.Body)
	assert.True(t, message.Edited)
}

func TestMessageService_ReactToMessage_SetsAndRemoves(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	stored := &entity.Message{
		ID: "msg-1", VacationID: "vac-1", SenderID: "alice",
		Reactions: map[string]string{"bob": "🎉"},
	}
	fx.messageRepo.EXPECT().
		FindMessageByID(ctx, "vac-1", "msg-1").
		Return(stored, nil).Twice()
	fx.messageRepo.EXPECT().
		UpdateMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil).Twice()

	message, err := fx.service.ReactToMessage(ctx, testIdentity("carol"), "vac-1", "msg-1", "❤️")
	require.NoError(t, err)
	assert.Equal(t, "❤️", message.Reactions["carol"])
	assert.Equal(t, "🎉", message.Reactions["bob"])

	message, err = fx.service.ReactToMessage(ctx, testIdentity("bob"), "vac-1", "msg-1", "")
	require.NoError(t, err)
	_, present := message.Reactions["bob"]
	assert.False(t, present)
}

func TestMessageService_ReactToMessage_DoesNotMutateStoredMap(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	stored := &entity.Message{
		ID: "msg-1", VacationID: "vac-1", SenderID: "alice",
		Reactions: map[string]string{"bob": "🎉"},
	}
	fx.messageRepo.EXPECT().
		FindMessageByID(ctx, "vac-1", "msg-1").
		Return(stored, nil)
	fx.messageRepo.EXPECT().
		UpdateMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)

	_, err := fx.service.ReactToMessage(ctx, testIdentity("carol"), "vac-1", "msg-1", "❤️")
	require.NoError(t, err)
	assert.NotContains(t, stored.Reactions, "carol")
}

func TestMessageService_DeleteMessage_MissingIsOpaque(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	fx.messageRepo.EXPECT().
		FindMessageByID(ctx, "vac-1", "nope").
		Return(nil, repository.ErrMessageNotFound)

	err := fx.service.DeleteMessage(ctx, testIdentity("alice"), "vac-1", "nope")
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}
