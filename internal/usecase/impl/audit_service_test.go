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
	mockRepo "parkplan/internal/mocks/repository"
	"parkplan/internal/usecase"

	deliverycontext "parkplan/internal/delivery/context"
)

// auditServiceFixtures holds all test dependencies for audit service tests.
type auditServiceFixtures struct {
	service    usecase.AuditUsecase
	auditRepo  *mockRepo.MockAuditRepository
	authorizer *stubAuthorizer
}

func createTestAuditService(t *testing.T) auditServiceFixtures {
	auditRepo := mockRepo.NewMockAuditRepository(t)
	authorizer := &stubAuthorizer{}

	svc := NewAuditService(AuditServiceParams{
		AuditRepo:   auditRepo,
		Authorizer:  authorizer,
		Limiter:     &stubLimiter{},
		Broadcaster: &recordingBroadcaster{},
		Publisher:   &recordingPublisher{},
		Logger:      testLogger(),
	})

	return auditServiceFixtures{
		service:    svc,
		auditRepo:  auditRepo,
		authorizer: authorizer,
	}
}

func TestAuditService_ReportClientError_Success(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	var recorded *entity.ErrorLog
	fx.auditRepo.EXPECT().
		CreateErrorLog(ctx, mock.AnythingOfType("*entity.ErrorLog")).
		Run(func(_ context.Context, log *entity.ErrorLog) {
			recorded = log
		}).
		Return(nil)

	err := fx.service.ReportClientError(ctx, testIdentity("alice"), &usecase.ReportErrorInput{
		Message: "map tiles failed to load",
		Detail:  "timeout after 10s",
	})
	require.NoError(t, err)
	require.NotNil(t, recorded)
	assert.Equal(t, "client", recorded.Source)
	assert.Equal(t, "alice", recorded.ActorID)
	assert.Equal(t, "req-42", recorded.RequestID)
	assert.NotEmpty(t, recorded.ID)
	assert.False(t, recorded.CreatedAt.IsZero())

	req := fx.authorizer.last()
	assert.Equal(t, authz.CollectionErrorLogs, req.Collection)
	assert.Equal(t, authz.ActionCreate, req.Action)
	assert.Equal(t, "map tiles failed to load", req.New.GetString("message"))
}

func TestAuditService_ReportClientError_Denied(t *testing.T) {
	fx := createTestAuditService(t)
	fx.authorizer.err = domainerrors.ErrPermissionDenied

	err := fx.service.ReportClientError(context.Background(), nil, &usecase.ReportErrorInput{Message: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestAuditService_ListActivity_Success(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	fx.auditRepo.EXPECT().
		FindActivityLogsByVacation(ctx, "vac-1", 100).
		Return([]*entity.ActivityLog{{ID: "log-1", Action: "update"}}, nil)

	logs, err := fx.service.ListActivity(ctx, adminIdentity("root"), "vac-1", 100)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, authz.CollectionAnalytics, fx.authorizer.last().Collection)
}

func TestAuditService_ListActivity_Denied(t *testing.T) {
	fx := createTestAuditService(t)
	fx.authorizer.err = domainerrors.ErrPermissionDenied

	_, err := fx.service.ListActivity(context.Background(), testIdentity("alice"), "vac-1", 100)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}
