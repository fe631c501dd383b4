package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
	domainerrors "parkplan/internal/domain/errors"
	"parkplan/internal/domain/repository"
	mockRepo "parkplan/internal/mocks/repository"
	"parkplan/internal/usecase"
)

// referenceServiceFixtures holds all test dependencies for reference service tests.
type referenceServiceFixtures struct {
	service       usecase.ReferenceUsecase
	referenceRepo *mockRepo.MockReferenceRepository
	waitTimeRepo  *mockRepo.MockWaitTimeRepository
	authorizer    *stubAuthorizer
}

func createTestReferenceService(t *testing.T) referenceServiceFixtures {
	referenceRepo := mockRepo.NewMockReferenceRepository(t)
	waitTimeRepo := mockRepo.NewMockWaitTimeRepository(t)
	authorizer := &stubAuthorizer{}

	svc := NewReferenceService(ReferenceServiceParams{
		ReferenceRepo: referenceRepo,
		WaitTimeRepo:  waitTimeRepo,
		Authorizer:    authorizer,
		Limiter:       &stubLimiter{},
		Broadcaster:   &recordingBroadcaster{},
		Publisher:     &recordingPublisher{},
		Logger:        testLogger(),
	})

	return referenceServiceFixtures{
		service:       svc,
		referenceRepo: referenceRepo,
		waitTimeRepo:  waitTimeRepo,
		authorizer:    authorizer,
	}
}

func TestReferenceService_ListParks_Success(t *testing.T) {
	fx := createTestReferenceService(t)

	ctx := context.Background()
	fx.referenceRepo.EXPECT().
		FindParks(ctx).
		Return([]*entity.Park{{ID: "magic-kingdom", Name: "Magic Kingdom"}}, nil)

	parks, err := fx.service.ListParks(ctx, testIdentity("alice"))
	require.NoError(t, err)
	assert.Len(t, parks, 1)

	req := fx.authorizer.last()
	assert.Equal(t, authz.CollectionParks, req.Collection)
	assert.Equal(t, authz.ActionRead, req.Action)
}

func TestReferenceService_ListParks_Denied(t *testing.T) {
	fx := createTestReferenceService(t)
	fx.authorizer.err = domainerrors.ErrPermissionDenied

	_, err := fx.service.ListParks(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestReferenceService_GetPark_NotFound(t *testing.T) {
	fx := createTestReferenceService(t)

	ctx := context.Background()
	fx.referenceRepo.EXPECT().
		FindParkByID(ctx, "nope").
		Return(nil, repository.ErrParkNotFound)

	_, err := fx.service.GetPark(ctx, testIdentity("alice"), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestReferenceService_ListAttractions_Success(t *testing.T) {
	fx := createTestReferenceService(t)

	ctx := context.Background()
	fx.referenceRepo.EXPECT().
		FindAttractionsByPark(ctx, "magic-kingdom").
		Return([]*entity.Attraction{{ID: "space-mountain", ParkID: "magic-kingdom"}}, nil)

	attractions, err := fx.service.ListAttractions(ctx, testIdentity("alice"), "magic-kingdom")
	require.NoError(t, err)
	assert.Len(t, attractions, 1)
	assert.Equal(t, authz.CollectionAttractions, fx.authorizer.last().Collection)
}

func TestReferenceService_GetParkHours_Success(t *testing.T) {
	fx := createTestReferenceService(t)

	ctx := context.Background()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	fx.referenceRepo.EXPECT().
		FindParkHours(ctx, "magic-kingdom", date).
		Return(&entity.ParkHours{ParkID: "magic-kingdom", Date: date}, nil)

	hours, err := fx.service.GetParkHours(ctx, testIdentity("alice"), "magic-kingdom", date)
	require.NoError(t, err)
	assert.Equal(t, "magic-kingdom", hours.ParkID)
}

func TestReferenceService_GetWaitTimes_Success(t *testing.T) {
	fx := createTestReferenceService(t)

	ctx := context.Background()
	fx.waitTimeRepo.EXPECT().
		FindWaitTimesByPark(ctx, "magic-kingdom").
		Return([]*entity.WaitTime{{AttractionID: "space-mountain", Minutes: 45, Status: "operating"}}, nil)

	waits, err := fx.service.GetWaitTimes(ctx, testIdentity("alice"), "magic-kingdom")
	require.NoError(t, err)
	require.Len(t, waits, 1)
	assert.Equal(t, 45, waits[0].Minutes)
	assert.Equal(t, authz.CollectionWaitTimes, fx.authorizer.last().Collection)
}
