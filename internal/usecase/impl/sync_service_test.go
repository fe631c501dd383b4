package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
	domainerrors "parkplan/internal/domain/errors"
	mockRepo "parkplan/internal/mocks/repository"
	mockSvc "parkplan/internal/mocks/service"
	"parkplan/internal/usecase"
)

// syncServiceFixtures holds all test dependencies for importer tests.
type syncServiceFixtures struct {
	service       usecase.SyncUsecase
	provider      *mockSvc.MockParkDataProvider
	referenceRepo *mockRepo.MockReferenceRepository
	waitTimeRepo  *mockRepo.MockWaitTimeRepository
	authorizer    *stubAuthorizer
	broadcaster   *recordingBroadcaster
}

func createTestSyncService(t *testing.T) syncServiceFixtures {
	provider := mockSvc.NewMockParkDataProvider(t)
	referenceRepo := mockRepo.NewMockReferenceRepository(t)
	waitTimeRepo := mockRepo.NewMockWaitTimeRepository(t)
	authorizer := &stubAuthorizer{}
	broadcaster := &recordingBroadcaster{}

	svc := NewSyncService(SyncServiceParams{
		Provider:      provider,
		ReferenceRepo: referenceRepo,
		WaitTimeRepo:  waitTimeRepo,
		Authorizer:    authorizer,
		Limiter:       &stubLimiter{},
		Broadcaster:   broadcaster,
		Publisher:     &recordingPublisher{},
		Logger:        testLogger(),
	})

	return syncServiceFixtures{
		service:       svc,
		provider:      provider,
		referenceRepo: referenceRepo,
		waitTimeRepo:  waitTimeRepo,
		authorizer:    authorizer,
		broadcaster:   broadcaster,
	}
}

func TestSyncService_SyncCatalog_Success(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	ident := adminIdentity("importer")
	now := time.Now()
	park := &entity.Park{ID: "magic-kingdom", Name: "Magic Kingdom", UpdatedAt: now}

	fx.provider.EXPECT().FetchParks(ctx).Return([]*entity.Park{park}, nil)
	fx.provider.EXPECT().FetchResorts(ctx).Return([]*entity.Resort{{ID: "poly", Name: "Polynesian", UpdatedAt: now}}, nil)
	fx.provider.EXPECT().FetchAttractions(ctx, "magic-kingdom").
		Return([]*entity.Attraction{{ID: "space-mountain", ParkID: "magic-kingdom", UpdatedAt: now}}, nil)
	fx.provider.EXPECT().FetchRestaurants(ctx, "magic-kingdom").
		Return([]*entity.Restaurant{{ID: "crystal-palace", ParkID: "magic-kingdom", UpdatedAt: now}}, nil)
	fx.provider.EXPECT().FetchParkHours(ctx, "magic-kingdom", scheduleHorizonDays).
		Return([]*entity.ParkHours{{ParkID: "magic-kingdom", Date: now, UpdatedAt: now}}, nil)

	fx.referenceRepo.EXPECT().UpsertParks(ctx, []*entity.Park{park}).Return(nil)
	fx.referenceRepo.EXPECT().UpsertResorts(ctx, mock.AnythingOfType("[]*entity.Resort")).Return(nil)
	fx.referenceRepo.EXPECT().UpsertAttractions(ctx, mock.AnythingOfType("[]*entity.Attraction")).Return(nil)
	fx.referenceRepo.EXPECT().UpsertRestaurants(ctx, mock.AnythingOfType("[]*entity.Restaurant")).Return(nil)
	fx.referenceRepo.EXPECT().UpsertParkHours(ctx, mock.AnythingOfType("[]*entity.ParkHours")).Return(nil)

	err := fx.service.SyncCatalog(ctx, ident)
	require.NoError(t, err)

	collections := make(map[string]bool)
	for _, req := range fx.authorizer.requests {
		assert.Equal(t, authz.ActionCreate, req.Action)
		collections[req.Collection] = true
	}
	for _, want := range []string{
		authz.CollectionParks, authz.CollectionResorts, authz.CollectionAttractions,
		authz.CollectionRestaurants, authz.CollectionParkHours,
	} {
		assert.True(t, collections[want], want)
	}
}

func TestSyncService_SyncCatalog_DeniedForNonAdmin(t *testing.T) {
	fx := createTestSyncService(t)
	fx.authorizer.err = domainerrors.ErrPermissionDenied

	ctx := context.Background()
	fx.provider.EXPECT().FetchParks(ctx).
		Return([]*entity.Park{{ID: "magic-kingdom", UpdatedAt: time.Now()}}, nil)

	err := fx.service.SyncCatalog(ctx, testIdentity("mallory"))
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestSyncService_SyncWaitTimes_BroadcastsBoard(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	waits := []*entity.WaitTime{
		{AttractionID: "space-mountain", ParkID: "magic-kingdom", Minutes: 45, Status: "operating", ObservedAt: time.Now()},
	}

	fx.referenceRepo.EXPECT().FindParks(ctx).
		Return([]*entity.Park{{ID: "magic-kingdom"}}, nil)
	fx.provider.EXPECT().FetchWaitTimes(ctx, "magic-kingdom").
		Return(waits, nil)
	fx.waitTimeRepo.EXPECT().UpsertWaitTimes(ctx, "magic-kingdom", waits).
		Return(nil)

	err := fx.service.SyncWaitTimes(ctx, adminIdentity("importer"))
	require.NoError(t, err)

	require.Len(t, fx.broadcaster.park, 1)
	event := fx.broadcaster.park[0]
	assert.Equal(t, authz.CollectionWaitTimes, event.Collection)
	assert.Equal(t, "magic-kingdom", event.ResourceID)
	assert.Contains(t, event.Document, "space-mountain")
}

func TestSyncService_SyncWaitTimes_SkipsEmptyBoards(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	fx.referenceRepo.EXPECT().FindParks(ctx).
		Return([]*entity.Park{{ID: "epcot"}}, nil)
	fx.provider.EXPECT().FetchWaitTimes(ctx, "epcot").
		Return(nil, nil)

	err := fx.service.SyncWaitTimes(ctx, adminIdentity("importer"))
	require.NoError(t, err)
	assert.Empty(t, fx.broadcaster.park)
}
