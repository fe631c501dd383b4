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

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	locationRepo *mockRepo.MockLocationRepository
	geofenceRepo *mockRepo.MockGeofenceRepository
	authorizer   *stubAuthorizer
	broadcaster  *recordingBroadcaster
	publisher    *recordingPublisher
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	geofenceRepo := mockRepo.NewMockGeofenceRepository(t)
	authorizer := &stubAuthorizer{}
	broadcaster := &recordingBroadcaster{}
	publisher := &recordingPublisher{}

	svc := NewLocationService(LocationServiceParams{
		LocationRepo: locationRepo,
		GeofenceRepo: geofenceRepo,
		Authorizer:   authorizer,
		Limiter:      &stubLimiter{},
		Broadcaster:  broadcaster,
		Publisher:    publisher,
		Logger:       testLogger(),
	})

	return locationServiceFixtures{
		service:      svc,
		locationRepo: locationRepo,
		geofenceRepo: geofenceRepo,
		authorizer:   authorizer,
		broadcaster:  broadcaster,
		publisher:    publisher,
	}
}

// castleZone is roughly Cinderella Castle with a 200 m radius.
func castleZone() *entity.Geofence {
	return &entity.Geofence{
		ID:           "zone-1",
		VacationID:   "vac-1",
		CreatedBy:    "alice",
		Name:         "Castle meetup",
		Latitude:     28.4194,
		Longitude:    -81.5812,
		RadiusMeters: 200,
	}
}

func TestLocationService_UpdateLocation_FirstWriteIsCreate(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	fx.locationRepo.EXPECT().
		FindLocation(ctx, "vac-1", "alice").
		Return(nil, repository.ErrLocationNotFound)
	fx.locationRepo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Return(nil)
	fx.geofenceRepo.EXPECT().
		FindGeofencesByVacation(ctx, "vac-1").
		Return(nil, nil)

	location, alerts, err := fx.service.UpdateLocation(ctx, testIdentity("alice"), &usecase.UpdateLocationInput{
		VacationID:     "vac-1",
		Latitude:       28.3772,
		Longitude:      -81.5707,
		SharingEnabled: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", location.UserID)
	assert.Empty(t, alerts)

	requests := fx.authorizer.requests
	require.Len(t, requests, 1)
	assert.Equal(t, authz.CollectionUserLocations, requests[0].Collection)
	assert.Equal(t, authz.ActionCreate, requests[0].Action)
	assert.Equal(t, "alice", requests[0].ResourceID)
}

func TestLocationService_UpdateLocation_EnteringZoneRaisesAlert(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	zone := castleZone()
	previous := &entity.UserLocation{
		UserID: "alice", VacationID: "vac-1",
		Latitude: 28.3772, Longitude: -81.5707, // about 4.5 km away
		SharingEnabled: true,
	}

	fx.locationRepo.EXPECT().
		FindLocation(ctx, "vac-1", "alice").
		Return(previous, nil)
	fx.locationRepo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Return(nil)
	fx.geofenceRepo.EXPECT().
		FindGeofencesByVacation(ctx, "vac-1").
		Return([]*entity.Geofence{zone}, nil)
	fx.geofenceRepo.EXPECT().
		CreateAlert(ctx, mock.AnythingOfType("*entity.GeofenceAlert")).
		Return(nil)

	_, alerts, err := fx.service.UpdateLocation(ctx, testIdentity("alice"), &usecase.UpdateLocationInput{
		VacationID:     "vac-1",
		Latitude:       zone.Latitude,
		Longitude:      zone.Longitude,
		SharingEnabled: true,
	})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "zone-1", alerts[0].GeofenceID)
	assert.Equal(t, "alice", alerts[0].UserID)
	assert.False(t, alerts[0].EnteredAt.IsZero())

	require.Len(t, fx.publisher.geofence, 1)
	assert.Equal(t, "zone-1", fx.publisher.geofence[0].GeofenceID)
	assert.Equal(t, "Castle meetup", fx.publisher.geofence[0].ZoneName)
}

func TestLocationService_UpdateLocation_StayingInsideZoneIsQuiet(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	zone := castleZone()
	previous := &entity.UserLocation{
		UserID: "alice", VacationID: "vac-1",
		Latitude: zone.Latitude, Longitude: zone.Longitude,
		SharingEnabled: true,
	}

	fx.locationRepo.EXPECT().
		FindLocation(ctx, "vac-1", "alice").
		Return(previous, nil)
	fx.locationRepo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Return(nil)
	fx.geofenceRepo.EXPECT().
		FindGeofencesByVacation(ctx, "vac-1").
		Return([]*entity.Geofence{zone}, nil)

	_, alerts, err := fx.service.UpdateLocation(ctx, testIdentity("alice"), &usecase.UpdateLocationInput{
		VacationID:     "vac-1",
		Latitude:       zone.Latitude + 0.0005, // still inside the radius
		Longitude:      zone.Longitude,
		SharingEnabled: true,
	})
	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.Empty(t, fx.publisher.geofence)
}

func TestLocationService_DeleteLocation_MissingIsOpaque(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	fx.locationRepo.EXPECT().
		FindLocation(ctx, "vac-1", "alice").
		Return(nil, repository.ErrLocationNotFound)

	err := fx.service.DeleteLocation(ctx, testIdentity("alice"), "vac-1", "alice")
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestLocationService_CreateGeofence_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	fx.geofenceRepo.EXPECT().
		CreateGeofence(ctx, mock.AnythingOfType("*entity.Geofence")).
		Return(nil)

	geofence, err := fx.service.CreateGeofence(ctx, testIdentity("alice"), &usecase.CreateGeofenceInput{
		VacationID:   "vac-1",
		Name:         "Castle meetup",
		Latitude:     28.4194,
		Longitude:    -81.5812,
		RadiusMeters: 200,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, geofence.ID)
	assert.Equal(t, "alice", geofence.CreatedBy)
	assert.Equal(t, authz.CollectionGeofences, fx.authorizer.last().Collection)
}

func TestLocationService_UpdateGeofence_Patch(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	fx.geofenceRepo.EXPECT().
		FindGeofenceByID(ctx, "zone-1").
		Return(castleZone(), nil)
	fx.geofenceRepo.EXPECT().
		UpdateGeofence(ctx, mock.AnythingOfType("*entity.Geofence")).
		Return(nil)

	radius := 500.0
	geofence, err := fx.service.UpdateGeofence(ctx, testIdentity("alice"), "zone-1", &usecase.UpdateGeofenceInput{
		RadiusMeters: &radius,
	})
	require.NoError(t, err)
	assert.Equal(t, 500.0, geofence.RadiusMeters)
	assert.Equal(t, "Castle meetup", geofence.Name)
	assert.Equal(t, "vac-1", fx.authorizer.last().VacationID)
}

func TestLocationService_DeleteGeofence_MissingIsOpaque(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	fx.geofenceRepo.EXPECT().
		FindGeofenceByID(ctx, "nope").
		Return(nil, repository.ErrGeofenceNotFound)

	err := fx.service.DeleteGeofence(ctx, testIdentity("alice"), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestLocationService_ListAlerts_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	fx.geofenceRepo.EXPECT().
		FindAlertsByVacation(ctx, "vac-1", 20).
		Return([]*entity.GeofenceAlert{{ID: "alert-1"}}, nil)

	alerts, err := fx.service.ListAlerts(ctx, testIdentity("alice"), "vac-1", 20)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, authz.CollectionGeofenceAlerts, fx.authorizer.last().Collection)
}

func TestInsideZone_Boundary(t *testing.T) {
	zone := castleZone()

	assert.True(t, insideZone(zone, zone.Latitude, zone.Longitude))
	assert.True(t, insideZone(zone, zone.Latitude+0.001, zone.Longitude)) // about 110 m north
	assert.False(t, insideZone(zone, zone.Latitude+0.01, zone.Longitude)) // about 1.1 km north
}
