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
	"parkplan/internal/domain/repository"
	mockRepo "parkplan/internal/mocks/repository"
	"parkplan/internal/usecase"
)

// itineraryServiceFixtures holds all test dependencies for itinerary service tests.
type itineraryServiceFixtures struct {
	service       usecase.ItineraryUsecase
	itineraryRepo *mockRepo.MockItineraryRepository
	authorizer    *stubAuthorizer
	broadcaster   *recordingBroadcaster
	publisher     *recordingPublisher
}

func createTestItineraryService(t *testing.T) itineraryServiceFixtures {
	itineraryRepo := mockRepo.NewMockItineraryRepository(t)
	authorizer := &stubAuthorizer{}
	broadcaster := &recordingBroadcaster{}
	publisher := &recordingPublisher{}

	svc := NewItineraryService(ItineraryServiceParams{
		ItineraryRepo: itineraryRepo,
		Authorizer:    authorizer,
		Limiter:       &stubLimiter{},
		Broadcaster:   broadcaster,
		Publisher:     publisher,
		Logger:        testLogger(),
	})

	return itineraryServiceFixtures{
		service:       svc,
		itineraryRepo: itineraryRepo,
		authorizer:    authorizer,
		broadcaster:   broadcaster,
		publisher:     publisher,
	}
}

func TestItineraryService_CreateItinerary_Success(t *testing.T) {
	fx := createTestItineraryService(t)

	ctx := context.Background()
	fx.itineraryRepo.EXPECT().
		CreateItinerary(ctx, mock.AnythingOfType("*entity.Itinerary")).
		Return(nil)

	itinerary, err := fx.service.CreateItinerary(ctx, testIdentity("alice"), &usecase.CreateItineraryInput{
		VacationID: "vac-1",
		ParkID:     "magic-kingdom",
		Date:       time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Notes:      "rope drop",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, itinerary.ID)
	assert.Equal(t, "vac-1", itinerary.VacationID)
	assert.Equal(t, "alice", itinerary.UserID)

	req := fx.authorizer.last()
	assert.Equal(t, authz.CollectionItineraries, req.Collection)
	assert.Equal(t, authz.ActionCreate, req.Action)
	assert.Equal(t, "vac-1", req.VacationID)

	require.Len(t, fx.broadcaster.vacation, 1)
	require.Len(t, fx.publisher.activity, 1)
}

func TestItineraryService_GetItinerary_PassesStoredStateToPolicy(t *testing.T) {
	fx := createTestItineraryService(t)

	ctx := context.Background()
	stored := &entity.Itinerary{ID: "it-1", VacationID: "vac-1", UserID: "alice"}
	fx.itineraryRepo.EXPECT().
		FindItineraryByID(ctx, "it-1").
		Return(stored, nil)

	itinerary, err := fx.service.GetItinerary(ctx, testIdentity("alice"), "it-1")
	require.NoError(t, err)
	assert.Equal(t, stored, itinerary)

	req := fx.authorizer.last()
	assert.Equal(t, authz.ActionRead, req.Action)
	assert.Equal(t, "vac-1", req.VacationID)
	require.NotNil(t, req.Old)
	assert.Equal(t, "alice", req.Old.GetString("userId"))
}

func TestItineraryService_GetItinerary_MissingIsOpaque(t *testing.T) {
	fx := createTestItineraryService(t)

	ctx := context.Background()
	fx.itineraryRepo.EXPECT().
		FindItineraryByID(ctx, "nope").
		Return(nil, repository.ErrItineraryNotFound)

	_, err := fx.service.GetItinerary(ctx, testIdentity("alice"), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestItineraryService_UpdateItinerary_Patch(t *testing.T) {
	fx := createTestItineraryService(t)

	ctx := context.Background()
	stored := &entity.Itinerary{ID: "it-1", VacationID: "vac-1", UserID: "alice", Notes: "old"}
	fx.itineraryRepo.EXPECT().
		FindItineraryByID(ctx, "it-1").
		Return(stored, nil)
	fx.itineraryRepo.EXPECT().
		UpdateItinerary(ctx, mock.AnythingOfType("*entity.Itinerary")).
		Return(nil)

	notes := "arrive before opening"
	itinerary, err := fx.service.UpdateItinerary(ctx, testIdentity("alice"), "it-1", &usecase.UpdateItineraryInput{
		Notes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, "arrive before opening", itinerary.Notes)
	assert.Equal(t, "vac-1", itinerary.VacationID)
}

func TestItineraryService_DeleteItinerary_Success(t *testing.T) {
	fx := createTestItineraryService(t)

	ctx := context.Background()
	fx.itineraryRepo.EXPECT().
		FindItineraryByID(ctx, "it-1").
		Return(&entity.Itinerary{ID: "it-1", VacationID: "vac-1", UserID: "alice"}, nil)
	fx.itineraryRepo.EXPECT().
		DeleteItinerary(ctx, "it-1").
		Return(nil)

	err := fx.service.DeleteItinerary(ctx, testIdentity("alice"), "it-1")
	require.NoError(t, err)
	assert.Equal(t, authz.ActionDelete, fx.authorizer.last().Action)
}

func TestItineraryService_AddItem_ResolvesParentVacation(t *testing.T) {
	fx := createTestItineraryService(t)

	ctx := context.Background()
	fx.itineraryRepo.EXPECT().
		FindItineraryByID(ctx, "it-1").
		Return(&entity.Itinerary{ID: "it-1", VacationID: "vac-1", UserID: "alice"}, nil)
	fx.itineraryRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.ItineraryItem")).
		Return(nil)

	item, err := fx.service.AddItem(ctx, testIdentity("alice"), "it-1", &usecase.CreateItemInput{
		Name:      "Space Mountain",
		Kind:      "ride",
		StartTime: time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "it-1", item.ItineraryID)

	req := fx.authorizer.last()
	assert.Equal(t, authz.CollectionActivities, req.Collection)
	assert.Equal(t, "vac-1", req.VacationID)
}

func TestItineraryService_AddItem_MissingParentIsOpaque(t *testing.T) {
	fx := createTestItineraryService(t)

	ctx := context.Background()
	fx.itineraryRepo.EXPECT().
		FindItineraryByID(ctx, "nope").
		Return(nil, repository.ErrItineraryNotFound)

	_, err := fx.service.AddItem(ctx, testIdentity("alice"), "nope", &usecase.CreateItemInput{Name: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestItineraryService_UpdateItem_Patch(t *testing.T) {
	fx := createTestItineraryService(t)

	ctx := context.Background()
	fx.itineraryRepo.EXPECT().
		FindItineraryByID(ctx, "it-1").
		Return(&entity.Itinerary{ID: "it-1", VacationID: "vac-1", UserID: "alice"}, nil)
	fx.itineraryRepo.EXPECT().
		FindItemByID(ctx, "it-1", "item-1").
		Return(&entity.ItineraryItem{ID: "item-1", ItineraryID: "it-1", Name: "Space Mountain"}, nil)
	fx.itineraryRepo.EXPECT().
		UpdateItem(ctx, mock.AnythingOfType("*entity.ItineraryItem")).
		Return(nil)

	notes := "single rider line"
	item, err := fx.service.UpdateItem(ctx, testIdentity("alice"), "it-1", "item-1", &usecase.UpdateItemInput{
		Notes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, "single rider line", item.Notes)
	assert.Equal(t, "Space Mountain", item.Name)
}

func TestItineraryService_RemoveItem_Success(t *testing.T) {
	fx := createTestItineraryService(t)

	ctx := context.Background()
	fx.itineraryRepo.EXPECT().
		FindItineraryByID(ctx, "it-1").
		Return(&entity.Itinerary{ID: "it-1", VacationID: "vac-1", UserID: "alice"}, nil)
	fx.itineraryRepo.EXPECT().
		FindItemByID(ctx, "it-1", "item-1").
		Return(&entity.ItineraryItem{ID: "item-1", ItineraryID: "it-1"}, nil)
	fx.itineraryRepo.EXPECT().
		DeleteItem(ctx, "it-1", "item-1").
		Return(nil)

	err := fx.service.RemoveItem(ctx, testIdentity("alice"), "it-1", "item-1")
	require.NoError(t, err)
}

func TestItineraryService_CreateCalendarEvent_Success(t *testing.T) {
	fx := createTestItineraryService(t)

	ctx := context.Background()
	fx.itineraryRepo.EXPECT().
		CreateCalendarEvent(ctx, mock.AnythingOfType("*entity.CalendarEvent")).
		Return(nil)

	event, err := fx.service.CreateCalendarEvent(ctx, testIdentity("alice"), &usecase.CreateCalendarEventInput{
		VacationID: "vac-1",
		Title:      "Dinner at the castle",
		StartTime:  time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", event.CreatedBy)
	assert.Equal(t, authz.CollectionCalendarEvents, fx.authorizer.last().Collection)
}

func TestItineraryService_ListCalendarEvents_Window(t *testing.T) {
	fx := createTestItineraryService(t)

	ctx := context.Background()
	from := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC)
	fx.itineraryRepo.EXPECT().
		FindCalendarEventsByVacation(ctx, "vac-1", from, to).
		Return([]*entity.CalendarEvent{{ID: "ev-1"}}, nil)

	events, err := fx.service.ListCalendarEvents(ctx, testIdentity("alice"), "vac-1", from, to)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
