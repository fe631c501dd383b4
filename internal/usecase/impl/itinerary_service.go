package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
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

type itineraryService struct {
	guard
	itineraryRepo repository.ItineraryRepository
}

// ItineraryServiceParams holds dependencies for ItineraryService, injected by Fx.
type ItineraryServiceParams struct {
	fx.In

	ItineraryRepo repository.ItineraryRepository
	Authorizer    authz.Authorizer
	Limiter       service.RateLimiter
	Broadcaster   service.StreamBroadcaster
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewItineraryService creates a new day-plan service instance
func NewItineraryService(params ItineraryServiceParams) usecase.ItineraryUsecase {
	return &itineraryService{
		guard:         newGuard(params.Authorizer, params.Limiter, params.Broadcaster, params.Publisher, params.Logger),
		itineraryRepo: params.ItineraryRepo,
	}
}

// CreateItinerary creates a day plan within a vacation.
func (s *itineraryService) CreateItinerary(ctx context.Context, ident *authz.Identity, input *usecase.CreateItineraryInput) (*entity.Itinerary, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	now := s.now()
	itinerary := &entity.Itinerary{
		ID:         uuid.New().String(),
		VacationID: input.VacationID,
		UserID:     ident.UID,
		ParkID:     input.ParkID,
		Date:       input.Date,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	doc, err := documentOf(model.NewItineraryFromEntity(itinerary))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionItineraries,
		Action:     authz.ActionCreate,
		Identity:   ident,
		ResourceID: itinerary.ID,
		VacationID: input.VacationID,
		New:        doc,
	}); err != nil {
		return nil, err
	}

	if err := s.itineraryRepo.CreateItinerary(ctx, itinerary); err != nil {
		return nil, errors.Wrap(err, "create itinerary")
	}

	s.announce(ctx, ident, authz.CollectionItineraries, authz.ActionCreate, itinerary.ID, input.VacationID, doc)

	return itinerary, nil
}

// GetItinerary retrieves a day plan, subject to the read policy.
func (s *itineraryService) GetItinerary(ctx context.Context, ident *authz.Identity, id string) (*entity.Itinerary, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	itinerary, err := s.loadItinerary(ctx, id)
	if err != nil {
		return nil, err
	}

	oldDoc, err := documentOf(model.NewItineraryFromEntity(itinerary))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionItineraries,
		Action:     authz.ActionRead,
		Identity:   ident,
		ResourceID: id,
		VacationID: itinerary.VacationID,
		Old:        oldDoc,
	}); err != nil {
		return nil, err
	}

	return itinerary, nil
}

// ListItineraries retrieves the day plans of a vacation ordered by date.
func (s *itineraryService) ListItineraries(ctx context.Context, ident *authz.Identity, vacationID string) ([]*entity.Itinerary, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionItineraries,
		Action:     authz.ActionRead,
		Identity:   ident,
		VacationID: vacationID,
	}); err != nil {
		return nil, err
	}

	itineraries, err := s.itineraryRepo.FindItinerariesByVacation(ctx, vacationID)
	if err != nil {
		return nil, errors.Wrap(err, "list itineraries")
	}

	return itineraries, nil
}

// UpdateItinerary applies a partial patch to a day plan.
func (s *itineraryService) UpdateItinerary(ctx context.Context, ident *authz.Identity, id string, input *usecase.UpdateItineraryInput) (*entity.Itinerary, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	old, err := s.loadItinerary(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *old
	if input.ParkID != nil {
		updated.ParkID = *input.ParkID
	}
	if input.Date != nil {
		updated.Date = *input.Date
	}
	if input.Notes != nil {
		updated.Notes = *input.Notes
	}
	updated.UpdatedAt = s.now()

	oldDoc, err := documentOf(model.NewItineraryFromEntity(old))
	if err != nil {
		return nil, err
	}
	newDoc, err := documentOf(model.NewItineraryFromEntity(&updated))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionItineraries,
		Action:     authz.ActionUpdate,
		Identity:   ident,
		ResourceID: id,
		VacationID: old.VacationID,
		Old:        oldDoc,
		New:        newDoc,
	}); err != nil {
		return nil, err
	}

	if err := s.itineraryRepo.UpdateItinerary(ctx, &updated); err != nil {
		return nil, errors.Wrap(err, "update itinerary")
	}

	s.announce(ctx, ident, authz.CollectionItineraries, authz.ActionUpdate, id, old.VacationID, newDoc)

	return &updated, nil
}

// DeleteItinerary removes a day plan and its activities.
func (s *itineraryService) DeleteItinerary(ctx context.Context, ident *authz.Identity, id string) error {
	if err := s.admit(ident); err != nil {
		return err
	}

	old, err := s.loadItinerary(ctx, id)
	if err != nil {
		return err
	}

	oldDoc, err := documentOf(model.NewItineraryFromEntity(old))
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionItineraries,
		Action:     authz.ActionDelete,
		Identity:   ident,
		ResourceID: id,
		VacationID: old.VacationID,
		Old:        oldDoc,
	}); err != nil {
		return err
	}

	if err := s.itineraryRepo.DeleteItinerary(ctx, id); err != nil {
		return errors.Wrap(err, "delete itinerary")
	}

	s.announce(ctx, ident, authz.CollectionItineraries, authz.ActionDelete, id, old.VacationID, nil)

	return nil
}

// AddItem schedules an activity within a day plan.
func (s *itineraryService) AddItem(ctx context.Context, ident *authz.Identity, itineraryID string, input *usecase.CreateItemInput) (*entity.ItineraryItem, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	parent, err := s.loadItinerary(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	item := &entity.ItineraryItem{
		ID:           uuid.New().String(),
		ItineraryID:  itineraryID,
		AttractionID: input.AttractionID,
		Name:         input.Name,
		Kind:         input.Kind,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Notes:        input.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	doc, err := documentOf(model.NewItineraryItemFromEntity(item))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionActivities,
		Action:     authz.ActionCreate,
		Identity:   ident,
		ResourceID: item.ID,
		VacationID: parent.VacationID,
		New:        doc,
	}); err != nil {
		return nil, err
	}

	if err := s.itineraryRepo.CreateItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "add itinerary item")
	}

	s.announce(ctx, ident, authz.CollectionActivities, authz.ActionCreate, item.ID, parent.VacationID, doc)

	return item, nil
}

// ListItems retrieves the activities of a day plan ordered by start time.
func (s *itineraryService) ListItems(ctx context.Context, ident *authz.Identity, itineraryID string) ([]*entity.ItineraryItem, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	parent, err := s.loadItinerary(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionActivities,
		Action:     authz.ActionRead,
		Identity:   ident,
		VacationID: parent.VacationID,
	}); err != nil {
		return nil, err
	}

	items, err := s.itineraryRepo.FindItemsByItinerary(ctx, itineraryID)
	if err != nil {
		return nil, errors.Wrap(err, "list itinerary items")
	}

	return items, nil
}

// UpdateItem applies a partial patch to an activity.
func (s *itineraryService) UpdateItem(ctx context.Context, ident *authz.Identity, itineraryID, itemID string, input *usecase.UpdateItemInput) (*entity.ItineraryItem, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	parent, err := s.loadItinerary(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	old, err := s.itineraryRepo.FindItemByID(ctx, itineraryID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItineraryItemNotFound) {
			return nil, domainerrors.ErrPermissionDenied
		}

		return nil, errors.Wrap(err, "load itinerary item for update")
	}

	updated := *old
	if input.AttractionID != nil {
		updated.AttractionID = *input.AttractionID
	}
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.Kind != nil {
		updated.Kind = *input.Kind
	}
	if input.StartTime != nil {
		updated.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		updated.EndTime = *input.EndTime
	}
	if input.Notes != nil {
		updated.Notes = *input.Notes
	}
	updated.UpdatedAt = s.now()

	oldDoc, err := documentOf(model.NewItineraryItemFromEntity(old))
	if err != nil {
		return nil, err
	}
	newDoc, err := documentOf(model.NewItineraryItemFromEntity(&updated))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionActivities,
		Action:     authz.ActionUpdate,
		Identity:   ident,
		ResourceID: itemID,
		VacationID: parent.VacationID,
		Old:        oldDoc,
		New:        newDoc,
	}); err != nil {
		return nil, err
	}

	if err := s.itineraryRepo.UpdateItem(ctx, &updated); err != nil {
		return nil, errors.Wrap(err, "update itinerary item")
	}

	s.announce(ctx, ident, authz.CollectionActivities, authz.ActionUpdate, itemID, parent.VacationID, newDoc)

	return &updated, nil
}

// RemoveItem deletes an activity from a day plan.
func (s *itineraryService) RemoveItem(ctx context.Context, ident *authz.Identity, itineraryID, itemID string) error {
	if err := s.admit(ident); err != nil {
		return err
	}

	parent, err := s.loadItinerary(ctx, itineraryID)
	if err != nil {
		return err
	}

	old, err := s.itineraryRepo.FindItemByID(ctx, itineraryID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItineraryItemNotFound) {
			return domainerrors.ErrPermissionDenied
		}

		return errors.Wrap(err, "load itinerary item for delete")
	}

	oldDoc, err := documentOf(model.NewItineraryItemFromEntity(old))
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionActivities,
		Action:     authz.ActionDelete,
		Identity:   ident,
		ResourceID: itemID,
		VacationID: parent.VacationID,
		Old:        oldDoc,
	}); err != nil {
		return err
	}

	if err := s.itineraryRepo.DeleteItem(ctx, itineraryID, itemID); err != nil {
		return errors.Wrap(err, "remove itinerary item")
	}

	s.announce(ctx, ident, authz.CollectionActivities, authz.ActionDelete, itemID, parent.VacationID, nil)

	return nil
}

// CreateCalendarEvent creates a vacation-scoped event.
func (s *itineraryService) CreateCalendarEvent(ctx context.Context, ident *authz.Identity, input *usecase.CreateCalendarEventInput) (*entity.CalendarEvent, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	now := s.now()
	event := &entity.CalendarEvent{
		ID:         uuid.New().String(),
		VacationID: input.VacationID,
		CreatedBy:  ident.UID,
		Title:      input.Title,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	doc, err := documentOf(model.NewCalendarEventFromEntity(event))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionCalendarEvents,
		Action:     authz.ActionCreate,
		Identity:   ident,
		ResourceID: event.ID,
		VacationID: input.VacationID,
		New:        doc,
	}); err != nil {
		return nil, err
	}

	if err := s.itineraryRepo.CreateCalendarEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "create calendar event")
	}

	s.announce(ctx, ident, authz.CollectionCalendarEvents, authz.ActionCreate, event.ID, input.VacationID, doc)

	return event, nil
}

// ListCalendarEvents retrieves the events of a vacation within a window.
func (s *itineraryService) ListCalendarEvents(ctx context.Context, ident *authz.Identity, vacationID string, from, to time.Time) ([]*entity.CalendarEvent, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionCalendarEvents,
		Action:     authz.ActionRead,
		Identity:   ident,
		VacationID: vacationID,
	}); err != nil {
		return nil, err
	}

	events, err := s.itineraryRepo.FindCalendarEventsByVacation(ctx, vacationID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "list calendar events")
	}

	return events, nil
}

// UpdateCalendarEvent applies a partial patch to an event.
func (s *itineraryService) UpdateCalendarEvent(ctx context.Context, ident *authz.Identity, id string, input *usecase.UpdateCalendarEventInput) (*entity.CalendarEvent, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	old, err := s.loadCalendarEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *old
	if input.Title != nil {
		updated.Title = *input.Title
	}
	if input.StartTime != nil {
		updated.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		updated.EndTime = *input.EndTime
	}
	updated.UpdatedAt = s.now()

	oldDoc, err := documentOf(model.NewCalendarEventFromEntity(old))
	if err != nil {
		return nil, err
	}
	newDoc, err := documentOf(model.NewCalendarEventFromEntity(&updated))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionCalendarEvents,
		Action:     authz.ActionUpdate,
		Identity:   ident,
		ResourceID: id,
		VacationID: old.VacationID,
		Old:        oldDoc,
		New:        newDoc,
	}); err != nil {
		return nil, err
	}

	if err := s.itineraryRepo.UpdateCalendarEvent(ctx, &updated); err != nil {
		return nil, errors.Wrap(err, "update calendar event")
	}

	s.announce(ctx, ident, authz.CollectionCalendarEvents, authz.ActionUpdate, id, old.VacationID, newDoc)

	return &updated, nil
}

// DeleteCalendarEvent removes an event.
func (s *itineraryService) DeleteCalendarEvent(ctx context.Context, ident *authz.Identity, id string) error {
	if err := s.admit(ident); err != nil {
		return err
	}

	old, err := s.loadCalendarEvent(ctx, id)
	if err != nil {
		return err
	}

	oldDoc, err := documentOf(model.NewCalendarEventFromEntity(old))
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionCalendarEvents,
		Action:     authz.ActionDelete,
		Identity:   ident,
		ResourceID: id,
		VacationID: old.VacationID,
		Old:        oldDoc,
	}); err != nil {
		return err
	}

	if err := s.itineraryRepo.DeleteCalendarEvent(ctx, id); err != nil {
		return errors.Wrap(err, "delete calendar event")
	}

	s.announce(ctx, ident, authz.CollectionCalendarEvents, authz.ActionDelete, id, old.VacationID, nil)

	return nil
}

func (s *itineraryService) loadItinerary(ctx context.Context, id string) (*entity.Itinerary, error) {
	itinerary, err := s.itineraryRepo.FindItineraryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItineraryNotFound) {
			return nil, domainerrors.ErrPermissionDenied
		}

		return nil, errors.Wrap(err, "load itinerary")
	}

	return itinerary, nil
}

func (s *itineraryService) loadCalendarEvent(ctx context.Context, id string) (*entity.CalendarEvent, error) {
	event, err := s.itineraryRepo.FindCalendarEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCalendarEventNotFound) {
			return nil, domainerrors.ErrPermissionDenied
		}

		return nil, errors.Wrap(err, "load calendar event")
	}

	return event, nil
}
