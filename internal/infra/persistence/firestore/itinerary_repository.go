package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"parkplan/internal/domain/entity"
	"parkplan/internal/domain/repository"
	"parkplan/internal/errors"
	"parkplan/internal/infra/persistence/model"
)

const (
	itinerariesCollection    = "itineraries"
	activitiesSubcollection  = "activities"
	calendarEventsCollection = "calendarEvents"
)

// itineraryRepository implements repository.ItineraryRepository on Firestore.
type itineraryRepository struct {
	client *firestore.Client
}

// NewItineraryRepository creates a Firestore-backed itinerary repository.
func NewItineraryRepository(client *firestore.Client) repository.ItineraryRepository {
	return &itineraryRepository{client: client}
}

func (r *itineraryRepository) itineraryDoc(id string) *firestore.DocumentRef {
	return r.client.Collection(itinerariesCollection).Doc(id)
}

func (r *itineraryRepository) CreateItinerary(ctx context.Context, itinerary *entity.Itinerary) error {
	_, err := r.itineraryDoc(itinerary.ID).Create(ctx, model.NewItineraryFromEntity(itinerary))
	if err != nil {
		return errors.Wrap(err, "create itinerary")
	}

	return nil
}

func (r *itineraryRepository) FindItineraryByID(ctx context.Context, id string) (*entity.Itinerary, error) {
	snap, err := r.itineraryDoc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrItineraryNotFound
		}

		return nil, errors.Wrap(err, "get itinerary")
	}

	var doc model.Itinerary
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode itinerary")
	}
	doc.ID = snap.Ref.ID

	return doc.ToEntity(), nil
}

func (r *itineraryRepository) FindItinerariesByVacation(ctx context.Context, vacationID string) ([]*entity.Itinerary, error) {
	iter := r.client.Collection(itinerariesCollection).
		Where("vacationId", "==", vacationID).
		OrderBy("date", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var itineraries []*entity.Itinerary
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate itineraries")
		}

		var doc model.Itinerary
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "decode itinerary")
		}
		doc.ID = snap.Ref.ID
		itineraries = append(itineraries, doc.ToEntity())
	}

	return itineraries, nil
}

func (r *itineraryRepository) UpdateItinerary(ctx context.Context, itinerary *entity.Itinerary) error {
	_, err := r.itineraryDoc(itinerary.ID).Set(ctx, model.NewItineraryFromEntity(itinerary))
	if err != nil {
		if isNotFound(err) {
			return repository.ErrItineraryNotFound
		}

		return errors.Wrap(err, "update itinerary")
	}

	return nil
}

// DeleteItinerary removes the itinerary and its activities subcollection.
func (r *itineraryRepository) DeleteItinerary(ctx context.Context, id string) error {
	iter := r.itineraryDoc(id).Collection(activitiesSubcollection).Documents(ctx)
	defer iter.Stop()

	batch := r.client.BulkWriter(ctx)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Wrap(err, "iterate activities for delete")
		}
		if _, err := batch.Delete(snap.Ref); err != nil {
			return errors.Wrap(err, "enqueue activity delete")
		}
	}
	if _, err := batch.Delete(r.itineraryDoc(id)); err != nil {
		return errors.Wrap(err, "enqueue itinerary delete")
	}

	batch.End()

	return nil
}

func (r *itineraryRepository) CreateItem(ctx context.Context, item *entity.ItineraryItem) error {
	_, err := r.itineraryDoc(item.ItineraryID).
		Collection(activitiesSubcollection).
		Doc(item.ID).
		Create(ctx, model.NewItineraryItemFromEntity(item))
	if err != nil {
		return errors.Wrap(err, "create itinerary item")
	}

	return nil
}

func (r *itineraryRepository) FindItemByID(ctx context.Context, itineraryID, itemID string) (*entity.ItineraryItem, error) {
	snap, err := r.itineraryDoc(itineraryID).
		Collection(activitiesSubcollection).
		Doc(itemID).
		Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrItineraryItemNotFound
		}

		return nil, errors.Wrap(err, "get itinerary item")
	}

	var doc model.ItineraryItem
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode itinerary item")
	}
	doc.ID = snap.Ref.ID

	return doc.ToEntity(), nil
}

func (r *itineraryRepository) FindItemsByItinerary(ctx context.Context, itineraryID string) ([]*entity.ItineraryItem, error) {
	iter := r.itineraryDoc(itineraryID).
		Collection(activitiesSubcollection).
		OrderBy("startTime", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var items []*entity.ItineraryItem
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate itinerary items")
		}

		var doc model.ItineraryItem
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "decode itinerary item")
		}
		doc.ID = snap.Ref.ID
		items = append(items, doc.ToEntity())
	}

	return items, nil
}

func (r *itineraryRepository) UpdateItem(ctx context.Context, item *entity.ItineraryItem) error {
	_, err := r.itineraryDoc(item.ItineraryID).
		Collection(activitiesSubcollection).
		Doc(item.ID).
		Set(ctx, model.NewItineraryItemFromEntity(item))
	if err != nil {
		if isNotFound(err) {
			return repository.ErrItineraryItemNotFound
		}

		return errors.Wrap(err, "update itinerary item")
	}

	return nil
}

func (r *itineraryRepository) DeleteItem(ctx context.Context, itineraryID, itemID string) error {
	_, err := r.itineraryDoc(itineraryID).
		Collection(activitiesSubcollection).
		Doc(itemID).
		Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "delete itinerary item")
	}

	return nil
}

func (r *itineraryRepository) CreateCalendarEvent(ctx context.Context, event *entity.CalendarEvent) error {
	_, err := r.client.Collection(calendarEventsCollection).
		Doc(event.ID).
		Create(ctx, model.NewCalendarEventFromEntity(event))
	if err != nil {
		return errors.Wrap(err, "create calendar event")
	}

	return nil
}

func (r *itineraryRepository) FindCalendarEventByID(ctx context.Context, id string) (*entity.CalendarEvent, error) {
	snap, err := r.client.Collection(calendarEventsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCalendarEventNotFound
		}

		return nil, errors.Wrap(err, "get calendar event")
	}

	var doc model.CalendarEvent
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode calendar event")
	}
	doc.ID = snap.Ref.ID

	return doc.ToEntity(), nil
}

func (r *itineraryRepository) FindCalendarEventsByVacation(ctx context.Context, vacationID string, from, to time.Time) ([]*entity.CalendarEvent, error) {
	iter := r.client.Collection(calendarEventsCollection).
		Where("vacationId", "==", vacationID).
		Where("startTime", ">=", from).
		Where("startTime", "<", to).
		OrderBy("startTime", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var events []*entity.CalendarEvent
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate calendar events")
		}

		var doc model.CalendarEvent
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "decode calendar event")
		}
		doc.ID = snap.Ref.ID
		events = append(events, doc.ToEntity())
	}

	return events, nil
}

func (r *itineraryRepository) UpdateCalendarEvent(ctx context.Context, event *entity.CalendarEvent) error {
	_, err := r.client.Collection(calendarEventsCollection).
		Doc(event.ID).
		Set(ctx, model.NewCalendarEventFromEntity(event))
	if err != nil {
		if isNotFound(err) {
			return repository.ErrCalendarEventNotFound
		}

		return errors.Wrap(err, "update calendar event")
	}

	return nil
}

func (r *itineraryRepository) DeleteCalendarEvent(ctx context.Context, id string) error {
	_, err := r.client.Collection(calendarEventsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "delete calendar event")
	}

	return nil
}
