package usecase

import (
	"context"
	"time"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
)

// CreateItineraryInput holds the caller-supplied fields of a new day plan.
type CreateItineraryInput struct {
	VacationID string
	ParkID     string
	Date       time.Time
	Notes      string
}

// UpdateItineraryInput is a partial itinerary patch. Nil fields stay unchanged.
type UpdateItineraryInput struct {
	ParkID *string
	Date   *time.Time
	Notes  *string
}

// CreateItemInput holds the caller-supplied fields of a scheduled activity.
type CreateItemInput struct {
	AttractionID string
	Name         string
	Kind         string
	StartTime    time.Time
	EndTime      time.Time
	Notes        string
}

// UpdateItemInput is a partial activity patch. Nil fields stay unchanged.
type UpdateItemInput struct {
	AttractionID *string
	Name         *string
	Kind         *string
	StartTime    *time.Time
	EndTime      *time.Time
	Notes        *string
}

// CreateCalendarEventInput holds the caller-supplied fields of a
// vacation-scoped calendar event.
type CreateCalendarEventInput struct {
	VacationID string
	Title      string
	StartTime  time.Time
	EndTime    time.Time
}

// UpdateCalendarEventInput is a partial event patch. Nil fields stay unchanged.
type UpdateCalendarEventInput struct {
	Title     *string
	StartTime *time.Time
	EndTime   *time.Time
}

// ItineraryUsecase defines the interface for day-plan use cases
type ItineraryUsecase interface {
	// CreateItinerary creates a day plan within a vacation.
	CreateItinerary(ctx context.Context, ident *authz.Identity, input *CreateItineraryInput) (*entity.Itinerary, error)

	// GetItinerary retrieves a day plan, subject to the read policy.
	GetItinerary(ctx context.Context, ident *authz.Identity, id string) (*entity.Itinerary, error)

	// ListItineraries retrieves the day plans of a vacation ordered by date.
	ListItineraries(ctx context.Context, ident *authz.Identity, vacationID string) ([]*entity.Itinerary, error)

	// UpdateItinerary applies a partial patch to a day plan.
	UpdateItinerary(ctx context.Context, ident *authz.Identity, id string, input *UpdateItineraryInput) (*entity.Itinerary, error)

	// DeleteItinerary removes a day plan and its activities.
	DeleteItinerary(ctx context.Context, ident *authz.Identity, id string) error

	// AddItem schedules an activity within a day plan.
	AddItem(ctx context.Context, ident *authz.Identity, itineraryID string, input *CreateItemInput) (*entity.ItineraryItem, error)

	// ListItems retrieves the activities of a day plan ordered by start time.
	ListItems(ctx context.Context, ident *authz.Identity, itineraryID string) ([]*entity.ItineraryItem, error)

	// UpdateItem applies a partial patch to an activity.
	UpdateItem(ctx context.Context, ident *authz.Identity, itineraryID, itemID string, input *UpdateItemInput) (*entity.ItineraryItem, error)

	// RemoveItem deletes an activity from a day plan.
	RemoveItem(ctx context.Context, ident *authz.Identity, itineraryID, itemID string) error

	// CreateCalendarEvent creates a vacation-scoped event.
	CreateCalendarEvent(ctx context.Context, ident *authz.Identity, input *CreateCalendarEventInput) (*entity.CalendarEvent, error)

	// ListCalendarEvents retrieves the events of a vacation within a window.
	ListCalendarEvents(ctx context.Context, ident *authz.Identity, vacationID string, from, to time.Time) ([]*entity.CalendarEvent, error)

	// UpdateCalendarEvent applies a partial patch to an event.
	UpdateCalendarEvent(ctx context.Context, ident *authz.Identity, id string, input *UpdateCalendarEventInput) (*entity.CalendarEvent, error)

	// DeleteCalendarEvent removes an event.
	DeleteCalendarEvent(ctx context.Context, ident *authz.Identity, id string) error
}
