// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"parkplan/internal/domain/entity"
	"parkplan/internal/errors"
)

// Domain-specific errors for itinerary persistence.
var (
	// ErrItineraryNotFound is returned when an itinerary is not found.
	ErrItineraryNotFound = errors.New("itinerary not found")
	// ErrItineraryItemNotFound is returned when an itinerary item is not found.
	ErrItineraryItemNotFound = errors.New("itinerary item not found")
	// ErrCalendarEventNotFound is returned when a calendar event is not found.
	ErrCalendarEventNotFound = errors.New("calendar event not found")
)

// ItineraryRepository defines the interface for itinerary, itinerary item and
// calendar event persistence.
type ItineraryRepository interface {
	// CreateItinerary persists a new itinerary.
	CreateItinerary(ctx context.Context, itinerary *entity.Itinerary) error

	// FindItineraryByID retrieves an itinerary by its ID.
	FindItineraryByID(ctx context.Context, id string) (*entity.Itinerary, error)

	// FindItinerariesByVacation retrieves all itineraries of a vacation.
	FindItinerariesByVacation(ctx context.Context, vacationID string) ([]*entity.Itinerary, error)

	// UpdateItinerary replaces the stored itinerary document.
	UpdateItinerary(ctx context.Context, itinerary *entity.Itinerary) error

	// DeleteItinerary removes the itinerary and its items.
	DeleteItinerary(ctx context.Context, id string) error

	// CreateItem persists a new itinerary item.
	CreateItem(ctx context.Context, item *entity.ItineraryItem) error

	// FindItemByID retrieves an itinerary item by its ID.
	FindItemByID(ctx context.Context, itineraryID, itemID string) (*entity.ItineraryItem, error)

	// FindItemsByItinerary retrieves all items of an itinerary ordered by start time.
	FindItemsByItinerary(ctx context.Context, itineraryID string) ([]*entity.ItineraryItem, error)

	// UpdateItem replaces the stored itinerary item.
	UpdateItem(ctx context.Context, item *entity.ItineraryItem) error

	// DeleteItem removes one itinerary item.
	DeleteItem(ctx context.Context, itineraryID, itemID string) error

	// CreateCalendarEvent persists a new calendar event.
	CreateCalendarEvent(ctx context.Context, event *entity.CalendarEvent) error

	// FindCalendarEventByID retrieves a calendar event by its ID.
	FindCalendarEventByID(ctx context.Context, id string) (*entity.CalendarEvent, error)

	// FindCalendarEventsByVacation retrieves the events of a vacation within a window.
	FindCalendarEventsByVacation(ctx context.Context, vacationID string, from, to time.Time) ([]*entity.CalendarEvent, error)

	// UpdateCalendarEvent replaces the stored calendar event.
	UpdateCalendarEvent(ctx context.Context, event *entity.CalendarEvent) error

	// DeleteCalendarEvent removes one calendar event.
	DeleteCalendarEvent(ctx context.Context, id string) error
}
