// Package entity contains the core business objects of the project.
package entity

import "time"

// Itinerary is a per-day plan within a vacation. VacationID and UserID are
// fixed at creation and never change afterwards.
type Itinerary struct {
	ID         string    // Unique identifier of the itinerary.
	VacationID string    // The vacation this itinerary belongs to. Immutable.
	UserID     string    // UID of the creating member. Immutable.
	ParkID     string    // The park planned for this day, if decided.
	Date       time.Time // The calendar day this itinerary covers.
	Notes      string    // Free-form planning notes.
	CreatedAt  time.Time // Timestamp of when the itinerary was created.
	UpdatedAt  time.Time // Timestamp of the last modification.
}

// ItineraryItem is one scheduled activity inside an itinerary: a ride, a
// dining reservation, a show, or a break.
type ItineraryItem struct {
	ID           string    // Unique identifier of the item.
	ItineraryID  string    // The itinerary this item belongs to. Immutable.
	AttractionID string    // Reference to an attraction or restaurant, if any.
	Name         string    // Display name of the activity.
	Kind         string    // "ride", "dining", "show" or "break".
	StartTime    time.Time // Planned start.
	EndTime      time.Time // Planned end.
	Notes        string    // Free-form notes.
	CreatedAt    time.Time // Timestamp of when the item was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// CalendarEvent is a vacation-scoped event outside the per-day itineraries,
// such as a dinner reservation the night before the first park day.
type CalendarEvent struct {
	ID         string    // Unique identifier of the event.
	VacationID string    // The vacation this event belongs to. Immutable.
	CreatedBy  string    // UID of the creating member. Immutable.
	Title      string    // Display title.
	StartTime  time.Time // Event start.
	EndTime    time.Time // Event end.
	CreatedAt  time.Time // Timestamp of when the event was created.
	UpdatedAt  time.Time // Timestamp of the last modification.
}
