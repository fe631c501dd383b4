package model

import (
	"time"

	"parkplan/internal/domain/entity"
)

// Itinerary is the Firestore document under itineraries/{itineraryId}.
type Itinerary struct {
	ID         string    `firestore:"-" json:"-"`
	VacationID string    `firestore:"vacationId" json:"vacationId"`
	UserID     string    `firestore:"userId" json:"userId"`
	ParkID     string    `firestore:"parkId,omitempty" json:"parkId,omitempty"`
	Date       time.Time `firestore:"date" json:"date"`
	Notes      string    `firestore:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// ItineraryItem is the Firestore document under
// itineraries/{itineraryId}/activities/{itemId}.
type ItineraryItem struct {
	ID           string    `firestore:"-" json:"-"`
	ItineraryID  string    `firestore:"itineraryId" json:"itineraryId"`
	AttractionID string    `firestore:"attractionId,omitempty" json:"attractionId,omitempty"`
	Name         string    `firestore:"name" json:"name"`
	Kind         string    `firestore:"kind" json:"kind"`
	StartTime    time.Time `firestore:"startTime" json:"startTime"`
	EndTime      time.Time `firestore:"endTime" json:"endTime"`
	Notes        string    `firestore:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// CalendarEvent is the Firestore document under calendarEvents/{eventId}.
type CalendarEvent struct {
	ID         string    `firestore:"-" json:"-"`
	VacationID string    `firestore:"vacationId" json:"vacationId"`
	CreatedBy  string    `firestore:"createdBy" json:"createdBy"`
	Title      string    `firestore:"title" json:"title"`
	StartTime  time.Time `firestore:"startTime" json:"startTime"`
	EndTime    time.Time `firestore:"endTime" json:"endTime"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// NewItineraryFromEntity converts a domain itinerary into its storage form.
func NewItineraryFromEntity(itinerary *entity.Itinerary) *Itinerary {
	return &Itinerary{
		ID:         itinerary.ID,
		VacationID: itinerary.VacationID,
		UserID:     itinerary.UserID,
		ParkID:     itinerary.ParkID,
		Date:       itinerary.Date,
		Notes:      itinerary.Notes,
		CreatedAt:  itinerary.CreatedAt,
		UpdatedAt:  itinerary.UpdatedAt,
	}
}

// ToEntity converts the storage form back into a domain itinerary.
func (m *Itinerary) ToEntity() *entity.Itinerary {
	return &entity.Itinerary{
		ID:         m.ID,
		VacationID: m.VacationID,
		UserID:     m.UserID,
		ParkID:     m.ParkID,
		Date:       m.Date,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// NewItineraryItemFromEntity converts a domain item into its storage form.
func NewItineraryItemFromEntity(item *entity.ItineraryItem) *ItineraryItem {
	return &ItineraryItem{
		ID:           item.ID,
		ItineraryID:  item.ItineraryID,
		AttractionID: item.AttractionID,
		Name:         item.Name,
		Kind:         item.Kind,
		StartTime:    item.StartTime,
		EndTime:      item.EndTime,
		Notes:        item.Notes,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

// ToEntity converts the storage form back into a domain item.
func (m *ItineraryItem) ToEntity() *entity.ItineraryItem {
	return &entity.ItineraryItem{
		ID:           m.ID,
		ItineraryID:  m.ItineraryID,
		AttractionID: m.AttractionID,
		Name:         m.Name,
		Kind:         m.Kind,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// NewCalendarEventFromEntity converts a domain event into its storage form.
func NewCalendarEventFromEntity(event *entity.CalendarEvent) *CalendarEvent {
	return &CalendarEvent{
		ID:         event.ID,
		VacationID: event.VacationID,
		CreatedBy:  event.CreatedBy,
		Title:      event.Title,
		StartTime:  event.StartTime,
		EndTime:    event.EndTime,
		CreatedAt:  event.CreatedAt,
		UpdatedAt:  event.UpdatedAt,
	}
}

// ToEntity converts the storage form back into a domain event.
func (m *CalendarEvent) ToEntity() *entity.CalendarEvent {
	return &entity.CalendarEvent{
		ID:         m.ID,
		VacationID: m.VacationID,
		CreatedBy:  m.CreatedBy,
		Title:      m.Title,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
