package model

import (
	"time"

	"parkplan/internal/domain/entity"
)

// UserLocation is the Realtime Database record under
// locations/{vacationId}/{userId}.
type UserLocation struct {
	VacationID     string    `json:"vacationId"`
	UserID         string    `json:"userId"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	SharingEnabled bool      `json:"sharingEnabled"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Geofence is the Firestore document under geofences/{geofenceId}.
type Geofence struct {
	ID           string    `firestore:"-" json:"-"`
	VacationID   string    `firestore:"vacationId" json:"vacationId"`
	CreatedBy    string    `firestore:"createdBy" json:"createdBy"`
	Name         string    `firestore:"name" json:"name"`
	Latitude     float64   `firestore:"latitude" json:"latitude"`
	Longitude    float64   `firestore:"longitude" json:"longitude"`
	RadiusMeters float64   `firestore:"radiusMeters" json:"radiusMeters"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// GeofenceAlert is the insert-only Firestore document under geofenceAlerts/{alertId}.
type GeofenceAlert struct {
	ID         string    `firestore:"-" json:"-"`
	GeofenceID string    `firestore:"geofenceId" json:"geofenceId"`
	VacationID string    `firestore:"vacationId" json:"vacationId"`
	UserID     string    `firestore:"userId" json:"userId"`
	EnteredAt  time.Time `firestore:"enteredAt" json:"enteredAt"`
}

// NewUserLocationFromEntity converts a domain position into its storage form.
func NewUserLocationFromEntity(location *entity.UserLocation) *UserLocation {
	return &UserLocation{
		VacationID:     location.VacationID,
		UserID:         location.UserID,
		Latitude:       location.Latitude,
		Longitude:      location.Longitude,
		SharingEnabled: location.SharingEnabled,
		UpdatedAt:      location.UpdatedAt,
	}
}

// ToEntity converts the storage form back into a domain position.
func (m *UserLocation) ToEntity() *entity.UserLocation {
	return &entity.UserLocation{
		VacationID:     m.VacationID,
		UserID:         m.UserID,
		Latitude:       m.Latitude,
		Longitude:      m.Longitude,
		SharingEnabled: m.SharingEnabled,
		UpdatedAt:      m.UpdatedAt,
	}
}

// NewGeofenceFromEntity converts a domain zone into its storage form.
func NewGeofenceFromEntity(geofence *entity.Geofence) *Geofence {
	return &Geofence{
		ID:           geofence.ID,
		VacationID:   geofence.VacationID,
		CreatedBy:    geofence.CreatedBy,
		Name:         geofence.Name,
		Latitude:     geofence.Latitude,
		Longitude:    geofence.Longitude,
		RadiusMeters: geofence.RadiusMeters,
		CreatedAt:    geofence.CreatedAt,
		UpdatedAt:    geofence.UpdatedAt,
	}
}

// ToEntity converts the storage form back into a domain zone.
func (m *Geofence) ToEntity() *entity.Geofence {
	return &entity.Geofence{
		ID:           m.ID,
		VacationID:   m.VacationID,
		CreatedBy:    m.CreatedBy,
		Name:         m.Name,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		RadiusMeters: m.RadiusMeters,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// NewGeofenceAlertFromEntity converts a domain alert into its storage form.
func NewGeofenceAlertFromEntity(alert *entity.GeofenceAlert) *GeofenceAlert {
	return &GeofenceAlert{
		ID:         alert.ID,
		GeofenceID: alert.GeofenceID,
		VacationID: alert.VacationID,
		UserID:     alert.UserID,
		EnteredAt:  alert.EnteredAt,
	}
}

// ToEntity converts the storage form back into a domain alert.
func (m *GeofenceAlert) ToEntity() *entity.GeofenceAlert {
	return &entity.GeofenceAlert{
		ID:         m.ID,
		GeofenceID: m.GeofenceID,
		VacationID: m.VacationID,
		UserID:     m.UserID,
		EnteredAt:  m.EnteredAt,
	}
}
