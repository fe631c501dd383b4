// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"parkplan/internal/domain/entity"
	"parkplan/internal/errors"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when no position is stored for a member.
	ErrLocationNotFound = errors.New("location not found")
	// ErrGeofenceNotFound is returned when a geofence is not found.
	ErrGeofenceNotFound = errors.New("geofence not found")
)

// LocationRepository defines the interface for live member positions. The
// backing store is the Realtime Database so position writes stay cheap.
type LocationRepository interface {
	// UpsertLocation writes the member's current position.
	UpsertLocation(ctx context.Context, location *entity.UserLocation) error

	// FindLocation retrieves the stored position of one member.
	FindLocation(ctx context.Context, vacationID, uid string) (*entity.UserLocation, error)

	// FindLocationsByVacation retrieves every shared position in a vacation.
	// Positions with sharing disabled are excluded.
	FindLocationsByVacation(ctx context.Context, vacationID string) ([]*entity.UserLocation, error)

	// DeleteLocation removes the stored position of one member.
	DeleteLocation(ctx context.Context, vacationID, uid string) error
}

// GeofenceRepository defines the interface for geofence zone and alert
// persistence. Alerts are insert-only.
type GeofenceRepository interface {
	// CreateGeofence persists a new zone.
	CreateGeofence(ctx context.Context, geofence *entity.Geofence) error

	// FindGeofenceByID retrieves a zone by its ID.
	FindGeofenceByID(ctx context.Context, id string) (*entity.Geofence, error)

	// FindGeofencesByVacation retrieves all zones of a vacation.
	FindGeofencesByVacation(ctx context.Context, vacationID string) ([]*entity.Geofence, error)

	// UpdateGeofence replaces the stored zone document.
	UpdateGeofence(ctx context.Context, geofence *entity.Geofence) error

	// DeleteGeofence removes one zone.
	DeleteGeofence(ctx context.Context, id string) error

	// CreateAlert records a member entering a zone.
	CreateAlert(ctx context.Context, alert *entity.GeofenceAlert) error

	// FindAlertsByVacation retrieves the newest alerts of a vacation, up to limit.
	FindAlertsByVacation(ctx context.Context, vacationID string, limit int) ([]*entity.GeofenceAlert, error)
}
