package usecase

import (
	"context"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
)

// UpdateLocationInput holds one position report from a member's device.
type UpdateLocationInput struct {
	VacationID     string
	Latitude       float64
	Longitude      float64
	SharingEnabled bool
}

// CreateGeofenceInput holds the caller-supplied fields of a new zone.
type CreateGeofenceInput struct {
	VacationID   string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// UpdateGeofenceInput is a partial zone patch. Nil fields stay unchanged.
type UpdateGeofenceInput struct {
	Name         *string
	Latitude     *float64
	Longitude    *float64
	RadiusMeters *float64
}

// LocationUsecase defines the interface for live-location and geofence use cases
type LocationUsecase interface {
	// UpdateLocation stores the caller's position and evaluates it against
	// the vacation's geofences. Newly entered zones produce alerts.
	UpdateLocation(ctx context.Context, ident *authz.Identity, input *UpdateLocationInput) (*entity.UserLocation, []*entity.GeofenceAlert, error)

	// ListLocations retrieves every shared position in a vacation.
	ListLocations(ctx context.Context, ident *authz.Identity, vacationID string) ([]*entity.UserLocation, error)

	// DeleteLocation removes the caller's stored position.
	DeleteLocation(ctx context.Context, ident *authz.Identity, vacationID, uid string) error

	// CreateGeofence creates a zone within a vacation.
	CreateGeofence(ctx context.Context, ident *authz.Identity, input *CreateGeofenceInput) (*entity.Geofence, error)

	// ListGeofences retrieves the zones of a vacation.
	ListGeofences(ctx context.Context, ident *authz.Identity, vacationID string) ([]*entity.Geofence, error)

	// UpdateGeofence applies a partial patch to a zone.
	UpdateGeofence(ctx context.Context, ident *authz.Identity, id string, input *UpdateGeofenceInput) (*entity.Geofence, error)

	// DeleteGeofence removes a zone.
	DeleteGeofence(ctx context.Context, ident *authz.Identity, id string) error

	// ListAlerts retrieves the newest zone-entry alerts of a vacation.
	ListAlerts(ctx context.Context, ident *authz.Identity, vacationID string, limit int) ([]*entity.GeofenceAlert, error)
}
