// Package entity contains the core business objects of the project.
package entity

import "time"

// UserLocation is a member's live position, shared with other members of a
// vacation only while SharingEnabled is true. Only the owning user writes it.
type UserLocation struct {
	UserID         string    // UID of the user this position belongs to.
	VacationID     string    // The vacation the position is shared with.
	Latitude       float64   // WGS84 latitude.
	Longitude      float64   // WGS84 longitude.
	SharingEnabled bool      // Whether members may see this position.
	UpdatedAt      time.Time // Timestamp of the last position update.
}

// Geofence is a named circular zone within a vacation, e.g. a meeting point.
// Radius is capped at 10 km.
type Geofence struct {
	ID           string    // Unique identifier of the geofence.
	VacationID   string    // The vacation this zone belongs to. Immutable.
	CreatedBy    string    // UID of the creating member. Immutable.
	Name         string    // Display name, e.g. "Castle meetup".
	Latitude     float64   // Zone center latitude.
	Longitude    float64   // Zone center longitude.
	RadiusMeters float64   // Zone radius in meters, at most 10000.
	CreatedAt    time.Time // Timestamp of when the zone was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// MaxGeofenceRadiusMeters is the upper bound for a geofence radius.
const MaxGeofenceRadiusMeters = 10_000.0

// GeofenceAlert records a member entering a geofence zone.
type GeofenceAlert struct {
	ID         string    // Unique identifier of the alert.
	GeofenceID string    // The zone that was entered.
	VacationID string    // The vacation the zone belongs to.
	UserID     string    // UID of the member who entered the zone.
	EnteredAt  time.Time // Timestamp of when the member entered.
}
