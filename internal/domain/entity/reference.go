// Package entity contains the core business objects of the project.
package entity

import "time"

// Reference data is the read-only catalog every signed-in user can browse.
// It is written exclusively by the importer running under an admin identity.

// Park is one theme park within the destination complex.
type Park struct {
	ID        string    // Stable identifier from the upstream park API.
	Name      string    // Display name.
	Timezone  string    // IANA timezone of the park.
	Latitude  float64   // Park entrance latitude.
	Longitude float64   // Park entrance longitude.
	UpdatedAt time.Time // Timestamp of the last import.
}

// Attraction is a ride or show inside a park.
type Attraction struct {
	ID          string    // Stable identifier from the upstream park API.
	ParkID      string    // The park this attraction belongs to.
	Name        string    // Display name.
	Land        string    // Themed area within the park.
	Kind        string    // "ride", "show" or "experience".
	HeightMinCm int       // Minimum rider height in centimeters, 0 when none.
	UpdatedAt   time.Time // Timestamp of the last import.
}

// Restaurant is a dining location inside a park or resort.
type Restaurant struct {
	ID          string    // Stable identifier from the upstream park API.
	ParkID      string    // The park this restaurant belongs to, if any.
	Name        string    // Display name.
	Cuisine     string    // Cuisine description.
	ServiceType string    // "quick" or "table".
	UpdatedAt   time.Time // Timestamp of the last import.
}

// Resort is an on-site hotel travelers can pick as accommodation.
type Resort struct {
	ID        string    // Stable identifier from the upstream park API.
	Name      string    // Display name.
	Category  string    // "value", "moderate" or "deluxe".
	UpdatedAt time.Time // Timestamp of the last import.
}

// WaitTime is the latest observed queue length for an attraction. It lives
// in the Realtime Database so clients can show a live board.
type WaitTime struct {
	AttractionID string    // The attraction this wait time belongs to.
	ParkID       string    // The park the attraction is in.
	Minutes      int       // Posted standby wait in minutes.
	Status       string    // "operating", "down" or "closed".
	ObservedAt   time.Time // Timestamp of the upstream observation.
}

// ParkHours is the operating schedule of a park for one calendar day.
type ParkHours struct {
	ParkID    string    // The park this schedule belongs to.
	Date      time.Time // The calendar day, midnight park-local.
	OpensAt   time.Time // Scheduled opening time.
	ClosesAt  time.Time // Scheduled closing time.
	UpdatedAt time.Time // Timestamp of the last import.
}
