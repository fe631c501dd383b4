// Package entity contains the core business objects of the project.
package entity

import "time"

// VacationStatus represents the lifecycle stage of a vacation.
type VacationStatus string

const (
	// VacationStatusPlanning indicates the vacation is still being planned.
	VacationStatusPlanning VacationStatus = "planning"
	// VacationStatusConfirmed indicates dates and accommodation are booked.
	VacationStatusConfirmed VacationStatus = "confirmed"
	// VacationStatusActive indicates the party is currently on the trip.
	VacationStatusActive VacationStatus = "active"
	// VacationStatusCompleted indicates the trip is over.
	VacationStatusCompleted VacationStatus = "completed"
)

// String returns the string representation of the VacationStatus.
func (s VacationStatus) String() string {
	return string(s)
}

// IsValid checks if the VacationStatus is a valid value.
func (s VacationStatus) IsValid() bool {
	switch s {
	case VacationStatusPlanning, VacationStatusConfirmed, VacationStatusActive, VacationStatusCompleted:
		return true
	default:
		return false
	}
}

// Vacation is the top-level planning unit. It has exactly one owning creator
// and a member set with per-member roles; CreatedBy never changes after
// creation.
type Vacation struct {
	ID            string         // Unique identifier of the vacation.
	Name          string         // Display name, e.g. "Spring Break 2026".
	Destination   string         // Destination resort or park complex.
	StartDate     time.Time      // First day of the trip.
	EndDate       time.Time      // Last day of the trip.
	Status        VacationStatus // Current lifecycle stage.
	CreatedBy     string         // UID of the owning creator. Immutable.
	Accommodation *Accommodation // Where the party stays. Nil when undecided.
	Adults        int            // Number of adult travelers.
	Children      int            // Number of child travelers.
	ShareCode     string         // Short code other users redeem to join.
	JoinPINHash   string         // bcrypt hash of the optional join PIN. Empty when no PIN is set.
	IsPublic      bool           // Public vacations are readable by any signed-in user.
	CreatedAt     time.Time      // Timestamp of when the vacation was created.
	UpdatedAt     time.Time      // Timestamp of the last modification.
}

// Accommodation describes where the party stays during the vacation.
type Accommodation struct {
	ResortID     string    // Reference to a resort document, if staying on-site.
	Name         string    // Free-form name for off-site stays.
	CheckIn      time.Time // Check-in date.
	CheckOut     time.Time // Check-out date.
	Confirmation string    // Booking confirmation number.
}
