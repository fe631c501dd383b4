// Package entity contains the core business objects of the project.
package entity

import "time"

// MemberRole represents the role a user holds within a vacation.
type MemberRole string

const (
	// MemberRoleOwner is the vacation creator. Exactly one per vacation.
	MemberRoleOwner MemberRole = "owner"
	// MemberRoleEditor may change plans according to its permission flags.
	MemberRoleEditor MemberRole = "editor"
	// MemberRoleViewer may read the vacation but not change it.
	MemberRoleViewer MemberRole = "viewer"
)

// String returns the string representation of the MemberRole.
func (r MemberRole) String() string {
	return string(r)
}

// IsValid checks if the MemberRole is a valid value.
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleOwner, MemberRoleEditor, MemberRoleViewer:
		return true
	default:
		return false
	}
}

// PermissionSet holds the independent capability flags of a membership.
// The flags are not a hierarchy: each is granted on its own.
type PermissionSet struct {
	EditItinerary bool // May create and modify itineraries and calendar events.
	ManageBudget  bool // May record and edit expenses.
	InviteOthers  bool // May add new members to the vacation.
}

// Membership binds a user to a vacation with a role and permission flags.
// Role transitions are owner-gated; UserID and VacationID are immutable.
type Membership struct {
	VacationID  string        // The vacation this membership belongs to.
	UserID      string        // UID of the member. Immutable.
	DisplayName string        // Denormalized display name for member lists.
	Role        MemberRole    // The member's role within the vacation.
	Permissions PermissionSet // Capability flags independent of the role.
	JoinedAt    time.Time     // Timestamp of when the user joined.
	UpdatedAt   time.Time     // Timestamp of the last modification.
}

// OwnerPermissions returns the full permission set granted to owners.
func OwnerPermissions() PermissionSet {
	return PermissionSet{
		EditItinerary: true,
		ManageBudget:  true,
		InviteOthers:  true,
	}
}
