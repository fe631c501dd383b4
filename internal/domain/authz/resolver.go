package authz

import (
	"context"

	"parkplan/internal/domain/entity"
	"parkplan/internal/errors"
)

// ErrNotResolved is returned by a MembershipResolver when the referenced
// vacation or membership does not exist. The engine treats it as an ordinary
// deny, collapsing not-found into permission-denied.
var ErrNotResolved = errors.New("authz: subject not resolved")

// VacationFacts is the slice of a vacation document the policy dereferences.
type VacationFacts struct {
	OwnerID  string // UID of the owning creator.
	IsPublic bool   // Whether any signed-in user may read the vacation tree.
}

// MembershipFacts is the slice of a membership row the policy dereferences.
type MembershipFacts struct {
	Role        entity.MemberRole    // The member's role in the vacation.
	Permissions entity.PermissionSet // Independent capability flags.
}

// MembershipResolver answers the document dereferences the policy needs:
// who owns a vacation, and what role a caller holds in it. Implementations
// map their storage not-found errors to ErrNotResolved.
type MembershipResolver interface {
	// ResolveVacation returns the ownership facts of a vacation.
	ResolveVacation(ctx context.Context, vacationID string) (*VacationFacts, error)

	// ResolveMembership returns the caller's membership facts in a vacation.
	ResolveMembership(ctx context.Context, vacationID, uid string) (*MembershipFacts, error)
}
