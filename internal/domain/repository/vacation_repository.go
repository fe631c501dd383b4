// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"parkplan/internal/domain/entity"
	"parkplan/internal/errors"
)

// Domain-specific errors for vacation persistence.
var (
	// ErrVacationNotFound is returned when a vacation is not found.
	ErrVacationNotFound = errors.New("vacation not found")
	// ErrMembershipNotFound is returned when a membership record is not found.
	ErrMembershipNotFound = errors.New("membership not found")
	// ErrDuplicateMembership is returned when a user is already a member.
	ErrDuplicateMembership = errors.New("membership already exists")
	// ErrShareCodeNotFound is returned when no vacation matches a share code.
	ErrShareCodeNotFound = errors.New("share code not found")
)

// VacationRepository defines the interface for vacation and membership
// persistence. Memberships live in a subcollection under their vacation and
// are keyed by the member's UID.
type VacationRepository interface {
	// CreateVacation persists a new vacation together with the owner's
	// membership record in a single transaction.
	CreateVacation(ctx context.Context, vacation *entity.Vacation, owner *entity.Membership) error

	// FindVacationByID retrieves a vacation by its ID.
	FindVacationByID(ctx context.Context, id string) (*entity.Vacation, error)

	// FindVacationByShareCode retrieves a vacation by its share code.
	FindVacationByShareCode(ctx context.Context, code string) (*entity.Vacation, error)

	// FindVacationsByMember retrieves every vacation the user belongs to.
	FindVacationsByMember(ctx context.Context, uid string) ([]*entity.Vacation, error)

	// UpdateVacation replaces the stored vacation document.
	UpdateVacation(ctx context.Context, vacation *entity.Vacation) error

	// DeleteVacation removes the vacation and its membership subcollection.
	DeleteVacation(ctx context.Context, id string) error

	// CreateMembership persists a new membership record.
	CreateMembership(ctx context.Context, membership *entity.Membership) error

	// FindMembership retrieves the membership of one user in one vacation.
	FindMembership(ctx context.Context, vacationID, uid string) (*entity.Membership, error)

	// FindMembershipsByVacation retrieves the full member list of a vacation.
	FindMembershipsByVacation(ctx context.Context, vacationID string) ([]*entity.Membership, error)

	// UpdateMembership replaces the stored membership record.
	UpdateMembership(ctx context.Context, membership *entity.Membership) error

	// DeleteMembership removes one user's membership in a vacation.
	DeleteMembership(ctx context.Context, vacationID, uid string) error
}
