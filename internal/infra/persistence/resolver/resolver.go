// Package resolver backs the policy engine's vacation and membership
// dereferences with the vacation repository.
package resolver

import (
	"context"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/repository"
	"parkplan/internal/errors"
)

type membershipResolver struct {
	vacationRepo repository.VacationRepository
}

// NewMembershipResolver creates a repository-backed resolver. Not-found from
// the store maps to authz.ErrNotResolved so the engine denies instead of
// erroring.
func NewMembershipResolver(vacationRepo repository.VacationRepository) authz.MembershipResolver {
	return &membershipResolver{vacationRepo: vacationRepo}
}

func (r *membershipResolver) ResolveVacation(ctx context.Context, vacationID string) (*authz.VacationFacts, error) {
	vacation, err := r.vacationRepo.FindVacationByID(ctx, vacationID)
	if err != nil {
		if errors.Is(err, repository.ErrVacationNotFound) {
			return nil, authz.ErrNotResolved
		}

		return nil, errors.Wrap(err, "resolve vacation")
	}

	return &authz.VacationFacts{
		OwnerID:  vacation.CreatedBy,
		IsPublic: vacation.IsPublic,
	}, nil
}

func (r *membershipResolver) ResolveMembership(ctx context.Context, vacationID, uid string) (*authz.MembershipFacts, error) {
	membership, err := r.vacationRepo.FindMembership(ctx, vacationID, uid)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) || errors.Is(err, repository.ErrVacationNotFound) {
			return nil, authz.ErrNotResolved
		}

		return nil, errors.Wrap(err, "resolve membership")
	}

	return &authz.MembershipFacts{
		Role:        membership.Role,
		Permissions: membership.Permissions,
	}, nil
}
