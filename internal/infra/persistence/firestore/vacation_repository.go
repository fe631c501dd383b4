package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"parkplan/internal/domain/entity"
	"parkplan/internal/domain/repository"
	"parkplan/internal/errors"
	"parkplan/internal/infra/persistence/model"
)

const (
	vacationsCollection  = "vacations"
	membersSubcollection = "members"
)

// vacationRepository implements repository.VacationRepository on Firestore.
// Memberships live in a subcollection under their vacation, keyed by the
// member UID, so membership existence checks are single-document reads.
type vacationRepository struct {
	client *firestore.Client
}

// NewVacationRepository creates a Firestore-backed vacation repository.
func NewVacationRepository(client *firestore.Client) repository.VacationRepository {
	return &vacationRepository{client: client}
}

func (r *vacationRepository) vacationDoc(id string) *firestore.DocumentRef {
	return r.client.Collection(vacationsCollection).Doc(id)
}

func (r *vacationRepository) memberDoc(vacationID, uid string) *firestore.DocumentRef {
	return r.vacationDoc(vacationID).Collection(membersSubcollection).Doc(uid)
}

// CreateVacation writes the vacation and the owner membership atomically, so
// a vacation never exists without its owner row.
func (r *vacationRepository) CreateVacation(ctx context.Context, vacation *entity.Vacation, owner *entity.Membership) error {
	batch := r.client.BulkWriter(ctx)

	if _, err := batch.Create(r.vacationDoc(vacation.ID), model.NewVacationFromEntity(vacation)); err != nil {
		return errors.Wrap(err, "enqueue vacation create")
	}
	if _, err := batch.Create(r.memberDoc(vacation.ID, owner.UserID), model.NewMembershipFromEntity(owner)); err != nil {
		return errors.Wrap(err, "enqueue owner membership create")
	}

	batch.End()

	return nil
}

func (r *vacationRepository) FindVacationByID(ctx context.Context, id string) (*entity.Vacation, error) {
	snap, err := r.vacationDoc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrVacationNotFound
		}

		return nil, errors.Wrap(err, "get vacation")
	}

	var doc model.Vacation
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode vacation")
	}
	doc.ID = snap.Ref.ID

	return doc.ToEntity(), nil
}

func (r *vacationRepository) FindVacationByShareCode(ctx context.Context, code string) (*entity.Vacation, error) {
	iter := r.client.Collection(vacationsCollection).
		Where("shareCode", "==", code).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, repository.ErrShareCodeNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query share code")
	}

	var doc model.Vacation
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode vacation")
	}
	doc.ID = snap.Ref.ID

	return doc.ToEntity(), nil
}

// FindVacationsByMember walks the member's membership rows through a
// collection-group query, then loads the parent vacations.
func (r *vacationRepository) FindVacationsByMember(ctx context.Context, uid string) ([]*entity.Vacation, error) {
	iter := r.client.CollectionGroup(membersSubcollection).
		Where("userId", "==", uid).
		Documents(ctx)
	defer iter.Stop()

	var vacations []*entity.Vacation
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate memberships")
		}

		var member model.Membership
		if err := snap.DataTo(&member); err != nil {
			return nil, errors.Wrap(err, "decode membership")
		}

		vacation, err := r.FindVacationByID(ctx, member.VacationID)
		if err != nil {
			if errors.Is(err, repository.ErrVacationNotFound) {
				// Orphaned membership row, skip it.
				continue
			}

			return nil, err
		}
		vacations = append(vacations, vacation)
	}

	return vacations, nil
}

func (r *vacationRepository) UpdateVacation(ctx context.Context, vacation *entity.Vacation) error {
	_, err := r.vacationDoc(vacation.ID).Set(ctx, model.NewVacationFromEntity(vacation))
	if err != nil {
		if isNotFound(err) {
			return repository.ErrVacationNotFound
		}

		return errors.Wrap(err, "update vacation")
	}

	return nil
}

// DeleteVacation removes the vacation document and every membership row
// under it.
func (r *vacationRepository) DeleteVacation(ctx context.Context, id string) error {
	iter := r.vacationDoc(id).Collection(membersSubcollection).Documents(ctx)
	defer iter.Stop()

	batch := r.client.BulkWriter(ctx)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Wrap(err, "iterate members for delete")
		}
		if _, err := batch.Delete(snap.Ref); err != nil {
			return errors.Wrap(err, "enqueue membership delete")
		}
	}
	if _, err := batch.Delete(r.vacationDoc(id)); err != nil {
		return errors.Wrap(err, "enqueue vacation delete")
	}

	batch.End()

	return nil
}

func (r *vacationRepository) CreateMembership(ctx context.Context, membership *entity.Membership) error {
	_, err := r.memberDoc(membership.VacationID, membership.UserID).
		Create(ctx, model.NewMembershipFromEntity(membership))
	if err != nil {
		if isAlreadyExists(err) {
			return repository.ErrDuplicateMembership
		}

		return errors.Wrap(err, "create membership")
	}

	return nil
}

func (r *vacationRepository) FindMembership(ctx context.Context, vacationID, uid string) (*entity.Membership, error) {
	snap, err := r.memberDoc(vacationID, uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "get membership")
	}

	var doc model.Membership
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "decode membership")
	}

	return doc.ToEntity(), nil
}

func (r *vacationRepository) FindMembershipsByVacation(ctx context.Context, vacationID string) ([]*entity.Membership, error) {
	iter := r.vacationDoc(vacationID).Collection(membersSubcollection).Documents(ctx)
	defer iter.Stop()

	var members []*entity.Membership
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate members")
		}

		var doc model.Membership
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "decode membership")
		}
		members = append(members, doc.ToEntity())
	}

	return members, nil
}

func (r *vacationRepository) UpdateMembership(ctx context.Context, membership *entity.Membership) error {
	_, err := r.memberDoc(membership.VacationID, membership.UserID).
		Set(ctx, model.NewMembershipFromEntity(membership))
	if err != nil {
		if isNotFound(err) {
			return repository.ErrMembershipNotFound
		}

		return errors.Wrap(err, "update membership")
	}

	return nil
}

func (r *vacationRepository) DeleteMembership(ctx context.Context, vacationID, uid string) error {
	_, err := r.memberDoc(vacationID, uid).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "delete membership")
	}

	return nil
}
