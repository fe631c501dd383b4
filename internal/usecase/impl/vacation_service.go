package impl

import (
	"context"
	"crypto/rand"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
	domainerrors "parkplan/internal/domain/errors"
	"parkplan/internal/domain/repository"
	"parkplan/internal/domain/service"
	"parkplan/internal/errors"
	"parkplan/internal/infra/persistence/model"
	"parkplan/internal/usecase"
)

// shareCodeAlphabet avoids ambiguous characters so codes survive being read
// aloud.
const (
	shareCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	shareCodeLength   = 8
)

type vacationService struct {
	guard
	vacationRepo repository.VacationRepository
	codeHasher   service.CodeHasher
	inviteTokens service.InviteTokenService
	qrcode       service.QRCodeService
}

// VacationServiceParams holds dependencies for VacationService, injected by Fx.
type VacationServiceParams struct {
	fx.In

	VacationRepo repository.VacationRepository
	CodeHasher   service.CodeHasher
	InviteTokens service.InviteTokenService
	QRCode       service.QRCodeService
	Authorizer   authz.Authorizer
	Limiter      service.RateLimiter
	Broadcaster  service.StreamBroadcaster
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewVacationService creates a new vacation service instance
func NewVacationService(params VacationServiceParams) usecase.VacationUsecase {
	return &vacationService{
		guard:        newGuard(params.Authorizer, params.Limiter, params.Broadcaster, params.Publisher, params.Logger),
		vacationRepo: params.VacationRepo,
		codeHasher:   params.CodeHasher,
		inviteTokens: params.InviteTokens,
		qrcode:       params.QRCode,
	}
}

// CreateVacation creates a vacation together with its owner membership. The
// owner row is written as part of the same privileged batch because the
// policy's owner-row gate can only resolve once the vacation exists.
func (s *vacationService) CreateVacation(ctx context.Context, ident *authz.Identity, input *usecase.CreateVacationInput) (*entity.Vacation, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	now := s.now()
	vacation := &entity.Vacation{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Destination:   input.Destination,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Status:        entity.VacationStatusPlanning,
		CreatedBy:     ident.UID,
		Accommodation: input.Accommodation,
		Adults:        input.Adults,
		Children:      input.Children,
		ShareCode:     generateShareCode(),
		IsPublic:      input.IsPublic,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if input.JoinPIN != "" {
		hash, err := s.codeHasher.Hash(input.JoinPIN)
		if err != nil {
			return nil, errors.Wrap(err, "hash join PIN")
		}
		vacation.JoinPINHash = hash
	}

	doc, err := documentOf(model.NewVacationFromEntity(vacation))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionVacations,
		Action:     authz.ActionCreate,
		Identity:   ident,
		ResourceID: vacation.ID,
		New:        doc,
	}); err != nil {
		return nil, err
	}

	owner := &entity.Membership{
		VacationID:  vacation.ID,
		UserID:      ident.UID,
		DisplayName: input.DisplayName,
		Role:        entity.MemberRoleOwner,
		Permissions: entity.OwnerPermissions(),
		JoinedAt:    now,
		UpdatedAt:   now,
	}

	if err := s.vacationRepo.CreateVacation(ctx, vacation, owner); err != nil {
		return nil, errors.Wrap(err, "create vacation")
	}

	s.announce(ctx, ident, authz.CollectionVacations, authz.ActionCreate, vacation.ID, vacation.ID, doc)

	return vacation, nil
}

// GetVacation retrieves a vacation, subject to the read policy.
func (s *vacationService) GetVacation(ctx context.Context, ident *authz.Identity, id string) (*entity.Vacation, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionVacations,
		Action:     authz.ActionRead,
		Identity:   ident,
		ResourceID: id,
	}); err != nil {
		return nil, err
	}

	vacation, err := s.vacationRepo.FindVacationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVacationNotFound) {
			return nil, domainerrors.ErrPermissionDenied
		}

		return nil, errors.Wrap(err, "get vacation")
	}

	return vacation, nil
}

// ListVacations retrieves every vacation the caller is a member of.
func (s *vacationService) ListVacations(ctx context.Context, ident *authz.Identity) ([]*entity.Vacation, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}
	if !ident.SignedIn() {
		return nil, domainerrors.ErrPermissionDenied
	}

	vacations, err := s.vacationRepo.FindVacationsByMember(ctx, ident.UID)
	if err != nil {
		return nil, errors.Wrap(err, "list vacations")
	}

	return vacations, nil
}

// UpdateVacation applies a partial patch to a vacation.
func (s *vacationService) UpdateVacation(ctx context.Context, ident *authz.Identity, id string, input *usecase.UpdateVacationInput) (*entity.Vacation, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	old, err := s.loadVacation(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *old
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.Destination != nil {
		updated.Destination = *input.Destination
	}
	if input.StartDate != nil {
		updated.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		updated.EndDate = *input.EndDate
	}
	if input.Status != nil {
		updated.Status = *input.Status
	}
	if input.Accommodation != nil {
		updated.Accommodation = input.Accommodation
	}
	if input.Adults != nil {
		updated.Adults = *input.Adults
	}
	if input.Children != nil {
		updated.Children = *input.Children
	}
	if input.IsPublic != nil {
		updated.IsPublic = *input.IsPublic
	}
	if input.JoinPIN != nil {
		if *input.JoinPIN == "" {
			updated.JoinPINHash = ""
		} else {
			hash, err := s.codeHasher.Hash(*input.JoinPIN)
			if err != nil {
				return nil, errors.Wrap(err, "hash join PIN")
			}
			updated.JoinPINHash = hash
		}
	}
	updated.UpdatedAt = s.now()

	newDoc, err := s.authorizeVacationWrite(ctx, ident, authz.ActionUpdate, old, &updated)
	if err != nil {
		return nil, err
	}

	if err := s.vacationRepo.UpdateVacation(ctx, &updated); err != nil {
		return nil, errors.Wrap(err, "update vacation")
	}

	s.announce(ctx, ident, authz.CollectionVacations, authz.ActionUpdate, id, id, newDoc)

	return &updated, nil
}

// DeleteVacation removes a vacation and all of its membership rows.
func (s *vacationService) DeleteVacation(ctx context.Context, ident *authz.Identity, id string) error {
	if err := s.admit(ident); err != nil {
		return err
	}

	old, err := s.loadVacation(ctx, id)
	if err != nil {
		return err
	}

	oldDoc, err := documentOf(model.NewVacationFromEntity(old))
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionVacations,
		Action:     authz.ActionDelete,
		Identity:   ident,
		ResourceID: id,
		Old:        oldDoc,
	}); err != nil {
		return err
	}

	if err := s.vacationRepo.DeleteVacation(ctx, id); err != nil {
		return errors.Wrap(err, "delete vacation")
	}

	s.announce(ctx, ident, authz.CollectionVacations, authz.ActionDelete, id, id, nil)

	return nil
}

// RotateShareCode replaces the vacation's share code, invalidating the old one.
func (s *vacationService) RotateShareCode(ctx context.Context, ident *authz.Identity, id string) (*entity.Vacation, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	old, err := s.loadVacation(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *old
	updated.ShareCode = generateShareCode()
	updated.UpdatedAt = s.now()

	newDoc, err := s.authorizeVacationWrite(ctx, ident, authz.ActionUpdate, old, &updated)
	if err != nil {
		return nil, err
	}

	if err := s.vacationRepo.UpdateVacation(ctx, &updated); err != nil {
		return nil, errors.Wrap(err, "rotate share code")
	}

	s.announce(ctx, ident, authz.CollectionVacations, authz.ActionUpdate, id, id, newDoc)

	return &updated, nil
}

// ListMembers retrieves the membership rows of a vacation.
func (s *vacationService) ListMembers(ctx context.Context, ident *authz.Identity, vacationID string) ([]*entity.Membership, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionMembers,
		Action:     authz.ActionRead,
		Identity:   ident,
		VacationID: vacationID,
	}); err != nil {
		return nil, err
	}

	members, err := s.vacationRepo.FindMembershipsByVacation(ctx, vacationID)
	if err != nil {
		return nil, errors.Wrap(err, "list members")
	}

	return members, nil
}

// AddMember adds a member directly, gated by the inviteOthers permission.
func (s *vacationService) AddMember(ctx context.Context, ident *authz.Identity, vacationID string, input *usecase.AddMemberInput) (*entity.Membership, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	now := s.now()
	membership := &entity.Membership{
		VacationID:  vacationID,
		UserID:      input.UserID,
		DisplayName: input.DisplayName,
		Role:        input.Role,
		Permissions: input.Permissions,
		JoinedAt:    now,
		UpdatedAt:   now,
	}

	doc, err := documentOf(model.NewMembershipFromEntity(membership))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionMembers,
		Action:     authz.ActionCreate,
		Identity:   ident,
		ResourceID: input.UserID,
		VacationID: vacationID,
		New:        doc,
	}); err != nil {
		return nil, err
	}

	if err := s.vacationRepo.CreateMembership(ctx, membership); err != nil {
		if errors.Is(err, repository.ErrDuplicateMembership) {
			return nil, domainerrors.ErrAlreadyMember
		}

		return nil, errors.Wrap(err, "add member")
	}

	s.announce(ctx, ident, authz.CollectionMembers, authz.ActionCreate, input.UserID, vacationID, doc)

	return membership, nil
}

// UpdateMember applies a partial patch to a membership row. Role and
// permission changes are owner-gated by the policy.
func (s *vacationService) UpdateMember(ctx context.Context, ident *authz.Identity, vacationID, uid string, input *usecase.UpdateMemberInput) (*entity.Membership, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}

	old, err := s.vacationRepo.FindMembership(ctx, vacationID, uid)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return nil, domainerrors.ErrPermissionDenied
		}

		return nil, errors.Wrap(err, "load membership for update")
	}

	if input.Role != nil && old.Role == entity.MemberRoleOwner && *input.Role != entity.MemberRoleOwner {
		return nil, domainerrors.ErrOwnerImmutable
	}

	updated := *old
	if input.DisplayName != nil {
		updated.DisplayName = *input.DisplayName
	}
	if input.Role != nil {
		updated.Role = *input.Role
	}
	if input.Permissions != nil {
		updated.Permissions = *input.Permissions
	}
	updated.UpdatedAt = s.now()

	oldDoc, err := documentOf(model.NewMembershipFromEntity(old))
	if err != nil {
		return nil, err
	}
	newDoc, err := documentOf(model.NewMembershipFromEntity(&updated))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionMembers,
		Action:     authz.ActionUpdate,
		Identity:   ident,
		ResourceID: uid,
		VacationID: vacationID,
		Old:        oldDoc,
		New:        newDoc,
	}); err != nil {
		return nil, err
	}

	if err := s.vacationRepo.UpdateMembership(ctx, &updated); err != nil {
		return nil, errors.Wrap(err, "update member")
	}

	s.announce(ctx, ident, authz.CollectionMembers, authz.ActionUpdate, uid, vacationID, newDoc)

	return &updated, nil
}

// RemoveMember deletes a membership row. The owner row is never removable;
// deleting the vacation is the only way out for the owner.
func (s *vacationService) RemoveMember(ctx context.Context, ident *authz.Identity, vacationID, uid string) error {
	if err := s.admit(ident); err != nil {
		return err
	}

	old, err := s.vacationRepo.FindMembership(ctx, vacationID, uid)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return domainerrors.ErrPermissionDenied
		}

		return errors.Wrap(err, "load membership for delete")
	}
	if old.Role == entity.MemberRoleOwner {
		return domainerrors.ErrOwnerImmutable
	}

	oldDoc, err := documentOf(model.NewMembershipFromEntity(old))
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionMembers,
		Action:     authz.ActionDelete,
		Identity:   ident,
		ResourceID: uid,
		VacationID: vacationID,
		Old:        oldDoc,
	}); err != nil {
		return err
	}

	if err := s.vacationRepo.DeleteMembership(ctx, vacationID, uid); err != nil {
		return errors.Wrap(err, "remove member")
	}

	s.announce(ctx, ident, authz.CollectionMembers, authz.ActionDelete, uid, vacationID, nil)

	return nil
}

// JoinByShareCode redeems a share code, creating a viewer membership. The
// membership insert is privileged: the joining user cannot pass the
// add-member gate, the share code and PIN stand in for it.
func (s *vacationService) JoinByShareCode(ctx context.Context, ident *authz.Identity, input *usecase.JoinInput) (*entity.Membership, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}
	if !ident.SignedIn() {
		return nil, domainerrors.ErrPermissionDenied
	}

	vacation, err := s.vacationRepo.FindVacationByShareCode(ctx, input.ShareCode)
	if err != nil {
		if errors.Is(err, repository.ErrShareCodeNotFound) {
			return nil, domainerrors.ErrInvalidShareCode
		}

		return nil, errors.Wrap(err, "redeem share code")
	}

	if vacation.JoinPINHash != "" && !s.codeHasher.Check(input.JoinPIN, vacation.JoinPINHash) {
		return nil, domainerrors.ErrInvalidShareCode
	}

	return s.insertJoinedMember(ctx, ident, vacation.ID, input.DisplayName, entity.MemberRoleViewer, entity.PermissionSet{})
}

// CreateInviteLink mints a signed invite token. The caller must pass the
// add-member gate for the requested role, probed with a synthetic member row.
func (s *vacationService) CreateInviteLink(ctx context.Context, ident *authz.Identity, vacationID string, role entity.MemberRole) (string, error) {
	if err := s.admit(ident); err != nil {
		return "", err
	}

	now := s.now()
	probe := &entity.Membership{
		VacationID: vacationID,
		UserID:     "invitee",
		Role:       role,
		JoinedAt:   now,
		UpdatedAt:  now,
	}
	probeDoc, err := documentOf(model.NewMembershipFromEntity(probe))
	if err != nil {
		return "", err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionMembers,
		Action:     authz.ActionCreate,
		Identity:   ident,
		ResourceID: probe.UserID,
		VacationID: vacationID,
		New:        probeDoc,
	}); err != nil {
		return "", err
	}

	token, err := s.inviteTokens.GenerateInviteToken(vacationID, role, ident.UID)
	if err != nil {
		return "", errors.Wrap(err, "generate invite token")
	}

	return token, nil
}

// JoinByInviteToken redeems a signed invite token, creating a membership
// with the role the token carries.
func (s *vacationService) JoinByInviteToken(ctx context.Context, ident *authz.Identity, token, displayName string) (*entity.Membership, error) {
	if err := s.admit(ident); err != nil {
		return nil, err
	}
	if !ident.SignedIn() {
		return nil, domainerrors.ErrPermissionDenied
	}

	claims, err := s.inviteTokens.ValidateInviteToken(token)
	if err != nil {
		return nil, domainerrors.ErrInviteTokenInvalid
	}

	if _, err := s.vacationRepo.FindVacationByID(ctx, claims.VacationID); err != nil {
		if errors.Is(err, repository.ErrVacationNotFound) {
			return nil, domainerrors.ErrInviteTokenInvalid
		}

		return nil, errors.Wrap(err, "redeem invite token")
	}

	// Editors invited by link start with the itinerary permission; viewers
	// start with none.
	perms := entity.PermissionSet{}
	if claims.Role == entity.MemberRoleEditor {
		perms.EditItinerary = true
	}

	return s.insertJoinedMember(ctx, ident, claims.VacationID, displayName, claims.Role, perms)
}

// GenerateJoinQR renders the vacation's share code as a QR code PNG.
func (s *vacationService) GenerateJoinQR(ctx context.Context, ident *authz.Identity, vacationID string) ([]byte, error) {
	vacation, err := s.GetVacation(ctx, ident, vacationID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateJoinQR(vacation.ShareCode)
	if err != nil {
		return nil, errors.Wrap(err, "generate join QR")
	}

	return png, nil
}

func (s *vacationService) loadVacation(ctx context.Context, id string) (*entity.Vacation, error) {
	vacation, err := s.vacationRepo.FindVacationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVacationNotFound) {
			return nil, domainerrors.ErrPermissionDenied
		}

		return nil, errors.Wrap(err, "load vacation")
	}

	return vacation, nil
}

func (s *vacationService) authorizeVacationWrite(ctx context.Context, ident *authz.Identity, action authz.Action, old, updated *entity.Vacation) (authz.Document, error) {
	oldDoc, err := documentOf(model.NewVacationFromEntity(old))
	if err != nil {
		return nil, err
	}
	newDoc, err := documentOf(model.NewVacationFromEntity(updated))
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, &authz.Request{
		Collection: authz.CollectionVacations,
		Action:     action,
		Identity:   ident,
		ResourceID: old.ID,
		Old:        oldDoc,
		New:        newDoc,
	}); err != nil {
		return nil, err
	}

	return newDoc, nil
}

func (s *vacationService) insertJoinedMember(ctx context.Context, ident *authz.Identity, vacationID, displayName string, role entity.MemberRole, perms entity.PermissionSet) (*entity.Membership, error) {
	now := s.now()
	membership := &entity.Membership{
		VacationID:  vacationID,
		UserID:      ident.UID,
		DisplayName: displayName,
		Role:        role,
		Permissions: perms,
		JoinedAt:    now,
		UpdatedAt:   now,
	}

	if err := s.vacationRepo.CreateMembership(ctx, membership); err != nil {
		if errors.Is(err, repository.ErrDuplicateMembership) {
			return nil, domainerrors.ErrAlreadyMember
		}

		return nil, errors.Wrap(err, "join vacation")
	}

	doc, err := documentOf(model.NewMembershipFromEntity(membership))
	if err == nil {
		s.announce(ctx, ident, authz.CollectionMembers, authz.ActionCreate, membership.UserID, vacationID, doc)
	}

	return membership, nil
}

// generateShareCode draws a code from the unambiguous alphabet using
// crypto/rand.
func generateShareCode() string {
	buf := make([]byte, shareCodeLength)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}

	code := make([]byte, shareCodeLength)
	for i, b := range buf {
		code[i] = shareCodeAlphabet[int(b)%len(shareCodeAlphabet)]
	}

	return string(code)
}
