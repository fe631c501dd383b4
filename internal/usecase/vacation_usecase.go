package usecase

import (
	"context"
	"time"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
)

// CreateVacationInput holds the caller-supplied fields of a new vacation.
type CreateVacationInput struct {
	Name          string
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
	Accommodation *entity.Accommodation
	Adults        int
	Children      int
	JoinPIN       string // Optional. Stored as a bcrypt hash when set.
	IsPublic      bool
	DisplayName   string // Denormalized onto the owner membership row.
}

// UpdateVacationInput is a partial vacation patch. Nil fields stay unchanged.
type UpdateVacationInput struct {
	Name          *string
	Destination   *string
	StartDate     *time.Time
	EndDate       *time.Time
	Status        *entity.VacationStatus
	Accommodation *entity.Accommodation
	Adults        *int
	Children      *int
	JoinPIN       *string // Empty string clears the PIN.
	IsPublic      *bool
}

// AddMemberInput describes a member added directly by someone holding the
// inviteOthers permission.
type AddMemberInput struct {
	UserID      string
	DisplayName string
	Role        entity.MemberRole
	Permissions entity.PermissionSet
}

// UpdateMemberInput is a partial membership patch. Nil fields stay unchanged.
type UpdateMemberInput struct {
	DisplayName *string
	Role        *entity.MemberRole
	Permissions *entity.PermissionSet
}

// JoinInput carries the join credentials a prospective member presents.
type JoinInput struct {
	ShareCode   string
	JoinPIN     string
	DisplayName string
}

// VacationUsecase defines the interface for vacation and membership use cases
type VacationUsecase interface {
	// CreateVacation creates a vacation together with its owner membership.
	CreateVacation(ctx context.Context, ident *authz.Identity, input *CreateVacationInput) (*entity.Vacation, error)

	// GetVacation retrieves a vacation, subject to the read policy.
	GetVacation(ctx context.Context, ident *authz.Identity, id string) (*entity.Vacation, error)

	// ListVacations retrieves every vacation the caller is a member of.
	ListVacations(ctx context.Context, ident *authz.Identity) ([]*entity.Vacation, error)

	// UpdateVacation applies a partial patch to a vacation.
	UpdateVacation(ctx context.Context, ident *authz.Identity, id string, input *UpdateVacationInput) (*entity.Vacation, error)

	// DeleteVacation removes a vacation and all of its membership rows.
	DeleteVacation(ctx context.Context, ident *authz.Identity, id string) error

	// RotateShareCode replaces the vacation's share code, invalidating the
	// old one.
	RotateShareCode(ctx context.Context, ident *authz.Identity, id string) (*entity.Vacation, error)

	// ListMembers retrieves the membership rows of a vacation.
	ListMembers(ctx context.Context, ident *authz.Identity, vacationID string) ([]*entity.Membership, error)

	// AddMember adds a member directly, gated by the inviteOthers permission.
	AddMember(ctx context.Context, ident *authz.Identity, vacationID string, input *AddMemberInput) (*entity.Membership, error)

	// UpdateMember applies a partial patch to a membership row. Role and
	// permission changes are owner-gated.
	UpdateMember(ctx context.Context, ident *authz.Identity, vacationID, uid string, input *UpdateMemberInput) (*entity.Membership, error)

	// RemoveMember deletes a membership row. The owner row is never removable.
	RemoveMember(ctx context.Context, ident *authz.Identity, vacationID, uid string) error

	// JoinByShareCode redeems a share code, and the join PIN when one is set,
	// creating a viewer membership for the caller.
	JoinByShareCode(ctx context.Context, ident *authz.Identity, input *JoinInput) (*entity.Membership, error)

	// CreateInviteLink mints a signed invite token granting the bearer the
	// given role.
	CreateInviteLink(ctx context.Context, ident *authz.Identity, vacationID string, role entity.MemberRole) (string, error)

	// JoinByInviteToken redeems a signed invite token, creating a membership
	// with the role the token carries.
	JoinByInviteToken(ctx context.Context, ident *authz.Identity, token, displayName string) (*entity.Membership, error)

	// GenerateJoinQR renders the vacation's share code as a QR code PNG.
	GenerateJoinQR(ctx context.Context, ident *authz.Identity, vacationID string) ([]byte, error)
}
