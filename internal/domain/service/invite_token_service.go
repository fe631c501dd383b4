package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"parkplan/internal/domain/entity"
)

// InviteClaims defines the custom claims carried by a vacation invite token.
type InviteClaims struct {
	VacationID string            `json:"vacation_id"`
	Role       entity.MemberRole `json:"role"`
	InvitedBy  string            `json:"invited_by"`
	jwt.RegisteredClaims
}

// InviteTokenService defines the interface for generating and validating
// signed invite links. This abstracts the details of token creation from
// the use cases.
type InviteTokenService interface {
	// GenerateInviteToken creates a signed token granting the bearer the
	// given role in the vacation.
	GenerateInviteToken(vacationID string, role entity.MemberRole, invitedBy string) (string, error)

	// ValidateInviteToken checks the validity of an invite token string.
	ValidateInviteToken(tokenString string) (*InviteClaims, error)

	// GetInviteDuration returns the configured lifetime of invite tokens.
	GetInviteDuration() time.Duration
}
