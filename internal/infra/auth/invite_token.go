// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"parkplan/config"
	"parkplan/internal/domain/entity"
	"parkplan/internal/domain/service"
	"parkplan/internal/errors"
)

const defaultInviteTTL = 72 * time.Hour

// inviteTokenService is a concrete implementation of the InviteTokenService
// interface using signed JWTs, so invite links carry no server-side state.
type inviteTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewInviteTokenService is the constructor for inviteTokenService.
func NewInviteTokenService(cfg *config.Config) (service.InviteTokenService, error) {
	if cfg.Invite == nil || cfg.Invite.SecretKey == "" {
		return nil, errors.New("invite secret must be provided")
	}

	ttl := cfg.Invite.TTL
	if ttl <= 0 {
		ttl = defaultInviteTTL
	}

	return &inviteTokenService{
		secret: []byte(cfg.Invite.SecretKey),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateInviteToken creates a signed token granting the bearer the given
// role in the vacation.
func (s *inviteTokenService) GenerateInviteToken(vacationID string, role entity.MemberRole, invitedBy string) (string, error) {
	if vacationID == "" || invitedBy == "" {
		return "", errors.New("vacation and inviter must be provided")
	}
	if !role.IsValid() || role == entity.MemberRoleOwner {
		return "", errors.Errorf("invalid invite role: %s", role)
	}

	now := s.now()
	claims := &service.InviteClaims{
		VacationID: vacationID,
		Role:       role,
		InvitedBy:  invitedBy,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   vacationID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// ValidateInviteToken checks the validity of an invite token string.
func (s *inviteTokenService) ValidateInviteToken(tokenString string) (*service.InviteClaims, error) {
	claims := &service.InviteClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		return nil, errors.Wrap(err, "parse invite token")
	}
	if !token.Valid {
		return nil, errors.New("invite token invalid")
	}
	if claims.VacationID == "" || !claims.Role.IsValid() {
		return nil, errors.New("invite token claims incomplete")
	}

	return claims, nil
}

// GetInviteDuration returns the configured lifetime of invite tokens.
func (s *inviteTokenService) GetInviteDuration() time.Duration {
	return s.ttl
}
