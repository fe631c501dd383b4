package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkplan/config"
	"parkplan/internal/domain/entity"
)

func newTestInviteService(t *testing.T) *inviteTokenService {
	t.Helper()

	cfg := &config.Config{
		Invite: &config.InviteConfig{SecretKey: "test-secret", TTL: time.Hour},
	}
	svc, err := NewInviteTokenService(cfg)
	require.NoError(t, err)

	return svc.(*inviteTokenService)
}

func TestInviteTokenService_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestInviteService(t)

	token, err := svc.GenerateInviteToken("vac-1", entity.MemberRoleEditor, "alice")
	require.NoError(t, err)

	claims, err := svc.ValidateInviteToken(token)
	require.NoError(t, err)
	assert.Equal(t, "vac-1", claims.VacationID)
	assert.Equal(t, entity.MemberRoleEditor, claims.Role)
	assert.Equal(t, "alice", claims.InvitedBy)
}

func TestInviteTokenService_RejectsOwnerRole(t *testing.T) {
	t.Parallel()

	svc := newTestInviteService(t)

	_, err := svc.GenerateInviteToken("vac-1", entity.MemberRoleOwner, "alice")
	assert.Error(t, err)

	_, err = svc.GenerateInviteToken("vac-1", entity.MemberRole("superuser"), "alice")
	assert.Error(t, err)
}

func TestInviteTokenService_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	svc := newTestInviteService(t)

	issued := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	token, err := svc.GenerateInviteToken("vac-1", entity.MemberRoleViewer, "alice")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = svc.ValidateInviteToken(token)
	assert.Error(t, err)
}

func TestInviteTokenService_RejectsTamperedToken(t *testing.T) {
	t.Parallel()

	svc := newTestInviteService(t)

	token, err := svc.GenerateInviteToken("vac-1", entity.MemberRoleViewer, "alice")
	require.NoError(t, err)

	other := &config.Config{Invite: &config.InviteConfig{SecretKey: "different-secret"}}
	otherSvc, err := NewInviteTokenService(other)
	require.NoError(t, err)

	_, err = otherSvc.ValidateInviteToken(token)
	assert.Error(t, err)
}
