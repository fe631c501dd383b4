package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parkplan/internal/domain/entity"
	domainerrors "parkplan/internal/domain/errors"
	"parkplan/internal/domain/repository"
	"parkplan/internal/domain/service"
	"parkplan/internal/usecase"
)

func TestVacationService_JoinByShareCode_Success(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	fx.vacationRepo.EXPECT().
		FindVacationByShareCode(ctx, "CODE2345").
		Return(&entity.Vacation{ID: "vac-1", ShareCode: "CODE2345"}, nil)
	fx.vacationRepo.EXPECT().
		CreateMembership(ctx, mock.AnythingOfType("*entity.Membership")).
		Return(nil)

	membership, err := fx.service.JoinByShareCode(ctx, testIdentity("bob"), &usecase.JoinInput{
		ShareCode:   "CODE2345",
		DisplayName: "Bob",
	})
	require.NoError(t, err)
	assert.Equal(t, "vac-1", membership.VacationID)
	assert.Equal(t, "bob", membership.UserID)
	assert.Equal(t, entity.MemberRoleViewer, membership.Role)
	assert.Equal(t, entity.PermissionSet{}, membership.Permissions)

	require.Len(t, fx.broadcaster.vacation, 1)
}

func TestVacationService_JoinByShareCode_UnknownCode(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	fx.vacationRepo.EXPECT().
		FindVacationByShareCode(ctx, "BADCODE2").
		Return(nil, repository.ErrShareCodeNotFound)

	_, err := fx.service.JoinByShareCode(ctx, testIdentity("bob"), &usecase.JoinInput{ShareCode: "BADCODE2"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidShareCode)
}

func TestVacationService_JoinByShareCode_WrongPIN(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	fx.vacationRepo.EXPECT().
		FindVacationByShareCode(ctx, "CODE2345").
		Return(&entity.Vacation{ID: "vac-1", ShareCode: "CODE2345", JoinPINHash: "hash"}, nil)
	fx.codeHasher.EXPECT().
		Check("0000", "hash").
		Return(false)

	_, err := fx.service.JoinByShareCode(ctx, testIdentity("bob"), &usecase.JoinInput{
		ShareCode: "CODE2345",
		JoinPIN:   "0000",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidShareCode)
}

func TestVacationService_JoinByShareCode_Anonymous(t *testing.T) {
	fx := createTestVacationService(t)

	_, err := fx.service.JoinByShareCode(context.Background(), nil, &usecase.JoinInput{ShareCode: "CODE2345"})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestVacationService_JoinByShareCode_AlreadyMember(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	fx.vacationRepo.EXPECT().
		FindVacationByShareCode(ctx, "CODE2345").
		Return(&entity.Vacation{ID: "vac-1", ShareCode: "CODE2345"}, nil)
	fx.vacationRepo.EXPECT().
		CreateMembership(ctx, mock.AnythingOfType("*entity.Membership")).
		Return(repository.ErrDuplicateMembership)

	_, err := fx.service.JoinByShareCode(ctx, testIdentity("bob"), &usecase.JoinInput{ShareCode: "CODE2345"})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyMember)
}

func TestVacationService_CreateInviteLink_Success(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	fx.inviteTokens.EXPECT().
		GenerateInviteToken("vac-1", entity.MemberRoleEditor, "alice").
		Return("signed-token", nil)

	token, err := fx.service.CreateInviteLink(ctx, testIdentity("alice"), "vac-1", entity.MemberRoleEditor)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)

	req := fx.authorizer.last()
	assert.Equal(t, "vac-1", req.VacationID)
	assert.NotNil(t, req.New)
}

func TestVacationService_CreateInviteLink_Denied(t *testing.T) {
	fx := createTestVacationService(t)
	fx.authorizer.err = domainerrors.ErrPermissionDenied

	_, err := fx.service.CreateInviteLink(context.Background(), testIdentity("mallory"), "vac-1", entity.MemberRoleEditor)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestVacationService_JoinByInviteToken_EditorGetsItineraryPermission(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	fx.inviteTokens.EXPECT().
		ValidateInviteToken("signed-token").
		Return(&service.InviteClaims{VacationID: "vac-1", Role: entity.MemberRoleEditor, InvitedBy: "alice"}, nil)
	fx.vacationRepo.EXPECT().
		FindVacationByID(ctx, "vac-1").
		Return(&entity.Vacation{ID: "vac-1"}, nil)
	fx.vacationRepo.EXPECT().
		CreateMembership(ctx, mock.AnythingOfType("*entity.Membership")).
		Return(nil)

	membership, err := fx.service.JoinByInviteToken(ctx, testIdentity("bob"), "signed-token", "Bob")
	require.NoError(t, err)
	assert.Equal(t, entity.MemberRoleEditor, membership.Role)
	assert.True(t, membership.Permissions.EditItinerary)
	assert.False(t, membership.Permissions.InviteOthers)
}

func TestVacationService_JoinByInviteToken_InvalidToken(t *testing.T) {
	fx := createTestVacationService(t)

	fx.inviteTokens.EXPECT().
		ValidateInviteToken("garbage").
		Return(nil, domainerrors.ErrInviteTokenInvalid)

	_, err := fx.service.JoinByInviteToken(context.Background(), testIdentity("bob"), "garbage", "Bob")
	assert.ErrorIs(t, err, domainerrors.ErrInviteTokenInvalid)
}

func TestVacationService_JoinByInviteToken_VacationGone(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	fx.inviteTokens.EXPECT().
		ValidateInviteToken("signed-token").
		Return(&service.InviteClaims{VacationID: "vac-1", Role: entity.MemberRoleViewer}, nil)
	fx.vacationRepo.EXPECT().
		FindVacationByID(ctx, "vac-1").
		Return(nil, repository.ErrVacationNotFound)

	_, err := fx.service.JoinByInviteToken(ctx, testIdentity("bob"), "signed-token", "Bob")
	assert.ErrorIs(t, err, domainerrors.ErrInviteTokenInvalid)
}
