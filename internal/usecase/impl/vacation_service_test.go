package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parkplan/internal/domain/authz"
	"parkplan/internal/domain/entity"
	domainerrors "parkplan/internal/domain/errors"
	"parkplan/internal/domain/repository"
	mockRepo "parkplan/internal/mocks/repository"
	mockSvc "parkplan/internal/mocks/service"
	"parkplan/internal/usecase"
)

// vacationServiceFixtures holds all test dependencies for vacation service tests.
type vacationServiceFixtures struct {
	service      usecase.VacationUsecase
	vacationRepo *mockRepo.MockVacationRepository
	codeHasher   *mockSvc.MockCodeHasher
	inviteTokens *mockSvc.MockInviteTokenService
	qrcode       *mockSvc.MockQRCodeService
	authorizer   *stubAuthorizer
	limiter      *stubLimiter
	broadcaster  *recordingBroadcaster
	publisher    *recordingPublisher
}

func createTestVacationService(t *testing.T) vacationServiceFixtures {
	vacationRepo := mockRepo.NewMockVacationRepository(t)
	codeHasher := mockSvc.NewMockCodeHasher(t)
	inviteTokens := mockSvc.NewMockInviteTokenService(t)
	qrcode := mockSvc.NewMockQRCodeService(t)
	authorizer := &stubAuthorizer{}
	limiter := &stubLimiter{}
	broadcaster := &recordingBroadcaster{}
	publisher := &recordingPublisher{}

	svc := NewVacationService(VacationServiceParams{
		VacationRepo: vacationRepo,
		CodeHasher:   codeHasher,
		InviteTokens: inviteTokens,
		QRCode:       qrcode,
		Authorizer:   authorizer,
		Limiter:      limiter,
		Broadcaster:  broadcaster,
		Publisher:    publisher,
		Logger:       testLogger(),
	})

	return vacationServiceFixtures{
		service:      svc,
		vacationRepo: vacationRepo,
		codeHasher:   codeHasher,
		inviteTokens: inviteTokens,
		qrcode:       qrcode,
		authorizer:   authorizer,
		limiter:      limiter,
		broadcaster:  broadcaster,
		publisher:    publisher,
	}
}

func TestVacationService_CreateVacation_Success(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	ident := testIdentity("alice")

	var createdVacation *entity.Vacation
	var createdOwner *entity.Membership
	fx.vacationRepo.EXPECT().
		CreateVacation(ctx, mock.AnythingOfType("*entity.Vacation"), mock.AnythingOfType("*entity.Membership")).
		Run(func(_ context.Context, vacation *entity.Vacation, owner *entity.Membership) {
			createdVacation = vacation
			createdOwner = owner
		}).
		Return(nil)

	vacation, err := fx.service.CreateVacation(ctx, ident, &usecase.CreateVacationInput{
		Name:        "Spring Break 2026",
		Destination: "wdw",
		StartDate:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC),
		Adults:      2,
		Children:    2,
		DisplayName: "Alice",
	})
	require.NoError(t, err)
	require.NotNil(t, createdVacation)
	require.NotNil(t, createdOwner)

	assert.NotEmpty(t, vacation.ID)
	assert.Equal(t, entity.VacationStatusPlanning, vacation.Status)
	assert.Equal(t, "alice", vacation.CreatedBy)
	assert.Len(t, vacation.ShareCode, shareCodeLength)
	for _, c := range vacation.ShareCode {
		assert.Contains(t, shareCodeAlphabet, string(c))
	}
	assert.Empty(t, vacation.JoinPINHash)

	assert.Equal(t, vacation.ID, createdOwner.VacationID)
	assert.Equal(t, "alice", createdOwner.UserID)
	assert.Equal(t, entity.MemberRoleOwner, createdOwner.Role)
	assert.Equal(t, entity.OwnerPermissions(), createdOwner.Permissions)

	req := fx.authorizer.last()
	assert.Equal(t, authz.CollectionVacations, req.Collection)
	assert.Equal(t, authz.ActionCreate, req.Action)

	require.Len(t, fx.broadcaster.vacation, 1)
	assert.Equal(t, vacation.ID, fx.broadcaster.vacation[0].VacationID)
}

func TestVacationService_CreateVacation_HashesJoinPIN(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	fx.codeHasher.EXPECT().
		Hash("4242").
		Return("bcrypt-hash", nil)
	fx.vacationRepo.EXPECT().
		CreateVacation(ctx, mock.AnythingOfType("*entity.Vacation"), mock.AnythingOfType("*entity.Membership")).
		Return(nil)

	vacation, err := fx.service.CreateVacation(ctx, testIdentity("alice"), &usecase.CreateVacationInput{
		Name:    "PIN trip",
		JoinPIN: "4242",
	})
	require.NoError(t, err)
	assert.Equal(t, "bcrypt-hash", vacation.JoinPINHash)
}

func TestVacationService_GetVacation_MissingIsOpaque(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	fx.vacationRepo.EXPECT().
		FindVacationByID(ctx, "nope").
		Return(nil, repository.ErrVacationNotFound)

	_, err := fx.service.GetVacation(ctx, testIdentity("alice"), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestVacationService_ListVacations_RequiresSignIn(t *testing.T) {
	fx := createTestVacationService(t)

	_, err := fx.service.ListVacations(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestVacationService_UpdateVacation_ClearsJoinPIN(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	stored := &entity.Vacation{ID: "vac-1", Name: "Trip", JoinPINHash: "old-hash", CreatedBy: "alice"}

	fx.vacationRepo.EXPECT().
		FindVacationByID(ctx, "vac-1").
		Return(stored, nil)
	fx.vacationRepo.EXPECT().
		UpdateVacation(ctx, mock.AnythingOfType("*entity.Vacation")).
		Return(nil)

	empty := ""
	vacation, err := fx.service.UpdateVacation(ctx, testIdentity("alice"), "vac-1", &usecase.UpdateVacationInput{
		JoinPIN: &empty,
	})
	require.NoError(t, err)
	assert.Empty(t, vacation.JoinPINHash)
}

func TestVacationService_RotateShareCode_ReplacesCode(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	stored := &entity.Vacation{ID: "vac-1", ShareCode: "OLDCODE2", CreatedBy: "alice"}

	fx.vacationRepo.EXPECT().
		FindVacationByID(ctx, "vac-1").
		Return(stored, nil)
	fx.vacationRepo.EXPECT().
		UpdateVacation(ctx, mock.AnythingOfType("*entity.Vacation")).
		Return(nil)

	vacation, err := fx.service.RotateShareCode(ctx, testIdentity("alice"), "vac-1")
	require.NoError(t, err)
	assert.Len(t, vacation.ShareCode, shareCodeLength)
	assert.NotEqual(t, "OLDCODE2", vacation.ShareCode)
}

func TestVacationService_AddMember_Duplicate(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	fx.vacationRepo.EXPECT().
		CreateMembership(ctx, mock.AnythingOfType("*entity.Membership")).
		Return(repository.ErrDuplicateMembership)

	_, err := fx.service.AddMember(ctx, testIdentity("alice"), "vac-1", &usecase.AddMemberInput{
		UserID: "bob",
		Role:   entity.MemberRoleViewer,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyMember)
}

func TestVacationService_UpdateMember_DemotingOwnerFails(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	fx.vacationRepo.EXPECT().
		FindMembership(ctx, "vac-1", "alice").
		Return(&entity.Membership{VacationID: "vac-1", UserID: "alice", Role: entity.MemberRoleOwner}, nil)

	editor := entity.MemberRoleEditor
	_, err := fx.service.UpdateMember(ctx, testIdentity("alice"), "vac-1", "alice", &usecase.UpdateMemberInput{
		Role: &editor,
	})
	assert.ErrorIs(t, err, domainerrors.ErrOwnerImmutable)
}

func TestVacationService_RemoveMember_OwnerRowFails(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	fx.vacationRepo.EXPECT().
		FindMembership(ctx, "vac-1", "alice").
		Return(&entity.Membership{VacationID: "vac-1", UserID: "alice", Role: entity.MemberRoleOwner}, nil)

	err := fx.service.RemoveMember(ctx, testIdentity("alice"), "vac-1", "alice")
	assert.ErrorIs(t, err, domainerrors.ErrOwnerImmutable)
}

func TestVacationService_RemoveMember_Success(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	fx.vacationRepo.EXPECT().
		FindMembership(ctx, "vac-1", "bob").
		Return(&entity.Membership{VacationID: "vac-1", UserID: "bob", Role: entity.MemberRoleViewer}, nil)
	fx.vacationRepo.EXPECT().
		DeleteMembership(ctx, "vac-1", "bob").
		Return(nil)

	err := fx.service.RemoveMember(ctx, testIdentity("alice"), "vac-1", "bob")
	require.NoError(t, err)
	assert.Equal(t, authz.ActionDelete, fx.authorizer.last().Action)
}

func TestVacationService_GenerateJoinQR_Success(t *testing.T) {
	fx := createTestVacationService(t)

	ctx := context.Background()
	fx.vacationRepo.EXPECT().
		FindVacationByID(ctx, "vac-1").
		Return(&entity.Vacation{ID: "vac-1", ShareCode: "CODE2345"}, nil)
	fx.qrcode.EXPECT().
		GenerateJoinQR("CODE2345").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.GenerateJoinQR(ctx, testIdentity("alice"), "vac-1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
