package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"
	"cerebro-wallet/internal/core/ports/mocks"
	"cerebro-wallet/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupIdentityService(t *testing.T) (
	*IdentityServiceImpl,
	*mocks.MockUserStore,
	*mocks.MockHashService,
	*mocks.MockTokenService,
	*mocks.MockLedgerService,
	*gomock.Controller,
) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStore(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	ledger := mocks.NewMockLedgerService(ctrl)

	svc := NewIdentityService(users, hashSvc, tokenSvc, ledger, zerolog.Nop())
	return svc, users, hashSvc, tokenSvc, ledger, ctrl
}

func TestIdentityService_Register_Success(t *testing.T) {
	svc, users, hashSvc, _, ledger, ctrl := setupIdentityService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	req := ports.RegisterRequest{Username: "alice", Password: "S3cret!pass"}

	users.EXPECT().GetByUsername(ctx, "alice").Return(nil, nil)
	hashSvc.EXPECT().Hash("S3cret!pass").Return("$argon2id$hashed", nil)

	var created *domain.User
	users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *domain.User) error {
			created = u
			return nil
		})
	// Every user gets a wallet keyed by their id.
	ledger.EXPECT().CreateWallet(ctx, gomock.Any()).Return(&domain.Wallet{}, nil)

	user, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, []domain.Role{domain.RoleOwner}, user.Roles, "roles default to owner")
	assert.Equal(t, defaultVerificationLevel, user.VerificationLevel)
	assert.Equal(t, defaultTrustScore, user.TrustScore)
	assert.Equal(t, "$argon2id$hashed", user.PasswordHash)
}

func TestIdentityService_Register_ExplicitRoles(t *testing.T) {
	svc, users, hashSvc, _, ledger, ctrl := setupIdentityService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	users.EXPECT().GetByUsername(ctx, "op").Return(nil, nil)
	hashSvc.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
	users.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	ledger.EXPECT().CreateWallet(ctx, gomock.Any()).Return(&domain.Wallet{}, nil)

	user, err := svc.Register(ctx, ports.RegisterRequest{
		Username: "op",
		Password: "pw",
		Roles:    []domain.Role{domain.RoleOperator},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Role{domain.RoleOperator}, user.Roles)
}

func TestIdentityService_Register_DuplicateUsername(t *testing.T) {
	svc, users, _, _, _, ctrl := setupIdentityService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	users.EXPECT().GetByUsername(ctx, "alice").Return(&domain.User{ID: "u1", Username: "alice"}, nil)

	_, err := svc.Register(ctx, ports.RegisterRequest{Username: "alice", Password: "pw"})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_002", appErr.Code)
}

func TestIdentityService_Register_MissingFields(t *testing.T) {
	svc, _, _, _, _, ctrl := setupIdentityService(t)
	defer ctrl.Finish()

	_, err := svc.Register(context.Background(), ports.RegisterRequest{Username: "alice"})
	require.Error(t, err)

	_, err = svc.Register(context.Background(), ports.RegisterRequest{Password: "pw"})
	require.Error(t, err)
}

func TestIdentityService_Login_Success(t *testing.T) {
	svc, users, hashSvc, tokenSvc, _, ctrl := setupIdentityService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	user := &domain.User{
		ID:           "u1",
		Username:     "alice",
		PasswordHash: "stored-hash",
		Roles:        []domain.Role{domain.RoleOwner},
	}
	expiry := time.Now().Add(24 * time.Hour)

	users.EXPECT().GetByUsername(ctx, "alice").Return(user, nil)
	hashSvc.EXPECT().Verify("pw", "stored-hash").Return(true, nil)
	tokenSvc.EXPECT().Generate("u1", user.Roles).Return("jwt-token", expiry, nil)

	token, exp, err := svc.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, exp)
}

func TestIdentityService_Login_UnknownUser(t *testing.T) {
	svc, users, _, _, _, ctrl := setupIdentityService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	users.EXPECT().GetByUsername(ctx, "ghost").Return(nil, nil)

	_, _, err := svc.Login(ctx, "ghost", "pw")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestIdentityService_Login_WrongPassword(t *testing.T) {
	svc, users, hashSvc, _, _, ctrl := setupIdentityService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	users.EXPECT().GetByUsername(ctx, "alice").
		Return(&domain.User{ID: "u1", PasswordHash: "stored-hash"}, nil)
	hashSvc.EXPECT().Verify("wrong", "stored-hash").Return(false, nil)

	_, _, err := svc.Login(ctx, "alice", "wrong")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestIdentityService_Login_StoreError(t *testing.T) {
	svc, users, _, _, _, ctrl := setupIdentityService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	users.EXPECT().GetByUsername(ctx, "alice").Return(nil, errors.New("db down"))

	_, _, err := svc.Login(ctx, "alice", "pw")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}

func TestIdentityService_GetProfile(t *testing.T) {
	svc, users, _, _, _, ctrl := setupIdentityService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	users.EXPECT().GetByID(ctx, "u1").Return(&domain.User{
		ID:                "u1",
		VerificationLevel: 2,
		TrustScore:        75,
		Badges:            []string{"early-adopter"},
	}, nil)

	profile, err := svc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, 2, profile.VerificationLevel)
	assert.Equal(t, 75.0, profile.TrustScore)
	assert.Equal(t, []string{"early-adopter"}, profile.Badges)
}

func TestIdentityService_GetProfile_UnknownUser(t *testing.T) {
	svc, users, _, _, _, ctrl := setupIdentityService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	users.EXPECT().GetByID(ctx, "ghost").Return(nil, nil)

	profile, err := svc.GetProfile(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, profile)
}
