package service

import (
	"context"
	"fmt"
	"time"

	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"
	"cerebro-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Defaults for newly registered users.
const (
	defaultVerificationLevel = 1
	defaultTrustScore        = 50.0
)

// IdentityServiceImpl implements ports.IdentityService and doubles as the
// ports.IdentityProfileService collaborator.
type IdentityServiceImpl struct {
	users    ports.UserStore
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
	ledger   ports.LedgerService
	log      zerolog.Logger
}

// NewIdentityService creates a new IdentityServiceImpl.
func NewIdentityService(
	users ports.UserStore,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	ledger ports.LedgerService,
	log zerolog.Logger,
) *IdentityServiceImpl {
	return &IdentityServiceImpl{
		users:    users,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		ledger:   ledger,
		log:      log,
	}
}

// Register creates a user and its wallet. Roles default to owner.
func (s *IdentityServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*domain.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperror.Validation("username and password are required")
	}

	existing, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	hash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = []domain.Role{domain.RoleOwner}
	}

	user := &domain.User{
		ID:                uuid.New().String(),
		Username:          req.Username,
		PasswordHash:      hash,
		Roles:             roles,
		VerificationLevel: defaultVerificationLevel,
		TrustScore:        defaultTrustScore,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperror.ErrUsernameExists()
	}

	if _, err := s.ledger.CreateWallet(ctx, user.ID); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Login verifies credentials and issues a session token.
func (s *IdentityServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("lookup username: %w", err))
	}
	if user == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	ok, err := s.hashSvc.Verify(password, user.PasswordHash)
	if err != nil || !ok {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(user.ID, user.Roles)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}

func (s *IdentityServiceImpl) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get user: %w", err))
	}
	return user, nil
}

// GetProfile exposes the identity facts used by eligibility checks.
func (s *IdentityServiceImpl) GetProfile(ctx context.Context, userID string) (*ports.Profile, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &ports.Profile{
		UserID:            user.ID,
		VerificationLevel: user.VerificationLevel,
		TrustScore:        user.TrustScore,
		Badges:            user.Badges,
	}, nil
}
