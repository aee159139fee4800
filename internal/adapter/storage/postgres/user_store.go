package postgres

import (
	"context"
	"errors"
	"fmt"

	"cerebro-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// UserStore implements ports.UserStore.
type UserStore struct {
	pool Pool
}

// NewUserStore creates a new UserStore.
func NewUserStore(pool Pool) *UserStore {
	return &UserStore{pool: pool}
}

const userColumns = `id, username, password_hash, roles, verification_level, trust_score, badges, created_at`

// Create inserts a new user.
func (s *UserStore) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.pool.Exec(ctx, query,
		u.ID, u.Username, u.PasswordHash, domain.RolesToStrings(u.Roles),
		u.VerificationLevel, u.TrustScore, u.Badges, u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by id. Returns (nil, nil) when absent.
func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return s.getOne(ctx, query, id)
}

// GetByUsername fetches a user by username. Returns (nil, nil) when absent.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return s.getOne(ctx, query, username)
}

func (s *UserStore) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	u := &domain.User{}
	var roles []string
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &roles,
		&u.VerificationLevel, &u.TrustScore, &u.Badges, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Roles = domain.RolesFromStrings(roles)
	return u, nil
}
