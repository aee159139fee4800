package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cerebro-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SubsidyStore implements ports.SubsidyStore. Conditions travel as JSONB so
// new eligibility fields never need a schema change.
type SubsidyStore struct {
	pool Pool
}

// NewSubsidyStore creates a new SubsidyStore.
func NewSubsidyStore(pool Pool) *SubsidyStore {
	return &SubsidyStore{pool: pool}
}

const subsidyColumns = `id, source, target_roles, amount, conditions, required_shield_ids, status, created_at`

// Create inserts a new subsidy program.
func (s *SubsidyStore) Create(ctx context.Context, sub *domain.Subsidy) error {
	conditions, err := json.Marshal(sub.Conditions)
	if err != nil {
		return fmt.Errorf("marshal subsidy conditions: %w", err)
	}

	query := `INSERT INTO subsidies (` + subsidyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = s.pool.Exec(ctx, query,
		sub.ID, sub.Source, domain.RolesToStrings(sub.TargetRoles), sub.Amount,
		conditions, sub.RequiredShieldID, sub.Status, sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert subsidy: %w", err)
	}
	return nil
}

// Get fetches a subsidy by id. Returns (nil, nil) when absent.
func (s *SubsidyStore) Get(ctx context.Context, id uuid.UUID) (*domain.Subsidy, error) {
	query := `SELECT ` + subsidyColumns + ` FROM subsidies WHERE id = $1`

	sub, err := scanSubsidy(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subsidy: %w", err)
	}
	return sub, nil
}

// List returns all subsidy programs, oldest first.
func (s *SubsidyStore) List(ctx context.Context) ([]domain.Subsidy, error) {
	query := `SELECT ` + subsidyColumns + ` FROM subsidies ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list subsidies: %w", err)
	}
	defer rows.Close()

	var out []domain.Subsidy
	for rows.Next() {
		sub, err := scanSubsidy(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subsidy: %w", err)
		}
		out = append(out, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subsidies: %w", err)
	}
	return out, nil
}

// CreateAcceptance appends one acceptance record. Never updated or deleted.
func (s *SubsidyStore) CreateAcceptance(ctx context.Context, acc *domain.SubsidyAcceptance) error {
	snapshot, err := json.Marshal(acc.ConditionsSnapshot)
	if err != nil {
		return fmt.Errorf("marshal conditions snapshot: %w", err)
	}

	query := `INSERT INTO subsidy_acceptances (id, subsidy_id, user_id, amount, credited_to_protected, conditions_snapshot, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = s.pool.Exec(ctx, query,
		acc.ID, acc.SubsidyID, acc.UserID, acc.Amount,
		acc.CreditedToProtected, snapshot, acc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert subsidy acceptance: %w", err)
	}
	return nil
}

// ListAcceptances returns all acceptances for a program, oldest first.
func (s *SubsidyStore) ListAcceptances(ctx context.Context, subsidyID uuid.UUID) ([]domain.SubsidyAcceptance, error) {
	query := `SELECT id, subsidy_id, user_id, amount, credited_to_protected, conditions_snapshot, created_at
		FROM subsidy_acceptances WHERE subsidy_id = $1 ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query, subsidyID)
	if err != nil {
		return nil, fmt.Errorf("list subsidy acceptances: %w", err)
	}
	defer rows.Close()

	var out []domain.SubsidyAcceptance
	for rows.Next() {
		var acc domain.SubsidyAcceptance
		var snapshot []byte
		err := rows.Scan(
			&acc.ID, &acc.SubsidyID, &acc.UserID, &acc.Amount,
			&acc.CreditedToProtected, &snapshot, &acc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan subsidy acceptance: %w", err)
		}
		if err := json.Unmarshal(snapshot, &acc.ConditionsSnapshot); err != nil {
			return nil, fmt.Errorf("unmarshal conditions snapshot: %w", err)
		}
		out = append(out, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subsidy acceptances: %w", err)
	}
	return out, nil
}

func scanSubsidy(row pgx.Row) (*domain.Subsidy, error) {
	sub := &domain.Subsidy{}
	var roles []string
	var conditions []byte
	err := row.Scan(
		&sub.ID, &sub.Source, &roles, &sub.Amount,
		&conditions, &sub.RequiredShieldID, &sub.Status, &sub.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	sub.TargetRoles = domain.RolesFromStrings(roles)
	if err := json.Unmarshal(conditions, &sub.Conditions); err != nil {
		return nil, fmt.Errorf("unmarshal subsidy conditions: %w", err)
	}
	return sub, nil
}
