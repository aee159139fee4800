package postgres

import (
	"context"
	"errors"
	"fmt"

	"cerebro-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WalletStore implements ports.WalletStore.
type WalletStore struct {
	pool Pool
}

// NewWalletStore creates a new WalletStore.
func NewWalletStore(pool Pool) *WalletStore {
	return &WalletStore{pool: pool}
}

const walletColumns = `owner_id, balance_available, balance_held, balance_protected,
		active_shield_ids, limit_daily, limit_monthly, state, created_at, updated_at`

// Create inserts a new wallet.
func (s *WalletStore) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (` + walletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := s.pool.Exec(ctx, query,
		w.OwnerID, w.BalanceAvailable, w.BalanceHeld, w.BalanceProtected,
		w.ActiveShieldIDs, w.Limits.Daily, w.Limits.Monthly, w.State,
		w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// Get fetches a wallet by owner id. Returns (nil, nil) when absent.
func (s *WalletStore) Get(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE owner_id = $1`

	w, err := scanWallet(s.pool.QueryRow(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return w, nil
}

// Update overwrites a wallet's mutable fields.
func (s *WalletStore) Update(ctx context.Context, w *domain.Wallet) error {
	query := `UPDATE wallets SET balance_available = $1, balance_held = $2, balance_protected = $3,
		active_shield_ids = $4, limit_daily = $5, limit_monthly = $6, state = $7, updated_at = NOW()
		WHERE owner_id = $8`

	tag, err := s.pool.Exec(ctx, query,
		w.BalanceAvailable, w.BalanceHeld, w.BalanceProtected,
		w.ActiveShieldIDs, w.Limits.Daily, w.Limits.Monthly, w.State,
		w.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", w.OwnerID)
	}
	return nil
}

// List returns all wallets ordered by creation time.
func (s *WalletStore) List(ctx context.Context) ([]domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	var out []domain.Wallet
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		out = append(out, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallets: %w", err)
	}
	return out, nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.OwnerID, &w.BalanceAvailable, &w.BalanceHeld, &w.BalanceProtected,
		&w.ActiveShieldIDs, &w.Limits.Daily, &w.Limits.Monthly, &w.State,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}
