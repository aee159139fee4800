package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cerebro-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionStore implements ports.TransactionStore.
//
// The transaction_effects table backs the idempotent-effect contract: one row
// per (transaction_id, status) pair, inserted with ON CONFLICT DO NOTHING so
// the first writer wins and every later attempt sees zero rows affected.
type TransactionStore struct {
	pool Pool
}

// NewTransactionStore creates a new TransactionStore.
func NewTransactionStore(pool Pool) *TransactionStore {
	return &TransactionStore{pool: pool}
}

const transactionColumns = `id, from_wallet_id, to_wallet_id, amount, tx_type, status, created_at, processed_at`

// Create inserts a new transaction.
func (s *TransactionStore) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.pool.Exec(ctx, query,
		t.ID, t.FromWalletID, t.ToWalletID, t.Amount,
		t.Type, t.Status, t.CreatedAt, t.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// Get fetches a transaction by id. Returns (nil, nil) when absent.
func (s *TransactionStore) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	t, err := scanTransaction(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// UpdateStatus updates a transaction's status and processed timestamp.
func (s *TransactionStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus, processedAt *time.Time) error {
	query := `UPDATE transactions SET status = $1, processed_at = $2 WHERE id = $3`

	tag, err := s.pool.Exec(ctx, query, status, processedAt, id)
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}
	return nil
}

// ListByWallet returns transactions where the wallet is sender or recipient,
// oldest first.
func (s *TransactionStore) ListByWallet(ctx context.Context, walletID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE from_wallet_id = $1 OR to_wallet_id = $1 ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// MarkEffect records that the balance effect for (id, status) has been
// applied. Reports true only for the first caller.
func (s *TransactionStore) MarkEffect(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) (bool, error) {
	query := `INSERT INTO transaction_effects (transaction_id, status, applied_at)
		VALUES ($1, $2, NOW()) ON CONFLICT (transaction_id, status) DO NOTHING`

	tag, err := s.pool.Exec(ctx, query, id, status)
	if err != nil {
		return false, fmt.Errorf("mark transaction effect: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// EffectApplied reports whether the effect for (id, status) was recorded.
func (s *TransactionStore) EffectApplied(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM transaction_effects WHERE transaction_id = $1 AND status = $2)`

	var applied bool
	if err := s.pool.QueryRow(ctx, query, id, status).Scan(&applied); err != nil {
		return false, fmt.Errorf("check transaction effect: %w", err)
	}
	return applied, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := row.Scan(
		&t.ID, &t.FromWalletID, &t.ToWalletID, &t.Amount,
		&t.Type, &t.Status, &t.CreatedAt, &t.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}
