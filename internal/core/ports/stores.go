package ports

import (
	"context"
	"time"

	"cerebro-wallet/internal/core/domain"

	"github.com/google/uuid"
)

// WalletStore defines persistence operations for wallets.
// Get returns (nil, nil) when the wallet does not exist.
type WalletStore interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	Get(ctx context.Context, ownerID string) (*domain.Wallet, error)
	Update(ctx context.Context, wallet *domain.Wallet) error
	List(ctx context.Context) ([]domain.Wallet, error)
}

// TransactionStore defines persistence for transactions.
//
// Idempotent-effect tracking is part of the store contract, not a side
// table: MarkEffect records that the balance effect for (id, status) has
// been applied and reports whether this call was the first. A second call
// for the same pair returns false, which the ledger treats as "effect
// already applied, do nothing".
type TransactionStore interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus, processedAt *time.Time) error
	ListByWallet(ctx context.Context, walletID string) ([]domain.Transaction, error)
	MarkEffect(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) (bool, error)
	EffectApplied(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) (bool, error)
}

// SubsidyStore defines persistence for subsidy programs and their
// append-only acceptance records.
type SubsidyStore interface {
	Create(ctx context.Context, sub *domain.Subsidy) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Subsidy, error)
	List(ctx context.Context) ([]domain.Subsidy, error)
	CreateAcceptance(ctx context.Context, acc *domain.SubsidyAcceptance) error
	ListAcceptances(ctx context.Context, subsidyID uuid.UUID) ([]domain.SubsidyAcceptance, error)
}

// UserStore defines persistence for identity records.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// ShieldRegistry holds the configured shields. Wallets reference shields by
// id; evaluation order is the wallet's ActiveShieldIDs order.
type ShieldRegistry interface {
	Register(shield domain.Shield)
	Get(id string) (domain.Shield, bool)
	SetEnabled(id string, enabled bool) bool
	List() []domain.Shield
}
