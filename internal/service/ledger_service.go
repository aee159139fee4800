package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"
	"cerebro-wallet/pkg/apperror"

	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService. It is the only code
// path that changes wallet balances. Every mutation runs under a single
// mutex: the release effect touches two wallets and the pair must be
// atomic.
type LedgerServiceImpl struct {
	mu      sync.Mutex
	wallets ports.WalletStore
	txStore ports.TransactionStore
	log     zerolog.Logger
	now     func() time.Time
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(wallets ports.WalletStore, txStore ports.TransactionStore, log zerolog.Logger) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		wallets: wallets,
		txStore: txStore,
		log:     log,
		now:     time.Now,
	}
}

// CreateWallet creates the wallet for ownerID if absent. Idempotent: an
// existing wallet is returned unchanged.
func (s *LedgerServiceImpl) CreateWallet(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	if ownerID == "" {
		return nil, apperror.ErrMissingWalletID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.wallets.Get(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	now := s.now().UTC()
	w := &domain.Wallet{
		OwnerID:   ownerID,
		State:     domain.WalletStateActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.wallets.Create(ctx, w); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	s.log.Info().Str("wallet_id", ownerID).Msg("wallet created")
	return w, nil
}

func (s *LedgerServiceImpl) GetWallet(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	w, err := s.wallets.Get(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	return w, nil
}

func (s *LedgerServiceImpl) GetBalance(ctx context.Context, ownerID string) (*domain.Balance, error) {
	w, err := s.GetWallet(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, apperror.ErrWalletNotFound(ownerID)
	}
	b := w.Balance()
	return &b, nil
}

// RecordTransaction applies the balance effect of moving tx to status. The
// effect is applied at most once per (tx.ID, status): re-recording the same
// status is a no-op for balances. Hold and release effects require a
// GuardPass issued by the guard for the sending wallet.
func (s *LedgerServiceImpl) RecordTransaction(ctx context.Context, tx *domain.Transaction, status domain.TransactionStatus, pass *ports.GuardPass) error {
	if tx == nil {
		return apperror.Validation("transaction is required")
	}
	if tx.Amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	applied, err := s.txStore.EffectApplied(ctx, tx.ID, status)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check effect: %w", err))
	}
	if applied {
		return nil
	}

	switch status {
	case domain.TransactionStatusPending:
		// No balance effect.
	case domain.TransactionStatusHeld:
		if err := s.applyHold(ctx, tx, pass); err != nil {
			return err
		}
	case domain.TransactionStatusReleased:
		if err := s.applyRelease(ctx, tx, pass); err != nil {
			return err
		}
	case domain.TransactionStatusBlocked:
		if err := s.applyBlock(ctx, tx); err != nil {
			return err
		}
	default:
		return apperror.Validation(fmt.Sprintf("unknown transaction status %q", status))
	}

	if _, err := s.txStore.MarkEffect(ctx, tx.ID, status); err != nil {
		return apperror.InternalError(fmt.Errorf("mark effect: %w", err))
	}

	s.log.Info().
		Str("tx_id", tx.ID.String()).
		Str("status", string(status)).
		Int64("amount", tx.Amount).
		Msg("ledger effect applied")
	return nil
}

// applyHold debits the sender's available balance into its held balance.
func (s *LedgerServiceImpl) applyHold(ctx context.Context, tx *domain.Transaction, pass *ports.GuardPass) error {
	if pass == nil || pass.WalletID != tx.FromWalletID {
		return apperror.Validation("hold effect requires a guard pass for the sending wallet")
	}

	from, err := s.mustWallet(ctx, tx.FromWalletID)
	if err != nil {
		return err
	}
	if from.BalanceAvailable < tx.Amount {
		return apperror.ErrInsufficientFunds(tx.Amount - from.BalanceAvailable)
	}

	from.BalanceAvailable -= tx.Amount
	from.BalanceHeld += tx.Amount
	return s.saveWallet(ctx, from)
}

// applyRelease moves the held amount from the sender's held balance into
// the recipient's available balance. The recipient wallet is created lazily.
func (s *LedgerServiceImpl) applyRelease(ctx context.Context, tx *domain.Transaction, pass *ports.GuardPass) error {
	if pass == nil || pass.WalletID != tx.FromWalletID {
		return apperror.Validation("release effect requires a guard pass for the sending wallet")
	}

	held, err := s.txStore.EffectApplied(ctx, tx.ID, domain.TransactionStatusHeld)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check hold effect: %w", err))
	}
	if !held {
		return apperror.ErrMissingHoldEffect(tx.ID.String())
	}

	from, err := s.mustWallet(ctx, tx.FromWalletID)
	if err != nil {
		return err
	}
	to, err := s.ensureWallet(ctx, tx.ToWalletID)
	if err != nil {
		return err
	}

	from.BalanceHeld -= tx.Amount
	to.BalanceAvailable += tx.Amount
	if err := s.saveWallet(ctx, from); err != nil {
		return err
	}
	return s.saveWallet(ctx, to)
}

// applyBlock returns a held amount to the sender. A transaction blocked
// while still pending had no hold, so the effect is a no-op.
func (s *LedgerServiceImpl) applyBlock(ctx context.Context, tx *domain.Transaction) error {
	held, err := s.txStore.EffectApplied(ctx, tx.ID, domain.TransactionStatusHeld)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check hold effect: %w", err))
	}
	if !held {
		return nil
	}

	from, err := s.mustWallet(ctx, tx.FromWalletID)
	if err != nil {
		return err
	}
	from.BalanceHeld -= tx.Amount
	from.BalanceAvailable += tx.Amount
	return s.saveWallet(ctx, from)
}

// ApplyLock moves amount from available into the protected balance.
func (s *LedgerServiceImpl) ApplyLock(ctx context.Context, ownerID string, amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.mustWallet(ctx, ownerID)
	if err != nil {
		return err
	}
	if w.BalanceAvailable < amount {
		return apperror.ErrInsufficientFunds(amount - w.BalanceAvailable)
	}
	w.BalanceAvailable -= amount
	w.BalanceProtected += amount
	return s.saveWallet(ctx, w)
}

// ApplyUnlock moves amount from the protected balance back to available.
func (s *LedgerServiceImpl) ApplyUnlock(ctx context.Context, ownerID string, amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.mustWallet(ctx, ownerID)
	if err != nil {
		return err
	}
	if w.BalanceProtected < amount {
		return apperror.ErrInsufficientProtected()
	}
	w.BalanceProtected -= amount
	w.BalanceAvailable += amount
	return s.saveWallet(ctx, w)
}

// Credit adds amount to the available balance, creating the wallet lazily.
func (s *LedgerServiceImpl) Credit(ctx context.Context, ownerID string, amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.ensureWallet(ctx, ownerID)
	if err != nil {
		return err
	}
	w.BalanceAvailable += amount
	return s.saveWallet(ctx, w)
}

// SpentSince sums released outgoing transactions for the wallet since t.
// It recomputes from the transaction log each call rather than keeping a
// running counter, so out-of-order recordings cannot skew the figure.
func (s *LedgerServiceImpl) SpentSince(ctx context.Context, walletID string, t time.Time) (int64, error) {
	txs, err := s.txStore.ListByWallet(ctx, walletID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}

	var spent int64
	for _, tx := range txs {
		if tx.FromWalletID != walletID || tx.Status != domain.TransactionStatusReleased {
			continue
		}
		at := tx.CreatedAt
		if tx.ProcessedAt != nil {
			at = *tx.ProcessedAt
		}
		if !at.Before(t) {
			spent += tx.Amount
		}
	}
	return spent, nil
}

func (s *LedgerServiceImpl) mustWallet(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	w, err := s.wallets.Get(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrWalletNotFound(ownerID)
	}
	return w, nil
}

func (s *LedgerServiceImpl) ensureWallet(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	w, err := s.wallets.Get(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if w != nil {
		return w, nil
	}

	now := s.now().UTC()
	w = &domain.Wallet{
		OwnerID:   ownerID,
		State:     domain.WalletStateActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.wallets.Create(ctx, w); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}
	return w, nil
}

func (s *LedgerServiceImpl) saveWallet(ctx context.Context, w *domain.Wallet) error {
	w.UpdatedAt = s.now().UTC()
	if err := s.wallets.Update(ctx, w); err != nil {
		return apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}
	return nil
}
