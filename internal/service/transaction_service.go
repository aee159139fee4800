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

// TransactionServiceImpl implements ports.TransactionService. It owns the
// status column of transactions; the ledger owns the balance effects. The
// full guard re-runs before every step because shields or balances may
// have changed between steps.
type TransactionServiceImpl struct {
	txStore ports.TransactionStore
	ledger  ports.LedgerService
	guard   ports.GuardService
	log     zerolog.Logger
	now     func() time.Time
}

// NewTransactionService creates a new TransactionServiceImpl.
func NewTransactionService(
	txStore ports.TransactionStore,
	ledger ports.LedgerService,
	guard ports.GuardService,
	log zerolog.Logger,
) *TransactionServiceImpl {
	return &TransactionServiceImpl{
		txStore: txStore,
		ledger:  ledger,
		guard:   guard,
		log:     log,
		now:     time.Now,
	}
}

// Create records a pending transaction. No funds move until a hold is
// applied through the guard.
func (s *TransactionServiceImpl) Create(ctx context.Context, from, to string, amount int64, txType domain.TransactionType) (*domain.Transaction, error) {
	if from == "" || to == "" {
		return nil, apperror.ErrMissingWalletID()
	}
	if from == to {
		return nil, apperror.Validation("sender and recipient wallets must differ")
	}
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	tx := &domain.Transaction{
		ID:           uuid.New(),
		FromWalletID: from,
		ToWalletID:   to,
		Amount:       amount,
		Type:         txType,
		Status:       domain.TransactionStatusPending,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.txStore.Create(ctx, tx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	s.log.Info().
		Str("tx_id", tx.ID.String()).
		Str("from", from).
		Str("to", to).
		Int64("amount", amount).
		Msg("transaction created")
	return tx, nil
}

func (s *TransactionServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	tx, err := s.txStore.Get(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get transaction: %w", err))
	}
	if tx == nil {
		return nil, apperror.ErrTransactionNotFound(id.String())
	}
	return tx, nil
}

// Apply advances the transaction exactly one step: pending -> held or
// held -> released. The guard runs first; a denial or escalation returns
// the unchanged transaction with the guard decision and no ledger effect.
// Advancing to released requires a CerebroApproval for this transaction.
func (s *TransactionServiceImpl) Apply(ctx context.Context, id uuid.UUID, gctx ports.GuardContext, approval *ports.CerebroApproval) (*ports.TransactionOutcome, error) {
	tx, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.IsTerminal() {
		return nil, s.stateConflict(apperror.ErrTransactionTerminal(tx.ID.String(), string(tx.Status)))
	}

	var next domain.TransactionStatus
	switch tx.Status {
	case domain.TransactionStatusPending:
		next = domain.TransactionStatusHeld
	case domain.TransactionStatusHeld:
		next = domain.TransactionStatusReleased
		if approval == nil || approval.TransactionID != tx.ID {
			return nil, s.stateConflict(apperror.ErrCerebroApprovalRequired(tx.ID.String()))
		}
	default:
		return nil, s.stateConflict(apperror.ErrStateConflict(tx.ID.String(),
			string(domain.TransactionStatusPending), string(tx.Status)))
	}

	// The guard always judges the sending wallet for the full amount. The
	// action tells it which step is being gated: the hold check spends from
	// the available balance, the release spends the escrowed hold.
	gctx.WalletID = tx.FromWalletID
	gctx.Amount = tx.Amount
	gctx.Action = ports.GuardActionTransfer
	if next == domain.TransactionStatusReleased {
		gctx.Action = ports.GuardActionRelease
	}

	decision, err := s.guard.Check(ctx, gctx)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed || decision.RequiresValidation {
		return &ports.TransactionOutcome{Transaction: tx, Decision: decision}, nil
	}

	if err := s.ledger.RecordTransaction(ctx, tx, next, decision.Pass); err != nil {
		return nil, err
	}
	if err := s.advanceStatus(ctx, tx, next); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tx_id", tx.ID.String()).
		Str("status", string(next)).
		Msg("transaction advanced")
	return &ports.TransactionOutcome{Transaction: tx, Decision: decision}, nil
}

// Block terminates the transaction from pending or held. Structurally it
// always succeeds when the transaction is in a blockable state; any held
// funds return to the sender.
func (s *TransactionServiceImpl) Block(ctx context.Context, id uuid.UUID, gctx ports.GuardContext) (*domain.Transaction, error) {
	tx, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.IsTerminal() {
		return nil, s.stateConflict(apperror.ErrTransactionTerminal(tx.ID.String(), string(tx.Status)))
	}

	if err := s.ledger.RecordTransaction(ctx, tx, domain.TransactionStatusBlocked, nil); err != nil {
		return nil, err
	}
	if err := s.advanceStatus(ctx, tx, domain.TransactionStatusBlocked); err != nil {
		return nil, err
	}

	s.log.Info().Str("tx_id", tx.ID.String()).Msg("transaction blocked")
	return tx, nil
}

func (s *TransactionServiceImpl) advanceStatus(ctx context.Context, tx *domain.Transaction, next domain.TransactionStatus) error {
	if !tx.Status.CanTransitionTo(next) {
		return s.stateConflict(apperror.ErrStateConflict(tx.ID.String(), string(tx.Status), string(next)))
	}
	var processedAt *time.Time
	if next.IsTerminal() {
		now := s.now().UTC()
		processedAt = &now
	}
	if err := s.txStore.UpdateStatus(ctx, tx.ID, next, processedAt); err != nil {
		return apperror.InternalError(fmt.Errorf("update status: %w", err))
	}
	tx.Status = next
	tx.ProcessedAt = processedAt
	return nil
}

// stateConflict logs the conflict distinctly from policy denials: it
// indicates a caller bug, not a user being told no.
func (s *TransactionServiceImpl) stateConflict(err *apperror.AppError) error {
	s.log.Warn().Str("code", err.Code).Str("detail", err.Message).Msg("transaction state conflict")
	return err
}
