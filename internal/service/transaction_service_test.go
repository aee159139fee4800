package service

import (
	"context"
	"testing"
	"time"

	"cerebro-wallet/internal/adapter/storage/memory"
	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"
	"cerebro-wallet/internal/core/ports/mocks"
	"cerebro-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupTransactionService(t *testing.T) (
	*TransactionServiceImpl,
	*memory.TransactionStore,
	*mocks.MockLedgerService,
	*mocks.MockGuardService,
	*gomock.Controller,
) {
	ctrl := gomock.NewController(t)
	txStore := memory.NewTransactionStore()
	ledger := mocks.NewMockLedgerService(ctrl)
	guard := mocks.NewMockGuardService(ctrl)

	svc := NewTransactionService(txStore, ledger, guard, zerolog.Nop())
	return svc, txStore, ledger, guard, ctrl
}

func allowedDecision(walletID string, amount int64) *ports.GuardDecision {
	return &ports.GuardDecision{
		Allowed:  true,
		Severity: domain.SeverityGreen,
		Pass:     &ports.GuardPass{WalletID: walletID, Amount: amount, IssuedAt: time.Now().UTC()},
	}
}

func TestTransactionService_Create(t *testing.T) {
	svc, txStore, _, _, ctrl := setupTransactionService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	tx, err := svc.Create(ctx, "alice", "bob", 500, domain.TransactionTypeTransfer)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusPending, tx.Status)
	assert.Equal(t, "alice", tx.FromWalletID)
	assert.Equal(t, "bob", tx.ToWalletID)
	assert.Nil(t, tx.ProcessedAt)

	stored, err := txStore.Get(ctx, tx.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestTransactionService_Create_Validation(t *testing.T) {
	svc, _, _, _, ctrl := setupTransactionService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	var appErr *apperror.AppError

	_, err := svc.Create(ctx, "", "bob", 100, domain.TransactionTypeTransfer)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_003", appErr.Code)

	_, err = svc.Create(ctx, "alice", "alice", 100, domain.TransactionTypeTransfer)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_000", appErr.Code)

	_, err = svc.Create(ctx, "alice", "bob", 0, domain.TransactionTypeTransfer)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_001", appErr.Code)
}

func TestTransactionService_Get_NotFound(t *testing.T) {
	svc, _, _, _, ctrl := setupTransactionService(t)
	defer ctrl.Finish()

	_, err := svc.Get(context.Background(), uuid.New())
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STATE_004", appErr.Code)
}

func TestTransactionService_Apply_PendingToHeld(t *testing.T) {
	svc, _, ledger, guard, ctrl := setupTransactionService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	tx, err := svc.Create(ctx, "alice", "bob", 500, domain.TransactionTypeTransfer)
	require.NoError(t, err)

	decision := allowedDecision("alice", 500)
	// The guard always judges the sender for the full amount, whatever the
	// caller put in the context.
	guard.EXPECT().Check(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, gctx ports.GuardContext) (*ports.GuardDecision, error) {
			assert.Equal(t, "alice", gctx.WalletID)
			assert.Equal(t, ports.GuardActionTransfer, gctx.Action)
			assert.Equal(t, int64(500), gctx.Amount)
			return decision, nil
		})
	ledger.EXPECT().RecordTransaction(ctx, gomock.Any(), domain.TransactionStatusHeld, decision.Pass).Return(nil)

	outcome, err := svc.Apply(ctx, tx.ID, ports.GuardContext{UserID: "alice", WalletID: "wrong", Amount: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusHeld, outcome.Transaction.Status)
	assert.Nil(t, outcome.Transaction.ProcessedAt)
	assert.True(t, outcome.Decision.Allowed)
}

func TestTransactionService_Apply_GuardDenyLeavesStateUntouched(t *testing.T) {
	svc, _, _, guard, ctrl := setupTransactionService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	tx, err := svc.Create(ctx, "alice", "bob", 500, domain.TransactionTypeTransfer)
	require.NoError(t, err)

	guard.EXPECT().Check(ctx, gomock.Any()).Return(&ports.GuardDecision{
		Allowed:  false,
		Reason:   "insufficient funds: short by 100",
		Severity: domain.SeverityRed,
	}, nil)

	// No ledger expectation: a denial must not touch balances.
	outcome, err := svc.Apply(ctx, tx.ID, ports.GuardContext{UserID: "alice"}, nil)
	require.NoError(t, err)
	assert.False(t, outcome.Decision.Allowed)
	assert.Equal(t, domain.TransactionStatusPending, outcome.Transaction.Status)

	current, err := svc.Get(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusPending, current.Status)
}

func TestTransactionService_Apply_EscalationLeavesStateUntouched(t *testing.T) {
	svc, _, _, guard, ctrl := setupTransactionService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	tx, err := svc.Create(ctx, "alice", "bob", 500, domain.TransactionTypeTransfer)
	require.NoError(t, err)

	guard.EXPECT().Check(ctx, gomock.Any()).Return(&ports.GuardDecision{
		Allowed:                true,
		RequiresValidation:     true,
		RequiredBiometricLevel: 2,
		Severity:               domain.SeverityYellow,
	}, nil)

	outcome, err := svc.Apply(ctx, tx.ID, ports.GuardContext{UserID: "alice"}, nil)
	require.NoError(t, err)
	assert.True(t, outcome.Decision.RequiresValidation)
	assert.Equal(t, domain.TransactionStatusPending, outcome.Transaction.Status)
}

func TestTransactionService_Apply_ReleaseRequiresApproval(t *testing.T) {
	svc, txStore, _, _, ctrl := setupTransactionService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	tx, err := svc.Create(ctx, "alice", "bob", 500, domain.TransactionTypeTransfer)
	require.NoError(t, err)
	require.NoError(t, txStore.UpdateStatus(ctx, tx.ID, domain.TransactionStatusHeld, nil))

	var appErr *apperror.AppError

	_, err = svc.Apply(ctx, tx.ID, ports.GuardContext{UserID: "alice"}, nil)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STATE_005", appErr.Code)

	// An approval for a different transaction does not count.
	wrong := &ports.CerebroApproval{TransactionID: uuid.New(), IssuedAt: time.Now().UTC()}
	_, err = svc.Apply(ctx, tx.ID, ports.GuardContext{UserID: "alice"}, wrong)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STATE_005", appErr.Code)
}

func TestTransactionService_Apply_HeldToReleased(t *testing.T) {
	svc, txStore, ledger, guard, ctrl := setupTransactionService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	processedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return processedAt }

	tx, err := svc.Create(ctx, "alice", "bob", 500, domain.TransactionTypeTransfer)
	require.NoError(t, err)
	require.NoError(t, txStore.UpdateStatus(ctx, tx.ID, domain.TransactionStatusHeld, nil))

	decision := allowedDecision("alice", 500)
	// The release step must be announced as such: the guard skips the
	// spendable check for it because the hold already escrowed the amount.
	guard.EXPECT().Check(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, gctx ports.GuardContext) (*ports.GuardDecision, error) {
			assert.Equal(t, "alice", gctx.WalletID)
			assert.Equal(t, ports.GuardActionRelease, gctx.Action)
			assert.Equal(t, int64(500), gctx.Amount)
			return decision, nil
		})
	ledger.EXPECT().RecordTransaction(ctx, gomock.Any(), domain.TransactionStatusReleased, decision.Pass).Return(nil)

	approval := &ports.CerebroApproval{TransactionID: tx.ID, IssuedAt: processedAt}
	outcome, err := svc.Apply(ctx, tx.ID, ports.GuardContext{UserID: "alice"}, approval)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusReleased, outcome.Transaction.Status)
	require.NotNil(t, outcome.Transaction.ProcessedAt)
	assert.Equal(t, processedAt, *outcome.Transaction.ProcessedAt)
}

func TestTransactionService_Apply_ReleasesHoldLargerThanRemainingBalance(t *testing.T) {
	// Full stack: a 600-of-1000 hold leaves only 400 available. The release
	// spends the 600 in escrow, so it must succeed even though the amount
	// exceeds what the sender still has on hand.
	ctx := context.Background()
	wallets := memory.NewWalletStore()
	txStore := memory.NewTransactionStore()
	ledger := NewLedgerService(wallets, txStore, zerolog.Nop())
	engine := NewShieldEngine(NewStaticTerritorySemaphore(nil), ledger, testFreshness, zerolog.Nop())
	guard := NewGuardService(wallets, NewStaticAuthorizationService(), memory.NewShieldRegistry(), engine, zerolog.Nop())
	svc := NewTransactionService(txStore, ledger, guard, zerolog.Nop())

	fundWallet(t, ledger, "alice", 1000)

	tx, err := svc.Create(ctx, "alice", "bob", 600, domain.TransactionTypeTransfer)
	require.NoError(t, err)

	gctx := ports.GuardContext{UserID: "alice", Roles: []domain.Role{domain.RoleOwner}}
	held, err := svc.Apply(ctx, tx.ID, gctx, nil)
	require.NoError(t, err)
	require.True(t, held.Decision.Allowed)
	require.Equal(t, domain.TransactionStatusHeld, held.Transaction.Status)

	sender, err := wallets.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(400), sender.BalanceAvailable)
	assert.Equal(t, int64(600), sender.BalanceHeld)

	approval := &ports.CerebroApproval{TransactionID: tx.ID, IssuedAt: time.Now().UTC()}
	released, err := svc.Apply(ctx, tx.ID, gctx, approval)
	require.NoError(t, err)
	require.True(t, released.Decision.Allowed, "release denied: %s", released.Decision.Reason)
	assert.Equal(t, domain.TransactionStatusReleased, released.Transaction.Status)

	sender, err = wallets.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(400), sender.BalanceAvailable)
	assert.Equal(t, int64(0), sender.BalanceHeld)

	recipient, err := wallets.Get(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, recipient)
	assert.Equal(t, int64(600), recipient.BalanceAvailable)
}

func TestTransactionService_Apply_TerminalTransaction(t *testing.T) {
	svc, txStore, _, _, ctrl := setupTransactionService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	tx, err := svc.Create(ctx, "alice", "bob", 500, domain.TransactionTypeTransfer)
	require.NoError(t, err)
	now := time.Now().UTC()
	require.NoError(t, txStore.UpdateStatus(ctx, tx.ID, domain.TransactionStatusBlocked, &now))

	_, err = svc.Apply(ctx, tx.ID, ports.GuardContext{UserID: "alice"}, nil)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STATE_002", appErr.Code)
}

func TestTransactionService_Block_FromPending(t *testing.T) {
	svc, _, ledger, _, ctrl := setupTransactionService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	tx, err := svc.Create(ctx, "alice", "bob", 500, domain.TransactionTypeTransfer)
	require.NoError(t, err)

	// Blocking needs no guard pass; the ledger decides whether funds return.
	ledger.EXPECT().RecordTransaction(ctx, gomock.Any(), domain.TransactionStatusBlocked, nil).Return(nil)

	blocked, err := svc.Block(ctx, tx.ID, ports.GuardContext{UserID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusBlocked, blocked.Status)
	require.NotNil(t, blocked.ProcessedAt)
}

func TestTransactionService_Block_FromHeld(t *testing.T) {
	svc, txStore, ledger, _, ctrl := setupTransactionService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	tx, err := svc.Create(ctx, "alice", "bob", 500, domain.TransactionTypeTransfer)
	require.NoError(t, err)
	require.NoError(t, txStore.UpdateStatus(ctx, tx.ID, domain.TransactionStatusHeld, nil))

	ledger.EXPECT().RecordTransaction(ctx, gomock.Any(), domain.TransactionStatusBlocked, nil).Return(nil)

	blocked, err := svc.Block(ctx, tx.ID, ports.GuardContext{UserID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusBlocked, blocked.Status)
}

func TestTransactionService_Block_TerminalTransaction(t *testing.T) {
	svc, txStore, _, _, ctrl := setupTransactionService(t)
	defer ctrl.Finish()
	ctx := context.Background()

	tx, err := svc.Create(ctx, "alice", "bob", 500, domain.TransactionTypeTransfer)
	require.NoError(t, err)
	now := time.Now().UTC()
	require.NoError(t, txStore.UpdateStatus(ctx, tx.ID, domain.TransactionStatusReleased, &now))

	_, err = svc.Block(ctx, tx.ID, ports.GuardContext{UserID: "alice"})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STATE_002", appErr.Code)
}
