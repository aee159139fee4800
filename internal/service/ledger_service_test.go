package service

import (
	"context"
	"testing"
	"time"

	"cerebro-wallet/internal/adapter/storage/memory"
	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"
	"cerebro-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The ledger is stateful across calls (hold then release, idempotency),
// so these tests run against the in-memory stores instead of mocks.

func setupLedgerService(t *testing.T) (*LedgerServiceImpl, *memory.WalletStore, *memory.TransactionStore) {
	t.Helper()
	wallets := memory.NewWalletStore()
	txStore := memory.NewTransactionStore()
	svc := NewLedgerService(wallets, txStore, zerolog.Nop())
	return svc, wallets, txStore
}

func fundWallet(t *testing.T, svc *LedgerServiceImpl, ownerID string, amount int64) {
	t.Helper()
	ctx := context.Background()
	_, err := svc.CreateWallet(ctx, ownerID)
	require.NoError(t, err)
	require.NoError(t, svc.Credit(ctx, ownerID, amount))
}

func passFor(walletID string, amount int64) *ports.GuardPass {
	return &ports.GuardPass{WalletID: walletID, Amount: amount, IssuedAt: time.Now().UTC()}
}

func transferTx(from, to string, amount int64) *domain.Transaction {
	return &domain.Transaction{
		ID:           uuid.New(),
		FromWalletID: from,
		ToWalletID:   to,
		Amount:       amount,
		Type:         domain.TransactionTypeTransfer,
		Status:       domain.TransactionStatusPending,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestLedgerService_CreateWallet_Idempotent(t *testing.T) {
	svc, _, _ := setupLedgerService(t)
	ctx := context.Background()

	w1, err := svc.CreateWallet(ctx, "alice")
	require.NoError(t, err)
	require.NoError(t, svc.Credit(ctx, "alice", 100))

	w2, err := svc.CreateWallet(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, w1.OwnerID, w2.OwnerID)
	assert.Equal(t, int64(100), w2.BalanceAvailable, "existing wallet returned unchanged")
}

func TestLedgerService_CreateWallet_MissingID(t *testing.T) {
	svc, _, _ := setupLedgerService(t)

	_, err := svc.CreateWallet(context.Background(), "")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_003", appErr.Code)
}

func TestLedgerService_GetBalance_NotFound(t *testing.T) {
	svc, _, _ := setupLedgerService(t)

	_, err := svc.GetBalance(context.Background(), "ghost")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_001", appErr.Code)
}

func TestLedgerService_Hold_MovesAvailableToHeld(t *testing.T) {
	svc, _, _ := setupLedgerService(t)
	ctx := context.Background()
	fundWallet(t, svc, "alice", 1000)

	tx := transferTx("alice", "bob", 400)
	require.NoError(t, svc.RecordTransaction(ctx, tx, domain.TransactionStatusHeld, passFor("alice", 400)))

	w, err := svc.GetWallet(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(600), w.BalanceAvailable)
	assert.Equal(t, int64(400), w.BalanceHeld)
}

func TestLedgerService_Hold_RequiresGuardPass(t *testing.T) {
	svc, _, _ := setupLedgerService(t)
	ctx := context.Background()
	fundWallet(t, svc, "alice", 1000)

	tx := transferTx("alice", "bob", 400)

	err := svc.RecordTransaction(ctx, tx, domain.TransactionStatusHeld, nil)
	require.Error(t, err)

	// A pass issued for a different wallet does not count.
	err = svc.RecordTransaction(ctx, tx, domain.TransactionStatusHeld, passFor("mallory", 400))
	require.Error(t, err)

	w, _ := svc.GetWallet(ctx, "alice")
	assert.Equal(t, int64(1000), w.BalanceAvailable, "no funds moved")
	assert.Zero(t, w.BalanceHeld)
}

func TestLedgerService_Hold_InsufficientFunds(t *testing.T) {
	svc, _, _ := setupLedgerService(t)
	ctx := context.Background()
	fundWallet(t, svc, "alice", 100)

	tx := transferTx("alice", "bob", 250)
	err := svc.RecordTransaction(ctx, tx, domain.TransactionStatusHeld, passFor("alice", 250))

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_002", appErr.Code)
}

func TestLedgerService_Hold_IdempotentPerStatus(t *testing.T) {
	svc, _, _ := setupLedgerService(t)
	ctx := context.Background()
	fundWallet(t, svc, "alice", 1000)

	tx := transferTx("alice", "bob", 400)
	pass := passFor("alice", 400)
	require.NoError(t, svc.RecordTransaction(ctx, tx, domain.TransactionStatusHeld, pass))
	// Second recording of the same effect is a no-op, not a double debit.
	require.NoError(t, svc.RecordTransaction(ctx, tx, domain.TransactionStatusHeld, pass))

	w, _ := svc.GetWallet(ctx, "alice")
	assert.Equal(t, int64(600), w.BalanceAvailable)
	assert.Equal(t, int64(400), w.BalanceHeld)
}

func TestLedgerService_Release_CreditsRecipient(t *testing.T) {
	svc, _, _ := setupLedgerService(t)
	ctx := context.Background()
	fundWallet(t, svc, "alice", 1000)

	tx := transferTx("alice", "bob", 400)
	pass := passFor("alice", 400)
	require.NoError(t, svc.RecordTransaction(ctx, tx, domain.TransactionStatusHeld, pass))
	require.NoError(t, svc.RecordTransaction(ctx, tx, domain.TransactionStatusReleased, pass))

	from, _ := svc.GetWallet(ctx, "alice")
	assert.Equal(t, int64(600), from.BalanceAvailable)
	assert.Zero(t, from.BalanceHeld)

	// The recipient wallet is created lazily on release.
	to, err := svc.GetWallet(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, to)
	assert.Equal(t, int64(400), to.BalanceAvailable)

	// Conservation: total money across wallets is unchanged.
	assert.Equal(t, int64(1000), from.BalanceAvailable+from.BalanceHeld+to.BalanceAvailable)
}

func TestLedgerService_Release_WithoutHoldEffect(t *testing.T) {
	svc, _, _ := setupLedgerService(t)
	ctx := context.Background()
	fundWallet(t, svc, "alice", 1000)

	tx := transferTx("alice", "bob", 400)
	err := svc.RecordTransaction(ctx, tx, domain.TransactionStatusReleased, passFor("alice", 400))

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STATE_003", appErr.Code)

	w, _ := svc.GetWallet(ctx, "alice")
	assert.Equal(t, int64(1000), w.BalanceAvailable)
}

func TestLedgerService_Block_ReturnsHeldFunds(t *testing.T) {
	svc, _, _ := setupLedgerService(t)
	ctx := context.Background()
	fundWallet(t, svc, "alice", 1000)

	tx := transferTx("alice", "bob", 400)
	require.NoError(t, svc.RecordTransaction(ctx, tx, domain.TransactionStatusHeld, passFor("alice", 400)))
	require.NoError(t, svc.RecordTransaction(ctx, tx, domain.TransactionStatusBlocked, nil))

	w, _ := svc.GetWallet(ctx, "alice")
	assert.Equal(t, int64(1000), w.BalanceAvailable)
	assert.Zero(t, w.BalanceHeld)
}

func TestLedgerService_Block_BeforeHoldIsNoOp(t *testing.T) {
	svc, _, _ := setupLedgerService(t)
	ctx := context.Background()
	fundWallet(t, svc, "alice", 1000)

	// Blocked while still pending: no hold was ever applied.
	tx := transferTx("alice", "bob", 400)
	require.NoError(t, svc.RecordTransaction(ctx, tx, domain.TransactionStatusBlocked, nil))

	w, _ := svc.GetWallet(ctx, "alice")
	assert.Equal(t, int64(1000), w.BalanceAvailable)
	assert.Zero(t, w.BalanceHeld)
}

func TestLedgerService_RecordTransaction_Validation(t *testing.T) {
	svc, _, _ := setupLedgerService(t)
	ctx := context.Background()

	require.Error(t, svc.RecordTransaction(ctx, nil, domain.TransactionStatusHeld, nil))

	tx := transferTx("alice", "bob", 0)
	err := svc.RecordTransaction(ctx, tx, domain.TransactionStatusHeld, passFor("alice", 0))
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_001", appErr.Code)
}

func TestLedgerService_LockUnlock(t *testing.T) {
	svc, _, _ := setupLedgerService(t)
	ctx := context.Background()
	fundWallet(t, svc, "alice", 1000)

	require.NoError(t, svc.ApplyLock(ctx, "alice", 300))

	w, _ := svc.GetWallet(ctx, "alice")
	assert.Equal(t, int64(700), w.BalanceAvailable)
	assert.Equal(t, int64(300), w.BalanceProtected)

	require.NoError(t, svc.ApplyUnlock(ctx, "alice", 100))

	w, _ = svc.GetWallet(ctx, "alice")
	assert.Equal(t, int64(800), w.BalanceAvailable)
	assert.Equal(t, int64(200), w.BalanceProtected)
}

func TestLedgerService_ApplyLock_InsufficientAvailable(t *testing.T) {
	svc, _, _ := setupLedgerService(t)
	ctx := context.Background()
	fundWallet(t, svc, "alice", 100)

	err := svc.ApplyLock(ctx, "alice", 500)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_002", appErr.Code)
}

func TestLedgerService_ApplyUnlock_InsufficientProtected(t *testing.T) {
	svc, _, _ := setupLedgerService(t)
	ctx := context.Background()
	fundWallet(t, svc, "alice", 1000)
	require.NoError(t, svc.ApplyLock(ctx, "alice", 100))

	err := svc.ApplyUnlock(ctx, "alice", 200)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_003", appErr.Code)
}

func TestLedgerService_Credit_CreatesWalletLazily(t *testing.T) {
	svc, _, _ := setupLedgerService(t)
	ctx := context.Background()

	require.NoError(t, svc.Credit(ctx, "fresh", 250))

	w, err := svc.GetWallet(ctx, "fresh")
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, int64(250), w.BalanceAvailable)
	assert.Equal(t, domain.WalletStateActive, w.State)
}

func TestLedgerService_SpentSince(t *testing.T) {
	svc, _, txStore := setupLedgerService(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mk := func(amount int64, status domain.TransactionStatus, processedAt time.Time) {
		tx := transferTx("alice", "bob", amount)
		tx.Status = status
		tx.CreatedAt = processedAt.Add(-time.Hour)
		if status.IsTerminal() {
			at := processedAt
			tx.ProcessedAt = &at
		}
		require.NoError(t, txStore.Create(ctx, tx))
	}

	mk(100, domain.TransactionStatusReleased, base.Add(2*time.Hour))  // counts
	mk(200, domain.TransactionStatusReleased, base.Add(10*time.Hour)) // counts
	mk(400, domain.TransactionStatusReleased, base.Add(-time.Hour))   // before window
	mk(800, domain.TransactionStatusHeld, base.Add(3*time.Hour))      // not released
	mk(1600, domain.TransactionStatusBlocked, base.Add(4*time.Hour))  // not released

	// Incoming releases do not count as spend.
	in := transferTx("carol", "alice", 50)
	in.Status = domain.TransactionStatusReleased
	at := base.Add(5 * time.Hour)
	in.ProcessedAt = &at
	require.NoError(t, txStore.Create(ctx, in))

	spent, err := svc.SpentSince(ctx, "alice", base)
	require.NoError(t, err)
	assert.Equal(t, int64(300), spent)
}
