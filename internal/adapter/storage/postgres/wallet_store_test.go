package postgres

import (
	"context"
	"testing"
	"time"

	"cerebro-wallet/internal/core/domain"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWallet() *domain.Wallet {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Wallet{
		OwnerID:          "alice",
		BalanceAvailable: 1000,
		BalanceHeld:      200,
		BalanceProtected: 300,
		ActiveShieldIDs:  []string{"biometric-l2", "territorial"},
		Limits:           domain.Limits{Daily: 100_000, Monthly: 1_000_000},
		State:            domain.WalletStateActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func walletTestColumns() []string {
	return []string{
		"owner_id", "balance_available", "balance_held", "balance_protected",
		"active_shield_ids", "limit_daily", "limit_monthly", "state",
		"created_at", "updated_at",
	}
}

func walletRow(w *domain.Wallet) *pgxmock.Rows {
	return pgxmock.NewRows(walletTestColumns()).AddRow(
		w.OwnerID, w.BalanceAvailable, w.BalanceHeld, w.BalanceProtected,
		w.ActiveShieldIDs, w.Limits.Daily, w.Limits.Monthly, w.State,
		w.CreatedAt, w.UpdatedAt,
	)
}

func TestWalletStore_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewWalletStore(mock)
	w := newTestWallet()

	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(w.OwnerID, w.BalanceAvailable, w.BalanceHeld, w.BalanceProtected,
			w.ActiveShieldIDs, w.Limits.Daily, w.Limits.Monthly, w.State,
			w.CreatedAt, w.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = store.Create(context.Background(), w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletStore_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewWalletStore(mock)
	w := newTestWallet()

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE owner_id").
		WithArgs(w.OwnerID).
		WillReturnRows(walletRow(w))

	result, err := store.Get(context.Background(), w.OwnerID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.OwnerID, result.OwnerID)
	assert.Equal(t, w.BalanceAvailable, result.BalanceAvailable)
	assert.Equal(t, w.ActiveShieldIDs, result.ActiveShieldIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletStore_Get_Missing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewWalletStore(mock)

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE owner_id").
		WithArgs("ghost").
		WillReturnRows(pgxmock.NewRows(walletTestColumns()))

	result, err := store.Get(context.Background(), "ghost")
	require.NoError(t, err, "absent wallet is (nil, nil), not an error")
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletStore_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewWalletStore(mock)
	w := newTestWallet()

	mock.ExpectExec("UPDATE wallets SET").
		WithArgs(w.BalanceAvailable, w.BalanceHeld, w.BalanceProtected,
			w.ActiveShieldIDs, w.Limits.Daily, w.Limits.Monthly, w.State,
			w.OwnerID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = store.Update(context.Background(), w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletStore_Update_Missing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewWalletStore(mock)
	w := newTestWallet()

	mock.ExpectExec("UPDATE wallets SET").
		WithArgs(w.BalanceAvailable, w.BalanceHeld, w.BalanceProtected,
			w.ActiveShieldIDs, w.Limits.Daily, w.Limits.Monthly, w.State,
			w.OwnerID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = store.Update(context.Background(), w)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletStore_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewWalletStore(mock)
	w := newTestWallet()

	rows := walletRow(w).AddRow(
		"bob", int64(50), int64(0), int64(0),
		[]string{}, int64(0), int64(0), domain.WalletStateLocked,
		w.CreatedAt, w.UpdatedAt,
	)
	mock.ExpectQuery("SELECT .+ FROM wallets ORDER BY created_at").
		WillReturnRows(rows)

	wallets, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, wallets, 2)
	assert.Equal(t, "alice", wallets[0].OwnerID)
	assert.Equal(t, domain.WalletStateLocked, wallets[1].State)
	assert.NoError(t, mock.ExpectationsWereMet())
}
