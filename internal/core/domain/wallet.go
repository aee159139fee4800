package domain

import "time"

// WalletState represents the operational state of a wallet.
type WalletState string

const (
	WalletStateActive    WalletState = "active"
	WalletStateLocked    WalletState = "locked"
	WalletStateSuspended WalletState = "suspended"
)

// Limits holds per-wallet spending ceilings.
type Limits struct {
	Daily   int64 `json:"daily"`
	Monthly int64 `json:"monthly"`
}

// Wallet is the balance record for one owner. One wallet per owner id.
// Only the ledger service mutates balances, and only in response to a
// recorded transaction effect or an explicit lock/unlock/credit.
type Wallet struct {
	OwnerID          string      `json:"owner_id"`
	BalanceAvailable int64       `json:"balance_available"` // smallest unit
	BalanceHeld      int64       `json:"balance_held"`      // in-flight holds
	BalanceProtected int64       `json:"balance_protected"` // locked, non-spendable
	ActiveShieldIDs  []string    `json:"active_shield_ids"`
	Limits           Limits      `json:"limits"`
	State            WalletState `json:"state"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// IsActive reports whether the wallet may move money.
func (w *Wallet) IsActive() bool {
	return w.State == WalletStateActive
}

// Balance is the derived view of a wallet's funds. Never stored.
type Balance struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	Protected int64 `json:"protected"`
}

// Balance derives the balance view. Held funds are in flight between
// wallets and not part of either figure.
func (w *Wallet) Balance() Balance {
	return Balance{
		Total:     w.BalanceAvailable + w.BalanceProtected,
		Available: w.BalanceAvailable,
		Protected: w.BalanceProtected,
	}
}
