package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the kind of money movement.
type TransactionType string

const (
	TransactionTypeTransfer TransactionType = "transfer"
	TransactionTypeSubsidy  TransactionType = "subsidy"
	TransactionTypeRefund   TransactionType = "refund"
	TransactionTypeInternal TransactionType = "internal"
)

// TransactionStatus is a state in the strict transaction state machine:
//
//	pending -> held -> released
//	pending -> blocked
//	held    -> blocked
//
// released and blocked are terminal.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusHeld     TransactionStatus = "held"
	TransactionStatusReleased TransactionStatus = "released"
	TransactionStatusBlocked  TransactionStatus = "blocked"
)

// CanTransitionTo reports whether the state machine permits moving from s
// to next. Re-recording the same status is not a transition.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	switch s {
	case TransactionStatusPending:
		return next == TransactionStatusHeld || next == TransactionStatusBlocked
	case TransactionStatusHeld:
		return next == TransactionStatusReleased || next == TransactionStatusBlocked
	case TransactionStatusReleased, TransactionStatusBlocked:
		return false
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusReleased || s == TransactionStatusBlocked
}

// Transaction represents one money movement between two wallets.
// Immutable once terminal.
type Transaction struct {
	ID           uuid.UUID         `json:"id"`
	FromWalletID string            `json:"from_wallet_id"`
	ToWalletID   string            `json:"to_wallet_id"`
	Amount       int64             `json:"amount"` // smallest unit, > 0
	Type         TransactionType   `json:"type"`
	Status       TransactionStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	ProcessedAt  *time.Time        `json:"processed_at,omitempty"` // set when terminal
}

// IsTerminal returns true if the transaction is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status.IsTerminal()
}
