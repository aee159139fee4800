package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
//
// Policy denials are NOT AppErrors: a guard or shield saying "no" is a
// normal result carried in the decision types. AppError is reserved for
// operations that failed to apply at all (bad input, state conflicts,
// infrastructure).
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

func ErrInvalidAmount() *AppError {
	return New("VAL_001", "Amount must be positive", http.StatusBadRequest)
}

func ErrMissingUserID() *AppError {
	return New("VAL_002", "Caller user id is required", http.StatusBadRequest)
}

func ErrMissingWalletID() *AppError {
	return New("VAL_003", "Wallet id is required", http.StatusBadRequest)
}

// Validation returns a generic VAL_000 validation error with a custom message.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}

// ---- Wallet & Ledger (WAL) ----

func ErrWalletNotFound(walletID string) *AppError {
	return New("WAL_001", fmt.Sprintf("Wallet %s not found", walletID), http.StatusNotFound)
}

func ErrInsufficientFunds(shortfall int64) *AppError {
	return New("WAL_002",
		fmt.Sprintf("Insufficient available balance, short by %d", shortfall),
		http.StatusPaymentRequired)
}

func ErrInsufficientProtected() *AppError {
	return New("WAL_003", "Insufficient protected balance to unlock", http.StatusPaymentRequired)
}

// ---- Transaction state machine (STATE) ----

// ErrStateConflict reports an illegal status transition. This indicates a
// caller bug (skipped step or double apply) and is logged distinctly from
// ordinary policy denials.
func ErrStateConflict(txID, expected, actual string) *AppError {
	return New("STATE_001",
		fmt.Sprintf("Transaction %s: expected status %s, found %s", txID, expected, actual),
		http.StatusConflict)
}

func ErrTransactionTerminal(txID, status string) *AppError {
	return New("STATE_002",
		fmt.Sprintf("Transaction %s is terminal (%s) and cannot change", txID, status),
		http.StatusConflict)
}

func ErrMissingHoldEffect(txID string) *AppError {
	return New("STATE_003",
		fmt.Sprintf("Transaction %s has no recorded hold effect", txID),
		http.StatusConflict)
}

func ErrTransactionNotFound(txID string) *AppError {
	return New("STATE_004", fmt.Sprintf("Transaction %s not found", txID), http.StatusNotFound)
}

func ErrCerebroApprovalRequired(txID string) *AppError {
	return New("STATE_005",
		fmt.Sprintf("Transaction %s: release requires a decision engine authorization", txID),
		http.StatusConflict)
}

// ---- Subsidy (SUB) ----

func ErrSubsidyNotFound(id string) *AppError {
	return New("SUB_001", fmt.Sprintf("Subsidy %s not found", id), http.StatusNotFound)
}

func ErrSubsidyUnavailable(id string) *AppError {
	return New("SUB_002", fmt.Sprintf("Subsidy %s is not available", id), http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
