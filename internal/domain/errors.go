package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrInsufficientBalance = errors.New("insufficient balance for debit")

	// Input errors
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidKind        = errors.New("transaction kind must be credit or debit")
	ErrInvalidDescription = errors.New("description must be 1 to 10 characters")

	// ErrStoreUnavailable marks transient store failures. The operation never
	// committed, so the caller may retry the whole request.
	ErrStoreUnavailable = errors.New("store unavailable")
)
