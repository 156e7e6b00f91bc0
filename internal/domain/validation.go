package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validation constants
const (
	MinDescriptionLength = 1
	MaxDescriptionLength = 10
)

// ValidateAmount validates a transaction amount.
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateKind validates a transaction kind.
func ValidateKind(kind TransactionKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, string(kind))
	}
	return nil
}

// ValidateDescription validates a transaction description: non-blank, at most
// ten characters. Length is counted in runes, matching what callers type.
func ValidateDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return fmt.Errorf("%w: description is blank", ErrInvalidDescription)
	}

	if utf8.RuneCountInString(trimmed) > MaxDescriptionLength {
		return fmt.Errorf("%w: exceeds %d characters", ErrInvalidDescription, MaxDescriptionLength)
	}

	return nil
}

// ValidateTransactionInput runs the full defensive check the ledger engine
// performs before touching the store.
func ValidateTransactionInput(kind TransactionKind, amount int64, description string) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	if err := ValidateKind(kind); err != nil {
		return err
	}

	return ValidateDescription(description)
}
