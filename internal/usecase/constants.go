package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction.
	// This prevents long-running transactions from holding account row locks.
	DefaultTransactionTimeout = 10 * time.Second

	// StatementTransactionLimit is how many recent transactions a statement returns.
	StatementTransactionLimit = 10

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
