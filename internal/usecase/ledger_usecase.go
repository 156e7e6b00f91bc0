package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/infrastructure/metrics"
)

// LedgerUseCase is the ledger engine: it applies signed transactions against
// an account balance atomically, holding the overdraft invariant
// balance >= -limit under concurrent calls to the same account.
type LedgerUseCase struct {
	txManager       TransactionManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	retrier         Retrier
	metrics         *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase. metrics may be nil.
func NewLedgerUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	retrier Retrier,
	m *metrics.Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		retrier:         retrier,
		metrics:         m,
	}
}

// ApplyInput represents input for applying a transaction.
type ApplyInput struct {
	AccountID   int64
	Kind        domain.TransactionKind
	Amount      int64
	Description string
}

// ApplyResult is the post-apply account state.
type ApplyResult struct {
	Limit   int64
	Balance int64
}

// Apply records one transaction and its balance effect as a single atomic
// unit of work. Exactly one of the following holds afterwards: the balance
// moved by the signed amount and one log row exists, or nothing changed.
//
// Serialization is enforced at the store: the account row is locked for the
// read-check-write sequence, so concurrent applies to the same account
// commit in some serial order while distinct accounts proceed in parallel.
// Deadlocks and serialization failures are retried; domain rejections are not.
func (uc *LedgerUseCase) Apply(ctx context.Context, input ApplyInput) (*ApplyResult, error) {
	if err := domain.ValidateTransactionInput(input.Kind, input.Amount, input.Description); err != nil {
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	start := time.Now()

	var result *ApplyResult

	err := uc.retrier.Retry(txCtx, func() error {
		res, err := uc.applyOnce(txCtx, input)
		if err != nil {
			return err
		}

		result = res

		return nil
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.TransactionsRejected.WithLabelValues(rejectionReason(err)).Inc()
		}

		return nil, coerceStoreError(err)
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsApplied.WithLabelValues(string(input.Kind)).Inc()
		uc.metrics.TransactionAmount.Observe(float64(input.Amount))
		uc.metrics.ApplyDuration.Observe(time.Since(start).Seconds())
	}

	return result, nil
}

func (uc *LedgerUseCase) applyOnce(ctx context.Context, input ApplyInput) (*ApplyResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Existence is checked under the same row lock as the mutation, never as
	// a separate preceding query.
	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}

	var newBalance int64

	switch input.Kind {
	case domain.KindDebit:
		if err := account.ValidateDebit(input.Amount); err != nil {
			return nil, err
		}

		newBalance = account.ApplyDebit(input.Amount)
	default:
		newBalance = account.ApplyCredit(input.Amount)
	}

	now := time.Now().UTC()

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, now); err != nil {
		return nil, err
	}

	transaction := &domain.Transaction{
		AccountID:   account.ID,
		Amount:      input.Amount,
		Kind:        input.Kind,
		Description: strings.TrimSpace(input.Description),
		OccurredAt:  now,
	}

	if err := uc.transactionRepo.Create(ctx, tx, transaction); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &ApplyResult{Limit: account.Limit, Balance: newBalance}, nil
}

// coerceStoreError folds infrastructure failures into ErrStoreUnavailable so
// callers see a closed error set. Domain errors pass through untouched.
func coerceStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrInvalidDescription):
		return err
	}

	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient_balance"
	default:
		return "store_error"
	}
}
