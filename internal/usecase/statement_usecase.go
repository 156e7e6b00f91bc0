package usecase

import (
	"context"
	"time"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/infrastructure/metrics"
)

// StatementUseCase assembles the statement view: balance, limit, and the ten
// most recent transactions read against a single snapshot.
type StatementUseCase struct {
	txManager       TransactionManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	metrics         *metrics.Metrics
}

// NewStatementUseCase creates a new StatementUseCase. metrics may be nil.
func NewStatementUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	m *metrics.Metrics,
) *StatementUseCase {
	return &StatementUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		metrics:         m,
	}
}

// Statement returns the account's current balance and limit together with up
// to ten most recent transactions, newest first. Both reads run inside one
// read-only snapshot transaction, so the balance always matches the log it is
// returned with. An account with no transactions is a success with an empty
// list; an unknown account is ErrAccountNotFound.
func (uc *StatementUseCase) Statement(ctx context.Context, accountID int64) (*domain.Statement, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	start := time.Now()

	tx, err := uc.txManager.BeginReadOnly(txCtx)
	if err != nil {
		return nil, coerceStoreError(err)
	}
	defer tx.Rollback(txCtx)

	account, err := uc.accountRepo.GetByID(txCtx, tx, accountID)
	if err != nil {
		return nil, coerceStoreError(err)
	}

	transactions, err := uc.transactionRepo.ListRecent(txCtx, tx, accountID, StatementTransactionLimit)
	if err != nil {
		return nil, coerceStoreError(err)
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, coerceStoreError(err)
	}

	if uc.metrics != nil {
		uc.metrics.StatementReads.Inc()
		uc.metrics.StatementLatency.Observe(time.Since(start).Seconds())
	}

	return &domain.Statement{
		AccountID:    account.ID,
		Balance:      account.Balance,
		Limit:        account.Limit,
		AsOf:         time.Now().UTC(),
		Transactions: transactions,
	}, nil
}
