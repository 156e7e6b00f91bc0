package postgres

import (
	"context"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/infrastructure/postgres/generated"
	"github.com/iho/bankledger/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository over the
// append-only transactions table. Rows are never updated or deleted; the
// bigserial id carries insertion order.
type TransactionRepository struct{}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Create appends a transaction within the given database transaction and
// fills in the store-assigned id.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, transaction *domain.Transaction) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	row, err := queries.CreateTransaction(ctx, generated.CreateTransactionParams{
		AccountID:   transaction.AccountID,
		Amount:      transaction.Amount,
		Kind:        string(transaction.Kind),
		Description: transaction.Description,
		OccurredAt:  timeToPgTimestamptz(transaction.OccurredAt),
	})
	if err != nil {
		return err
	}

	transaction.ID = row.ID

	return nil
}

// ListRecent returns up to limit transactions for the account, newest first.
func (r *TransactionRepository) ListRecent(ctx context.Context, tx usecase.Transaction, accountID int64, limit int) ([]*domain.Transaction, error) {
	queries := generated.New(tx.(*Tx).PgxTx())

	rows, err := queries.ListRecentTransactions(ctx, generated.ListRecentTransactionsParams{
		AccountID: accountID,
		Limit:     int32(limit),
	})
	if err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, rowToTransaction(row))
	}

	return transactions, nil
}

func rowToTransaction(row generated.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:          row.ID,
		AccountID:   row.AccountID,
		Amount:      row.Amount,
		Kind:        domain.TransactionKind(row.Kind),
		Description: row.Description,
		OccurredAt:  row.OccurredAt.Time,
	}
}
