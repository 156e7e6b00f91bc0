package integration

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/iho/bankledger/internal/adapter/repository/postgres"
	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
	"github.com/iho/bankledger/tests/testutil"
)

func TestStatement(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	txManager := postgres.NewTxManager(testDB.Pool)
	accountRepo := postgres.NewAccountRepository()
	transactionRepo := postgres.NewTransactionRepository()
	retrier := postgres.NewRetrier(zerolog.Nop())

	ledgerUC := usecase.NewLedgerUseCase(txManager, accountRepo, transactionRepo, retrier, nil)
	statementUC := usecase.NewStatementUseCase(txManager, accountRepo, transactionRepo, nil)

	t.Run("returns the ten most recent transactions newest first", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		testDB.CreateTestAccount(ctx, 1, 1000000, 0)

		// Twelve credits of increasing amount: 100, 200, ..., 1200
		for i := 1; i <= 12; i++ {
			_, err := ledgerUC.Apply(ctx, usecase.ApplyInput{
				AccountID:   1,
				Kind:        domain.KindCredit,
				Amount:      int64(i * 100),
				Description: fmt.Sprintf("t%d", i),
			})
			require.NoError(t, err)
		}

		statement, err := statementUC.Statement(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, int64(7800), statement.Balance)
		require.Equal(t, int64(1000000), statement.Limit)
		require.False(t, statement.AsOf.IsZero())
		require.Len(t, statement.Transactions, 10)

		// Newest first: t12 down to t3; t1 and t2 age out of the window
		for i, tx := range statement.Transactions {
			require.Equal(t, fmt.Sprintf("t%d", 12-i), tx.Description)
			require.Equal(t, int64((12-i)*100), tx.Amount)
		}

		// Insertion order is the tiebreak, so IDs strictly decrease
		for i := 1; i < len(statement.Transactions); i++ {
			require.Greater(t, statement.Transactions[i-1].ID, statement.Transactions[i].ID)
		}
	})

	t.Run("account with no transactions yields an empty list", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		testDB.CreateTestAccount(ctx, 2, 5000, 0)

		statement, err := statementUC.Statement(ctx, 2)
		require.NoError(t, err)
		require.Zero(t, statement.Balance)
		require.Equal(t, int64(5000), statement.Limit)
		require.Empty(t, statement.Transactions)
	})

	t.Run("unknown account", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		_, err := statementUC.Statement(ctx, 999)
		require.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("balance matches the transaction log", func(t *testing.T) {
		testDB.TruncateAll(ctx)
		testDB.CreateTestAccount(ctx, 1, 100000, 0)

		steps := []struct {
			kind   domain.TransactionKind
			amount int64
		}{
			{domain.KindCredit, 5000},
			{domain.KindDebit, 1200},
			{domain.KindDebit, 800},
			{domain.KindCredit, 300},
		}

		var want int64
		for _, step := range steps {
			_, err := ledgerUC.Apply(ctx, usecase.ApplyInput{
				AccountID:   1,
				Kind:        step.kind,
				Amount:      step.amount,
				Description: "mix",
			})
			require.NoError(t, err)
			want += step.kind.Delta(step.amount)
		}

		statement, err := statementUC.Statement(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, want, statement.Balance)
		require.Len(t, statement.Transactions, len(steps))
	})
}
