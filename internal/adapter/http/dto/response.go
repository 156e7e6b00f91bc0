package dto

import (
	"time"

	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

// ApplyTransactionResponse is the account state after a committed transaction.
type ApplyTransactionResponse struct {
	Limit   int64 `json:"limit"`
	Balance int64 `json:"balance"`
}

// ApplyResultFromUseCase converts an apply result to a response.
func ApplyResultFromUseCase(res *usecase.ApplyResult) *ApplyTransactionResponse {
	return &ApplyTransactionResponse{
		Limit:   res.Limit,
		Balance: res.Balance,
	}
}

// StatementBalance is the balance section of a statement response.
type StatementBalance struct {
	Total int64     `json:"total"`
	AsOf  time.Time `json:"as_of"`
	Limit int64     `json:"limit"`
}

// StatementTransaction represents one transaction in a statement response.
type StatementTransaction struct {
	Amount      int64     `json:"amount"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// StatementResponse represents a statement in API responses.
type StatementResponse struct {
	Balance            StatementBalance       `json:"balance"`
	RecentTransactions []StatementTransaction `json:"recent_transactions"`
}

// StatementFromDomain converts a domain statement to a response. The
// transaction list is always a JSON array, never null.
func StatementFromDomain(s *domain.Statement) *StatementResponse {
	transactions := make([]StatementTransaction, len(s.Transactions))
	for i, t := range s.Transactions {
		transactions[i] = StatementTransaction{
			Amount:      t.Amount,
			Kind:        string(t.Kind),
			Description: t.Description,
			OccurredAt:  t.OccurredAt,
		}
	}
	return &StatementResponse{
		Balance: StatementBalance{
			Total: s.Balance,
			AsOf:  s.AsOf,
			Limit: s.Limit,
		},
		RecentTransactions: transactions,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
