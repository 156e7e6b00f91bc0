package dto

import (
	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

// ApplyTransactionRequest represents a request to apply a transaction to an
// account.
type ApplyTransactionRequest struct {
	Amount      int64  `json:"amount"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// Validate checks field shapes before the use case sees the request.
func (r *ApplyTransactionRequest) Validate() error {
	return domain.ValidateTransactionInput(domain.TransactionKind(r.Kind), r.Amount, r.Description)
}

// ToUseCaseInput converts to use case input.
func (r *ApplyTransactionRequest) ToUseCaseInput(accountID int64) usecase.ApplyInput {
	return usecase.ApplyInput{
		AccountID:   accountID,
		Kind:        domain.TransactionKind(r.Kind),
		Amount:      r.Amount,
		Description: r.Description,
	}
}
