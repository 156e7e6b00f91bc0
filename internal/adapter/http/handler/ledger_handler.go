package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/bankledger/internal/adapter/http/dto"
	"github.com/iho/bankledger/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	Apply(ctx context.Context, input usecase.ApplyInput) (*usecase.ApplyResult, error)
}

// LedgerHandler handles transaction requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Apply records a credit or debit against an account.
func (h *LedgerHandler) Apply(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", err.Error())
		return
	}

	var req dto.ApplyTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeDomainError(w, r, "invalid transaction", err)
		return
	}

	res, err := h.ledgerUC.Apply(r.Context(), req.ToUseCaseInput(accountID))
	if err != nil {
		writeDomainError(w, r, "failed to apply transaction", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ApplyResultFromUseCase(res))
}
