package handler

import (
	"context"
	"net/http"

	"github.com/iho/bankledger/internal/adapter/http/dto"
	"github.com/iho/bankledger/internal/domain"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	Statement(ctx context.Context, accountID int64) (*domain.Statement, error)
}

// StatementHandler handles statement requests.
type StatementHandler struct {
	statementUC StatementService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService) *StatementHandler {
	return &StatementHandler{statementUC: statementUC}
}

// Get returns an account's balance and its most recent transactions.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", err.Error())
		return
	}

	statement, err := h.statementUC.Statement(r.Context(), accountID)
	if err != nil {
		writeDomainError(w, r, "failed to get statement", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromDomain(statement))
}
