package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/bankledger/internal/adapter/http/dto"
	"github.com/iho/bankledger/internal/domain"
)

type statementServiceStub struct {
	statementFn func(ctx context.Context, accountID int64) (*domain.Statement, error)
}

func (s *statementServiceStub) Statement(ctx context.Context, accountID int64) (*domain.Statement, error) {
	return s.statementFn(ctx, accountID)
}

func newStatementRequest(accountID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/clients/"+accountID+"/statement", nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", accountID)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestStatementHandler_Get_Success(t *testing.T) {
	asOf := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	handler := NewStatementHandler(&statementServiceStub{
		statementFn: func(ctx context.Context, accountID int64) (*domain.Statement, error) {
			if accountID != 1 {
				t.Fatalf("expected account ID 1, got %d", accountID)
			}
			return &domain.Statement{
				AccountID: 1,
				Balance:   -500,
				Limit:     100000,
				AsOf:      asOf,
				Transactions: []*domain.Transaction{
					{ID: 2, AccountID: 1, Amount: 500, Kind: domain.KindDebit, Description: "groceries", OccurredAt: asOf},
					{ID: 1, AccountID: 1, Amount: 100, Kind: domain.KindCredit, Description: "refund", OccurredAt: asOf.Add(-time.Minute)},
				},
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	handler.Get(rec, newStatementRequest("1"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.StatementResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Balance.Total != -500 || resp.Balance.Limit != 100000 {
		t.Fatalf("expected balance -500 limit 100000, got %+v", resp.Balance)
	}
	if len(resp.RecentTransactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(resp.RecentTransactions))
	}
	if resp.RecentTransactions[0].Description != "groceries" {
		t.Fatalf("expected newest transaction first, got %+v", resp.RecentTransactions[0])
	}
}

func TestStatementHandler_Get_EmptyLogSerializesAsArray(t *testing.T) {
	handler := NewStatementHandler(&statementServiceStub{
		statementFn: func(ctx context.Context, accountID int64) (*domain.Statement, error) {
			return &domain.Statement{AccountID: accountID, Balance: 0, Limit: 1000, AsOf: time.Now().UTC()}, nil
		},
	})

	rec := httptest.NewRecorder()
	handler.Get(rec, newStatementRequest("3"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if string(raw["recent_transactions"]) != "[]" {
		t.Fatalf("expected empty array, got %s", raw["recent_transactions"])
	}
}

func TestStatementHandler_Get_AccountNotFound(t *testing.T) {
	handler := NewStatementHandler(&statementServiceStub{
		statementFn: func(ctx context.Context, accountID int64) (*domain.Statement, error) {
			return nil, domain.ErrAccountNotFound
		},
	})

	rec := httptest.NewRecorder()
	handler.Get(rec, newStatementRequest("999"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestStatementHandler_Get_NonNumericAccountID(t *testing.T) {
	handler := NewStatementHandler(&statementServiceStub{
		statementFn: func(ctx context.Context, accountID int64) (*domain.Statement, error) {
			t.Fatal("Statement should not be called for a bad account ID")
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	handler.Get(rec, newStatementRequest("abc"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
