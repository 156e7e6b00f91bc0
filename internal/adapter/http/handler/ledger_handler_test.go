package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/iho/bankledger/internal/adapter/http/dto"
	"github.com/iho/bankledger/internal/domain"
	"github.com/iho/bankledger/internal/usecase"
)

type ledgerServiceStub struct {
	applyFn func(ctx context.Context, input usecase.ApplyInput) (*usecase.ApplyResult, error)
}

func (s *ledgerServiceStub) Apply(ctx context.Context, input usecase.ApplyInput) (*usecase.ApplyResult, error) {
	return s.applyFn(ctx, input)
}

func newApplyRequest(t *testing.T, accountID string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if raw, ok := body.(string); ok {
		buf.WriteString(raw)
	} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("failed to encode body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/clients/"+accountID+"/transactions", &buf)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", accountID)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestLedgerHandler_Apply_Success(t *testing.T) {
	var captured usecase.ApplyInput
	handler := NewLedgerHandler(&ledgerServiceStub{
		applyFn: func(ctx context.Context, input usecase.ApplyInput) (*usecase.ApplyResult, error) {
			captured = input
			return &usecase.ApplyResult{Limit: 100000, Balance: -500}, nil
		},
	})

	req := newApplyRequest(t, "1", dto.ApplyTransactionRequest{
		Amount:      500,
		Kind:        "debit",
		Description: "groceries",
	})
	rec := httptest.NewRecorder()

	handler.Apply(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.AccountID != 1 || captured.Kind != domain.KindDebit || captured.Amount != 500 {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.ApplyTransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Limit != 100000 || resp.Balance != -500 {
		t.Fatalf("expected limit 100000 balance -500, got %+v", resp)
	}
}

func TestLedgerHandler_Apply_InvalidJSON(t *testing.T) {
	handler := NewLedgerHandler(&ledgerServiceStub{
		applyFn: func(ctx context.Context, input usecase.ApplyInput) (*usecase.ApplyResult, error) {
			t.Fatal("Apply should not be called for invalid payload")
			return nil, nil
		},
	})

	req := newApplyRequest(t, "1", "{invalid json")
	rec := httptest.NewRecorder()

	handler.Apply(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLedgerHandler_Apply_NonNumericAccountID(t *testing.T) {
	handler := NewLedgerHandler(&ledgerServiceStub{
		applyFn: func(ctx context.Context, input usecase.ApplyInput) (*usecase.ApplyResult, error) {
			t.Fatal("Apply should not be called for a bad account ID")
			return nil, nil
		},
	})

	req := newApplyRequest(t, "abc", dto.ApplyTransactionRequest{Amount: 100, Kind: "credit", Description: "x"})
	rec := httptest.NewRecorder()

	handler.Apply(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLedgerHandler_Apply_ValidationRejectsBeforeService(t *testing.T) {
	cases := []struct {
		name string
		body dto.ApplyTransactionRequest
	}{
		{"zero amount", dto.ApplyTransactionRequest{Amount: 0, Kind: "credit", Description: "x"}},
		{"negative amount", dto.ApplyTransactionRequest{Amount: -10, Kind: "debit", Description: "x"}},
		{"unknown kind", dto.ApplyTransactionRequest{Amount: 10, Kind: "transfer", Description: "x"}},
		{"short kind alias", dto.ApplyTransactionRequest{Amount: 10, Kind: "c", Description: "x"}},
		{"empty description", dto.ApplyTransactionRequest{Amount: 10, Kind: "credit", Description: ""}},
		{"long description", dto.ApplyTransactionRequest{Amount: 10, Kind: "credit", Description: "this is too long"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewLedgerHandler(&ledgerServiceStub{
				applyFn: func(ctx context.Context, input usecase.ApplyInput) (*usecase.ApplyResult, error) {
					t.Fatal("Apply should not be called for invalid input")
					return nil, nil
				},
			})

			req := newApplyRequest(t, "1", tc.body)
			rec := httptest.NewRecorder()

			handler.Apply(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestLedgerHandler_Apply_StoreErrorDetailStaysInternal(t *testing.T) {
	wrapped := fmt.Errorf("%w: connect to postgres://ledger:secret@db:5432 refused", domain.ErrStoreUnavailable)
	handler := NewLedgerHandler(&ledgerServiceStub{
		applyFn: func(ctx context.Context, input usecase.ApplyInput) (*usecase.ApplyResult, error) {
			return nil, wrapped
		},
	})

	req := newApplyRequest(t, "1", dto.ApplyTransactionRequest{Amount: 100, Kind: "credit", Description: "pay"})
	rec := httptest.NewRecorder()

	handler.Apply(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	body := rec.Body.String()
	if strings.Contains(body, "postgres://") || strings.Contains(body, "secret") {
		t.Fatalf("expected store detail to stay out of the response, got %s", body)
	}
	if !strings.Contains(body, domain.ErrStoreUnavailable.Error()) {
		t.Fatalf("expected fixed store-unavailable text, got %s", body)
	}
}

func TestLedgerHandler_Apply_DomainErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"insufficient balance", domain.ErrInsufficientBalance, http.StatusUnprocessableEntity},
		{"store unavailable", domain.ErrStoreUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewLedgerHandler(&ledgerServiceStub{
				applyFn: func(ctx context.Context, input usecase.ApplyInput) (*usecase.ApplyResult, error) {
					return nil, tc.err
				},
			})

			req := newApplyRequest(t, "1", dto.ApplyTransactionRequest{Amount: 600, Kind: "debit", Description: "rent"})
			rec := httptest.NewRecorder()

			handler.Apply(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}
