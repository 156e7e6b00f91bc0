package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{500, "5.00"},
		{-500, "-5.00"},
		{100000, "1000.00"},
		{-123456789, "-1234567.89"},
	}

	for _, tc := range cases {
		if got := formatCents(tc.cents); got != tc.want {
			t.Errorf("formatCents(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestFetchStatementPrintsBalanceAndTransactions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/clients/1/statement" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"balance": {"total": -500, "as_of": "2026-02-14T12:00:00Z", "limit": 100000},
			"recent_transactions": [
				{"amount": 500, "kind": "debit", "description": "groceries", "occurred_at": "2026-02-14T11:59:00Z"}
			]
		}`))
	}))
	defer srv.Close()

	origURL := baseURL
	baseURL = srv.URL
	defer func() { baseURL = origURL }()

	out := captureOutput(t, func() {
		fetchStatement("1")
	})

	if !strings.Contains(out, "Balance: -5.00 (limit 1000.00)") {
		t.Fatalf("expected formatted balance in output:\n%s", out)
	}
	if !strings.Contains(out, "groceries") {
		t.Fatalf("expected transaction description in output:\n%s", out)
	}
}

func TestApplyCmdRequiresFlags(t *testing.T) {
	cmd := applyCmd()
	cmd.SetArgs([]string{"1"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error when required flags are missing")
	}
}

func TestStatementCmdRequiresAccountID(t *testing.T) {
	cmd := statementCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "arg") {
		t.Fatalf("expected an argument error, got %v", err)
	}
}
