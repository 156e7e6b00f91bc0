package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bankledger-cli",
		Short: "BankLedger CLI tool",
		Long:  `A command line interface for interacting with the BankLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the BankLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(applyCmd(), statementCmd(), healthCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func applyCmd() *cobra.Command {
	var (
		amount      int64
		kind        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "apply [account-id]",
		Short: "Apply a credit or debit to an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			applyTransaction(args[0], amount, kind, description)
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "Amount in cents (positive)")
	cmd.Flags().StringVar(&kind, "kind", "", "Transaction kind: credit or debit")
	cmd.Flags().StringVar(&description, "description", "", "Short description (1-10 chars)")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("kind")
	cmd.MarkFlagRequired("description")

	return cmd
}

func statementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "statement [account-id]",
		Short: "Fetch an account statement",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fetchStatement(args[0])
		},
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check service readiness",
		Run: func(cmd *cobra.Command, args []string) {
			checkHealth()
		},
	}
}

func applyTransaction(accountID string, amount int64, kind, description string) {
	payload, _ := json.Marshal(map[string]any{
		"amount":      amount,
		"kind":        kind,
		"description": description,
	})

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(
		baseURL+"/clients/"+accountID+"/transactions",
		"application/json",
		bytes.NewReader(payload),
	)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Transaction REJECTED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result struct {
		Limit   int64 `json:"limit"`
		Balance int64 `json:"balance"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Transaction applied\n")
	fmt.Printf("Balance: %s\n", formatCents(result.Balance))
	fmt.Printf("Limit:   %s\n", formatCents(result.Limit))
}

func fetchStatement(accountID string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/clients/" + accountID + "/statement")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Statement request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result struct {
		Balance struct {
			Total int64     `json:"total"`
			AsOf  time.Time `json:"as_of"`
			Limit int64     `json:"limit"`
		} `json:"balance"`
		RecentTransactions []struct {
			Amount      int64     `json:"amount"`
			Kind        string    `json:"kind"`
			Description string    `json:"description"`
			OccurredAt  time.Time `json:"occurred_at"`
		} `json:"recent_transactions"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Statement as of %s\n", result.Balance.AsOf.Format(time.RFC3339))
	fmt.Printf("Balance: %s (limit %s)\n", formatCents(result.Balance.Total), formatCents(result.Balance.Limit))
	fmt.Printf("Recent transactions:\n")
	for _, tx := range result.RecentTransactions {
		fmt.Printf("  %s  %-6s %10s  %s\n",
			tx.OccurredAt.Format(time.RFC3339), tx.Kind, formatCents(tx.Amount), tx.Description)
	}
	if len(result.RecentTransactions) == 0 {
		fmt.Printf("  (none)\n")
	}
}

func checkHealth() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/ready")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Service NOT READY (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Printf("Service ready\n%s\n", string(body))
}

// formatCents renders an amount in cents as units with two decimal places.
func formatCents(cents int64) string {
	return decimal.NewFromInt(cents).Shift(-2).StringFixed(2)
}
