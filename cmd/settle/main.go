// Command settle prints who owes whom for a ledger stored as JSON.
//
// Usage:
//
//	settle -ledger ledger.json [-pretty]
//
// The output has the same shape as GET /api/v1/groups/{id}/balances.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/fkhayef/splitbill/internal/config"
	"github.com/fkhayef/splitbill/internal/settlement"
	"github.com/fkhayef/splitbill/internal/settlement/debts"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("settle failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("settle", flag.ContinueOnError)
	ledgerPath := fs.String("ledger", "", "path to the ledger JSON file")
	pretty := fs.Bool("pretty", false, "indent the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *ledgerPath == "" {
		return errors.New("-ledger is required")
	}

	ledger, err := readLedger(*ledgerPath)
	if err != nil {
		return err
	}

	report := debts.GetOptimizedDebts(ledger)
	if !report.Balanced() {
		slog.Warn("ledger does not balance", "imbalance", report.Imbalance.String())
	}

	enc := json.NewEncoder(stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(settlement.NewBalancesResponse(&report))
}

func readLedger(path string) (debts.Ledger, error) {
	var ledger debts.Ledger

	f, err := os.Open(path)
	if err != nil {
		return ledger, fmt.Errorf("failed to open ledger: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&ledger); err != nil {
		return ledger, fmt.Errorf("failed to decode ledger: %w", err)
	}

	return ledger, nil
}
