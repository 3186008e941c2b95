package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/splitbill/internal/settlement"
)

const ledgerJSON = `{
	"expenses": [
		{"payer_id": 1, "amount": "150", "shares": [
			{"user_id": 1, "amount": "50"},
			{"user_id": 2, "amount": "50"},
			{"user_id": 3, "amount": "50"}
		]}
	],
	"settlements": [
		{"from_user_id": 2, "to_user_id": 1, "amount": "50"}
	],
	"names": {"1": "ana", "2": "ben", "3": "cy"}
}`

func writeLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-ledger", writeLedger(t, ledgerJSON), "-pretty"}, &out))

	var got settlement.BalancesResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	require.Len(t, got.Balances, 2)
	assert.Equal(t, "ana", got.Balances[0].UserName)
	require.Len(t, got.OptimizedDebts, 1)
	assert.Equal(t, "cy", got.OptimizedDebts[0].FromName)
	assert.Equal(t, "ana", got.OptimizedDebts[0].ToName)
	assert.Equal(t, "50", got.OptimizedDebts[0].Amount.String())
	assert.Equal(t, 1, got.Summary.TransactionsNeeded)
	assert.Contains(t, out.String(), "\n  \"balances\"")
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer

	assert.EqualError(t, run(nil, &out), "-ledger is required")
	assert.Error(t, run([]string{"-ledger", filepath.Join(t.TempDir(), "missing.json")}, &out))
	assert.ErrorContains(t, run([]string{"-ledger", writeLedger(t, "{")}, &out), "failed to decode ledger")
	assert.Empty(t, out.String())
}
