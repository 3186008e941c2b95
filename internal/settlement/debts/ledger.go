// Package debts derives group balances from the expense and settlement
// history and reduces them to a short list of suggested payments.
//
// Nothing here is stored: every call recomputes from the full ledger it is
// given, so balances cannot drift from the records they come from.
package debts

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/pkg/money"
)

// Share is the amount one user owes for an expense
type Share struct {
	UserID int64           `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
}

// Expense is a paid expense together with its stored shares
type Expense struct {
	PayerID int64           `json:"payer_id"`
	Amount  decimal.Decimal `json:"amount"`
	Shares  []Share         `json:"shares"`
}

// Settlement records that FromUserID paid ToUserID directly
type Settlement struct {
	FromUserID int64           `json:"from_user_id"`
	ToUserID   int64           `json:"to_user_id"`
	Amount     decimal.Decimal `json:"amount"`
}

// Ledger is the full history of a group
type Ledger struct {
	Expenses    []Expense        `json:"expenses"`
	Settlements []Settlement     `json:"settlements"`
	Names       map[int64]string `json:"names,omitempty"`
}

// Name returns the display name of id, or an empty string
func (l Ledger) Name(id int64) string {
	if l.Names == nil {
		return ""
	}
	return l.Names[id]
}

// Balance is a user's net position. Positive means the group owes them.
type Balance struct {
	UserID   int64           `json:"user_id"`
	UserName string          `json:"user_name"`
	Balance  decimal.Decimal `json:"balance"`
}

// OptimizedDebt is a suggested payment from a debtor to a creditor
type OptimizedDebt struct {
	From     int64           `json:"from"`
	FromName string          `json:"from_name"`
	To       int64           `json:"to"`
	ToName   string          `json:"to_name"`
	Amount   decimal.Decimal `json:"amount"`
}

// Summary holds the headline numbers shown next to the balances
type Summary struct {
	TotalDebts         int             `json:"total_debts"`
	TotalSettled       int             `json:"total_settled"`
	UnsettledAmount    decimal.Decimal `json:"unsettled_amount"`
	TransactionsNeeded int             `json:"transactions_needed"`
}

// Report is everything the balances view needs
type Report struct {
	Balances       []Balance       `json:"balances"`
	OptimizedDebts []OptimizedDebt `json:"optimized_debts"`
	Summary        Summary         `json:"summary"`

	// Imbalance is the sum of all balances. It is zero for a consistent ledger.
	Imbalance decimal.Decimal `json:"imbalance"`
}

// Balanced reports whether the ledger behind r adds up to zero within a cent
func (r *Report) Balanced() bool {
	return money.IsZero(r.Imbalance)
}
