package debts

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/pkg/money"
)

// ComputeBalances nets every expense and settlement into one balance per user.
//
// The payer of an expense is credited the full amount and every share is
// debited from its user, the payer included. A settlement credits the payer
// and debits the receiver. Users keep the order in which they first appear;
// balances within a cent of zero are dropped.
func ComputeBalances(ledger Ledger) []Balance {
	totals := make(map[int64]decimal.Decimal)
	var order []int64

	add := func(userID int64, delta decimal.Decimal) {
		cur, ok := totals[userID]
		if !ok {
			order = append(order, userID)
		}
		totals[userID] = cur.Add(delta)
	}

	for _, e := range ledger.Expenses {
		add(e.PayerID, e.Amount)
		for _, s := range e.Shares {
			add(s.UserID, s.Amount.Neg())
		}
	}

	// A debtor paying a creditor moves both toward zero; balances still sum to zero.
	for _, s := range ledger.Settlements {
		add(s.FromUserID, s.Amount)
		add(s.ToUserID, s.Amount.Neg())
	}

	balances := make([]Balance, 0, len(order))
	for _, id := range order {
		b := money.Round(totals[id])
		if money.IsZero(b) {
			continue
		}
		balances = append(balances, Balance{
			UserID:   id,
			UserName: ledger.Name(id),
			Balance:  b,
		})
	}

	return balances
}
