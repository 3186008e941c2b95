package debts

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitbill/pkg/money"
)

type party struct {
	userID    int64
	name      string
	remaining decimal.Decimal
}

// OptimizeDebts matches debtors to creditors greedily, largest first.
//
// Creditors and debtors are each sorted by magnitude, descending, with ties
// kept in input order. Two cursors walk the lists; every step pays the
// smaller of the two remaining amounts and advances whichever side dropped
// below one cent. The number of payments is at most creditors+debtors-1.
// If the balances do not add up to zero, the unmatched tail is left as is.
func OptimizeDebts(balances []Balance) []OptimizedDebt {
	var creditors, debtors []*party
	for _, b := range balances {
		switch {
		case b.Balance.GreaterThan(money.Tolerance):
			creditors = append(creditors, &party{userID: b.UserID, name: b.UserName, remaining: b.Balance})
		case b.Balance.LessThan(money.Tolerance.Neg()):
			debtors = append(debtors, &party{userID: b.UserID, name: b.UserName, remaining: b.Balance.Neg()})
		}
	}

	byRemainingDesc := func(ps []*party) func(i, j int) bool {
		return func(i, j int) bool { return ps[i].remaining.GreaterThan(ps[j].remaining) }
	}
	sort.SliceStable(creditors, byRemainingDesc(creditors))
	sort.SliceStable(debtors, byRemainingDesc(debtors))

	out := make([]OptimizedDebt, 0)
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		creditor, debtor := creditors[i], debtors[j]

		amount := money.Round(decimal.Min(creditor.remaining, debtor.remaining))
		out = append(out, OptimizedDebt{
			From:     debtor.userID,
			FromName: debtor.name,
			To:       creditor.userID,
			ToName:   creditor.name,
			Amount:   amount,
		})

		creditor.remaining = creditor.remaining.Sub(amount)
		debtor.remaining = debtor.remaining.Sub(amount)

		if creditor.remaining.LessThan(money.Cent) {
			i++
		}
		if debtor.remaining.LessThan(money.Cent) {
			j++
		}
	}

	return out
}

// Summarize computes the summary for balances and the debts derived from them
func Summarize(balances []Balance, debts []OptimizedDebt) Summary {
	unsettled := decimal.Zero
	for _, b := range balances {
		unsettled = unsettled.Add(b.Balance.Abs())
	}

	return Summary{
		TotalDebts:         len(balances),
		TotalSettled:       len(debts),
		UnsettledAmount:    money.Round(unsettled),
		TransactionsNeeded: len(debts),
	}
}

// GetOptimizedDebts runs the whole pipeline over a ledger
func GetOptimizedDebts(ledger Ledger) Report {
	balances := ComputeBalances(ledger)
	optimized := OptimizeDebts(balances)

	imbalance := decimal.Zero
	for _, b := range balances {
		imbalance = imbalance.Add(b.Balance)
	}

	return Report{
		Balances:       balances,
		OptimizedDebts: optimized,
		Summary:        Summarize(balances, optimized),
		Imbalance:      money.Round(imbalance),
	}
}

// GetBalanceSummary returns only the summary numbers for a ledger
func GetBalanceSummary(ledger Ledger) Summary {
	return GetOptimizedDebts(ledger).Summary
}
