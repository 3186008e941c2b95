package settlement

import (
	"github.com/fkhayef/splitbill/internal/expense"
	"github.com/fkhayef/splitbill/internal/settlement/debts"
)

// buildLedger converts stored records into the optimizer's input. Display
// names come from the joined user columns of the same records.
func buildLedger(expenses []*expense.ExpenseWithShares, settlements []*Settlement) debts.Ledger {
	ledger := debts.Ledger{
		Expenses:    make([]debts.Expense, 0, len(expenses)),
		Settlements: make([]debts.Settlement, 0, len(settlements)),
		Names:       make(map[int64]string),
	}

	name := func(id int64, n string) {
		if n != "" {
			ledger.Names[id] = n
		}
	}

	for _, e := range expenses {
		entry := debts.Expense{
			PayerID: e.Expense.PayerID,
			Amount:  e.Expense.Amount,
			Shares:  make([]debts.Share, len(e.Shares)),
		}
		name(e.Expense.PayerID, e.Expense.PayerName)
		for i, s := range e.Shares {
			entry.Shares[i] = debts.Share{UserID: s.UserID, Amount: s.Amount}
			name(s.UserID, s.UserName)
		}
		ledger.Expenses = append(ledger.Expenses, entry)
	}

	for _, s := range settlements {
		ledger.Settlements = append(ledger.Settlements, debts.Settlement{
			FromUserID: s.FromUserID,
			ToUserID:   s.ToUserID,
			Amount:     s.Amount,
		})
		name(s.FromUserID, s.FromName)
		name(s.ToUserID, s.ToName)
	}

	return ledger
}
