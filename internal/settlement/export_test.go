package settlement_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fkhayef/splitbill/internal/settlement"
	"github.com/fkhayef/splitbill/internal/settlement/debts"
)

func sampleReport() *debts.Report {
	report := debts.GetOptimizedDebts(debts.Ledger{
		Expenses: []debts.Expense{{
			PayerID: 1,
			Amount:  dec("150"),
			Shares: []debts.Share{
				{UserID: 1, Amount: dec("50")},
				{UserID: 2, Amount: dec("50")},
				{UserID: 3, Amount: dec("50")},
			},
		}},
		Names: map[int64]string{1: "ana", 2: "ben"},
	})
	return &report
}

func TestBalanceWorkbook(t *testing.T) {
	f, err := settlement.BalanceWorkbook("Trip", sampleReport())
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = f.WriteTo(&buf)
	require.NoError(t, err)

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{settlement.SheetBalances, settlement.SheetSettleUp}, book.GetSheetList())

	balances, err := book.GetRows(settlement.SheetBalances, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(balances), 4)
	assert.Equal(t, []string{"Member", "Balance", "Status"}, balances[0])
	assert.Equal(t, []string{"ana", "100", "is owed"}, balances[1])
	assert.Equal(t, []string{"ben", "-50", "owes"}, balances[2])
	assert.Equal(t, []string{"User #3", "-50", "owes"}, balances[3])

	unsettled, err := book.GetCellValue(settlement.SheetBalances, "B9")
	require.NoError(t, err)
	assert.Equal(t, "$200.00", unsettled)

	settleUp, err := book.GetRows(settlement.SheetSettleUp, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, settleUp, 3)
	assert.Equal(t, []string{"ben", "ana", "50", "ben pays ana $50.00"}, settleUp[1])
	assert.Equal(t, "User #3", settleUp[2][0])
}

func TestExportFilename(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Ski_trip_2025_balances_2025-06-01.xlsx", settlement.ExportFilename("Ski trip 2025!", day))
	assert.Equal(t, "group_balances_2025-06-01.xlsx", settlement.ExportFilename("???", day))
}
