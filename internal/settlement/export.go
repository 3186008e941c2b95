package settlement

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fkhayef/splitbill/internal/settlement/debts"
	"github.com/fkhayef/splitbill/pkg/money"
)

// Sheet names of the balances workbook
const (
	SheetBalances = "Balances"
	SheetSettleUp = "Settle Up"
)

// XLSXContentType is the media type of the balances workbook
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// ExportFilename names the workbook for groupName on day
func ExportFilename(groupName string, day time.Time) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(groupName, "_"), "_")
	if name == "" {
		name = "group"
	}
	return fmt.Sprintf("%s_balances_%s.xlsx", name, day.Format("2006-01-02"))
}

// BalanceWorkbook renders a balances report as a spreadsheet
func BalanceWorkbook(groupName string, report *debts.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create bold style: %w", err)
	}

	if err := writeBalances(f, groupName, report, header, bold); err != nil {
		return nil, fmt.Errorf("failed to write balances sheet: %w", err)
	}
	if err := writeSettleUp(f, report, header); err != nil {
		return nil, fmt.Errorf("failed to write settle up sheet: %w", err)
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(SheetBalances)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	return f, nil
}

func writeBalances(f *excelize.File, groupName string, report *debts.Report, header, bold int) error {
	if _, err := f.NewSheet(SheetBalances); err != nil {
		return err
	}

	rows := [][]any{{"Member", "Balance", "Status"}}
	for _, b := range report.Balances {
		status := "is owed"
		if b.Balance.IsNegative() {
			status = "owes"
		}
		rows = append(rows, []any{displayName(b.UserID, b.UserName), b.Balance.InexactFloat64(), status})
	}
	if err := setRows(f, SheetBalances, 1, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetBalances, "A1", "C1", header); err != nil {
		return err
	}

	start := len(rows) + 2
	summary := [][]any{
		{"Summary", groupName},
		{"Members with open balances", report.Summary.TotalDebts},
		{"Payments needed", report.Summary.TransactionsNeeded},
		{"Unsettled amount", money.Format(report.Summary.UnsettledAmount)},
	}
	if err := setRows(f, SheetBalances, start, summary); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetBalances, cell(1, start), cell(1, start+len(summary)-1), bold); err != nil {
		return err
	}

	return f.SetColWidth(SheetBalances, "A", "C", 28)
}

func writeSettleUp(f *excelize.File, report *debts.Report, header int) error {
	if _, err := f.NewSheet(SheetSettleUp); err != nil {
		return err
	}

	rows := [][]any{{"From", "To", "Amount", "Payment"}}
	for _, d := range report.OptimizedDebts {
		from, to := displayName(d.From, d.FromName), displayName(d.To, d.ToName)
		rows = append(rows, []any{
			from,
			to,
			d.Amount.InexactFloat64(),
			fmt.Sprintf("%s pays %s %s", from, to, money.Format(d.Amount)),
		})
	}
	if err := setRows(f, SheetSettleUp, 1, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSettleUp, "A1", "D1", header); err != nil {
		return err
	}

	return f.SetColWidth(SheetSettleUp, "A", "D", 24)
}

func setRows(f *excelize.File, sheet string, firstRow int, rows [][]any) error {
	for i, row := range rows {
		for j, v := range row {
			if err := f.SetCellValue(sheet, cell(j+1, firstRow+i), v); err != nil {
				return err
			}
		}
	}
	return nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func displayName(id int64, name string) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("User #%d", id)
}
