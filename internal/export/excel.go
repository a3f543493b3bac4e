package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"receiptbook/internal/models"
)

const receiptsSheet = "Receipts"

// ReceiptsExcel renders the full ledger as an .xlsx workbook with one
// sheet and a totals row. Amounts are written as numbers so the
// spreadsheet can keep summing them.
func ReceiptsExcel(w io.Writer, receipts []models.Receipt) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", receiptsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"Receipt No.", "Name", "Date", "Maintenance Period", "Amount"}
	for col, h := range headers {
		if err := setCell(f, col+1, 1, h); err != nil {
			return err
		}
	}

	var total models.Money
	for i, r := range receipts {
		row := i + 2
		period := r.MaintenancePeriod
		if period == "" {
			period = "N/A"
		}
		values := []any{r.ReceiptNumber, r.Name, r.Date, period, amountValue(r.Amount)}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return err
			}
		}
		total.Cents += r.Amount.Cents
	}

	totalsRow := len(receipts) + 2
	if err := setCell(f, 4, totalsRow, "Total"); err != nil {
		return err
	}
	if err := setCell(f, 5, totalsRow, amountValue(total)); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(receiptsSheet, cell, v); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}

func amountValue(m models.Money) float64 {
	return float64(m.Cents) / 100.0
}
