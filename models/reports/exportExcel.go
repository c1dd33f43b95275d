package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/sabaerp/saba_backend/models"
	"github.com/xuri/excelize/v2"
)

// ExportTrialBalanceExcel renders the trial balance of the window into a
// workbook; the caller owns streaming and closing the file.
func ExportTrialBalanceExcel(ctx context.Context, fiscalYearId int, dateFrom, dateTo time.Time) (*excelize.File, error) {

	rows, err := models.GetTrialBalance(ctx, fiscalYearId, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "TrialBalance"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	// Add headers
	f.SetCellValue(sheetName, "A1", "Code")
	f.SetCellValue(sheetName, "B1", "Title")
	f.SetCellValue(sheetName, "C1", "DebitTotal")
	f.SetCellValue(sheetName, "D1", "CreditTotal")
	f.SetCellValue(sheetName, "E1", "BalanceDebit")
	f.SetCellValue(sheetName, "F1", "BalanceCredit")

	// Add data
	for i, r := range rows {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(i+2), r.Code)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(i+2), r.Title)
		f.SetCellValue(sheetName, "C"+fmt.Sprint(i+2), r.DebitTotal.InexactFloat64())
		f.SetCellValue(sheetName, "D"+fmt.Sprint(i+2), r.CreditTotal.InexactFloat64())
		f.SetCellValue(sheetName, "E"+fmt.Sprint(i+2), r.BalanceDebit.InexactFloat64())
		f.SetCellValue(sheetName, "F"+fmt.Sprint(i+2), r.BalanceCredit.InexactFloat64())
	}
	return f, nil
}
