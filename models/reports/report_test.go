package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/models"
	"github.com/sabaerp/saba_backend/models/reports"
	"github.com/sabaerp/saba_backend/utils"
	"github.com/shopspring/decimal"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func dec(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

// reportFixture posts a 1,000,000 cash sale and a 300,000 salary payment
// into a seeded chart and returns the fiscal year.
func reportFixture(t *testing.T, name string) (context.Context, *models.FiscalYear) {
	t.Helper()
	if err := config.ConnectTestDatabase(name); err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	if err := models.MigrateTable(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	ctx := utils.SetUserIdInContext(context.Background(), 1)

	year, err := models.CreateFiscalYear(ctx, &models.NewFiscalYear{
		Name:      "1403",
		StartDate: date(2024, 1, 1),
		EndDate:   date(2024, 12, 31),
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("create fiscal year: %v", err)
	}
	if _, err := models.SeedChartOfAccounts(ctx, year.ID); err != nil {
		t.Fatalf("seed chart: %v", err)
	}

	byCode := func(code string) int {
		accounts, err := models.GetChartTree(ctx, year.ID)
		if err != nil {
			t.Fatalf("get chart tree: %v", err)
		}
		for _, a := range accounts {
			if a.Code == code {
				return a.ID
			}
		}
		t.Fatalf("account %q not seeded", code)
		return 0
	}
	cash := byCode("1111")
	sales := byCode("6111")
	salaries := byCode("7121")

	post := func(day int, lines []models.NewJournalLine) {
		t.Helper()
		entry, err := models.CreateJournalEntry(ctx, &models.NewJournalEntry{
			VoucherDate: date(2024, 5, day),
			Lines:       lines,
		})
		if err != nil {
			t.Fatalf("create entry: %v", err)
		}
		if _, err := models.PostJournalEntry(ctx, entry.ID); err != nil {
			t.Fatalf("post entry: %v", err)
		}
	}
	post(10, []models.NewJournalLine{
		{AccountId: cash, Debit: dec("1000000")},
		{AccountId: sales, Credit: dec("1000000")},
	})
	post(15, []models.NewJournalLine{
		{AccountId: salaries, Debit: dec("300000")},
		{AccountId: cash, Credit: dec("300000")},
	})
	return ctx, year
}

func TestBalanceSheetReport(t *testing.T) {
	ctx, year := reportFixture(t, "report_balance_sheet")

	report, err := reports.GetBalanceSheetReport(ctx, year.ID, date(2024, 12, 31))
	if err != nil {
		t.Fatalf("balance sheet: %v", err)
	}

	// cash holds what came in minus the salaries paid out
	if !report.Assets.Total.Equal(dec("700000")) {
		t.Fatalf("expected assets total 700000, got %s", report.Assets.Total)
	}
	if len(report.Assets.Rows) != 1 || report.Assets.Rows[0].Code != "1111" {
		t.Fatalf("expected a single 1111 asset row, got %+v", report.Assets.Rows)
	}

	// income and expense accounts stay out of the balance sheet
	for _, section := range []reports.BalanceSheetSection{report.Liabilities, report.Equity} {
		if len(section.Rows) != 0 {
			t.Fatalf("expected empty section, got %+v", section.Rows)
		}
	}

	// a cutoff before the salary entry shows the full sale amount
	early, err := reports.GetBalanceSheetReport(ctx, year.ID, date(2024, 5, 12))
	if err != nil {
		t.Fatalf("early balance sheet: %v", err)
	}
	if !early.Assets.Total.Equal(dec("1000000")) {
		t.Fatalf("expected assets total 1000000 before salaries, got %s", early.Assets.Total)
	}
}

func TestProfitAndLossReport(t *testing.T) {
	ctx, year := reportFixture(t, "report_profit_and_loss")

	report, err := reports.GetProfitAndLossReport(ctx, year.ID, date(2024, 1, 1), date(2024, 12, 31))
	if err != nil {
		t.Fatalf("profit and loss: %v", err)
	}
	if !report.IncomeTotal.Equal(dec("1000000")) {
		t.Fatalf("expected income total 1000000, got %s", report.IncomeTotal)
	}
	if !report.ExpenseTotal.Equal(dec("300000")) {
		t.Fatalf("expected expense total 300000, got %s", report.ExpenseTotal)
	}
	if !report.Net.Equal(dec("700000")) {
		t.Fatalf("expected net 700000, got %s", report.Net)
	}
	if len(report.IncomeRows) != 1 || report.IncomeRows[0].Code != "6111" {
		t.Fatalf("expected single 6111 income row, got %+v", report.IncomeRows)
	}
	if len(report.ExpenseRows) != 1 || report.ExpenseRows[0].Code != "7121" {
		t.Fatalf("expected single 7121 expense row, got %+v", report.ExpenseRows)
	}

	// a window past the entries is empty
	empty, err := reports.GetProfitAndLossReport(ctx, year.ID, date(2024, 6, 1), date(2024, 12, 31))
	if err != nil {
		t.Fatalf("empty window: %v", err)
	}
	if !empty.Net.IsZero() || len(empty.IncomeRows) != 0 {
		t.Fatalf("expected empty report, got net %s", empty.Net)
	}
}

func TestExportTrialBalanceExcel(t *testing.T) {
	ctx, year := reportFixture(t, "report_export_excel")

	file, err := reports.ExportTrialBalanceExcel(ctx, year.ID, date(2024, 1, 1), date(2024, 12, 31))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows("TrialBalance")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	// header plus one row per account with movement
	if len(rows) != 4 {
		t.Fatalf("expected 4 sheet rows, got %d", len(rows))
	}
	if rows[0][0] != "Code" {
		t.Fatalf("expected Code header, got %q", rows[0][0])
	}
	if rows[1][0] != "1111" {
		t.Fatalf("expected first data row 1111, got %q", rows[1][0])
	}
}
