package models_test

import (
	"testing"

	"github.com/sabaerp/saba_backend/models"
)

// Mirrors the basic bookkeeping flow: a posted cash sale of 1,000,000
// debited to cash (1111) and credited to sales revenue (6111).
func TestLedgerTurnoverAndTrialBalance(t *testing.T) {
	ctx, year, cash, sales := journalFixture(t, "ledger_scenario")

	entry, err := models.CreateJournalEntry(ctx, &models.NewJournalEntry{
		VoucherDate: date(2024, 5, 10),
		Description: "cash sale",
		Lines: []models.NewJournalLine{
			{AccountId: cash.ID, Debit: dec("1000000")},
			{AccountId: sales.ID, Credit: dec("1000000")},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := models.PostJournalEntry(ctx, entry.ID); err != nil {
		t.Fatalf("post: %v", err)
	}

	// a draft entry in the same window must not show up anywhere
	if _, err := models.CreateJournalEntry(ctx, &models.NewJournalEntry{
		VoucherDate: date(2024, 5, 11),
		Lines: []models.NewJournalLine{
			{AccountId: cash.ID, Debit: dec("999")},
			{AccountId: sales.ID, Credit: dec("999")},
		},
	}); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	turnover, err := models.GetAccountTurnover(ctx, cash.ID, year.ID, date(2024, 1, 1), date(2024, 12, 31))
	if err != nil {
		t.Fatalf("turnover: %v", err)
	}
	if len(turnover.Rows) != 1 {
		t.Fatalf("expected 1 posted row, got %d", len(turnover.Rows))
	}
	if !turnover.DebitTotal.Equal(dec("1000000")) {
		t.Fatalf("expected debit total 1000000, got %s", turnover.DebitTotal)
	}
	if !turnover.BalanceDebit.Equal(dec("1000000")) || !turnover.BalanceCredit.IsZero() {
		t.Fatalf("expected debit-side balance, got debit %s credit %s", turnover.BalanceDebit, turnover.BalanceCredit)
	}

	rows, err := models.GetTrialBalance(ctx, year.ID, date(2024, 1, 1), date(2024, 12, 31))
	if err != nil {
		t.Fatalf("trial balance: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 trial balance rows, got %d", len(rows))
	}
	// ordered by code, so cash first
	if rows[0].AccountId != cash.ID || rows[1].AccountId != sales.ID {
		t.Fatalf("unexpected row order: %s, %s", rows[0].Code, rows[1].Code)
	}
	if !rows[1].BalanceCredit.Equal(dec("1000000")) || !rows[1].BalanceDebit.IsZero() {
		t.Fatalf("expected credit-side balance on 6111, got debit %s credit %s", rows[1].BalanceDebit, rows[1].BalanceCredit)
	}
	for _, r := range rows {
		if r.DebitTotal.IsZero() && r.CreditTotal.IsZero() {
			t.Fatalf("trial balance returned an all-zero row for %s", r.Code)
		}
	}
}

func TestLedgerOpeningBalance(t *testing.T) {
	ctx, year, cash, sales := journalFixture(t, "ledger_opening")

	post := func(day int, amount string) {
		t.Helper()
		entry, err := models.CreateJournalEntry(ctx, &models.NewJournalEntry{
			VoucherDate: date(2024, 3, day),
			Lines: []models.NewJournalLine{
				{AccountId: cash.ID, Debit: dec(amount)},
				{AccountId: sales.ID, Credit: dec(amount)},
			},
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := models.PostJournalEntry(ctx, entry.ID); err != nil {
			t.Fatalf("post: %v", err)
		}
	}
	post(1, "100")
	post(10, "200")
	post(20, "400")

	// strictly before the 10th: only the first entry counts
	opening, err := models.GetOpeningBalance(ctx, cash.ID, year.ID, date(2024, 3, 10))
	if err != nil {
		t.Fatalf("opening balance: %v", err)
	}
	if !opening.DebitTotal.Equal(dec("100")) {
		t.Fatalf("expected opening debit 100, got %s", opening.DebitTotal)
	}
	if !opening.BalanceDebit.Equal(dec("100")) || !opening.BalanceCredit.IsZero() {
		t.Fatalf("expected debit-side opening, got debit %s credit %s", opening.BalanceDebit, opening.BalanceCredit)
	}
}
