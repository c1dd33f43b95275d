package models_test

import (
	"context"
	"testing"

	"github.com/sabaerp/saba_backend/models"
	"github.com/sabaerp/saba_backend/utils"
)

func journalFixture(t *testing.T, name string) (context.Context, *models.FiscalYear, *models.ChartAccount, *models.ChartAccount) {
	t.Helper()
	ctx := setupTest(t, name)
	year := createActiveYear(t, ctx, "1403")
	seedChart(t, ctx, year.ID)
	cash := accountByCode(t, ctx, year.ID, "1111")
	sales := accountByCode(t, ctx, year.ID, "6111")
	return ctx, year, cash, sales
}

func TestJournalUnbalancedEntryWritesNothing(t *testing.T) {
	ctx, year, cash, sales := journalFixture(t, "journal_unbalanced")

	_, err := models.CreateJournalEntry(ctx, &models.NewJournalEntry{
		VoucherDate: date(2024, 2, 1),
		Lines: []models.NewJournalLine{
			{AccountId: cash.ID, Debit: dec("100")},
			{AccountId: sales.ID, Credit: dec("60")},
		},
	})
	assertKind(t, err, utils.FailureInvariant)

	entries, err := models.GetJournalEntries(ctx, year.ID, nil, nil)
	if err != nil {
		t.Fatalf("get entries: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries after failed create, got %d", len(entries))
	}
}

func TestJournalLineValidation(t *testing.T) {
	ctx, _, cash, sales := journalFixture(t, "journal_line_validation")

	// a line with neither side set
	_, err := models.CreateJournalEntry(ctx, &models.NewJournalEntry{
		VoucherDate: date(2024, 2, 1),
		Lines: []models.NewJournalLine{
			{AccountId: cash.ID},
			{AccountId: sales.ID, Credit: dec("10")},
		},
	})
	assertKind(t, err, utils.FailureValidation)

	// negative amounts
	_, err = models.CreateJournalEntry(ctx, &models.NewJournalEntry{
		VoucherDate: date(2024, 2, 1),
		Lines: []models.NewJournalLine{
			{AccountId: cash.ID, Debit: dec("-5")},
			{AccountId: sales.ID, Credit: dec("-5")},
		},
	})
	assertKind(t, err, utils.FailureValidation)

	// empty line set
	_, err = models.CreateJournalEntry(ctx, &models.NewJournalEntry{
		VoucherDate: date(2024, 2, 1),
		Lines:       []models.NewJournalLine{},
	})
	assertKind(t, err, utils.FailureValidation)

	// unknown account
	_, err = models.CreateJournalEntry(ctx, &models.NewJournalEntry{
		VoucherDate: date(2024, 2, 1),
		Lines: []models.NewJournalLine{
			{AccountId: 99999, Debit: dec("10")},
			{AccountId: sales.ID, Credit: dec("10")},
		},
	})
	assertKind(t, err, utils.FailureValidation)
}

func TestJournalVoucherNumbering(t *testing.T) {
	ctx, _, cash, sales := journalFixture(t, "journal_numbering")

	lines := []models.NewJournalLine{
		{AccountId: cash.ID, Debit: dec("50")},
		{AccountId: sales.ID, Credit: dec("50")},
	}
	first, err := models.CreateJournalEntry(ctx, &models.NewJournalEntry{VoucherDate: date(2024, 2, 1), Lines: lines})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	if first.VoucherNo != 1 {
		t.Fatalf("expected voucher_no 1, got %d", first.VoucherNo)
	}
	second, err := models.CreateJournalEntry(ctx, &models.NewJournalEntry{VoucherDate: date(2024, 2, 2), Lines: lines})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.VoucherNo != 2 {
		t.Fatalf("expected voucher_no 2, got %d", second.VoucherNo)
	}

	// explicit duplicate number is refused
	_, err = models.CreateJournalEntry(ctx, &models.NewJournalEntry{
		VoucherDate: date(2024, 2, 3),
		VoucherNo:   2,
		Lines:       lines,
	})
	assertKind(t, err, utils.FailureInvariant)
}

func TestJournalManualNumberAdvancesSequence(t *testing.T) {
	ctx, _, cash, sales := journalFixture(t, "journal_manual_number")

	lines := []models.NewJournalLine{
		{AccountId: cash.ID, Debit: dec("50")},
		{AccountId: sales.ID, Credit: dec("50")},
	}
	create := func(voucherNo int64) *models.JournalEntry {
		t.Helper()
		entry, err := models.CreateJournalEntry(ctx, &models.NewJournalEntry{
			VoucherDate: date(2024, 2, 1),
			VoucherNo:   voucherNo,
			Lines:       lines,
		})
		if err != nil {
			t.Fatalf("create voucher_no %d: %v", voucherNo, err)
		}
		return entry
	}

	if no := create(0).VoucherNo; no != 1 {
		t.Fatalf("expected voucher_no 1, got %d", no)
	}
	// a manual number ahead of the counter must never be re-issued
	create(3)
	if no := create(0).VoucherNo; no != 4 {
		t.Fatalf("expected voucher_no 4 after manual 3, got %d", no)
	}
	if no := create(0).VoucherNo; no != 5 {
		t.Fatalf("expected voucher_no 5, got %d", no)
	}
}

func TestJournalPostIsOneWay(t *testing.T) {
	ctx, _, cash, sales := journalFixture(t, "journal_post_one_way")

	entry, err := models.CreateJournalEntry(ctx, &models.NewJournalEntry{
		VoucherDate: date(2024, 2, 1),
		Lines: []models.NewJournalLine{
			{AccountId: cash.ID, Debit: dec("75")},
			{AccountId: sales.ID, Credit: dec("75")},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	posted, err := models.PostJournalEntry(ctx, entry.ID)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if posted.Status != models.JournalStatusPosted {
		t.Fatalf("expected posted, got %s", posted.Status)
	}

	_, err = models.PostJournalEntry(ctx, entry.ID)
	assertKind(t, err, utils.FailureState)

	_, err = models.UpdateJournalEntry(ctx, entry.ID, &models.NewJournalEntry{
		VoucherDate: date(2024, 2, 5),
	})
	assertKind(t, err, utils.FailureState)

	_, err = models.DeleteJournalEntry(ctx, entry.ID)
	assertKind(t, err, utils.FailureState)
}

func TestJournalDraftLineReplacement(t *testing.T) {
	ctx, _, cash, sales := journalFixture(t, "journal_line_replacement")

	entry, err := models.CreateJournalEntry(ctx, &models.NewJournalEntry{
		VoucherDate: date(2024, 2, 1),
		Description: "before",
		Lines: []models.NewJournalLine{
			{AccountId: cash.ID, Debit: dec("20")},
			{AccountId: sales.ID, Credit: dec("20")},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// replacement with an unbalanced set must leave the old lines intact
	_, err = models.UpdateJournalEntry(ctx, entry.ID, &models.NewJournalEntry{
		VoucherDate: entry.VoucherDate,
		Lines: []models.NewJournalLine{
			{AccountId: cash.ID, Debit: dec("500")},
			{AccountId: sales.ID, Credit: dec("1")},
		},
	})
	assertKind(t, err, utils.FailureInvariant)

	kept, err := models.GetJournalEntry(ctx, entry.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(kept.Lines) != 2 || !kept.Lines[0].Debit.Equal(dec("20")) {
		t.Fatalf("expected original lines intact, got %+v", kept.Lines)
	}

	updated, err := models.UpdateJournalEntry(ctx, entry.ID, &models.NewJournalEntry{
		VoucherDate: entry.VoucherDate,
		Description: "after",
		Lines: []models.NewJournalLine{
			{AccountId: cash.ID, Debit: dec("30")},
			{AccountId: cash.ID, Debit: dec("10")},
			{AccountId: sales.ID, Credit: dec("40")},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Lines) != 3 {
		t.Fatalf("expected 3 lines after replacement, got %d", len(updated.Lines))
	}

	reloaded, err := models.GetJournalEntry(ctx, entry.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Lines) != 3 {
		t.Fatalf("expected 3 persisted lines, got %d", len(reloaded.Lines))
	}
}

func TestJournalDeleteDraftCascades(t *testing.T) {
	ctx, year, cash, sales := journalFixture(t, "journal_delete_draft")

	entry, err := models.CreateJournalEntry(ctx, &models.NewJournalEntry{
		VoucherDate: date(2024, 2, 1),
		Lines: []models.NewJournalLine{
			{AccountId: cash.ID, Debit: dec("15")},
			{AccountId: sales.ID, Credit: dec("15")},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := models.DeleteJournalEntry(ctx, entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	entries, err := models.GetJournalEntries(ctx, year.ID, nil, nil)
	if err != nil {
		t.Fatalf("get entries: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}
