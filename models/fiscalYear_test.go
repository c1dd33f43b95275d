package models_test

import (
	"testing"

	"github.com/sabaerp/saba_backend/models"
	"github.com/sabaerp/saba_backend/utils"
)

func TestFiscalYearActiveIsExclusive(t *testing.T) {
	ctx := setupTest(t, "fiscal_year_exclusive")

	first := createActiveYear(t, ctx, "1403")
	second := createActiveYear(t, ctx, "1404")

	years, err := models.GetFiscalYears(ctx)
	if err != nil {
		t.Fatalf("get fiscal years: %v", err)
	}
	activeCount := 0
	for _, y := range years {
		if y.IsActive != nil && *y.IsActive {
			activeCount++
			if y.ID != second.ID {
				t.Fatalf("expected year %d active, got %d", second.ID, y.ID)
			}
		}
	}
	if activeCount != 1 {
		t.Fatalf("expected exactly 1 active year, got %d", activeCount)
	}

	// reactivating the first flips the flag back, still exactly one
	if _, err := models.UpdateFiscalYear(ctx, first.ID, &models.NewFiscalYear{
		Name:      "1403",
		StartDate: first.StartDate,
		EndDate:   first.EndDate,
		IsActive:  true,
	}); err != nil {
		t.Fatalf("update fiscal year: %v", err)
	}
	active, err := models.GetActiveFiscalYear(ctx)
	if err != nil {
		t.Fatalf("get active year: %v", err)
	}
	if active.ID != first.ID {
		t.Fatalf("expected year %d active, got %d", first.ID, active.ID)
	}
}

func TestFiscalYearValidation(t *testing.T) {
	ctx := setupTest(t, "fiscal_year_validation")

	_, err := models.CreateFiscalYear(ctx, &models.NewFiscalYear{
		Name:      "backwards",
		StartDate: date(2024, 12, 31),
		EndDate:   date(2024, 1, 1),
	})
	assertKind(t, err, utils.FailureValidation)

	createActiveYear(t, ctx, "1403")
	_, err = models.CreateFiscalYear(ctx, &models.NewFiscalYear{
		Name:      "1403",
		StartDate: date(2025, 1, 1),
		EndDate:   date(2025, 12, 31),
	})
	assertKind(t, err, utils.FailureInvariant)
}

func TestFiscalYearDeleteGuard(t *testing.T) {
	ctx := setupTest(t, "fiscal_year_delete_guard")

	year := createActiveYear(t, ctx, "1403")
	seedChart(t, ctx, year.ID)
	cash := accountByCode(t, ctx, year.ID, "1111")
	sales := accountByCode(t, ctx, year.ID, "6111")

	if _, err := models.CreateJournalEntry(ctx, &models.NewJournalEntry{
		VoucherDate: date(2024, 2, 1),
		Lines: []models.NewJournalLine{
			{AccountId: cash.ID, Debit: dec("100")},
			{AccountId: sales.ID, Credit: dec("100")},
		},
	}); err != nil {
		t.Fatalf("create journal entry: %v", err)
	}

	_, err := models.DeleteFiscalYear(ctx, year.ID)
	assertKind(t, err, utils.FailureReference)

	empty := createActiveYear(t, ctx, "1404")
	if _, err := models.DeleteFiscalYear(ctx, empty.ID); err != nil {
		t.Fatalf("delete empty year: %v", err)
	}
}

func TestNoActiveFiscalYear(t *testing.T) {
	ctx := setupTest(t, "no_active_fiscal_year")

	_, err := models.GetActiveFiscalYear(ctx)
	assertKind(t, err, utils.FailureValidation)
}
