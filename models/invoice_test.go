package models_test

import (
	"context"
	"testing"

	"github.com/sabaerp/saba_backend/models"
	"github.com/sabaerp/saba_backend/utils"
)

func invoiceFixture(t *testing.T, name string) (context.Context, *models.Person, *models.Product) {
	t.Helper()
	ctx := setupTest(t, name)
	createActiveYear(t, ctx, "1403")
	person := createPerson(t, ctx, "C-001")
	unit := createUnit(t, ctx, "piece")
	product := createProduct(t, ctx, "P-001", unit.ID)
	return ctx, person, product
}

func TestInvoiceNumbering(t *testing.T) {
	ctx, person, _ := invoiceFixture(t, "invoice_numbering")

	first, err := models.CreateInvoice(ctx, &models.NewInvoice{
		InvoiceType: models.InvoiceTypeSales,
		PersonId:    person.ID,
		InvoiceDate: date(2024, 4, 1),
	})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	if first.InvoiceNo != "sales-1" {
		t.Fatalf("expected sales-1, got %s", first.InvoiceNo)
	}

	second, err := models.CreateInvoice(ctx, &models.NewInvoice{
		InvoiceType: models.InvoiceTypeSales,
		PersonId:    person.ID,
		InvoiceDate: date(2024, 4, 2),
	})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.InvoiceNo != "sales-2" {
		t.Fatalf("expected sales-2, got %s", second.InvoiceNo)
	}

	// type-scoped counters: purchase starts at 1
	purchase, err := models.CreateInvoice(ctx, &models.NewInvoice{
		InvoiceType: models.InvoiceTypePurchase,
		PersonId:    person.ID,
		InvoiceDate: date(2024, 4, 3),
	})
	if err != nil {
		t.Fatalf("create purchase: %v", err)
	}
	if purchase.InvoiceNo != "purchase-1" {
		t.Fatalf("expected purchase-1, got %s", purchase.InvoiceNo)
	}

	// preview does not consume
	next, err := models.GetNextInvoiceNumber(ctx, first.FiscalYearId, models.InvoiceTypeSales)
	if err != nil {
		t.Fatalf("next number: %v", err)
	}
	if next != "sales-3" {
		t.Fatalf("expected preview sales-3, got %s", next)
	}
	again, err := models.GetNextInvoiceNumber(ctx, first.FiscalYearId, models.InvoiceTypeSales)
	if err != nil {
		t.Fatalf("next number again: %v", err)
	}
	if again != "sales-3" {
		t.Fatalf("expected preview to stay sales-3, got %s", again)
	}
}

func TestInvoiceManualNumberAdvancesSequence(t *testing.T) {
	ctx, person, _ := invoiceFixture(t, "invoice_manual_number")

	create := func(invoiceNo string) *models.Invoice {
		t.Helper()
		invoice, err := models.CreateInvoice(ctx, &models.NewInvoice{
			InvoiceType: models.InvoiceTypeSales,
			InvoiceNo:   invoiceNo,
			PersonId:    person.ID,
			InvoiceDate: date(2024, 4, 1),
		})
		if err != nil {
			t.Fatalf("create %q: %v", invoiceNo, err)
		}
		return invoice
	}

	if no := create("").InvoiceNo; no != "sales-1" {
		t.Fatalf("expected sales-1, got %s", no)
	}
	// a manual number ahead of the counter must never be re-issued
	create("sales-3")
	if no := create("").InvoiceNo; no != "sales-4" {
		t.Fatalf("expected sales-4 after manual sales-3, got %s", no)
	}
	// a free-form number outside the series leaves the counter alone
	create("INV-77")
	if no := create("").InvoiceNo; no != "sales-5" {
		t.Fatalf("expected sales-5, got %s", no)
	}
}

func TestInvoiceRequiresPerson(t *testing.T) {
	ctx, _, _ := invoiceFixture(t, "invoice_requires_person")

	_, err := models.CreateInvoice(ctx, &models.NewInvoice{
		InvoiceType: models.InvoiceTypeSales,
		InvoiceDate: date(2024, 4, 1),
	})
	assertKind(t, err, utils.FailureValidation)
}

func TestInvoiceConfirmIsOneWay(t *testing.T) {
	ctx, person, product := invoiceFixture(t, "invoice_confirm_one_way")

	invoice, err := models.CreateInvoice(ctx, &models.NewInvoice{
		InvoiceType: models.InvoiceTypeSales,
		PersonId:    person.ID,
		InvoiceDate: date(2024, 4, 1),
		Lines: []models.NewInvoiceLine{
			{ProductId: product.ID, Quantity: dec("2"), UnitPrice: dec("150")},
			{ProductId: product.ID, Quantity: dec("1"), UnitPrice: dec("90")},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	confirmed, err := models.ConfirmInvoice(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != models.InvoiceStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", confirmed.Status)
	}

	_, err = models.ConfirmInvoice(ctx, invoice.ID)
	assertKind(t, err, utils.FailureState)

	_, err = models.UpdateInvoice(ctx, invoice.ID, &models.NewInvoice{
		InvoiceType: models.InvoiceTypeSales,
		PersonId:    person.ID,
		InvoiceDate: date(2024, 4, 5),
	})
	assertKind(t, err, utils.FailureState)

	_, err = models.SaveInvoiceLines(ctx, invoice.ID, []models.NewInvoiceLine{
		{ProductId: product.ID, Quantity: dec("9"), UnitPrice: dec("1")},
	})
	assertKind(t, err, utils.FailureState)

	_, err = models.DeleteInvoice(ctx, invoice.ID)
	assertKind(t, err, utils.FailureState)

	// state unchanged through all the refusals
	reloaded, err := models.GetInvoice(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != models.InvoiceStatusConfirmed || len(reloaded.Lines) != 2 {
		t.Fatalf("invoice mutated by refused operations: status %s, %d lines", reloaded.Status, len(reloaded.Lines))
	}
}

func TestSaveInvoiceLinesSkipsProductlessRows(t *testing.T) {
	ctx, person, product := invoiceFixture(t, "invoice_save_lines")

	invoice, err := models.CreateInvoice(ctx, &models.NewInvoice{
		InvoiceType: models.InvoiceTypeSales,
		PersonId:    person.ID,
		InvoiceDate: date(2024, 4, 1),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	saved, err := models.SaveInvoiceLines(ctx, invoice.ID, []models.NewInvoiceLine{
		{ProductId: product.ID, Quantity: dec("1"), UnitPrice: dec("100")},
		{Quantity: dec("5"), UnitPrice: dec("70")},
		{ProductId: product.ID, Quantity: dec("3"), UnitPrice: dec("40")},
	})
	if err != nil {
		t.Fatalf("save lines: %v", err)
	}
	if len(saved.Lines) != 2 {
		t.Fatalf("expected 2 lines (productless row skipped), got %d", len(saved.Lines))
	}

	// full replacement, not append
	replaced, err := models.SaveInvoiceLines(ctx, invoice.ID, []models.NewInvoiceLine{
		{ProductId: product.ID, Quantity: dec("10"), UnitPrice: dec("5")},
	})
	if err != nil {
		t.Fatalf("replace lines: %v", err)
	}
	if len(replaced.Lines) != 1 {
		t.Fatalf("expected 1 line after replacement, got %d", len(replaced.Lines))
	}
	reloaded, err := models.GetInvoice(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Lines) != 1 {
		t.Fatalf("expected 1 persisted line, got %d", len(reloaded.Lines))
	}
}

func TestInvoiceDeleteDraft(t *testing.T) {
	ctx, person, product := invoiceFixture(t, "invoice_delete_draft")

	invoice, err := models.CreateInvoice(ctx, &models.NewInvoice{
		InvoiceType: models.InvoiceTypeProforma,
		PersonId:    person.ID,
		InvoiceDate: date(2024, 4, 1),
		Lines: []models.NewInvoiceLine{
			{ProductId: product.ID, Quantity: dec("1"), UnitPrice: dec("10")},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := models.DeleteInvoice(ctx, invoice.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := models.GetInvoice(ctx, invoice.ID); err == nil {
		t.Fatal("expected invoice gone")
	}
}
