package models_test

import (
	"testing"

	"github.com/sabaerp/saba_backend/models"
	"github.com/sabaerp/saba_backend/utils"
)

func TestVoucherValidation(t *testing.T) {
	ctx := setupTest(t, "voucher_validation")
	createActiveYear(t, ctx, "1403")
	bank := createCashAccount(t, ctx, "Main Bank")
	person := createPerson(t, ctx, "C-001")

	// receipt without a counterparty
	_, err := models.CreateReceiptVoucher(ctx, &models.NewReceiptVoucher{
		VoucherDate:   date(2024, 6, 1),
		Type:          models.VoucherTypeReceipt,
		CashAccountId: bank.ID,
		Amount:        dec("100"),
	})
	assertKind(t, err, utils.FailureValidation)

	// transfer into the same account
	_, err = models.CreateReceiptVoucher(ctx, &models.NewReceiptVoucher{
		VoucherDate:             date(2024, 6, 1),
		Type:                    models.VoucherTypeTransfer,
		CashAccountId:           bank.ID,
		TransferToCashAccountId: bank.ID,
		Amount:                  dec("100"),
	})
	assertKind(t, err, utils.FailureValidation)

	// transfer without a destination
	_, err = models.CreateReceiptVoucher(ctx, &models.NewReceiptVoucher{
		VoucherDate:   date(2024, 6, 1),
		Type:          models.VoucherTypeTransfer,
		CashAccountId: bank.ID,
		Amount:        dec("100"),
	})
	assertKind(t, err, utils.FailureValidation)

	// non-positive amount
	_, err = models.CreateReceiptVoucher(ctx, &models.NewReceiptVoucher{
		VoucherDate:   date(2024, 6, 1),
		Type:          models.VoucherTypeReceipt,
		CashAccountId: bank.ID,
		PersonId:      person.ID,
		Amount:        dec("0"),
	})
	assertKind(t, err, utils.FailureValidation)
}

func TestVoucherNumberingAndTransfer(t *testing.T) {
	ctx := setupTest(t, "voucher_numbering")
	createActiveYear(t, ctx, "1403")
	bank := createCashAccount(t, ctx, "Main Bank")
	drawer := createCashAccount(t, ctx, "Cash Drawer")
	person := createPerson(t, ctx, "C-001")

	receipt, err := models.CreateReceiptVoucher(ctx, &models.NewReceiptVoucher{
		VoucherDate:   date(2024, 6, 1),
		Type:          models.VoucherTypeReceipt,
		CashAccountId: bank.ID,
		PersonId:      person.ID,
		Amount:        dec("500"),
		BankFee:       dec("5"),
	})
	if err != nil {
		t.Fatalf("create receipt: %v", err)
	}
	if receipt.VoucherNo != 1 {
		t.Fatalf("expected voucher_no 1, got %d", receipt.VoucherNo)
	}

	transfer, err := models.CreateReceiptVoucher(ctx, &models.NewReceiptVoucher{
		VoucherDate:             date(2024, 6, 2),
		Type:                    models.VoucherTypeTransfer,
		CashAccountId:           bank.ID,
		TransferToCashAccountId: drawer.ID,
		Amount:                  dec("200"),
	})
	if err != nil {
		t.Fatalf("create transfer: %v", err)
	}
	if transfer.VoucherNo != 2 {
		t.Fatalf("expected voucher_no 2, got %d", transfer.VoucherNo)
	}
}

func TestVoucherManualNumberAdvancesSequence(t *testing.T) {
	ctx := setupTest(t, "voucher_manual_number")
	createActiveYear(t, ctx, "1403")
	bank := createCashAccount(t, ctx, "Main Bank")
	person := createPerson(t, ctx, "C-001")

	create := func(voucherNo int64) *models.ReceiptVoucher {
		t.Helper()
		voucher, err := models.CreateReceiptVoucher(ctx, &models.NewReceiptVoucher{
			VoucherDate:   date(2024, 6, 1),
			Type:          models.VoucherTypeReceipt,
			VoucherNo:     voucherNo,
			CashAccountId: bank.ID,
			PersonId:      person.ID,
			Amount:        dec("100"),
		})
		if err != nil {
			t.Fatalf("create voucher_no %d: %v", voucherNo, err)
		}
		return voucher
	}

	// a manual number before any automatic one is picked up by the seed
	create(5)
	if no := create(0).VoucherNo; no != 6 {
		t.Fatalf("expected voucher_no 6 after manual 5, got %d", no)
	}
	// a manual number ahead of the live counter pushes it forward
	create(9)
	if no := create(0).VoucherNo; no != 10 {
		t.Fatalf("expected voucher_no 10 after manual 9, got %d", no)
	}
}

func TestVoucherPostIsIdempotentSafe(t *testing.T) {
	ctx := setupTest(t, "voucher_post")
	createActiveYear(t, ctx, "1403")
	bank := createCashAccount(t, ctx, "Main Bank")
	person := createPerson(t, ctx, "C-001")

	voucher, err := models.CreateReceiptVoucher(ctx, &models.NewReceiptVoucher{
		VoucherDate:   date(2024, 6, 1),
		Type:          models.VoucherTypePayment,
		CashAccountId: bank.ID,
		PersonId:      person.ID,
		Amount:        dec("300"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	posted, err := models.PostReceiptVoucher(ctx, voucher.ID)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if posted.Status != models.VoucherStatusPosted {
		t.Fatalf("expected posted, got %s", posted.Status)
	}

	// second call fails and changes nothing
	_, err = models.PostReceiptVoucher(ctx, voucher.ID)
	assertKind(t, err, utils.FailureState)

	_, err = models.UpdateReceiptVoucher(ctx, voucher.ID, &models.NewReceiptVoucher{
		VoucherDate:   date(2024, 6, 9),
		Type:          models.VoucherTypePayment,
		CashAccountId: bank.ID,
		PersonId:      person.ID,
		Amount:        dec("999"),
	})
	assertKind(t, err, utils.FailureState)

	_, err = models.DeleteReceiptVoucher(ctx, voucher.ID)
	assertKind(t, err, utils.FailureState)
}

func TestCashAccountDeleteGuard(t *testing.T) {
	ctx := setupTest(t, "cash_account_delete_guard")
	createActiveYear(t, ctx, "1403")
	bank := createCashAccount(t, ctx, "Main Bank")
	drawer := createCashAccount(t, ctx, "Cash Drawer")
	person := createPerson(t, ctx, "C-001")

	if _, err := models.CreateReceiptVoucher(ctx, &models.NewReceiptVoucher{
		VoucherDate:             date(2024, 6, 1),
		Type:                    models.VoucherTypeTransfer,
		CashAccountId:           bank.ID,
		TransferToCashAccountId: drawer.ID,
		Amount:                  dec("50"),
	}); err != nil {
		t.Fatalf("create transfer: %v", err)
	}

	// blocked as source and as destination
	_, err := models.DeleteCashAccount(ctx, bank.ID)
	assertKind(t, err, utils.FailureReference)
	_, err = models.DeleteCashAccount(ctx, drawer.ID)
	assertKind(t, err, utils.FailureReference)

	// blocked by a check
	safe := createCashAccount(t, ctx, "Safe")
	if _, err := models.CreateCheck(ctx, &models.NewCheck{
		Type:          models.CheckTypeReceivable,
		CheckNo:       "CH-100",
		CheckDate:     date(2024, 6, 1),
		DueDate:       date(2024, 7, 1),
		Amount:        dec("1000"),
		CashAccountId: safe.ID,
		PersonId:      person.ID,
	}); err != nil {
		t.Fatalf("create check: %v", err)
	}
	_, err = models.DeleteCashAccount(ctx, safe.ID)
	assertKind(t, err, utils.FailureReference)
}

func TestCheckStatusTransitions(t *testing.T) {
	ctx := setupTest(t, "check_status")
	createActiveYear(t, ctx, "1403")
	safe := createCashAccount(t, ctx, "Safe")
	person := createPerson(t, ctx, "C-001")

	check, err := models.CreateCheck(ctx, &models.NewCheck{
		Type:          models.CheckTypeReceivable,
		CheckNo:       "CH-1",
		CheckDate:     date(2024, 6, 1),
		DueDate:       date(2024, 8, 1),
		Amount:        dec("2500"),
		CashAccountId: safe.ID,
		PersonId:      person.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if check.Status != models.CheckStatusInSafe {
		t.Fatalf("expected in_safe, got %s", check.Status)
	}

	// any member of the valid set is reachable from any other
	for _, status := range []models.CheckStatus{
		models.CheckStatusCollected,
		models.CheckStatusReturned,
		models.CheckStatusSpent,
		models.CheckStatusInSafe,
	} {
		updated, err := models.SetCheckStatus(ctx, check.ID, status)
		if err != nil {
			t.Fatalf("set status %s: %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("expected %s, got %s", status, updated.Status)
		}
	}

	_, err = models.SetCheckStatus(ctx, check.ID, models.CheckStatus("bounced"))
	assertKind(t, err, utils.FailureValidation)
}
