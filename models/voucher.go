package models

import (
	"context"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReceiptVoucher records a cash movement: money received, money paid out,
// or a transfer between two cash accounts, discriminated by Type.
type ReceiptVoucher struct {
	ID                      int             `gorm:"primary_key" json:"id"`
	FiscalYearId            int             `gorm:"index;not null" json:"fiscal_year_id"`
	VoucherNo               int64           `gorm:"index;not null" json:"voucher_no"`
	VoucherDate             time.Time       `gorm:"index;not null" json:"voucher_date"`
	Type                    VoucherType     `gorm:"size:10;index;not null" json:"type"`
	CashAccountId           int             `gorm:"index;not null" json:"cash_account_id"`
	TransferToCashAccountId int             `gorm:"index" json:"transfer_to_cash_account_id"`
	PersonId                int             `gorm:"index" json:"person_id"`
	Amount                  decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	BankFee                 decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"bank_fee"`
	Description             string          `gorm:"type:text" json:"description"`
	Status                  VoucherStatus   `gorm:"size:10;not null;default:'draft';index" json:"status"`
	CreatedBy               int             `json:"created_by"`
	CreatedAt               time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewReceiptVoucher struct {
	FiscalYearId            int             `json:"fiscal_year_id"`
	VoucherNo               int64           `json:"voucher_no"`
	VoucherDate             time.Time       `json:"voucher_date" binding:"required"`
	Type                    VoucherType     `json:"type" binding:"required,oneof=receipt payment transfer"`
	CashAccountId           int             `json:"cash_account_id" binding:"required"`
	TransferToCashAccountId int             `json:"transfer_to_cash_account_id"`
	PersonId                int             `json:"person_id"`
	Amount                  decimal.Decimal `json:"amount" binding:"required"`
	BankFee                 decimal.Decimal `json:"bank_fee"`
	Description             string          `json:"description"`
}

func (input *NewReceiptVoucher) validate(ctx context.Context) error {
	if !input.Type.IsValid() {
		return utils.ValidationError("invalid voucher type %q", input.Type)
	}
	if !input.Amount.IsPositive() {
		return utils.ValidationError("amount must be positive")
	}
	if input.BankFee.IsNegative() {
		return utils.ValidationError("bank fee cannot be negative")
	}
	if err := utils.ValidateResourceId[CashAccount](ctx, input.CashAccountId); err != nil {
		return utils.ValidationError("cash account not found")
	}

	switch input.Type {
	case VoucherTypeTransfer:
		if input.TransferToCashAccountId == 0 {
			return utils.ValidationError("transfer requires a destination cash account")
		}
		if input.TransferToCashAccountId == input.CashAccountId {
			return utils.ValidationError("transfer source and destination must differ")
		}
		if err := utils.ValidateResourceId[CashAccount](ctx, input.TransferToCashAccountId); err != nil {
			return utils.ValidationError("destination cash account not found")
		}
	default:
		// receipt and payment are against a counterparty
		if input.PersonId == 0 {
			return utils.ValidationError("person is required for %s vouchers", input.Type)
		}
		if err := utils.ValidateResourceId[Person](ctx, input.PersonId); err != nil {
			return utils.ValidationError("person not found")
		}
	}
	return nil
}

func voucherNoSeed(ctx context.Context, fiscalYearId int) func(tx *gorm.DB) (int64, error) {
	return func(tx *gorm.DB) (int64, error) {
		var maxNo *int64
		err := tx.WithContext(ctx).Model(&ReceiptVoucher{}).
			Select("max(voucher_no)").
			Where("fiscal_year_id = ?", fiscalYearId).
			Scan(&maxNo).Error
		if err != nil {
			return 0, err
		}
		if maxNo == nil {
			return 0, nil
		}
		return *maxNo, nil
	}
}

func CreateReceiptVoucher(ctx context.Context, input *NewReceiptVoucher) (*ReceiptVoucher, error) {

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	fiscalYearId := input.FiscalYearId
	if fiscalYearId == 0 {
		year, err := GetActiveFiscalYear(ctx)
		if err != nil {
			return nil, err
		}
		fiscalYearId = year.ID
	} else if err := utils.ValidateResourceId[FiscalYear](ctx, fiscalYearId); err != nil {
		return nil, utils.ValidationError("fiscal year not found")
	}

	createdBy, _ := utils.GetUserIdFromContext(ctx)

	voucher := ReceiptVoucher{
		FiscalYearId:            fiscalYearId,
		VoucherDate:             input.VoucherDate,
		Type:                    input.Type,
		CashAccountId:           input.CashAccountId,
		TransferToCashAccountId: input.TransferToCashAccountId,
		PersonId:                input.PersonId,
		Amount:                  input.Amount,
		BankFee:                 input.BankFee,
		Description:             input.Description,
		Status:                  VoucherStatusDraft,
		CreatedBy:               createdBy,
	}

	db := config.GetDB()
	// db action
	tx := db.Begin()
	if input.VoucherNo > 0 {
		if err := utils.ValidateUniqueWhere[ReceiptVoucher](ctx,
			"fiscal_year_id = ?", []interface{}{fiscalYearId},
			"voucher_no", input.VoucherNo, 0); err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := reserveSequenceNo(ctx, tx, fiscalYearId, "voucher", input.VoucherNo); err != nil {
			tx.Rollback()
			return nil, err
		}
		voucher.VoucherNo = input.VoucherNo
	} else {
		no, err := nextSequenceNo(ctx, tx, fiscalYearId, "voucher", voucherNoSeed(ctx, fiscalYearId))
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		voucher.VoucherNo = no
	}

	if err := tx.WithContext(ctx).Create(&voucher).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &voucher, nil
}

func UpdateReceiptVoucher(ctx context.Context, id int, input *NewReceiptVoucher) (*ReceiptVoucher, error) {

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	voucher, err := utils.FetchModel[ReceiptVoucher](ctx, id)
	if err != nil {
		return nil, err
	}
	if voucher.Status != VoucherStatusDraft {
		return nil, utils.StateError("posted voucher is immutable")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&voucher).Updates(map[string]interface{}{
		"VoucherDate":             input.VoucherDate,
		"Type":                    input.Type,
		"CashAccountId":           input.CashAccountId,
		"TransferToCashAccountId": input.TransferToCashAccountId,
		"PersonId":                input.PersonId,
		"Amount":                  input.Amount,
		"BankFee":                 input.BankFee,
		"Description":             input.Description,
	}).Error
	if err != nil {
		return nil, err
	}
	return voucher, nil
}

// PostReceiptVoucher is the one-way draft -> posted transition; a second
// call fails with a state error.
func PostReceiptVoucher(ctx context.Context, id int) (*ReceiptVoucher, error) {

	db := config.GetDB()
	res := db.WithContext(ctx).Model(&ReceiptVoucher{}).
		Where("id = ? AND status = ?", id, VoucherStatusDraft).
		Update("status", VoucherStatusPosted)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := utils.FetchModel[ReceiptVoucher](ctx, id); err != nil {
			return nil, err
		}
		return nil, utils.StateError("only draft vouchers can be posted")
	}
	return utils.FetchModel[ReceiptVoucher](ctx, id)
}

func DeleteReceiptVoucher(ctx context.Context, id int) (*ReceiptVoucher, error) {

	voucher, err := utils.FetchModel[ReceiptVoucher](ctx, id)
	if err != nil {
		return nil, err
	}
	if voucher.Status != VoucherStatusDraft {
		return nil, utils.StateError("posted voucher cannot be deleted")
	}

	count, err := utils.ResourceCountWhere[Check](ctx, "voucher_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("voucher is referenced by checks")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&voucher).Error; err != nil {
		return nil, err
	}
	return voucher, nil
}

func GetReceiptVoucher(ctx context.Context, id int) (*ReceiptVoucher, error) {
	return utils.FetchModel[ReceiptVoucher](ctx, id)
}

func GetReceiptVouchers(ctx context.Context, fiscalYearId int, voucherType *VoucherType, dateFrom, dateTo *time.Time) ([]*ReceiptVoucher, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("fiscal_year_id = ?", fiscalYearId)
	if voucherType != nil && *voucherType != "" {
		dbCtx = dbCtx.Where("type = ?", *voucherType)
	}
	if dateFrom != nil && dateTo != nil {
		dbCtx = dbCtx.Where("voucher_date BETWEEN ? AND ?", dateFrom, dateTo)
	}
	var results []*ReceiptVoucher
	if err := dbCtx.Order("voucher_no").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
