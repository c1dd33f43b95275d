package models

import (
	"context"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
	"github.com/shopspring/decimal"
)

// Check is a physical check instrument tracked through a custody
// lifecycle independent of any voucher it may have originated from.
type Check struct {
	ID            int             `gorm:"primary_key" json:"id"`
	Type          CheckType       `gorm:"size:10;index;not null" json:"type"`
	CheckNo       string          `gorm:"size:30;index;not null" json:"check_no"`
	CheckDate     time.Time       `gorm:"not null" json:"check_date"`
	DueDate       time.Time       `gorm:"index;not null" json:"due_date"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	CashAccountId int             `gorm:"index;not null" json:"cash_account_id"`
	PersonId      int             `gorm:"index;not null" json:"person_id"`
	VoucherId     int             `gorm:"index" json:"voucher_id"`
	Status        CheckStatus     `gorm:"size:10;not null;default:'in_safe';index" json:"status"`
	Description   string          `gorm:"size:255" json:"description"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCheck struct {
	Type          CheckType       `json:"type" binding:"required,oneof=receivable payable"`
	CheckNo       string          `json:"check_no" binding:"required"`
	CheckDate     time.Time       `json:"check_date" binding:"required"`
	DueDate       time.Time       `json:"due_date" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	CashAccountId int             `json:"cash_account_id" binding:"required"`
	PersonId      int             `json:"person_id" binding:"required"`
	VoucherId     int             `json:"voucher_id"`
	Description   string          `json:"description"`
}

func (input *NewCheck) validate(ctx context.Context) error {
	if !input.Type.IsValid() {
		return utils.ValidationError("invalid check type %q", input.Type)
	}
	if !input.Amount.IsPositive() {
		return utils.ValidationError("amount must be positive")
	}
	if err := utils.ValidateResourceId[CashAccount](ctx, input.CashAccountId); err != nil {
		return utils.ValidationError("cash account not found")
	}
	if err := utils.ValidateResourceId[Person](ctx, input.PersonId); err != nil {
		return utils.ValidationError("person not found")
	}
	if input.VoucherId > 0 {
		if err := utils.ValidateResourceId[ReceiptVoucher](ctx, input.VoucherId); err != nil {
			return utils.ValidationError("voucher not found")
		}
	}
	return nil
}

func CreateCheck(ctx context.Context, input *NewCheck) (*Check, error) {

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	check := Check{
		Type:          input.Type,
		CheckNo:       input.CheckNo,
		CheckDate:     input.CheckDate,
		DueDate:       input.DueDate,
		Amount:        input.Amount,
		CashAccountId: input.CashAccountId,
		PersonId:      input.PersonId,
		VoucherId:     input.VoucherId,
		Status:        CheckStatusInSafe,
		Description:   input.Description,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&check).Error; err != nil {
		return nil, err
	}
	return &check, nil
}

func UpdateCheck(ctx context.Context, id int, input *NewCheck) (*Check, error) {

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	check, err := utils.FetchModel[Check](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&check).Updates(map[string]interface{}{
		"Type":          input.Type,
		"CheckNo":       input.CheckNo,
		"CheckDate":     input.CheckDate,
		"DueDate":       input.DueDate,
		"Amount":        input.Amount,
		"CashAccountId": input.CashAccountId,
		"PersonId":      input.PersonId,
		"VoucherId":     input.VoucherId,
		"Description":   input.Description,
	}).Error
	if err != nil {
		return nil, err
	}
	return check, nil
}

// SetCheckStatus moves the check to any member of the valid status set.
// There is deliberately no transition graph; custody of a physical check
// can change in any direction.
func SetCheckStatus(ctx context.Context, id int, status CheckStatus) (*Check, error) {

	if !status.IsValid() {
		return nil, utils.ValidationError("invalid check status %q", status)
	}

	check, err := utils.FetchModel[Check](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&check).Update("status", status).Error; err != nil {
		return nil, err
	}
	return check, nil
}

func DeleteCheck(ctx context.Context, id int) (*Check, error) {

	check, err := utils.FetchModel[Check](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&check).Error; err != nil {
		return nil, err
	}
	return check, nil
}

func GetCheck(ctx context.Context, id int) (*Check, error) {
	return GetResource[Check](ctx, id)
}

func GetChecks(ctx context.Context, checkType *CheckType, status *CheckStatus) ([]*Check, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	if checkType != nil && *checkType != "" {
		dbCtx = dbCtx.Where("type = ?", *checkType)
	}
	if status != nil && *status != "" {
		dbCtx = dbCtx.Where("status = ?", *status)
	}
	var results []*Check
	if err := dbCtx.Order("due_date, id").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
