package models

import (
	"context"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
)

// CashAccount is a bank, cash drawer or petty-cash holding point.
type CashAccount struct {
	ID             int             `gorm:"primary_key" json:"id"`
	Name           string          `gorm:"size:100;not null" json:"name" binding:"required"`
	Type           CashAccountType `gorm:"size:10;index;not null" json:"type" binding:"required"`
	CardNumber     string          `gorm:"size:30" json:"card_number"`
	Iban           string          `gorm:"size:34" json:"iban"`
	ChartAccountId int             `gorm:"index" json:"chart_account_id"`
	IsActive       *bool           `gorm:"not null;default:true" json:"is_active"`
	SortOrder      int             `gorm:"default:0" json:"sort_order"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCashAccount struct {
	Name           string          `json:"name" binding:"required"`
	Type           CashAccountType `json:"type" binding:"required,oneof=bank cash petty"`
	CardNumber     string          `json:"card_number"`
	Iban           string          `json:"iban"`
	ChartAccountId int             `json:"chart_account_id"`
	SortOrder      int             `json:"sort_order"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewCashAccount) validate(ctx context.Context, id int) error {
	if !input.Type.IsValid() {
		return utils.ValidationError("invalid cash account type %q", input.Type)
	}
	if err := utils.ValidateUnique[CashAccount](ctx, "name", input.Name, id); err != nil {
		return err
	}
	if input.ChartAccountId > 0 {
		if err := utils.ValidateResourceId[ChartAccount](ctx, input.ChartAccountId); err != nil {
			return utils.ValidationError("chart account not found")
		}
	}
	return nil
}

func CreateCashAccount(ctx context.Context, input *NewCashAccount) (*CashAccount, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	account := CashAccount{
		Name:           input.Name,
		Type:           input.Type,
		CardNumber:     input.CardNumber,
		Iban:           input.Iban,
		ChartAccountId: input.ChartAccountId,
		IsActive:       utils.NewTrue(),
		SortOrder:      input.SortOrder,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func UpdateCashAccount(ctx context.Context, id int, input *NewCashAccount) (*CashAccount, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	account, err := utils.FetchModel[CashAccount](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&account).Updates(map[string]interface{}{
		"Name":           input.Name,
		"Type":           input.Type,
		"CardNumber":     input.CardNumber,
		"Iban":           input.Iban,
		"ChartAccountId": input.ChartAccountId,
		"SortOrder":      input.SortOrder,
	}).Error
	if err != nil {
		return nil, err
	}
	return account, nil
}

func DeleteCashAccount(ctx context.Context, id int) (*CashAccount, error) {

	account, err := utils.FetchModel[CashAccount](ctx, id)
	if err != nil {
		return nil, err
	}

	// referenced as source or destination of any voucher, or by a check
	count, err := utils.ResourceCountWhere[ReceiptVoucher](ctx,
		"cash_account_id = ? OR transfer_to_cash_account_id = ?", id, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("cash account is referenced by vouchers")
	}
	count, err = utils.ResourceCountWhere[Check](ctx, "cash_account_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("cash account is referenced by checks")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func GetCashAccount(ctx context.Context, id int) (*CashAccount, error) {
	return GetResource[CashAccount](ctx, id)
}

func GetCashAccounts(ctx context.Context) ([]*CashAccount, error) {
	db := config.GetDB()
	var results []*CashAccount
	if err := db.WithContext(ctx).Order("sort_order, name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func ToggleActiveCashAccount(ctx context.Context, id int, isActive bool) (*CashAccount, error) {
	return ToggleActiveModel[CashAccount](ctx, config.GetDB(), id, isActive)
}
