package models

import (
	"context"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
)

// ChartAccount is one node of the per-fiscal-year chart of accounts.
// Levels: 1 group, 2 class, 3 ledger, 4 detail.
type ChartAccount struct {
	ID           int         `gorm:"primary_key" json:"id"`
	FiscalYearId int         `gorm:"index;uniqueIndex:idx_chart_account_code;not null" json:"fiscal_year_id" binding:"required"`
	Code         string      `gorm:"size:20;uniqueIndex:idx_chart_account_code;not null" json:"code" binding:"required"`
	Title        string      `gorm:"size:100;not null" json:"title" binding:"required"`
	Level        int         `gorm:"not null" json:"level" binding:"required"`
	ParentId     int         `gorm:"index" json:"parent_id"`
	AccountType  AccountType `gorm:"size:10;index;not null" json:"account_type" binding:"required"`
	IsSystem     *bool       `gorm:"not null;default:false" json:"is_system"`
	SortOrder    int         `gorm:"default:0" json:"sort_order"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewChartAccount struct {
	FiscalYearId int         `json:"fiscal_year_id" binding:"required"`
	Code         string      `json:"code" binding:"required"`
	Title        string      `json:"title" binding:"required"`
	Level        int         `json:"level" binding:"required,min=1,max=4"`
	ParentId     int         `json:"parent_id"`
	AccountType  AccountType `json:"account_type" binding:"required,oneof=asset liability equity income expense"`
	SortOrder    int         `json:"sort_order"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewChartAccount) validate(ctx context.Context, id int) error {
	if !input.AccountType.IsValid() {
		return utils.ValidationError("invalid account type %q", input.AccountType)
	}
	if input.Level < AccountLevelGroup || input.Level > AccountLevelDetail {
		return utils.ValidationError("level must be between 1 and 4")
	}
	if err := utils.ValidateResourceId[FiscalYear](ctx, input.FiscalYearId); err != nil {
		return utils.ValidationError("fiscal year not found")
	}
	// code unique within the fiscal year
	if err := utils.ValidateUniqueWhere[ChartAccount](ctx,
		"fiscal_year_id = ?", []interface{}{input.FiscalYearId},
		"code", input.Code, id); err != nil {
		return err
	}
	if input.ParentId > 0 {
		if id > 0 && id == input.ParentId {
			return utils.ValidationError("self-parent not allowed")
		}
		parent, err := utils.FetchModel[ChartAccount](ctx, input.ParentId)
		if err != nil {
			return utils.ValidationError("parent account not found")
		}
		if parent.FiscalYearId != input.FiscalYearId {
			return utils.ValidationError("parent account belongs to another fiscal year")
		}
	}
	return nil
}

func CreateChartAccount(ctx context.Context, input *NewChartAccount) (*ChartAccount, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	account := ChartAccount{
		FiscalYearId: input.FiscalYearId,
		Code:         input.Code,
		Title:        input.Title,
		Level:        input.Level,
		ParentId:     input.ParentId,
		AccountType:  input.AccountType,
		IsSystem:     utils.NewFalse(),
		SortOrder:    input.SortOrder,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func UpdateChartAccount(ctx context.Context, id int, input *NewChartAccount) (*ChartAccount, error) {

	account, err := utils.FetchModel[ChartAccount](ctx, id)
	if err != nil {
		return nil, err
	}
	// the fiscal year of an account is fixed once created
	input.FiscalYearId = account.FiscalYearId

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"Title":     input.Title,
		"SortOrder": input.SortOrder,
	}
	if !*account.IsSystem {
		updates["Code"] = input.Code
		updates["Level"] = input.Level
		updates["ParentId"] = input.ParentId
		updates["AccountType"] = input.AccountType
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&account).Updates(updates).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func DeleteChartAccount(ctx context.Context, id int) (*ChartAccount, error) {

	account, err := utils.FetchModel[ChartAccount](ctx, id)
	if err != nil {
		return nil, err
	}

	if account.IsSystem != nil && *account.IsSystem {
		return nil, utils.ReferenceError("system account cannot be deleted")
	}

	count, err := utils.ResourceCountWhere[ChartAccount](ctx, "parent_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("account has child accounts")
	}

	count, err = utils.ResourceCountWhere[JournalLine](ctx, "account_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("account has journal lines")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func GetChartAccount(ctx context.Context, id int) (*ChartAccount, error) {
	return GetResource[ChartAccount](ctx, id)
}

// GetChartTree returns the full flat account set of one fiscal year,
// ordered for client-side tree assembly.
func GetChartTree(ctx context.Context, fiscalYearId int) ([]*ChartAccount, error) {
	db := config.GetDB()
	var results []*ChartAccount
	err := db.WithContext(ctx).
		Where("fiscal_year_id = ?", fiscalYearId).
		Order("sort_order, code").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetChartChildren supports incremental tree expansion.
func GetChartChildren(ctx context.Context, parentId int, fiscalYearId int) ([]*ChartAccount, error) {
	db := config.GetDB()
	var results []*ChartAccount
	err := db.WithContext(ctx).
		Where("fiscal_year_id = ? AND parent_id = ?", fiscalYearId, parentId).
		Order("sort_order, code").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
