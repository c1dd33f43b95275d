package models

import (
	"context"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
	"gorm.io/gorm"
)

type FiscalYear struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	StartDate time.Time `gorm:"not null" json:"start_date" binding:"required"`
	EndDate   time.Time `gorm:"not null" json:"end_date" binding:"required"`
	IsActive  *bool     `gorm:"not null;default:false;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewFiscalYear struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	IsActive  bool      `json:"is_active"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewFiscalYear) validate(ctx context.Context, id int) error {
	if err := utils.ValidateUnique[FiscalYear](ctx, "name", input.Name, id); err != nil {
		return err
	}
	if !input.EndDate.After(input.StartDate) {
		return utils.ValidationError("end date must be after start date")
	}
	return nil
}

// deactivateOtherFiscalYears clears is_active on every other row. Must run
// inside the same transaction that sets the new flag, so there is never a
// window with zero or two active years.
func deactivateOtherFiscalYears(ctx context.Context, tx *gorm.DB, exceptId int) error {
	return tx.WithContext(ctx).Model(&FiscalYear{}).
		Where("id <> ?", exceptId).
		Update("is_active", false).Error
}

func CreateFiscalYear(ctx context.Context, input *NewFiscalYear) (*FiscalYear, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	year := FiscalYear{
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		IsActive:  &input.IsActive,
	}

	db := config.GetDB()
	// db action
	tx := db.Begin()
	if err := tx.WithContext(ctx).Create(&year).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if input.IsActive {
		if err := deactivateOtherFiscalYears(ctx, tx, year.ID); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &year, nil
}

func UpdateFiscalYear(ctx context.Context, id int, input *NewFiscalYear) (*FiscalYear, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	year, err := utils.FetchModel[FiscalYear](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	err = tx.WithContext(ctx).Model(&year).Updates(map[string]interface{}{
		"Name":      input.Name,
		"StartDate": input.StartDate,
		"EndDate":   input.EndDate,
		"IsActive":  input.IsActive,
	}).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if input.IsActive {
		if err := deactivateOtherFiscalYears(ctx, tx, id); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return year, nil
}

func DeleteFiscalYear(ctx context.Context, id int) (*FiscalYear, error) {

	year, err := utils.FetchModel[FiscalYear](ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := utils.ResourceCountWhere[JournalEntry](ctx, "fiscal_year_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("fiscal year has journal entries")
	}
	count, err = utils.ResourceCountWhere[Invoice](ctx, "fiscal_year_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("fiscal year has invoices")
	}
	count, err = utils.ResourceCountWhere[ReceiptVoucher](ctx, "fiscal_year_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("fiscal year has vouchers")
	}

	db := config.GetDB()
	// db action
	tx := db.Begin()
	if err := tx.WithContext(ctx).Where("fiscal_year_id = ?", id).Delete(&ChartAccount{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.WithContext(ctx).Where("fiscal_year_id = ?", id).Delete(&NumberSequence{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.WithContext(ctx).Delete(&year).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return year, nil
}

func GetFiscalYear(ctx context.Context, id int) (*FiscalYear, error) {
	return GetResource[FiscalYear](ctx, id)
}

func GetFiscalYears(ctx context.Context) ([]*FiscalYear, error) {
	db := config.GetDB()
	var results []*FiscalYear
	if err := db.WithContext(ctx).Order("start_date").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetActiveFiscalYear resolves the single active year. Operations that
// omit fiscal_year_id fall back to this.
func GetActiveFiscalYear(ctx context.Context) (*FiscalYear, error) {
	db := config.GetDB()
	var year FiscalYear
	err := db.WithContext(ctx).Where("is_active = ?", true).First(&year).Error
	if err != nil {
		return nil, utils.ValidationError("no active fiscal year")
	}
	return &year, nil
}
