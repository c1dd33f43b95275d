package models

import (
	"context"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
	"github.com/shopspring/decimal"
)

// Unit is a measurement unit; sub-units convert to a base unit through
// ratio_to_base.
type Unit struct {
	ID          int             `gorm:"primary_key" json:"id"`
	Name        string          `gorm:"size:50;not null" json:"name" binding:"required"`
	Symbol      string          `gorm:"size:10" json:"symbol"`
	IsMain      *bool           `gorm:"not null;default:true" json:"is_main"`
	BaseUnitId  int             `gorm:"index" json:"base_unit_id"`
	RatioToBase decimal.Decimal `gorm:"type:decimal(20,4);default:1" json:"ratio_to_base"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewUnit struct {
	Name        string          `json:"name" binding:"required"`
	Symbol      string          `json:"symbol"`
	IsMain      bool            `json:"is_main"`
	BaseUnitId  int             `json:"base_unit_id"`
	RatioToBase decimal.Decimal `json:"ratio_to_base"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewUnit) validate(ctx context.Context, id int) error {
	if err := utils.ValidateUnique[Unit](ctx, "name", input.Name, id); err != nil {
		return err
	}
	if !input.IsMain {
		if input.BaseUnitId <= 0 {
			return utils.ValidationError("sub-unit requires a base unit")
		}
		if id > 0 && id == input.BaseUnitId {
			return utils.ValidationError("unit cannot be its own base")
		}
		if err := utils.ValidateResourceId[Unit](ctx, input.BaseUnitId); err != nil {
			return utils.ValidationError("base unit not found")
		}
		if !input.RatioToBase.IsPositive() {
			return utils.ValidationError("ratio to base must be positive")
		}
	}
	return nil
}

func CreateUnit(ctx context.Context, input *NewUnit) (*Unit, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	ratio := input.RatioToBase
	if input.IsMain {
		ratio = decimal.NewFromInt(1)
	}
	unit := Unit{
		Name:        input.Name,
		Symbol:      input.Symbol,
		IsMain:      &input.IsMain,
		BaseUnitId:  input.BaseUnitId,
		RatioToBase: ratio,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func UpdateUnit(ctx context.Context, id int, input *NewUnit) (*Unit, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	unit, err := utils.FetchModel[Unit](ctx, id)
	if err != nil {
		return nil, err
	}

	ratio := input.RatioToBase
	if input.IsMain {
		ratio = decimal.NewFromInt(1)
	}
	db := config.GetDB()
	err = db.WithContext(ctx).Model(&unit).Updates(map[string]interface{}{
		"Name":        input.Name,
		"Symbol":      input.Symbol,
		"IsMain":      input.IsMain,
		"BaseUnitId":  input.BaseUnitId,
		"RatioToBase": ratio,
	}).Error
	if err != nil {
		return nil, err
	}
	return unit, nil
}

func DeleteUnit(ctx context.Context, id int) (*Unit, error) {

	unit, err := utils.FetchModel[Unit](ctx, id)
	if err != nil {
		return nil, err
	}

	// referenced by any product as main or sub unit, or as a base unit
	count, err := utils.ResourceCountWhere[Product](ctx, "main_unit_id = ? OR sub_unit_id = ?", id, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("unit is used by products")
	}
	count, err = utils.ResourceCountWhere[Unit](ctx, "base_unit_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("unit is the base of other units")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&unit).Error; err != nil {
		return nil, err
	}
	return unit, nil
}

func GetUnit(ctx context.Context, id int) (*Unit, error) {
	return GetResource[Unit](ctx, id)
}

func GetUnits(ctx context.Context) ([]*Unit, error) {
	db := config.GetDB()
	var results []*Unit
	if err := db.WithContext(ctx).Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
