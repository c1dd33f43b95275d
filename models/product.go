package models

import (
	"context"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int             `gorm:"primary_key" json:"id"`
	Code          string          `gorm:"size:30;uniqueIndex;not null" json:"code" binding:"required"`
	Name          string          `gorm:"index;size:100;not null" json:"name" binding:"required"`
	CategoryId    int             `gorm:"index" json:"category_id"`
	MainUnitId    int             `gorm:"index;not null" json:"main_unit_id" binding:"required"`
	SubUnitId     int             `gorm:"index" json:"sub_unit_id"`
	SubUnitRatio  decimal.Decimal `gorm:"type:decimal(20,4);default:1" json:"sub_unit_ratio"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"purchase_price"`
	SalesTaxRate  decimal.Decimal `gorm:"type:decimal(6,2);default:0" json:"sales_tax_rate"`
	PurchaseTaxRate decimal.Decimal `gorm:"type:decimal(6,2);default:0" json:"purchase_tax_rate"`
	ReorderPoint  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"reorder_point"`
	IsActive      *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewProduct struct {
	Code            string          `json:"code" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	CategoryId      int             `json:"category_id"`
	MainUnitId      int             `json:"main_unit_id" binding:"required"`
	SubUnitId       int             `json:"sub_unit_id"`
	SubUnitRatio    decimal.Decimal `json:"sub_unit_ratio"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	SalesTaxRate    decimal.Decimal `json:"sales_tax_rate"`
	PurchaseTaxRate decimal.Decimal `json:"purchase_tax_rate"`
	ReorderPoint    decimal.Decimal `json:"reorder_point"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewProduct) validate(ctx context.Context, id int) error {
	// product code is globally unique
	if err := utils.ValidateUnique[Product](ctx, "code", input.Code, id); err != nil {
		return err
	}
	if err := utils.ValidateResourceId[Unit](ctx, input.MainUnitId); err != nil {
		return utils.ValidationError("main unit not found")
	}
	if input.SubUnitId > 0 {
		if err := utils.ValidateResourceId[Unit](ctx, input.SubUnitId); err != nil {
			return utils.ValidationError("sub unit not found")
		}
		if !input.SubUnitRatio.IsPositive() {
			return utils.ValidationError("sub unit ratio must be positive")
		}
	}
	if input.CategoryId > 0 {
		if err := utils.ValidateResourceId[ProductCategory](ctx, input.CategoryId); err != nil {
			return utils.ValidationError("product category not found")
		}
	}
	if input.PurchasePrice.IsNegative() {
		return utils.ValidationError("purchase price cannot be negative")
	}
	return nil
}

func CreateProduct(ctx context.Context, input *NewProduct) (*Product, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	subUnitRatio := input.SubUnitRatio
	if input.SubUnitId == 0 {
		subUnitRatio = decimal.NewFromInt(1)
	}
	product := Product{
		Code:            input.Code,
		Name:            input.Name,
		CategoryId:      input.CategoryId,
		MainUnitId:      input.MainUnitId,
		SubUnitId:       input.SubUnitId,
		SubUnitRatio:    subUnitRatio,
		PurchasePrice:   input.PurchasePrice,
		SalesTaxRate:    input.SalesTaxRate,
		PurchaseTaxRate: input.PurchaseTaxRate,
		ReorderPoint:    input.ReorderPoint,
		IsActive:        utils.NewTrue(),
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func UpdateProduct(ctx context.Context, id int, input *NewProduct) (*Product, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	product, err := utils.FetchModel[Product](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&product).Updates(map[string]interface{}{
		"Code":            input.Code,
		"Name":            input.Name,
		"CategoryId":      input.CategoryId,
		"MainUnitId":      input.MainUnitId,
		"SubUnitId":       input.SubUnitId,
		"SubUnitRatio":    input.SubUnitRatio,
		"PurchasePrice":   input.PurchasePrice,
		"SalesTaxRate":    input.SalesTaxRate,
		"PurchaseTaxRate": input.PurchaseTaxRate,
		"ReorderPoint":    input.ReorderPoint,
	}).Error
	if err != nil {
		return nil, err
	}
	return product, nil
}

func DeleteProduct(ctx context.Context, id int) (*Product, error) {

	product, err := utils.FetchModel[Product](ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := utils.ResourceCountWhere[InvoiceLine](ctx, "product_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("product has invoice lines")
	}
	count, err = utils.ResourceCountWhere[PriceListItem](ctx, "product_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("product has price list items")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func GetProduct(ctx context.Context, id int) (*Product, error) {
	return GetResource[Product](ctx, id)
}

func GetProducts(ctx context.Context, name *string, code *string) ([]*Product, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	if name != nil && len(*name) > 0 {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}
	if code != nil && len(*code) > 0 {
		dbCtx = dbCtx.Where("code LIKE ?", "%"+*code+"%")
	}
	var results []*Product
	if err := dbCtx.Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func ToggleActiveProduct(ctx context.Context, id int, isActive bool) (*Product, error) {
	return ToggleActiveModel[Product](ctx, config.GetDB(), id, isActive)
}
