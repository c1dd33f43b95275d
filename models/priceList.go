package models

import (
	"context"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceList holds per-product prices; exactly one list is the default.
type PriceList struct {
	ID        int             `gorm:"primary_key" json:"id"`
	Name      string          `gorm:"size:100;not null" json:"name" binding:"required"`
	IsDefault *bool           `gorm:"not null;default:false;index" json:"is_default"`
	Items     []PriceListItem `gorm:"foreignKey:PriceListId" json:"items"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type PriceListItem struct {
	ID          int             `gorm:"primary_key" json:"id"`
	PriceListId int             `gorm:"index;not null" json:"price_list_id"`
	ProductId   int             `gorm:"index;not null" json:"product_id" binding:"required"`
	Price       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`
	MinQuantity decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"min_quantity"`
}

type NewPriceList struct {
	Name      string             `json:"name" binding:"required"`
	IsDefault bool               `json:"is_default"`
	Items     []NewPriceListItem `json:"items"`
}

type NewPriceListItem struct {
	ProductId   int             `json:"product_id" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewPriceList) validate(ctx context.Context, id int) error {
	if err := utils.ValidateUnique[PriceList](ctx, "name", input.Name, id); err != nil {
		return err
	}
	for _, item := range input.Items {
		if item.Price.IsNegative() {
			return utils.ValidationError("price cannot be negative")
		}
		if err := utils.ValidateResourceId[Product](ctx, item.ProductId); err != nil {
			return utils.ValidationError("product not found")
		}
	}
	return nil
}

func receivePriceListItems(input []NewPriceListItem, priceListId int) []PriceListItem {
	items := make([]PriceListItem, 0, len(input))
	for _, item := range input {
		items = append(items, PriceListItem{
			PriceListId: priceListId,
			ProductId:   item.ProductId,
			Price:       item.Price,
			MinQuantity: item.MinQuantity,
		})
	}
	return items
}

// clearOtherDefaultPriceLists keeps the is_default flag exclusive; runs in
// the same transaction as the write that sets the new default.
func clearOtherDefaultPriceLists(ctx context.Context, tx *gorm.DB, exceptId int) error {
	return tx.WithContext(ctx).Model(&PriceList{}).
		Where("id <> ?", exceptId).
		Update("is_default", false).Error
}

func CreatePriceList(ctx context.Context, input *NewPriceList) (*PriceList, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	list := PriceList{
		Name:      input.Name,
		IsDefault: &input.IsDefault,
		Items:     receivePriceListItems(input.Items, 0),
	}

	db := config.GetDB()
	// db action
	tx := db.Begin()
	if err := tx.WithContext(ctx).Create(&list).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if input.IsDefault {
		if err := clearOtherDefaultPriceLists(ctx, tx, list.ID); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func UpdatePriceList(ctx context.Context, id int, input *NewPriceList) (*PriceList, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	list, err := utils.FetchModel[PriceList](ctx, id)
	if err != nil {
		return nil, err
	}

	items := receivePriceListItems(input.Items, id)

	db := config.GetDB()
	// db action
	tx := db.Begin()
	err = tx.WithContext(ctx).Model(&list).Updates(map[string]interface{}{
		"Name":      input.Name,
		"IsDefault": input.IsDefault,
	}).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if input.IsDefault {
		if err := clearOtherDefaultPriceLists(ctx, tx, id); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if input.Items != nil {
		if err := ReplaceAssociation(ctx, tx, items, "price_list_id = ?", id); err != nil {
			tx.Rollback()
			return nil, err
		}
		list.Items = items
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return list, nil
}

func DeletePriceList(ctx context.Context, id int) (*PriceList, error) {

	list, err := utils.FetchModel[PriceList](ctx, id, "Items")
	if err != nil {
		return nil, err
	}

	count, err := utils.ResourceCountWhere[Person](ctx, "default_price_list_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("price list is the default of persons")
	}
	count, err = utils.ResourceCountWhere[UserDefaults](ctx, "default_price_list_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("price list is referenced by user defaults")
	}

	db := config.GetDB()
	// db action
	tx := db.Begin()
	if err := tx.WithContext(ctx).Where("price_list_id = ?", id).Delete(&PriceListItem{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.WithContext(ctx).Delete(&list).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return list, nil
}

func GetPriceList(ctx context.Context, id int) (*PriceList, error) {
	return utils.FetchModel[PriceList](ctx, id, "Items")
}

func GetPriceLists(ctx context.Context) ([]*PriceList, error) {
	return utils.FetchAllModels[PriceList](ctx, "Items")
}

// GetDefaultPriceList returns the single default list, if any.
func GetDefaultPriceList(ctx context.Context) (*PriceList, error) {
	db := config.GetDB()
	var list PriceList
	err := db.WithContext(ctx).Preload("Items").Where("is_default = ?", true).First(&list).Error
	if err != nil {
		return nil, utils.ErrorRecordNotFound
	}
	return &list, nil
}
