package models

import (
	"context"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
)

// ProductCategory is an adjacency-list tree.
type ProductCategory struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	ParentId  int       `gorm:"index" json:"parent_id"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewProductCategory struct {
	Name      string `json:"name" binding:"required"`
	ParentId  int    `json:"parent_id"`
	SortOrder int    `json:"sort_order"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewProductCategory) validate(ctx context.Context, id int) error {
	if err := utils.ValidateUnique[ProductCategory](ctx, "name", input.Name, id); err != nil {
		return err
	}
	if input.ParentId > 0 {
		if id > 0 && id == input.ParentId {
			return utils.ValidationError("self-parent not allowed")
		}
		if err := utils.ValidateResourceId[ProductCategory](ctx, input.ParentId); err != nil {
			return utils.ValidationError("parent category not found")
		}
	}
	return nil
}

func CreateProductCategory(ctx context.Context, input *NewProductCategory) (*ProductCategory, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	category := ProductCategory{
		Name:      input.Name,
		ParentId:  input.ParentId,
		SortOrder: input.SortOrder,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func UpdateProductCategory(ctx context.Context, id int, input *NewProductCategory) (*ProductCategory, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	category, err := utils.FetchModel[ProductCategory](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&category).Updates(map[string]interface{}{
		"Name":      input.Name,
		"ParentId":  input.ParentId,
		"SortOrder": input.SortOrder,
	}).Error
	if err != nil {
		return nil, err
	}
	return category, nil
}

func DeleteProductCategory(ctx context.Context, id int) (*ProductCategory, error) {

	category, err := utils.FetchModel[ProductCategory](ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := utils.ResourceCountWhere[ProductCategory](ctx, "parent_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("category has child categories")
	}
	count, err = utils.ResourceCountWhere[Product](ctx, "category_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("category has products")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func GetProductCategory(ctx context.Context, id int) (*ProductCategory, error) {
	return GetResource[ProductCategory](ctx, id)
}

func GetProductCategories(ctx context.Context) ([]*ProductCategory, error) {
	db := config.GetDB()
	var results []*ProductCategory
	if err := db.WithContext(ctx).Order("sort_order, name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
