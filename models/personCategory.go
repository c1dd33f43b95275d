package models

import (
	"context"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
)

type PersonCategory struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewPersonCategory struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

func (input *NewPersonCategory) validate(ctx context.Context, id int) error {
	return utils.ValidateUnique[PersonCategory](ctx, "name", input.Name, id)
}

func CreatePersonCategory(ctx context.Context, input *NewPersonCategory) (*PersonCategory, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	category := PersonCategory{
		Name:      input.Name,
		SortOrder: input.SortOrder,
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func UpdatePersonCategory(ctx context.Context, id int, input *NewPersonCategory) (*PersonCategory, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	category, err := utils.FetchModel[PersonCategory](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&category).Updates(map[string]interface{}{
		"Name":      input.Name,
		"SortOrder": input.SortOrder,
	}).Error
	if err != nil {
		return nil, err
	}
	return category, nil
}

func DeletePersonCategory(ctx context.Context, id int) (*PersonCategory, error) {

	category, err := utils.FetchModel[PersonCategory](ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := utils.ResourceCountWhere[Person](ctx, "category_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("category has persons")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func GetPersonCategory(ctx context.Context, id int) (*PersonCategory, error) {
	return GetResource[PersonCategory](ctx, id)
}

func GetPersonCategories(ctx context.Context) ([]*PersonCategory, error) {
	db := config.GetDB()
	var results []*PersonCategory
	if err := db.WithContext(ctx).Order("sort_order, name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
