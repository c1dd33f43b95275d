package models

import (
	"context"

	"github.com/sabaerp/saba_backend/utils"
	"gorm.io/gorm"
)

// GetResource fetches a single record by id.
func GetResource[T any](ctx context.Context, id int, associations ...string) (*T, error) {
	return utils.FetchModel[T](ctx, id, associations...)
}

// ReplaceAssociation swaps a child collection wholesale: delete every row
// matching condition, then insert the new set. Runs inside the caller's
// transaction so a mid-operation failure rolls everything back.
func ReplaceAssociation[T any](ctx context.Context, tx *gorm.DB, input []T, condition string, args ...interface{}) error {
	var model T
	if err := tx.WithContext(ctx).Where(condition, args...).Delete(&model).Error; err != nil {
		return err
	}
	if len(input) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&input).Error
}

// ToggleActiveModel flips is_active on a record.
func ToggleActiveModel[T any](ctx context.Context, db *gorm.DB, id int, isActive bool) (*T, error) {
	result, err := utils.FetchModel[T](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(result).Update("is_active", isActive).Error; err != nil {
		return nil, err
	}
	return result, nil
}
