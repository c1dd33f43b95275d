package utils

import (
	"context"
	"reflect"

	"github.com/sabaerp/saba_backend/config"
)

// check if id exists, return RecordNotFound error when it does not
func ValidateResourceId[T any](ctx context.Context, id interface{}) error {

	count, err := ResourceCountWhere[T](ctx, "id = ?", id)
	if err != nil {
		return err
	}
	if count <= 0 {
		return ErrorRecordNotFound
	}

	return nil
}

// uniqueness of a single column across the whole table
func ValidateUnique[T any](ctx context.Context, column string, value interface{}, exceptId interface{}) error {
	return ValidateUniqueWhere[T](ctx, "", nil, column, value, exceptId)
}

// uniqueness of a column within a scope (e.g. code within one fiscal year).
// scopeCond may be blank for global uniqueness.
func ValidateUniqueWhere[T any](ctx context.Context, scopeCond string, scopeArgs []interface{}, column string, value interface{}, exceptId interface{}) error {
	var model T

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&model)
	if scopeCond != "" {
		dbCtx = dbCtx.Where(scopeCond, scopeArgs...)
	}
	if reflect.ValueOf(exceptId).IsZero() {
		dbCtx = dbCtx.Where(column+" = ?", value)
	} else {
		dbCtx = dbCtx.Where(column+" = ? AND NOT id = ?", value, exceptId)
	}
	var count int64
	if err := dbCtx.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return InvariantError("duplicate %s", column)
	}
	return nil
}

// count records matching condition
func ResourceCountWhere[T any](ctx context.Context, condition string, value ...interface{}) (int64, error) {
	var model T

	db := config.GetDB()
	var count int64
	if err := db.WithContext(ctx).Model(&model).Where(condition, value...).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
