package models

import (
	"context"
	"errors"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
	"gorm.io/gorm"
)

// UserDefaults keeps one row of per-user presets, upserted by user id.
type UserDefaults struct {
	ID                     int       `gorm:"primary_key" json:"id"`
	UserId                 int       `gorm:"uniqueIndex;not null" json:"user_id"`
	DefaultInvoicePersonId int       `gorm:"index" json:"default_invoice_person_id"`
	DefaultPriceListId     int       `gorm:"index" json:"default_price_list_id"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewUserDefaults struct {
	DefaultInvoicePersonId int `json:"default_invoice_person_id"`
	DefaultPriceListId     int `json:"default_price_list_id"`
}

func (input *NewUserDefaults) validate(ctx context.Context) error {
	if input.DefaultInvoicePersonId > 0 {
		if err := utils.ValidateResourceId[Person](ctx, input.DefaultInvoicePersonId); err != nil {
			return utils.ValidationError("person not found")
		}
	}
	if input.DefaultPriceListId > 0 {
		if err := utils.ValidateResourceId[PriceList](ctx, input.DefaultPriceListId); err != nil {
			return utils.ValidationError("price list not found")
		}
	}
	return nil
}

// SaveUserDefaults upserts the defaults row of the calling user.
func SaveUserDefaults(ctx context.Context, input *NewUserDefaults) (*UserDefaults, error) {

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok {
		return nil, utils.ValidationError("no user in context")
	}
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	db := config.GetDB()
	var defaults UserDefaults
	err := db.WithContext(ctx).Where("user_id = ?", userId).First(&defaults).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		defaults = UserDefaults{
			UserId:                 userId,
			DefaultInvoicePersonId: input.DefaultInvoicePersonId,
			DefaultPriceListId:     input.DefaultPriceListId,
		}
		if err := db.WithContext(ctx).Create(&defaults).Error; err != nil {
			return nil, err
		}
		return &defaults, nil
	}

	err = db.WithContext(ctx).Model(&defaults).Updates(map[string]interface{}{
		"DefaultInvoicePersonId": input.DefaultInvoicePersonId,
		"DefaultPriceListId":     input.DefaultPriceListId,
	}).Error
	if err != nil {
		return nil, err
	}
	return &defaults, nil
}

// GetUserDefaults returns the calling user's defaults, or an empty value
// when none have been saved yet.
func GetUserDefaults(ctx context.Context) (*UserDefaults, error) {

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok {
		return nil, utils.ValidationError("no user in context")
	}

	db := config.GetDB()
	var defaults UserDefaults
	err := db.WithContext(ctx).Where("user_id = ?", userId).First(&defaults).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &UserDefaults{UserId: userId}, nil
		}
		return nil, err
	}
	return &defaults, nil
}
