package models

import (
	"context"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
	"github.com/shopspring/decimal"
)

// Person is a counterparty: customer, supplier or both.
type Person struct {
	ID                 int             `gorm:"primary_key" json:"id"`
	Name               string          `gorm:"index;size:100;not null" json:"name" binding:"required"`
	Code               string          `gorm:"size:30;uniqueIndex;not null" json:"code" binding:"required"`
	CategoryId         int             `gorm:"index" json:"category_id"`
	PersonType         PersonType      `gorm:"size:10;index;not null" json:"person_type" binding:"required"`
	Phone              string          `gorm:"size:20" json:"phone"`
	CreditLimit        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"credit_limit"`
	NationalId         string          `gorm:"size:20" json:"national_id"`
	EconomicCode       string          `gorm:"size:20" json:"economic_code"`
	DefaultPriceListId int             `gorm:"index" json:"default_price_list_id"`
	IsActive           *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewPerson struct {
	Name               string          `json:"name" binding:"required"`
	Code               string          `json:"code" binding:"required"`
	CategoryId         int             `json:"category_id"`
	PersonType         PersonType      `json:"person_type" binding:"required,oneof=customer supplier both"`
	Phone              string          `json:"phone"`
	PhoneCountry       string          `json:"phone_country"`
	CreditLimit        decimal.Decimal `json:"credit_limit"`
	NationalId         string          `json:"national_id"`
	EconomicCode       string          `json:"economic_code"`
	DefaultPriceListId int             `json:"default_price_list_id"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewPerson) validate(ctx context.Context, id int) error {
	if !input.PersonType.IsValid() {
		return utils.ValidationError("invalid person type %q", input.PersonType)
	}
	if err := utils.ValidateUnique[Person](ctx, "code", input.Code, id); err != nil {
		return err
	}
	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, input.PhoneCountry); err != nil {
			return err
		}
	}
	if input.CreditLimit.IsNegative() {
		return utils.ValidationError("credit limit cannot be negative")
	}
	if input.CategoryId > 0 {
		if err := utils.ValidateResourceId[PersonCategory](ctx, input.CategoryId); err != nil {
			return utils.ValidationError("person category not found")
		}
	}
	if input.DefaultPriceListId > 0 {
		if err := utils.ValidateResourceId[PriceList](ctx, input.DefaultPriceListId); err != nil {
			return utils.ValidationError("price list not found")
		}
	}
	return nil
}

func CreatePerson(ctx context.Context, input *NewPerson) (*Person, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	person := Person{
		Name:               input.Name,
		Code:               input.Code,
		CategoryId:         input.CategoryId,
		PersonType:         input.PersonType,
		Phone:              input.Phone,
		CreditLimit:        input.CreditLimit,
		NationalId:         input.NationalId,
		EconomicCode:       input.EconomicCode,
		DefaultPriceListId: input.DefaultPriceListId,
		IsActive:           utils.NewTrue(),
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func UpdatePerson(ctx context.Context, id int, input *NewPerson) (*Person, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	person, err := utils.FetchModel[Person](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&person).Updates(map[string]interface{}{
		"Name":               input.Name,
		"Code":               input.Code,
		"CategoryId":         input.CategoryId,
		"PersonType":         input.PersonType,
		"Phone":              input.Phone,
		"CreditLimit":        input.CreditLimit,
		"NationalId":         input.NationalId,
		"EconomicCode":       input.EconomicCode,
		"DefaultPriceListId": input.DefaultPriceListId,
	}).Error
	if err != nil {
		return nil, err
	}
	return person, nil
}

func DeletePerson(ctx context.Context, id int) (*Person, error) {

	person, err := utils.FetchModel[Person](ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := utils.ResourceCountWhere[Invoice](ctx, "person_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("person has invoices")
	}
	count, err = utils.ResourceCountWhere[ReceiptVoucher](ctx, "person_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("person has vouchers")
	}
	count, err = utils.ResourceCountWhere[Check](ctx, "person_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.ReferenceError("person has checks")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(&person).Error; err != nil {
		return nil, err
	}
	return person, nil
}

func GetPerson(ctx context.Context, id int) (*Person, error) {
	return GetResource[Person](ctx, id)
}

func GetPersons(ctx context.Context, name *string, personType *PersonType) ([]*Person, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	if name != nil && len(*name) > 0 {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}
	if personType != nil && *personType != "" {
		dbCtx = dbCtx.Where("person_type IN ?", []PersonType{*personType, PersonTypeBoth})
	}
	var results []*Person
	if err := dbCtx.Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func ToggleActivePerson(ctx context.Context, id int, isActive bool) (*Person, error) {
	return ToggleActiveModel[Person](ctx, config.GetDB(), id, isActive)
}
