package models

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice is a sales, purchase or proforma document. invoice_no is a
// type-prefixed string like "sales-12", numbered per (fiscal year, type).
type Invoice struct {
	ID             int             `gorm:"primary_key" json:"id"`
	FiscalYearId   int             `gorm:"index;not null" json:"fiscal_year_id"`
	InvoiceNo      string          `gorm:"size:30;index;not null" json:"invoice_no"`
	InvoiceType    InvoiceType     `gorm:"size:10;index;not null" json:"invoice_type"`
	PersonId       int             `gorm:"index;not null" json:"person_id"`
	InvoiceDate    time.Time       `gorm:"index;not null" json:"invoice_date"`
	DueDate        *time.Time      `json:"due_date"`
	Status         InvoiceStatus   `gorm:"size:10;not null;default:'draft';index" json:"status"`
	SellerId       int             `json:"seller_id"`
	ProjectName    string          `gorm:"size:100" json:"project_name"`
	ShippingCost   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"shipping_cost"`
	ExtraAdjust    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"extra_adjust"`
	Description    string          `gorm:"type:text" json:"description"`
	ReferenceType  string          `gorm:"size:50;index" json:"reference_type"`
	ReferenceId    int             `gorm:"index" json:"reference_id"`
	CreatedBy      int             `json:"created_by"`
	Lines          []InvoiceLine   `gorm:"foreignKey:InvoiceId" json:"lines"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type InvoiceLine struct {
	ID              int             `gorm:"primary_key" json:"id"`
	InvoiceId       int             `gorm:"index;not null" json:"invoice_id"`
	ProductId       int             `gorm:"index;not null" json:"product_id"`
	Quantity        decimal.Decimal `gorm:"type:decimal(20,4);default:1" json:"quantity"`
	UnitId          int             `gorm:"index" json:"unit_id"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(6,2);default:0" json:"discount_percent"`
	DiscountAmount  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount_amount"`
	TaxPercent      decimal.Decimal `gorm:"type:decimal(6,2);default:0" json:"tax_percent"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"tax_amount"`
	Description     string          `gorm:"size:255" json:"description"`
	SortOrder       int             `gorm:"default:0" json:"sort_order"`
}

type NewInvoice struct {
	FiscalYearId  int              `json:"fiscal_year_id"`
	InvoiceNo     string           `json:"invoice_no"`
	InvoiceType   InvoiceType      `json:"invoice_type" binding:"required,oneof=proforma sales purchase"`
	PersonId      int              `json:"person_id" binding:"required"`
	InvoiceDate   time.Time        `json:"invoice_date" binding:"required"`
	DueDate       *time.Time       `json:"due_date"`
	SellerId      int              `json:"seller_id"`
	ProjectName   string           `json:"project_name"`
	ShippingCost  decimal.Decimal  `json:"shipping_cost"`
	ExtraAdjust   decimal.Decimal  `json:"extra_adjust"`
	Description   string           `json:"description"`
	ReferenceType string           `json:"reference_type"`
	ReferenceId   int              `json:"reference_id"`
	Lines         []NewInvoiceLine `json:"lines"`
}

type NewInvoiceLine struct {
	ProductId       int             `json:"product_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitId          int             `json:"unit_id"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Description     string          `json:"description"`
}

// receiveInvoiceLines maps input lines, silently skipping lines without a
// product.
func receiveInvoiceLines(ctx context.Context, input []NewInvoiceLine, invoiceId int) ([]InvoiceLine, error) {
	lines := make([]InvoiceLine, 0, len(input))
	for _, l := range input {
		if l.ProductId == 0 {
			continue
		}
		if err := utils.ValidateResourceId[Product](ctx, l.ProductId); err != nil {
			return nil, utils.ValidationError("product not found")
		}
		if l.Quantity.IsNegative() || l.UnitPrice.IsNegative() {
			return nil, utils.ValidationError("quantity and unit price cannot be negative")
		}
		quantity := l.Quantity
		if quantity.IsZero() {
			quantity = decimal.NewFromInt(1)
		}
		lines = append(lines, InvoiceLine{
			InvoiceId:       invoiceId,
			ProductId:       l.ProductId,
			Quantity:        quantity,
			UnitId:          l.UnitId,
			UnitPrice:       l.UnitPrice,
			DiscountPercent: l.DiscountPercent,
			DiscountAmount:  l.DiscountAmount,
			TaxPercent:      l.TaxPercent,
			TaxAmount:       l.TaxAmount,
			Description:     l.Description,
			SortOrder:       len(lines) + 1,
		})
	}
	return lines, nil
}

// invoiceNoSeed parses the largest numeric suffix among existing
// "{type}-N" numbers of the fiscal year, so the counter continues an
// established series instead of restarting it.
func invoiceNoSeed(ctx context.Context, fiscalYearId int, invoiceType InvoiceType) func(tx *gorm.DB) (int64, error) {
	return func(tx *gorm.DB) (int64, error) {
		var numbers []string
		err := tx.WithContext(ctx).Model(&Invoice{}).
			Select("invoice_no").
			Where("fiscal_year_id = ? AND invoice_type = ?", fiscalYearId, invoiceType).
			Scan(&numbers).Error
		if err != nil {
			return 0, err
		}
		prefix := string(invoiceType) + "-"
		var maxNo int64
		for _, number := range numbers {
			suffix, found := strings.CutPrefix(number, prefix)
			if !found {
				continue
			}
			no, err := strconv.ParseInt(suffix, 10, 64)
			if err != nil {
				continue
			}
			if no > maxNo {
				maxNo = no
			}
		}
		return maxNo, nil
	}
}

// GetNextInvoiceNumber previews the next "{type}-N" number without
// consuming it.
func GetNextInvoiceNumber(ctx context.Context, fiscalYearId int, invoiceType InvoiceType) (string, error) {
	if !invoiceType.IsValid() {
		return "", utils.ValidationError("invalid invoice type %q", invoiceType)
	}

	db := config.GetDB()
	var seq NumberSequence
	err := db.WithContext(ctx).
		Where("fiscal_year_id = ? AND scope = ?", fiscalYearId, "invoice-"+string(invoiceType)).
		First(&seq).Error
	if err == nil {
		return fmt.Sprintf("%s-%d", invoiceType, seq.NextNo), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	maxNo, err := invoiceNoSeed(ctx, fiscalYearId, invoiceType)(db)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d", invoiceType, maxNo+1), nil
}

func (input *NewInvoice) validate(ctx context.Context) error {
	if !input.InvoiceType.IsValid() {
		return utils.ValidationError("invalid invoice type %q", input.InvoiceType)
	}
	if input.PersonId == 0 {
		return utils.ValidationError("person is required")
	}
	if err := utils.ValidateResourceId[Person](ctx, input.PersonId); err != nil {
		return utils.ValidationError("person not found")
	}
	return nil
}

func CreateInvoice(ctx context.Context, input *NewInvoice) (*Invoice, error) {

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	fiscalYearId := input.FiscalYearId
	if fiscalYearId == 0 {
		year, err := GetActiveFiscalYear(ctx)
		if err != nil {
			return nil, err
		}
		fiscalYearId = year.ID
	} else if err := utils.ValidateResourceId[FiscalYear](ctx, fiscalYearId); err != nil {
		return nil, utils.ValidationError("fiscal year not found")
	}

	lines, err := receiveInvoiceLines(ctx, input.Lines, 0)
	if err != nil {
		return nil, err
	}

	createdBy, _ := utils.GetUserIdFromContext(ctx)

	invoice := Invoice{
		FiscalYearId:  fiscalYearId,
		InvoiceType:   input.InvoiceType,
		PersonId:      input.PersonId,
		InvoiceDate:   input.InvoiceDate,
		DueDate:       input.DueDate,
		Status:        InvoiceStatusDraft,
		SellerId:      input.SellerId,
		ProjectName:   input.ProjectName,
		ShippingCost:  input.ShippingCost,
		ExtraAdjust:   input.ExtraAdjust,
		Description:   input.Description,
		ReferenceType: input.ReferenceType,
		ReferenceId:   input.ReferenceId,
		CreatedBy:     createdBy,
		Lines:         lines,
	}

	db := config.GetDB()
	// db action
	tx := db.Begin()
	if input.InvoiceNo != "" {
		if err := utils.ValidateUniqueWhere[Invoice](ctx,
			"fiscal_year_id = ?", []interface{}{fiscalYearId},
			"invoice_no", input.InvoiceNo, 0); err != nil {
			tx.Rollback()
			return nil, err
		}
		// a manual number in "{type}-N" shape must push the counter past N
		if suffix, found := strings.CutPrefix(input.InvoiceNo, string(input.InvoiceType)+"-"); found {
			if manual, err := strconv.ParseInt(suffix, 10, 64); err == nil {
				if err := reserveSequenceNo(ctx, tx, fiscalYearId,
					"invoice-"+string(input.InvoiceType), manual); err != nil {
					tx.Rollback()
					return nil, err
				}
			}
		}
		invoice.InvoiceNo = input.InvoiceNo
	} else {
		no, err := nextSequenceNo(ctx, tx, fiscalYearId, "invoice-"+string(input.InvoiceType),
			invoiceNoSeed(ctx, fiscalYearId, input.InvoiceType))
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		invoice.InvoiceNo = fmt.Sprintf("%s-%d", input.InvoiceType, no)
	}

	if err := tx.WithContext(ctx).Create(&invoice).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func UpdateInvoice(ctx context.Context, id int, input *NewInvoice) (*Invoice, error) {

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	invoice, err := utils.FetchModel[Invoice](ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != InvoiceStatusDraft {
		return nil, utils.StateError("only draft invoices can be updated")
	}

	db := config.GetDB()
	// db action
	tx := db.Begin()
	err = tx.WithContext(ctx).Model(&invoice).Updates(map[string]interface{}{
		"PersonId":      input.PersonId,
		"InvoiceDate":   input.InvoiceDate,
		"DueDate":       input.DueDate,
		"SellerId":      input.SellerId,
		"ProjectName":   input.ProjectName,
		"ShippingCost":  input.ShippingCost,
		"ExtraAdjust":   input.ExtraAdjust,
		"Description":   input.Description,
		"ReferenceType": input.ReferenceType,
		"ReferenceId":   input.ReferenceId,
	}).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if input.Lines != nil {
		lines, err := receiveInvoiceLines(ctx, input.Lines, id)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := ReplaceAssociation(ctx, tx, lines, "invoice_id = ?", id); err != nil {
			tx.Rollback()
			return nil, err
		}
		invoice.Lines = lines
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

// SaveInvoiceLines replaces the whole line set of a draft invoice.
func SaveInvoiceLines(ctx context.Context, invoiceId int, input []NewInvoiceLine) (*Invoice, error) {

	invoice, err := utils.FetchModel[Invoice](ctx, invoiceId)
	if err != nil {
		return nil, err
	}
	if invoice.Status != InvoiceStatusDraft {
		return nil, utils.StateError("only draft invoices can be updated")
	}

	lines, err := receiveInvoiceLines(ctx, input, invoiceId)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	// db action
	tx := db.Begin()
	if err := ReplaceAssociation(ctx, tx, lines, "invoice_id = ?", invoiceId); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	invoice.Lines = lines
	return invoice, nil
}

// ConfirmInvoice is the one-way draft -> confirmed transition.
func ConfirmInvoice(ctx context.Context, id int) (*Invoice, error) {

	db := config.GetDB()
	res := db.WithContext(ctx).Model(&Invoice{}).
		Where("id = ? AND status = ?", id, InvoiceStatusDraft).
		Update("status", InvoiceStatusConfirmed)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := utils.FetchModel[Invoice](ctx, id); err != nil {
			return nil, err
		}
		return nil, utils.StateError("only draft invoices can be confirmed")
	}
	return utils.FetchModel[Invoice](ctx, id, "Lines")
}

func DeleteInvoice(ctx context.Context, id int) (*Invoice, error) {

	invoice, err := utils.FetchModel[Invoice](ctx, id, "Lines")
	if err != nil {
		return nil, err
	}
	if invoice.Status != InvoiceStatusDraft {
		return nil, utils.StateError("only draft invoices can be deleted")
	}

	db := config.GetDB()
	// db action
	tx := db.Begin()
	if err := tx.WithContext(ctx).Where("invoice_id = ?", id).Delete(&InvoiceLine{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.WithContext(ctx).Delete(&invoice).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

func GetInvoice(ctx context.Context, id int) (*Invoice, error) {
	return utils.FetchModel[Invoice](ctx, id, "Lines")
}

func GetInvoices(ctx context.Context, fiscalYearId int, invoiceType *InvoiceType, status *InvoiceStatus) ([]*Invoice, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Lines").Where("fiscal_year_id = ?", fiscalYearId)
	if invoiceType != nil && *invoiceType != "" {
		dbCtx = dbCtx.Where("invoice_type = ?", *invoiceType)
	}
	if status != nil && *status != "" {
		dbCtx = dbCtx.Where("status = ?", *status)
	}
	var results []*Invoice
	if err := dbCtx.Order("invoice_date, id").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
