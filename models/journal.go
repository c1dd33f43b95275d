package models

import (
	"context"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// balanceTolerance is the maximum allowed |sum(debit) - sum(credit)|.
var balanceTolerance = decimal.NewFromFloat(0.01)

type JournalEntry struct {
	ID            int           `gorm:"primary_key" json:"id"`
	FiscalYearId  int           `gorm:"index;not null" json:"fiscal_year_id" binding:"required"`
	VoucherNo     int64         `gorm:"index;not null" json:"voucher_no"`
	VoucherDate   time.Time     `gorm:"index;not null" json:"voucher_date" binding:"required"`
	Description   string        `gorm:"type:text" json:"description"`
	ReferenceType string        `gorm:"size:50;index" json:"reference_type"`
	ReferenceId   int           `gorm:"index" json:"reference_id"`
	Status        JournalStatus `gorm:"size:10;not null;default:'draft';index" json:"status"`
	CreatedBy     int           `json:"created_by"`
	Lines         []JournalLine `gorm:"foreignKey:EntryId" json:"lines"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

type JournalLine struct {
	ID          int             `gorm:"primary_key" json:"id"`
	EntryId     int             `gorm:"index;not null" json:"entry_id"`
	AccountId   int             `gorm:"index;not null" json:"account_id" binding:"required"`
	Debit       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"debit"`
	Credit      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"credit"`
	Description string          `gorm:"size:255" json:"description"`
	SortOrder   int             `gorm:"default:0" json:"sort_order"`
}

type NewJournalEntry struct {
	FiscalYearId  int              `json:"fiscal_year_id"`
	VoucherNo     int64            `json:"voucher_no"`
	VoucherDate   time.Time        `json:"voucher_date" binding:"required"`
	Description   string           `json:"description"`
	ReferenceType string           `json:"reference_type"`
	ReferenceId   int              `json:"reference_id"`
	Lines         []NewJournalLine `json:"lines" binding:"required"`
}

type NewJournalLine struct {
	AccountId   int             `json:"account_id" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// receiveJournalLines maps input lines and totals both sides.
func receiveJournalLines(input []NewJournalLine, entryId int) ([]JournalLine, decimal.Decimal, decimal.Decimal, error) {
	lines := make([]JournalLine, 0, len(input))
	debitTotal := decimal.Zero
	creditTotal := decimal.Zero
	for i, l := range input {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return nil, debitTotal, creditTotal, utils.ValidationError("debit and credit cannot be negative")
		}
		if l.Debit.IsZero() && l.Credit.IsZero() {
			return nil, debitTotal, creditTotal, utils.ValidationError("either debit or credit must have value")
		}
		debitTotal = debitTotal.Add(l.Debit)
		creditTotal = creditTotal.Add(l.Credit)
		lines = append(lines, JournalLine{
			EntryId:     entryId,
			AccountId:   l.AccountId,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
			SortOrder:   i + 1,
		})
	}
	if len(lines) == 0 {
		return nil, debitTotal, creditTotal, utils.ValidationError("at least one line is required")
	}
	return lines, debitTotal, creditTotal, nil
}

// checkBalanced enforces sum(debit) == sum(credit) before any row is
// written. All-or-nothing: an unbalanced set writes nothing.
func checkBalanced(debitTotal, creditTotal decimal.Decimal) error {
	diff := debitTotal.Sub(creditTotal).Abs()
	if diff.GreaterThanOrEqual(balanceTolerance) {
		return utils.InvariantError("journal lines are not balanced: debit %s, credit %s", debitTotal, creditTotal)
	}
	return nil
}

// validateJournalAccounts checks every line account exists inside the
// entry's fiscal year.
func validateJournalAccounts(ctx context.Context, fiscalYearId int, input []NewJournalLine) error {
	ids := make([]int, 0, len(input))
	for _, l := range input {
		ids = append(ids, l.AccountId)
	}
	unqIds := utils.UniqueSlice(ids)
	count, err := utils.ResourceCountWhere[ChartAccount](ctx, "id IN ? AND fiscal_year_id = ?", unqIds, fiscalYearId)
	if err != nil {
		return err
	}
	if count != int64(len(unqIds)) {
		return utils.ValidationError("account not found in fiscal year")
	}
	return nil
}

func journalVoucherNoSeed(ctx context.Context, fiscalYearId int) func(tx *gorm.DB) (int64, error) {
	return func(tx *gorm.DB) (int64, error) {
		var maxNo *int64
		err := tx.WithContext(ctx).Model(&JournalEntry{}).
			Select("max(voucher_no)").
			Where("fiscal_year_id = ?", fiscalYearId).
			Scan(&maxNo).Error
		if err != nil {
			return 0, err
		}
		if maxNo == nil {
			return 0, nil
		}
		return *maxNo, nil
	}
}

func CreateJournalEntry(ctx context.Context, input *NewJournalEntry) (*JournalEntry, error) {

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

	if err := validateJournalAccounts(ctx, fiscalYearId, input.Lines); err != nil {
		return nil, err
	}
	lines, debitTotal, creditTotal, err := receiveJournalLines(input.Lines, 0)
	if err != nil {
		return nil, err
	}
	if err := checkBalanced(debitTotal, creditTotal); err != nil {
		return nil, err
	}

	createdBy, _ := utils.GetUserIdFromContext(ctx)

	entry := JournalEntry{
		FiscalYearId:  fiscalYearId,
		VoucherDate:   input.VoucherDate,
		Description:   input.Description,
		ReferenceType: input.ReferenceType,
		ReferenceId:   input.ReferenceId,
		Status:        JournalStatusDraft,
		CreatedBy:     createdBy,
		Lines:         lines,
	}

	db := config.GetDB()
	// db action
	tx := db.Begin()
	if input.VoucherNo > 0 {
		if err := utils.ValidateUniqueWhere[JournalEntry](ctx,
			"fiscal_year_id = ?", []interface{}{fiscalYearId},
			"voucher_no", input.VoucherNo, 0); err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := reserveSequenceNo(ctx, tx, fiscalYearId, "journal", input.VoucherNo); err != nil {
			tx.Rollback()
			return nil, err
		}
		entry.VoucherNo = input.VoucherNo
	} else {
		no, err := nextSequenceNo(ctx, tx, fiscalYearId, "journal", journalVoucherNoSeed(ctx, fiscalYearId))
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		entry.VoucherNo = no
	}

	if err := tx.WithContext(ctx).Create(&entry).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func UpdateJournalEntry(ctx context.Context, id int, input *NewJournalEntry) (*JournalEntry, error) {

	entry, err := utils.FetchModel[JournalEntry](ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.Status != JournalStatusDraft {
		return nil, utils.StateError("posted journal entry is immutable")
	}

	// the fiscal year of an entry is fixed once created
	fiscalYearId := entry.FiscalYearId

	var lines []JournalLine
	if input.Lines != nil {
		if err := validateJournalAccounts(ctx, fiscalYearId, input.Lines); err != nil {
			return nil, err
		}
		var debitTotal, creditTotal decimal.Decimal
		lines, debitTotal, creditTotal, err = receiveJournalLines(input.Lines, id)
		if err != nil {
			return nil, err
		}
		if err := checkBalanced(debitTotal, creditTotal); err != nil {
			return nil, err
		}
	}

	db := config.GetDB()
	// db action
	tx := db.Begin()
	err = tx.WithContext(ctx).Model(&entry).Updates(map[string]interface{}{
		"VoucherDate":   input.VoucherDate,
		"Description":   input.Description,
		"ReferenceType": input.ReferenceType,
		"ReferenceId":   input.ReferenceId,
	}).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if input.Lines != nil {
		// full line-set replacement
		if err := ReplaceAssociation(ctx, tx, lines, "entry_id = ?", id); err != nil {
			tx.Rollback()
			return nil, err
		}
		entry.Lines = lines
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// PostJournalEntry is the one-way draft -> posted transition, expressed as
// a single conditional update; zero rows affected is the failure signal.
func PostJournalEntry(ctx context.Context, id int) (*JournalEntry, error) {

	db := config.GetDB()
	res := db.WithContext(ctx).Model(&JournalEntry{}).
		Where("id = ? AND status = ?", id, JournalStatusDraft).
		Update("status", JournalStatusPosted)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := utils.FetchModel[JournalEntry](ctx, id); err != nil {
			return nil, err
		}
		return nil, utils.StateError("only draft journal entries can be posted")
	}
	return utils.FetchModel[JournalEntry](ctx, id, "Lines")
}

func DeleteJournalEntry(ctx context.Context, id int) (*JournalEntry, error) {

	entry, err := utils.FetchModel[JournalEntry](ctx, id, "Lines")
	if err != nil {
		return nil, err
	}
	if entry.Status != JournalStatusDraft {
		return nil, utils.StateError("posted journal entry cannot be deleted")
	}

	db := config.GetDB()
	// db action
	tx := db.Begin()
	if err := tx.WithContext(ctx).Where("entry_id = ?", id).Delete(&JournalLine{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.WithContext(ctx).Delete(&entry).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func GetJournalEntry(ctx context.Context, id int) (*JournalEntry, error) {
	return utils.FetchModel[JournalEntry](ctx, id, "Lines")
}

func GetJournalEntries(ctx context.Context, fiscalYearId int, dateFrom, dateTo *time.Time) ([]*JournalEntry, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Lines").Where("fiscal_year_id = ?", fiscalYearId)
	if dateFrom != nil && dateTo != nil {
		dbCtx = dbCtx.Where("voucher_date BETWEEN ? AND ?", dateFrom, dateTo)
	}
	var results []*JournalEntry
	if err := dbCtx.Order("voucher_no").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
