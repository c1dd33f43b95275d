package models

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NumberSequence is the atomic counter behind voucher and invoice
// numbering. One row per (fiscal year, scope); the row is locked for the
// duration of the caller's transaction so concurrent creators serialize
// instead of racing a MAX(+1) read.
type NumberSequence struct {
	ID           int       `gorm:"primary_key" json:"id"`
	FiscalYearId int       `gorm:"uniqueIndex:idx_number_sequence_scope;not null" json:"fiscal_year_id"`
	Scope        string    `gorm:"uniqueIndex:idx_number_sequence_scope;size:50;not null" json:"scope"`
	NextNo       int64     `gorm:"not null;default:1" json:"next_no"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// nextSequenceNo hands out the next number for (fiscalYearId, scope)
// inside tx. seed computes the starting point from existing documents the
// first time a counter row is created, so pre-existing numbering is
// continued rather than restarted.
func nextSequenceNo(ctx context.Context, tx *gorm.DB, fiscalYearId int, scope string, seed func(tx *gorm.DB) (int64, error)) (int64, error) {
	dbCtx := tx.WithContext(ctx)
	if tx.Dialector.Name() == "mysql" {
		// sqlite (used in tests) has no SELECT ... FOR UPDATE and runs
		// single-writer anyway
		dbCtx = dbCtx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var seq NumberSequence
	err := dbCtx.Where("fiscal_year_id = ? AND scope = ?", fiscalYearId, scope).First(&seq).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
		var maxNo int64
		if seed != nil {
			maxNo, err = seed(tx)
			if err != nil {
				return 0, err
			}
		}
		seq = NumberSequence{
			FiscalYearId: fiscalYearId,
			Scope:        scope,
			NextNo:       maxNo + 2,
		}
		if err := tx.WithContext(ctx).Create(&seq).Error; err != nil {
			return 0, err
		}
		return maxNo + 1, nil
	}

	no := seq.NextNo
	if err := tx.WithContext(ctx).Model(&seq).Update("next_no", no+1).Error; err != nil {
		return 0, err
	}
	return no, nil
}

// reserveSequenceNo moves the counter past a manually supplied number so
// a later automatic number cannot collide with it. Without a counter row
// there is nothing to do; the seed scan picks manual numbers up when the
// row is first created.
func reserveSequenceNo(ctx context.Context, tx *gorm.DB, fiscalYearId int, scope string, manual int64) error {
	dbCtx := tx.WithContext(ctx)
	if tx.Dialector.Name() == "mysql" {
		dbCtx = dbCtx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var seq NumberSequence
	err := dbCtx.Where("fiscal_year_id = ? AND scope = ?", fiscalYearId, scope).First(&seq).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if seq.NextNo > manual {
		return nil
	}
	return tx.WithContext(ctx).Model(&seq).Update("next_no", manual+1).Error
}
