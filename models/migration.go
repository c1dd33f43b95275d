package models

import "github.com/sabaerp/saba_backend/config"

// MigrateTable runs the schema migration for every model.
func MigrateTable() error {
	db := config.GetDB()
	return db.AutoMigrate(
		&FiscalYear{},
		&NumberSequence{},
		&ChartAccount{},
		&JournalEntry{},
		&JournalLine{},
		&CashAccount{},
		&PersonCategory{},
		&Person{},
		&ProductCategory{},
		&Unit{},
		&Product{},
		&PriceList{},
		&PriceListItem{},
		&Invoice{},
		&InvoiceLine{},
		&ReceiptVoucher{},
		&Check{},
		&UserDefaults{},
	)
}
