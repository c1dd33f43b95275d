package models

import (
	"context"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
)

type seedChartAccount struct {
	Code       string
	Title      string
	Level      int
	ParentCode string
	Type       AccountType
	System     bool
}

// defaultChartAccounts is the standard hierarchy seeded into a new fiscal
// year. Ordered parent-before-child; the seeder resolves parents through a
// code -> id map built while walking the list.
var defaultChartAccounts = []seedChartAccount{
	// 1 current assets
	{Code: "1", Title: "Current Assets", Level: AccountLevelGroup, Type: AccountTypeAsset, System: true},
	{Code: "11", Title: "Cash and Bank", Level: AccountLevelClass, ParentCode: "1", Type: AccountTypeAsset, System: true},
	{Code: "111", Title: "Cash", Level: AccountLevelLedger, ParentCode: "11", Type: AccountTypeAsset, System: true},
	{Code: "1111", Title: "Cash in Hand", Level: AccountLevelDetail, ParentCode: "111", Type: AccountTypeAsset, System: true},
	{Code: "1112", Title: "Bank Accounts", Level: AccountLevelDetail, ParentCode: "111", Type: AccountTypeAsset, System: true},
	{Code: "1113", Title: "Petty Cash", Level: AccountLevelDetail, ParentCode: "111", Type: AccountTypeAsset, System: true},
	{Code: "112", Title: "Receivables", Level: AccountLevelLedger, ParentCode: "11", Type: AccountTypeAsset, System: true},
	{Code: "1121", Title: "Accounts Receivable", Level: AccountLevelDetail, ParentCode: "112", Type: AccountTypeAsset, System: true},
	{Code: "1122", Title: "Checks Receivable", Level: AccountLevelDetail, ParentCode: "112", Type: AccountTypeAsset, System: true},
	{Code: "113", Title: "Inventory", Level: AccountLevelLedger, ParentCode: "11", Type: AccountTypeAsset, System: true},
	{Code: "1131", Title: "Merchandise Inventory", Level: AccountLevelDetail, ParentCode: "113", Type: AccountTypeAsset, System: true},
	// 2 non-current assets
	{Code: "2", Title: "Non-current Assets", Level: AccountLevelGroup, Type: AccountTypeAsset, System: true},
	{Code: "21", Title: "Fixed Assets", Level: AccountLevelClass, ParentCode: "2", Type: AccountTypeAsset, System: true},
	{Code: "211", Title: "Tangible Fixed Assets", Level: AccountLevelLedger, ParentCode: "21", Type: AccountTypeAsset, System: true},
	{Code: "2111", Title: "Equipment", Level: AccountLevelDetail, ParentCode: "211", Type: AccountTypeAsset, System: true},
	{Code: "2112", Title: "Accumulated Depreciation", Level: AccountLevelDetail, ParentCode: "211", Type: AccountTypeAsset, System: true},
	// 3 current liabilities
	{Code: "3", Title: "Current Liabilities", Level: AccountLevelGroup, Type: AccountTypeLiability, System: true},
	{Code: "31", Title: "Payables", Level: AccountLevelClass, ParentCode: "3", Type: AccountTypeLiability, System: true},
	{Code: "311", Title: "Trade Payables", Level: AccountLevelLedger, ParentCode: "31", Type: AccountTypeLiability, System: true},
	{Code: "3111", Title: "Accounts Payable", Level: AccountLevelDetail, ParentCode: "311", Type: AccountTypeLiability, System: true},
	{Code: "3112", Title: "Checks Payable", Level: AccountLevelDetail, ParentCode: "311", Type: AccountTypeLiability, System: true},
	{Code: "3113", Title: "Tax Payable", Level: AccountLevelDetail, ParentCode: "311", Type: AccountTypeLiability, System: true},
	// 4 non-current liabilities
	{Code: "4", Title: "Non-current Liabilities", Level: AccountLevelGroup, Type: AccountTypeLiability, System: true},
	{Code: "41", Title: "Long-term Payables", Level: AccountLevelClass, ParentCode: "4", Type: AccountTypeLiability, System: true},
	{Code: "411", Title: "Long-term Loans", Level: AccountLevelLedger, ParentCode: "41", Type: AccountTypeLiability, System: true},
	{Code: "4111", Title: "Bank Loans", Level: AccountLevelDetail, ParentCode: "411", Type: AccountTypeLiability, System: true},
	// 5 equity
	{Code: "5", Title: "Equity", Level: AccountLevelGroup, Type: AccountTypeEquity, System: true},
	{Code: "51", Title: "Owner Equity", Level: AccountLevelClass, ParentCode: "5", Type: AccountTypeEquity, System: true},
	{Code: "511", Title: "Capital and Earnings", Level: AccountLevelLedger, ParentCode: "51", Type: AccountTypeEquity, System: true},
	{Code: "5111", Title: "Capital", Level: AccountLevelDetail, ParentCode: "511", Type: AccountTypeEquity, System: true},
	{Code: "5112", Title: "Retained Earnings", Level: AccountLevelDetail, ParentCode: "511", Type: AccountTypeEquity, System: true},
	// 6 income
	{Code: "6", Title: "Income", Level: AccountLevelGroup, Type: AccountTypeIncome, System: true},
	{Code: "61", Title: "Operating Income", Level: AccountLevelClass, ParentCode: "6", Type: AccountTypeIncome, System: true},
	{Code: "611", Title: "Sales", Level: AccountLevelLedger, ParentCode: "61", Type: AccountTypeIncome, System: true},
	{Code: "6111", Title: "Sales Revenue", Level: AccountLevelDetail, ParentCode: "611", Type: AccountTypeIncome, System: true},
	{Code: "6112", Title: "Service Revenue", Level: AccountLevelDetail, ParentCode: "611", Type: AccountTypeIncome, System: true},
	{Code: "612", Title: "Other Income", Level: AccountLevelLedger, ParentCode: "61", Type: AccountTypeIncome, System: true},
	{Code: "6121", Title: "Miscellaneous Income", Level: AccountLevelDetail, ParentCode: "612", Type: AccountTypeIncome, System: true},
	// 7 expense
	{Code: "7", Title: "Expenses", Level: AccountLevelGroup, Type: AccountTypeExpense, System: true},
	{Code: "71", Title: "Operating Expenses", Level: AccountLevelClass, ParentCode: "7", Type: AccountTypeExpense, System: true},
	{Code: "711", Title: "Cost of Sales", Level: AccountLevelLedger, ParentCode: "71", Type: AccountTypeExpense, System: true},
	{Code: "7111", Title: "Cost of Goods Sold", Level: AccountLevelDetail, ParentCode: "711", Type: AccountTypeExpense, System: true},
	{Code: "712", Title: "General Expenses", Level: AccountLevelLedger, ParentCode: "71", Type: AccountTypeExpense, System: true},
	{Code: "7121", Title: "Salaries Expense", Level: AccountLevelDetail, ParentCode: "712", Type: AccountTypeExpense, System: true},
	{Code: "7122", Title: "Bank Fees", Level: AccountLevelDetail, ParentCode: "712", Type: AccountTypeExpense, System: true},
}

// SeedChartOfAccounts bootstraps the default hierarchy into a fiscal year
// and returns the count of newly created accounts. Codes that already
// exist are skipped, but their ids still enter the code map so descendants
// resolve; re-running against a seeded year creates nothing.
func SeedChartOfAccounts(ctx context.Context, fiscalYearId int) (int, error) {

	if err := utils.ValidateResourceId[FiscalYear](ctx, fiscalYearId); err != nil {
		return 0, utils.ValidationError("fiscal year not found")
	}

	db := config.GetDB()

	var existing []*ChartAccount
	if err := db.WithContext(ctx).
		Select("id", "code").
		Where("fiscal_year_id = ?", fiscalYearId).
		Find(&existing).Error; err != nil {
		return 0, err
	}
	codeToId := make(map[string]int, len(defaultChartAccounts))
	for _, acc := range existing {
		codeToId[acc.Code] = acc.ID
	}

	created := 0
	tx := db.Begin()
	for i, item := range defaultChartAccounts {
		if _, ok := codeToId[item.Code]; ok {
			continue
		}
		system := item.System
		account := ChartAccount{
			FiscalYearId: fiscalYearId,
			Code:         item.Code,
			Title:        item.Title,
			Level:        item.Level,
			ParentId:     codeToId[item.ParentCode],
			AccountType:  item.Type,
			IsSystem:     &system,
			SortOrder:    i + 1,
		}
		if err := tx.WithContext(ctx).Create(&account).Error; err != nil {
			tx.Rollback()
			return 0, err
		}
		codeToId[item.Code] = account.ID
		created++
	}
	if err := tx.Commit().Error; err != nil {
		return 0, err
	}
	return created, nil
}
