package reports

import (
	"context"
	"sort"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/models"
	"github.com/shopspring/decimal"
)

type BalanceSheetRow struct {
	AccountId int             `json:"account_id"`
	Code      string          `json:"code"`
	Title     string          `json:"title"`
	Level     int             `json:"level"`
	Amount    decimal.Decimal `json:"amount"`
}

type BalanceSheetSection struct {
	Rows  []*BalanceSheetRow `json:"rows"`
	Total decimal.Decimal    `json:"total"`
}

type BalanceSheetResponse struct {
	AsOfDate    time.Time           `json:"as_of_date"`
	Assets      BalanceSheetSection `json:"assets"`
	Liabilities BalanceSheetSection `json:"liabilities"`
	Equity      BalanceSheetSection `json:"equity"`
}

type balanceSheetScanRow struct {
	AccountId   int                `json:"account_id"`
	Code        string             `json:"code"`
	Title       string             `json:"title"`
	Level       int                `json:"level"`
	AccountType models.AccountType `json:"account_type"`
	Debit       decimal.Decimal    `json:"debit"`
	Credit      decimal.Decimal    `json:"credit"`
}

// classifyBalanceSheet maps an account to its statement side. Accounts
// carrying an explicit type use it; untyped rows fall back to the leading
// code digit of the seeded numbering plan (1-2 asset, 3-4 liability,
// 5 equity).
func classifyBalanceSheet(accountType models.AccountType, code string) models.AccountType {
	if accountType.IsValid() {
		return accountType
	}
	if len(code) == 0 {
		return ""
	}
	switch code[0] {
	case '1', '2':
		return models.AccountTypeAsset
	case '3', '4':
		return models.AccountTypeLiability
	case '5':
		return models.AccountTypeEquity
	}
	return ""
}

// GetBalanceSheetReport computes each account's balance as of the date
// from posted journal lines and classifies rows into assets, liabilities
// and equity. Zero-balance rows below group level are suppressed.
func GetBalanceSheetReport(ctx context.Context, fiscalYearId int, asOfDate time.Time) (*BalanceSheetResponse, error) {

	db := config.GetDB()
	var scanned []*balanceSheetScanRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			jl.account_id,
			ca.code,
			ca.title,
			ca.level,
			ca.account_type,
			jl.debit,
			jl.credit
		FROM journal_lines AS jl
		JOIN journal_entries AS je ON jl.entry_id = je.id
		JOIN chart_accounts AS ca ON jl.account_id = ca.id
		WHERE je.fiscal_year_id = ?
			AND je.status = ?
			AND je.voucher_date <= ?`,
		fiscalYearId, models.JournalStatusPosted, asOfDate).
		Scan(&scanned).Error
	if err != nil {
		return nil, err
	}

	type accumulated struct {
		row    *BalanceSheetRow
		side   models.AccountType
		debit  decimal.Decimal
		credit decimal.Decimal
	}
	byAccount := make(map[int]*accumulated)
	for _, r := range scanned {
		acc, ok := byAccount[r.AccountId]
		if !ok {
			acc = &accumulated{
				row: &BalanceSheetRow{
					AccountId: r.AccountId,
					Code:      r.Code,
					Title:     r.Title,
					Level:     r.Level,
				},
				side:   classifyBalanceSheet(r.AccountType, r.Code),
				debit:  decimal.Zero,
				credit: decimal.Zero,
			}
			byAccount[r.AccountId] = acc
		}
		acc.debit = acc.debit.Add(r.Debit)
		acc.credit = acc.credit.Add(r.Credit)
	}

	response := BalanceSheetResponse{
		AsOfDate:    asOfDate,
		Assets:      BalanceSheetSection{Rows: []*BalanceSheetRow{}, Total: decimal.Zero},
		Liabilities: BalanceSheetSection{Rows: []*BalanceSheetRow{}, Total: decimal.Zero},
		Equity:      BalanceSheetSection{Rows: []*BalanceSheetRow{}, Total: decimal.Zero},
	}
	for _, acc := range byAccount {
		var section *BalanceSheetSection
		switch acc.side {
		case models.AccountTypeAsset:
			acc.row.Amount = acc.debit.Sub(acc.credit)
			section = &response.Assets
		case models.AccountTypeLiability:
			acc.row.Amount = acc.credit.Sub(acc.debit)
			section = &response.Liabilities
		case models.AccountTypeEquity:
			acc.row.Amount = acc.credit.Sub(acc.debit)
			section = &response.Equity
		default:
			// income/expense balances belong to the profit and loss
			continue
		}
		if acc.row.Amount.IsZero() && acc.row.Level != models.AccountLevelGroup {
			continue
		}
		section.Rows = append(section.Rows, acc.row)
		section.Total = section.Total.Add(acc.row.Amount)
	}

	for _, section := range []*BalanceSheetSection{&response.Assets, &response.Liabilities, &response.Equity} {
		rows := section.Rows
		sort.Slice(rows, func(i, j int) bool { return rows[i].Code < rows[j].Code })
	}
	return &response, nil
}
