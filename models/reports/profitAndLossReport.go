package reports

import (
	"context"
	"sort"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/models"
	"github.com/shopspring/decimal"
)

type ProfitAndLossRow struct {
	AccountId int             `json:"account_id"`
	Code      string          `json:"code"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
}

type ProfitAndLossResponse struct {
	DateFrom     time.Time           `json:"date_from"`
	DateTo       time.Time           `json:"date_to"`
	IncomeRows   []*ProfitAndLossRow `json:"income_rows"`
	ExpenseRows  []*ProfitAndLossRow `json:"expense_rows"`
	IncomeTotal  decimal.Decimal     `json:"income_total"`
	ExpenseTotal decimal.Decimal     `json:"expense_total"`
	Net          decimal.Decimal     `json:"net"`
}

type profitAndLossScanRow struct {
	AccountId   int                `json:"account_id"`
	Code        string             `json:"code"`
	Title       string             `json:"title"`
	AccountType models.AccountType `json:"account_type"`
	Debit       decimal.Decimal    `json:"debit"`
	Credit      decimal.Decimal    `json:"credit"`
}

// GetProfitAndLossReport aggregates posted income and expense lines in
// the window. Income rows carry credit-debit, expense rows debit-credit;
// net is income total minus expense total.
func GetProfitAndLossReport(ctx context.Context, fiscalYearId int, dateFrom, dateTo time.Time) (*ProfitAndLossResponse, error) {

	db := config.GetDB()
	var scanned []*profitAndLossScanRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			jl.account_id,
			ca.code,
			ca.title,
			ca.account_type,
			jl.debit,
			jl.credit
		FROM journal_lines AS jl
		JOIN journal_entries AS je ON jl.entry_id = je.id
		JOIN chart_accounts AS ca ON jl.account_id = ca.id
		WHERE je.fiscal_year_id = ?
			AND je.status = ?
			AND je.voucher_date BETWEEN ? AND ?
			AND ca.account_type IN (?, ?)`,
		fiscalYearId, models.JournalStatusPosted, dateFrom, dateTo,
		models.AccountTypeIncome, models.AccountTypeExpense).
		Scan(&scanned).Error
	if err != nil {
		return nil, err
	}

	type accumulated struct {
		row         *ProfitAndLossRow
		accountType models.AccountType
		debit       decimal.Decimal
		credit      decimal.Decimal
	}
	byAccount := make(map[int]*accumulated)
	for _, r := range scanned {
		acc, ok := byAccount[r.AccountId]
		if !ok {
			acc = &accumulated{
				row: &ProfitAndLossRow{
					AccountId: r.AccountId,
					Code:      r.Code,
					Title:     r.Title,
				},
				accountType: r.AccountType,
				debit:       decimal.Zero,
				credit:      decimal.Zero,
			}
			byAccount[r.AccountId] = acc
		}
		acc.debit = acc.debit.Add(r.Debit)
		acc.credit = acc.credit.Add(r.Credit)
	}

	response := ProfitAndLossResponse{
		DateFrom:     dateFrom,
		DateTo:       dateTo,
		IncomeRows:   []*ProfitAndLossRow{},
		ExpenseRows:  []*ProfitAndLossRow{},
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
	}
	for _, acc := range byAccount {
		if acc.accountType == models.AccountTypeIncome {
			acc.row.Amount = acc.credit.Sub(acc.debit)
			response.IncomeRows = append(response.IncomeRows, acc.row)
			response.IncomeTotal = response.IncomeTotal.Add(acc.row.Amount)
		} else {
			acc.row.Amount = acc.debit.Sub(acc.credit)
			response.ExpenseRows = append(response.ExpenseRows, acc.row)
			response.ExpenseTotal = response.ExpenseTotal.Add(acc.row.Amount)
		}
	}
	response.Net = response.IncomeTotal.Sub(response.ExpenseTotal)

	sort.Slice(response.IncomeRows, func(i, j int) bool { return response.IncomeRows[i].Code < response.IncomeRows[j].Code })
	sort.Slice(response.ExpenseRows, func(i, j int) bool { return response.ExpenseRows[i].Code < response.ExpenseRows[j].Code })
	return &response, nil
}
