package models

import (
	"context"
	"sort"
	"time"

	"github.com/sabaerp/saba_backend/config"
	"github.com/sabaerp/saba_backend/utils"
	"github.com/shopspring/decimal"
)

// The ledger is derived: only lines of posted entries affect balances.
// Totals are summed in Go on decimal values, not in SQL, so aggregation
// never drifts through float arithmetic.

type LedgerRow struct {
	EntryId     int             `json:"entry_id"`
	VoucherNo   int64           `json:"voucher_no"`
	VoucherDate time.Time       `json:"voucher_date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

type AccountTurnover struct {
	AccountId     int             `json:"account_id"`
	Rows          []*LedgerRow    `json:"rows"`
	DebitTotal    decimal.Decimal `json:"debit_total"`
	CreditTotal   decimal.Decimal `json:"credit_total"`
	BalanceDebit  decimal.Decimal `json:"balance_debit"`
	BalanceCredit decimal.Decimal `json:"balance_credit"`
}

type OpeningBalance struct {
	AccountId     int             `json:"account_id"`
	DebitTotal    decimal.Decimal `json:"debit_total"`
	CreditTotal   decimal.Decimal `json:"credit_total"`
	BalanceDebit  decimal.Decimal `json:"balance_debit"`
	BalanceCredit decimal.Decimal `json:"balance_credit"`
}

type TrialBalanceRow struct {
	AccountId     int             `json:"account_id"`
	Code          string          `json:"code"`
	Title         string          `json:"title"`
	AccountType   AccountType     `json:"account_type"`
	DebitTotal    decimal.Decimal `json:"debit_total"`
	CreditTotal   decimal.Decimal `json:"credit_total"`
	BalanceDebit  decimal.Decimal `json:"balance_debit"`
	BalanceCredit decimal.Decimal `json:"balance_credit"`
}

// splitBalance puts the net of debit-credit on its natural side; at most
// one of the returned values is non-zero.
func splitBalance(debit, credit decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	diff := debit.Sub(credit)
	if diff.IsNegative() {
		return decimal.Zero, diff.Abs()
	}
	return diff, decimal.Zero
}

// GetAccountTurnover returns the posted lines of one account within the
// date window plus totals and the signed balance split.
func GetAccountTurnover(ctx context.Context, accountId int, fiscalYearId int, dateFrom, dateTo time.Time) (*AccountTurnover, error) {

	if err := utils.ValidateResourceId[ChartAccount](ctx, accountId); err != nil {
		return nil, err
	}

	db := config.GetDB()
	var rows []*LedgerRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			je.id AS entry_id,
			je.voucher_no,
			je.voucher_date,
			jl.description,
			jl.debit,
			jl.credit
		FROM journal_lines AS jl
		JOIN journal_entries AS je ON jl.entry_id = je.id
		WHERE jl.account_id = ?
			AND je.fiscal_year_id = ?
			AND je.status = ?
			AND je.voucher_date BETWEEN ? AND ?
		ORDER BY je.voucher_date, je.voucher_no, jl.sort_order`,
		accountId, fiscalYearId, JournalStatusPosted, dateFrom, dateTo).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	turnover := AccountTurnover{
		AccountId:   accountId,
		Rows:        rows,
		DebitTotal:  decimal.Zero,
		CreditTotal: decimal.Zero,
	}
	for _, r := range rows {
		turnover.DebitTotal = turnover.DebitTotal.Add(r.Debit)
		turnover.CreditTotal = turnover.CreditTotal.Add(r.Credit)
	}
	turnover.BalanceDebit, turnover.BalanceCredit = splitBalance(turnover.DebitTotal, turnover.CreditTotal)
	return &turnover, nil
}

// GetOpeningBalance aggregates posted lines strictly before beforeDate.
func GetOpeningBalance(ctx context.Context, accountId int, fiscalYearId int, beforeDate time.Time) (*OpeningBalance, error) {

	if err := utils.ValidateResourceId[ChartAccount](ctx, accountId); err != nil {
		return nil, err
	}

	db := config.GetDB()
	var rows []*LedgerRow
	err := db.WithContext(ctx).Raw(`
		SELECT jl.debit, jl.credit
		FROM journal_lines AS jl
		JOIN journal_entries AS je ON jl.entry_id = je.id
		WHERE jl.account_id = ?
			AND je.fiscal_year_id = ?
			AND je.status = ?
			AND je.voucher_date < ?`,
		accountId, fiscalYearId, JournalStatusPosted, beforeDate).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	opening := OpeningBalance{
		AccountId:   accountId,
		DebitTotal:  decimal.Zero,
		CreditTotal: decimal.Zero,
	}
	for _, r := range rows {
		opening.DebitTotal = opening.DebitTotal.Add(r.Debit)
		opening.CreditTotal = opening.CreditTotal.Add(r.Credit)
	}
	opening.BalanceDebit, opening.BalanceCredit = splitBalance(opening.DebitTotal, opening.CreditTotal)
	return &opening, nil
}

type ledgerScanRow struct {
	AccountId   int             `json:"account_id"`
	Code        string          `json:"code"`
	Title       string          `json:"title"`
	AccountType AccountType     `json:"account_type"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// GetTrialBalance returns one row per account with non-zero activity in
// the range, ordered by code.
func GetTrialBalance(ctx context.Context, fiscalYearId int, dateFrom, dateTo time.Time) ([]*TrialBalanceRow, error) {

	db := config.GetDB()
	var scanned []*ledgerScanRow
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
			AND je.voucher_date BETWEEN ? AND ?`,
		fiscalYearId, JournalStatusPosted, dateFrom, dateTo).
		Scan(&scanned).Error
	if err != nil {
		return nil, err
	}

	byAccount := make(map[int]*TrialBalanceRow)
	for _, r := range scanned {
		row, ok := byAccount[r.AccountId]
		if !ok {
			row = &TrialBalanceRow{
				AccountId:   r.AccountId,
				Code:        r.Code,
				Title:       r.Title,
				AccountType: r.AccountType,
				DebitTotal:  decimal.Zero,
				CreditTotal: decimal.Zero,
			}
			byAccount[r.AccountId] = row
		}
		row.DebitTotal = row.DebitTotal.Add(r.Debit)
		row.CreditTotal = row.CreditTotal.Add(r.Credit)
	}

	results := make([]*TrialBalanceRow, 0, len(byAccount))
	for _, row := range byAccount {
		if row.DebitTotal.IsZero() && row.CreditTotal.IsZero() {
			continue
		}
		row.BalanceDebit, row.BalanceCredit = splitBalance(row.DebitTotal, row.CreditTotal)
		results = append(results, row)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Code < results[j].Code })
	return results, nil
}
