package models

// Closed status/type sets. Stored as short strings; every write path
// validates membership so illegal values never reach the database.

type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
)

func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// chart account levels
const (
	AccountLevelGroup  = 1
	AccountLevelClass  = 2
	AccountLevelLedger = 3
	AccountLevelDetail = 4
)

type JournalStatus string

const (
	JournalStatusDraft  JournalStatus = "draft"
	JournalStatusPosted JournalStatus = "posted"
)

func (s JournalStatus) IsValid() bool {
	return s == JournalStatusDraft || s == JournalStatusPosted
}

type InvoiceType string

const (
	InvoiceTypeProforma InvoiceType = "proforma"
	InvoiceTypeSales    InvoiceType = "sales"
	InvoiceTypePurchase InvoiceType = "purchase"
)

func (t InvoiceType) IsValid() bool {
	switch t {
	case InvoiceTypeProforma, InvoiceTypeSales, InvoiceTypePurchase:
		return true
	}
	return false
}

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusConfirmed InvoiceStatus = "confirmed"
	InvoiceStatusReturned  InvoiceStatus = "returned"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusConfirmed, InvoiceStatusReturned:
		return true
	}
	return false
}

type VoucherType string

const (
	VoucherTypeReceipt  VoucherType = "receipt"
	VoucherTypePayment  VoucherType = "payment"
	VoucherTypeTransfer VoucherType = "transfer"
)

func (t VoucherType) IsValid() bool {
	switch t {
	case VoucherTypeReceipt, VoucherTypePayment, VoucherTypeTransfer:
		return true
	}
	return false
}

type VoucherStatus string

const (
	VoucherStatusDraft  VoucherStatus = "draft"
	VoucherStatusPosted VoucherStatus = "posted"
)

func (s VoucherStatus) IsValid() bool {
	return s == VoucherStatusDraft || s == VoucherStatusPosted
}

type CheckType string

const (
	CheckTypeReceivable CheckType = "receivable"
	CheckTypePayable    CheckType = "payable"
)

func (t CheckType) IsValid() bool {
	return t == CheckTypeReceivable || t == CheckTypePayable
}

type CheckStatus string

const (
	CheckStatusInSafe    CheckStatus = "in_safe"
	CheckStatusCollected CheckStatus = "collected"
	CheckStatusReturned  CheckStatus = "returned"
	CheckStatusSpent     CheckStatus = "spent"
)

func (s CheckStatus) IsValid() bool {
	switch s {
	case CheckStatusInSafe, CheckStatusCollected, CheckStatusReturned, CheckStatusSpent:
		return true
	}
	return false
}

type PersonType string

const (
	PersonTypeCustomer PersonType = "customer"
	PersonTypeSupplier PersonType = "supplier"
	PersonTypeBoth     PersonType = "both"
)

func (t PersonType) IsValid() bool {
	switch t {
	case PersonTypeCustomer, PersonTypeSupplier, PersonTypeBoth:
		return true
	}
	return false
}

type CashAccountType string

const (
	CashAccountTypeBank  CashAccountType = "bank"
	CashAccountTypeCash  CashAccountType = "cash"
	CashAccountTypePetty CashAccountType = "petty"
)

func (t CashAccountType) IsValid() bool {
	switch t {
	case CashAccountTypeBank, CashAccountTypeCash, CashAccountTypePetty:
		return true
	}
	return false
}
