package models

// Kind distinguishes the direction of money movement for an entry.
type Kind string

// Entry kinds.
const (
	KindIncome   Kind = "income"
	KindExpense  Kind = "expense"
	KindTransfer Kind = "transfer"
)

// Currency tags the amount semantics of an entry.
type Currency string

// Supported currencies. KRW amounts carry integer semantics, USD amounts
// carry two-decimal semantics.
const (
	CurrencyKRW Currency = "KRW"
	CurrencyUSD Currency = "USD"
)
