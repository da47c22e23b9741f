// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Entry represents a single ledger entry. Entries are created by the import
// pipeline or by the recurring-expense generator and are treated as immutable
// once stored; corrections produce new values, never in-place mutation.
type Entry struct {
	ID             string          `csv:"Id" json:"id"`
	Date           string          `csv:"Date" json:"date"` // ISO YYYY-MM-DD
	Kind           Kind            `csv:"Kind" json:"kind"`
	Category       string          `csv:"Category" json:"category"`
	SubCategory    string          `csv:"SubCategory" json:"subCategory,omitempty"`
	Description    string          `csv:"Description" json:"description,omitempty"`
	Amount         decimal.Decimal `csv:"Amount" json:"amount"`
	Currency       Currency        `csv:"Currency" json:"currency,omitempty"`
	FromAccountID  string          `csv:"FromAccount" json:"fromAccountId,omitempty"`
	ToAccountID    string          `csv:"ToAccount" json:"toAccountId,omitempty"`
	IsFixedExpense bool            `csv:"FixedExpense" json:"isFixedExpense,omitempty"`
	Tags           []string        `csv:"-" json:"tags,omitempty"`
}

// IdentityKey is the semantic identity of an entry, independent of its ID.
// Two entries with the same key describe the same real-world obligation;
// the recurring generator uses this to suppress duplicates.
type IdentityKey struct {
	Date          string
	Category      string
	SubCategory   string
	Amount        string
	FromAccountID string
	ToAccountID   string
}

// Identity returns the semantic identity key of the entry.
// The amount is rendered through decimal.String so that 4500 and 4500.00
// collapse to the same key.
func (e *Entry) Identity() IdentityKey {
	return IdentityKey{
		Date:          e.Date,
		Category:      e.Category,
		SubCategory:   e.SubCategory,
		Amount:        e.Amount.String(),
		FromAccountID: e.FromAccountID,
		ToAccountID:   e.ToAccountID,
	}
}

// EffectiveCurrency returns the entry's currency tag, defaulting to KRW.
func (e *Entry) EffectiveCurrency() Currency {
	if e.Currency == "" {
		return CurrencyKRW
	}
	return e.Currency
}

// Validate checks the entry against the ledger invariants: a positive amount,
// a well-formed ISO date, a known kind, and the account references the kind
// requires. Savings-style expenses may additionally carry a ToAccountID;
// that pairing is the store's concern and is not rejected here.
func (e *Entry) Validate() error {
	if !e.Amount.IsPositive() {
		return fmt.Errorf("entry %s: amount must be positive, got %s", e.ID, e.Amount)
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("entry %s: invalid date %q: %w", e.ID, e.Date, err)
	}
	switch e.Kind {
	case KindIncome:
		if e.FromAccountID != "" {
			return fmt.Errorf("entry %s: income must not carry a from-account", e.ID)
		}
		if e.ToAccountID == "" {
			return fmt.Errorf("entry %s: income requires a to-account", e.ID)
		}
	case KindExpense:
		if e.FromAccountID == "" {
			return fmt.Errorf("entry %s: expense requires a from-account", e.ID)
		}
	case KindTransfer:
		if e.FromAccountID == "" || e.ToAccountID == "" {
			return fmt.Errorf("entry %s: transfer requires both accounts", e.ID)
		}
	default:
		return fmt.Errorf("entry %s: unknown kind %q", e.ID, e.Kind)
	}
	switch e.EffectiveCurrency() {
	case CurrencyKRW, CurrencyUSD:
	default:
		return fmt.Errorf("entry %s: unsupported currency %q", e.ID, e.Currency)
	}
	return nil
}

// FormatAmount renders the amount with the currency's native precision:
// whole won for KRW, two decimal places for USD.
func (e *Entry) FormatAmount() string {
	if e.EffectiveCurrency() == CurrencyUSD {
		return e.Amount.StringFixed(2)
	}
	return e.Amount.StringFixed(0)
}

// ParseAmount parses a string amount to decimal.Decimal, tolerating the
// formatting found in exported household-ledger files. Unparseable input
// yields decimal.Zero rather than an error; callers that care run Validate.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, ",", "")
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "₩", "")
	amount = strings.ReplaceAll(amount, "$", "")
	amount = strings.TrimSuffix(amount, "원")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
