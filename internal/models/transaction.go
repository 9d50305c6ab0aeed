// Package models provides the data structures used throughout the application.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Backups store amounts as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction represents a single income or expense entry of the ledger.
//
// Amount is always a non-negative magnitude; the sign is carried by Type.
// Group is a snapshot of the category group taken when the transaction was
// written and is never recomputed from the current category list.
type Transaction struct {
	ID          string          `json:"id" yaml:"id" csv:"ID"`
	Date        string          `json:"date" yaml:"date" csv:"Date"` // YYYY-MM-DD
	Description string          `json:"description" yaml:"description" csv:"Description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount" csv:"Amount"`
	Type        TransactionType `json:"type" yaml:"type" csv:"Type"`
	Category    string          `json:"category" yaml:"category" csv:"Category"`
	Group       CategoryGroup   `json:"group" yaml:"group" csv:"Group"`
	ClientID    string          `json:"clientId,omitempty" yaml:"clientId,omitempty" csv:"ClientID"`
	ProjectID   string          `json:"projectId,omitempty" yaml:"projectId,omitempty" csv:"ProjectID"`
}

// Month returns the YYYY-MM grouping key of the transaction date.
func (t Transaction) Month() string {
	return MonthKey(t.Date)
}

// IsIncome reports whether the transaction is an income entry.
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense reports whether the transaction is an expense entry.
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// SignedAmount returns the amount with the sign implied by the transaction type.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// InMonth reports whether the transaction date starts with the given month prefix.
func (t Transaction) InMonth(month string) bool {
	return strings.HasPrefix(t.Date, month)
}

// MonthKey returns the first seven characters of an ISO date (YYYY-MM).
func MonthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
