// Package report derives the ledger summaries (monthly breakdown, totals,
// category breakdown and the DRE income statement) and renders them for export.
//
// Every function here is a pure fold over a transaction snapshot and is
// recomputed on each call.
package report

import (
	"sort"

	"fjacquet/vx-finance/internal/models"

	"github.com/shopspring/decimal"
)

// AllMonths is the month filter selecting every transaction.
const AllMonths = "all"

// MonthlySummary accumulates the transactions of one YYYY-MM month.
type MonthlySummary struct {
	Month   string          `json:"month" yaml:"month" csv:"Month"`
	Income  decimal.Decimal `json:"income" yaml:"income" csv:"Income"`
	Expense decimal.Decimal `json:"expense" yaml:"expense" csv:"Expense"`
	Count   int             `json:"count" yaml:"count" csv:"Count"`
}

// Totals holds the global income and expense sums.
type Totals struct {
	Income   decimal.Decimal `json:"income" yaml:"income"`
	Expenses decimal.Decimal `json:"expenses" yaml:"expenses"`
	Balance  decimal.Decimal `json:"balance" yaml:"balance"`
}

// DRETotals holds the sums behind the income statement for one month filter.
// COGS, Operating and Financial are summed by group regardless of type.
type DRETotals struct {
	Income    decimal.Decimal `json:"income" yaml:"income"`
	Expenses  decimal.Decimal `json:"expenses" yaml:"expenses"`
	COGS      decimal.Decimal `json:"cogs" yaml:"cogs"`
	Operating decimal.Decimal `json:"operating" yaml:"operating"`
	Financial decimal.Decimal `json:"financial" yaml:"financial"`
	Balance   decimal.Decimal `json:"balance" yaml:"balance"`
	Count     int             `json:"count" yaml:"count"`
}

// CategoryTotal is the expense sum of one category.
type CategoryTotal struct {
	Category string          `json:"category" yaml:"category" csv:"Category"`
	Total    decimal.Decimal `json:"total" yaml:"total" csv:"Total"`
}

// MonthlyBreakdown groups transactions by month, newest month first.
func MonthlyBreakdown(transactions []models.Transaction) []MonthlySummary {
	byMonth := make(map[string]*MonthlySummary)
	for _, t := range transactions {
		key := t.Month()
		summary, ok := byMonth[key]
		if !ok {
			summary = &MonthlySummary{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = summary
		}
		switch {
		case t.IsIncome():
			summary.Income = summary.Income.Add(t.Amount)
		case t.IsExpense():
			summary.Expense = summary.Expense.Add(t.Amount)
		}
		summary.Count++
	}

	out := make([]MonthlySummary, 0, len(byMonth))
	for _, s := range byMonth {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out
}

// ComputeTotals sums income and expenses over all transactions.
func ComputeTotals(transactions []models.Transaction) Totals {
	totals := Totals{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, t := range transactions {
		switch {
		case t.IsIncome():
			totals.Income = totals.Income.Add(t.Amount)
		case t.IsExpense():
			totals.Expenses = totals.Expenses.Add(t.Amount)
		}
	}
	totals.Balance = totals.Income.Sub(totals.Expenses)
	return totals
}

// ComputeDRETotals sums the transactions whose date starts with month, or all
// transactions when month is AllMonths.
func ComputeDRETotals(transactions []models.Transaction, month string) DRETotals {
	totals := DRETotals{
		Income:    decimal.Zero,
		Expenses:  decimal.Zero,
		COGS:      decimal.Zero,
		Operating: decimal.Zero,
		Financial: decimal.Zero,
	}
	for _, t := range transactions {
		if month != AllMonths && !t.InMonth(month) {
			continue
		}
		totals.Count++

		switch {
		case t.IsIncome():
			totals.Income = totals.Income.Add(t.Amount)
		case t.IsExpense():
			totals.Expenses = totals.Expenses.Add(t.Amount)
		}

		switch t.Group {
		case models.GroupCOGS:
			totals.COGS = totals.COGS.Add(t.Amount)
		case models.GroupOperatingExpense:
			totals.Operating = totals.Operating.Add(t.Amount)
		case models.GroupFinancial:
			totals.Financial = totals.Financial.Add(t.Amount)
		}
	}
	totals.Balance = totals.Income.Sub(totals.Expenses)
	return totals
}

// CategoryExpenseBreakdown sums expense amounts per category, in the order
// each category first appears in transactions.
func CategoryExpenseBreakdown(transactions []models.Transaction) []CategoryTotal {
	index := make(map[string]int)
	var out []CategoryTotal
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, CategoryTotal{Category: t.Category, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(t.Amount)
	}
	return out
}

// Months returns the distinct month keys present in transactions, newest first.
func Months(transactions []models.Transaction) []string {
	seen := make(map[string]struct{})
	var months []string
	for _, t := range transactions {
		key := t.Month()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		months = append(months, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}
