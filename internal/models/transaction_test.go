package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Month(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{"2024-03-01", "2024-03"},
		{"2024-12-31", "2024-12"},
		{"2024", "2024"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.date, func(t *testing.T) {
			assert.Equal(t, tc.expected, Transaction{Date: tc.date}.Month())
		})
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	income := Transaction{Amount: decimal.NewFromInt(100), Type: TransactionTypeIncome}
	expense := Transaction{Amount: decimal.NewFromInt(100), Type: TransactionTypeExpense}

	assert.True(t, income.SignedAmount().Equal(decimal.NewFromInt(100)))
	assert.True(t, expense.SignedAmount().Equal(decimal.NewFromInt(-100)))
	assert.True(t, income.IsIncome())
	assert.True(t, expense.IsExpense())
}

func TestTransaction_InMonth(t *testing.T) {
	tx := Transaction{Date: "2024-03-15"}
	assert.True(t, tx.InMonth("2024-03"))
	assert.False(t, tx.InMonth("2024-04"))
}

func TestTransaction_JSONRoundTrip(t *testing.T) {
	tx := Transaction{
		ID:          "abc",
		Date:        "2024-03-01",
		Description: "Venda",
		Amount:      decimal.RequireFromString("1234.56"),
		Type:        TransactionTypeIncome,
		Category:    "Vendas Diretas",
		Group:       GroupRevenue,
	}

	data, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"amount":1234.56`)
	assert.Contains(t, string(data), `"group":"Receita"`)
	assert.NotContains(t, string(data), "clientId")

	var decoded Transaction
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, tx.Amount.Equal(decoded.Amount))
	decoded.Amount = tx.Amount
	assert.Equal(t, tx, decoded)
}

func TestParseCategoryGroup(t *testing.T) {
	tests := []struct {
		input    string
		expected CategoryGroup
		ok       bool
	}{
		{"COGS", GroupCOGS, true},
		{"operating_expense", GroupOperatingExpense, true},
		{"opex", GroupOperatingExpense, true},
		{"Custos de Venda", GroupCOGS, true},
		{"financeiro", GroupFinancial, true},
		{"LIABILITY", GroupLiability, true},
		{"unknown", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			g, ok := ParseCategoryGroup(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, g)
		})
	}
}

func TestParseTransactionType(t *testing.T) {
	typ, ok := ParseTransactionType("INCOME")
	assert.True(t, ok)
	assert.Equal(t, TransactionTypeIncome, typ)

	typ, ok = ParseTransactionType("despesa")
	assert.True(t, ok)
	assert.Equal(t, TransactionTypeExpense, typ)

	_, ok = ParseTransactionType("transfer")
	assert.False(t, ok)

	assert.True(t, TransactionTypeIncome.Valid())
	assert.False(t, TransactionType("X").Valid())
}

func TestCategoryGroup_Valid(t *testing.T) {
	for _, g := range CategoryGroups() {
		assert.True(t, g.Valid(), string(g))
	}
	assert.False(t, CategoryGroup("REVENUE").Valid())
}

func TestDefaults(t *testing.T) {
	categories := DefaultCategories()
	assert.Len(t, categories, 8)
	assert.Equal(t, "Vendas Diretas", categories[0].Name)
	assert.Equal(t, GroupFinancial, categories[7].Group)

	sample := SampleTransactions()
	require.Len(t, sample, 4)
	assert.Equal(t, "2024-03-01", sample[0].Date)

	// Fresh slices on each call
	categories[0].Name = "changed"
	assert.Equal(t, "Vendas Diretas", DefaultCategories()[0].Name)

	empty := DefaultState(false)
	assert.Empty(t, empty.Transactions)
	assert.NotNil(t, empty.Clients)
	assert.Len(t, empty.Categories, 8)
	assert.Len(t, DefaultState(true).Transactions, 4)
}

func TestAppState_Clone(t *testing.T) {
	state := DefaultState(true)
	clone := state.Clone()
	clone.Transactions[0].Description = "changed"
	clone.Categories = append(clone.Categories, Category{Name: "Nova", Group: GroupAsset})

	assert.Equal(t, "Venda de Software VX", state.Transactions[0].Description)
	assert.Len(t, state.Categories, 8)
}
