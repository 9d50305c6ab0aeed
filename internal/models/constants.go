package models

import "strings"

// TransactionType tells whether a transaction adds to or subtracts from the balance.
type TransactionType string

// Transaction types
const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// ParseTransactionType accepts the canonical names case-insensitively,
// plus the Portuguese labels used in the interface ("receita", "despesa").
func ParseTransactionType(s string) (TransactionType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "receita", "entrada":
		return TransactionTypeIncome, true
	case "expense", "despesa", "saida", "saída":
		return TransactionTypeExpense, true
	}
	return "", false
}

// CategoryGroup classifies categories for the income statement.
// The values are the labels persisted in storage and backups.
type CategoryGroup string

// Category groups
const (
	GroupRevenue          CategoryGroup = "Receita"
	GroupCOGS             CategoryGroup = "Custos de Venda"
	GroupOperatingExpense CategoryGroup = "Despesa Operacional"
	GroupFinancial        CategoryGroup = "Financeiro"
	GroupAsset            CategoryGroup = "Ativo"
	GroupLiability        CategoryGroup = "Passivo"
)

var groupKeys = map[string]CategoryGroup{
	"REVENUE":           GroupRevenue,
	"COGS":              GroupCOGS,
	"OPERATING_EXPENSE": GroupOperatingExpense,
	"OPEX":              GroupOperatingExpense,
	"FINANCIAL":         GroupFinancial,
	"ASSET":             GroupAsset,
	"LIABILITY":         GroupLiability,
}

// CategoryGroups returns every group in display order.
func CategoryGroups() []CategoryGroup {
	return []CategoryGroup{
		GroupRevenue,
		GroupCOGS,
		GroupOperatingExpense,
		GroupFinancial,
		GroupAsset,
		GroupLiability,
	}
}

// Valid reports whether g is one of the known groups.
func (g CategoryGroup) Valid() bool {
	for _, known := range CategoryGroups() {
		if g == known {
			return true
		}
	}
	return false
}

// ParseCategoryGroup resolves either a stored label ("Custos de Venda") or an
// enumeration key ("COGS", "operating_expense").
func ParseCategoryGroup(s string) (CategoryGroup, bool) {
	trimmed := strings.TrimSpace(s)
	if g, ok := groupKeys[strings.ToUpper(trimmed)]; ok {
		return g, true
	}
	for _, known := range CategoryGroups() {
		if strings.EqualFold(trimmed, string(known)) {
			return known, true
		}
	}
	return "", false
}

// Storage keys, one per collection.
const (
	KeyTransactions = "vx-transactions"
	KeyClients      = "vx-clients"
	KeyProjects     = "vx-projects"
	KeyCategories   = "vx-categories"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionDataFile   = 0644
)
