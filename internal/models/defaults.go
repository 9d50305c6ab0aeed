package models

import "github.com/shopspring/decimal"

// DefaultCategories returns the seed category set used on first start and after a reset.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Vendas Diretas", Group: GroupRevenue},
		{Name: "Serviços", Group: GroupRevenue},
		{Name: "Infraestrutura", Group: GroupCOGS},
		{Name: "Folha de Pagamento", Group: GroupOperatingExpense},
		{Name: "Aluguel & Escritório", Group: GroupOperatingExpense},
		{Name: "Publicidade", Group: GroupOperatingExpense},
		{Name: "Impostos", Group: GroupOperatingExpense},
		{Name: "Juros & Taxas", Group: GroupFinancial},
	}
}

// SampleTransactions returns the demonstration ledger loaded when storage is empty.
func SampleTransactions() []Transaction {
	return []Transaction{
		{ID: "1", Date: "2024-03-01", Description: "Venda de Software VX", Amount: decimal.NewFromInt(15000), Type: TransactionTypeIncome, Category: "Vendas Diretas", Group: GroupRevenue},
		{ID: "2", Date: "2024-03-05", Description: "Servidores AWS", Amount: decimal.NewFromInt(1200), Type: TransactionTypeExpense, Category: "Infraestrutura", Group: GroupCOGS},
		{ID: "3", Date: "2024-03-10", Description: "Salários Equipe Dev", Amount: decimal.NewFromInt(8000), Type: TransactionTypeExpense, Category: "Folha de Pagamento", Group: GroupOperatingExpense},
		{ID: "4", Date: "2024-03-15", Description: "Marketing Digital", Amount: decimal.NewFromInt(2500), Type: TransactionTypeExpense, Category: "Publicidade", Group: GroupOperatingExpense},
	}
}

// DefaultState returns the state used when nothing has been persisted yet.
func DefaultState(withSample bool) AppState {
	state := AppState{
		Transactions: []Transaction{},
		Clients:      []Client{},
		Projects:     []Project{},
		Categories:   DefaultCategories(),
	}
	if withSample {
		state.Transactions = SampleTransactions()
	}
	return state
}
