package report

import (
	"encoding/xml"

	"fjacquet/vx-finance/internal/currencyutils"
	"fjacquet/vx-finance/internal/dateutils"
	"fjacquet/vx-finance/internal/models"

	"github.com/shopspring/decimal"
)

// ConsolidatedLabel names the statement covering every month.
const ConsolidatedLabel = "Consolidado"

// EstimatedTaxRate is the flat tax rate, in percent, applied to gross revenue.
var EstimatedTaxRate = decimal.NewFromInt(6)

// Statement is the DRE (Demonstrativo de Resultado do Exercício) for a month
// filter, with the derived presentation values.
type Statement struct {
	XMLName xml.Name `json:"-" yaml:"-" xml:"statement"`

	Period      string `json:"period" yaml:"period" xml:"period"`
	PeriodLabel string `json:"periodLabel" yaml:"periodLabel" xml:"periodLabel"`

	GrossRevenue      decimal.Decimal `json:"grossRevenue" yaml:"grossRevenue" xml:"grossRevenue"`
	EstimatedTax      decimal.Decimal `json:"estimatedTax" yaml:"estimatedTax" xml:"estimatedTax"`
	NetRevenue        decimal.Decimal `json:"netRevenue" yaml:"netRevenue" xml:"netRevenue"`
	COGS              decimal.Decimal `json:"cogs" yaml:"cogs" xml:"cogs"`
	GrossProfit       decimal.Decimal `json:"grossProfit" yaml:"grossProfit" xml:"grossProfit"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses" yaml:"operatingExpenses" xml:"operatingExpenses"`
	FinancialResult   decimal.Decimal `json:"financialResult" yaml:"financialResult" xml:"financialResult"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses" yaml:"totalExpenses" xml:"totalExpenses"`
	NetResult         decimal.Decimal `json:"netResult" yaml:"netResult" xml:"netResult"`
	NetMargin         decimal.Decimal `json:"netMargin" yaml:"netMargin" xml:"netMargin"`
	TransactionCount  int             `json:"transactionCount" yaml:"transactionCount" xml:"transactionCount"`
}

// StatementLine is one labelled row of a rendered statement.
type StatementLine struct {
	Label     string `csv:"Linha"`
	Amount    string `csv:"Valor"`
	Formatted string `csv:"Formatado"`
}

// NewStatement computes the DRE for month, which is a YYYY-MM key or AllMonths.
func NewStatement(transactions []models.Transaction, month string) Statement {
	totals := ComputeDRETotals(transactions, month)
	netRevenue := currencyutils.AmountExcludingTax(totals.Income, EstimatedTaxRate)

	return Statement{
		Period:            month,
		PeriodLabel:       PeriodLabel(month),
		GrossRevenue:      totals.Income,
		EstimatedTax:      currencyutils.CalculateTaxAmount(totals.Income, EstimatedTaxRate),
		NetRevenue:        netRevenue,
		COGS:              totals.COGS,
		GrossProfit:       netRevenue.Sub(totals.COGS),
		OperatingExpenses: totals.Operating,
		FinancialResult:   totals.Financial,
		TotalExpenses:     totals.Expenses,
		NetResult:         totals.Balance,
		NetMargin:         currencyutils.Percentage(totals.Balance, totals.Income),
		TransactionCount:  totals.Count,
	}
}

// PeriodLabel renders a month filter for display.
func PeriodLabel(month string) string {
	if month == AllMonths || month == "" {
		return ConsolidatedLabel
	}
	return dateutils.FormatMonth(month)
}

// PeriodToken is the filter part of export file names.
func PeriodToken(month string) string {
	if month == AllMonths || month == "" {
		return ConsolidatedLabel
	}
	return month
}

// Lines returns the statement rows in DRE order.
func (s Statement) Lines() []StatementLine {
	rows := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Receita Bruta", s.GrossRevenue},
		{"(-) Impostos Estimados", s.EstimatedTax.Neg()},
		{"Receita Líquida", s.NetRevenue},
		{"(-) Custos de Venda", s.COGS.Neg()},
		{"Lucro Bruto", s.GrossProfit},
		{"(-) Despesas Operacionais", s.OperatingExpenses.Neg()},
		{"(-) Resultado Financeiro", s.FinancialResult.Neg()},
		{"Resultado Líquido", s.NetResult},
	}

	lines := make([]StatementLine, 0, len(rows)+1)
	for _, r := range rows {
		lines = append(lines, StatementLine{
			Label:     r.label,
			Amount:    r.amount.StringFixed(2),
			Formatted: currencyutils.FormatCurrency(r.amount),
		})
	}
	lines = append(lines, StatementLine{
		Label:     "Margem Líquida",
		Amount:    s.NetMargin.StringFixed(1),
		Formatted: s.NetMargin.StringFixed(1) + "%",
	})
	return lines
}
