// Package currencyutils provides the Brazilian Real currency codec: masked input
// parsing, display formatting and the tax helpers used by the income statement.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"fjacquet/vx-finance/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// Symbol is the currency symbol of the application's fixed currency (BRL).
	Symbol = "R$"

	// symbolSeparator matches the non-breaking space used by pt-BR currency formatting.
	symbolSeparator = "\u00a0"

	thousandsSeparator = "."
	decimalSeparator   = ","
)

var (
	nonDigits      = regexp.MustCompile(`\D`)
	currencyTokens = regexp.MustCompile(`(?i)R\$|BRL|[\s\x{00a0}]`)
	hundred        = decimal.NewFromInt(100)
)

// ParseMaskedAmount converts a masked input ("R$ 1.234,56", "123456") into its
// decimal value. Every non-digit character is dropped and the remaining digits
// are read as cents. Input without digits yields zero.
func ParseMaskedAmount(masked string) decimal.Decimal {
	digits := nonDigits.ReplaceAllString(masked, "")
	if digits == "" {
		return decimal.Zero
	}
	cents, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero
	}
	return cents.Shift(-2)
}

// FormatMasked re-derives the digits of raw the same way ParseMaskedAmount does
// and formats them as currency, prefixing "-" for expenses. Input without digits
// yields an empty string so the caller can show a placeholder instead of zero.
func FormatMasked(raw string, txType models.TransactionType) string {
	if nonDigits.ReplaceAllString(raw, "") == "" {
		return ""
	}
	formatted := FormatCurrency(ParseMaskedAmount(raw))
	if txType == models.TransactionTypeExpense {
		return "-" + formatted
	}
	return formatted
}

// MaskedFromAmount expands a stored amount back to masked form for editing.
// The amount is scaled to cents and rounded, then fed through FormatMasked.
func MaskedFromAmount(amount decimal.Decimal, txType models.TransactionType) string {
	cents := amount.Mul(hundred).Round(0).Abs()
	return FormatMasked(cents.String(), txType)
}

// FormatCurrency formats a resolved amount as pt-BR currency, e.g. "R$ 1.234,56".
// Negative values are rendered as "-R$ 1.234,56".
func FormatCurrency(value decimal.Decimal) string {
	sign := ""
	if value.IsNegative() {
		sign = "-"
	}
	fixed := value.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return sign + Symbol + symbolSeparator + groupThousands(intPart) + decimalSeparator + fracPart
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(thousandsSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseAmount parses a human-typed amount into a decimal value.
// It accepts pt-BR ("1.234,56"), plain ("1234.56") and currency-prefixed
// ("R$ 1.234,56") forms. Empty input yields zero.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount converts the accepted amount spellings to the form
// understood by decimal.NewFromString.
func StandardizeAmount(amountStr string) string {
	amountStr = currencyTokens.ReplaceAllString(amountStr, "")

	switch {
	case strings.Contains(amountStr, ",") && strings.Contains(amountStr, "."):
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// 1.234,56
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// 1,234.56
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case strings.Contains(amountStr, ","):
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			amountStr = strings.Replace(amountStr, ",", ".", 1)
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case strings.Count(amountStr, ".") > 1:
		// 1.234.567
		amountStr = strings.ReplaceAll(amountStr, ".", "")
	}

	return amountStr
}

// CalculateTaxAmount calculates the tax amount given the total amount and tax rate
// e.g., CalculateTaxAmount(100, 6) returns 6
func CalculateTaxAmount(amount decimal.Decimal, taxRatePercent decimal.Decimal) decimal.Decimal {
	return amount.Mul(taxRatePercent.Div(hundred))
}

// AmountExcludingTax returns amount minus the tax computed by CalculateTaxAmount.
func AmountExcludingTax(amount decimal.Decimal, taxRatePercent decimal.Decimal) decimal.Decimal {
	return amount.Sub(CalculateTaxAmount(amount, taxRatePercent))
}

// Percentage returns part/whole*100, or zero when whole is not positive.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
