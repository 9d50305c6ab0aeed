// Package dateutils provides the date handling shared by the ledger and the reports:
// ISO date validation, month keys and pt-BR month labels.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts used throughout the application
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutBrazilian = "02/01/2006"
	MonthLayout         = "2006-01"
)

// CommonFormats is the list of input layouts accepted by ParseDate.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutBrazilian,
	"02-01-2006",
	"2006/01/02",
}

var monthNamesPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// ParseDate parses a date in any of CommonFormats.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, layout := range CommonFormats {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// NormalizeDate parses dateStr with ParseDate and returns it as YYYY-MM-DD.
func NormalizeDate(dateStr string) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return ToISODate(t), nil
}

// IsISODate reports whether s is a valid calendar date written as YYYY-MM-DD.
func IsISODate(s string) bool {
	if len(s) != len(DateLayoutISO) {
		return false
	}
	_, err := time.Parse(DateLayoutISO, s)
	return err == nil
}

// IsMonthKey reports whether s is a valid YYYY-MM month key.
func IsMonthKey(s string) bool {
	if len(s) != len(MonthLayout) {
		return false
	}
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// ToBrazilianDate converts an ISO date to DD/MM/YYYY. Invalid input is returned unchanged.
func ToBrazilianDate(iso string) string {
	t, err := time.Parse(DateLayoutISO, iso)
	if err != nil {
		return iso
	}
	return t.Format(DateLayoutBrazilian)
}

// FormatMonth renders a YYYY-MM key as a pt-BR label, e.g. "março de 2024".
// Invalid keys are returned unchanged.
func FormatMonth(month string) string {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return month
	}
	return fmt.Sprintf("%s de %d", monthNamesPtBR[t.Month()-1], t.Year())
}
