// Package validation checks user-supplied command arguments before they reach the ledger.
package validation

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/vx-finance/internal/dateutils"
)

// AllMonths is the month filter selecting every transaction.
const AllMonths = "all"

// ReportFormats lists the supported statement render formats.
var ReportFormats = []string{"json", "xml", "csv", "yaml", "txt"}

// IsValidPath checks if a given path exists and is a file or a directory.
func IsValidPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.IsDir() && !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is neither a file nor a directory", path)
	}
	return nil
}

// IsValidBackupFile checks that path is an existing regular .json file.
func IsValidBackupFile(path string) error {
	if err := IsValidPath(path); err != nil {
		return err
	}
	if info, _ := os.Stat(path); info.IsDir() {
		return fmt.Errorf("backup path is a directory: %s", path)
	}
	if !strings.EqualFold(strings.TrimPrefix(extension(path), "."), "json") {
		return fmt.Errorf("backup file must have a .json extension: %s", path)
	}
	return nil
}

// IsValidMonthFilter accepts a YYYY-MM month key or AllMonths.
func IsValidMonthFilter(month string) error {
	if month == AllMonths || dateutils.IsMonthKey(month) {
		return nil
	}
	return fmt.Errorf("invalid month filter: %s. Use YYYY-MM or '%s'", month, AllMonths)
}

// IsValidOutputFormat checks if the given report format is supported.
func IsValidOutputFormat(format string) error {
	for _, f := range ReportFormats {
		if strings.EqualFold(f, format) {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format: %s. Supported formats are %s", format, strings.Join(ReportFormats, ", "))
}

func extension(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 && !strings.ContainsAny(path[i:], `/\`) {
		return path[i:]
	}
	return ""
}
