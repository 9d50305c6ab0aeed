// Package report implements the summary and DRE commands
package report

import (
	"fmt"
	"text/tabwriter"

	"fjacquet/vx-finance/cmd/root"
	"fjacquet/vx-finance/internal/currencyutils"
	"fjacquet/vx-finance/internal/dateutils"
	"fjacquet/vx-finance/internal/report"
	"fjacquet/vx-finance/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the report command
var Cmd = NewCommand()

// NewCommand builds the report command tree.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"relatorio"},
		Short:   "Summaries and the DRE income statement",
	}
	cmd.AddCommand(newSummaryCommand(), newMonthsCommand(), newDRECommand(), newExportCommand())
	return cmd
}

func newSummaryCommand() *cobra.Command {
	var asCSV bool
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Totals, monthly breakdown and expenses per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txs := root.Ledger().Transactions()
			monthly := report.MonthlyBreakdown(txs)

			if asCSV {
				data, err := root.AppContainer.GetReportGenerator().MonthlyCSV(monthly)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			totals := report.ComputeTotals(txs)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Receitas:\t%s\n", currencyutils.FormatCurrency(totals.Income))
			fmt.Fprintf(w, "Despesas:\t%s\n", currencyutils.FormatCurrency(totals.Expenses))
			fmt.Fprintf(w, "Saldo:\t%s\n", currencyutils.FormatCurrency(totals.Balance))
			fmt.Fprintln(w)

			fmt.Fprintln(w, "MÊS\tRECEITAS\tDESPESAS\tLANÇAMENTOS")
			for _, m := range monthly {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
					dateutils.FormatMonth(m.Month),
					currencyutils.FormatCurrency(m.Income),
					currencyutils.FormatCurrency(m.Expense),
					m.Count)
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "CATEGORIA\tDESPESAS")
			for _, c := range report.CategoryExpenseBreakdown(txs) {
				fmt.Fprintf(w, "%s\t%s\n", c.Category, currencyutils.FormatCurrency(c.Total))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Print the monthly breakdown as delimited text")
	return cmd
}

func newMonthsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List the months that have transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range report.Months(root.Ledger().Transactions()) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m, dateutils.FormatMonth(m))
			}
			return nil
		},
	}
}

func newDRECommand() *cobra.Command {
	var month, format string
	cmd := &cobra.Command{
		Use:   "dre",
		Short: "Print the DRE income statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateMonth(month); err != nil {
				return err
			}
			statement := report.NewStatement(root.Ledger().Transactions(), month)
			data, err := root.AppContainer.GetReportGenerator().Render(statement, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&month, "month", "m", report.AllMonths, "Month filter (YYYY-MM or all)")
	cmd.Flags().StringVarP(&format, "format", "f", report.FormatText, "Output format: json, xml, csv, yaml, txt")
	return cmd
}

func newExportCommand() *cobra.Command {
	var (
		month   string
		dir     string
		formats []string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the DRE to files, one per format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateMonth(month); err != nil {
				return err
			}
			cfg := root.AppContainer.GetConfig()
			if !cmd.Flags().Changed("dir") {
				dir = cfg.Report.OutputDir
			}
			if !cmd.Flags().Changed("formats") {
				formats = cfg.Report.Formats
			}

			statement := report.NewStatement(root.Ledger().Transactions(), month)
			paths, err := root.AppContainer.GetReportGenerator().ExportAll(cmd.Context(), statement, dir, formats)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&month, "month", "m", report.AllMonths, "Month filter (YYYY-MM or all)")
	cmd.Flags().StringVarP(&dir, "dir", "o", ".", "Output directory (default from report.output_dir)")
	cmd.Flags().StringSliceVar(&formats, "formats", nil, "Formats to write (default from report.formats)")
	return cmd
}

func validateMonth(month string) error {
	if validation.IsValidMonthFilter(month) == nil {
		return nil
	}
	return fmt.Errorf("mês inválido: %s (use YYYY-MM ou %s)", month, report.AllMonths)
}
