// Package tx implements the transaction commands
package tx

import (
	"fmt"
	"text/tabwriter"
	"time"

	"fjacquet/vx-finance/cmd/root"
	"fjacquet/vx-finance/internal/currencyutils"
	"fjacquet/vx-finance/internal/dateutils"
	"fjacquet/vx-finance/internal/ledger"
	"fjacquet/vx-finance/internal/models"
	"fjacquet/vx-finance/internal/report"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the tx command
var Cmd = NewCommand()

var timeNow = time.Now

type fieldFlags struct {
	date        string
	description string
	amount      string
	masked      bool
	txType      string
	category    string
	client      string
	project     string
}

// NewCommand builds the tx command tree.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"lancamento"},
		Short:   "Manage ledger transactions",
	}
	cmd.AddCommand(newListCommand(), newAddCommand(), newEditCommand(), newRemoveCommand(), newShowCommand())
	return cmd
}

func newListCommand() *cobra.Command {
	var (
		month string
		asCSV bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := root.Ledger()
			var txs []models.Transaction
			for _, t := range l.Transactions() {
				if month == report.AllMonths || t.InMonth(month) {
					txs = append(txs, t)
				}
			}

			if asCSV {
				data, err := root.AppContainer.GetReportGenerator().TransactionsCSV(txs)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATA\tDESCRIÇÃO\tCATEGORIA\tGRUPO\tCLIENTE\tPROJETO\tVALOR")
			for _, t := range txs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					t.ID,
					dateutils.ToBrazilianDate(t.Date),
					t.Description,
					t.Category,
					t.Group,
					l.ClientName(t.ClientID),
					l.ProjectName(t.ProjectID),
					currencyutils.FormatCurrency(t.SignedAmount()))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&month, "month", "m", report.AllMonths, "Month filter (YYYY-MM or all)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Print as delimited text")
	return cmd
}

func newAddCommand() *cobra.Command {
	var f fieldFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := f.input(cmd, ledger.TransactionInput{Date: dateutils.ToISODate(timeNow())})
			if err != nil {
				return err
			}
			t, err := root.Ledger().AddTransaction(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Lançamento %s adicionado: %s %s\n",
				t.ID, t.Description, currencyutils.FormatCurrency(t.SignedAmount()))
			return nil
		},
	}
	f.register(cmd)
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newEditCommand() *cobra.Command {
	var f fieldFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a transaction; omitted flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, ok := root.Ledger().Transaction(args[0])
			if !ok {
				return fmt.Errorf("lançamento %s não encontrado", args[0])
			}
			in, err := f.input(cmd, ledger.TransactionInput{
				Date:        current.Date,
				Description: current.Description,
				Amount:      current.Amount,
				Type:        current.Type,
				Category:    current.Category,
				ClientID:    current.ClientID,
				ProjectID:   current.ProjectID,
			})
			if err != nil {
				return err
			}
			t, err := root.Ledger().EditTransaction(args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Lançamento %s atualizado\n", t.ID)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := root.Ledger().RemoveTransaction(args[0], root.Confirmer(cmd))
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Lançamento %s não encontrado\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Lançamento %s excluído\n", args[0])
			return nil
		},
	}
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one transaction with its masked amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := root.Ledger()
			t, ok := l.Transaction(args[0])
			if !ok {
				return fmt.Errorf("lançamento %s não encontrado", args[0])
			}
			masked, err := l.MaskedAmount(t.ID)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
			fmt.Fprintf(w, "ID:\t%s\n", t.ID)
			fmt.Fprintf(w, "Data:\t%s\n", dateutils.ToBrazilianDate(t.Date))
			fmt.Fprintf(w, "Descrição:\t%s\n", t.Description)
			fmt.Fprintf(w, "Valor:\t%s\n", masked)
			fmt.Fprintf(w, "Categoria:\t%s (%s)\n", t.Category, t.Group)
			fmt.Fprintf(w, "Cliente:\t%s\n", l.ClientName(t.ClientID))
			fmt.Fprintf(w, "Projeto:\t%s\n", l.ProjectName(t.ProjectID))
			return w.Flush()
		},
	}
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.date, "date", "d", "", "Date (YYYY-MM-DD or DD/MM/YYYY, default today)")
	cmd.Flags().StringVar(&f.description, "description", "", "Description")
	cmd.Flags().StringVarP(&f.amount, "amount", "a", "", "Amount, e.g. 1.234,56")
	cmd.Flags().BoolVar(&f.masked, "masked", false, "Read --amount as masked digits filled from the cents")
	cmd.Flags().StringVarP(&f.txType, "type", "t", string(models.TransactionTypeExpense), "INCOME or EXPENSE")
	cmd.Flags().StringVar(&f.category, "category", "", "Category name")
	cmd.Flags().StringVar(&f.client, "client", "", "Client id")
	cmd.Flags().StringVar(&f.project, "project", "", "Project id")
}

// input overlays the flags the user set on base.
func (f *fieldFlags) input(cmd *cobra.Command, base ledger.TransactionInput) (ledger.TransactionInput, error) {
	in := base
	changed := cmd.Flags().Changed

	if changed("date") {
		date, err := dateutils.NormalizeDate(f.date)
		if err != nil {
			return in, err
		}
		in.Date = date
	}
	if changed("description") {
		in.Description = f.description
	}
	if changed("amount") {
		amount, err := parseAmount(f.amount, f.masked)
		if err != nil {
			return in, err
		}
		in.Amount = amount
	}
	if changed("type") || in.Type == "" {
		t, ok := models.ParseTransactionType(f.txType)
		if !ok {
			return in, fmt.Errorf("tipo inválido: %s", f.txType)
		}
		in.Type = t
	}
	if changed("category") {
		in.Category = f.category
	}
	if changed("client") {
		in.ClientID = f.client
	}
	if changed("project") {
		in.ProjectID = f.project
	}
	return in, nil
}

func parseAmount(s string, masked bool) (decimal.Decimal, error) {
	if masked {
		return currencyutils.ParseMaskedAmount(s), nil
	}
	return currencyutils.ParseAmount(s)
}
