// Package category implements the category commands
package category

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"fjacquet/vx-finance/cmd/root"
	"fjacquet/vx-finance/internal/ledger"
	"fjacquet/vx-finance/internal/ledgererror"
	"fjacquet/vx-finance/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the category command
var Cmd = NewCommand()

// NewCommand builds the category command tree.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categoria"},
		Short:   "Manage categories and their DRE groups",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORIA\tGRUPO")
			for _, c := range root.Ledger().Categories() {
				fmt.Fprintf(w, "%s\t%s\n", c.Name, c.Group)
			}
			return w.Flush()
		},
	})

	var group string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGroup(group)
			if err != nil {
				return err
			}
			c, err := root.Ledger().AddCategory(strings.Join(args, " "), g)
			if errors.Is(err, ledgererror.ErrDuplicateCategory) {
				return errors.New(ledger.DuplicateCategoryMessage)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Categoria adicionada: %s (%s)\n", c.Name, c.Group)
			return nil
		},
	}
	add.Flags().StringVarP(&group, "group", "g", "OPERATING_EXPENSE", "DRE group: "+groupKeys())

	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "set-group <name> <group>",
		Short: "Change the group of a category for future transactions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGroup(args[1])
			if err != nil {
				return err
			}
			c, err := root.Ledger().SetCategoryGroup(args[0], g)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Categoria %s agora em %s\n", c.Name, c.Group)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a category; recorded transactions keep it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if !root.Ledger().RemoveCategory(name) {
				fmt.Fprintf(cmd.OutOrStdout(), "Categoria %s não encontrada\n", name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Categoria %s removida\n", name)
			return nil
		},
	})

	return cmd
}

func parseGroup(s string) (models.CategoryGroup, error) {
	g, ok := models.ParseCategoryGroup(s)
	if !ok {
		return "", fmt.Errorf("grupo inválido: %s (use %s)", s, groupKeys())
	}
	return g, nil
}

func groupKeys() string {
	return "REVENUE, COGS, OPERATING_EXPENSE, FINANCIAL, ASSET, LIABILITY"
}
