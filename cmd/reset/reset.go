// Package reset implements the command that erases the ledger
package reset

import (
	"fmt"

	"fjacquet/vx-finance/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the reset command
var Cmd = NewCommand()

// NewCommand builds the reset command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Erase every transaction, client and project and restore the default categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := root.Ledger().ResetAll(root.Confirmer(cmd)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Todos os dados foram apagados.")
			return nil
		},
	}
}
