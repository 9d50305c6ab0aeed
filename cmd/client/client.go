// Package client implements the client commands
package client

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"fjacquet/vx-finance/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the client command
var Cmd = NewCommand()

// NewCommand builds the client command tree.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "client",
		Aliases: []string{"cliente"},
		Short:   "Manage clients",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOME\tPROJETOS")
			l := root.Ledger()
			for _, c := range l.Clients() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", c.ID, c.Name, len(l.ProjectsForClient(c.ID)))
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a client",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.Ledger().AddClient(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cliente %s adicionado: %s\n", c.ID, c.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a client; its transactions are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !root.Ledger().RemoveClient(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "Cliente %s não encontrado\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cliente %s removido\n", args[0])
			return nil
		},
	})

	return cmd
}
