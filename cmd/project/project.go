// Package project implements the project commands
package project

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"fjacquet/vx-finance/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the project command
var Cmd = NewCommand()

// NewCommand builds the project command tree.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projeto"},
		Short:   "Manage projects",
	}

	var listClient string
	list := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := root.Ledger()
			projects := l.Projects()
			if listClient != "" {
				projects = l.ProjectsForClient(listClient)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOME\tCLIENTE")
			for _, p := range projects {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, l.ClientName(p.ClientID))
			}
			return w.Flush()
		},
	}
	list.Flags().StringVar(&listClient, "client", "", "Only projects of this client id")

	var addClient string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a project owned by a client",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := root.Ledger().AddProject(strings.Join(args, " "), addClient)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Projeto %s adicionado: %s\n", p.ID, p.Name)
			return nil
		},
	}
	add.Flags().StringVar(&addClient, "client", "", "Owning client id")
	_ = add.MarkFlagRequired("client")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a project; its transactions are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !root.Ledger().RemoveProject(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "Projeto %s não encontrado\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Projeto %s removido\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

