// Package backup implements the full backup export and import commands
package backup

import (
	"errors"
	"fmt"

	"fjacquet/vx-finance/cmd/root"
	"fjacquet/vx-finance/internal/ledgererror"
	"fjacquet/vx-finance/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the backup command
var Cmd = NewCommand()

// NewCommand builds the backup command tree.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore the full ledger",
	}

	var dir string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write a dated JSON backup of every collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := root.AppContainer.GetBackupCodec().ExportFile(root.Ledger().Snapshot(), dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	export.Flags().StringVarP(&dir, "dir", "o", ".", "Output directory")

	restore := &cobra.Command{
		Use:     "import <file>",
		Aliases: []string{"restore"},
		Short:   "Replace the ledger with a backup file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.IsValidBackupFile(args[0]); err != nil {
				return fmt.Errorf("erro ao importar dados: %w", err)
			}
			state, err := root.AppContainer.GetBackupCodec().ImportFile(args[0])
			if err != nil {
				var malformed *ledgererror.MalformedBackupError
				if errors.As(err, &malformed) {
					return fmt.Errorf("erro ao importar dados: %s", malformed.UserMessage())
				}
				return err
			}
			if err := root.Ledger().ReplaceState(state, root.Confirmer(cmd)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Backup restaurado com sucesso!")
			return nil
		},
	}

	cmd.AddCommand(export, restore)
	return cmd
}
