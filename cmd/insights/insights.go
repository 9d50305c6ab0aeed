// Package insights implements the AI analysis command
package insights

import (
	"fmt"

	"fjacquet/vx-finance/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the insights command
var Cmd = NewCommand()

// NewCommand builds the insights command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Ask Gemini for a CFO-style analysis of the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := root.AppContainer.GetAnalyzer().Analyze(cmd.Context(), root.Ledger().Transactions())
			if err != nil {
				root.Log.WithError(err).Warn("AI analysis failed")
			}
			if text == "" {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
