package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the effective taxonomy tables, overrides included",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		logger, _, engine := setup()
		if err := printJSON(cmd.OutOrStdout(), engine.Tables().Source()); err != nil {
			logger.Fatal("printing tables", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
