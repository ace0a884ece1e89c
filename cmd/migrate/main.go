package main

import (
	"chore/config"
	"chore/helper"
	"chore/shared/logger"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Applies or rolls back the SQL migrations under DB_POSTGRES_MIGRATION_PATH
against the write database configured in the environment.`,
	SilenceUsage: true,
}

func actionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := config.Get()
			logger.InitLogger(cfg)

			return helper.Runner(cfg, action) //nolint:wrapcheck
		},
	}
}

func init() {
	rootCmd.AddCommand(actionCmd(helper.ActionUp, "Apply every pending migration"))
	rootCmd.AddCommand(actionCmd(helper.ActionDown, "Roll back the last applied migration"))
	rootCmd.AddCommand(actionCmd(helper.ActionStepUp, "Apply the next pending migration"))
	rootCmd.AddCommand(actionCmd(helper.ActionDrop, "Roll back every applied migration"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
