package cmd

import (
	"github.com/richimp95/Project-Sparkify-AWS/actions"
	"github.com/richimp95/Project-Sparkify-AWS/constants"
	"github.com/spf13/cobra"
)

var checkCfg = actions.CheckConfig{}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run post-load validation queries against the warehouse",
	Long: `Run a row count per table plus a duplicate-key probe per dimension and print
each result set as CSV on STDOUT.

The duplicate probes should return no rows. A user that appears with more than
one subscription level in the source events yields one users row per
(user_id, level) combination, so duplicates there point at the source data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		checkCfg.Settings = actions.GetSettingsSource()
		checkCfg.StackDumpOnPanic = stackDumpOnPanic
		cmd.SilenceUsage = true
		return actions.RunCheck(&checkCfg)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().SortFlags = false
	switches.addFlag(checkCmd, &checkCfg.PrintHeader, "print-header", "", false, "")
	switches.addFlag(checkCmd, &checkCfg.LogLevel, "log-level", constants.DefaultLogLevel, false, "")
}
