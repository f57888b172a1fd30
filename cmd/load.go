package cmd

import (
	"github.com/richimp95/Project-Sparkify-AWS/actions"
	"github.com/richimp95/Project-Sparkify-AWS/constants"
	"github.com/spf13/cobra"
)

var loadCfg = actions.LoadConfig{}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Run the ETL pipeline: stage event-log and song-catalog data from S3 then build the star schema",
	Long: `Run the two-stage ETL pipeline against the configured Redshift cluster:

- Stage 1 bulk-copies the raw event-log and song-catalog JSON from S3 into
  staging_events and staging_songs, committing after each COPY
- Stage 2 runs five insert-from-select statements that deduplicate and reshape
  staging data into the songplays fact table and the users, songs, artists and
  time dimensions, committing after each statement

The warehouse tables are expected to be empty: a rerun fails on the dimension
primary keys rather than silently duplicating rows. Use "tables reset" first
to start over.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loadCfg.Settings = actions.GetSettingsSource()
		loadCfg.StackDumpOnPanic = stackDumpOnPanic
		cmd.SilenceUsage = true
		return actions.RunLoad(&loadCfg)
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().SortFlags = false
	switches.addFlag(loadCmd, &loadCfg.StageOnly, "stage-only", "", false, "")
	switches.addFlag(loadCmd, &loadCfg.TransformOnly, "transform-only", "", false, "")
	switches.addFlag(loadCmd, &loadCfg.SkipS3Check, "skip-s3-check", "", false, "")
	switches.addFlag(loadCmd, &loadCfg.ExportConfigType, "output", "", false, "")
	switches.addFlag(loadCmd, &loadCfg.LogLevel, "log-level", constants.DefaultLogLevel, false, "")
}
