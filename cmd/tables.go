package cmd

import (
	"github.com/richimp95/Project-Sparkify-AWS/actions"
	"github.com/richimp95/Project-Sparkify-AWS/constants"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Provision the staging tables and the star schema",
	Long: `Create or drop the two staging tables (staging_events, staging_songs) and the
five warehouse tables (songplays, users, songs, artists, time).

Create uses "if not exists" so it is safe to repeat. "reset" drops then creates
everything, which is the expected way to prepare for a fresh "load".`,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	initTablesSubCommand(actions.TablesModeCreate, "Create the staging and star-schema tables")
	initTablesSubCommand(actions.TablesModeDrop, "Drop the staging and star-schema tables")
	initTablesSubCommand(actions.TablesModeReset, "Drop then recreate the staging and star-schema tables")
}

func initTablesSubCommand(mode string, short string) {
	cfg := &actions.TablesConfig{Mode: mode}
	c := &cobra.Command{
		Use:   mode,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Settings = actions.GetSettingsSource()
			cfg.StackDumpOnPanic = stackDumpOnPanic
			cmd.SilenceUsage = true
			return actions.RunTables(cfg)
		},
	}
	c.Flags().SortFlags = false
	switches.addFlag(c, &cfg.ExportConfigType, "output", "", false, "")
	switches.addFlag(c, &cfg.LogLevel, "log-level", constants.DefaultLogLevel, false, "")
	tablesCmd.AddCommand(c)
}
