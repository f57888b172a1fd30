package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Default values may be set at compile time.
	version          = "0.1.0"
	buildDate        = "2020-01-02T03:04+0500"
	stackDumpOnPanic bool
)

var rootCmd = &cobra.Command{
	Use: "sparkify",
	Long: `Sparkify is an ETL utility that loads the Sparkify music-streaming event logs and
song catalog from S3 into Redshift staging tables, then transforms them into a
star schema (songplays + users, songs, artists, time) for analytical querying.

Provision the schema with "tables", run the pipeline with "load" and validate
results with "check". Settings come from ~/.sparkify/config.yaml ("config"
commands) or from SPARKIFY_* environment variables for container use.`,
}

func init() {
	// General setup.
	cobra.EnableCommandSorting = false
	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&stackDumpOnPanic, "print-stack", false, "Print a stack dump if there is a panic")
	_ = rootCmd.PersistentFlags().MarkHidden("print-stack")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Execute() prints the error.
		os.Exit(1)
	}
}
