package cmd

import (
	"fmt"

	"github.com/richimp95/Project-Sparkify-AWS/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure the warehouse connection and the S3/IAM load settings",
	Long: fmt.Sprintf(`Configure the pipeline where:

- The warehouse connection and the S3/IAM load settings are stored in file %q
- Environment variables prefixed SPARKIFY_ take priority when SPARKIFY_DSN is set
`, config.Main.FullPath),
}

func init() {
	rootCmd.AddCommand(configCmd)
	initConfigList()
	initConfigRemove()
}
