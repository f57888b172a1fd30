package cmd

import (
	"fmt"

	"github.com/richimp95/Project-Sparkify-AWS/actions"
	"github.com/richimp95/Project-Sparkify-AWS/config"
	"github.com/spf13/cobra"
)

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all stored settings",
	Long: fmt.Sprintf(`List the settings stored in config store %q
by printing them all to STDOUT. Passwords and role ARNs are redacted`,
		config.Main.FullPath),
	RunE: func(cmd *cobra.Command, args []string) error {
		return actions.RunConfigList(config.Main)
	},
}

func initConfigList() {
	configCmd.AddCommand(configListCmd)
}
