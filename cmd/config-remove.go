package cmd

import (
	"fmt"

	"github.com/richimp95/Project-Sparkify-AWS/actions"
	"github.com/richimp95/Project-Sparkify-AWS/config"
	"github.com/spf13/cobra"
)

var configRemoveKey string

var configRemoveCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm", "del", "delete"},
	Short:   "Remove stored settings",
	Long:    fmt.Sprintf("Remove a settings key from config file %q", config.Main.FullPath),
	RunE: func(cmd *cobra.Command, args []string) error {
		return actions.RunConfigRemove(config.Main, configRemoveKey)
	},
}

func initConfigRemove() {
	configCmd.AddCommand(configRemoveCmd)
	configRemoveCmd.Flags().StringVarP(&configRemoveKey, "key", "k", "",
		"The settings key to remove: \"warehouse\" or \"etl\"")
	_ = configRemoveCmd.MarkFlagRequired("key")
	configRemoveCmd.SilenceUsage = true
}
