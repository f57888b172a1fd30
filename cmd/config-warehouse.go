package cmd

import (
	"fmt"

	"github.com/richimp95/Project-Sparkify-AWS/actions"
	"github.com/richimp95/Project-Sparkify-AWS/config"
	"github.com/spf13/cobra"
)

var warehouseCfg = actions.WarehouseConfig{}

var configWarehouseCmd = &cobra.Command{
	Use:   "warehouse",
	Short: "Save the Redshift cluster connection",
	Long: fmt.Sprintf(`Save the Redshift cluster connection to the config store %q.

Provide a DSN or supply individual flags. The DSN takes precedence and should
be of the form:

redshift://<user>:<password>@<host>:<port>/<database>`,
		config.Main.FullPath),
	RunE: func(cmd *cobra.Command, args []string) error {
		warehouseCfg.ConfigFile = config.Main
		cmd.SilenceUsage = true
		return actions.RunWarehouseConfigAdd(&warehouseCfg)
	},
}

func init() {
	configCmd.AddCommand(configWarehouseCmd)
	configWarehouseCmd.Flags().SortFlags = false
	switches.addFlag(configWarehouseCmd, &warehouseCfg.Dsn, "dsn", "", false, "")
	switches.addFlag(configWarehouseCmd, &warehouseCfg.Host, "host", "", false, "")
	switches.addFlag(configWarehouseCmd, &warehouseCfg.Port, "port", "5439", false, "")
	switches.addFlag(configWarehouseCmd, &warehouseCfg.Database, "database", "", false, "")
	switches.addFlag(configWarehouseCmd, &warehouseCfg.User, "user", "", false, "")
	switches.addFlag(configWarehouseCmd, &warehouseCfg.Password, "password", "", false, "")
}
