package cmd

import (
	"fmt"

	"github.com/richimp95/Project-Sparkify-AWS/actions"
	"github.com/richimp95/Project-Sparkify-AWS/config"
	"github.com/richimp95/Project-Sparkify-AWS/constants"
	"github.com/spf13/cobra"
)

var etlCfg = actions.EtlConfig{}

var configEtlCmd = &cobra.Command{
	Use:   "etl",
	Short: "Save the S3 locations and IAM role used by the COPY statements",
	Long: fmt.Sprintf(`Save the S3 source locations and the IAM role ARN to the config store %q.

The role must be attached to the cluster and allowed to read the buckets.
S3 locations should be of the form:

s3://<bucket name>/<prefix>`,
		config.Main.FullPath),
	RunE: func(cmd *cobra.Command, args []string) error {
		etlCfg.ConfigFile = config.Main
		cmd.SilenceUsage = true
		return actions.RunEtlConfigAdd(&etlCfg)
	},
}

func init() {
	configCmd.AddCommand(configEtlCmd)
	configEtlCmd.Flags().SortFlags = false
	switches.addFlag(configEtlCmd, &etlCfg.Copy.RoleArn, "role-arn", "", true, "")
	switches.addFlag(configEtlCmd, &etlCfg.Copy.EventsPath, "log-data", "", true, "")
	switches.addFlag(configEtlCmd, &etlCfg.Copy.EventsJsonPath, "log-jsonpath", "", true, "")
	switches.addFlag(configEtlCmd, &etlCfg.Copy.SongsPath, "song-data", "", true, "")
	switches.addFlag(configEtlCmd, &etlCfg.Copy.Region, "region", constants.DefaultBucketRegion, false, "")
}
