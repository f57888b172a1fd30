package actions

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/richimp95/Project-Sparkify-AWS/config"
	"github.com/richimp95/Project-Sparkify-AWS/constants"
	"github.com/richimp95/Project-Sparkify-AWS/helper"
	"github.com/richimp95/Project-Sparkify-AWS/rdbms/shared"
	"github.com/richimp95/Project-Sparkify-AWS/warehouse"
)

// SettingsGetter abstracts the key-value settings source so actions can be fed
// either the config file or environment variables (or a fake in tests).
type SettingsGetter interface {
	Get(key string, out interface{}) error
}

// Settings is the explicit configuration object constructed once per run and
// passed by value into both the loader and the transformer components.
type Settings struct {
	Warehouse shared.ConnectionDetails
	Copy      warehouse.CopyConfig
}

// GetSettingsSource returns the environment-backed settings when a warehouse DSN
// is present in the environment, else the config file in the user's home dir.
func GetSettingsSource() SettingsGetter {
	if os.Getenv(helper.GetSettingEnvVarName("dsn")) != "" { // if we are running on environment variables...
		return &EnvSettings{}
	}
	return config.Main
}

// LoadSettings fetches and validates the warehouse connection and copy configuration.
func LoadSettings(source SettingsGetter) (s Settings, err error) {
	if s, err = LoadWarehouseSettings(source); err != nil {
		return s, err
	}
	if err = source.Get(constants.EtlSettingsName, &s.Copy); err != nil {
		return s, errors.Wrap(err, "unable to load the ETL settings (run 'sparkify config etl' first)")
	}
	if err = helper.ValidateStructIsPopulated(&s.Copy); err != nil {
		return s, err
	}
	return s, nil
}

// LoadWarehouseSettings fetches and validates the warehouse connection only, for
// actions that never read from S3 (tables, check).
func LoadWarehouseSettings(source SettingsGetter) (s Settings, err error) {
	if err = source.Get(constants.WarehouseConnectionName, &s.Warehouse); err != nil {
		return s, errors.Wrap(err, "unable to load the warehouse connection (run 'sparkify config warehouse' first)")
	}
	if err = helper.ValidateStructIsPopulated(&s.Warehouse); err != nil {
		return s, err
	}
	return s, nil
}

// EnvSettings supplies settings from SPARKIFY_* environment variables instead of the
// config file, for container and CI use.
type EnvSettings struct{}

func (e *EnvSettings) Get(key string, out interface{}) error {
	switch key {
	case constants.WarehouseConnectionName:
		c, ok := out.(*shared.ConnectionDetails)
		if !ok {
			return fmt.Errorf("unexpected output type for settings key %q", key)
		}
		dsn, err := helper.GetEnvVar(helper.GetSettingEnvVarName("dsn"), true)
		if err != nil {
			return err
		}
		c.Type = constants.ConnectionTypeRedshift
		c.LogicalName = constants.WarehouseConnectionName
		c.Data = map[string]string{shared.DefaultDsnConnectionKeyNames.Dsn: dsn}
		return nil
	case constants.EtlSettingsName:
		c, ok := out.(*warehouse.CopyConfig)
		if !ok {
			return fmt.Errorf("unexpected output type for settings key %q", key)
		}
		var err error
		if c.RoleArn, err = helper.GetEnvVar(helper.GetSettingEnvVarName("role-arn"), true); err != nil {
			return err
		}
		if c.EventsPath, err = helper.GetEnvVar(helper.GetSettingEnvVarName("log-data"), true); err != nil {
			return err
		}
		if c.EventsJsonPath, err = helper.GetEnvVar(helper.GetSettingEnvVarName("log-jsonpath"), true); err != nil {
			return err
		}
		if c.SongsPath, err = helper.GetEnvVar(helper.GetSettingEnvVarName("song-data"), true); err != nil {
			return err
		}
		c.Region = helper.ReadValueFromEnvWithDefault(helper.GetSettingEnvVarName("region"), constants.DefaultBucketRegion)
		return nil
	default:
		return fmt.Errorf("unsupported settings key %q", key)
	}
}
