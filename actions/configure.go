package actions

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/richimp95/Project-Sparkify-AWS/aws/s3"
	"github.com/richimp95/Project-Sparkify-AWS/constants"
	"github.com/richimp95/Project-Sparkify-AWS/helper"
	"github.com/richimp95/Project-Sparkify-AWS/rdbms"
	"github.com/richimp95/Project-Sparkify-AWS/rdbms/shared"
	"github.com/richimp95/Project-Sparkify-AWS/warehouse"
)

// SettingsStorer is the read-write view of the settings store used by the
// config actions. config.File implements this.
type SettingsStorer interface {
	Get(key string, out interface{}) error
	Set(key string, val interface{}) error
	Delete(key string) error
	GetAllKeys() ([]string, error)
}

// WarehouseConfig holds the flag values for the 'config warehouse' command.
// Either Dsn or the individual cluster fields must be supplied.
type WarehouseConfig struct {
	ConfigFile SettingsStorer
	Dsn        string
	Host       string
	Port       string
	Database   string
	User       string
	Password   string
}

// RunWarehouseConfigAdd validates and persists the warehouse connection under
// the fixed key used by the load, tables and check actions.
func RunWarehouseConfigAdd(cfg *WarehouseConfig) error {
	dsn := cfg.Dsn
	if dsn == "" { // if individual flags were supplied instead of a DSN...
		parts := struct {
			Host     string `errorTxt:"cluster host (or use --dsn)" mandatory:"yes"`
			Port     string `errorTxt:"cluster port (or use --dsn)" mandatory:"yes"`
			Database string `errorTxt:"database name (or use --dsn)" mandatory:"yes"`
			User     string `errorTxt:"user name (or use --dsn)" mandatory:"yes"`
			Password string `errorTxt:"user password (or use --dsn)" mandatory:"yes"`
		}{cfg.Host, cfg.Port, cfg.Database, cfg.User, cfg.Password}
		if err := helper.ValidateStructIsPopulated(parts); err != nil {
			return err
		}
		dsn = rdbms.RedshiftGetDSN(cfg.Host, cfg.Port, cfg.Database, cfg.User, cfg.Password)
	}
	d := shared.DsnConnectionDetails{Dsn: dsn}
	if err := d.Parse(); err != nil { // if the DSN is malformed...
		return errors.Wrap(err, "unable to save the warehouse connection")
	}
	connection := shared.ConnectionDetails{
		Type:        constants.ConnectionTypeRedshift,
		LogicalName: constants.WarehouseConnectionName,
		Data:        d.GetMap(nil),
	}
	if err := cfg.ConfigFile.Set(constants.WarehouseConnectionName, &connection); err != nil {
		return fmt.Errorf("error writing config file after adding the warehouse connection: %v", err)
	}
	fmt.Printf("Warehouse connection saved:\n%v\n", connection)
	return nil
}

// EtlConfig holds the flag values for the 'config etl' command.
type EtlConfig struct {
	ConfigFile SettingsStorer
	Copy       warehouse.CopyConfig
}

// RunEtlConfigAdd validates and persists the S3/IAM load settings.
func RunEtlConfigAdd(cfg *EtlConfig) error {
	if err := helper.ValidateStructIsPopulated(cfg.Copy); err != nil { // if a mandatory field is missing...
		return err
	}
	for _, loc := range []string{cfg.Copy.EventsPath, cfg.Copy.EventsJsonPath, cfg.Copy.SongsPath} {
		if _, err := s3.ParseDSN(loc, cfg.Copy.Region); err != nil { // if the S3 location is malformed...
			return errors.Wrap(err, "unable to save the ETL settings")
		}
	}
	if err := cfg.ConfigFile.Set(constants.EtlSettingsName, &cfg.Copy); err != nil {
		return fmt.Errorf("error writing config file after adding the ETL settings: %v", err)
	}
	fmt.Printf("ETL settings saved:\n%v\n", cfg.Copy.Redacted())
	return nil
}

// RunConfigList prints all stored settings to STDOUT with secrets redacted.
func RunConfigList(store SettingsStorer) error {
	keys, err := store.GetAllKeys()
	if err != nil {
		return err
	}
	sort.Strings(keys)
	for _, k := range keys { // for each stored key...
		switch k {
		case constants.WarehouseConnectionName:
			conn := shared.ConnectionDetails{}
			if err := store.Get(k, &conn); err != nil {
				return err
			}
			fmt.Printf("%v:\n%v\n", k, conn)
		case constants.EtlSettingsName:
			c := warehouse.CopyConfig{}
			if err := store.Get(k, &c); err != nil {
				return err
			}
			fmt.Printf("%v:\n%v\n", k, c.Redacted())
		default: // else the key was written by hand...
			fmt.Printf("%v: (unrecognised key)\n", k)
		}
	}
	return nil
}

// RunConfigRemove deletes the settings stored under key.
func RunConfigRemove(store SettingsStorer, key string) error {
	if err := store.Delete(key); err != nil {
		return fmt.Errorf("unable to delete settings key %q from config: %v", key, err)
	}
	fmt.Printf("Settings key %q removed\n", key)
	return nil
}
