package actions

import (
	"os"
	"testing"

	"github.com/richimp95/Project-Sparkify-AWS/constants"
	"github.com/richimp95/Project-Sparkify-AWS/rdbms/shared"
	"github.com/richimp95/Project-Sparkify-AWS/warehouse"
)

// fakeSettings implements SettingsGetter for tests.
type fakeSettings struct {
	warehouse shared.ConnectionDetails
	copyCfg   warehouse.CopyConfig
}

func (f *fakeSettings) Get(key string, out interface{}) error {
	switch key {
	case constants.WarehouseConnectionName:
		*(out.(*shared.ConnectionDetails)) = f.warehouse
	case constants.EtlSettingsName:
		*(out.(*warehouse.CopyConfig)) = f.copyCfg
	}
	return nil
}

func validFakeSettings() *fakeSettings {
	return &fakeSettings{
		warehouse: shared.ConnectionDetails{
			Type:        constants.ConnectionTypeRedshift,
			LogicalName: constants.WarehouseConnectionName,
			Data:        map[string]string{"dsn": "redshift://u:p@host:5439/dwh"},
		},
		copyCfg: warehouse.CopyConfig{
			RoleArn:        "arn:aws:iam::1:role/dwhRole",
			Region:         "us-west-2",
			EventsPath:     "s3://udacity-dend/log_data",
			EventsJsonPath: "s3://udacity-dend/log_json_path.json",
			SongsPath:      "s3://udacity-dend/song_data",
		},
	}
}

func TestLoadSettings(t *testing.T) {
	s, err := LoadSettings(validFakeSettings())
	if err != nil {
		t.Fatal("unexpected error: ", err)
	}
	if s.Warehouse.Type != constants.ConnectionTypeRedshift {
		t.Fatal("unexpected warehouse type: ", s.Warehouse.Type)
	}
	if s.Copy.EventsPath != "s3://udacity-dend/log_data" {
		t.Fatal("unexpected events path: ", s.Copy.EventsPath)
	}
}

func TestLoadSettingsRejectsMissingValues(t *testing.T) {
	f := validFakeSettings()
	f.copyCfg.RoleArn = ""
	if _, err := LoadSettings(f); err == nil {
		t.Fatal("expected an error for the missing role ARN")
	}
}

func TestEnvSettings(t *testing.T) {
	vars := map[string]string{
		"SPARKIFY_DSN":          "redshift://u:p@host:5439/dwh",
		"SPARKIFY_ROLE_ARN":     "arn:aws:iam::1:role/dwhRole",
		"SPARKIFY_LOG_DATA":     "s3://udacity-dend/log_data",
		"SPARKIFY_LOG_JSONPATH": "s3://udacity-dend/log_json_path.json",
		"SPARKIFY_SONG_DATA":    "s3://udacity-dend/song_data",
	}
	for k, v := range vars {
		os.Setenv(k, v)
	}
	defer func() {
		for k := range vars {
			os.Unsetenv(k)
		}
	}()
	src := GetSettingsSource()
	if _, ok := src.(*EnvSettings); !ok {
		t.Fatalf("expected environment-backed settings when SPARKIFY_DSN is set; got %T", src)
	}
	s, err := LoadSettings(src)
	if err != nil {
		t.Fatal("unexpected error: ", err)
	}
	if s.Warehouse.Data["dsn"] != vars["SPARKIFY_DSN"] {
		t.Fatal("unexpected DSN: ", s.Warehouse.Data["dsn"])
	}
	// Region falls back to the default when unset.
	if s.Copy.Region != "us-west-2" {
		t.Fatal("expected default region; got ", s.Copy.Region)
	}
}
