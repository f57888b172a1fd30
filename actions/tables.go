package actions

import (
	"github.com/pkg/errors"
	"github.com/richimp95/Project-Sparkify-AWS/helper"
	"github.com/richimp95/Project-Sparkify-AWS/logger"
	"github.com/richimp95/Project-Sparkify-AWS/rdbms"
	"github.com/richimp95/Project-Sparkify-AWS/stats"
	"github.com/richimp95/Project-Sparkify-AWS/warehouse"
	"github.com/rs/xid"
	"golang.org/x/net/context"
)

const (
	TablesModeCreate = "create"
	TablesModeDrop   = "drop"
	TablesModeReset  = "reset"
)

// TablesConfig carries the switches for schema provisioning.
type TablesConfig struct {
	Settings         SettingsGetter
	Mode             string `errorTxt:"tables mode (create|drop|reset)" mandatory:"yes"`
	ExportConfigType string
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	StackDumpOnPanic bool
}

// RunTables provisions the staging and star-schema tables.
// Create is idempotent (if not exists); drop removes all seven tables; reset does both.
func RunTables(cfg *TablesConfig) error {
	if cfg.ExportConfigType != "" { // if the user wants the plan on STDOUT...
		cfg.LogLevel = "error"
	}
	log := logger.NewLogger("sparkify", xid.New().String(), cfg.LogLevel, cfg.StackDumpOnPanic)
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	groups := make([][]warehouse.Statement, 0, 2)
	switch cfg.Mode {
	case TablesModeCreate:
		groups = append(groups, warehouse.CreateTableStatements())
	case TablesModeDrop:
		groups = append(groups, warehouse.DropTableStatements())
	case TablesModeReset:
		groups = append(groups, warehouse.DropTableStatements(), warehouse.CreateTableStatements())
	default:
		return errors.Errorf("unsupported tables mode %q", cfg.Mode)
	}
	plan := warehouse.NewPlan(groups...)
	if cfg.ExportConfigType != "" { // if the user wants a dry run...
		return exportPlan(cfg.ExportConfigType, plan)
	}
	settings, err := LoadWarehouseSettings(cfg.Settings)
	if err != nil {
		return err
	}
	db, err := rdbms.OpenDbConnection(log, settings.Warehouse)
	if err != nil {
		return errors.Wrap(err, "unable to connect to the warehouse")
	}
	defer db.Close()
	runStats := stats.NewRunStats(log)
	defer runStats.LogStats()
	if err := warehouse.RunStatements(context.Background(), log, db, runStats, plan.Statements); err != nil {
		return err
	}
	log.Info("tables ", cfg.Mode, " complete")
	return nil
}
