package actions

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/richimp95/Project-Sparkify-AWS/helper"
	"github.com/richimp95/Project-Sparkify-AWS/logger"
	"github.com/richimp95/Project-Sparkify-AWS/rdbms"
	"github.com/richimp95/Project-Sparkify-AWS/warehouse"
	"github.com/rs/xid"
	"golang.org/x/net/context"
)

// CheckConfig carries the switches for post-load validation queries.
type CheckConfig struct {
	Settings         SettingsGetter
	PrintHeader      bool
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	StackDumpOnPanic bool
}

type checkResultHandler struct {
	printHeader bool
}

func (s *checkResultHandler) HandleHeader(i []interface{}) error {
	if s.printHeader {
		return writeCsvRow(helper.InterfaceToString(i))
	}
	return nil
}

func (s *checkResultHandler) HandleRow(i []interface{}) error {
	return writeCsvRow(helper.InterfaceToString(i))
}

func writeCsvRow(str []string) error {
	w := csv.NewWriter(os.Stdout)
	if err := w.Write(str); err != nil {
		return fmt.Errorf("error outputting SQL row: %v", err)
	}
	w.Flush()
	return nil
}

// RunCheck executes the row-count and duplicate-key probes against the warehouse
// and prints each result set as CSV on STDOUT.
func RunCheck(cfg *CheckConfig) error {
	log := logger.NewLogger("sparkify", xid.New().String(), cfg.LogLevel, cfg.StackDumpOnPanic)
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
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
	ctx := context.Background()
	h := checkResultHandler{printHeader: cfg.PrintHeader}
	for _, q := range warehouse.CheckQueries() {
		fmt.Printf("-- %v\n", q.Name)
		if err := rdbms.SqlQuery(ctx, log, db, q.SQL, &h); err != nil {
			return errors.Wrapf(err, "check query %v failed", q.Name)
		}
	}
	return nil
}
