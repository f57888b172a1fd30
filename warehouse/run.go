package warehouse

import (
	"github.com/pkg/errors"
	"github.com/richimp95/Project-Sparkify-AWS/logger"
	"github.com/richimp95/Project-Sparkify-AWS/rdbms/shared"
	"github.com/richimp95/Project-Sparkify-AWS/stats"
	"golang.org/x/net/context"
)

// RunStatements executes each statement in its own transaction, committing before the
// next one starts. The first failure aborts the run and is returned to the caller;
// statements committed before the failure stay committed.
func RunStatements(ctx context.Context, log logger.Logger, db shared.Connector, runStats *stats.RunStatsManager, stmts []Statement) error {
	for _, s := range stmts {
		log.Info("executing statement ", s.Name, " against table ", s.Table)
		log.Debug("statement SQL: ", s.SQL)
		sw := runStats.AddStepWatcher(s.Name)
		tx, err := db.Begin()
		if err != nil {
			return errors.Wrapf(err, "error starting transaction for statement %v", s.Name)
		}
		res, err := tx.ExecContext(ctx, s.SQL)
		if err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "error executing statement %v", s.Name)
		}
		if err = tx.Commit(); err != nil {
			return errors.Wrapf(err, "error committing statement %v", s.Name)
		}
		rows, err := res.RowsAffected()
		if err != nil { // if the driver can't report a row count...
			rows = -1
		}
		sw.Stop(rows)
	}
	return nil
}
