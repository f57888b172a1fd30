package warehouse

import (
	"github.com/richimp95/Project-Sparkify-AWS/logger"
	"github.com/richimp95/Project-Sparkify-AWS/rdbms/shared"
	"github.com/richimp95/Project-Sparkify-AWS/stats"
	"golang.org/x/net/context"
)

// Loader bulk-copies the raw event-log and song-catalog records from S3 into the
// two staging relations. Every available record at the configured prefixes lands
// as exactly one staging row; per-record coercion of blank fields to null is done
// by the COPY options so a malformed record doesn't abort the batch.
type Loader struct {
	log      logger.Logger
	db       shared.Connector
	cfg      CopyConfig
	runStats *stats.RunStatsManager
}

func NewLoader(log logger.Logger, db shared.Connector, cfg CopyConfig, runStats *stats.RunStatsManager) *Loader {
	return &Loader{log: log, db: db, cfg: cfg, runStats: runStats}
}

// Load runs the two COPY statements in order, committing after each so the
// transformation stage observes the loaded rows. Connectivity, credential and
// schema-mismatch errors are fatal and abort the run without retry.
func (l *Loader) Load(ctx context.Context) error {
	l.log.Info("loading staging tables from:\n", l.cfg.Redacted())
	return RunStatements(ctx, l.log, l.db, l.runStats, l.cfg.CopyStatements())
}
