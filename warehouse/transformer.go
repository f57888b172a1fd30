package warehouse

import (
	"github.com/richimp95/Project-Sparkify-AWS/logger"
	"github.com/richimp95/Project-Sparkify-AWS/rdbms/shared"
	"github.com/richimp95/Project-Sparkify-AWS/stats"
	"golang.org/x/net/context"
)

// Transformer reshapes the populated staging relations into the star schema:
// the songplays fact table plus the users, songs, artists and time dimensions.
// The staging relations are read-only during transformation.
type Transformer struct {
	log      logger.Logger
	db       shared.Connector
	runStats *stats.RunStatsManager
}

func NewTransformer(log logger.Logger, db shared.Connector, runStats *stats.RunStatsManager) *Transformer {
	return &Transformer{log: log, db: db, runStats: runStats}
}

// Transform executes the five insert-from-select statements in their fixed
// order, committing after each. A primary-key violation (e.g. a rerun against
// non-empty warehouse tables) aborts that statement and surfaces to the operator;
// earlier commits are not rolled back.
func (t *Transformer) Transform(ctx context.Context) error {
	return RunStatements(ctx, t.log, t.db, t.runStats, InsertStatements())
}
