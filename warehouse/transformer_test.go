package warehouse

import (
	"strings"
	"testing"

	"github.com/richimp95/Project-Sparkify-AWS/rdbms/shared"
	"github.com/richimp95/Project-Sparkify-AWS/stats"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func TestTransformerRunsInsertsInOrder(t *testing.T) {
	log := logrus.New()
	db := shared.NewMockConnection(log, "redshift")
	tr := NewTransformer(log, db, stats.NewRunStats(log))
	if err := tr.Transform(context.Background()); err != nil {
		t.Fatal("unexpected error: ", err)
	}
	executed := db.Executed()
	// Five inserts, each in its own transaction.
	if len(executed) != 15 {
		t.Fatalf("expected 15 recorded operations; got %v: %v", len(executed), executed)
	}
	expectedTables := []string{"songplays", "users", "songs", "artists", "time"}
	for i, table := range expectedTables {
		begin, sql, commit := executed[i*3], executed[i*3+1], executed[i*3+2]
		if begin != "BEGIN" || commit != "COMMIT" {
			t.Fatalf("statement %v is not wrapped in its own transaction: %v %v", table, begin, commit)
		}
		if !strings.Contains(sql, "insert into "+table) {
			t.Fatalf("expected insert into %v at position %v; got: %v", table, i, sql)
		}
	}
}

func TestTransformerSurfacesConstraintViolation(t *testing.T) {
	log := logrus.New()
	db := shared.NewMockConnection(log, "redshift")
	// Simulate a duplicate-key failure on the songs insert, as happens when
	// rerunning against non-empty warehouse tables.
	db.ErrOnStatementContaining = "insert into songs"
	tr := NewTransformer(log, db, stats.NewRunStats(log))
	err := tr.Transform(context.Background())
	if err == nil {
		t.Fatal("expected the constraint violation to surface")
	}
	executed := strings.Join(db.Executed(), "\n")
	// Earlier statements stay committed; later statements never run.
	if !strings.Contains(executed, "insert into songplays") || !strings.Contains(executed, "insert into users") {
		t.Fatal("statements before the failure should have run: ", executed)
	}
	if strings.Contains(executed, "insert into artists") || strings.Contains(executed, "insert into time") {
		t.Fatal("statements after the failure must not run: ", executed)
	}
}

func TestNewPlanPreservesOrder(t *testing.T) {
	cfg := testCopyConfig()
	p := NewPlan(cfg.CopyStatements(), InsertStatements())
	if len(p.Statements) != 7 {
		t.Fatal("expected 7 statements in the full plan; got ", len(p.Statements))
	}
	if p.Statements[0].Table != TableStagingEvents || p.Statements[2].Table != TableSongplays {
		t.Fatal("unexpected plan order: ", p.Statements)
	}
}
