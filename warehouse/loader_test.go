package warehouse

import (
	"strings"
	"testing"

	"github.com/richimp95/Project-Sparkify-AWS/rdbms/shared"
	"github.com/richimp95/Project-Sparkify-AWS/stats"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func TestLoaderCommitsAfterEachCopy(t *testing.T) {
	log := logrus.New()
	db := shared.NewMockConnection(log, "redshift")
	l := NewLoader(log, db, testCopyConfig(), stats.NewRunStats(log))
	if err := l.Load(context.Background()); err != nil {
		t.Fatal("unexpected error: ", err)
	}
	executed := db.Executed()
	// Each copy runs in its own transaction: BEGIN, COPY, COMMIT, twice over.
	if len(executed) != 6 {
		t.Fatalf("expected 6 recorded operations; got %v: %v", len(executed), executed)
	}
	if executed[0] != "BEGIN" || executed[2] != "COMMIT" || executed[3] != "BEGIN" || executed[5] != "COMMIT" {
		t.Fatal("expected one transaction per copy statement: ", executed)
	}
	if !strings.Contains(executed[1], "copy staging_events") {
		t.Fatal("expected the events copy first: ", executed[1])
	}
	if !strings.Contains(executed[4], "copy staging_songs") {
		t.Fatal("expected the songs copy second: ", executed[4])
	}
}

func TestLoaderAbortsOnFirstFailure(t *testing.T) {
	log := logrus.New()
	db := shared.NewMockConnection(log, "redshift")
	db.ErrOnStatementContaining = "copy staging_events"
	l := NewLoader(log, db, testCopyConfig(), stats.NewRunStats(log))
	err := l.Load(context.Background())
	if err == nil {
		t.Fatal("expected the failed copy to abort the load")
	}
	for _, s := range db.Executed() {
		if strings.Contains(s, "copy staging_songs") {
			t.Fatal("no further statement may run after a failure: ", db.Executed())
		}
	}
}
