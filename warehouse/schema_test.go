package warehouse

import (
	"strings"
	"testing"
)

func TestCreateTableStatements(t *testing.T) {
	stmts := CreateTableStatements()
	if len(stmts) != 7 {
		t.Fatal("expected 7 create statements; got ", len(stmts))
	}
	// Staging tables are provisioned before the star schema.
	if stmts[0].Table != TableStagingEvents || stmts[1].Table != TableStagingSongs {
		t.Fatalf("expected staging tables first; got %v, %v", stmts[0].Table, stmts[1].Table)
	}
	for _, s := range stmts {
		if !strings.Contains(s.SQL, "create table if not exists "+s.Table) {
			t.Fatalf("statement %v does not create its declared table:\n%v", s.Name, s.SQL)
		}
	}
}

func TestDimensionKeysAreDeclared(t *testing.T) {
	tests := map[string]string{
		TableUsers:   "user_id integer not null primary key",
		TableSongs:   "song_id varchar not null primary key",
		TableArtists: "artist_id varchar not null primary key",
		TableTime:    "start_time timestamp not null primary key",
	}
	for _, s := range CreateTableStatements() {
		if want, ok := tests[s.Table]; ok {
			if !strings.Contains(normalise(s.SQL), want) {
				t.Fatalf("table %v: expected key declaration %q:\n%v", s.Table, want, s.SQL)
			}
		}
	}
}

func TestSongplaysSurrogateKey(t *testing.T) {
	for _, s := range CreateTableStatements() {
		if s.Table == TableSongplays {
			if !strings.Contains(normalise(s.SQL), "songplay_id integer identity(0,1) not null primary key") {
				t.Fatal("expected identity surrogate key on songplays:\n", s.SQL)
			}
			return
		}
	}
	t.Fatal("songplays create statement not found")
}

func TestDropTableStatements(t *testing.T) {
	stmts := DropTableStatements()
	if len(stmts) != 7 {
		t.Fatal("expected 7 drop statements; got ", len(stmts))
	}
	for _, s := range stmts {
		if s.SQL != "drop table if exists "+s.Table {
			t.Fatalf("unexpected drop statement for %v: %v", s.Table, s.SQL)
		}
	}
}
