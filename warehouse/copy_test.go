package warehouse

import (
	"strings"
	"testing"
)

func testCopyConfig() CopyConfig {
	return CopyConfig{
		RoleArn:        "arn:aws:iam::123456789012:role/dwhRole",
		Region:         "us-west-2",
		EventsPath:     "s3://udacity-dend/log_data",
		EventsJsonPath: "s3://udacity-dend/log_json_path.json",
		SongsPath:      "s3://udacity-dend/song_data",
	}
}

func TestEventsCopyStatement(t *testing.T) {
	s := testCopyConfig().EventsCopyStatement()
	if s.Table != TableStagingEvents {
		t.Fatal("unexpected target table: ", s.Table)
	}
	for _, want := range []string{
		"copy staging_events from 's3://udacity-dend/log_data'",
		"credentials 'aws_iam_role=arn:aws:iam::123456789012:role/dwhRole'",
		"format as json 's3://udacity-dend/log_json_path.json'",
		"timeformat as 'epochmillisecs'",
		"truncatecolumns blanksasnull emptyasnull",
		"compupdate off",
		"region 'us-west-2'",
	} {
		if !strings.Contains(s.SQL, want) {
			t.Fatalf("expected %q in statement:\n%v", want, s.SQL)
		}
	}
}

func TestSongsCopyStatement(t *testing.T) {
	s := testCopyConfig().SongsCopyStatement()
	if s.Table != TableStagingSongs {
		t.Fatal("unexpected target table: ", s.Table)
	}
	for _, want := range []string{
		"copy staging_songs from 's3://udacity-dend/song_data'",
		"json 'auto'",
		"truncatecolumns blanksasnull emptyasnull",
		"region 'us-west-2'",
	} {
		if !strings.Contains(s.SQL, want) {
			t.Fatalf("expected %q in statement:\n%v", want, s.SQL)
		}
	}
	if strings.Contains(s.SQL, "jsonpaths") || strings.Contains(s.SQL, "epochmillisecs") {
		t.Fatal("song-catalog copy must use schema inference, not the events jsonpaths/timeformat")
	}
}

func TestCopyStatementQuotingIsNotNaive(t *testing.T) {
	// A value containing a quote must not break out of the statement literal.
	cfg := testCopyConfig()
	cfg.EventsPath = "s3://bucket/pre'fix"
	s := cfg.EventsCopyStatement()
	if !strings.Contains(s.SQL, "'s3://bucket/pre''fix'") {
		t.Fatalf("expected quoted literal in statement:\n%v", s.SQL)
	}
}

func TestCopyStatementsOrder(t *testing.T) {
	stmts := testCopyConfig().CopyStatements()
	if len(stmts) != 2 {
		t.Fatal("expected 2 copy statements; got ", len(stmts))
	}
	if stmts[0].Table != TableStagingEvents || stmts[1].Table != TableStagingSongs {
		t.Fatalf("unexpected copy order: %v, %v", stmts[0].Table, stmts[1].Table)
	}
}

func TestCopyConfigRedacted(t *testing.T) {
	r := testCopyConfig().Redacted()
	if strings.Contains(r, "arn:aws:iam") {
		t.Fatal("role ARN must be redacted: ", r)
	}
	if !strings.Contains(r, "s3://udacity-dend/log_data") {
		t.Fatal("expected event path in redacted output: ", r)
	}
}
