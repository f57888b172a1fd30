package warehouse

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/richimp95/Project-Sparkify-AWS/constants"
)

// CopyConfig holds everything needed to build the two staging COPY statements.
// It is constructed once from settings and passed into the Loader explicitly.
type CopyConfig struct {
	RoleArn        string `errorTxt:"IAM role ARN for storage reads" mandatory:"yes" yaml:"roleArn" mapstructure:"roleArn"`
	Region         string `errorTxt:"S3 bucket region" mandatory:"yes" yaml:"region" mapstructure:"region"`
	EventsPath     string `errorTxt:"event-log S3 prefix" mandatory:"yes" yaml:"logData" mapstructure:"logData"`
	EventsJsonPath string `errorTxt:"event-log jsonpaths S3 URL" mandatory:"yes" yaml:"logJsonPath" mapstructure:"logJsonPath"`
	SongsPath      string `errorTxt:"song-catalog S3 prefix" mandatory:"yes" yaml:"songData" mapstructure:"songData"`
}

// EventsCopyStatement builds the COPY for raw event-log records.
// Events are parsed with an explicit jsonpaths spec and epoch-millisecond timestamps.
// Blank and empty fields become nulls so a malformed record doesn't abort the batch.
func (c CopyConfig) EventsCopyStatement() Statement {
	sql := fmt.Sprintf(`copy %v from %v
credentials %v
format as json %v
timeformat as 'epochmillisecs'
truncatecolumns blanksasnull emptyasnull
compupdate off
region %v`,
		TableStagingEvents,
		pq.QuoteLiteral(c.EventsPath),
		pq.QuoteLiteral("aws_iam_role="+c.RoleArn),
		pq.QuoteLiteral(c.EventsJsonPath),
		pq.QuoteLiteral(c.Region),
	)
	return Statement{Name: constants.StmtCopyStagingEvents, Table: TableStagingEvents, SQL: sql}
}

// SongsCopyStatement builds the COPY for raw song-catalog records.
// Catalog entries are self-describing JSON objects so the schema is inferred with json 'auto'.
func (c CopyConfig) SongsCopyStatement() Statement {
	sql := fmt.Sprintf(`copy %v from %v
credentials %v
json 'auto'
truncatecolumns blanksasnull emptyasnull
compupdate off
region %v`,
		TableStagingSongs,
		pq.QuoteLiteral(c.SongsPath),
		pq.QuoteLiteral("aws_iam_role="+c.RoleArn),
		pq.QuoteLiteral(c.Region),
	)
	return Statement{Name: constants.StmtCopyStagingSongs, Table: TableStagingSongs, SQL: sql}
}

// CopyStatements returns both staging loads in execution order.
func (c CopyConfig) CopyStatements() []Statement {
	return []Statement{
		c.EventsCopyStatement(),
		c.SongsCopyStatement(),
	}
}

// Redacted returns a loggable description of the copy configuration without the role ARN.
func (c CopyConfig) Redacted() string {
	return strings.Join([]string{
		"  events = " + c.EventsPath,
		"  jsonpaths = " + c.EventsJsonPath,
		"  songs = " + c.SongsPath,
		"  region = " + c.Region,
		"  roleArn = xxxxx",
	}, "\n")
}
