package rdbms

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"
	"github.com/richimp95/Project-Sparkify-AWS/constants"
	"github.com/richimp95/Project-Sparkify-AWS/logger"
	"github.com/richimp95/Project-Sparkify-AWS/rdbms/shared"
	"github.com/xo/dburl"
)

// OpenDbConnection opens a database connection using the supplied ConnectionDetails struct in c.
func OpenDbConnection(log logger.Logger, c shared.ConnectionDetails) (db shared.Connector, err error) {
	log.Debug("opening connection type ", c.Type, " with logicalName ", c.LogicalName) // don't log password details in c.Data!
	switch c.Type {
	case constants.ConnectionTypeRedshift:
		db, err = newRedshiftConnection(log, shared.GetDsnConnectionDetails(&c))
	default: // else we have an unsupported database...
		err = fmt.Errorf("unsupported database type, %q", c.Type)
	}
	return
}

// newRedshiftConnection opens the Redshift connection specified in d.
// Redshift talks the Postgres wire protocol so the DSN is handed to lib/pq after
// normalising a redshift:// scheme to postgres://.
func newRedshiftConnection(log logger.Logger, d *shared.DsnConnectionDetails) (shared.Connector, error) {
	log.Info("Opening database connection: ", d)
	dsn := d.Dsn
	if strings.HasPrefix(dsn, constants.ConnectionTypeRedshift+"://") { // if the DSN carries our own scheme...
		dsn = "postgres://" + strings.TrimPrefix(dsn, constants.ConnectionTypeRedshift+"://")
	}
	u, err := dburl.Parse(dsn)
	if err != nil { // if the DSN could not be parsed...
		return nil, fmt.Errorf("error parsing DSN %q: %w", d.String(), err)
	}
	conn := &shared.DbConnection{DbType: constants.ConnectionTypeRedshift}
	// Open the connection.
	conn.DbSql, err = sql.Open("postgres", u.DSN)
	if err != nil {
		return nil, err
	}
	// Test the connection.
	err = conn.DbSql.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("Successful connection to: ", d)
	return conn, nil
}

// RedshiftGetDSN constructs a DSN from individual cluster connection parameters.
// The prefix 'redshift://' is added to the DSN.
func RedshiftGetDSN(host string, port string, dbName string, user string, password string) string {
	u := url.URL{
		Scheme: constants.ConnectionTypeRedshift,
		User:   url.UserPassword(user, password),
		Host:   fmt.Sprintf("%v:%v", host, port),
		Path:   dbName,
	}
	q := u.Query()
	q.Set("sslmode", "require") // Redshift clusters require TLS by default.
	u.RawQuery = q.Encode()
	return u.String()
}
