package shared

import (
	"context"
	"database/sql"
	"errors"
)

// DbConnection is a wrapper around Go native sql.DB that implements the Connector interface.
type DbConnection struct {
	DbSql  *sql.DB
	DbType string
}

// Connector:

func (c *DbConnection) Begin() (Transacter, error) {
	if c.DbSql == nil {
		return nil, errors.New("DbConnection was not configured correctly: DbSql is missing")
	}
	tx, err := c.DbSql.Begin()
	return &DbTx{txSql: tx}, err
}

func (c *DbConnection) Exec(query string, args ...interface{}) (Result, error) {
	return c.ExecContext(context.Background(), query, args...)
}

func (c *DbConnection) ExecContext(ctx context.Context, query string, args ...interface{}) (Result, error) {
	return c.DbSql.ExecContext(ctx, query, args...)
}

func (c *DbConnection) Query(query string, args ...interface{}) (*Rows, error) {
	return c.QueryContext(context.Background(), query, args...)
}

func (c *DbConnection) QueryContext(ctx context.Context, query string, args ...interface{}) (*Rows, error) {
	r, err := c.DbSql.QueryContext(ctx, query, args...)
	return &Rows{rowsSql: r}, err
}

func (c *DbConnection) Close() {
	_ = c.DbSql.Close()
}

func (c *DbConnection) GetType() string {
	return c.DbType
}

// Transacter:

type DbTx struct {
	txSql *sql.Tx
}

func (t *DbTx) Exec(query string, args ...interface{}) (Result, error) {
	return t.ExecContext(context.Background(), query, args...)
}

func (t *DbTx) ExecContext(ctx context.Context, query string, args ...interface{}) (Result, error) {
	return t.txSql.ExecContext(ctx, query, args...)
}

func (t *DbTx) Commit() error {
	return t.txSql.Commit()
}

func (t *DbTx) Rollback() error {
	return t.txSql.Rollback()
}

// Rows wraps sql.Rows so callers don't depend on database/sql directly.
type Rows struct {
	rowsSql *sql.Rows
}

func (r *Rows) Next() bool {
	return r.rowsSql.Next()
}

func (r *Rows) Scan(dest ...interface{}) error {
	return r.rowsSql.Scan(dest...)
}

func (r *Rows) ColumnTypes() ([]*sql.ColumnType, error) {
	return r.rowsSql.ColumnTypes()
}

func (r *Rows) Close() error {
	return r.rowsSql.Close()
}

func (r *Rows) Err() error {
	return r.rowsSql.Err()
}
