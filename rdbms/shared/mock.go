package shared

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/richimp95/Project-Sparkify-AWS/logger"
)

// MockConnection implements Connector and records every statement sent to it
// so tests can assert on the exact SQL and its order, including transaction boundaries.
type MockConnection struct {
	log      logger.Logger
	dbType   string
	mu       sync.Mutex
	executed []string
	// ErrOnStatementContaining causes Exec to fail for any statement containing this substring.
	ErrOnStatementContaining string
	RowsAffectedPerExec      int64
}

func NewMockConnection(log logger.Logger, dbType string) *MockConnection {
	return &MockConnection{log: log, dbType: dbType, executed: make([]string, 0)}
}

// Executed returns a copy of all statements and transaction markers recorded so far.
// Transaction boundaries are recorded as "BEGIN", "COMMIT" and "ROLLBACK" entries.
func (c *MockConnection) Executed() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	retval := make([]string, len(c.executed))
	copy(retval, c.executed)
	return retval
}

func (c *MockConnection) record(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.executed = append(c.executed, s)
}

func (c *MockConnection) Begin() (Transacter, error) {
	c.record("BEGIN")
	return &mockTx{conn: c}, nil
}

func (c *MockConnection) Exec(query string, args ...interface{}) (Result, error) {
	return c.ExecContext(context.Background(), query, args...)
}

func (c *MockConnection) ExecContext(ctx context.Context, query string, args ...interface{}) (Result, error) {
	c.log.Debug("mock exec: ", query)
	c.record(query)
	if c.ErrOnStatementContaining != "" && strings.Contains(query, c.ErrOnStatementContaining) {
		return nil, fmt.Errorf("mock statement failure for %q", c.ErrOnStatementContaining)
	}
	return mockResult{rows: c.RowsAffectedPerExec}, nil
}

func (c *MockConnection) Query(query string, args ...interface{}) (*Rows, error) {
	return c.QueryContext(context.Background(), query, args...)
}

func (c *MockConnection) QueryContext(ctx context.Context, query string, args ...interface{}) (*Rows, error) {
	c.record(query)
	return nil, fmt.Errorf("mock connection does not support queries")
}

func (c *MockConnection) Close() {
	c.record("CLOSE")
}

func (c *MockConnection) GetType() string {
	return c.dbType
}

type mockTx struct {
	conn *MockConnection
}

func (t *mockTx) Exec(query string, args ...interface{}) (Result, error) {
	return t.ExecContext(context.Background(), query, args...)
}

func (t *mockTx) ExecContext(ctx context.Context, query string, args ...interface{}) (Result, error) {
	return t.conn.ExecContext(ctx, query, args...)
}

func (t *mockTx) Commit() error {
	t.conn.record("COMMIT")
	return nil
}

func (t *mockTx) Rollback() error {
	t.conn.record("ROLLBACK")
	return nil
}

type mockResult struct {
	rows int64
}

func (r mockResult) LastInsertId() (int64, error) {
	return 0, nil
}

func (r mockResult) RowsAffected() (int64, error) {
	return r.rows, nil
}
