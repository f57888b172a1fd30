package rdbms

import (
	"fmt"

	"github.com/richimp95/Project-Sparkify-AWS/logger"
	"github.com/richimp95/Project-Sparkify-AWS/rdbms/shared"
	"golang.org/x/net/context"
)

// SqlQuery executes sqltext on db and sends the header and each row to the supplied SqlResultHandler.
func SqlQuery(ctx context.Context, log logger.Logger, db shared.Connector, sqltext string, i shared.SqlResultHandler) error {
	var err error
	var rows *shared.Rows
	rows, err = db.QueryContext(ctx, sqltext)
	if err != nil {
		return fmt.Errorf("error during database query using SQL: '%v': %w", sqltext, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	// Set up column types for Scan(...)
	log.Debug("fetching column types...")
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return fmt.Errorf("error fetching column types: %w", err)
	}
	// Scan the values dynamically.
	lenColTypes := len(colTypes)
	scanPtrs := make([]interface{}, lenColTypes, lenColTypes)
	scanVals := make([]interface{}, lenColTypes, lenColTypes)
	for idx := 0; idx < lenColTypes; idx++ { // for each column...
		scanPtrs[idx] = &scanVals[idx] // save the value.
	}
	// Build and send the header.
	header := make([]interface{}, lenColTypes, lenColTypes)
	for idx := range colTypes {
		header[idx] = colTypes[idx].Name()
	}
	err = i.HandleHeader(header)
	if err != nil {
		return err
	}
	// Send the rows via callback interface.
	for rows.Next() {
		select { // quit if asked to, else continue...
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		// Scan.
		err := rows.Scan(scanPtrs...)
		if err != nil {
			return fmt.Errorf("error scanning row: %v", err)
		}
		// Make a new row.
		row := make([]interface{}, lenColTypes, lenColTypes)
		for idx := range scanVals { // for each value...
			row[idx] = scanVals[idx]
		}
		// Send the row.
		err = i.HandleRow(row)
		if err != nil {
			return err
		}
	}
	return rows.Err()
}
