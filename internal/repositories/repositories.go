// package repositories provides the SQLite persistence layer.
//
// The only durable state in the client is the identity session; everything
// else (search results, summaries, the subscription set) is fetched from the
// backend and held in memory.
package repositories

import (
	"database/sql"
	"fmt"
)

// countRows returns the row count for a table, used by tests and the setup diagnostics.
func countRows(db *sql.DB, table string) (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
