package migrations

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// isDuplicateError reports whether err means the column, index, or table we
// tried to create already exists. Two instances starting concurrently against
// a shared database can race past the existence check; the loser's DDL fails
// with one of these and must be treated as success.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "42701": // duplicate_column
			return true
		case "42P07": // duplicate_table
			return true
		case "42710": // duplicate_object
			return true
		}
		return false
	}

	// SQLite reports duplicates by message only
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate column name") ||
		strings.Contains(msg, "already exists")
}
