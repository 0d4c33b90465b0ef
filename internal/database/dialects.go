package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// pqUniqueViolation is the SQLSTATE Postgres reports for a duplicate key
const pqUniqueViolation = "23505"

// SQLiteDialect targets the pure-Go modernc.org/sqlite driver
type SQLiteDialect struct{}

func (d *SQLiteDialect) DriverName() string { return "sqlite" }

// Placeholder is positional, so every parameter is spelled "?"
func (d *SQLiteDialect) Placeholder(int) string { return "?" }

func (d *SQLiteDialect) SupportsLastInsertID() bool { return true }

func (d *SQLiteDialect) ReturningClause(string) string { return "" }

// InitStatements are PRAGMAs and only apply to the connection that runs them
func (d *SQLiteDialect) InitStatements() []string {
	return []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
}

func (d *SQLiteDialect) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return true
		}
		if code&0xff != sqlite3.SQLITE_CONSTRAINT {
			return false
		}
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (d *SQLiteDialect) AutoIncrementKey() string { return "INTEGER PRIMARY KEY AUTOINCREMENT" }

// PostgresDialect targets lib/pq
type PostgresDialect struct{}

func (d *PostgresDialect) DriverName() string { return "postgres" }

func (d *PostgresDialect) Placeholder(position int) string {
	return fmt.Sprintf("$%d", position)
}

func (d *PostgresDialect) SupportsLastInsertID() bool { return false }

func (d *PostgresDialect) ReturningClause(column string) string {
	return " RETURNING " + column
}

// InitStatements pin the session encoding; lore lines carry non-ASCII separators
func (d *PostgresDialect) InitStatements() []string {
	return []string{"SET client_encoding = 'UTF8'"}
}

func (d *PostgresDialect) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	var pe *pq.Error
	if errors.As(err, &pe) {
		return pe.Code == pqUniqueViolation
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, pqUniqueViolation) ||
		strings.Contains(msg, "unique constraint")
}

func (d *PostgresDialect) AutoIncrementKey() string { return "BIGSERIAL PRIMARY KEY" }
