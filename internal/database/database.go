// Package database records generation runs in SQLite or PostgreSQL so earlier
// catalogs can be looked up after the documents have been overwritten.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// Database wraps the connection and provides catalog index operations.
type Database struct {
	db      *sql.DB
	dialect Dialect
	qb      *QueryBuilder
}

// Open connects to the configured database and creates the schema if needed.
func Open(cfg Config) (*Database, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dialect := NewDialect(DialectType(cfg.Driver))

	var dsn string
	switch dialect.(type) {
	case *PostgresDialect:
		dsn = cfg.Postgres.ConnString()
	default:
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = cfg.SQLitePath
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, ok := dialect.(*PostgresDialect); ok {
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
	} else {
		// PRAGMAs are per connection
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", dialect.DriverName(), err)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run %q: %w", stmt, err)
		}
	}

	d := &Database{db: db, dialect: dialect, qb: NewQueryBuilder(dialect)}

	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return d, nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	return d.db.Close()
}

// Dialect returns the SQL dialect in use.
func (d *Database) Dialect() Dialect {
	return d.dialect
}

// migrate creates the database schema if it doesn't exist.
func (d *Database) migrate() error {
	pk := d.dialect.AutoIncrementKey()

	migrations := []string{
		// One row per generator invocation
		`CREATE TABLE IF NOT EXISTS generation_runs (
			id ` + pk + `,
			seed BIGINT NOT NULL,
			output_dir TEXT NOT NULL,
			quest_count INTEGER NOT NULL DEFAULT 0,
			document_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS generated_quests (
			run_id BIGINT NOT NULL REFERENCES generation_runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			quest_id TEXT NOT NULL,
			category TEXT NOT NULL,
			kind TEXT NOT NULL,
			subject TEXT NOT NULL DEFAULT '',
			required_progress INTEGER NOT NULL,
			tier TEXT NOT NULL,
			points INTEGER NOT NULL,
			name TEXT NOT NULL,
			material TEXT NOT NULL,
			anti_abuse INTEGER NOT NULL DEFAULT 0,
			UNIQUE(run_id, quest_id)
		)`,

		`CREATE TABLE IF NOT EXISTS generated_documents (
			run_id BIGINT NOT NULL REFERENCES generation_runs(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			path TEXT NOT NULL,
			records INTEGER NOT NULL,
			digest TEXT NOT NULL,
			UNIQUE(run_id, name)
		)`,

		// Indexes for common queries
		`CREATE INDEX IF NOT EXISTS idx_generated_quests_run_id ON generated_quests(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_generated_quests_category ON generated_quests(category)`,
		`CREATE INDEX IF NOT EXISTS idx_generated_documents_run_id ON generated_documents(run_id)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	return nil
}
