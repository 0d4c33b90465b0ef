package database

import (
	"os"
	"testing"
)

// getPostgresTestConfig returns PostgreSQL config if available, nil otherwise.
// Set QUESTGEN_TEST_POSTGRES_DSN to run PostgreSQL tests, for example:
//
//	QUESTGEN_TEST_POSTGRES_DSN="host=localhost port=5432 user=questgen password=questgen dbname=questgen_test sslmode=disable"
func getPostgresTestConfig() *Config {
	dsn := os.Getenv("QUESTGEN_TEST_POSTGRES_DSN")
	if dsn == "" {
		return nil
	}

	pg := DefaultPostgresConfig()
	pg.DSN = dsn
	return &Config{Driver: "postgres", Postgres: pg}
}

// setupPostgresTestDB opens a PostgreSQL connection for testing and clears test data
func setupPostgresTestDB(t *testing.T) *Database {
	t.Helper()
	cfg := getPostgresTestConfig()
	if cfg == nil {
		t.Skip("Skipping PostgreSQL test: QUESTGEN_TEST_POSTGRES_DSN not set")
	}

	db, err := Open(*cfg)
	if err != nil {
		t.Fatalf("Failed to open PostgreSQL database: %v", err)
	}

	reset := func() {
		// Child tables cascade
		if _, err := db.db.Exec("DELETE FROM generation_runs"); err != nil {
			t.Logf("Warning: failed to clear generation_runs: %v", err)
		}
	}
	reset()

	t.Cleanup(func() {
		reset()
		db.Close()
	})

	return db
}

func TestPostgres_Open(t *testing.T) {
	db := setupPostgresTestDB(t)

	if _, ok := db.Dialect().(*PostgresDialect); !ok {
		t.Errorf("Expected *PostgresDialect, got %T", db.Dialect())
	}
}

func TestPostgres_RecordRun(t *testing.T) {
	db := setupPostgresTestDB(t)
	catalog, docs := testCatalog(t, 42)

	run := &Run{Seed: 42, OutputDir: "Quests"}
	if err := db.RecordRun(run, catalog, docs); err != nil {
		t.Fatalf("RecordRun returned error: %v", err)
	}
	if run.ID == 0 {
		t.Fatal("RETURNING id did not set run ID")
	}

	latest, err := db.LatestRun()
	if err != nil {
		t.Fatal(err)
	}
	if latest.ID != run.ID || latest.QuestCount != catalog.All.Len() {
		t.Errorf("LatestRun = %+v", latest)
	}

	rows, err := db.ListQuests(run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != catalog.All.Len() {
		t.Errorf("ListQuests returned %d rows, want %d", len(rows), catalog.All.Len())
	}

	documents, err := db.ListDocuments(run.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(documents) != len(docs) {
		t.Errorf("ListDocuments returned %d rows, want %d", len(documents), len(docs))
	}
}
