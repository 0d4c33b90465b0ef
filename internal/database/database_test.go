package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lawnchairsociety/questgen/internal/document"
	"github.com/lawnchairsociety/questgen/internal/quest"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func testCatalog(t *testing.T, seed int64) (*quest.Catalog, []document.Info) {
	t.Helper()
	lists := quest.Lists{
		quest.ListMobs:      {"ZOMBIE", "SKELETON"},
		quest.ListBlocks:    {"STONE", "DIRT"},
		quest.ListFood:      {"BREAD"},
		quest.ListSmeltable: {"GLASS"},
		quest.ListTamable:   {"WOLF", "CAT"},
		quest.ListRideable:  {"HORSE"},
	}
	catalog, err := quest.NewGenerator(seed).Generate(context.Background(), lists)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	docs, err := document.NewWriter(t.TempDir(), seed).WriteCatalog(catalog)
	if err != nil {
		t.Fatalf("WriteCatalog returned error: %v", err)
	}
	return catalog, docs
}

func TestOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	db, err := Open(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	for _, table := range []string{"generation_runs", "generated_quests", "generated_documents"} {
		var count int
		if err := db.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			t.Errorf("Failed to query %s table: %v", table, err)
		}
	}
}

func TestOpenInvalidConfig(t *testing.T) {
	if _, err := Open(Config{Driver: "mysql"}); err == nil {
		t.Error("Expected error for unknown driver")
	}
}

func TestReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	catalog, docs := testCatalog(t, 3)

	db, err := Open(DefaultConfig(dbPath))
	if err != nil {
		t.Fatal(err)
	}
	run := &Run{Seed: 3, OutputDir: "Quests"}
	if err := db.RecordRun(run, catalog, docs); err != nil {
		t.Fatal(err)
	}
	db.Close()

	// Migrations are idempotent
	db, err = Open(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	defer db.Close()

	if _, err := db.GetRun(run.ID); err != nil {
		t.Errorf("Run lost after reopen: %v", err)
	}
}

func TestClose(t *testing.T) {
	db, err := Open(DefaultConfig(filepath.Join(t.TempDir(), "test.db")))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	if err := db.Close(); err != nil {
		t.Errorf("Failed to close database: %v", err)
	}

	var count int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM generation_runs").Scan(&count); err == nil {
		t.Error("Expected error when querying closed database")
	}
}

func TestRecordRun(t *testing.T) {
	db := setupTestDB(t)
	catalog, docs := testCatalog(t, 42)

	run := &Run{Seed: 42, OutputDir: "Quests"}
	if err := db.RecordRun(run, catalog, docs); err != nil {
		t.Fatalf("RecordRun returned error: %v", err)
	}
	if run.ID == 0 {
		t.Fatal("RecordRun did not set run ID")
	}

	got, err := db.GetRun(run.ID)
	if err != nil {
		t.Fatalf("GetRun returned error: %v", err)
	}
	if got.Seed != 42 || got.OutputDir != "Quests" {
		t.Errorf("GetRun = %+v", got)
	}
	if got.QuestCount != catalog.All.Len() {
		t.Errorf("QuestCount = %d, want %d", got.QuestCount, catalog.All.Len())
	}
	if got.DocumentCount != 17 {
		t.Errorf("DocumentCount = %d, want 17", got.DocumentCount)
	}
	if got.CreatedAt.IsZero() || time.Since(got.CreatedAt) > time.Hour {
		t.Errorf("CreatedAt = %v", got.CreatedAt)
	}
}

func TestListQuests(t *testing.T) {
	db := setupTestDB(t)
	catalog, docs := testCatalog(t, 7)

	run := &Run{Seed: 7, OutputDir: "Quests"}
	if err := db.RecordRun(run, catalog, docs); err != nil {
		t.Fatal(err)
	}

	rows, err := db.ListQuests(run.ID)
	if err != nil {
		t.Fatalf("ListQuests returned error: %v", err)
	}

	all := catalog.All.Quests()
	if len(rows) != len(all) {
		t.Fatalf("ListQuests returned %d rows, want %d", len(rows), len(all))
	}

	// Rows come back in generation order and match the catalog
	for i, q := range all {
		row := rows[i]
		if row.QuestID != q.ID || row.Kind != q.Kind || row.Subject != q.Subject {
			t.Errorf("Row %d = %+v, want quest %s", i, row, q.ID)
		}
		if row.RequiredProgress != q.RequiredProgress || row.Points != q.Points || row.Tier != q.Tier {
			t.Errorf("Row %d reward mismatch: %+v", i, row)
		}
		if row.AntiAbuse != q.AntiAbuse || row.Material != q.Item.Material {
			t.Errorf("Row %d item mismatch: %+v", i, row)
		}
	}

	if rows[0].Category != "mobs" || rows[0].QuestID != "mob_1" {
		t.Errorf("First row = %+v", rows[0])
	}
}

func TestListDocuments(t *testing.T) {
	db := setupTestDB(t)
	catalog, docs := testCatalog(t, 9)

	run := &Run{Seed: 9, OutputDir: "Quests"}
	if err := db.RecordRun(run, catalog, docs); err != nil {
		t.Fatal(err)
	}

	rows, err := db.ListDocuments(run.ID)
	if err != nil {
		t.Fatalf("ListDocuments returned error: %v", err)
	}
	if len(rows) != len(docs) {
		t.Fatalf("ListDocuments returned %d rows, want %d", len(rows), len(docs))
	}

	byName := make(map[string]DocumentRow)
	for _, row := range rows {
		byName[row.Name] = row
	}
	for _, doc := range docs {
		row, ok := byName[doc.Name]
		if !ok {
			t.Errorf("Missing document %s", doc.Name)
			continue
		}
		if row.Digest != doc.Digest || row.Records != doc.Records || row.Path != doc.Path {
			t.Errorf("Document %s = %+v, want %+v", doc.Name, row, doc)
		}
	}
}

func TestLatestRun(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.LatestRun(); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Expected ErrRunNotFound on empty index, got %v", err)
	}

	for _, seed := range []int64{1, 2, 3} {
		catalog, docs := testCatalog(t, seed)
		if err := db.RecordRun(&Run{Seed: seed, OutputDir: "Quests"}, catalog, docs); err != nil {
			t.Fatal(err)
		}
	}

	latest, err := db.LatestRun()
	if err != nil {
		t.Fatalf("LatestRun returned error: %v", err)
	}
	if latest.Seed != 3 {
		t.Errorf("LatestRun seed = %d, want 3", latest.Seed)
	}
}

func TestGetRunNotFound(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.GetRun(999); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Expected ErrRunNotFound, got %v", err)
	}
}

func TestRecordRunDuplicateDocument(t *testing.T) {
	db := setupTestDB(t)
	catalog, docs := testCatalog(t, 5)

	docs = append(docs, docs[0])
	err := db.RecordRun(&Run{Seed: 5, OutputDir: "Quests"}, catalog, docs)
	if !errors.Is(err, ErrRunExists) {
		t.Fatalf("Expected ErrRunExists, got %v", err)
	}

	// The transaction rolled back
	if _, err := db.LatestRun(); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Failed run should not be recorded, got %v", err)
	}
}
