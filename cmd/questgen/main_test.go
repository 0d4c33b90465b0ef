package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lawnchairsociety/questgen/internal/config"
	"github.com/lawnchairsociety/questgen/internal/database"
	"github.com/lawnchairsociety/questgen/internal/document"
	"github.com/lawnchairsociety/questgen/internal/lists"
	"github.com/lawnchairsociety/questgen/internal/quest"
)

var testLists = map[string]string{
	"mobs.yml":      "- ZOMBIE\n- SKELETON\n- CREEPER\n",
	"blocks.yml":    "- STONE\n- OAK_LOG\n",
	"food.yml":      "- BREAD\n",
	"smeltable.yml": "- IRON_INGOT\n- GLASS\n",
	"tamable.yml":   "- WOLF\n",
	"rideable.yml":  "[]\n",
}

func testConfig(t *testing.T) *config.GeneratorConfig {
	t.Helper()
	root := t.TempDir()

	listDir := filepath.Join(root, "lists")
	if err := os.MkdirAll(listDir, 0755); err != nil {
		t.Fatal(err)
	}
	for name, content := range testLists {
		if err := os.WriteFile(filepath.Join(listDir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.DefaultConfig()
	cfg.Lists.Dir = listDir
	cfg.Output.Dir = filepath.Join(root, "Quests")
	cfg.Seed = 20240601
	cfg.Report.Path = filepath.Join(root, "reports", "catalog.xlsx")
	cfg.Database.SQLitePath = filepath.Join(root, "data", "questgen.db")
	return cfg
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)

	summary, err := run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	// 3 mobs + 2 mining + 2 building + 1 food + 2 smelt + 1 tame + 0 ride + 9 singletons
	if summary.Quests != 20 {
		t.Errorf("Quests = %d, want 20", summary.Quests)
	}
	if len(summary.Documents) != 17 {
		t.Fatalf("Documents = %d, want 17", len(summary.Documents))
	}
	if summary.Seed != cfg.Seed {
		t.Errorf("Seed = %d, want %d", summary.Seed, cfg.Seed)
	}
	if summary.RunID != 0 || summary.ReportPath != "" {
		t.Error("Report and index should be skipped when disabled")
	}

	riding, err := document.ReadFile(filepath.Join(cfg.Output.Dir, "riding.yml"))
	if err != nil {
		t.Fatalf("riding.yml not written: %v", err)
	}
	if len(riding) != 0 {
		t.Errorf("riding.yml should be empty, got %d records", len(riding))
	}

	extra, err := document.ReadFile(filepath.Join(cfg.Output.Dir, quest.AggregateDocument))
	if err != nil {
		t.Fatal(err)
	}
	if len(extra) != 20 {
		t.Errorf("extra.yml has %d records, want 20", len(extra))
	}
	if _, ok := extra["milk_1"]; !ok {
		t.Error("extra.yml is missing milk_1")
	}
}

func TestRunIsDeterministic(t *testing.T) {
	first := testConfig(t)
	second := testConfig(t)

	a, err := run(context.Background(), first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := run(context.Background(), second)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a.Documents {
		if a.Documents[i].Digest != b.Documents[i].Digest {
			t.Errorf("%s differs between runs with the same seed", a.Documents[i].Name)
		}
	}
}

func TestRunWithReportAndIndex(t *testing.T) {
	cfg := testConfig(t)
	cfg.Report.Enabled = true
	cfg.Database.Enabled = true

	summary, err := run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	if _, err := os.Stat(cfg.Report.Path); err != nil {
		t.Errorf("Report not written: %v", err)
	}
	if summary.RunID == 0 {
		t.Fatal("Run was not recorded")
	}

	db, err := database.Open(cfg.Database.Config)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	latest, err := db.LatestRun()
	if err != nil {
		t.Fatal(err)
	}
	if latest.ID != summary.RunID || latest.Seed != cfg.Seed || latest.QuestCount != summary.Quests {
		t.Errorf("LatestRun = %+v", latest)
	}
}

func TestRunMissingListWritesNothing(t *testing.T) {
	cfg := testConfig(t)
	if err := os.Remove(filepath.Join(cfg.Lists.Dir, "tamable.yml")); err != nil {
		t.Fatal(err)
	}

	_, err := run(context.Background(), cfg)
	if !errors.Is(err, lists.ErrInputMissing) {
		t.Fatalf("Expected ErrInputMissing, got %v", err)
	}

	var loadErr *lists.LoadError
	if !errors.As(err, &loadErr) || loadErr.List != quest.ListTamable {
		t.Errorf("Error should name the tamable list: %v", err)
	}

	if _, err := os.Stat(cfg.Output.Dir); !os.IsNotExist(err) {
		t.Error("Output directory should not exist after a failed load")
	}
}

func TestRunMalformedList(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(cfg.Lists.Dir, "food.yml")
	if err := os.WriteFile(path, []byte("bread: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(context.Background(), cfg); !errors.Is(err, lists.ErrInputMalformed) {
		t.Errorf("Expected ErrInputMalformed, got %v", err)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.Dir = ""

	if _, err := run(context.Background(), cfg); err == nil {
		t.Error("Expected error for empty output directory")
	}
}

func TestRunCancelled(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := run(ctx, cfg); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(cfg.Output.Dir); !os.IsNotExist(err) {
		t.Error("Cancelled run should not write documents")
	}
}
