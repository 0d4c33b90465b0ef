package report

import (
	"context"
	"path/filepath"
	"reflect"
	"strconv"
	"testing"

	"github.com/lawnchairsociety/questgen/internal/quest"
	"github.com/xuri/excelize/v2"
)

func testCatalog(t *testing.T) *quest.Catalog {
	t.Helper()
	lists := quest.Lists{
		quest.ListMobs:      {"ZOMBIE", "SKELETON", "CREEPER"},
		quest.ListBlocks:    {"STONE"},
		quest.ListFood:      {},
		quest.ListSmeltable: {"GLASS"},
		quest.ListTamable:   {"WOLF"},
		quest.ListRideable:  {"HORSE"},
	}
	catalog, err := quest.NewGenerator(8).Generate(context.Background(), lists)
	if err != nil {
		t.Fatal(err)
	}
	return catalog
}

func TestSummarize(t *testing.T) {
	catalog := testCatalog(t)
	mobs, _ := catalog.Collection("mobs")

	s := Summarize(mobs)
	if s.Quests != 3 {
		t.Errorf("Quests = %d, want 3", s.Quests)
	}

	tierTotal := 0
	points := 0
	for _, tier := range quest.AllTiers() {
		tierTotal += s.ByTier[tier]
	}
	for _, q := range mobs.Quests() {
		points += q.Points
	}
	if tierTotal != 3 {
		t.Errorf("Tier counts sum to %d, want 3", tierTotal)
	}
	if s.TotalPoints != points {
		t.Errorf("TotalPoints = %d, want %d", s.TotalPoints, points)
	}
}

func TestWriteWorkbook(t *testing.T) {
	catalog := testCatalog(t)
	path := filepath.Join(t.TempDir(), "reports", "catalog.xlsx")

	if err := WriteWorkbook(path, catalog); err != nil {
		t.Fatalf("WriteWorkbook returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}
	defer f.Close()

	summary, err := f.GetRows(SummarySheet)
	if err != nil {
		t.Fatal(err)
	}
	// Header + 16 categories + aggregate
	if len(summary) != 18 {
		t.Fatalf("Summary has %d rows, want 18", len(summary))
	}
	wantHeader := []string{"Category", "Document", "Kind", "Quests", "Easy", "Medium", "Hard", "Total Points"}
	if !reflect.DeepEqual(summary[0], wantHeader) {
		t.Errorf("Summary header = %v, want %v", summary[0], wantHeader)
	}
	// Tier columns add up to the quest count
	for _, row := range summary[1:] {
		quests, _ := strconv.Atoi(row[3])
		byTier := 0
		for _, cell := range row[4:7] {
			n, _ := strconv.Atoi(cell)
			byTier += n
		}
		if byTier != quests {
			t.Errorf("%s tier columns sum to %d, want %d", row[0], byTier, quests)
		}
	}
	if summary[1][0] != "mobs" || summary[1][3] != "3" {
		t.Errorf("Unexpected mobs summary row: %v", summary[1])
	}
	if summary[17][1] != quest.AggregateDocument {
		t.Errorf("Last summary row should be the aggregate: %v", summary[17])
	}
	if summary[17][3] != strconv.Itoa(catalog.All.Len()) {
		t.Errorf("Aggregate count = %s, want %d", summary[17][3], catalog.All.Len())
	}

	rows, err := f.GetRows(QuestsSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != catalog.All.Len()+1 {
		t.Errorf("Quests sheet has %d rows, want %d", len(rows), catalog.All.Len()+1)
	}
	if rows[1][0] != "mob_1" || rows[1][3] != "ZOMBIE" {
		t.Errorf("Unexpected first quest row: %v", rows[1])
	}
}
