// Package report renders the generated catalog as a spreadsheet for balance review.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lawnchairsociety/questgen/internal/quest"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Summary"
	QuestsSheet  = "Quests"
)

// summaryHeader has one count column per tier, easiest first
func summaryHeader() []any {
	header := []any{"Category", "Document", "Kind", "Quests"}
	for _, tier := range quest.AllTiers() {
		name := string(tier)
		header = append(header, strings.ToUpper(name[:1])+name[1:])
	}
	return append(header, "Total Points")
}

var questsHeader = []any{"ID", "Category", "Kind", "Subject", "Required Progress", "Tier", "Points", "EXP", "Name", "Material", "Anti-Abuse"}

// CategorySummary aggregates one category for the summary sheet
type CategorySummary struct {
	Category    quest.Category
	Quests      int
	ByTier      map[quest.Tier]int
	TotalPoints int
}

// Summarize counts quests and points per tier for a collection
func Summarize(c *quest.Collection) CategorySummary {
	s := CategorySummary{
		Category: c.Category,
		ByTier:   make(map[quest.Tier]int),
	}
	for _, q := range c.Quests() {
		s.Quests++
		s.ByTier[q.Tier]++
		s.TotalPoints += q.Points
	}
	return s
}

// WriteWorkbook writes the catalog summary and quest listing to an xlsx file
func WriteWorkbook(path string, catalog *quest.Catalog) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if _, err := f.NewSheet(QuestsSheet); err != nil {
		return fmt.Errorf("failed to create quests sheet: %w", err)
	}

	if err := writeSummary(f, catalog); err != nil {
		return err
	}
	if err := writeQuests(f, catalog); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report %s: %w", path, err)
	}
	return nil
}

func writeSummary(f *excelize.File, catalog *quest.Catalog) error {
	if err := setRow(f, SummarySheet, 1, summaryHeader()); err != nil {
		return err
	}

	row := 2
	for _, c := range catalog.Documents() {
		s := Summarize(c)
		values := []any{
			s.Category.Name,
			s.Category.Document,
			string(s.Category.Kind),
			s.Quests,
		}
		for _, tier := range quest.AllTiers() {
			values = append(values, s.ByTier[tier])
		}
		values = append(values, s.TotalPoints)
		if err := setRow(f, SummarySheet, row, values); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeQuests(f *excelize.File, catalog *quest.Catalog) error {
	if err := setRow(f, QuestsSheet, 1, questsHeader); err != nil {
		return err
	}

	row := 2
	for _, c := range catalog.Collections {
		for _, q := range c.Quests() {
			values := []any{
				q.ID,
				c.Category.Name,
				string(q.Kind),
				q.Subject,
				q.RequiredProgress,
				string(q.Tier),
				q.Points,
				q.ExpLabel,
				q.Name,
				q.Item.Material,
				q.AntiAbuse,
			}
			if err := setRow(f, QuestsSheet, row, values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
