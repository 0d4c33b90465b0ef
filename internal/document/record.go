// Package document reads and writes quest documents in the plugin's YAML layout.
package document

import (
	"fmt"

	"github.com/lawnchairsociety/questgen/internal/quest"
)

// ItemRecord is the display block of a quest in plugin format
type ItemRecord struct {
	Lore     []string `yaml:"lore" json:"lore"`
	Material string   `yaml:"material" json:"material"`
	Name     string   `yaml:"name" json:"name"`
}

// Record is one quest entry in plugin format.
// Fields are declared in the order they are written.
type Record struct {
	AntiAbuse        bool       `yaml:"anti-abuse,omitempty" json:"anti-abuse,omitempty"`
	Item             ItemRecord `yaml:"item" json:"item"`
	Name             string     `yaml:"name" json:"name"`
	Points           int        `yaml:"points" json:"points"`
	RequiredProgress int        `yaml:"required-progress" json:"required-progress"`
	Type             string     `yaml:"type" json:"type"`
	Variable         string     `yaml:"variable,omitempty" json:"variable,omitempty"`
}

// FromQuest converts a generated quest to its plugin record
func FromQuest(q *quest.Quest) Record {
	lore := make([]string, len(q.Item.Lore))
	copy(lore, q.Item.Lore)

	rec := Record{
		AntiAbuse: q.AntiAbuse,
		Item: ItemRecord{
			Lore:     lore,
			Material: q.Item.Material,
			Name:     q.Item.Name,
		},
		Name:             q.Name,
		Points:           q.Points,
		RequiredProgress: q.RequiredProgress,
		Type:             string(q.Kind),
	}
	if q.HasSubject() {
		rec.Variable = q.Subject
	}
	return rec
}

// ToQuest converts a plugin record back into a quest.
// Tier and exp label are derived from the required progress.
func ToQuest(id string, rec Record) (*quest.Quest, error) {
	kind := quest.Kind(rec.Type)
	if !quest.IsKnownKind(kind) {
		return nil, fmt.Errorf("quest %s: %w: %q", id, quest.ErrUnknownKind, rec.Type)
	}

	difficulty := quest.Classify(rec.RequiredProgress)
	lore := make([]string, len(rec.Item.Lore))
	copy(lore, rec.Item.Lore)

	return &quest.Quest{
		ID:               id,
		Kind:             kind,
		Subject:          rec.Variable,
		RequiredProgress: rec.RequiredProgress,
		Tier:             difficulty.Tier,
		Points:           rec.Points,
		ExpLabel:         difficulty.ExpLabel,
		Name:             rec.Name,
		Item: quest.Item{
			Name:     rec.Item.Name,
			Material: rec.Item.Material,
			Lore:     lore,
		},
		AntiAbuse: rec.AntiAbuse,
	}, nil
}

// Records converts every quest in a collection, keyed by identifier
func Records(c *quest.Collection) map[string]Record {
	records := make(map[string]Record, c.Len())
	for _, q := range c.Quests() {
		records[q.ID] = FromQuest(q)
	}
	return records
}
