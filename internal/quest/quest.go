// Package quest generates the quest catalog consumed by the server's quest plugin.
package quest

// Kind defines the gameplay action a quest tracks.
// The value is the plugin's type name and is written verbatim to the "type" field.
type Kind string

const (
	KindKillMob        Kind = "kill-mob"
	KindMineBlock      Kind = "block-break"
	KindPlaceBlock     Kind = "block-place"
	KindConsume        Kind = "consume"
	KindSmelt          Kind = "smelt"
	KindTame           Kind = "tame"
	KindRide           Kind = "ride-mob"
	KindShear          Kind = "shear"
	KindMilk           Kind = "milk"
	KindMove           Kind = "move"
	KindSwim           Kind = "swim"
	KindSprint         Kind = "sprint"
	KindSneak          Kind = "sneak"
	KindGlide          Kind = "glide"
	KindFly            Kind = "fly"
	KindGainExperience Kind = "gain-experience"
)

// Item is the display block the plugin renders for a quest
type Item struct {
	Name     string   // Title, including color codes
	Material string   // Icon material (e.g., "STONE_SWORD")
	Lore     []string // Flavor text lines
}

// Quest represents a single generated quest definition
type Quest struct {
	ID               string // Unique identifier (e.g., "mob_4")
	Kind             Kind
	Subject          string // Mob, block or item name (empty for singleton kinds)
	RequiredProgress int
	Tier             Tier
	Points           int
	ExpLabel         string
	Name             string
	Item             Item
	AntiAbuse        bool // Kind can be farmed by breaking and re-placing the same block
}

// HasSubject returns true if the quest targets a specific mob, block or item
func (q *Quest) HasSubject() bool {
	return q.Subject != ""
}
