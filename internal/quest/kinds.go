package quest

import "fmt"

// Lore line prefixes. Kill, mine and place quests use the older plugin layout.
const (
	lorePrefixClassic = "&8  &7"
	lorePrefixArrow   = "&8 » &7"
)

// Template placeholders
const (
	placeholderSubject  = "{subject}"
	placeholderProgress = "{progress}"
)

// titlePrefix is prepended to the display name of every quest item
const titlePrefix = "&e&lQUEST:&f "

// KindSpec describes how quests of one kind are built
type KindSpec struct {
	Kind            Kind
	MinProgress     int  // Inclusive
	MaxProgress     int  // Inclusive
	RequiresSubject bool // Per-subject kind (one quest per list entry)
	AntiAbuse       bool
	Name            string // Quest name template
	Title           string // Display title template (without titlePrefix)
	Material        string // Fixed icon material; empty means use the subject
	LorePrefix      string
	Objective       string // Second lore line template
}

var kindSpecs = map[Kind]*KindSpec{
	KindKillMob: {
		Kind: KindKillMob, MinProgress: 16, MaxProgress: 40, RequiresSubject: true,
		Name: "{subject} Hunter", Title: "{subject} Slayer", Material: "STONE_SWORD",
		LorePrefix: lorePrefixClassic, Objective: "kill &3{progress} {subject}&7.",
	},
	KindMineBlock: {
		Kind: KindMineBlock, MinProgress: 16, MaxProgress: 40, RequiresSubject: true, AntiAbuse: true,
		Name: "{subject} Miner", Title: "{subject} Miner",
		LorePrefix: lorePrefixClassic, Objective: "Mine &3{progress} {subject}&7.",
	},
	KindPlaceBlock: {
		Kind: KindPlaceBlock, MinProgress: 16, MaxProgress: 40, RequiresSubject: true, AntiAbuse: true,
		Name: "{subject} Builder", Title: "{subject} Builder",
		LorePrefix: lorePrefixClassic, Objective: "Place &3{progress} {subject}&7.",
	},
	KindConsume: {
		Kind: KindConsume, MinProgress: 10, MaxProgress: 30, RequiresSubject: true,
		Name: "{subject} Consumer", Title: "{subject} Consumer",
		LorePrefix: lorePrefixArrow, Objective: "Eat &3{progress} {subject}&7.",
	},
	KindSmelt: {
		Kind: KindSmelt, MinProgress: 16, MaxProgress: 40, RequiresSubject: true,
		Name: "{subject} Smelter", Title: "{subject} Smelter",
		LorePrefix: lorePrefixArrow, Objective: "Smelt items to create &3{progress} {subject}&7.",
	},
	KindTame: {
		Kind: KindTame, MinProgress: 3, MaxProgress: 8, RequiresSubject: true,
		Name: "{subject} Tamer", Title: "{subject} Tamer", Material: "LEAD",
		LorePrefix: lorePrefixArrow, Objective: "Tame &3{progress} {subject}&7.",
	},
	KindRide: {
		Kind: KindRide, MinProgress: 100, MaxProgress: 500, RequiresSubject: true,
		Name: "{subject} Rider", Title: "{subject} Rider", Material: "SADDLE",
		LorePrefix: lorePrefixArrow, Objective: "Ride a {subject} for &3{progress} blocks&7.",
	},
	KindShear: {
		Kind: KindShear, MinProgress: 10, MaxProgress: 30,
		Name: "Sheep Shearer", Title: "Sheep Shearer", Material: "SHEARS",
		LorePrefix: lorePrefixArrow, Objective: "Shear &3{progress} sheep&7.",
	},
	KindMilk: {
		Kind: KindMilk, MinProgress: 10, MaxProgress: 30,
		Name: "Cow Milker", Title: "Cow Milker", Material: "BUCKET",
		LorePrefix: lorePrefixArrow, Objective: "Milk &3{progress} cows&7.",
	},
	KindMove: {
		Kind: KindMove, MinProgress: 1000, MaxProgress: 3000,
		Name: "Adventurous Traveller", Title: "Adventurous Traveller", Material: "COMPASS",
		LorePrefix: lorePrefixArrow, Objective: "Move a distance of &3{progress} blocks&7.",
	},
	KindSwim: {
		Kind: KindSwim, MinProgress: 300, MaxProgress: 1000,
		Name: "Water Explorer", Title: "Water Explorer", Material: "WATER_BUCKET",
		LorePrefix: lorePrefixArrow, Objective: "Swim a distance of &3{progress} blocks&7.",
	},
	KindSprint: {
		Kind: KindSprint, MinProgress: 100, MaxProgress: 300,
		Name: "Speed Demon", Title: "Speed Demon", Material: "SUGAR",
		LorePrefix: lorePrefixArrow, Objective: "Sprint a distance of &3{progress} blocks&7.",
	},
	KindSneak: {
		Kind: KindSneak, MinProgress: 300, MaxProgress: 1000,
		Name: "Stealthy Ninja", Title: "Stealthy Ninja", Material: "LEATHER_BOOTS",
		LorePrefix: lorePrefixArrow, Objective: "Sneak for &3{progress} seconds&7.",
	},
	KindGlide: {
		Kind: KindGlide, MinProgress: 300, MaxProgress: 1000,
		Name: "Sky Diver", Title: "Sky Diver", Material: "ELYTRA",
		LorePrefix: lorePrefixArrow, Objective: "Glide a distance of &3{progress} blocks&7.",
	},
	KindFly: {
		Kind: KindFly, MinProgress: 500, MaxProgress: 2000,
		Name: "Aviator", Title: "Aviator", Material: "FEATHER",
		LorePrefix: lorePrefixArrow, Objective: "Fly a distance of &3{progress} blocks&7.",
	},
	KindGainExperience: {
		Kind: KindGainExperience, MinProgress: 500, MaxProgress: 2000,
		Name: "Experience Hunter", Title: "Experience Hunter", Material: "EXPERIENCE_BOTTLE",
		LorePrefix: lorePrefixArrow, Objective: "Gain a total of &3{progress} experience points&7.",
	},
}

// SpecFor returns the build descriptor for a kind
func SpecFor(kind Kind) (*KindSpec, error) {
	spec, ok := kindSpecs[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return spec, nil
}

// IsKnownKind reports whether the plugin type name belongs to a generated kind
func IsKnownKind(kind Kind) bool {
	_, ok := kindSpecs[kind]
	return ok
}

// AllKinds returns every kind in catalog order
func AllKinds() []Kind {
	kinds := make([]Kind, 0, len(Categories))
	for _, cat := range Categories {
		kinds = append(kinds, cat.Kind)
	}
	return kinds
}
