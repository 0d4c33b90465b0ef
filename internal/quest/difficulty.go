package quest

// Tier is the difficulty classification of a quest
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// Progress thresholds for tier assignment (inclusive upper bounds)
const (
	easyMaxProgress   = 15
	mediumMaxProgress = 30
)

// Difficulty is the reward a quest earns for its tier
type Difficulty struct {
	Tier     Tier
	Points   int
	ExpLabel string
}

var difficulties = map[Tier]Difficulty{
	TierEasy:   {Tier: TierEasy, Points: 3, ExpLabel: "3x"},
	TierMedium: {Tier: TierMedium, Points: 4, ExpLabel: "4x"},
	TierHard:   {Tier: TierHard, Points: 5, ExpLabel: "5x"},
}

// Classify maps a required progress value to its difficulty.
// Every integer maps to exactly one tier.
func Classify(progress int) Difficulty {
	switch {
	case progress <= easyMaxProgress:
		return difficulties[TierEasy]
	case progress <= mediumMaxProgress:
		return difficulties[TierMedium]
	default:
		return difficulties[TierHard]
	}
}

// AllTiers returns the tiers from easiest to hardest
func AllTiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard}
}
