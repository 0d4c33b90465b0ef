package quest

// ListName identifies a subject list
type ListName string

const (
	ListMobs      ListName = "mobs"
	ListBlocks    ListName = "blocks" // Shared by mining and building
	ListFood      ListName = "food"
	ListSmeltable ListName = "smeltable"
	ListTamable   ListName = "tamable"
	ListRideable  ListName = "rideable"
)

// Lists holds the ordered subject names for each list
type Lists map[ListName][]string

// AllListNames returns every list the generator reads
func AllListNames() []ListName {
	return []ListName{ListMobs, ListBlocks, ListFood, ListSmeltable, ListTamable, ListRideable}
}

// Category is one generated output document
type Category struct {
	Name     string
	Kind     Kind
	List     ListName // Empty for singleton categories
	Prefix   string   // Identifier prefix (e.g., "mob_")
	Document string   // Output file name
}

// IsSingleton returns true if the category holds exactly one quest with no subject
func (c Category) IsSingleton() bool {
	return c.List == ""
}

// AggregateDocument is the file holding every generated quest
const AggregateDocument = "extra.yml"

// AggregateCategory describes the combined collection
var AggregateCategory = Category{Name: "extra", Document: AggregateDocument}

// Categories lists every generated category in output order.
// Prefixes are disjoint, which keeps identifiers unique across the aggregate.
var Categories = []Category{
	{Name: "mobs", Kind: KindKillMob, List: ListMobs, Prefix: "mob_", Document: "mobs.yml"},
	{Name: "mining", Kind: KindMineBlock, List: ListBlocks, Prefix: "mine_", Document: "mining.yml"},
	{Name: "building", Kind: KindPlaceBlock, List: ListBlocks, Prefix: "place_", Document: "building.yml"},
	{Name: "foods", Kind: KindConsume, List: ListFood, Prefix: "food_", Document: "foods.yml"},
	{Name: "smelting", Kind: KindSmelt, List: ListSmeltable, Prefix: "smelt_", Document: "smelting.yml"},
	{Name: "taming", Kind: KindTame, List: ListTamable, Prefix: "tame_", Document: "taming.yml"},
	{Name: "riding", Kind: KindRide, List: ListRideable, Prefix: "ride_", Document: "riding.yml"},
	{Name: "shearing", Kind: KindShear, Prefix: "shear_", Document: "shearing.yml"},
	{Name: "milk", Kind: KindMilk, Prefix: "milk_", Document: "milk.yml"},
	{Name: "move", Kind: KindMove, Prefix: "move_", Document: "move.yml"},
	{Name: "swim", Kind: KindSwim, Prefix: "swim_", Document: "swim.yml"},
	{Name: "sprint", Kind: KindSprint, Prefix: "sprint_", Document: "sprint.yml"},
	{Name: "sneak", Kind: KindSneak, Prefix: "sneak_", Document: "sneak.yml"},
	{Name: "glide", Kind: KindGlide, Prefix: "glide_", Document: "glide.yml"},
	{Name: "fly", Kind: KindFly, Prefix: "fly_", Document: "fly.yml"},
	{Name: "gain_experience", Kind: KindGainExperience, Prefix: "exp_", Document: "gain_experience.yml"},
}
