package quest

import (
	"fmt"
	"strconv"
)

// Collection is an ordered set of quests keyed by identifier
type Collection struct {
	Category Category
	order    []string
	quests   map[string]*Quest
}

// NewCollection creates an empty collection for a category
func NewCollection(cat Category) *Collection {
	return &Collection{
		Category: cat,
		quests:   make(map[string]*Quest),
	}
}

// NextID allocates the next identifier in the category namespace.
// It starts at prefix+(len+1) and skips identifiers already taken.
func (c *Collection) NextID() string {
	for n := len(c.quests) + 1; ; n++ {
		id := c.Category.Prefix + strconv.Itoa(n)
		if _, taken := c.Get(id); !taken {
			return id
		}
	}
}

// Add appends a quest, rejecting identifiers already present
func (c *Collection) Add(q *Quest) error {
	if _, exists := c.Get(q.ID); exists {
		return fmt.Errorf("%w: %s in %s", ErrDuplicateID, q.ID, c.Category.Name)
	}
	c.quests[q.ID] = q
	c.order = append(c.order, q.ID)
	return nil
}

// Get returns a quest by identifier
func (c *Collection) Get(id string) (*Quest, bool) {
	q, ok := c.quests[id]
	return q, ok
}

// Len returns the number of quests
func (c *Collection) Len() int {
	return len(c.order)
}

// IDs returns identifiers in insertion order
func (c *Collection) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

// Quests returns the quests in insertion order
func (c *Collection) Quests() []*Quest {
	quests := make([]*Quest, 0, len(c.order))
	for _, id := range c.order {
		quests = append(quests, c.quests[id])
	}
	return quests
}

// Merge adds every quest of other to c
func (c *Collection) Merge(other *Collection) error {
	for _, q := range other.Quests() {
		if err := c.Add(q); err != nil {
			return err
		}
	}
	return nil
}

// Catalog holds every category collection plus the aggregate of all quests
type Catalog struct {
	Seed        int64
	Collections []*Collection // In Categories order
	All         *Collection
}

// Collection returns the collection for a category name
func (cat *Catalog) Collection(name string) (*Collection, bool) {
	for _, c := range cat.Collections {
		if c.Category.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Documents returns every collection to write, the aggregate last
func (cat *Catalog) Documents() []*Collection {
	docs := make([]*Collection, 0, len(cat.Collections)+1)
	docs = append(docs, cat.Collections...)
	return append(docs, cat.All)
}
