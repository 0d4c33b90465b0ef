package quest

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/lawnchairsociety/questgen/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Generator builds the full catalog from subject lists
type Generator struct {
	Seed       int64
	Categories []Category
}

// NewGenerator creates a generator over the standard category table
func NewGenerator(seed int64) *Generator {
	return &Generator{
		Seed:       seed,
		Categories: Categories,
	}
}

// categorySeed derives the random stream for the category at index i
func (g *Generator) categorySeed(i int) int64 {
	return g.Seed + int64(i)
}

// Generate builds every category concurrently and merges the aggregate afterwards.
// Each category uses its own seeded stream, so output depends only on the seed
// and the category's list.
func (g *Generator) Generate(ctx context.Context, lists Lists) (*Catalog, error) {
	// Resolve every input before starting any worker
	inputs := make([][]string, len(g.Categories))
	for i, cat := range g.Categories {
		if cat.IsSingleton() {
			continue
		}
		list, ok := lists[cat.List]
		if !ok {
			return nil, fmt.Errorf("%w: %s (category %s)", ErrMissingList, cat.List, cat.Name)
		}
		inputs[i] = list
	}

	collections := make([]*Collection, len(g.Categories))

	eg, ctx := errgroup.WithContext(ctx)
	for i, cat := range g.Categories {
		subjects := inputs[i]
		rng := rand.New(rand.NewSource(g.categorySeed(i)))
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := GenerateCategory(rng, cat, subjects)
			if err != nil {
				return err
			}
			collections[i] = c
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	all := NewCollection(AggregateCategory)
	for _, c := range collections {
		if err := all.Merge(c); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", c.Category.Name, err)
		}
		logger.Debug("Generated category", "category", c.Category.Name, "quests", c.Len())
	}

	return &Catalog{
		Seed:        g.Seed,
		Collections: collections,
		All:         all,
	}, nil
}

// GenerateCategory builds one category. Singleton categories ignore subjects
// and produce exactly one quest.
func GenerateCategory(rng Source, cat Category, subjects []string) (*Collection, error) {
	spec, err := SpecFor(cat.Kind)
	if err != nil {
		return nil, err
	}

	c := NewCollection(cat)
	if cat.IsSingleton() {
		subjects = []string{""}
	}

	for _, subject := range subjects {
		q, err := Build(rng, spec, c.NextID(), subject)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", cat.Name, err)
		}
		if err := c.Add(q); err != nil {
			return nil, err
		}
	}

	return c, nil
}
