package resolver

import (
	"github.com/KirkDiggler/talent-traits/internal/catalog"
	"github.com/KirkDiggler/talent-traits/internal/domain/talents"
	"github.com/KirkDiggler/talent-traits/internal/domain/traits"
	"github.com/KirkDiggler/talent-traits/internal/rewards"
)

// Result is the outcome of resolving one talent snapshot
type Result struct {
	// Traits are the active traits, never nil
	Traits []traits.Trait

	// Rewards holds the reward entries this call imported. Only the
	// resolution that performed the one-time import sees a non-nil delta.
	Rewards rewards.Delta
}

// Resolver maps talent ranks to active traits
type Resolver struct {
	catalog *catalog.Catalog
	index   *rewards.Index
}

// New creates a resolver over a catalog. A nil index gets a private one.
func New(c *catalog.Catalog, index *rewards.Index) *Resolver {
	if index == nil {
		index = rewards.NewIndex()
	}
	return &Resolver{
		catalog: c,
		index:   index,
	}
}

// Catalog returns the rules the resolver evaluates
func (r *Resolver) Catalog() *catalog.Catalog {
	return r.catalog
}

// Index returns the reward index the resolver populates
func (r *Resolver) Index() *rewards.Index {
	return r.index
}

// Resolve evaluates every rule against every talent in the snapshot.
// Output follows category order, then rule order, then snapshot order.
// A snapshot with no matching talents yields an empty list.
func (r *Resolver) Resolve(snapshot talents.Snapshot) *Result {
	result := &Result{Traits: make([]traits.Trait, 0)}

	ranks := make([]talents.Rank, len(snapshot))
	for i, t := range snapshot {
		ranks[i] = talents.Rank{Key: talents.NormalizeKey(t.Key), Rank: t.Rank}
	}

	r.catalog.Each(func(rule catalog.Rule) {
		for _, t := range ranks {
			if t.Key == rule.TalentKey && rule.Active(t.Rank) {
				result.Traits = append(result.Traits, rule.Trait())
			}
		}
	})

	if delta, imported := r.index.ImportOnce(r.catalog); imported {
		result.Rewards = delta
	}

	return result
}
