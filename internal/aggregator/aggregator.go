package aggregator

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/talent-traits/internal/domain/actor"
	"github.com/KirkDiggler/talent-traits/internal/domain/traits"
)

// Priority levels for source ordering (lower = earlier in the list)
const (
	PriorityClass     = 100
	PriorityTalents   = 200
	PriorityEquipment = 300
	PriorityTemporary = 400
)

// Source contributes traits to an actor on top of its base traits
type Source interface {
	// Key uniquely identifies the source
	Key() string

	// Priority orders sources; ties keep registration order
	Priority() int

	// Traits returns the source's traits for the actor
	Traits(a *actor.Actor) []traits.Trait
}

// Aggregator answers the host's "all traits" query by concatenating the
// actor's base traits with every registered source
type Aggregator struct {
	mu      sync.RWMutex
	sources []Source
}

// New creates an aggregator with the given sources registered
func New(sources ...Source) *Aggregator {
	agg := &Aggregator{}
	for _, s := range sources {
		agg.Register(s)
	}
	return agg
}

// Register adds a source, replacing any source with the same key
func (g *Aggregator) Register(source Source) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, existing := range g.sources {
		if existing.Key() == source.Key() {
			g.sources[i] = source
			g.sortLocked()
			return
		}
	}

	g.sources = append(g.sources, source)
	g.sortLocked()
}

// Unregister removes a source by key
func (g *Aggregator) Unregister(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, s := range g.sources {
		if s.Key() != key {
			continue
		}
		g.sources = append(g.sources[:i], g.sources[i+1:]...)
		return
	}
}

// Sources returns the registered source keys in application order
func (g *Aggregator) Sources() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := make([]string, 0, len(g.sources))
	for _, s := range g.sources {
		keys = append(keys, s.Key())
	}
	return keys
}

// AllTraits returns base ++ source traits as a new slice. The actor's
// base list is never modified.
func (g *Aggregator) AllTraits(a *actor.Actor) []traits.Trait {
	out := a.BaseTraits()

	g.mu.RLock()
	sources := make([]Source, len(g.sources))
	copy(sources, g.sources)
	g.mu.RUnlock()

	for _, s := range sources {
		out = append(out, s.Traits(a)...)
	}
	return out
}

func (g *Aggregator) sortLocked() {
	sort.SliceStable(g.sources, func(i, j int) bool {
		return g.sources[i].Priority() < g.sources[j].Priority()
	})
}
