package actor

import (
	"sync"

	"github.com/KirkDiggler/talent-traits/internal/domain/talents"
	"github.com/KirkDiggler/talent-traits/internal/domain/traits"
)

// Actor is the host's view of a character as far as talent traits are
// concerned: traits granted by its class/equipment, where its talent ranks
// come from, and the talent traits last resolved for it.
type Actor struct {
	ID   string
	Name string

	// Base are the traits the host grants independently of talents
	Base []traits.Trait

	// Talents supplies the current rank snapshot
	Talents talents.Provider

	talentTraits []traits.Trait
	mu           sync.RWMutex
}

// New creates an actor backed by the given talent provider
func New(id, name string, provider talents.Provider) *Actor {
	return &Actor{
		ID:      id,
		Name:    name,
		Talents: provider,
	}
}

// BaseTraits returns a copy of the host-granted traits
func (a *Actor) BaseTraits() []traits.Trait {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]traits.Trait, len(a.Base))
	copy(out, a.Base)
	return out
}

// TalentSnapshot returns the actor's current talent ranks, empty when the
// actor has no provider
func (a *Actor) TalentSnapshot() talents.Snapshot {
	if a.Talents == nil {
		return talents.Snapshot{}
	}
	return a.Talents.TalentSnapshot()
}

// SetTalentTraits replaces the cached talent traits wholesale
func (a *Actor) SetTalentTraits(list []traits.Trait) {
	cp := make([]traits.Trait, len(list))
	copy(cp, list)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.talentTraits = cp
}

// TalentTraits returns a copy of the cached talent traits
func (a *Actor) TalentTraits() []traits.Trait {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]traits.Trait, len(a.talentTraits))
	copy(out, a.talentTraits)
	return out
}
