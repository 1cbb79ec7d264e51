package resolver

import (
	"github.com/KirkDiggler/talent-traits/internal/aggregator"
	"github.com/KirkDiggler/talent-traits/internal/domain/actor"
	"github.com/KirkDiggler/talent-traits/internal/domain/traits"
)

// SourceKey identifies talent traits in an aggregator
const SourceKey = "talent_traits"

// Source plugs an actor's cached talent traits into the host aggregator.
// It reads the cache only; re-resolution happens on setup and rebuild.
type Source struct{}

var _ aggregator.Source = (*Source)(nil)

// NewSource creates the talent trait source
func NewSource() *Source {
	return &Source{}
}

func (s *Source) Key() string   { return SourceKey }
func (s *Source) Priority() int { return aggregator.PriorityTalents }

func (s *Source) Traits(a *actor.Actor) []traits.Trait {
	return a.TalentTraits()
}
