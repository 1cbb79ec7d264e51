package talenttraits

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/talent-traits/internal/aggregator"
	"github.com/KirkDiggler/talent-traits/internal/catalog"
	"github.com/KirkDiggler/talent-traits/internal/domain/actor"
	"github.com/KirkDiggler/talent-traits/internal/domain/traits"
	traiterr "github.com/KirkDiggler/talent-traits/internal/errors"
	"github.com/KirkDiggler/talent-traits/internal/events"
	"github.com/KirkDiggler/talent-traits/internal/logger"
	"github.com/KirkDiggler/talent-traits/internal/repositories/rulestate"
	"github.com/KirkDiggler/talent-traits/internal/resolver"
	"github.com/KirkDiggler/talent-traits/internal/rewards"
	"github.com/KirkDiggler/talent-traits/internal/uuid"
)

const rebuildListenerID = "talent_traits_rebuild"

// Service owns the talent trait state of one game session
type Service interface {
	// SessionID identifies the session in logs
	SessionID() string

	// Catalog returns the loaded rules
	Catalog() *catalog.Catalog

	// Rewards returns the reward index read by talent UI code
	Rewards() *rewards.Index

	// Bus returns the session event bus. Emit a talent_ranks_changed event
	// to have an actor's talent traits rebuilt.
	Bus() *events.Bus

	// SetupActor resolves an actor's talent traits for the first time
	SetupActor(a *actor.Actor) error

	// Rebuild re-resolves an actor's talent traits from its current ranks
	Rebuild(a *actor.Actor) []traits.Trait

	// RebuildAll re-resolves many actors concurrently
	RebuildAll(ctx context.Context, actors []*actor.Actor) error

	// AllTraits returns the actor's base traits followed by every
	// registered source, talent traits included
	AllTraits(a *actor.Actor) []traits.Trait

	// Upcoming previews the unlocks an actor at rank has not reached
	Upcoming(talentKey string, rank int) []rewards.Entry

	// Save writes the rule state to a save slot when persistence is enabled
	Save(ctx context.Context, saveID string) error

	// Load replaces the rule state from a save slot when persistence is enabled
	Load(ctx context.Context, saveID string) error

	// Reset clears session state, as on a new game
	Reset() error
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog *catalog.Catalog // Required
	Report  *catalog.Report  // Optional, skipped rules are logged

	Repository       rulestate.Repository   // Optional, defaults to in-memory
	PersistRuleState bool                   // Save/Load are no-ops unless set
	Aggregator       *aggregator.Aggregator // Optional, talent source is registered into it
	Bus              *events.Bus            // Optional
	Logger           *logger.Logger         // Optional
	UUIDGenerator    uuid.Generator         // Optional
}

type service struct {
	id         string
	resolver   *resolver.Resolver
	index      *rewards.Index
	aggregator *aggregator.Aggregator
	bus        *events.Bus
	repository rulestate.Repository
	persist    bool
	log        *logger.Logger
}

// NewService creates the talent trait service for a session
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}
	id := gen.New()

	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With("session_id", id)

	bus := cfg.Bus
	if bus == nil {
		bus = events.NewBus(log)
	}

	repo := cfg.Repository
	if repo == nil {
		repo = rulestate.NewInMemory()
	}

	agg := cfg.Aggregator
	if agg == nil {
		agg = aggregator.New()
	}
	agg.Register(resolver.NewSource())

	index := rewards.NewIndex()
	s := &service{
		id:         id,
		resolver:   resolver.New(cfg.Catalog, index),
		index:      index,
		aggregator: agg,
		bus:        bus,
		repository: repo,
		persist:    cfg.PersistRuleState,
		log:        log,
	}

	s.logReport(cfg.Report)
	bus.Subscribe(events.EventTypeTalentRanksChanged, &events.ListenerFunc{
		Key:   rebuildListenerID,
		Order: events.PriorityRebuild,
		Fn:    s.handleRanksChanged,
	})

	log.Info("talent trait session started", "rules", cfg.Catalog.Len(), "persist_rule_state", s.persist)
	return s
}

func (s *service) SessionID() string         { return s.id }
func (s *service) Catalog() *catalog.Catalog { return s.resolver.Catalog() }
func (s *service) Rewards() *rewards.Index   { return s.index }
func (s *service) Bus() *events.Bus          { return s.bus }

func (s *service) SetupActor(a *actor.Actor) error {
	if a == nil {
		return traiterr.InvalidArgument("actor cannot be nil")
	}

	s.Rebuild(a)

	if err := s.bus.Emit(&events.BaseEvent{Type: events.EventTypeActorInitialized, Actor: a}); err != nil {
		return traiterr.Wrapf(err, "failed to announce actor %s", a.ID)
	}
	return nil
}

func (s *service) Rebuild(a *actor.Actor) []traits.Trait {
	if a == nil {
		return nil
	}

	result := s.resolver.Resolve(a.TalentSnapshot())
	a.SetTalentTraits(result.Traits)

	if result.Rewards != nil {
		s.log.Debug("imported trait rewards", "talents", len(result.Rewards), "entries", s.index.Len())
	}
	s.log.Debug("resolved talent traits", "actor_id", a.ID, "traits", len(result.Traits))

	return result.Traits
}

func (s *service) RebuildAll(ctx context.Context, actors []*actor.Actor) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, a := range actors {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.Rebuild(a)
			return nil
		})
	}
	return g.Wait()
}

func (s *service) AllTraits(a *actor.Actor) []traits.Trait {
	if a == nil {
		return nil
	}
	return s.aggregator.AllTraits(a)
}

func (s *service) Upcoming(talentKey string, rank int) []rewards.Entry {
	return s.index.Upcoming(talentKey, rank)
}

func (s *service) Save(ctx context.Context, saveID string) error {
	if !s.persist {
		s.log.Debug("rule state persistence disabled, skipping save", "save_id", saveID)
		return nil
	}

	if err := s.repository.Save(ctx, saveID, s.index.State()); err != nil {
		return traiterr.Wrapf(err, "failed to save rule state for %s", saveID)
	}

	s.log.Info("saved rule state", "save_id", saveID, "entries", s.index.Len())
	return nil
}

func (s *service) Load(ctx context.Context, saveID string) error {
	if !s.persist {
		s.log.Debug("rule state persistence disabled, skipping load", "save_id", saveID)
		return nil
	}

	state, err := s.repository.Get(ctx, saveID)
	if err != nil {
		return traiterr.Wrapf(err, "failed to load rule state for %s", saveID)
	}

	s.index.Restore(state)
	s.log.Info("loaded rule state", "save_id", saveID, "entries", s.index.Len())
	return nil
}

func (s *service) Reset() error {
	s.index.Reset()
	s.log.Info("talent trait session reset")

	if err := s.bus.Emit(&events.BaseEvent{Type: events.EventTypeSessionReset}); err != nil {
		return traiterr.Wrap(err, "failed to announce session reset")
	}
	return nil
}

func (s *service) handleRanksChanged(event events.Event) error {
	a := event.GetActor()
	if a == nil {
		return traiterr.InvalidArgument("talent rank change without an actor")
	}
	s.Rebuild(a)
	return nil
}

func (s *service) logReport(report *catalog.Report) {
	if report == nil {
		return
	}
	for _, skip := range report.Skipped {
		s.log.Warn("skipped trait rule", "category", skip.Category.Key, "index", skip.Index, "reason", skip.Reason)
	}
	for _, name := range report.Unknown {
		s.log.Warn("ignored unknown rule category", "category", name)
	}
	for _, name := range report.Unreadable {
		s.log.Warn("could not read rule category", "category", name)
	}
}
