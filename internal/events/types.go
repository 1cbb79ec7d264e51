package events

import (
	"github.com/KirkDiggler/talent-traits/internal/domain/actor"
)

// EventType represents the type of session event
type EventType string

const (
	// EventTypeTalentRanksChanged is emitted by the host after an actor's
	// talent ranks change; it triggers a rebuild of the actor's talent traits
	EventTypeTalentRanksChanged EventType = "talent_ranks_changed"

	// EventTypeActorInitialized is emitted after an actor's first resolution
	EventTypeActorInitialized EventType = "actor_initialized"

	// EventTypeSessionReset is emitted when session state is cleared
	EventTypeSessionReset EventType = "session_reset"
)

// Priority levels for listener ordering
const (
	PriorityRebuild = 100 // Recompute derived state first
	PriorityNotify  = 500 // UI and logging after state is consistent
)

// Event is the base interface for all session events
type Event interface {
	GetType() EventType
	GetActor() *actor.Actor
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Actor     *actor.Actor
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType     { return e.Type }
func (e *BaseEvent) GetActor() *actor.Actor { return e.Actor }
func (e *BaseEvent) IsCancelled() bool      { return e.Cancelled }
func (e *BaseEvent) Cancel()                { e.Cancelled = true }

// TalentRanksChangedEvent reports which talent moved and to what rank
type TalentRanksChangedEvent struct {
	BaseEvent
	TalentKey string
	OldRank   int
	NewRank   int
}

// NewTalentRanksChanged creates a rank change event for an actor
func NewTalentRanksChanged(a *actor.Actor, talentKey string, oldRank, newRank int) *TalentRanksChangedEvent {
	return &TalentRanksChangedEvent{
		BaseEvent: BaseEvent{Type: EventTypeTalentRanksChanged, Actor: a},
		TalentKey: talentKey,
		OldRank:   oldRank,
		NewRank:   newRank,
	}
}
