package rulestate

//go:generate mockgen -destination=mock/mock.go -package=mockrulestate -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/talent-traits/internal/rewards"
)

// Repository persists the mutable rule state (the reward index) as part of
// a save payload
type Repository interface {
	// Save stores the state under a save slot, replacing any previous one
	Save(ctx context.Context, saveID string, state *rewards.State) error

	// Get retrieves the state stored under a save slot
	Get(ctx context.Context, saveID string) (*rewards.State, error)

	// Delete removes the state stored under a save slot
	Delete(ctx context.Context, saveID string) error
}
