package rulestate

import (
	"context"
	"sync"

	traiterr "github.com/KirkDiggler/talent-traits/internal/errors"
	"github.com/KirkDiggler/talent-traits/internal/rewards"
)

type inMemoryRepo struct {
	mu     sync.RWMutex
	states map[string]*rewards.State
}

// NewInMemory creates a process-local rule state repository
func NewInMemory() Repository {
	return &inMemoryRepo{
		states: make(map[string]*rewards.State),
	}
}

func (r *inMemoryRepo) Save(_ context.Context, saveID string, state *rewards.State) error {
	if saveID == "" {
		return traiterr.InvalidArgument("save ID is required")
	}
	if state == nil {
		return traiterr.InvalidArgument("rule state cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Copy to avoid external modifications
	r.states[saveID] = copyState(state)
	return nil
}

func (r *inMemoryRepo) Get(_ context.Context, saveID string) (*rewards.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, exists := r.states[saveID]
	if !exists {
		return nil, traiterr.NotFoundf("rule state for save %s not found", saveID)
	}
	return copyState(state), nil
}

func (r *inMemoryRepo) Delete(_ context.Context, saveID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.states[saveID]; !exists {
		return traiterr.NotFoundf("rule state for save %s not found", saveID)
	}
	delete(r.states, saveID)
	return nil
}

func copyState(state *rewards.State) *rewards.State {
	out := &rewards.State{
		Imported: state.Imported,
		Rewards:  make(map[string][]rewards.Entry, len(state.Rewards)),
	}
	for k, list := range state.Rewards {
		cp := make([]rewards.Entry, len(list))
		copy(cp, list)
		out.Rewards[k] = cp
	}
	return out
}
