package rulestate_test

import (
	"context"
	"testing"

	traiterr "github.com/KirkDiggler/talent-traits/internal/errors"
	"github.com/KirkDiggler/talent-traits/internal/repositories/rulestate"
	"github.com/KirkDiggler/talent-traits/internal/rewards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := rulestate.NewInMemory()

	state := &rewards.State{
		Imported: true,
		Rewards:  map[string][]rewards.Entry{"fire": {{DisplayName: "Fire Resistance", Rank: 1, End: 5}}},
	}
	require.NoError(t, repo.Save(ctx, "slot-1", state))

	// caller mutations do not leak into the store
	state.Rewards["fire"][0].DisplayName = "changed"

	got, err := repo.Get(ctx, "slot-1")
	require.NoError(t, err)
	assert.Equal(t, "Fire Resistance", got.Rewards["fire"][0].DisplayName)

	got.Rewards["fire"] = nil
	again, err := repo.Get(ctx, "slot-1")
	require.NoError(t, err)
	assert.Len(t, again.Rewards["fire"], 1)
}

func TestInMemory_Errors(t *testing.T) {
	ctx := context.Background()
	repo := rulestate.NewInMemory()

	_, err := repo.Get(ctx, "missing")
	assert.True(t, traiterr.IsNotFound(err))

	assert.True(t, traiterr.IsNotFound(repo.Delete(ctx, "missing")))
	assert.True(t, traiterr.IsInvalidArgument(repo.Save(ctx, "", &rewards.State{})))
	assert.True(t, traiterr.IsInvalidArgument(repo.Save(ctx, "slot-1", nil)))
}

func TestInMemory_Delete(t *testing.T) {
	ctx := context.Background()
	repo := rulestate.NewInMemory()

	require.NoError(t, repo.Save(ctx, "slot-1", &rewards.State{}))
	require.NoError(t, repo.Delete(ctx, "slot-1"))

	_, err := repo.Get(ctx, "slot-1")
	assert.True(t, traiterr.IsNotFound(err))
}
