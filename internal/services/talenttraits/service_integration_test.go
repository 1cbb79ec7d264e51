//go:build integration
// +build integration

package talenttraits_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/talent-traits/internal/domain/traits"
	"github.com/KirkDiggler/talent-traits/internal/repositories/rulestate"
	"github.com/KirkDiggler/talent-traits/internal/rewards"
	"github.com/KirkDiggler/talent-traits/internal/services/talenttraits"
	"github.com/KirkDiggler/talent-traits/internal/testutils"
)

func TestRuleStateRedisIntegration(t *testing.T) {
	ctx := context.Background()
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := rulestate.NewRedis(client, nil)
	c := testutils.CreateTestCatalog(t)

	first := talenttraits.NewService(&talenttraits.ServiceConfig{
		Catalog:          c,
		Repository:       repo,
		PersistRuleState: true,
	})

	hero, _ := testutils.CreateTestActor("hero", map[string]int{"armor": 4, "fire": 1})
	require.NoError(t, first.SetupActor(hero))

	value := 1.5
	assert.Equal(t, []traits.Trait{
		{Code: traits.CodeElementRate, DataID: 2, Value: &value},
		{Code: traits.CodeEquipArmor, DataID: 2},
		{Code: traits.CodeEquipArmor, DataID: 3},
	}, hero.TalentTraits())

	require.NoError(t, first.Save(ctx, "slot-1"))

	// a new session restores the preview table instead of importing again
	second := talenttraits.NewService(&talenttraits.ServiceConfig{
		Catalog:          c,
		Repository:       repo,
		PersistRuleState: true,
	})
	require.NoError(t, second.Load(ctx, "slot-1"))
	assert.True(t, second.Rewards().Imported())
	assert.Equal(t, []rewards.Entry{
		{DisplayName: "Light Armor", Rank: 2, End: 100},
		{DisplayName: "Heavy Armor", Rank: 4, End: 100},
	}, second.Upcoming("armor", 0))

	require.NoError(t, repo.Delete(ctx, "slot-1"))
}
