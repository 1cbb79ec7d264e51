package catalog_test

import (
	"testing"

	"github.com/KirkDiggler/talent-traits/internal/catalog"
	"github.com/KirkDiggler/talent-traits/internal/domain/traits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_Active_HalfOpenRange(t *testing.T) {
	rule := catalog.Rule{Category: traits.EquipArmor, TalentKey: "armor", StartRank: 2, EndRank: 4}

	assert.False(t, rule.Active(1))
	assert.True(t, rule.Active(2))
	assert.True(t, rule.Active(3))
	assert.False(t, rule.Active(4))
}

func TestRule_Trait(t *testing.T) {
	raw := 150

	t.Run("percentage value is scaled", func(t *testing.T) {
		rule := catalog.Rule{Category: traits.ElementRate, Data: 2, Value: &raw}

		got := rule.Trait()

		require.NotNil(t, got.Value)
		assert.Equal(t, traits.CodeElementRate, got.Code)
		assert.Equal(t, 2, got.DataID)
		assert.InDelta(t, 1.5, *got.Value, 1e-9)
	})

	t.Run("integer value is kept", func(t *testing.T) {
		two := 2
		rule := catalog.Rule{Category: traits.ExtraAttacks, Value: &two}

		got := rule.Trait()

		require.NotNil(t, got.Value)
		assert.Equal(t, 0, got.DataID)
		assert.Equal(t, 2.0, *got.Value)
	})

	t.Run("no value slot leaves value nil", func(t *testing.T) {
		rule := catalog.Rule{Category: traits.EquipArmor, Data: 3, Value: &raw}

		assert.Equal(t, traits.Trait{Code: traits.CodeEquipArmor, DataID: 3}, rule.Trait())
	})

	t.Run("missing percentage becomes zero", func(t *testing.T) {
		rule := catalog.Rule{Category: traits.ElementRate, Data: 2}

		got := rule.Trait()

		require.NotNil(t, got.Value)
		assert.Equal(t, 0.0, *got.Value)
		assert.Equal(t, 2, got.DataID)
	})

	t.Run("missing raw value stays nil", func(t *testing.T) {
		rule := catalog.Rule{Category: traits.ExtraAttacks}

		assert.Nil(t, rule.Trait().Value)
	})

	t.Run("no data slot forces data to zero", func(t *testing.T) {
		rule := catalog.Rule{Category: traits.ActionTimes, Data: 7, Value: &raw}

		assert.Equal(t, 0, rule.Trait().DataID)
	})
}

func TestRule_Previewable(t *testing.T) {
	assert.True(t, catalog.Rule{DisplayName: "Light Armor", StartRank: 2}.Previewable())
	assert.False(t, catalog.Rule{DisplayName: "", StartRank: 2}.Previewable())
	assert.False(t, catalog.Rule{DisplayName: "Innate", StartRank: 0}.Previewable())
}

func TestNew_SkipsMalformedRulesOnly(t *testing.T) {
	records := catalog.RecordSet{
		traits.EquipArmor: {
			{"Talent Abbr": "armor", "Start Rank": "2", "End Rank": "100", "Armor ID": "2"},
			{"Start Rank": "2", "End Rank": "100", "Armor ID": "5"},
			{"Talent Abbr": "armor", "Start Rank": "two", "End Rank": "100"},
			{"Talent Abbr": "armor", "Start Rank": 1},
			nil,
		},
		traits.StateResist: {
			{"talent_key": "grit", "start_rank": 1, "end_rank": 10, "state": 4},
		},
	}

	c, report := catalog.New(records)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, report.Loaded)
	assert.False(t, report.Clean())
	assert.Equal(t, []catalog.Skip{
		{Category: traits.EquipArmor, Index: 1, Reason: catalog.ReasonMissingTalentKey},
		{Category: traits.EquipArmor, Index: 2, Reason: catalog.ReasonInvalidStartRank},
		{Category: traits.EquipArmor, Index: 3, Reason: catalog.ReasonInvalidEndRank},
		{Category: traits.EquipArmor, Index: 4, Reason: catalog.ReasonMalformedRecord},
	}, report.Skipped)

	armor := c.Rules(traits.EquipArmor)
	require.Len(t, armor, 1)
	assert.Equal(t, 2, armor[0].Data)
	assert.Len(t, c.Rules(traits.StateResist), 1)
	assert.Empty(t, c.Rules(traits.SealSkill))
}

func TestNew_Empty(t *testing.T) {
	c, report := catalog.New(nil)

	assert.Equal(t, 0, c.Len())
	assert.True(t, report.Clean())
}

func TestCatalog_EachFollowsCategoryOrder(t *testing.T) {
	c, _ := catalog.New(catalog.RecordSet{
		traits.PartyAbility: {{"talent_key": "scouting", "start_rank": 1, "end_rank": 9, "party_ability": 2}},
		traits.ElementRate:  {{"talent_key": "fire", "start_rank": 1, "end_rank": 9, "element_id": 2, "percentage": 50}},
		traits.EquipArmor: {
			{"talent_key": "armor", "start_rank": 1, "end_rank": 9, "armor_id": 1},
			{"talent_key": "armor", "start_rank": 2, "end_rank": 9, "armor_id": 2},
		},
	})

	var order []string
	c.Each(func(r catalog.Rule) {
		order = append(order, r.Category.Key+":"+r.TalentKey)
	})

	assert.Equal(t, []string{"element_rate:fire", "equip_armor:armor", "equip_armor:armor", "party_ability:scouting"}, order)
}

func TestCatalog_RulesAreCopies(t *testing.T) {
	c, _ := catalog.New(catalog.RecordSet{
		traits.ElementRate: {{"talent_key": "fire", "start_rank": 1, "end_rank": 9, "element_id": 2, "percentage": 50}},
	})

	rules := c.Rules(traits.ElementRate)
	*rules[0].Value = 999
	rules[0].TalentKey = "ice"

	again := c.Rules(traits.ElementRate)
	assert.Equal(t, 50, *again[0].Value)
	assert.Equal(t, "fire", again[0].TalentKey)
}

func TestCatalog_NilIsEmpty(t *testing.T) {
	var c *catalog.Catalog

	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Rules(traits.EquipArmor))
	c.Each(func(catalog.Rule) { t.Fatal("nil catalog has no rules") })
}
