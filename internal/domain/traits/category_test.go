package traits_test

import (
	"testing"

	"github.com/KirkDiggler/talent-traits/internal/domain/traits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_FixedOrder(t *testing.T) {
	cats := traits.Categories()
	require.Len(t, cats, 21)

	codes := make([]traits.Code, 0, len(cats))
	for _, c := range cats {
		codes = append(codes, c.Code)
	}
	assert.Equal(t, []traits.Code{11, 12, 13, 14, 21, 22, 23, 31, 32, 33, 34, 41, 42, 43, 44, 51, 52, 55, 61, 62, 64}, codes)
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cats := traits.Categories()
	cats[0] = traits.PartyAbility

	assert.Equal(t, traits.ElementRate, traits.Categories()[0])
}

func TestLookup(t *testing.T) {
	c, ok := traits.Lookup("equip_armor")
	require.True(t, ok)
	assert.Equal(t, traits.CodeEquipArmor, c.Code)

	c, ok = traits.Lookup("Element Rate")
	require.True(t, ok)
	assert.Equal(t, traits.ElementRate, c)

	_, ok = traits.Lookup("fly")
	assert.False(t, ok)
}

func TestCategory_Slots(t *testing.T) {
	assert.True(t, traits.ElementRate.HasData())
	assert.True(t, traits.ElementRate.HasValue())
	assert.True(t, traits.ElementRate.Percent)

	assert.False(t, traits.ExtraAttacks.HasData())
	assert.True(t, traits.ExtraAttacks.HasValue())
	assert.False(t, traits.ExtraAttacks.Percent)

	assert.True(t, traits.StateResist.HasData())
	assert.False(t, traits.StateResist.HasValue())
}

func TestSlot_Key(t *testing.T) {
	assert.Equal(t, "element_id", traits.SlotElementID.Key())
	assert.Equal(t, "ex_parameter", traits.SlotExParameter.Key())
	assert.Equal(t, "skill_type_id", traits.SlotSkillTypeID.Key())
	assert.Equal(t, "", traits.SlotNone.Key())
}

func TestTrait_String(t *testing.T) {
	assert.Equal(t, "{code: 52, dataId: 2}", traits.Trait{Code: 52, DataID: 2}.String())
	assert.Equal(t, "{code: 11, dataId: 3, value: 1.5}", traits.Trait{Code: 11, DataID: 3, Value: traits.Float(1.5)}.String())
}
