package catalog_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/KirkDiggler/talent-traits/internal/catalog"
	"github.com/KirkDiggler/talent-traits/internal/domain/traits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_PluginLabels(t *testing.T) {
	outcome := catalog.Decode(traits.ElementRate, catalog.Record{
		"Description": "Fire resistance",
		"Name":        "Fire Resistance",
		"Talent Abbr": " Fire ",
		"Start Rank":  "1",
		"End Rank":    "5",
		"Element ID":  "2",
		"Percentage":  "150",
	})

	require.True(t, outcome.OK())
	assert.Equal(t, catalog.Rule{
		Category:    traits.ElementRate,
		Description: "Fire resistance",
		DisplayName: "Fire Resistance",
		TalentKey:   "fire",
		StartRank:   1,
		EndRank:     5,
		Data:        2,
		Value:       intPtr(150),
	}, *outcome.Rule)
}

func TestDecode_FileKeys(t *testing.T) {
	outcome := catalog.Decode(traits.SpParameter, catalog.Record{
		"display_name": "Thrifty",
		"talent_key":   "alchemy",
		"start_rank":   3,
		"end_rank":     json.Number("7"),
		"sp_parameter": 4.0,
		"percentage":   json.Number("80"),
	})

	require.True(t, outcome.OK())
	assert.Equal(t, "Thrifty", outcome.Rule.DisplayName)
	assert.Equal(t, 7, outcome.Rule.EndRank)
	assert.Equal(t, 4, outcome.Rule.Data)
	assert.Equal(t, 80, *outcome.Rule.Value)
}

func TestDecode_SlotCoercion(t *testing.T) {
	tests := []struct {
		name      string
		raw       any
		wantData  int
		wantValue *int
	}{
		{name: "int", raw: 3, wantData: 3, wantValue: intPtr(3)},
		{name: "padded string", raw: " 12 ", wantData: 12, wantValue: intPtr(12)},
		{name: "fraction truncates", raw: "12.9", wantData: 12, wantValue: intPtr(12)},
		{name: "negative float", raw: -2.5, wantData: -2, wantValue: intPtr(-2)},
		{name: "empty string is absent", raw: "", wantData: 0, wantValue: nil},
		{name: "word is absent", raw: "lots", wantData: 0, wantValue: nil},
		{name: "nan is absent", raw: "NaN", wantData: 0, wantValue: nil},
		{name: "bool is absent", raw: true, wantData: 0, wantValue: nil},
		{name: "huge float is absent", raw: 1e30, wantData: 0, wantValue: nil},
		{name: "huge negative string is absent", raw: "-1e30", wantData: 0, wantValue: nil},
		{name: "huge uint64 is absent", raw: uint64(math.MaxUint64), wantData: 0, wantValue: nil},
		{name: "small uint64", raw: uint64(7), wantData: 7, wantValue: intPtr(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := catalog.Decode(traits.StateRate, catalog.Record{
				"talent_key": "grit",
				"start_rank": 1,
				"end_rank":   2,
				"state":      tt.raw,
				"percentage": tt.raw,
			})

			require.True(t, outcome.OK())
			assert.Equal(t, tt.wantData, outcome.Rule.Data)
			assert.Equal(t, tt.wantValue, outcome.Rule.Value)
		})
	}
}

func TestDecode_IgnoresFieldsOutsideCategorySlots(t *testing.T) {
	outcome := catalog.Decode(traits.ActionTimes, catalog.Record{
		"talent_key": "haste",
		"start_rank": 1,
		"end_rank":   2,
		"armor_id":   9,
		"percentage": 25,
	})

	require.True(t, outcome.OK())
	assert.Equal(t, 0, outcome.Rule.Data)
	assert.Equal(t, 25, *outcome.Rule.Value)
}

func TestDecode_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		record catalog.Record
		want   catalog.SkipReason
	}{
		{name: "nil record", record: nil, want: catalog.ReasonMalformedRecord},
		{name: "no talent", record: catalog.Record{"start_rank": 1, "end_rank": 2}, want: catalog.ReasonMissingTalentKey},
		{name: "blank talent", record: catalog.Record{"talent_key": "   ", "start_rank": 1, "end_rank": 2}, want: catalog.ReasonMissingTalentKey},
		{name: "start not numeric", record: catalog.Record{"talent_key": "a", "start_rank": "x", "end_rank": 2}, want: catalog.ReasonInvalidStartRank},
		{name: "end missing", record: catalog.Record{"talent_key": "a", "start_rank": 1}, want: catalog.ReasonInvalidEndRank},
		{name: "end out of range", record: catalog.Record{"talent_key": "a", "start_rank": 1, "end_rank": 1e30}, want: catalog.ReasonInvalidEndRank},
		{name: "start out of range", record: catalog.Record{"talent_key": "a", "start_rank": "9e99", "end_rank": 2}, want: catalog.ReasonInvalidStartRank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := catalog.Decode(traits.EquipArmor, tt.record)

			assert.False(t, outcome.OK())
			assert.Equal(t, tt.want, outcome.Reason)
		})
	}
}

func intPtr(v int) *int {
	return &v
}
