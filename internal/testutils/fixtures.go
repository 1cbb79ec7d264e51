package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/talent-traits/internal/catalog"
	"github.com/KirkDiggler/talent-traits/internal/domain/actor"
	"github.com/KirkDiggler/talent-traits/internal/domain/talents"
	"github.com/KirkDiggler/talent-traits/internal/domain/traits"
)

// ArmorRecords unlocks light armor at rank 2 and heavy armor at rank 4 of
// the "armor" talent
func ArmorRecords() []catalog.Record {
	return []catalog.Record{
		{"Talent Abbr": "armor", "Start Rank": "2", "End Rank": "100", "Armor ID": "2", "Name": "Light Armor"},
		{"Talent Abbr": "armor", "Start Rank": "4", "End Rank": "100", "Armor ID": "3", "Name": "Heavy Armor"},
	}
}

// FireRecords raises fire resistance to 150% for ranks 1 through 4 of the
// "fire" talent
func FireRecords() []catalog.Record {
	return []catalog.Record{
		{"Talent Abbr": "fire", "Start Rank": "1", "End Rank": "5", "Element ID": "2", "Percentage": "150", "Name": "Fire Ward"},
	}
}

// CreateTestCatalog builds a catalog from the armor and fire fixtures and
// fails the test if any record is rejected
func CreateTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, report := catalog.New(catalog.RecordSet{
		traits.EquipArmor:  ArmorRecords(),
		traits.ElementRate: FireRecords(),
	})
	require.True(t, report.Clean(), "fixture catalog rejected rules: %+v", report)

	return c
}

// CreateTestActor creates an actor backed by a ledger seeded with ranks
func CreateTestActor(id string, ranks map[string]int) (*actor.Actor, *talents.Ledger) {
	ledger := talents.NewLedger(ranks)
	return actor.New(id, "Test "+id, ledger), ledger
}
