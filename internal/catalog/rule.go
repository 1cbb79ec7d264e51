package catalog

import (
	"github.com/KirkDiggler/talent-traits/internal/domain/traits"
)

// Rule grants one trait while a talent's rank is in [StartRank, EndRank)
type Rule struct {
	Category    traits.Category
	Description string
	// DisplayName is shown as an unlock preview; empty means no preview
	DisplayName string
	TalentKey   string
	StartRank   int
	EndRank     int

	// Data is the category's data slot, 0 when the category has none
	Data int
	// Value is the raw configured value slot. Percentages stay on the
	// 0-1000 scale here and are divided by 100 in Trait.
	Value *int
}

// Active reports whether the rule applies at the given rank. EndRank is
// exclusive so successive tiers can be chained without overlap.
func (r Rule) Active(rank int) bool {
	return rank >= r.StartRank && rank < r.EndRank
}

// Previewable reports whether the rule belongs in the reward index
func (r Rule) Previewable() bool {
	return r.DisplayName != "" && r.StartRank > 0
}

// Trait builds the trait record the rule grants
func (r Rule) Trait() traits.Trait {
	t := traits.Trait{Code: r.Category.Code}
	if r.Category.HasData() {
		t.DataID = r.Data
	}
	switch {
	case !r.Category.HasValue():
	case r.Value != nil:
		v := float64(*r.Value)
		if r.Category.Percent {
			v /= 100
		}
		t.Value = &v
	case r.Category.Percent:
		// percentage traits always carry a rate
		zero := 0.0
		t.Value = &zero
	}
	return t
}

func (r Rule) clone() Rule {
	if r.Value != nil {
		v := *r.Value
		r.Value = &v
	}
	return r
}
