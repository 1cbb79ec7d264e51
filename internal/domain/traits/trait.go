package traits

import "fmt"

// Code identifies a trait type in the host's trait taxonomy
type Code int

// Trait codes understood by the host
const (
	CodeElementRate   Code = 11
	CodeDebuffRate    Code = 12
	CodeStateRate     Code = 13
	CodeStateResist   Code = 14
	CodeParameter     Code = 21
	CodeExParameter   Code = 22
	CodeSpParameter   Code = 23
	CodeAttackElement Code = 31
	CodeAttackState   Code = 32
	CodeAttackSpeed   Code = 33
	CodeAttackTimes   Code = 34
	CodeAddSkillType  Code = 41
	CodeSealSkillType Code = 42
	CodeAddSkill      Code = 43
	CodeSealSkill     Code = 44
	CodeEquipWeapon   Code = 51
	CodeEquipArmor    Code = 52
	CodeSlotType      Code = 55
	CodeActionPlus    Code = 61
	CodeSpecialFlag   Code = 62
	CodePartyAbility  Code = 64
)

// Trait is a single active trait record handed to the host
type Trait struct {
	Code   Code     `json:"code"`
	DataID int      `json:"dataId"`
	Value  *float64 `json:"value,omitempty"`
}

// HasValue reports whether the trait carries a value
func (t Trait) HasValue() bool {
	return t.Value != nil
}

func (t Trait) String() string {
	if t.Value == nil {
		return fmt.Sprintf("{code: %d, dataId: %d}", t.Code, t.DataID)
	}
	return fmt.Sprintf("{code: %d, dataId: %d, value: %g}", t.Code, t.DataID, *t.Value)
}

// Float returns a pointer to v, for building trait values
func Float(v float64) *float64 {
	return &v
}
