package traits

// Slot names the meaning of a rule's data or value field
type Slot string

const (
	SlotNone         Slot = ""
	SlotElementID    Slot = "Element ID"
	SlotParameter    Slot = "Parameter"
	SlotState        Slot = "State"
	SlotExParameter  Slot = "Ex-Parameter"
	SlotSpParameter  Slot = "Sp-Parameter"
	SlotAttackSpeed  Slot = "Attack Speed"
	SlotExtraAttacks Slot = "Extra Attacks"
	SlotSkillTypeID  Slot = "Skill Type ID"
	SlotSkillID      Slot = "Skill ID"
	SlotWeaponID     Slot = "Weapon ID"
	SlotArmorID      Slot = "Armor ID"
	SlotSlotType     Slot = "Slot Type"
	SlotPercentage   Slot = "Percentage"
	SlotSpecialFlag  Slot = "Special Flag"
	SlotPartyAbility Slot = "Party Ability"
)

// Label is the designer-facing field name
func (s Slot) Label() string {
	return string(s)
}

// Key is the snake_case field name used in catalog files
func (s Slot) Key() string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		case c == ' ' || c == '-':
			out = append(out, '_')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

// Category is one of the fixed rule categories. Each category maps to a
// single trait code and a fixed pair of data/value slots.
type Category struct {
	Key  string
	Name string
	Code Code
	Data Slot
	// Value slot; scaled by 1/100 at resolution time when Percent is set
	Value   Slot
	Percent bool
}

// HasData reports whether rules in this category carry a data id
func (c Category) HasData() bool {
	return c.Data != SlotNone
}

// HasValue reports whether rules in this category carry a value
func (c Category) HasValue() bool {
	return c.Value != SlotNone
}

func (c Category) String() string {
	return c.Key
}

var (
	ElementRate   = Category{Key: "element_rate", Name: "Element Rate", Code: CodeElementRate, Data: SlotElementID, Value: SlotPercentage, Percent: true}
	DebuffRate    = Category{Key: "debuff_rate", Name: "Debuff Rate", Code: CodeDebuffRate, Data: SlotParameter, Value: SlotPercentage, Percent: true}
	StateRate     = Category{Key: "state_rate", Name: "State Rate", Code: CodeStateRate, Data: SlotState, Value: SlotPercentage, Percent: true}
	StateResist   = Category{Key: "state_resist", Name: "State Resist", Code: CodeStateResist, Data: SlotState}
	Parameter     = Category{Key: "parameter", Name: "Parameter", Code: CodeParameter, Data: SlotParameter, Value: SlotPercentage, Percent: true}
	ExParameter   = Category{Key: "ex_parameter", Name: "Ex-Parameter", Code: CodeExParameter, Data: SlotExParameter, Value: SlotPercentage, Percent: true}
	SpParameter   = Category{Key: "sp_parameter", Name: "Sp-Parameter", Code: CodeSpParameter, Data: SlotSpParameter, Value: SlotPercentage, Percent: true}
	AttackElement = Category{Key: "attack_element", Name: "Attack Element", Code: CodeAttackElement, Data: SlotElementID}
	AttackState   = Category{Key: "attack_state", Name: "Attack State", Code: CodeAttackState, Data: SlotState, Value: SlotPercentage, Percent: true}
	AttackSpeed   = Category{Key: "attack_speed", Name: "Attack Speed", Code: CodeAttackSpeed, Data: SlotAttackSpeed}
	ExtraAttacks  = Category{Key: "extra_attacks", Name: "Extra Attacks", Code: CodeAttackTimes, Value: SlotExtraAttacks}
	AddSkillType  = Category{Key: "add_skill_type", Name: "Add Skill Type", Code: CodeAddSkillType, Data: SlotSkillTypeID}
	SealSkillType = Category{Key: "seal_skill_type", Name: "Seal Skill Type", Code: CodeSealSkillType, Data: SlotSkillTypeID}
	AddSkill      = Category{Key: "add_skill", Name: "Add Skill", Code: CodeAddSkill, Data: SlotSkillID}
	SealSkill     = Category{Key: "seal_skill", Name: "Seal Skill", Code: CodeSealSkill, Data: SlotSkillID}
	EquipWeapon   = Category{Key: "equip_weapon", Name: "Equip Weapon", Code: CodeEquipWeapon, Data: SlotWeaponID}
	EquipArmor    = Category{Key: "equip_armor", Name: "Equip Armor", Code: CodeEquipArmor, Data: SlotArmorID}
	SlotTypeRule  = Category{Key: "slot_type", Name: "Slot Type", Code: CodeSlotType, Data: SlotSlotType}
	ActionTimes   = Category{Key: "action_times", Name: "Action Times", Code: CodeActionPlus, Value: SlotPercentage, Percent: true}
	SpecialFlag   = Category{Key: "special_flag", Name: "Special Flag", Code: CodeSpecialFlag, Data: SlotSpecialFlag}
	PartyAbility  = Category{Key: "party_ability", Name: "Party Ability", Code: CodePartyAbility, Data: SlotPartyAbility}
)

// categories is the resolution order
var categories = []Category{
	ElementRate,
	DebuffRate,
	StateRate,
	StateResist,
	Parameter,
	ExParameter,
	SpParameter,
	AttackElement,
	AttackState,
	AttackSpeed,
	ExtraAttacks,
	AddSkillType,
	SealSkillType,
	AddSkill,
	SealSkill,
	EquipWeapon,
	EquipArmor,
	SlotTypeRule,
	ActionTimes,
	SpecialFlag,
	PartyAbility,
}

// Categories returns every category in resolution order
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Lookup finds a category by its key or display name
func Lookup(name string) (Category, bool) {
	for _, c := range categories {
		if c.Key == name || c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
