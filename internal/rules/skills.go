package rules

import "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"

const (
	baseSkillPoints         = 10
	skillPointsPerIntellect = 4
)

// AvailableSkillPoints is the skill budget for a given Intelligence value.
// Sheets evaluate it once, when they are created.
func AvailableSkillPoints(intelligence int) int {
	return baseSkillPoints + skillPointsPerIntellect*intelligence
}

// SkillSpend is the budget consumed by alloc. Every skill present in the
// allocation contributes its points plus the modifier of its governing
// attribute, including skills sitting at zero points.
func SkillSpend(alloc sheet.SkillAllocation, set sheet.AttributeSet) (int, error) {
	spent := 0
	for name, points := range alloc {
		skill, ok := sheet.LookupSkill(name)
		if !ok {
			return 0, unknownSkill(name)
		}
		spent += points + Modifier(set.Get(skill.AttributeModifier))
	}
	return spent, nil
}

// SkillPoints returns the points spent on name
func SkillPoints(alloc sheet.SkillAllocation, name sheet.SkillName) (int, error) {
	if _, ok := sheet.LookupSkill(name); !ok {
		return 0, unknownSkill(name)
	}
	return alloc.Points(name), nil
}

// SkillModifier returns the modifier name receives from its governing attribute
func SkillModifier(name sheet.SkillName, set sheet.AttributeSet) (int, error) {
	skill, ok := sheet.LookupSkill(name)
	if !ok {
		return 0, unknownSkill(name)
	}
	return Modifier(set.Get(skill.AttributeModifier)), nil
}

// SkillTotal is the points spent on name plus its governing modifier
func SkillTotal(alloc sheet.SkillAllocation, name sheet.SkillName, set sheet.AttributeSet) (int, error) {
	mod, err := SkillModifier(name, set)
	if err != nil {
		return 0, err
	}
	return alloc.Points(name) + mod, nil
}

// IncrementSkill returns a new allocation with one more point on name. When
// the current spend has already reached available the input allocation is
// returned with ErrBudgetExceeded. alloc is never modified.
func IncrementSkill(
	alloc sheet.SkillAllocation,
	name sheet.SkillName,
	set sheet.AttributeSet,
	available int,
) (sheet.SkillAllocation, error) {
	if _, ok := sheet.LookupSkill(name); !ok {
		return alloc, unknownSkill(name)
	}

	spent, err := SkillSpend(alloc, set)
	if err != nil {
		return alloc, err
	}
	if spent >= available {
		return alloc, budgetExceeded(name, spent, available)
	}

	out := alloc.Clone()
	out[name] = alloc.Points(name) + 1
	return out, nil
}

// DecrementSkill returns a new allocation with one point removed from name.
// A skill at zero, or absent, is left alone and alloc is returned as is.
func DecrementSkill(alloc sheet.SkillAllocation, name sheet.SkillName) (sheet.SkillAllocation, error) {
	if _, ok := sheet.LookupSkill(name); !ok {
		return alloc, unknownSkill(name)
	}

	current := alloc.Points(name)
	if current <= 0 {
		return alloc, nil
	}

	out := alloc.Clone()
	out[name] = current - 1
	return out, nil
}
