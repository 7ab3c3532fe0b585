package rules

import (
	stderrors "errors"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Sentinels for the rule violations. Returned errors wrap them with a code, so
// both errors.Is(err, ErrUnknownClass) and errors.IsNotFound(err) hold.
var (
	ErrInvalidAttribute = stderrors.New("invalid attribute")
	ErrUnknownClass     = stderrors.New("unknown class")
	ErrUnknownSkill     = stderrors.New("unknown skill")
	ErrBudgetExceeded   = stderrors.New("skill budget exceeded")
)

// BudgetExceededMessage is the user-facing text for a rejected skill increment
const BudgetExceededMessage = "You have no more skill points to spend!"

func invalidAttribute(a sheet.Attribute) error {
	return errors.WrapWithCodef(ErrInvalidAttribute, errors.CodeInvalidArgument,
		"attribute %d is not one of the six attributes", int(a)).
		WithMeta("attribute", int(a))
}

func unknownClass(name sheet.ClassName) error {
	return errors.WrapWithCodef(ErrUnknownClass, errors.CodeNotFound,
		"class %s is not in the catalog", name).
		WithMeta("class", name.String())
}

func unknownSkill(name sheet.SkillName) error {
	return errors.WrapWithCodef(ErrUnknownSkill, errors.CodeNotFound,
		"skill %s is not in the catalog", name).
		WithMeta("skill", name.String())
}

func budgetExceeded(name sheet.SkillName, spent, available int) error {
	return errors.WrapWithCode(ErrBudgetExceeded, errors.CodeResourceExhausted, BudgetExceededMessage).
		WithMeta("skill", name.String()).
		WithMeta("spent", spent).
		WithMeta("available", available)
}

// ParseAttribute resolves a display name, failing with ErrInvalidAttribute
func ParseAttribute(name string) (sheet.Attribute, error) {
	a, ok := sheet.ParseAttribute(name)
	if !ok {
		return 0, errors.WrapWithCodef(ErrInvalidAttribute, errors.CodeInvalidArgument,
			"%q is not one of the six attributes", name).
			WithMeta("attribute", name)
	}
	return a, nil
}

// ParseClass resolves a display name, failing with ErrUnknownClass
func ParseClass(name string) (sheet.ClassName, error) {
	c, ok := sheet.ParseClassName(name)
	if !ok {
		return 0, errors.WrapWithCodef(ErrUnknownClass, errors.CodeNotFound,
			"class %q is not in the catalog", name).
			WithMeta("class", name)
	}
	return c, nil
}

// ParseSkill resolves a display name, failing with ErrUnknownSkill
func ParseSkill(name string) (sheet.SkillName, error) {
	s, ok := sheet.ParseSkillName(name)
	if !ok {
		return 0, errors.WrapWithCodef(ErrUnknownSkill, errors.CodeNotFound,
			"skill %q is not in the catalog", name).
			WithMeta("skill", name)
	}
	return s, nil
}
