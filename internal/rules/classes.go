package rules

import "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"

// IsEligible reports whether set meets every minimum of the named class.
// Attributes the class does not mention are unconstrained.
func IsEligible(name sheet.ClassName, set sheet.AttributeSet) (bool, error) {
	class, ok := sheet.LookupClass(name)
	if !ok {
		return false, unknownClass(name)
	}
	return class.Requirements.SatisfiedBy(set), nil
}

// ClassRequirements returns the minimums of the named class in attribute
// display order
func ClassRequirements(name sheet.ClassName) (sheet.Requirements, error) {
	class, ok := sheet.LookupClass(name)
	if !ok {
		return nil, unknownClass(name)
	}
	return class.Requirements, nil
}

// UnmetRequirements returns the minimums of the named class that set misses
func UnmetRequirements(name sheet.ClassName, set sheet.AttributeSet) (sheet.Requirements, error) {
	class, ok := sheet.LookupClass(name)
	if !ok {
		return nil, unknownClass(name)
	}
	return class.Requirements.Unmet(set), nil
}
