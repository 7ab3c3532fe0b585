package sheet

import (
	"fmt"
	"strings"
)

// ClassName identifies an entry of the class catalog
type ClassName int

// Classes in catalog order
const (
	Barbarian ClassName = iota
	Wizard
	Bard
)

// AllClasses lists every class in catalog order
var AllClasses = []ClassName{Barbarian, Wizard, Bard}

// String returns the display name
func (c ClassName) String() string {
	switch c {
	case Barbarian:
		return "Barbarian"
	case Wizard:
		return "Wizard"
	case Bard:
		return "Bard"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// ParseClassName maps a display name, case-insensitively, to a ClassName
func ParseClassName(name string) (ClassName, bool) {
	for _, c := range AllClasses {
		if strings.EqualFold(c.String(), strings.TrimSpace(name)) {
			return c, true
		}
	}
	return 0, false
}

// Requirement is a minimum value for one attribute
type Requirement struct {
	Attribute Attribute
	Minimum   int
}

// Requirements is the list of minimums a class imposes
type Requirements []Requirement

// SatisfiedBy reports whether every requirement is met by set. An empty list is
// always satisfied.
func (r Requirements) SatisfiedBy(set AttributeSet) bool {
	for _, req := range r {
		if set.Get(req.Attribute) < req.Minimum {
			return false
		}
	}
	return true
}

// Unmet returns the requirements set does not meet
func (r Requirements) Unmet(set AttributeSet) Requirements {
	var out Requirements
	for _, req := range r {
		if set.Get(req.Attribute) < req.Minimum {
			out = append(out, req)
		}
	}
	return out
}

// Class is a catalog entry
type Class struct {
	Name         ClassName
	Requirements Requirements
}

// LookupClass returns the catalog entry for name. The requirement list is a
// copy; the catalog itself is never handed out.
func LookupClass(name ClassName) (Class, bool) {
	var reqs Requirements
	switch name {
	case Barbarian:
		reqs = barbarianRequirements
	case Wizard:
		reqs = wizardRequirements
	case Bard:
		reqs = bardRequirements
	default:
		return Class{}, false
	}

	out := make(Requirements, len(reqs))
	copy(out, reqs)
	return Class{Name: name, Requirements: out}, true
}

var (
	barbarianRequirements = Requirements{
		{Strength, 14}, {Dexterity, 9}, {Constitution, 9},
		{Intelligence, 9}, {Wisdom, 9}, {Charisma, 9},
	}
	wizardRequirements = Requirements{
		{Strength, 9}, {Dexterity, 9}, {Constitution, 9},
		{Intelligence, 14}, {Wisdom, 9}, {Charisma, 9},
	}
	bardRequirements = Requirements{
		{Strength, 9}, {Dexterity, 9}, {Constitution, 9},
		{Intelligence, 9}, {Wisdom, 9}, {Charisma, 14},
	}
)
