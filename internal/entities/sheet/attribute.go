// Package sheet holds the character sheet entities and the fixed catalogs of
// attributes, classes and skills.
package sheet

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Attribute is one of the six base character statistics
type Attribute int

// Attributes, in display order
const (
	Strength Attribute = iota
	Dexterity
	Constitution
	Intelligence
	Wisdom
	Charisma
)

// AttributeCount is the fixed number of attributes
const AttributeCount = 6

// AllAttributes lists every attribute in display order
var AllAttributes = [AttributeCount]Attribute{
	Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma,
}

// Valid reports whether a is one of the six attributes
func (a Attribute) Valid() bool {
	return a >= Strength && a <= Charisma
}

// String returns the display name
func (a Attribute) String() string {
	switch a {
	case Strength:
		return "Strength"
	case Dexterity:
		return "Dexterity"
	case Constitution:
		return "Constitution"
	case Intelligence:
		return "Intelligence"
	case Wisdom:
		return "Wisdom"
	case Charisma:
		return "Charisma"
	default:
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
}

// ParseAttribute maps a display name, case-insensitively, to an Attribute.
// The bool is false for names outside the catalog.
func ParseAttribute(name string) (Attribute, bool) {
	for _, a := range AllAttributes {
		if strings.EqualFold(a.String(), strings.TrimSpace(name)) {
			return a, true
		}
	}
	return 0, false
}

// AttributeSet holds a value for every attribute. It is a value type: copying
// it copies the scores.
type AttributeSet [AttributeCount]int

// NewAttributeSet builds a set from the six values in display order
func NewAttributeSet(str, dex, con, intel, wis, cha int) AttributeSet {
	return AttributeSet{str, dex, con, intel, wis, cha}
}

// DefaultAttributes returns the starting values of a fresh sheet
func DefaultAttributes() AttributeSet {
	return NewAttributeSet(7, 9, 10, 1, 12, 20)
}

// Get returns the value of a. Invalid attributes read as 0.
func (s AttributeSet) Get(a Attribute) int {
	if !a.Valid() {
		return 0
	}
	return s[a]
}

// With returns a copy of s with a set to value
func (s AttributeSet) With(a Attribute, value int) AttributeSet {
	if a.Valid() {
		s[a] = value
	}
	return s
}

// Map returns the set keyed by display name
func (s AttributeSet) Map() map[string]int {
	out := make(map[string]int, AttributeCount)
	for _, a := range AllAttributes {
		out[a.String()] = s[a]
	}
	return out
}

// MarshalJSON encodes the set as an object keyed by display name
func (s AttributeSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

// UnmarshalJSON decodes an object keyed by display name. All six keys are
// required.
func (s *AttributeSet) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out AttributeSet
	var seen [AttributeCount]bool
	for name, value := range raw {
		a, ok := ParseAttribute(name)
		if !ok {
			return fmt.Errorf("unknown attribute %q", name)
		}
		if seen[a] {
			return fmt.Errorf("attribute %s given more than once", a)
		}
		seen[a] = true
		out[a] = value
	}
	for _, a := range AllAttributes {
		if !seen[a] {
			return fmt.Errorf("attribute set is missing %s", a)
		}
	}

	*s = out
	return nil
}
