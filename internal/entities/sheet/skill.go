package sheet

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SkillName identifies an entry of the skill catalog
type SkillName int

// Skills in catalog order
const (
	Acrobatics SkillName = iota
	AnimalHandling
	Arcana
	Athletics
	Deception
	History
	Insight
	Intimidation
	Investigation
	Medicine
	Nature
	Perception
	Performance
	Persuasion
	Religion
	SleightOfHand
	Stealth
	Survival
)

// AllSkills lists every skill in catalog order
var AllSkills = []SkillName{
	Acrobatics, AnimalHandling, Arcana, Athletics, Deception, History,
	Insight, Intimidation, Investigation, Medicine, Nature, Perception,
	Performance, Persuasion, Religion, SleightOfHand, Stealth, Survival,
}

// String returns the display name
func (n SkillName) String() string {
	switch n {
	case Acrobatics:
		return "Acrobatics"
	case AnimalHandling:
		return "Animal Handling"
	case Arcana:
		return "Arcana"
	case Athletics:
		return "Athletics"
	case Deception:
		return "Deception"
	case History:
		return "History"
	case Insight:
		return "Insight"
	case Intimidation:
		return "Intimidation"
	case Investigation:
		return "Investigation"
	case Medicine:
		return "Medicine"
	case Nature:
		return "Nature"
	case Perception:
		return "Perception"
	case Performance:
		return "Performance"
	case Persuasion:
		return "Persuasion"
	case Religion:
		return "Religion"
	case SleightOfHand:
		return "Sleight of Hand"
	case Stealth:
		return "Stealth"
	case Survival:
		return "Survival"
	default:
		return fmt.Sprintf("Skill(%d)", int(n))
	}
}

// ParseSkillName maps a display name to a SkillName. Matching ignores case and
// treats '-' and '_' as spaces, so "sleight-of-hand" finds Sleight of Hand.
func ParseSkillName(name string) (SkillName, bool) {
	normalized := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(name))
	for _, n := range AllSkills {
		if strings.EqualFold(n.String(), normalized) {
			return n, true
		}
	}
	return 0, false
}

// Skill is a catalog entry governed by exactly one attribute
type Skill struct {
	Name              SkillName
	AttributeModifier Attribute
}

// LookupSkill returns the catalog entry for name
func LookupSkill(name SkillName) (Skill, bool) {
	var attr Attribute
	switch name {
	case Acrobatics, SleightOfHand, Stealth:
		attr = Dexterity
	case AnimalHandling, Insight, Medicine, Perception, Survival:
		attr = Wisdom
	case Arcana, History, Investigation, Nature, Religion:
		attr = Intelligence
	case Athletics:
		attr = Strength
	case Deception, Intimidation, Performance, Persuasion:
		attr = Charisma
	default:
		return Skill{}, false
	}
	return Skill{Name: name, AttributeModifier: attr}, true
}

// SkillAllocation maps skills to points spent. A missing skill has spent zero.
// Keys may stay in the map at zero.
type SkillAllocation map[SkillName]int

// Points returns the points spent on name
func (a SkillAllocation) Points(name SkillName) int {
	return a[name]
}

// Clone returns an independent copy. A nil allocation clones to an empty one.
func (a SkillAllocation) Clone() SkillAllocation {
	out := make(SkillAllocation, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the allocation keyed by skill display name
func (a SkillAllocation) MarshalJSON() ([]byte, error) {
	out := make(map[string]int, len(a))
	for k, v := range a {
		out[k.String()] = v
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes an allocation keyed by skill display name
func (a *SkillAllocation) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(SkillAllocation, len(raw))
	for name, points := range raw {
		n, ok := ParseSkillName(name)
		if !ok {
			return fmt.Errorf("unknown skill %q", name)
		}
		out[n] = points
	}

	*a = out
	return nil
}
