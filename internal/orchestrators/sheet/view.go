package sheet

import (
	entities "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// View is the read model of a sheet. Every figure in it is derived from the
// sheet's current state when the view is built.
type View struct {
	SheetID       string
	Attributes    []AttributeView
	Classes       []ClassView
	SelectedClass *ClassView
	Skills        []SkillView

	AvailableSkillPoints int
	SpentSkillPoints     int
}

// AttributeView is one attribute with its modifier
type AttributeView struct {
	Attribute entities.Attribute
	Value     int
	Modifier  int
}

// ClassView is one catalog class judged against the sheet
type ClassView struct {
	Name         entities.ClassName
	Eligible     bool
	Requirements entities.Requirements
	Unmet        entities.Requirements
}

// SkillView is one catalog skill with its allocation
type SkillView struct {
	Name      entities.SkillName
	Attribute entities.Attribute
	Points    int
	Modifier  int
	Total     int
	// Allocated is true when the skill has an entry in the allocation, even
	// at zero points. Such entries count toward spend.
	Allocated bool
}

// BuildView derives the read model for s
func BuildView(s *entities.Sheet) (*View, error) {
	view := &View{
		SheetID:              s.ID,
		AvailableSkillPoints: s.AvailableSkillPoints,
	}

	for _, attr := range entities.AllAttributes {
		view.Attributes = append(view.Attributes, AttributeView{
			Attribute: attr,
			Value:     s.Attributes.Get(attr),
			Modifier:  rules.Modifier(s.Attributes.Get(attr)),
		})
	}

	for _, name := range entities.AllClasses {
		cv, err := buildClassView(name, s.Attributes)
		if err != nil {
			return nil, err
		}
		view.Classes = append(view.Classes, cv)
		if s.SelectedClass != nil && *s.SelectedClass == name {
			selected := cv
			view.SelectedClass = &selected
		}
	}

	for _, name := range entities.AllSkills {
		skill, ok := entities.LookupSkill(name)
		if !ok {
			continue
		}
		total, err := rules.SkillTotal(s.Skills, name, s.Attributes)
		if err != nil {
			return nil, err
		}
		mod, err := rules.SkillModifier(name, s.Attributes)
		if err != nil {
			return nil, err
		}
		_, allocated := s.Skills[name]
		view.Skills = append(view.Skills, SkillView{
			Name:      name,
			Attribute: skill.AttributeModifier,
			Points:    s.Skills.Points(name),
			Modifier:  mod,
			Total:     total,
			Allocated: allocated,
		})
	}

	spent, err := rules.SkillSpend(s.Skills, s.Attributes)
	if err != nil {
		return nil, err
	}
	view.SpentSkillPoints = spent

	return view, nil
}

func buildClassView(name entities.ClassName, set entities.AttributeSet) (ClassView, error) {
	reqs, err := rules.ClassRequirements(name)
	if err != nil {
		return ClassView{}, err
	}
	unmet, err := rules.UnmetRequirements(name, set)
	if err != nil {
		return ClassView{}, err
	}
	return ClassView{
		Name:         name,
		Eligible:     len(unmet) == 0,
		Requirements: reqs,
		Unmet:        unmet,
	}, nil
}
