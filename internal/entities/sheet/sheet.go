package sheet

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType is the rpg-toolkit entity type of a sheet
const EntityType = "character_sheet"

var _ core.Entity = (*Sheet)(nil)

// Sheet is the owned state of one character sheet
type Sheet struct {
	ID         string
	Attributes AttributeSet
	Skills     SkillAllocation

	// AvailableSkillPoints is computed from Intelligence when the sheet is
	// created and is not recomputed afterwards.
	AvailableSkillPoints int

	SelectedClass *ClassName

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the sheet ID
func (s *Sheet) GetID() string {
	return s.ID
}

// GetType returns the entity type
func (s *Sheet) GetType() string {
	return EntityType
}

// Clone returns a deep copy of the sheet
func (s *Sheet) Clone() *Sheet {
	if s == nil {
		return nil
	}
	out := *s
	out.Skills = s.Skills.Clone()
	if s.SelectedClass != nil {
		selected := *s.SelectedClass
		out.SelectedClass = &selected
	}
	return &out
}

type sheetJSON struct {
	ID                   string          `json:"id"`
	Attributes           AttributeSet    `json:"attributes"`
	Skills               SkillAllocation `json:"skills"`
	AvailableSkillPoints int             `json:"available_skill_points"`
	SelectedClass        string          `json:"selected_class,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// MarshalJSON encodes the sheet with display names for enums
func (s Sheet) MarshalJSON() ([]byte, error) {
	data := sheetJSON{
		ID:                   s.ID,
		Attributes:           s.Attributes,
		Skills:               s.Skills,
		AvailableSkillPoints: s.AvailableSkillPoints,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
	if data.Skills == nil {
		data.Skills = SkillAllocation{}
	}
	if s.SelectedClass != nil {
		data.SelectedClass = s.SelectedClass.String()
	}
	return json.Marshal(data)
}

// UnmarshalJSON decodes a sheet written by MarshalJSON
func (s *Sheet) UnmarshalJSON(b []byte) error {
	var data sheetJSON
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}

	out := Sheet{
		ID:                   data.ID,
		Attributes:           data.Attributes,
		Skills:               data.Skills,
		AvailableSkillPoints: data.AvailableSkillPoints,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
	if out.Skills == nil {
		out.Skills = SkillAllocation{}
	}
	if data.SelectedClass != "" {
		name, ok := ParseClassName(data.SelectedClass)
		if !ok {
			return fmt.Errorf("unknown class %q", data.SelectedClass)
		}
		out.SelectedClass = &name
	}

	*s = out
	return nil
}
