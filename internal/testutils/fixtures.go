package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// FixedTime is the timestamp used by sheet fixtures
var FixedTime = time.Date(2025, 7, 4, 18, 30, 0, 0, time.UTC)

// CreateTestSheet returns a sheet with the default starting attributes and an
// empty allocation
func CreateTestSheet(id string) *sheet.Sheet {
	return &sheet.Sheet{
		ID:                   id,
		Attributes:           sheet.DefaultAttributes(),
		Skills:               sheet.SkillAllocation{},
		AvailableSkillPoints: 14,
		CreatedAt:            FixedTime,
		UpdatedAt:            FixedTime,
	}
}

// CreateTestSheetWithSkills returns CreateTestSheet with alloc applied
func CreateTestSheetWithSkills(id string, alloc sheet.SkillAllocation) *sheet.Sheet {
	s := CreateTestSheet(id)
	s.Skills = alloc.Clone()
	return s
}
