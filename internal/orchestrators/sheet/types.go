package sheet

import (
	"context"

	entities "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet Service
//go:generate mockgen -destination=mock/mock_notifier.go -package=sheetmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet Notifier

// Service defines the sheet orchestrator interface
type Service interface {
	// Sheet lifecycle
	CreateSheet(ctx context.Context, input *CreateSheetInput) (*CreateSheetOutput, error)
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)
	DeleteSheet(ctx context.Context, input *DeleteSheetInput) (*DeleteSheetOutput, error)

	// Attributes
	IncrementAttribute(ctx context.Context, input *IncrementAttributeInput) (*IncrementAttributeOutput, error)
	DecrementAttribute(ctx context.Context, input *DecrementAttributeInput) (*DecrementAttributeOutput, error)

	// Classes
	ListClasses(ctx context.Context, input *ListClassesInput) (*ListClassesOutput, error)
	GetClassRequirements(ctx context.Context, input *GetClassRequirementsInput) (*GetClassRequirementsOutput, error)
	CheckEligibility(ctx context.Context, input *CheckEligibilityInput) (*CheckEligibilityOutput, error)
	SelectClass(ctx context.Context, input *SelectClassInput) (*SelectClassOutput, error)
	ClearSelectedClass(ctx context.Context, input *ClearSelectedClassInput) (*ClearSelectedClassOutput, error)

	// Skills
	GetAvailableSkillPoints(ctx context.Context, input *GetAvailableSkillPointsInput) (*GetAvailableSkillPointsOutput, error)
	IncrementSkill(ctx context.Context, input *IncrementSkillInput) (*IncrementSkillOutput, error)
	DecrementSkill(ctx context.Context, input *DecrementSkillInput) (*DecrementSkillOutput, error)
	GetSkillTotal(ctx context.Context, input *GetSkillTotalInput) (*GetSkillTotalOutput, error)
}

// Method selects how a new sheet's attributes are produced
type Method string

// Initial attribute methods
const (
	MethodDefault        Method = "default"
	MethodExplicit       Method = "explicit"
	MethodClassic        Method = "3d6"
	MethodFourDropLowest Method = "4d6_drop_lowest"
)

// AllMethods lists the supported methods
var AllMethods = []Method{MethodDefault, MethodExplicit, MethodClassic, MethodFourDropLowest}

// Valid reports whether m is a supported method
func (m Method) Valid() bool {
	for _, known := range AllMethods {
		if m == known {
			return true
		}
	}
	return false
}

// CreateSheetInput defines the request for creating a sheet
type CreateSheetInput struct {
	// Method defaults to the orchestrator's configured method when empty.
	Method Method
	// Attributes is required for MethodExplicit and ignored otherwise.
	Attributes *entities.AttributeSet
}

// AttributeRoll records the dice behind one rolled attribute
type AttributeRoll struct {
	Attribute entities.Attribute
	Kept      []int
	Dropped   []int
	Total     int
}

// CreateSheetOutput defines the response for creating a sheet
type CreateSheetOutput struct {
	Sheet *entities.Sheet
	View  *View
	// Rolls is empty unless a dice method was used.
	Rolls []AttributeRoll
}

// GetSheetInput defines the request for loading a sheet
type GetSheetInput struct {
	SheetID string
}

// GetSheetOutput defines the response for loading a sheet
type GetSheetOutput struct {
	Sheet *entities.Sheet
	View  *View
}

// DeleteSheetInput defines the request for deleting a sheet
type DeleteSheetInput struct {
	SheetID string
}

// DeleteSheetOutput defines the response for deleting a sheet
type DeleteSheetOutput struct{}

// IncrementAttributeInput defines the request for raising an attribute by one
type IncrementAttributeInput struct {
	SheetID   string
	Attribute entities.Attribute
}

// IncrementAttributeOutput defines the response for raising an attribute
type IncrementAttributeOutput struct {
	Attributes entities.AttributeSet
	View       *View
}

// DecrementAttributeInput defines the request for lowering an attribute by one
type DecrementAttributeInput struct {
	SheetID   string
	Attribute entities.Attribute
}

// DecrementAttributeOutput defines the response for lowering an attribute
type DecrementAttributeOutput struct {
	Attributes entities.AttributeSet
	View       *View
}

// ListClassesInput defines the request for listing classes against a sheet
type ListClassesInput struct {
	SheetID string
}

// ListClassesOutput defines the response for listing classes
type ListClassesOutput struct {
	Classes []ClassView
}

// GetClassRequirementsInput defines the request for a class's requirements
type GetClassRequirementsInput struct {
	Class entities.ClassName
}

// GetClassRequirementsOutput defines the response for a class's requirements
type GetClassRequirementsOutput struct {
	Requirements entities.Requirements
}

// CheckEligibilityInput defines the request for checking one class
type CheckEligibilityInput struct {
	SheetID string
	Class   entities.ClassName
}

// CheckEligibilityOutput defines the response for checking one class
type CheckEligibilityOutput struct {
	Eligible bool
	Unmet    entities.Requirements
}

// SelectClassInput defines the request for selecting a class
type SelectClassInput struct {
	SheetID string
	Class   entities.ClassName
}

// SelectClassOutput defines the response for selecting a class
type SelectClassOutput struct {
	View *View
}

// ClearSelectedClassInput defines the request for clearing the selection
type ClearSelectedClassInput struct {
	SheetID string
}

// ClearSelectedClassOutput defines the response for clearing the selection
type ClearSelectedClassOutput struct {
	View *View
}

// GetAvailableSkillPointsInput defines the request for the skill budget
type GetAvailableSkillPointsInput struct {
	SheetID string
}

// GetAvailableSkillPointsOutput defines the response for the skill budget
type GetAvailableSkillPointsOutput struct {
	Available int
	Spent     int
}

// IncrementSkillInput defines the request for adding a point to a skill
type IncrementSkillInput struct {
	SheetID string
	Skill   entities.SkillName
}

// IncrementSkillOutput defines the response for adding a point to a skill
type IncrementSkillOutput struct {
	Skills entities.SkillAllocation
	View   *View
}

// DecrementSkillInput defines the request for removing a point from a skill
type DecrementSkillInput struct {
	SheetID string
	Skill   entities.SkillName
}

// DecrementSkillOutput defines the response for removing a point from a skill
type DecrementSkillOutput struct {
	Skills entities.SkillAllocation
	View   *View
}

// GetSkillTotalInput defines the request for one skill's total
type GetSkillTotalInput struct {
	SheetID string
	Skill   entities.SkillName
}

// GetSkillTotalOutput defines the response for one skill's total
type GetSkillTotalOutput struct {
	Points   int
	Modifier int
	Total    int
}
