// Package v1alpha1 handles the sheet gRPC service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	SheetService sheet.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.SheetService == nil {
		return errors.InvalidArgument("sheet service is required")
	}
	return nil
}

// Handler implements SheetServiceServer on top of the sheet orchestrator
type Handler struct {
	sheetService sheet.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sheetService: cfg.SheetService,
	}, nil
}

var _ SheetServiceServer = (*Handler)(nil)

// CreateSheet creates a sheet. method defaults to the server's configured
// method; attributes is only read for the explicit method.
func (h *Handler) CreateSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	attrs, err := attributesFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.CreateSheet(ctx, &sheet.CreateSheetInput{
		Method:     sheet.Method(stringField(req, FieldMethod)),
		Attributes: attrs,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(toStruct(map[string]interface{}{
		"sheet": viewToMap(output.View),
		"rolls": rollsToList(output.Rolls),
	}))
}

// GetSheet returns the sheet view
func (h *Handler) GetSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sheetID, err := sheetIDFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.GetSheet(ctx, &sheet.GetSheetInput{SheetID: sheetID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(sheetResponse(output.View))
}

// DeleteSheet removes a sheet
func (h *Handler) DeleteSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sheetID, err := sheetIDFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.sheetService.DeleteSheet(ctx, &sheet.DeleteSheetInput{SheetID: sheetID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

// IncrementAttribute raises one attribute
func (h *Handler) IncrementAttribute(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sheetID, err := sheetIDFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	attr, err := attributeFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.IncrementAttribute(ctx, &sheet.IncrementAttributeInput{
		SheetID:   sheetID,
		Attribute: attr,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(sheetResponse(output.View))
}

// DecrementAttribute lowers one attribute
func (h *Handler) DecrementAttribute(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sheetID, err := sheetIDFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	attr, err := attributeFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.DecrementAttribute(ctx, &sheet.DecrementAttributeInput{
		SheetID:   sheetID,
		Attribute: attr,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(sheetResponse(output.View))
}

// ListClasses judges every class against the sheet
func (h *Handler) ListClasses(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sheetID, err := sheetIDFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.ListClasses(ctx, &sheet.ListClassesInput{SheetID: sheetID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(toStruct(map[string]interface{}{
		"classes": classViewsToList(output.Classes),
	}))
}

// GetClassRequirements returns a class's catalog requirements. No sheet is
// needed.
func (h *Handler) GetClassRequirements(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	class, err := classFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.GetClassRequirements(ctx, &sheet.GetClassRequirementsInput{Class: class})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(toStruct(map[string]interface{}{
		"class":        class.String(),
		"requirements": requirementsToList(output.Requirements),
	}))
}

// CheckEligibility judges one class against the sheet
func (h *Handler) CheckEligibility(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sheetID, err := sheetIDFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	class, err := classFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.CheckEligibility(ctx, &sheet.CheckEligibilityInput{
		SheetID: sheetID,
		Class:   class,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(toStruct(map[string]interface{}{
		"class":    class.String(),
		"eligible": output.Eligible,
		"unmet":    requirementsToList(output.Unmet),
	}))
}

// SelectClass sets the sheet's selected class
func (h *Handler) SelectClass(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sheetID, err := sheetIDFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	class, err := classFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.SelectClass(ctx, &sheet.SelectClassInput{
		SheetID: sheetID,
		Class:   class,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(sheetResponse(output.View))
}

// ClearSelectedClass clears the sheet's selected class
func (h *Handler) ClearSelectedClass(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sheetID, err := sheetIDFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.ClearSelectedClass(ctx, &sheet.ClearSelectedClassInput{SheetID: sheetID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(sheetResponse(output.View))
}

// GetAvailableSkillPoints returns the budget and the current spend
func (h *Handler) GetAvailableSkillPoints(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sheetID, err := sheetIDFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.GetAvailableSkillPoints(ctx, &sheet.GetAvailableSkillPointsInput{SheetID: sheetID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(toStruct(map[string]interface{}{
		"available": output.Available,
		"spent":     output.Spent,
	}))
}

// IncrementSkill adds a point to a skill. A spent budget comes back as
// RESOURCE_EXHAUSTED carrying the user-facing message.
func (h *Handler) IncrementSkill(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sheetID, err := sheetIDFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	skill, err := skillFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.IncrementSkill(ctx, &sheet.IncrementSkillInput{
		SheetID: sheetID,
		Skill:   skill,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(sheetResponse(output.View))
}

// DecrementSkill removes a point from a skill
func (h *Handler) DecrementSkill(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sheetID, err := sheetIDFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	skill, err := skillFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.DecrementSkill(ctx, &sheet.DecrementSkillInput{
		SheetID: sheetID,
		Skill:   skill,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(sheetResponse(output.View))
}

// GetSkillTotal returns one skill's points, modifier and total
func (h *Handler) GetSkillTotal(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sheetID, err := sheetIDFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	skill, err := skillFrom(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.sheetService.GetSkillTotal(ctx, &sheet.GetSkillTotalInput{
		SheetID: sheetID,
		Skill:   skill,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(toStruct(map[string]interface{}{
		"skill":    skill.String(),
		"points":   output.Points,
		"modifier": output.Modifier,
		"total":    output.Total,
	}))
}

func respond(st *structpb.Struct, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return st, nil
}
