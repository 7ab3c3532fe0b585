package v1alpha1

import (
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	entities "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Request fields
const (
	FieldSheetID    = "sheet_id"
	FieldAttribute  = "attribute"
	FieldAttributes = "attributes"
	FieldClass      = "class"
	FieldSkill      = "skill"
	FieldMethod     = "method"
)

func stringField(req *structpb.Struct, field string) string {
	if req == nil {
		return ""
	}
	return req.GetFields()[field].GetStringValue()
}

func requireString(req *structpb.Struct, field string) (string, error) {
	v := stringField(req, field)
	if v == "" {
		return "", errors.InvalidArgumentf("%s is required", field).WithMeta("field", field)
	}
	return v, nil
}

func sheetIDFrom(req *structpb.Struct) (string, error) {
	return requireString(req, FieldSheetID)
}

func attributeFrom(req *structpb.Struct) (entities.Attribute, error) {
	name, err := requireString(req, FieldAttribute)
	if err != nil {
		return 0, err
	}
	return rules.ParseAttribute(name)
}

func classFrom(req *structpb.Struct) (entities.ClassName, error) {
	name, err := requireString(req, FieldClass)
	if err != nil {
		return 0, err
	}
	return rules.ParseClass(name)
}

func skillFrom(req *structpb.Struct) (entities.SkillName, error) {
	name, err := requireString(req, FieldSkill)
	if err != nil {
		return 0, err
	}
	return rules.ParseSkill(name)
}

// maxExactInteger is the largest magnitude a Struct number holds exactly
const maxExactInteger = 1 << 53

// attributesFrom reads an optional object of display name to whole number.
// When present it must name all six attributes.
func attributesFrom(req *structpb.Struct) (*entities.AttributeSet, error) {
	raw := req.GetFields()[FieldAttributes].GetStructValue()
	if raw == nil {
		return nil, nil
	}

	vb := errors.NewValidationBuilder()
	var set entities.AttributeSet
	for _, attr := range entities.AllAttributes {
		v, ok := raw.GetFields()[attr.String()]
		if !ok {
			vb.RequiredField(FieldAttributes + "." + attr.String())
			continue
		}
		n := v.GetNumberValue()
		if _, isNumber := v.GetKind().(*structpb.Value_NumberValue); !isNumber || n != math.Trunc(n) {
			vb.Field(FieldAttributes+"."+attr.String(), "must be a whole number")
			continue
		}
		if math.Abs(n) > maxExactInteger {
			vb.Field(FieldAttributes+"."+attr.String(), "is out of range")
			continue
		}
		set = set.With(attr, int(n))
	}
	for name := range raw.GetFields() {
		if _, ok := entities.ParseAttribute(name); !ok {
			vb.Field(FieldAttributes+"."+name, "is not one of the six attributes")
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	return &set, nil
}

func requirementsToList(reqs entities.Requirements) []interface{} {
	out := make([]interface{}, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, map[string]interface{}{
			"attribute": r.Attribute.String(),
			"minimum":   r.Minimum,
		})
	}
	return out
}

func classViewToMap(cv sheet.ClassView) map[string]interface{} {
	return map[string]interface{}{
		"name":         cv.Name.String(),
		"eligible":     cv.Eligible,
		"requirements": requirementsToList(cv.Requirements),
		"unmet":        requirementsToList(cv.Unmet),
	}
}

func classViewsToList(classes []sheet.ClassView) []interface{} {
	out := make([]interface{}, 0, len(classes))
	for _, cv := range classes {
		out = append(out, classViewToMap(cv))
	}
	return out
}

func viewToMap(view *sheet.View) map[string]interface{} {
	attrs := make([]interface{}, 0, len(view.Attributes))
	for _, av := range view.Attributes {
		attrs = append(attrs, map[string]interface{}{
			"name":     av.Attribute.String(),
			"value":    av.Value,
			"modifier": av.Modifier,
		})
	}

	skills := make([]interface{}, 0, len(view.Skills))
	for _, sv := range view.Skills {
		skills = append(skills, map[string]interface{}{
			"name":      sv.Name.String(),
			"attribute": sv.Attribute.String(),
			"points":    sv.Points,
			"modifier":  sv.Modifier,
			"total":     sv.Total,
			"allocated": sv.Allocated,
		})
	}

	out := map[string]interface{}{
		"sheet_id":               view.SheetID,
		"attributes":             attrs,
		"classes":                classViewsToList(view.Classes),
		"skills":                 skills,
		"available_skill_points": view.AvailableSkillPoints,
		"spent_skill_points":     view.SpentSkillPoints,
	}
	if view.SelectedClass != nil {
		out["selected_class"] = classViewToMap(*view.SelectedClass)
	}
	return out
}

func rollsToList(rolls []sheet.AttributeRoll) []interface{} {
	out := make([]interface{}, 0, len(rolls))
	for _, r := range rolls {
		out = append(out, map[string]interface{}{
			"attribute": r.Attribute.String(),
			"kept":      intsToList(r.Kept),
			"dropped":   intsToList(r.Dropped),
			"total":     r.Total,
		})
	}
	return out
}

func intsToList(values []int) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func toStruct(m map[string]interface{}) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return st, nil
}

func sheetResponse(view *sheet.View) (*structpb.Struct, error) {
	return toStruct(map[string]interface{}{"sheet": viewToMap(view)})
}
