package rules

import "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"

// IncrementAttribute returns set with attr raised by one. There is no upper
// bound. An attribute outside the enum fails with ErrInvalidAttribute and set
// is returned unchanged.
func IncrementAttribute(set sheet.AttributeSet, attr sheet.Attribute) (sheet.AttributeSet, error) {
	return adjustAttribute(set, attr, 1)
}

// DecrementAttribute returns set with attr lowered by one. Values may go
// negative.
func DecrementAttribute(set sheet.AttributeSet, attr sheet.Attribute) (sheet.AttributeSet, error) {
	return adjustAttribute(set, attr, -1)
}

func adjustAttribute(set sheet.AttributeSet, attr sheet.Attribute, delta int) (sheet.AttributeSet, error) {
	if !attr.Valid() {
		return set, invalidAttribute(attr)
	}
	return set.With(attr, set.Get(attr)+delta), nil
}

// Modifier is the ability modifier of an attribute value: floor((value-10)/2),
// rounding toward negative infinity. Computed as floor(value/2)-5 with an
// arithmetic shift so it cannot overflow for any int.
func Modifier(value int) int {
	return (value >> 1) - 5
}

// AttributeModifier is Modifier applied to the value of attr in set
func AttributeModifier(set sheet.AttributeSet, attr sheet.Attribute) (int, error) {
	if !attr.Valid() {
		return 0, invalidAttribute(attr)
	}
	return Modifier(set.Get(attr)), nil
}
