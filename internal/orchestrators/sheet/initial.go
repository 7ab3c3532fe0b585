package sheet

import (
	"slices"

	entities "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const abilityDieSize = 6

// initialAttributes produces the starting attributes for method. Rolls is
// only populated for the dice methods.
func (o *Orchestrator) initialAttributes(
	method Method,
	explicit *entities.AttributeSet,
) (entities.AttributeSet, []AttributeRoll, error) {
	switch method {
	case MethodDefault:
		return entities.DefaultAttributes(), nil, nil
	case MethodExplicit:
		if explicit == nil {
			return entities.AttributeSet{}, nil, errors.InvalidArgument("attributes are required for the explicit method")
		}
		return *explicit, nil, nil
	case MethodClassic:
		return o.rollAttributes(3, 0)
	case MethodFourDropLowest:
		return o.rollAttributes(4, 1)
	default:
		return entities.AttributeSet{}, nil, errors.InvalidArgumentf("unknown method %q", method).
			WithMeta("method", string(method))
	}
}

// rollAttributes rolls count d6 per attribute in display order and sums all
// but the lowest drop dice.
func (o *Orchestrator) rollAttributes(count, drop int) (entities.AttributeSet, []AttributeRoll, error) {
	var set entities.AttributeSet
	rolls := make([]AttributeRoll, 0, entities.AttributeCount)

	for _, attr := range entities.AllAttributes {
		results, err := o.roller.RollN(count, abilityDieSize)
		if err != nil {
			return entities.AttributeSet{}, nil, errors.Wrapf(err, "failed to roll %s", attr)
		}
		if len(results) != count {
			return entities.AttributeSet{}, nil, errors.Internalf("roller returned %d dice, want %d", len(results), count)
		}

		sorted := slices.Clone(results)
		slices.Sort(sorted)

		roll := AttributeRoll{
			Attribute: attr,
			Kept:      sorted[drop:],
		}
		if drop > 0 {
			roll.Dropped = sorted[:drop]
		}
		for _, v := range roll.Kept {
			roll.Total += v
		}

		set = set.With(attr, roll.Total)
		rolls = append(rolls, roll)
	}

	return set, rolls, nil
}
