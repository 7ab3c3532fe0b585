package sheet_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entities "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

type budgetEvent struct {
	sheetID   string
	entity    string
	skill     any
	spent     any
	available any
	message   any
}

func TestEventNotifierPublishesRejectedIncrement(t *testing.T) {
	ctx := context.Background()
	bus := events.NewBus()

	var got []budgetEvent
	bus.SubscribeFunc(sheet.EventSkillBudgetExceeded, 0, func(_ context.Context, e events.Event) error {
		ev := budgetEvent{sheetID: e.Source().GetID(), entity: e.Source().GetType()}
		ev.skill, _ = e.Context().Get(sheet.EventKeySkill)
		ev.spent, _ = e.Context().Get(sheet.EventKeySpent)
		ev.available, _ = e.Context().Get(sheet.EventKeyAvailable)
		ev.message, _ = e.Context().Get(sheet.EventKeyMessage)
		got = append(got, ev)
		return nil
	})

	o, err := sheet.New(&sheet.Config{
		SheetRepo:   sheetrepo.NewInMemory(),
		IDGenerator: idgen.NewSequential("sheet"),
		Notifier:    sheet.NewEventNotifier(bus, nil),
	})
	require.NoError(t, err)

	created, err := o.CreateSheet(ctx, &sheet.CreateSheetInput{Method: sheet.MethodDefault})
	require.NoError(t, err)
	id := created.Sheet.ID

	// Performance runs off Charisma 20 (+5): nine points spend the budget of 14.
	for i := 0; i < 9; i++ {
		_, err := o.IncrementSkill(ctx, &sheet.IncrementSkillInput{SheetID: id, Skill: entities.Performance})
		require.NoError(t, err, "increment %d", i+1)
	}
	assert.Empty(t, got)

	_, err = o.IncrementSkill(ctx, &sheet.IncrementSkillInput{SheetID: id, Skill: entities.Performance})
	require.True(t, errors.Is(err, rules.ErrBudgetExceeded))

	require.Len(t, got, 1)
	assert.Equal(t, budgetEvent{
		sheetID:   id,
		entity:    entities.EntityType,
		skill:     entities.Performance.String(),
		spent:     14,
		available: 14,
		message:   rules.BudgetExceededMessage,
	}, got[0])
}

func TestEventNotifierIgnoresOtherKinds(t *testing.T) {
	bus := events.NewBus()
	calls := 0
	bus.SubscribeFunc(sheet.EventSkillBudgetExceeded, 0, func(context.Context, events.Event) error {
		calls++
		return nil
	})

	sheet.NewEventNotifier(bus, nil).Notify(context.Background(), sheet.Notification{Kind: "other"})
	assert.Equal(t, 0, calls)
}
