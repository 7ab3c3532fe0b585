package sheet

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"

	entities "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// NotificationKind names a user-facing signal
type NotificationKind string

// NotificationBudgetExceeded is sent when a skill increment is rejected
const NotificationBudgetExceeded NotificationKind = "budget_exceeded"

// Notification is a user-facing signal raised by an operation
type Notification struct {
	Kind    NotificationKind
	SheetID string
	Message string

	Skill     entities.SkillName
	Spent     int
	Available int
}

// Notifier receives user-facing signals. Notify is called synchronously on
// the request path and must not block for long.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ctx context.Context, n Notification)

// Notify calls f
func (f NotifierFunc) Notify(ctx context.Context, n Notification) {
	f(ctx, n)
}

// LogNotifier writes notifications to a zap logger
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier that logs at info level
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs n
func (l *LogNotifier) Notify(_ context.Context, n Notification) {
	l.logger.Info(n.Message,
		zap.String("kind", string(n.Kind)),
		zap.String("sheet_id", n.SheetID),
		zap.Stringer("skill", n.Skill),
		zap.Int("spent", n.Spent),
		zap.Int("available", n.Available),
	)
}

// WriterNotifier prints the message of each notification on its own line
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier creates a notifier printing to w
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Notify prints n.Message
func (wn *WriterNotifier) Notify(_ context.Context, n Notification) {
	wn.mu.Lock()
	defer wn.mu.Unlock()
	_, _ = fmt.Fprintln(wn.w, n.Message)
}

// EventSkillBudgetExceeded is the game event published when a skill
// increment is rejected
const EventSkillBudgetExceeded = "sheet.skill_budget_exceeded"

// Context keys carried by EventSkillBudgetExceeded
const (
	EventKeySkill     = "skill"
	EventKeySpent     = "spent"
	EventKeyAvailable = "available"
	EventKeyMessage   = "message"
)

// EventNotifier publishes notifications on an rpg-toolkit event bus with the
// sheet as the event source
type EventNotifier struct {
	bus    events.EventBus
	logger *zap.Logger
}

// NewEventNotifier creates a notifier publishing to bus
func NewEventNotifier(bus events.EventBus, logger *zap.Logger) *EventNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventNotifier{bus: bus, logger: logger}
}

// Notify publishes n. A failing handler is logged; the rejected operation has
// already been decided.
func (e *EventNotifier) Notify(ctx context.Context, n Notification) {
	if n.Kind != NotificationBudgetExceeded {
		return
	}

	event := events.NewGameEvent(EventSkillBudgetExceeded, sheetRef(n.SheetID), nil)
	event.Context().Set(EventKeySkill, n.Skill.String())
	event.Context().Set(EventKeySpent, n.Spent)
	event.Context().Set(EventKeyAvailable, n.Available)
	event.Context().Set(EventKeyMessage, n.Message)

	if err := e.bus.Publish(ctx, event); err != nil {
		e.logger.Warn("failed to publish notification",
			zap.String("event", EventSkillBudgetExceeded),
			zap.String("sheet_id", n.SheetID),
			zap.Error(err),
		)
	}
}

// sheetRef identifies a sheet as an event source without loading it
type sheetRef string

func (r sheetRef) GetID() string { return string(r) }
func (r sheetRef) GetType() string { return entities.EntityType }

var (
	_ Notifier = NotifierFunc(nil)
	_ Notifier = (*EventNotifier)(nil)
	_ Notifier = (*LogNotifier)(nil)
	_ Notifier = (*WriterNotifier)(nil)
)
