// Package sheet implements the character sheet orchestrator. It loads a sheet,
// applies one rule from internal/rules and stores the result.
package sheet

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.uber.org/zap"

	entities "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Config holds the dependencies for the sheet orchestrator.
// Clock, DiceRoller, Notifier and Logger fall back to defaults when nil.
type Config struct {
	SheetRepo   sheetrepo.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	DiceRoller  dice.Roller
	Notifier    Notifier
	Logger      *zap.Logger

	// DefaultMethod is used when CreateSheetInput.Method is empty.
	DefaultMethod Method
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SheetRepo == nil {
		vb.RequiredField("SheetRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.DefaultMethod != "" && !c.DefaultMethod.Valid() {
		vb.Fieldf("DefaultMethod", "unknown method %q", c.DefaultMethod)
	}
	if c.DefaultMethod == MethodExplicit {
		vb.Field("DefaultMethod", "explicit needs caller-supplied attributes")
	}

	return vb.Build()
}

// Orchestrator implements Service
type Orchestrator struct {
	sheetRepo     sheetrepo.Repository
	idGen         idgen.Generator
	clock         clock.Clock
	roller        dice.Roller
	notifier      Notifier
	logger        *zap.Logger
	defaultMethod Method

	// mu serializes load-modify-store sequences within this process.
	mu sync.Mutex
}

// New creates a new sheet orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Orchestrator{
		sheetRepo:     cfg.SheetRepo,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
		roller:        cfg.DiceRoller,
		notifier:      cfg.Notifier,
		logger:        cfg.Logger,
		defaultMethod: cfg.DefaultMethod,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.roller == nil {
		o.roller = dice.DefaultRoller
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.notifier == nil {
		o.notifier = NewLogNotifier(o.logger)
	}
	if o.defaultMethod == "" {
		o.defaultMethod = MethodDefault
	}

	return o, nil
}

var _ Service = (*Orchestrator)(nil)

// Sheet lifecycle

// CreateSheet creates a sheet and snapshots its skill budget from the
// Intelligence it starts with
func (o *Orchestrator) CreateSheet(ctx context.Context, input *CreateSheetInput) (*CreateSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	method := input.Method
	if method == "" {
		method = o.defaultMethod
	}

	attrs, rolls, err := o.initialAttributes(method, input.Attributes)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()
	s := &entities.Sheet{
		ID:                   o.idGen.Generate(),
		Attributes:           attrs,
		Skills:               entities.SkillAllocation{},
		AvailableSkillPoints: rules.AvailableSkillPoints(attrs.Get(entities.Intelligence)),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if _, err := o.sheetRepo.Create(ctx, sheetrepo.CreateInput{Sheet: s}); err != nil {
		return nil, errors.Wrap(err, "failed to create sheet")
	}

	view, err := BuildView(s)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("sheet created",
		zap.String("sheet_id", s.ID),
		zap.String("method", string(method)),
		zap.Int("available_skill_points", s.AvailableSkillPoints),
	)

	return &CreateSheetOutput{Sheet: s, View: view, Rolls: rolls}, nil
}

// GetSheet loads a sheet with a freshly derived view
func (o *Orchestrator) GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error) {
	s, err := o.load(ctx, input)
	if err != nil {
		return nil, err
	}

	view, err := BuildView(s)
	if err != nil {
		return nil, err
	}

	return &GetSheetOutput{Sheet: s, View: view}, nil
}

// DeleteSheet removes a sheet
func (o *Orchestrator) DeleteSheet(ctx context.Context, input *DeleteSheetInput) (*DeleteSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSheetID(input.SheetID); err != nil {
		return nil, err
	}

	if _, err := o.sheetRepo.Delete(ctx, sheetrepo.DeleteInput{ID: input.SheetID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete sheet")
	}

	o.logger.Debug("sheet deleted", zap.String("sheet_id", input.SheetID))
	return &DeleteSheetOutput{}, nil
}

// Attributes

// IncrementAttribute raises one attribute by one
func (o *Orchestrator) IncrementAttribute(
	ctx context.Context,
	input *IncrementAttributeInput,
) (*IncrementAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, view, err := o.mutate(ctx, input.SheetID, func(s *entities.Sheet) error {
		next, err := rules.IncrementAttribute(s.Attributes, input.Attribute)
		if err != nil {
			return err
		}
		s.Attributes = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.logger.Debug("attribute incremented",
		zap.String("sheet_id", s.ID),
		zap.Stringer("attribute", input.Attribute),
		zap.Int("value", s.Attributes.Get(input.Attribute)),
	)

	return &IncrementAttributeOutput{Attributes: s.Attributes, View: view}, nil
}

// DecrementAttribute lowers one attribute by one. There is no lower bound.
func (o *Orchestrator) DecrementAttribute(
	ctx context.Context,
	input *DecrementAttributeInput,
) (*DecrementAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, view, err := o.mutate(ctx, input.SheetID, func(s *entities.Sheet) error {
		next, err := rules.DecrementAttribute(s.Attributes, input.Attribute)
		if err != nil {
			return err
		}
		s.Attributes = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.logger.Debug("attribute decremented",
		zap.String("sheet_id", s.ID),
		zap.Stringer("attribute", input.Attribute),
		zap.Int("value", s.Attributes.Get(input.Attribute)),
	)

	return &DecrementAttributeOutput{Attributes: s.Attributes, View: view}, nil
}

// Classes

// ListClasses judges every catalog class against the sheet
func (o *Orchestrator) ListClasses(ctx context.Context, input *ListClassesInput) (*ListClassesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.load(ctx, &GetSheetInput{SheetID: input.SheetID})
	if err != nil {
		return nil, err
	}

	classes := make([]ClassView, 0, len(entities.AllClasses))
	for _, name := range entities.AllClasses {
		cv, err := buildClassView(name, s.Attributes)
		if err != nil {
			return nil, err
		}
		classes = append(classes, cv)
	}

	return &ListClassesOutput{Classes: classes}, nil
}

// GetClassRequirements returns the catalog requirements of a class
func (o *Orchestrator) GetClassRequirements(
	_ context.Context,
	input *GetClassRequirementsInput,
) (*GetClassRequirementsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	reqs, err := rules.ClassRequirements(input.Class)
	if err != nil {
		return nil, err
	}

	return &GetClassRequirementsOutput{Requirements: reqs}, nil
}

// CheckEligibility reports whether the sheet's current attributes meet a class
func (o *Orchestrator) CheckEligibility(ctx context.Context, input *CheckEligibilityInput) (*CheckEligibilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.load(ctx, &GetSheetInput{SheetID: input.SheetID})
	if err != nil {
		return nil, err
	}

	eligible, err := rules.IsEligible(input.Class, s.Attributes)
	if err != nil {
		return nil, err
	}
	unmet, err := rules.UnmetRequirements(input.Class, s.Attributes)
	if err != nil {
		return nil, err
	}

	return &CheckEligibilityOutput{Eligible: eligible, Unmet: unmet}, nil
}

// SelectClass records the class the user is viewing. Selection does not
// require eligibility.
func (o *Orchestrator) SelectClass(ctx context.Context, input *SelectClassInput) (*SelectClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, view, err := o.mutate(ctx, input.SheetID, func(s *entities.Sheet) error {
		if _, err := rules.ClassRequirements(input.Class); err != nil {
			return err
		}
		class := input.Class
		s.SelectedClass = &class
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.logger.Debug("class selected",
		zap.String("sheet_id", input.SheetID),
		zap.Stringer("class", input.Class),
	)

	return &SelectClassOutput{View: view}, nil
}

// ClearSelectedClass removes the class selection
func (o *Orchestrator) ClearSelectedClass(
	ctx context.Context,
	input *ClearSelectedClassInput,
) (*ClearSelectedClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	_, view, err := o.mutate(ctx, input.SheetID, func(s *entities.Sheet) error {
		s.SelectedClass = nil
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ClearSelectedClassOutput{View: view}, nil
}

// Skills

// GetAvailableSkillPoints returns the budget snapshot and the current spend
func (o *Orchestrator) GetAvailableSkillPoints(
	ctx context.Context,
	input *GetAvailableSkillPointsInput,
) (*GetAvailableSkillPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.load(ctx, &GetSheetInput{SheetID: input.SheetID})
	if err != nil {
		return nil, err
	}

	spent, err := rules.SkillSpend(s.Skills, s.Attributes)
	if err != nil {
		return nil, err
	}

	return &GetAvailableSkillPointsOutput{Available: s.AvailableSkillPoints, Spent: spent}, nil
}

// IncrementSkill adds one point to a skill. When the budget is already used
// up the sheet is left untouched, the notifier is told and the
// rules.ErrBudgetExceeded error is returned.
func (o *Orchestrator) IncrementSkill(ctx context.Context, input *IncrementSkillInput) (*IncrementSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, view, err := o.mutate(ctx, input.SheetID, func(s *entities.Sheet) error {
		next, err := rules.IncrementSkill(s.Skills, input.Skill, s.Attributes, s.AvailableSkillPoints)
		if err != nil {
			return err
		}
		s.Skills = next
		return nil
	})
	if errors.Is(err, rules.ErrBudgetExceeded) {
		o.rejectSkillIncrement(ctx, input, err)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	o.logger.Debug("skill incremented",
		zap.String("sheet_id", s.ID),
		zap.Stringer("skill", input.Skill),
		zap.Int("points", s.Skills.Points(input.Skill)),
	)

	return &IncrementSkillOutput{Skills: s.Skills, View: view}, nil
}

func (o *Orchestrator) rejectSkillIncrement(ctx context.Context, input *IncrementSkillInput, err error) {
	meta := errors.GetMeta(err)
	spent, _ := meta["spent"].(int)
	available, _ := meta["available"].(int)

	o.logger.Info("skill increment rejected",
		zap.String("sheet_id", input.SheetID),
		zap.Stringer("skill", input.Skill),
		zap.Int("spent", spent),
		zap.Int("available", available),
	)

	o.notifier.Notify(ctx, Notification{
		Kind:      NotificationBudgetExceeded,
		SheetID:   input.SheetID,
		Message:   rules.BudgetExceededMessage,
		Skill:     input.Skill,
		Spent:     spent,
		Available: available,
	})
}

// DecrementSkill removes one point from a skill. A skill at zero is left as
// it is.
func (o *Orchestrator) DecrementSkill(ctx context.Context, input *DecrementSkillInput) (*DecrementSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, view, err := o.mutate(ctx, input.SheetID, func(s *entities.Sheet) error {
		next, err := rules.DecrementSkill(s.Skills, input.Skill)
		if err != nil {
			return err
		}
		s.Skills = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.logger.Debug("skill decremented",
		zap.String("sheet_id", s.ID),
		zap.Stringer("skill", input.Skill),
		zap.Int("points", s.Skills.Points(input.Skill)),
	)

	return &DecrementSkillOutput{Skills: s.Skills, View: view}, nil
}

// GetSkillTotal returns points, modifier and total for one skill
func (o *Orchestrator) GetSkillTotal(ctx context.Context, input *GetSkillTotalInput) (*GetSkillTotalOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.load(ctx, &GetSheetInput{SheetID: input.SheetID})
	if err != nil {
		return nil, err
	}

	points, err := rules.SkillPoints(s.Skills, input.Skill)
	if err != nil {
		return nil, err
	}
	mod, err := rules.SkillModifier(input.Skill, s.Attributes)
	if err != nil {
		return nil, err
	}
	total, err := rules.SkillTotal(s.Skills, input.Skill, s.Attributes)
	if err != nil {
		return nil, err
	}

	return &GetSkillTotalOutput{Points: points, Modifier: mod, Total: total}, nil
}

// Helper methods

func (o *Orchestrator) load(ctx context.Context, input *GetSheetInput) (*entities.Sheet, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSheetID(input.SheetID); err != nil {
		return nil, err
	}

	out, err := o.sheetRepo.Get(ctx, sheetrepo.GetInput{ID: input.SheetID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sheet")
	}
	return out.Sheet, nil
}

// mutate runs apply against the stored sheet and writes it back. When apply
// fails nothing is written and its error is returned as is.
func (o *Orchestrator) mutate(
	ctx context.Context,
	sheetID string,
	apply func(s *entities.Sheet) error,
) (*entities.Sheet, *View, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, err := o.load(ctx, &GetSheetInput{SheetID: sheetID})
	if err != nil {
		return nil, nil, err
	}

	if err := apply(s); err != nil {
		return nil, nil, err
	}
	s.UpdatedAt = o.clock.Now()

	if _, err := o.sheetRepo.Update(ctx, sheetrepo.UpdateInput{Sheet: s}); err != nil {
		return nil, nil, errors.Wrap(err, "failed to update sheet")
	}

	view, err := BuildView(s)
	if err != nil {
		return nil, nil, err
	}
	return s, view, nil
}

func validateSheetID(id string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sheet_id", id, vb)
	return vb.Build()
}
