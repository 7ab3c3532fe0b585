package sheet

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	entities "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	sheetrepomock "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

// scriptedRoller returns preset dice, one slice per RollN call
type scriptedRoller struct {
	rolls [][]int
	calls int
}

func (r *scriptedRoller) Roll(_ int) (int, error) {
	out, err := r.RollN(1, 6)
	if err != nil {
		return 0, err
	}
	return out[0], nil
}

func (r *scriptedRoller) RollN(_, _ int) ([]int, error) {
	if r.calls >= len(r.rolls) {
		return nil, fmt.Errorf("no more scripted rolls")
	}
	out := r.rolls[r.calls]
	r.calls++
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *sheetrepomock.MockRepository
	mockNotifier *mockNotifier
	clock        *clock.Fixed
	orchestrator *Orchestrator
	ctx          context.Context
}

// mockNotifier records notifications
type mockNotifier struct {
	got []Notification
}

func (m *mockNotifier) Notify(_ context.Context, n Notification) {
	m.got = append(m.got, n)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = sheetrepomock.NewMockRepository(s.ctrl)
	s.mockNotifier = &mockNotifier{}
	s.clock = clock.NewFixed(testutils.FixedTime)
	s.ctx = context.Background()

	o, err := New(&Config{
		SheetRepo:   s.mockRepo,
		IDGenerator: idgen.NewSequential("sheet"),
		Clock:       s.clock,
		Notifier:    s.mockNotifier,
	})
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = New(&Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "SheetRepo")
	s.Contains(err.Error(), "IDGenerator")

	_, err = New(&Config{
		SheetRepo:     s.mockRepo,
		IDGenerator:   idgen.NewSequential("sheet"),
		DefaultMethod: MethodExplicit,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = New(&Config{
		SheetRepo:     s.mockRepo,
		IDGenerator:   idgen.NewSequential("sheet"),
		DefaultMethod: "2d20",
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateSheetWithDefaults() {
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sheetrepo.CreateInput) (*sheetrepo.CreateOutput, error) {
			s.Equal("sheet_1", input.Sheet.ID)
			s.Equal(entities.DefaultAttributes(), input.Sheet.Attributes)
			s.Equal(14, input.Sheet.AvailableSkillPoints)
			s.Empty(input.Sheet.Skills)
			s.Equal(testutils.FixedTime, input.Sheet.CreatedAt)
			return &sheetrepo.CreateOutput{Sheet: input.Sheet}, nil
		})

	out, err := s.orchestrator.CreateSheet(s.ctx, &CreateSheetInput{})
	s.Require().NoError(err)
	s.Equal("sheet_1", out.Sheet.ID)
	s.Empty(out.Rolls)
	s.Equal(14, out.View.AvailableSkillPoints)
	s.Equal(0, out.View.SpentSkillPoints)
}

func (s *OrchestratorTestSuite) TestCreateSheetExplicit() {
	attrs := entities.NewAttributeSet(15, 14, 13, 12, 10, 8)
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sheetrepo.CreateInput) (*sheetrepo.CreateOutput, error) {
			return &sheetrepo.CreateOutput{Sheet: input.Sheet}, nil
		})

	out, err := s.orchestrator.CreateSheet(s.ctx, &CreateSheetInput{Method: MethodExplicit, Attributes: &attrs})
	s.Require().NoError(err)
	s.Equal(attrs, out.Sheet.Attributes)
	s.Equal(58, out.Sheet.AvailableSkillPoints)
}

func (s *OrchestratorTestSuite) TestCreateSheetRejectsBadInput() {
	_, err := s.orchestrator.CreateSheet(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.CreateSheet(s.ctx, &CreateSheetInput{Method: MethodExplicit})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.CreateSheet(s.ctx, &CreateSheetInput{Method: "point_buy"})
	s.True(errors.IsInvalidArgument(err))
	s.Equal("point_buy", errors.GetMeta(err)["method"])
}

func (s *OrchestratorTestSuite) TestCreateSheetFourDropLowest() {
	roller := &scriptedRoller{rolls: [][]int{
		{6, 1, 5, 4}, // Strength 15
		{3, 3, 3, 3}, // Dexterity 9
		{2, 6, 6, 6}, // Constitution 18
		{2, 2, 2, 2}, // Intelligence 6
		{1, 1, 1, 1}, // Wisdom 3
		{5, 4, 3, 2}, // Charisma 12
	}}
	o, err := New(&Config{
		SheetRepo:   s.mockRepo,
		IDGenerator: idgen.NewSequential("sheet"),
		Clock:       s.clock,
		DiceRoller:  roller,
	})
	s.Require().NoError(err)

	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sheetrepo.CreateInput) (*sheetrepo.CreateOutput, error) {
			return &sheetrepo.CreateOutput{Sheet: input.Sheet}, nil
		})

	out, err := o.CreateSheet(s.ctx, &CreateSheetInput{Method: MethodFourDropLowest})
	s.Require().NoError(err)

	s.Equal(entities.NewAttributeSet(15, 9, 18, 6, 3, 12), out.Sheet.Attributes)
	s.Equal(34, out.Sheet.AvailableSkillPoints)
	s.Require().Len(out.Rolls, entities.AttributeCount)
	s.Equal([]int{4, 5, 6}, out.Rolls[0].Kept)
	s.Equal([]int{1}, out.Rolls[0].Dropped)
	s.Equal(15, out.Rolls[0].Total)
}

func (s *OrchestratorTestSuite) TestCreateSheetClassic() {
	roller := &scriptedRoller{rolls: [][]int{
		{1, 2, 3}, {4, 5, 6}, {6, 6, 6}, {1, 1, 1}, {2, 2, 2}, {3, 3, 3},
	}}
	o, err := New(&Config{
		SheetRepo:     s.mockRepo,
		IDGenerator:   idgen.NewSequential("sheet"),
		DiceRoller:    roller,
		DefaultMethod: MethodClassic,
	})
	s.Require().NoError(err)

	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sheetrepo.CreateInput) (*sheetrepo.CreateOutput, error) {
			return &sheetrepo.CreateOutput{Sheet: input.Sheet}, nil
		})

	out, err := o.CreateSheet(s.ctx, &CreateSheetInput{})
	s.Require().NoError(err)
	s.Equal(entities.NewAttributeSet(6, 15, 18, 3, 6, 9), out.Sheet.Attributes)
	s.Empty(out.Rolls[0].Dropped)
	s.Equal(22, out.Sheet.AvailableSkillPoints)
}

func (s *OrchestratorTestSuite) TestCreateSheetRollerFailure() {
	o, err := New(&Config{
		SheetRepo:   s.mockRepo,
		IDGenerator: idgen.NewSequential("sheet"),
		DiceRoller:  &scriptedRoller{},
	})
	s.Require().NoError(err)

	_, err = o.CreateSheet(s.ctx, &CreateSheetInput{Method: MethodClassic})
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestGetSheetNotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, sheetrepo.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("sheet not found"))

	_, err := s.orchestrator.GetSheet(s.ctx, &GetSheetInput{SheetID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSheetIDRequired() {
	_, err := s.orchestrator.GetSheet(s.ctx, &GetSheetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.DeleteSheet(s.ctx, &DeleteSheetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.IncrementSkill(s.ctx, &IncrementSkillInput{Skill: entities.Arcana})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestIncrementSkillOverBudgetNotifiesWithoutWriting() {
	stored := testutils.CreateTestSheetWithSkills("sheet_1", entities.SkillAllocation{entities.Insight: 1})
	stored.AvailableSkillPoints = 2

	s.mockRepo.EXPECT().
		Get(s.ctx, sheetrepo.GetInput{ID: "sheet_1"}).
		Return(&sheetrepo.GetOutput{Sheet: stored}, nil)

	_, err := s.orchestrator.IncrementSkill(s.ctx, &IncrementSkillInput{SheetID: "sheet_1", Skill: entities.Arcana})
	s.Require().Error(err)
	s.True(errors.Is(err, rules.ErrBudgetExceeded))
	s.True(errors.IsResourceExhausted(err))

	s.Require().Len(s.mockNotifier.got, 1)
	s.Equal(Notification{
		Kind:      NotificationBudgetExceeded,
		SheetID:   "sheet_1",
		Message:   "You have no more skill points to spend!",
		Skill:     entities.Arcana,
		Spent:     2,
		Available: 2,
	}, s.mockNotifier.got[0])
}

func (s *OrchestratorTestSuite) TestIncrementSkillWritesUpdatedSheet() {
	s.clock.Advance(time.Minute)
	s.mockRepo.EXPECT().
		Get(s.ctx, sheetrepo.GetInput{ID: "sheet_1"}).
		Return(&sheetrepo.GetOutput{Sheet: testutils.CreateTestSheet("sheet_1")}, nil)
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sheetrepo.UpdateInput) (*sheetrepo.UpdateOutput, error) {
			s.Equal(1, input.Sheet.Skills.Points(entities.Perception))
			s.Equal(s.clock.Now(), input.Sheet.UpdatedAt)
			return &sheetrepo.UpdateOutput{Sheet: input.Sheet}, nil
		})

	out, err := s.orchestrator.IncrementSkill(s.ctx, &IncrementSkillInput{SheetID: "sheet_1", Skill: entities.Perception})
	s.Require().NoError(err)
	s.Equal(entities.SkillAllocation{entities.Perception: 1}, out.Skills)
	s.Equal(2, out.View.SpentSkillPoints)
	s.Empty(s.mockNotifier.got)
}

func (s *OrchestratorTestSuite) TestUpdateFailureIsWrapped() {
	s.mockRepo.EXPECT().
		Get(s.ctx, sheetrepo.GetInput{ID: "sheet_1"}).
		Return(&sheetrepo.GetOutput{Sheet: testutils.CreateTestSheet("sheet_1")}, nil)
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.orchestrator.IncrementAttribute(s.ctx, &IncrementAttributeInput{
		SheetID:   "sheet_1",
		Attribute: entities.Strength,
	})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
	s.Contains(err.Error(), "failed to update sheet")
}

func (s *OrchestratorTestSuite) TestRuleErrorSkipsWrite() {
	s.mockRepo.EXPECT().
		Get(s.ctx, sheetrepo.GetInput{ID: "sheet_1"}).
		Return(&sheetrepo.GetOutput{Sheet: testutils.CreateTestSheet("sheet_1")}, nil)

	_, err := s.orchestrator.IncrementAttribute(s.ctx, &IncrementAttributeInput{
		SheetID:   "sheet_1",
		Attribute: entities.Attribute(42),
	})
	s.True(errors.Is(err, rules.ErrInvalidAttribute))
}

func (s *OrchestratorTestSuite) TestGetClassRequirements() {
	out, err := s.orchestrator.GetClassRequirements(s.ctx, &GetClassRequirementsInput{Class: entities.Wizard})
	s.Require().NoError(err)
	s.Contains(out.Requirements, entities.Requirement{Attribute: entities.Intelligence, Minimum: 14})

	_, err = s.orchestrator.GetClassRequirements(s.ctx, &GetClassRequirementsInput{Class: entities.ClassName(99)})
	s.True(errors.Is(err, rules.ErrUnknownClass))
}
