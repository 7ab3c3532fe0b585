package sheetrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

// RepositoryContractSuite runs the same behaviour checks against every
// Repository implementation.
type RepositoryContractSuite struct {
	suite.Suite
	newRepo func() sheetrepo.Repository
	repo    sheetrepo.Repository
	ctx     context.Context
}

func (s *RepositoryContractSuite) SetupTest() {
	s.repo = s.newRepo()
	s.ctx = context.Background()
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func() sheetrepo.Repository { return sheetrepo.NewInMemory() },
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func() sheetrepo.Repository {
			client, _ := testutils.CreateTestRedisClient(t)
			repo, err := sheetrepo.NewRedisRepository(&sheetrepo.RedisConfig{Client: client})
			if err != nil {
				t.Fatalf("create redis repository: %v", err)
			}
			return repo
		},
	})
}

func (s *RepositoryContractSuite) TestCreateAndGet() {
	original := testutils.CreateTestSheetWithSkills("sheet_1", sheet.SkillAllocation{sheet.Insight: 1})

	created, err := s.repo.Create(s.ctx, sheetrepo.CreateInput{Sheet: original})
	s.Require().NoError(err)
	s.Equal(original, created.Sheet)

	got, err := s.repo.Get(s.ctx, sheetrepo.GetInput{ID: "sheet_1"})
	s.Require().NoError(err)
	s.Equal(original, got.Sheet)
}

func (s *RepositoryContractSuite) TestCreateRejectsDuplicate() {
	_, err := s.repo.Create(s.ctx, sheetrepo.CreateInput{Sheet: testutils.CreateTestSheet("sheet_1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, sheetrepo.CreateInput{Sheet: testutils.CreateTestSheet("sheet_1")})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryContractSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, sheetrepo.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, sheetrepo.CreateInput{Sheet: testutils.CreateTestSheet("")})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, sheetrepo.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Update(s.ctx, sheetrepo.UpdateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, sheetrepo.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryContractSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, sheetrepo.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))
	s.Equal("nope", errors.GetMeta(err)["sheet_id"])
}

func (s *RepositoryContractSuite) TestUpdate() {
	original := testutils.CreateTestSheet("sheet_1")
	_, err := s.repo.Create(s.ctx, sheetrepo.CreateInput{Sheet: original})
	s.Require().NoError(err)

	bard := sheet.Bard
	changed := original.Clone()
	changed.Attributes = changed.Attributes.With(sheet.Strength, 9)
	changed.Skills[sheet.Stealth] = 0
	changed.SelectedClass = &bard
	changed.UpdatedAt = original.UpdatedAt.Add(time.Minute)

	_, err = s.repo.Update(s.ctx, sheetrepo.UpdateInput{Sheet: changed})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, sheetrepo.GetInput{ID: "sheet_1"})
	s.Require().NoError(err)
	s.Equal(changed, got.Sheet)
}

func (s *RepositoryContractSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, sheetrepo.UpdateInput{Sheet: testutils.CreateTestSheet("ghost")})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryContractSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, sheetrepo.CreateInput{Sheet: testutils.CreateTestSheet("sheet_1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, sheetrepo.DeleteInput{ID: "sheet_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, sheetrepo.GetInput{ID: "sheet_1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, sheetrepo.DeleteInput{ID: "sheet_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryContractSuite) TestReturnedSheetsAreCopies() {
	original := testutils.CreateTestSheet("sheet_1")
	_, err := s.repo.Create(s.ctx, sheetrepo.CreateInput{Sheet: original})
	s.Require().NoError(err)

	original.Skills[sheet.Arcana] = 9

	got, err := s.repo.Get(s.ctx, sheetrepo.GetInput{ID: "sheet_1"})
	s.Require().NoError(err)
	s.Equal(0, got.Sheet.Skills.Points(sheet.Arcana))

	got.Sheet.Skills[sheet.Arcana] = 5
	again, err := s.repo.Get(s.ctx, sheetrepo.GetInput{ID: "sheet_1"})
	s.Require().NoError(err)
	s.Equal(0, again.Sheet.Skills.Points(sheet.Arcana))
}
