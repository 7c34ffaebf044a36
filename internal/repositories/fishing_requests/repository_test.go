package fishingrequests_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	fishingrequests "github.com/tides-game/tides-api/internal/repositories/fishing_requests"
	"github.com/tides-game/tides-api/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() (fishingrequests.Repository, func())
	repo    fishingrequests.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo, s.cleanup = s.newRepo()
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	req := &entities.FishingRequest{
		PlayerID:      testutils.TestPlayerID,
		PendingNonce:  3,
		BaitKindInUse: 1,
		FishingNonce:  3,
		IssuedAt:      testutils.TestNow,
	}

	_, err := s.repo.Save(s.ctx, fishingrequests.SaveInput{Request: req})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, fishingrequests.GetInput{PlayerID: req.PlayerID})
	s.Require().NoError(err)
	s.Equal(req, out.Request)
	s.True(out.Request.IsPending())
}

func (s *RepositoryTestSuite) TestErrors() {
	_, err := s.repo.Get(s.ctx, fishingrequests.GetInput{PlayerID: "nobody"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Save(s.ctx, fishingrequests.SaveInput{Request: &entities.FishingRequest{}})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (fishingrequests.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			return fishingrequests.NewRedisRepository(client), cleanup
		},
	})
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (fishingrequests.Repository, func()) {
			return fishingrequests.NewInMemory(), func() {}
		},
	})
}

func TestInMemoryExportImport(t *testing.T) {
	repo := fishingrequests.NewInMemory()
	_, err := repo.Save(context.Background(), fishingrequests.SaveInput{
		Request: &entities.FishingRequest{PlayerID: "p", FishingNonce: 7},
	})
	require.NoError(t, err)

	restored := fishingrequests.NewInMemory()
	restored.Import(repo.Export())

	out, err := restored.Get(context.Background(), fishingrequests.GetInput{PlayerID: "p"})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), out.Request.FishingNonce)
}
