package players_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/repositories/players"
	"github.com/tides-game/tides-api/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() (players.Repository, func())
	repo    players.Repository
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

func (s *RepositoryTestSuite) TestCreateAndGet() {
	player := testutils.CreateTestPlayer(testutils.TestPlayerID)

	_, err := s.repo.Create(s.ctx, players.CreateInput{Player: player})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, players.GetInput{PlayerID: player.ID})
	s.Require().NoError(err)
	s.Equal(player, out.Player)
}

func (s *RepositoryTestSuite) TestCreateDuplicate() {
	player := testutils.CreateTestPlayer(testutils.TestPlayerID)

	_, err := s.repo.Create(s.ctx, players.CreateInput{Player: player})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, players.CreateInput{Player: player})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
	s.Equal(entities.ReasonAlreadyRegistered, errors.GetReason(err))
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, players.GetInput{PlayerID: "nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(entities.ReasonPlayerNotRegistered, errors.GetReason(err))
}

func (s *RepositoryTestSuite) TestUpdate() {
	player := testutils.CreateTestPlayer(testutils.TestPlayerID)

	_, err := s.repo.Update(s.ctx, players.UpdateInput{Player: player})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Create(s.ctx, players.CreateInput{Player: player})
	s.Require().NoError(err)

	player.X = 4
	player.Bait[2] = 3
	_, err = s.repo.Update(s.ctx, players.UpdateInput{Player: player})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, players.GetInput{PlayerID: player.ID})
	s.Require().NoError(err)
	s.Equal(int32(4), out.Player.X)
	s.Equal(uint64(3), out.Player.BaitCount(2))
}

func (s *RepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, players.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, players.CreateInput{Player: &entities.PlayerState{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, players.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (players.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			return players.NewRedisRepository(client), cleanup
		},
	})
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (players.Repository, func()) {
			return players.NewInMemory(), func() {}
		},
	})
}

func TestInMemoryExportImport(t *testing.T) {
	repo := players.NewInMemory()
	ctx := context.Background()

	for _, id := range []string{"b", "a"} {
		_, err := repo.Create(ctx, players.CreateInput{Player: testutils.CreateTestPlayer(id)})
		require.NoError(t, err)
	}

	exported := repo.Export()
	require.Len(t, exported, 2)
	assert.Equal(t, "a", exported[0].ID)

	restored := players.NewInMemory()
	restored.Import(exported)
	out, err := restored.Get(ctx, players.GetInput{PlayerID: "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", out.Player.ID)
}
