package catches_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/repositories/catches"
	"github.com/tides-game/tides-api/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() (catches.Repository, func())
	repo    catches.Repository
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

func (s *RepositoryTestSuite) TestCreateGetDelete() {
	rec := testutils.CreateTestCatch(testutils.TestPlayerID, 3, 2, 350)

	_, err := s.repo.Create(s.ctx, catches.CreateInput{Record: rec})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, catches.GetInput{Owner: rec.Owner, InstanceID: 3})
	s.Require().NoError(err)
	s.Equal(rec, out.Record)

	_, err = s.repo.Delete(s.ctx, catches.DeleteInput{Owner: rec.Owner, InstanceID: 3})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, catches.GetInput{Owner: rec.Owner, InstanceID: 3})
	s.True(errors.IsNotFound(err))
	s.Equal(entities.ReasonCatchNotFound, errors.GetReason(err))

	_, err = s.repo.Delete(s.ctx, catches.DeleteInput{Owner: rec.Owner, InstanceID: 3})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestCreateDuplicate() {
	rec := testutils.CreateTestCatch(testutils.TestPlayerID, 1, 1, 10)

	_, err := s.repo.Create(s.ctx, catches.CreateInput{Record: rec})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, catches.CreateInput{Record: rec})
	s.True(errors.IsAlreadyExists(err))

	// same instance id under another owner is a separate catch
	other := testutils.CreateTestCatch("player-test-002", 1, 1, 10)
	_, err = s.repo.Create(s.ctx, catches.CreateInput{Record: other})
	s.NoError(err)
}

func (s *RepositoryTestSuite) TestListByOwner() {
	for _, id := range []uint64{5, 2, 9} {
		_, err := s.repo.Create(s.ctx, catches.CreateInput{
			Record: testutils.CreateTestCatch(testutils.TestPlayerID, id, 4, uint16(id*10)),
		})
		s.Require().NoError(err)
	}
	_, err := s.repo.Create(s.ctx, catches.CreateInput{Record: testutils.CreateTestCatch("someone-else", 1, 4, 1)})
	s.Require().NoError(err)

	out, err := s.repo.ListByOwner(s.ctx, catches.ListByOwnerInput{Owner: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 3)
	s.Equal(uint64(2), out.Records[0].InstanceID)
	s.Equal(uint64(5), out.Records[1].InstanceID)
	s.Equal(uint64(9), out.Records[2].InstanceID)
	s.Equal(uint16(90), out.Records[2].Weight)

	empty, err := s.repo.ListByOwner(s.ctx, catches.ListByOwnerInput{Owner: "nobody"})
	s.Require().NoError(err)
	s.Empty(empty.Records)
}

func (s *RepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, catches.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, catches.CreateInput{Record: testutils.CreateTestCatch("p", 0, 1, 1)})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, catches.GetInput{InstanceID: 1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ListByOwner(s.ctx, catches.ListByOwnerInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (catches.Repository, func()) {
			return catches.NewInMemory(), func() {}
		},
	})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (catches.Repository, func()) {
			repo, err := catches.OpenSQL(context.Background(), &catches.SQLConfig{
				Driver: catches.DriverSQLite,
				DSN:    filepath.Join(t.TempDir(), "ledger.db"),
			})
			require.NoError(t, err)
			return repo, func() { _ = repo.Close() }
		},
	})
}

func TestSQLiteReopenKeepsRecords(t *testing.T) {
	ctx := context.Background()
	cfg := &catches.SQLConfig{Driver: catches.DriverSQLite, DSN: filepath.Join(t.TempDir(), "ledger.db")}

	repo, err := catches.OpenSQL(ctx, cfg)
	require.NoError(t, err)
	_, err = repo.Create(ctx, catches.CreateInput{Record: testutils.CreateTestCatch("p", 1, 2, 3)})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reopened, err := catches.OpenSQL(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	out, err := reopened.Get(ctx, catches.GetInput{Owner: "p", InstanceID: 1})
	require.NoError(t, err)
	assert.Equal(t, uint16(3), out.Record.Weight)
}

func TestSQLConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     catches.SQLConfig
		wantErr bool
	}{
		{name: "sqlite", cfg: catches.SQLConfig{Driver: "sqlite", DSN: "x.db"}},
		{name: "postgres", cfg: catches.SQLConfig{Driver: "postgres", DSN: "postgres://localhost/tides"}},
		{name: "missing driver", cfg: catches.SQLConfig{DSN: "x"}, wantErr: true},
		{name: "missing dsn", cfg: catches.SQLConfig{Driver: "mysql"}, wantErr: true},
		{name: "unknown driver", cfg: catches.SQLConfig{Driver: "oracle", DSN: "x"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.True(t, errors.IsInvalidArgument(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOpenSQLRejectsBadMySQLDSN(t *testing.T) {
	_, err := catches.OpenSQL(context.Background(), &catches.SQLConfig{Driver: catches.DriverMySQL, DSN: "not a dsn"})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestInMemoryExportImport(t *testing.T) {
	repo := catches.NewInMemory()
	ctx := context.Background()
	for _, owner := range []string{"b", "a"} {
		_, err := repo.Create(ctx, catches.CreateInput{Record: testutils.CreateTestCatch(owner, 1, 1, 1)})
		require.NoError(t, err)
	}

	exported := repo.Export()
	require.Len(t, exported, 2)
	assert.Equal(t, "a", exported[0].Owner)

	restored := catches.NewInMemory()
	restored.Import(exported)
	_, err := restored.Get(ctx, catches.GetInput{Owner: "b", InstanceID: 1})
	assert.NoError(t, err)
}
