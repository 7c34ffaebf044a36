package snapshot_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/repositories/catches"
	fishingrequests "github.com/tides-game/tides-api/internal/repositories/fishing_requests"
	"github.com/tides-game/tides-api/internal/repositories/inventories"
	"github.com/tides-game/tides-api/internal/repositories/markets"
	"github.com/tides-game/tides-api/internal/repositories/players"
	"github.com/tides-game/tides-api/internal/snapshot"
	"github.com/tides-game/tides-api/internal/testutils"
)

func newStores() *snapshot.Stores {
	return &snapshot.Stores{
		Players:         players.NewInMemory(),
		Inventories:     inventories.NewInMemory(),
		FishingRequests: fishingrequests.NewInMemory(),
		Markets:         markets.NewInMemory(),
		Catches:         catches.NewInMemory(),
	}
}

func seed(t *testing.T, s *snapshot.Stores) {
	ctx := context.Background()

	_, err := s.Players.Create(ctx, players.CreateInput{Player: testutils.CreateTestPlayer(testutils.TestPlayerID)})
	require.NoError(t, err)
	_, err = s.Inventories.Save(ctx, inventories.SaveInput{Grid: testutils.CreateTestGrid(testutils.TestPlayerID, 3, 2)})
	require.NoError(t, err)
	_, err = s.FishingRequests.Save(ctx, fishingrequests.SaveInput{Request: &entities.FishingRequest{
		PlayerID:      testutils.TestPlayerID,
		PendingNonce:  4,
		FishingNonce:  4,
		BaitKindInUse: 1,
		IssuedAt:      testutils.TestNow,
	}})
	require.NoError(t, err)
	_, err = s.Markets.Settle(ctx, markets.SettleInput{
		SpeciesID: 2,
		Apply: func(current entities.MarketRecord) (*entities.MarketRecord, error) {
			current.CurrentValue = 123
			current.LastSaleTime = testutils.TestNow
			return &current, nil
		},
	})
	require.NoError(t, err)
	_, err = s.Catches.Create(ctx, catches.CreateInput{Record: testutils.CreateTestCatch(testutils.TestPlayerID, 1, 2, 40)})
	require.NoError(t, err)
}

func TestWriteReadRestore(t *testing.T) {
	ctx := context.Background()
	src := newStores()
	seed(t, src)

	snap, err := snapshot.Capture(src, testutils.TestNow)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "state", "tides.snap")
	require.NoError(t, snapshot.Write(path, snap))

	loaded, err := snapshot.Read(path)
	require.NoError(t, err)

	summary := snapshot.Summarize(loaded)
	assert.Equal(t, snapshot.Summary{
		Version:         snapshot.Version,
		SavedAt:         testutils.TestNow,
		Players:         1,
		Inventories:     1,
		FishingRequests: 1,
		Markets:         1,
		Catches:         1,
	}, summary)

	dst := newStores()
	require.NoError(t, snapshot.Restore(dst, loaded))

	player, err := dst.Players.Get(ctx, players.GetInput{PlayerID: testutils.TestPlayerID})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), player.Player.BaitCount(1))

	req, err := dst.FishingRequests.Get(ctx, fishingrequests.GetInput{PlayerID: testutils.TestPlayerID})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), req.Request.PendingNonce)

	record, err := dst.Markets.Get(ctx, markets.GetInput{SpeciesID: 2})
	require.NoError(t, err)
	assert.Equal(t, uint64(123), record.Record.CurrentValue)

	catch, err := dst.Catches.Get(ctx, catches.GetInput{Owner: testutils.TestPlayerID, InstanceID: 1})
	require.NoError(t, err)
	assert.Equal(t, uint16(40), catch.Record.Weight)
}

func TestWriteReplacesPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tides.snap")

	empty, err := snapshot.Capture(newStores(), 1)
	require.NoError(t, err)
	require.NoError(t, snapshot.Write(path, empty))

	full := newStores()
	seed(t, full)
	snap, err := snapshot.Capture(full, 2)
	require.NoError(t, err)
	require.NoError(t, snapshot.Write(path, snap))

	loaded, err := snapshot.Read(path)
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded.Header.SavedAt)
	assert.Len(t, loaded.Players, 1)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := snapshot.Read(filepath.Join(dir, "missing.snap"))
	assert.True(t, errors.IsNotFound(err))

	garbage := filepath.Join(dir, "garbage.snap")
	require.NoError(t, os.WriteFile(garbage, []byte("not zstd at all"), 0o600))
	_, err = snapshot.Read(garbage)
	assert.Error(t, err)
}

func TestRestoreRejectsOtherVersions(t *testing.T) {
	err := snapshot.Restore(newStores(), &snapshot.SnapshotV1{Header: snapshot.Header{Version: 9}})
	assert.True(t, errors.IsFailedPrecondition(err))

	err = snapshot.Restore(&snapshot.Stores{}, &snapshot.SnapshotV1{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestCaptureWithoutCatchLedger(t *testing.T) {
	s := newStores()
	s.Catches = nil

	snap, err := snapshot.Capture(s, 1)
	require.NoError(t, err)
	assert.Empty(t, snap.Catches)
}
