// Package snapshot saves and restores the in-memory repositories as a
// zstd-compressed file: a JSON header line followed by a JSON body.
package snapshot

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/repositories/catches"
	fishingrequests "github.com/tides-game/tides-api/internal/repositories/fishing_requests"
	"github.com/tides-game/tides-api/internal/repositories/inventories"
	"github.com/tides-game/tides-api/internal/repositories/markets"
	"github.com/tides-game/tides-api/internal/repositories/players"
)

// Version is the current snapshot format
const Version = 1

// Header is the first line of a snapshot file
type Header struct {
	Version int   `json:"version"`
	SavedAt int64 `json:"saved_at"`
}

// SnapshotV1 is the full persisted state
type SnapshotV1 struct {
	Header Header `json:"header"`

	Players         []*entities.PlayerState    `json:"players"`
	Inventories     []*entities.InventoryGrid  `json:"inventories"`
	FishingRequests []*entities.FishingRequest `json:"fishing_requests"`
	Markets         []*entities.MarketRecord   `json:"markets"`

	// Catches is empty when the catch ledger lives in SQL
	Catches []*entities.CatchRecord `json:"catches,omitempty"`
}

// Stores are the in-memory repositories covered by a snapshot.
// Catches may be nil.
type Stores struct {
	Players         *players.InMemoryRepository
	Inventories     *inventories.InMemoryRepository
	FishingRequests *fishingrequests.InMemoryRepository
	Markets         *markets.InMemoryRepository
	Catches         *catches.InMemoryRepository
}

// Validate checks that the required stores are present
func (s *Stores) Validate() error {
	vb := errors.NewValidationBuilder()

	if s.Players == nil {
		vb.RequiredField("Players")
	}
	if s.Inventories == nil {
		vb.RequiredField("Inventories")
	}
	if s.FishingRequests == nil {
		vb.RequiredField("FishingRequests")
	}
	if s.Markets == nil {
		vb.RequiredField("Markets")
	}

	return vb.Build()
}

// Capture copies the current contents of the stores
func Capture(s *Stores, savedAt int64) (*SnapshotV1, error) {
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid stores")
	}

	snap := &SnapshotV1{
		Header:          Header{Version: Version, SavedAt: savedAt},
		Players:         s.Players.Export(),
		Inventories:     s.Inventories.Export(),
		FishingRequests: s.FishingRequests.Export(),
		Markets:         s.Markets.Export(),
	}
	if s.Catches != nil {
		snap.Catches = s.Catches.Export()
	}
	return snap, nil
}

// Restore loads a snapshot into the stores
func Restore(s *Stores, snap *SnapshotV1) error {
	if err := s.Validate(); err != nil {
		return errors.Wrap(err, "invalid stores")
	}
	if snap == nil {
		return errors.InvalidArgument("snapshot is required")
	}
	if snap.Header.Version != Version {
		return errors.FailedPreconditionf("unsupported snapshot version %d", snap.Header.Version)
	}

	s.Players.Import(snap.Players)
	s.Inventories.Import(snap.Inventories)
	s.FishingRequests.Import(snap.FishingRequests)
	s.Markets.Import(snap.Markets)
	if s.Catches != nil {
		s.Catches.Import(snap.Catches)
	} else if len(snap.Catches) > 0 {
		slog.Warn("snapshot catches ignored; catch ledger is not in memory", "count", len(snap.Catches))
	}

	return nil
}

// Write saves the snapshot to path, replacing any previous file
func Write(path string, snap *SnapshotV1) error {
	if snap == nil {
		return errors.InvalidArgument("snapshot is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create snapshot directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create snapshot file")
	}
	defer os.Remove(tmp.Name())

	if err := encode(tmp, snap); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close snapshot file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "failed to move snapshot into place")
	}
	return nil
}

func encode(f *os.File, snap *SnapshotV1) error {
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return errors.Wrap(err, "failed to start compression")
	}

	bw := bufio.NewWriterSize(enc, 256*1024)
	hb, err := json.Marshal(snap.Header)
	if err != nil {
		_ = enc.Close()
		return errors.Wrap(err, "failed to encode header")
	}
	hb = append(hb, '\n')
	if _, err := bw.Write(hb); err != nil {
		_ = enc.Close()
		return errors.Wrap(err, "failed to write header")
	}
	if err := json.NewEncoder(bw).Encode(snap); err != nil {
		_ = enc.Close()
		return errors.Wrap(err, "failed to encode snapshot")
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return errors.Wrap(err, "failed to flush snapshot")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "failed to finish compression")
	}
	return nil
}

// Read loads a snapshot file
func Read(path string) (*SnapshotV1, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("snapshot %s not found", path)
		}
		return nil, errors.Wrap(err, "failed to open snapshot")
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start decompression")
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 256*1024)

	line, err := br.ReadBytes('\n')
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "snapshot header is unreadable")
	}
	var header Header
	if err := json.Unmarshal(line, &header); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "snapshot header is malformed")
	}
	if header.Version != Version {
		return nil, errors.FailedPreconditionf("unsupported snapshot version %d", header.Version)
	}

	var snap SnapshotV1
	if err := json.NewDecoder(br).Decode(&snap); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "snapshot body is malformed")
	}
	return &snap, nil
}

// Summary counts the records in a snapshot
type Summary struct {
	Version         int
	SavedAt         int64
	Players         int
	Inventories     int
	FishingRequests int
	Markets         int
	Catches         int
}

// Summarize returns the record counts of a snapshot
func Summarize(snap *SnapshotV1) Summary {
	if snap == nil {
		return Summary{}
	}
	return Summary{
		Version:         snap.Header.Version,
		SavedAt:         snap.Header.SavedAt,
		Players:         len(snap.Players),
		Inventories:     len(snap.Inventories),
		FishingRequests: len(snap.FishingRequests),
		Markets:         len(snap.Markets),
		Catches:         len(snap.Catches),
	}
}
