package fishing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/tides-game/tides-api/internal/auth"
	"github.com/tides-game/tides-api/internal/catalog"
	engine "github.com/tides-game/tides-api/internal/engine/inventory"
	rpgtoolkitmock "github.com/tides-game/tides-api/internal/engine/rpgtoolkit/mock"
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/orchestrators/fishing"
	"github.com/tides-game/tides-api/internal/pkg/clock"
	"github.com/tides-game/tides-api/internal/pkg/keylock"
	"github.com/tides-game/tides-api/internal/repositories/catches"
	fishingrequests "github.com/tides-game/tides-api/internal/repositories/fishing_requests"
	"github.com/tides-game/tides-api/internal/repositories/inventories"
	"github.com/tides-game/tides-api/internal/repositories/players"
	"github.com/tides-game/tides-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockPublisher *rpgtoolkitmock.MockPublisher
	signer        *auth.Signer
	playerRepo    *players.InMemoryRepository
	inventoryRepo *inventories.InMemoryRepository
	fishingRepo   *fishingrequests.InMemoryRepository
	catchRepo     *catches.InMemoryRepository
	clock         *clock.Manual
	orchestrator  fishing.Service
	ctx           context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPublisher = rpgtoolkitmock.NewMockPublisher(s.ctrl)
	s.playerRepo = players.NewInMemory()
	s.inventoryRepo = inventories.NewInMemory()
	s.fishingRepo = fishingrequests.NewInMemory()
	s.catchRepo = catches.NewInMemory()
	s.clock = clock.NewManual(time.Unix(testutils.TestNow, 0))
	s.ctx = context.Background()

	var err error
	s.signer, err = auth.GenerateSigner()
	s.Require().NoError(err)
	verifier, err := auth.NewEd25519Verifier(s.signer.PublicKey())
	s.Require().NoError(err)

	s.orchestrator, err = fishing.NewOrchestrator(&fishing.Config{
		PlayerRepo:    s.playerRepo,
		InventoryRepo: s.inventoryRepo,
		FishingRepo:   s.fishingRepo,
		CatchRepo:     s.catchRepo,
		Catalog:       catalog.Default(),
		Verifier:      verifier,
		Publisher:     s.mockPublisher,
		Clock:         s.clock,
		Locker:        keylock.New(),
	})
	s.Require().NoError(err)

	s.seed(true)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// seed stores a registered player on the default skiff, optionally with its rod
func (s *OrchestratorTestSuite) seed(withRod bool) {
	ship, err := catalog.Default().GetShip(1)
	s.Require().NoError(err)
	w, h, slots, err := ship.Grid()
	s.Require().NoError(err)
	grid, err := engine.NewGrid(testutils.TestPlayerID, w, h, slots)
	s.Require().NoError(err)
	_, err = engine.Place(grid, entities.ItemKindEngine, 1, 0, 0, 0, 1, 1)
	s.Require().NoError(err)
	if withRod {
		_, err = engine.Place(grid, entities.ItemKindFishingRod, 1, 4, 0, 0, 1, 1)
		s.Require().NoError(err)
	}

	_, err = s.inventoryRepo.Save(s.ctx, inventories.SaveInput{Grid: grid})
	s.Require().NoError(err)
	_, err = s.fishingRepo.Save(s.ctx, fishingrequests.SaveInput{
		Request: &entities.FishingRequest{PlayerID: testutils.TestPlayerID},
	})
	s.Require().NoError(err)
	if _, err := s.playerRepo.Get(s.ctx, players.GetInput{PlayerID: testutils.TestPlayerID}); err != nil {
		_, err = s.playerRepo.Create(s.ctx, players.CreateInput{Player: testutils.CreateTestPlayer(testutils.TestPlayerID)})
		s.Require().NoError(err)
	}
}

func (s *OrchestratorTestSuite) initiate() uint64 {
	out, err := s.orchestrator.InitiateFishing(s.ctx, &fishing.InitiateFishingInput{
		PlayerID: testutils.TestPlayerID,
		BaitID:   1,
	})
	s.Require().NoError(err)
	return out.Nonce
}

func (s *OrchestratorTestSuite) signed(result entities.FishingResult) *fishing.FulfillFishingInput {
	return &fishing.FulfillFishingInput{
		PlayerID:   testutils.TestPlayerID,
		Result:     result,
		Signature:  s.signer.Sign(auth.ClaimFor(testutils.TestPlayerID, result)),
		ShouldKeep: true,
		X:          1,
		Y:          1,
	}
}

func (s *OrchestratorTestSuite) request() *entities.FishingRequest {
	got, err := s.fishingRepo.Get(s.ctx, fishingrequests.GetInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	return got.Request
}

func (s *OrchestratorTestSuite) TestInitiateFishing() {
	out, err := s.orchestrator.InitiateFishing(s.ctx, &fishing.InitiateFishingInput{
		PlayerID: testutils.TestPlayerID,
		BaitID:   1,
	})
	s.Require().NoError(err)

	s.Equal(uint64(1), out.Nonce)
	s.Equal(uint64(9), out.BaitRemaining)
	s.Zero(out.ReplacedNonce)

	req := s.request()
	s.True(req.IsPending())
	s.Equal(uint64(1), req.BaitKindInUse)
	s.Equal(testutils.TestNow, req.IssuedAt)

	player, err := s.playerRepo.Get(s.ctx, players.GetInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(uint64(9), player.Player.BaitCount(1))
}

func (s *OrchestratorTestSuite) TestInitiateWhilePending() {
	s.initiate()

	_, err := s.orchestrator.InitiateFishing(s.ctx, &fishing.InitiateFishingInput{
		PlayerID: testutils.TestPlayerID,
		BaitID:   1,
	})
	s.Require().Error(err)
	s.Equal(entities.ReasonPendingRequestExists, errors.GetReason(err))

	s.clock.Advance(10 * time.Minute)
	out, err := s.orchestrator.InitiateFishing(s.ctx, &fishing.InitiateFishingInput{
		PlayerID: testutils.TestPlayerID,
		BaitID:   1,
	})
	s.Require().NoError(err)
	s.Equal(uint64(2), out.Nonce)
	s.Equal(uint64(1), out.ReplacedNonce)
	s.Equal(uint64(8), out.BaitRemaining)
}

func (s *OrchestratorTestSuite) TestInitiatePreconditions() {
	testCases := []struct {
		name   string
		baitID uint64
		setup  func()
		reason string
	}{
		{
			name:   "unknown bait",
			baitID: 99,
			reason: entities.ReasonInvalidBait,
		},
		{
			name:   "bait not held",
			baitID: 2,
			reason: entities.ReasonInsufficientBait,
		},
		{
			name:   "no rod",
			baitID: 1,
			setup:  func() { s.seed(false) },
			reason: entities.ReasonNoFishingRod,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.setup != nil {
				tc.setup()
			}
			_, err := s.orchestrator.InitiateFishing(s.ctx, &fishing.InitiateFishingInput{
				PlayerID: testutils.TestPlayerID,
				BaitID:   tc.baitID,
			})
			s.Require().Error(err)
			s.Equal(tc.reason, errors.GetReason(err))
			s.False(s.request().IsPending())
		})
	}
}

func (s *OrchestratorTestSuite) TestFulfillKeepsCatch() {
	nonce := s.initiate()
	s.clock.Advance(20 * time.Second)

	s.mockPublisher.EXPECT().
		FishCaught(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, player *entities.PlayerState, rec *entities.CatchRecord) error {
			s.Equal(testutils.TestPlayerID, player.ID)
			s.Equal(uint64(3), rec.SpeciesID)
			return nil
		})

	out, err := s.orchestrator.FulfillFishing(s.ctx, s.signed(entities.FishingResult{
		Nonce:     nonce,
		SpeciesID: 3,
		Weight:    500,
		Timestamp: testutils.TestNow + 10,
	}))
	s.Require().NoError(err)

	s.True(out.Kept)
	s.Equal(uint64(3), out.InstanceID)
	s.Equal(testutils.TestNow+20, out.Record.CaughtAt)
	s.Equal(uint16(500), out.Record.Weight)

	cell := out.Grid.Items[out.Grid.Index(1, 1)]
	s.Equal(entities.ItemKindFish, cell.Kind)
	s.Equal(uint64(3), cell.CatalogID)

	stored, err := s.catchRepo.Get(s.ctx, catches.GetInput{Owner: testutils.TestPlayerID, InstanceID: out.InstanceID})
	s.Require().NoError(err)
	s.Equal(out.Record, stored.Record)
	s.False(s.request().IsPending())
}

func (s *OrchestratorTestSuite) TestFulfillDiscards() {
	testCases := []struct {
		name    string
		species uint64
		keep    bool
	}{
		{name: "released by player", species: 2, keep: false},
		{name: "nothing caught", species: 0, keep: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			nonce := s.initiate()
			input := s.signed(entities.FishingResult{Nonce: nonce, SpeciesID: tc.species, Weight: 10, Timestamp: testutils.TestNow})
			input.ShouldKeep = tc.keep

			out, err := s.orchestrator.FulfillFishing(s.ctx, input)
			s.Require().NoError(err)
			s.False(out.Kept)
			s.Zero(out.InstanceID)
			s.False(s.request().IsPending())

			listed, err := s.catchRepo.ListByOwner(s.ctx, catches.ListByOwnerInput{Owner: testutils.TestPlayerID})
			s.Require().NoError(err)
			s.Empty(listed.Records)
		})
	}
}

func (s *OrchestratorTestSuite) TestFulfillRejectsForgedResult() {
	nonce := s.initiate()

	input := s.signed(entities.FishingResult{Nonce: nonce, SpeciesID: 4, Weight: 100, Timestamp: testutils.TestNow})
	input.Result.Weight = 3000

	_, err := s.orchestrator.FulfillFishing(s.ctx, input)
	s.Require().Error(err)
	s.True(errors.IsUnauthenticated(err))
	s.Equal(entities.ReasonInvalidSignature, errors.GetReason(err))
	s.True(s.request().IsPending())
}

func (s *OrchestratorTestSuite) TestFulfillStateMachineFailures() {
	nonce := s.initiate()
	s.clock.Advance(time.Hour)
	now := testutils.TestNow + int64(time.Hour/time.Second)

	testCases := []struct {
		name   string
		result entities.FishingResult
		reason string
	}{
		{
			name:   "nonce mismatch",
			result: entities.FishingResult{Nonce: nonce + 1, SpeciesID: 1, Weight: 1, Timestamp: now},
			reason: entities.ReasonNonceMismatch,
		},
		{
			name:   "expired result",
			result: entities.FishingResult{Nonce: nonce, SpeciesID: 1, Weight: 1, Timestamp: now - 301},
			reason: entities.ReasonResultExpired,
		},
		{
			name:   "future result",
			result: entities.FishingResult{Nonce: nonce, SpeciesID: 1, Weight: 1, Timestamp: now + 1},
			reason: entities.ReasonResultFromFuture,
		},
		{
			name:   "unknown species",
			result: entities.FishingResult{Nonce: nonce, SpeciesID: 77, Weight: 1, Timestamp: now},
			reason: entities.ReasonInvalidSpecies,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.FulfillFishing(s.ctx, s.signed(tc.result))
			s.Require().Error(err)
			s.Equal(tc.reason, errors.GetReason(err))
			s.True(s.request().IsPending())
		})
	}
}

func (s *OrchestratorTestSuite) TestFulfillWithoutPendingRequest() {
	_, err := s.orchestrator.FulfillFishing(s.ctx, s.signed(entities.FishingResult{
		Nonce: 1, SpeciesID: 1, Weight: 1, Timestamp: testutils.TestNow,
	}))
	s.Require().Error(err)
	s.Equal(entities.ReasonNoPendingRequest, errors.GetReason(err))
}

func (s *OrchestratorTestSuite) TestFulfillPlacementFailureLosesCatch() {
	nonce := s.initiate()

	input := s.signed(entities.FishingResult{Nonce: nonce, SpeciesID: 1, Weight: 50, Timestamp: testutils.TestNow})
	input.X, input.Y = 0, 0

	_, err := s.orchestrator.FulfillFishing(s.ctx, input)
	s.Require().Error(err)
	s.Equal(entities.ReasonPositionOccupied, errors.GetReason(err))

	// the nonce is spent either way
	s.False(s.request().IsPending())
	_, err = s.orchestrator.FulfillFishing(s.ctx, s.signed(input.Result))
	s.Equal(entities.ReasonNoPendingRequest, errors.GetReason(err))
}

func (s *OrchestratorTestSuite) TestGetFishingStateAndAbandon() {
	nonce := s.initiate()

	state, err := s.orchestrator.GetFishingState(s.ctx, &fishing.GetFishingStateInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.True(state.Request.IsPending())
	s.False(state.Expired)

	_, err = s.orchestrator.AbandonFishing(s.ctx, &fishing.AbandonFishingInput{PlayerID: testutils.TestPlayerID})
	s.Require().Error(err)
	s.Equal(entities.ReasonPendingRequestExists, errors.GetReason(err))

	s.clock.Advance(10 * time.Minute)

	state, err = s.orchestrator.GetFishingState(s.ctx, &fishing.GetFishingStateInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.True(state.Expired)

	out, err := s.orchestrator.AbandonFishing(s.ctx, &fishing.AbandonFishingInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(nonce, out.AbandonedNonce)
	s.False(out.Request.IsPending())
	s.Equal(nonce, out.Request.FishingNonce)

	_, err = s.orchestrator.AbandonFishing(s.ctx, &fishing.AbandonFishingInput{PlayerID: testutils.TestPlayerID})
	s.Equal(entities.ReasonNoPendingRequest, errors.GetReason(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
