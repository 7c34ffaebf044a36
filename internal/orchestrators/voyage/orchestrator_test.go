package voyage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/tides-game/tides-api/internal/catalog"
	"github.com/tides-game/tides-api/internal/engine/inventory"
	"github.com/tides-game/tides-api/internal/engine/navigation"
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/orchestrators/voyage"
	payoutmock "github.com/tides-game/tides-api/internal/payout/mock"
	"github.com/tides-game/tides-api/internal/pkg/clock"
	"github.com/tides-game/tides-api/internal/pkg/keylock"
	fishingrequests "github.com/tides-game/tides-api/internal/repositories/fishing_requests"
	"github.com/tides-game/tides-api/internal/repositories/inventories"
	"github.com/tides-game/tides-api/internal/repositories/players"
	playersmock "github.com/tides-game/tides-api/internal/repositories/players/mock"
	"github.com/tides-game/tides-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCustodian *payoutmock.MockCustodian
	playerRepo    *players.InMemoryRepository
	inventoryRepo *inventories.InMemoryRepository
	fishingRepo   *fishingrequests.InMemoryRepository
	clock         *clock.Manual
	orchestrator  voyage.Service
	ctx           context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCustodian = payoutmock.NewMockCustodian(s.ctrl)
	s.playerRepo = players.NewInMemory()
	s.inventoryRepo = inventories.NewInMemory()
	s.fishingRepo = fishingrequests.NewInMemory()
	s.clock = clock.NewManual(time.Unix(testutils.TestNow, 0))
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = voyage.NewOrchestrator(&voyage.Config{
		PlayerRepo:    s.playerRepo,
		InventoryRepo: s.inventoryRepo,
		FishingRepo:   s.fishingRepo,
		Catalog:       catalog.Default(),
		Custodian:     s.mockCustodian,
		Clock:         s.clock,
		Locker:        keylock.New(),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) register() *voyage.RegisterPlayerOutput {
	out, err := s.orchestrator.RegisterPlayer(s.ctx, &voyage.RegisterPlayerInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestRegisterPlayer() {
	out := s.register()

	s.Equal(voyage.StartingFuel, out.Player.Fuel)
	s.Equal(uint64(1), out.Player.MapID)
	s.Equal(uint64(1), out.Player.ShipID)
	s.Equal(uint64(1000), out.Player.MovementSpeed)
	s.Equal(uint64(10), out.Player.BaitCount(1))
	s.Equal(testutils.TestNow, out.Player.RegisteredAt)

	s.True(inventory.HasItemKind(out.Grid, entities.ItemKindEngine))
	s.True(inventory.HasItemKind(out.Grid, entities.ItemKindFishingRod))
	s.Equal(uint64(3), out.Grid.NextInstanceID)

	s.False(out.Request.IsPending())

	stored, err := s.inventoryRepo.Get(s.ctx, inventories.GetInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(out.Grid, stored.Grid)

	_, err = s.fishingRepo.Get(s.ctx, fishingrequests.GetInput{PlayerID: testutils.TestPlayerID})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestRegisterPlayerTwice() {
	s.register()

	_, err := s.orchestrator.RegisterPlayer(s.ctx, &voyage.RegisterPlayerInput{PlayerID: testutils.TestPlayerID})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
	s.Equal(entities.ReasonAlreadyRegistered, errors.GetReason(err))
}

func (s *OrchestratorTestSuite) TestRegisterPlayerUnknownMap() {
	_, err := s.orchestrator.RegisterPlayer(s.ctx, &voyage.RegisterPlayerInput{PlayerID: "p", MapID: 42})
	s.Require().Error(err)
	s.Equal(entities.ReasonInvalidMap, errors.GetReason(err))

	_, err = s.playerRepo.Get(s.ctx, players.GetInput{PlayerID: "p"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestMovePlayer() {
	s.register()

	out, err := s.orchestrator.MovePlayer(s.ctx, &voyage.MovePlayerInput{
		PlayerID:   testutils.TestPlayerID,
		Directions: []navigation.Direction{navigation.DirectionEast, navigation.DirectionEast},
	})
	s.Require().NoError(err)
	s.Equal(int32(2), out.Player.X)
	s.Equal(uint64(2_000_000_000), out.FuelConsumed)
	s.Equal(testutils.TestNow+2000, out.Player.CooldownUntil)

	_, err = s.orchestrator.MovePlayer(s.ctx, &voyage.MovePlayerInput{
		PlayerID:   testutils.TestPlayerID,
		Directions: []navigation.Direction{navigation.DirectionWest},
	})
	s.Equal(entities.ReasonOnCooldown, errors.GetReason(err))

	s.clock.Advance(2000 * time.Second)
	_, err = s.orchestrator.MovePlayer(s.ctx, &voyage.MovePlayerInput{
		PlayerID:   testutils.TestPlayerID,
		Directions: []navigation.Direction{navigation.DirectionWest},
	})
	s.Require().NoError(err)

	got, err := s.orchestrator.GetPlayer(s.ctx, &voyage.GetPlayerInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(int32(1), got.Player.X)
	s.Equal(voyage.StartingFuel-3*navigation.HexMoveCost, got.Player.Fuel)
}

func (s *OrchestratorTestSuite) TestMoveUnregistered() {
	_, err := s.orchestrator.MovePlayer(s.ctx, &voyage.MovePlayerInput{
		PlayerID:   "ghost",
		Directions: []navigation.Direction{navigation.DirectionEast},
	})
	s.Equal(entities.ReasonPlayerNotRegistered, errors.GetReason(err))
}

func (s *OrchestratorTestSuite) TestPurchaseFuel() {
	s.register()

	s.mockCustodian.EXPECT().
		Charge(s.ctx, testutils.TestPlayerID, 3*voyage.FuelPricePerUnit, "fuel:3").
		Return(nil)

	out, err := s.orchestrator.PurchaseFuel(s.ctx, &voyage.PurchaseFuelInput{PlayerID: testutils.TestPlayerID, Units: 3})
	s.Require().NoError(err)
	s.Equal(3*voyage.FuelPricePerUnit, out.Cost)
	s.Equal(voyage.StartingFuel+3*navigation.FuelUnit, out.Player.Fuel)
}

func (s *OrchestratorTestSuite) TestPurchaseFuelChargeRejected() {
	s.register()

	rejection := errors.Reasoned(errors.CodeFailedPrecondition, entities.ReasonInsufficientFunds, "broke")
	s.mockCustodian.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(rejection)

	_, err := s.orchestrator.PurchaseFuel(s.ctx, &voyage.PurchaseFuelInput{PlayerID: testutils.TestPlayerID, Units: 1})
	s.Equal(entities.ReasonInsufficientFunds, errors.GetReason(err))

	got, err := s.orchestrator.GetPlayer(s.ctx, &voyage.GetPlayerInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(voyage.StartingFuel, got.Player.Fuel)
}

func (s *OrchestratorTestSuite) TestPurchaseFuelOverflowChargesNothing() {
	s.register()

	_, err := s.orchestrator.PurchaseFuel(s.ctx, &voyage.PurchaseFuelInput{PlayerID: testutils.TestPlayerID, Units: ^uint64(0)})
	s.Equal(entities.ReasonArithmeticOverflow, errors.GetReason(err))
}

func (s *OrchestratorTestSuite) TestBait() {
	s.register()

	out, err := s.orchestrator.GrantBait(s.ctx, &voyage.GrantBaitInput{PlayerID: testutils.TestPlayerID, BaitID: 2, Amount: 4})
	s.Require().NoError(err)
	s.Equal(uint64(4), out.Player.BaitCount(2))

	s.mockCustodian.EXPECT().Charge(s.ctx, testutils.TestPlayerID, uint64(5*1_000_000), "bait:1:5").Return(nil)
	bought, err := s.orchestrator.PurchaseBait(s.ctx, &voyage.PurchaseBaitInput{PlayerID: testutils.TestPlayerID, BaitID: 1, Amount: 5})
	s.Require().NoError(err)
	s.Equal(uint64(15), bought.Player.BaitCount(1))
	s.Equal(uint64(5_000_000), bought.Cost)

	_, err = s.orchestrator.GrantBait(s.ctx, &voyage.GrantBaitInput{PlayerID: testutils.TestPlayerID, BaitID: 99, Amount: 1})
	s.Equal(entities.ReasonInvalidBait, errors.GetReason(err))

	_, err = s.orchestrator.GrantBait(s.ctx, &voyage.GrantBaitInput{PlayerID: testutils.TestPlayerID, BaitID: 1})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestPurchaseFuelRefundsWhenSaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	playerRepo := playersmock.NewMockRepository(ctrl)
	custodian := payoutmock.NewMockCustodian(ctrl)

	svc, err := voyage.NewOrchestrator(&voyage.Config{
		PlayerRepo:    playerRepo,
		InventoryRepo: inventories.NewInMemory(),
		FishingRepo:   fishingrequests.NewInMemory(),
		Catalog:       catalog.Default(),
		Custodian:     custodian,
		Clock:         clock.NewManual(time.Unix(testutils.TestNow, 0)),
		Locker:        keylock.New(),
	})
	if err != nil {
		t.Fatal(err)
	}

	playerRepo.EXPECT().
		Get(ctx, players.GetInput{PlayerID: "p"}).
		Return(&players.GetOutput{Player: testutils.CreateTestPlayer("p")}, nil)
	custodian.EXPECT().Charge(ctx, "p", voyage.FuelPricePerUnit, "fuel:1").Return(nil)
	playerRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil, errors.Internal("disk full"))
	custodian.EXPECT().Payout(ctx, "p", voyage.FuelPricePerUnit, "refund:fuel:1").Return(nil)

	_, err = svc.PurchaseFuel(ctx, &voyage.PurchaseFuelInput{PlayerID: "p", Units: 1})
	if !errors.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestNewOrchestratorValidates(t *testing.T) {
	_, err := voyage.NewOrchestrator(&voyage.Config{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
