package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	tidesv1alpha1 "github.com/tides-game/tides-api/internal/api/tides/v1alpha1"
	"github.com/tides-game/tides-api/internal/engine/navigation"
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/handlers/tides/v1alpha1"
	"github.com/tides-game/tides-api/internal/orchestrators/voyage"
	voyagemock "github.com/tides-game/tides-api/internal/orchestrators/voyage/mock"
)

type VoyageHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockVoyage *voyagemock.MockService
	handler    *v1alpha1.VoyageHandler
	ctx        context.Context
	player     *entities.PlayerState
}

func TestVoyageHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VoyageHandlerTestSuite))
}

func (s *VoyageHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockVoyage = voyagemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewVoyageHandler(&v1alpha1.VoyageHandlerConfig{
		VoyageService: s.mockVoyage,
	})
	s.Require().NoError(err)
	s.handler = handler

	s.player = &entities.PlayerState{
		ID:            "captain",
		MapID:         1,
		ShipID:        1,
		X:             2,
		Y:             -1,
		Fuel:          40,
		MovementSpeed: 1000,
		Bait:          map[uint64]uint64{1: 3},
		RegisteredAt:  1_700_000_000,
	}
}

func (s *VoyageHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *VoyageHandlerTestSuite) TestNewVoyageHandlerRequiresService() {
	_, err := v1alpha1.NewVoyageHandler(&v1alpha1.VoyageHandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *VoyageHandlerTestSuite) TestRegisterPlayer() {
	grid := &entities.InventoryGrid{
		PlayerID:       "captain",
		Width:          2,
		Height:         1,
		Items:          []entities.GridCell{{Kind: entities.ItemKindEngine, CatalogID: 1, InstanceID: 1}, {}},
		SlotKinds:      []entities.SlotKind{entities.SlotKindEngine, entities.SlotKindNormal},
		NextInstanceID: 2,
	}

	s.mockVoyage.EXPECT().
		RegisterPlayer(s.ctx, &voyage.RegisterPlayerInput{PlayerID: "captain"}).
		Return(&voyage.RegisterPlayerOutput{
			Player:  s.player,
			Grid:    grid,
			Request: &entities.FishingRequest{PlayerID: "captain"},
		}, nil)

	resp, err := s.handler.RegisterPlayer(s.ctx, &tidesv1alpha1.RegisterPlayerRequest{PlayerID: "captain"})
	s.Require().NoError(err)

	s.Equal("captain", resp.Player.ID)
	s.Equal(int32(-1), resp.Player.Y)
	s.Equal(uint64(3), resp.Player.Bait[1])
	s.Equal([]string{"engine", "normal"}, resp.Inventory.SlotKinds)
	s.Require().Len(resp.Inventory.Items, 1)
	s.Equal(&tidesv1alpha1.Item{
		Kind:       "engine",
		CatalogID:  1,
		InstanceID: 1,
		Width:      1,
		Height:     1,
	}, resp.Inventory.Items[0])
	s.Equal("captain", resp.FishingRequest.PlayerID)
}

func (s *VoyageHandlerTestSuite) TestRegisterPlayerMissingID() {
	_, err := s.handler.RegisterPlayer(s.ctx, &tidesv1alpha1.RegisterPlayerRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *VoyageHandlerTestSuite) TestGetPlayerNotFound() {
	s.mockVoyage.EXPECT().
		GetPlayer(s.ctx, &voyage.GetPlayerInput{PlayerID: "ghost"}).
		Return(nil, errors.NotFound("player ghost is not registered"))

	_, err := s.handler.GetPlayer(s.ctx, &tidesv1alpha1.GetPlayerRequest{PlayerID: "ghost"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *VoyageHandlerTestSuite) TestMovePlayer() {
	s.mockVoyage.EXPECT().
		MovePlayer(s.ctx, &voyage.MovePlayerInput{
			PlayerID:   "captain",
			Directions: []navigation.Direction{0, 3, 5},
		}).
		Return(&voyage.MovePlayerOutput{Player: s.player, FuelConsumed: 3}, nil)

	resp, err := s.handler.MovePlayer(s.ctx, &tidesv1alpha1.MovePlayerRequest{
		PlayerID:   "captain",
		Directions: []uint32{0, 3, 5},
	})
	s.Require().NoError(err)
	s.Equal(uint64(3), resp.FuelConsumed)
	s.Equal(uint64(40), resp.Player.Fuel)
}

func (s *VoyageHandlerTestSuite) TestMovePlayerRejectsWideDirection() {
	_, err := s.handler.MovePlayer(s.ctx, &tidesv1alpha1.MovePlayerRequest{
		PlayerID:   "captain",
		Directions: []uint32{1, 256},
	})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *VoyageHandlerTestSuite) TestMovePlayerOnCooldown() {
	s.mockVoyage.EXPECT().
		MovePlayer(s.ctx, gomock.Any()).
		Return(nil, errors.Reasoned(errors.CodeFailedPrecondition, entities.ReasonOnCooldown, "ship is on cooldown"))

	_, err := s.handler.MovePlayer(s.ctx, &tidesv1alpha1.MovePlayerRequest{
		PlayerID:   "captain",
		Directions: []uint32{0},
	})
	s.Equal(codes.FailedPrecondition, status.Code(err))
}

func (s *VoyageHandlerTestSuite) TestPurchaseFuel() {
	s.mockVoyage.EXPECT().
		PurchaseFuel(s.ctx, &voyage.PurchaseFuelInput{PlayerID: "captain", Units: 10}).
		Return(&voyage.PurchaseFuelOutput{Player: s.player, Cost: 500}, nil)

	resp, err := s.handler.PurchaseFuel(s.ctx, &tidesv1alpha1.PurchaseFuelRequest{PlayerID: "captain", Units: 10})
	s.Require().NoError(err)
	s.Equal(uint64(500), resp.Cost)
}

func (s *VoyageHandlerTestSuite) TestGrantAndPurchaseBait() {
	s.mockVoyage.EXPECT().
		GrantBait(s.ctx, &voyage.GrantBaitInput{PlayerID: "captain", BaitID: 1, Amount: 2}).
		Return(&voyage.GrantBaitOutput{Player: s.player}, nil)
	s.mockVoyage.EXPECT().
		PurchaseBait(s.ctx, &voyage.PurchaseBaitInput{PlayerID: "captain", BaitID: 2, Amount: 1}).
		Return(&voyage.PurchaseBaitOutput{Player: s.player, Cost: 25}, nil)

	granted, err := s.handler.GrantBait(s.ctx, &tidesv1alpha1.GrantBaitRequest{PlayerID: "captain", BaitID: 1, Amount: 2})
	s.Require().NoError(err)
	s.Equal("captain", granted.Player.ID)

	bought, err := s.handler.PurchaseBait(s.ctx, &tidesv1alpha1.PurchaseBaitRequest{PlayerID: "captain", BaitID: 2, Amount: 1})
	s.Require().NoError(err)
	s.Equal(uint64(25), bought.Cost)
}
