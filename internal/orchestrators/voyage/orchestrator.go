// Package voyage implements player registration, sailing and supply purchases
package voyage

//go:generate mockgen -destination=mock/mock_service.go -package=voyagemock github.com/tides-game/tides-api/internal/orchestrators/voyage Service

import (
	"context"
	"fmt"
	"log/slog"
	"math/bits"

	"github.com/tides-game/tides-api/internal/catalog"
	"github.com/tides-game/tides-api/internal/engine/inventory"
	"github.com/tides-game/tides-api/internal/engine/navigation"
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/payout"
	"github.com/tides-game/tides-api/internal/pkg/clock"
	"github.com/tides-game/tides-api/internal/pkg/keylock"
	fishingrequests "github.com/tides-game/tides-api/internal/repositories/fishing_requests"
	"github.com/tides-game/tides-api/internal/repositories/inventories"
	"github.com/tides-game/tides-api/internal/repositories/players"
)

const (
	// StartingFuel is the tank of a newly registered ship, in base units
	StartingFuel = uint64(100_000_000_000)

	// FuelPricePerUnit is the currency charged per whole fuel unit
	FuelPricePerUnit = uint64(10_000_000_000)
)

// Service defines the interface for voyage operations
type Service interface {
	RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error)
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)
	MovePlayer(ctx context.Context, input *MovePlayerInput) (*MovePlayerOutput, error)

	// Supplies
	PurchaseFuel(ctx context.Context, input *PurchaseFuelInput) (*PurchaseFuelOutput, error)
	GrantBait(ctx context.Context, input *GrantBaitInput) (*GrantBaitOutput, error)
	PurchaseBait(ctx context.Context, input *PurchaseBaitInput) (*PurchaseBaitOutput, error)
}

// Config holds the dependencies for the voyage orchestrator
type Config struct {
	PlayerRepo    players.Repository
	InventoryRepo inventories.Repository
	FishingRepo   fishingrequests.Repository
	Catalog       catalog.Lookup
	Custodian     payout.Custodian
	Clock         clock.Clock
	Locker        *keylock.Locker
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.FishingRepo == nil {
		vb.RequiredField("FishingRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Custodian == nil {
		vb.RequiredField("Custodian")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Locker == nil {
		vb.RequiredField("Locker")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo    players.Repository
	inventoryRepo inventories.Repository
	fishingRepo   fishingrequests.Repository
	catalog       catalog.Lookup
	custodian     payout.Custodian
	clock         clock.Clock
	locker        *keylock.Locker
}

// NewOrchestrator creates a new voyage orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		playerRepo:    cfg.PlayerRepo,
		inventoryRepo: cfg.InventoryRepo,
		fishingRepo:   cfg.FishingRepo,
		catalog:       cfg.Catalog,
		custodian:     cfg.Custodian,
		clock:         cfg.Clock,
		locker:        cfg.Locker,
	}, nil
}

// RegisterPlayer creates the ship, cargo grid and fishing request of a new player
func (o *orchestrator) RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock, err := o.locker.Lock(ctx, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock player")
	}
	defer unlock()

	_, err = o.playerRepo.Get(ctx, players.GetInput{PlayerID: input.PlayerID})
	if err == nil {
		return nil, errors.Reasonedf(errors.CodeAlreadyExists, entities.ReasonAlreadyRegistered,
			"player %s is already registered", input.PlayerID)
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	mapID := input.MapID
	if mapID == 0 {
		mapID = o.catalog.DefaultMap()
	}
	seaMap, err := o.catalog.GetMap(mapID)
	if err != nil {
		return nil, err
	}
	ship, err := o.catalog.GetShip(o.catalog.DefaultShip())
	if err != nil {
		return nil, err
	}

	grid, err := o.fitShip(input.PlayerID, ship)
	if err != nil {
		return nil, err
	}

	now := clock.Unix(o.clock)
	player := &entities.PlayerState{
		ID:            input.PlayerID,
		MapID:         seaMap.ID,
		ShipID:        ship.ID,
		Fuel:          StartingFuel,
		MovementSpeed: navigation.ShipSpeed(catalog.EngineSpeeds(o.catalog, inventory.Items(grid))),
		Bait:          make(map[uint64]uint64),
		RegisteredAt:  now,
	}
	if len(seaMap.Harbors) > 0 {
		player.X, player.Y = seaMap.Harbors[0].X, seaMap.Harbors[0].Y
	}
	for _, sb := range ship.StarterBait {
		player.Bait[sb.BaitID] += sb.Amount
	}

	request := &entities.FishingRequest{PlayerID: input.PlayerID}

	if _, err := o.inventoryRepo.Save(ctx, inventories.SaveInput{Grid: grid}); err != nil {
		return nil, errors.Wrap(err, "failed to save inventory")
	}
	if _, err := o.fishingRepo.Save(ctx, fishingrequests.SaveInput{Request: request}); err != nil {
		return nil, errors.Wrap(err, "failed to save fishing request")
	}
	// the player record is written last so a partial registration can be retried
	if _, err := o.playerRepo.Create(ctx, players.CreateInput{Player: player}); err != nil {
		return nil, err
	}

	slog.Info("player registered",
		"player_id", player.ID,
		"map_id", player.MapID,
		"ship_id", player.ShipID)

	return &RegisterPlayerOutput{Player: player, Grid: grid, Request: request}, nil
}

// fitShip builds the cargo grid of a ship with its starter gear in place
func (o *orchestrator) fitShip(playerID string, ship *catalog.Ship) (*entities.InventoryGrid, error) {
	width, height, slots, err := ship.Grid()
	if err != nil {
		return nil, err
	}
	grid, err := inventory.NewGrid(playerID, width, height, slots)
	if err != nil {
		return nil, err
	}

	for _, item := range ship.StarterItems {
		kind, err := catalog.GearKind(item.Kind)
		if err != nil {
			return nil, err
		}
		gear, err := o.catalog.GetGear(kind, item.CatalogID)
		if err != nil {
			return nil, err
		}
		if _, err := inventory.Place(grid, kind, gear.ID, item.X, item.Y, item.Rotation, gear.Width, gear.Height); err != nil {
			return nil, errors.Wrapf(err, "ship %d cannot fit starter %s %d", ship.ID, item.Kind, item.CatalogID)
		}
	}
	return grid, nil
}

// GetPlayer returns a registered player
func (o *orchestrator) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	return &GetPlayerOutput{Player: out.Player}, nil
}

// MovePlayer sails the ship along the directions
func (o *orchestrator) MovePlayer(ctx context.Context, input *MovePlayerInput) (*MovePlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock, err := o.locker.Lock(ctx, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock player")
	}
	defer unlock()

	got, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	player := got.Player

	bounds := navigation.DefaultBounds()
	if seaMap, err := o.catalog.GetMap(player.MapID); err == nil {
		bounds = navigation.Bounds{MinX: seaMap.MinX, MaxX: seaMap.MaxX, MinY: seaMap.MinY, MaxY: seaMap.MaxY}
	}

	moved, err := navigation.Move(player, navigation.MoveInput{
		Directions: input.Directions,
		Bounds:     bounds,
		Now:        clock.Unix(o.clock),
	})
	if err != nil {
		return nil, err
	}

	if _, err := o.playerRepo.Update(ctx, players.UpdateInput{Player: player}); err != nil {
		return nil, errors.Wrap(err, "failed to save player")
	}

	slog.Debug("player moved",
		"player_id", player.ID,
		"x", moved.X,
		"y", moved.Y,
		"fuel_consumed", moved.FuelConsumed,
		"cooldown_until", moved.CooldownUntil)

	return &MovePlayerOutput{Player: player, FuelConsumed: moved.FuelConsumed}, nil
}

// PurchaseFuel charges the custodian and fills the tank
func (o *orchestrator) PurchaseFuel(ctx context.Context, input *PurchaseFuelInput) (*PurchaseFuelOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	cost, err := checkedCost(input.Units, FuelPricePerUnit)
	if err != nil {
		return nil, err
	}

	unlock, err := o.locker.Lock(ctx, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock player")
	}
	defer unlock()

	got, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	player := got.Player

	// fill before charging so an overflowing tank is rejected without moving money
	if err := navigation.AddFuel(player, input.Units); err != nil {
		return nil, err
	}

	memo := fmt.Sprintf("fuel:%d", input.Units)
	if err := o.custodian.Charge(ctx, player.ID, cost, memo); err != nil {
		return nil, err
	}

	if _, err := o.playerRepo.Update(ctx, players.UpdateInput{Player: player}); err != nil {
		o.refund(ctx, player.ID, cost, memo)
		return nil, errors.Wrap(err, "failed to save player")
	}

	slog.Info("fuel purchased", "player_id", player.ID, "units", input.Units, "cost", cost)

	return &PurchaseFuelOutput{Player: player, Cost: cost}, nil
}

// GrantBait credits bait without payment
func (o *orchestrator) GrantBait(ctx context.Context, input *GrantBaitInput) (*GrantBaitOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock, err := o.locker.Lock(ctx, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock player")
	}
	defer unlock()

	player, err := o.creditBait(ctx, input.PlayerID, input.BaitID, input.Amount)
	if err != nil {
		return nil, err
	}

	if _, err := o.playerRepo.Update(ctx, players.UpdateInput{Player: player}); err != nil {
		return nil, errors.Wrap(err, "failed to save player")
	}

	return &GrantBaitOutput{Player: player}, nil
}

// PurchaseBait charges the catalog price and credits bait
func (o *orchestrator) PurchaseBait(ctx context.Context, input *PurchaseBaitInput) (*PurchaseBaitOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock, err := o.locker.Lock(ctx, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock player")
	}
	defer unlock()

	player, err := o.creditBait(ctx, input.PlayerID, input.BaitID, input.Amount)
	if err != nil {
		return nil, err
	}

	bait, err := o.catalog.GetBait(input.BaitID)
	if err != nil {
		return nil, err
	}
	cost, err := checkedCost(input.Amount, bait.Price)
	if err != nil {
		return nil, err
	}

	memo := fmt.Sprintf("bait:%d:%d", input.BaitID, input.Amount)
	if err := o.custodian.Charge(ctx, player.ID, cost, memo); err != nil {
		return nil, err
	}

	if _, err := o.playerRepo.Update(ctx, players.UpdateInput{Player: player}); err != nil {
		o.refund(ctx, player.ID, cost, memo)
		return nil, errors.Wrap(err, "failed to save player")
	}

	slog.Info("bait purchased",
		"player_id", player.ID,
		"bait_id", input.BaitID,
		"amount", input.Amount,
		"cost", cost)

	return &PurchaseBaitOutput{Player: player, Cost: cost}, nil
}

// creditBait loads the player and adds bait in memory. Caller holds the player lock.
func (o *orchestrator) creditBait(ctx context.Context, playerID string, baitID, amount uint64) (*entities.PlayerState, error) {
	if amount == 0 {
		return nil, errors.InvalidArgument("bait amount must be positive")
	}

	bait, err := o.catalog.GetBait(baitID)
	if err != nil {
		return nil, err
	}
	if !bait.Active {
		return nil, errors.Reasonedf(errors.CodeFailedPrecondition, entities.ReasonInvalidBait,
			"bait %d is not on sale", baitID)
	}

	got, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: playerID})
	if err != nil {
		return nil, err
	}
	player := got.Player

	total, carry := bits.Add64(player.BaitCount(baitID), amount, 0)
	if carry != 0 {
		return nil, errors.Reasoned(errors.CodeOutOfRange, entities.ReasonArithmeticOverflow,
			"bait stock overflows")
	}
	if player.Bait == nil {
		player.Bait = make(map[uint64]uint64)
	}
	player.Bait[baitID] = total

	return player, nil
}

func (o *orchestrator) refund(ctx context.Context, playerID string, amount uint64, memo string) {
	if err := o.custodian.Payout(ctx, playerID, amount, "refund:"+memo); err != nil {
		slog.Error("failed to refund charge",
			"player_id", playerID,
			"amount", amount,
			"memo", memo,
			"error", err)
	}
}

func checkedCost(units, price uint64) (uint64, error) {
	if units == 0 {
		return 0, errors.InvalidArgument("amount must be positive")
	}
	hi, cost := bits.Mul64(units, price)
	if hi != 0 {
		return 0, errors.Reasoned(errors.CodeOutOfRange, entities.ReasonArithmeticOverflow,
			"purchase cost overflows")
	}
	return cost, nil
}
