// Package inventory implements cargo grid operations for players
package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=inventorymock github.com/tides-game/tides-api/internal/orchestrators/inventory Service

import (
	"context"
	"log/slog"

	"github.com/tides-game/tides-api/internal/catalog"
	engine "github.com/tides-game/tides-api/internal/engine/inventory"
	"github.com/tides-game/tides-api/internal/engine/navigation"
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/pkg/keylock"
	"github.com/tides-game/tides-api/internal/repositories/catches"
	"github.com/tides-game/tides-api/internal/repositories/inventories"
	"github.com/tides-game/tides-api/internal/repositories/players"
)

// Service defines the interface for inventory operations
type Service interface {
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
	QueryCell(ctx context.Context, input *QueryCellInput) (*QueryCellOutput, error)
}

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	InventoryRepo inventories.Repository
	PlayerRepo    players.Repository
	CatchRepo     catches.Repository
	Catalog       catalog.Lookup
	Locker        *keylock.Locker
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.CatchRepo == nil {
		vb.RequiredField("CatchRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Locker == nil {
		vb.RequiredField("Locker")
	}

	return vb.Build()
}

type orchestrator struct {
	inventoryRepo inventories.Repository
	playerRepo    players.Repository
	catchRepo     catches.Repository
	catalog       catalog.Lookup
	locker        *keylock.Locker
}

// NewOrchestrator creates a new inventory orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		inventoryRepo: cfg.InventoryRepo,
		playerRepo:    cfg.PlayerRepo,
		catchRepo:     cfg.CatchRepo,
		catalog:       cfg.Catalog,
		locker:        cfg.Locker,
	}, nil
}

func (o *orchestrator) loadGrid(ctx context.Context, playerID string) (*entities.InventoryGrid, error) {
	if playerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	out, err := o.inventoryRepo.Get(ctx, inventories.GetInput{PlayerID: playerID})
	if err != nil {
		return nil, err
	}
	return out.Grid, nil
}

// GetInventory returns the grid with its placed items
func (o *orchestrator) GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	grid, err := o.loadGrid(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return &GetInventoryOutput{Grid: grid, Items: engine.Items(grid)}, nil
}

// EquipItem fits catalog gear into the grid
func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	gear, err := o.catalog.GetGear(input.Kind, input.CatalogID)
	if err != nil {
		return nil, err
	}

	unlock, err := o.locker.Lock(ctx, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock player")
	}
	defer unlock()

	grid, err := o.loadGrid(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	instanceID, err := engine.Place(grid, input.Kind, gear.ID, input.X, input.Y, input.Rotation, gear.Width, gear.Height)
	if err != nil {
		return nil, err
	}

	if _, err := o.inventoryRepo.Save(ctx, inventories.SaveInput{Grid: grid}); err != nil {
		return nil, errors.Wrap(err, "failed to save inventory")
	}

	if input.Kind == entities.ItemKindEngine {
		o.refreshSpeed(ctx, input.PlayerID, grid)
	}

	slog.Info("gear equipped",
		"player_id", input.PlayerID,
		"kind", input.Kind.String(),
		"catalog_id", gear.ID,
		"instance_id", instanceID)

	return &EquipItemOutput{InstanceID: instanceID, Grid: grid}, nil
}

// RemoveItem clears an item from the grid. A removed fish forfeits its catch record.
func (o *orchestrator) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock, err := o.locker.Lock(ctx, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock player")
	}
	defer unlock()

	grid, err := o.loadGrid(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if err := engine.Validate(grid); err != nil {
		return nil, err
	}
	removed, ok := engine.Find(grid, input.InstanceID)
	if !ok {
		return nil, errors.Reasonedf(errors.CodeNotFound, entities.ReasonItemNotFound,
			"no item with instance id %d", input.InstanceID).
			WithMeta("instance_id", input.InstanceID)
	}
	if err := engine.Remove(grid, input.InstanceID); err != nil {
		return nil, err
	}

	if _, err := o.inventoryRepo.Save(ctx, inventories.SaveInput{Grid: grid}); err != nil {
		return nil, errors.Wrap(err, "failed to save inventory")
	}

	switch removed.Kind {
	case entities.ItemKindFish:
		_, err := o.catchRepo.Delete(ctx, catches.DeleteInput{Owner: input.PlayerID, InstanceID: input.InstanceID})
		if err != nil && !errors.IsNotFound(err) {
			slog.Error("failed to discard catch record",
				"player_id", input.PlayerID,
				"instance_id", input.InstanceID,
				"error", err)
		}
	case entities.ItemKindEngine:
		o.refreshSpeed(ctx, input.PlayerID, grid)
	}

	return &RemoveItemOutput{Removed: removed, Grid: grid}, nil
}

// QueryCell returns one cell and its slot kind
func (o *orchestrator) QueryCell(ctx context.Context, input *QueryCellInput) (*QueryCellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	grid, err := o.loadGrid(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	cell, err := engine.Query(grid, input.X, input.Y)
	if err != nil {
		return nil, err
	}
	return &QueryCellOutput{Cell: cell, SlotKind: grid.SlotKinds[grid.Index(input.X, input.Y)]}, nil
}

// refreshSpeed recomputes the ship speed from fitted engines. Caller holds the player lock.
func (o *orchestrator) refreshSpeed(ctx context.Context, playerID string, grid *entities.InventoryGrid) {
	got, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: playerID})
	if err != nil {
		slog.Warn("cannot refresh ship speed", "player_id", playerID, "error", err)
		return
	}

	speed := navigation.ShipSpeed(catalog.EngineSpeeds(o.catalog, engine.Items(grid)))
	if got.Player.MovementSpeed == speed {
		return
	}
	got.Player.MovementSpeed = speed

	if _, err := o.playerRepo.Update(ctx, players.UpdateInput{Player: got.Player}); err != nil {
		slog.Error("failed to save ship speed", "player_id", playerID, "error", err)
	}
}
