package v1alpha1

import (
	"context"

	tidesv1alpha1 "github.com/tides-game/tides-api/internal/api/tides/v1alpha1"
	"github.com/tides-game/tides-api/internal/catalog"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/orchestrators/inventory"
)

// InventoryHandlerConfig holds dependencies for the inventory handler
type InventoryHandlerConfig struct {
	InventoryService inventory.Service
}

// Validate ensures all required dependencies are present
func (c *InventoryHandlerConfig) Validate() error {
	if c.InventoryService == nil {
		return errors.InvalidArgument("inventory service is required")
	}
	return nil
}

// InventoryHandler implements the InventoryService gRPC service
type InventoryHandler struct {
	tidesv1alpha1.UnimplementedInventoryServiceServer
	inventoryService inventory.Service
}

// NewInventoryHandler creates a new inventory handler with the given configuration
func NewInventoryHandler(cfg *InventoryHandlerConfig) (*InventoryHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &InventoryHandler{
		inventoryService: cfg.InventoryService,
	}, nil
}

// GetInventory returns the cargo grid of a player
func (h *InventoryHandler) GetInventory(
	ctx context.Context,
	req *tidesv1alpha1.GetInventoryRequest,
) (*tidesv1alpha1.GetInventoryResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.inventoryService.GetInventory(ctx, &inventory.GetInventoryInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &tidesv1alpha1.GetInventoryResponse{Inventory: convertInventory(out.Grid)}, nil
}

// EquipItem fits an engine or rod
func (h *InventoryHandler) EquipItem(
	ctx context.Context,
	req *tidesv1alpha1.EquipItemRequest,
) (*tidesv1alpha1.EquipItemResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	kind, err := catalog.GearKind(req.Kind)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	x, err := toUint8("x", req.X)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	y, err := toUint8("y", req.Y)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	rotation, err := toUint8("rotation", req.Rotation)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.inventoryService.EquipItem(ctx, &inventory.EquipItemInput{
		PlayerID:  req.PlayerID,
		Kind:      kind,
		CatalogID: req.CatalogID,
		X:         x,
		Y:         y,
		Rotation:  rotation,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &tidesv1alpha1.EquipItemResponse{
		InstanceID: out.InstanceID,
		Inventory:  convertInventory(out.Grid),
	}, nil
}

// RemoveItem clears an item from the grid
func (h *InventoryHandler) RemoveItem(
	ctx context.Context,
	req *tidesv1alpha1.RemoveItemRequest,
) (*tidesv1alpha1.RemoveItemResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.inventoryService.RemoveItem(ctx, &inventory.RemoveItemInput{
		PlayerID:   req.PlayerID,
		InstanceID: req.InstanceID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &tidesv1alpha1.RemoveItemResponse{
		Removed:   convertItem(out.Removed),
		Inventory: convertInventory(out.Grid),
	}, nil
}

// QueryCell returns a single grid cell
func (h *InventoryHandler) QueryCell(
	ctx context.Context,
	req *tidesv1alpha1.QueryCellRequest,
) (*tidesv1alpha1.QueryCellResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	x, err := toUint8("x", req.X)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	y, err := toUint8("y", req.Y)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.inventoryService.QueryCell(ctx, &inventory.QueryCellInput{PlayerID: req.PlayerID, X: x, Y: y})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &tidesv1alpha1.QueryCellResponse{
		Cell: &tidesv1alpha1.Cell{
			Kind:       out.Cell.Kind.String(),
			CatalogID:  out.Cell.CatalogID,
			InstanceID: out.Cell.InstanceID,
			Rotation:   uint32(out.Cell.Rotation),
			SlotKind:   out.SlotKind.String(),
		},
	}, nil
}
