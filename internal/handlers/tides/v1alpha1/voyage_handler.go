// Package v1alpha1 implements the tides gRPC services on top of the orchestrators
package v1alpha1

import (
	"context"

	tidesv1alpha1 "github.com/tides-game/tides-api/internal/api/tides/v1alpha1"
	"github.com/tides-game/tides-api/internal/engine/navigation"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/orchestrators/voyage"
)

// VoyageHandlerConfig holds dependencies for the voyage handler
type VoyageHandlerConfig struct {
	VoyageService voyage.Service
}

// Validate ensures all required dependencies are present
func (c *VoyageHandlerConfig) Validate() error {
	if c.VoyageService == nil {
		return errors.InvalidArgument("voyage service is required")
	}
	return nil
}

// VoyageHandler implements the VoyageService gRPC service
type VoyageHandler struct {
	tidesv1alpha1.UnimplementedVoyageServiceServer
	voyageService voyage.Service
}

// NewVoyageHandler creates a new voyage handler with the given configuration
func NewVoyageHandler(cfg *VoyageHandlerConfig) (*VoyageHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &VoyageHandler{
		voyageService: cfg.VoyageService,
	}, nil
}

// RegisterPlayer creates a player with a fitted ship
func (h *VoyageHandler) RegisterPlayer(
	ctx context.Context,
	req *tidesv1alpha1.RegisterPlayerRequest,
) (*tidesv1alpha1.RegisterPlayerResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.voyageService.RegisterPlayer(ctx, &voyage.RegisterPlayerInput{
		PlayerID: req.PlayerID,
		MapID:    req.MapID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &tidesv1alpha1.RegisterPlayerResponse{
		Player:         convertPlayer(out.Player),
		Inventory:      convertInventory(out.Grid),
		FishingRequest: convertFishingRequest(out.Request),
	}, nil
}

// GetPlayer returns a registered player
func (h *VoyageHandler) GetPlayer(
	ctx context.Context,
	req *tidesv1alpha1.GetPlayerRequest,
) (*tidesv1alpha1.GetPlayerResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.voyageService.GetPlayer(ctx, &voyage.GetPlayerInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &tidesv1alpha1.GetPlayerResponse{Player: convertPlayer(out.Player)}, nil
}

// MovePlayer sails a player along a path of hex directions
func (h *VoyageHandler) MovePlayer(
	ctx context.Context,
	req *tidesv1alpha1.MovePlayerRequest,
) (*tidesv1alpha1.MovePlayerResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	directions := make([]navigation.Direction, 0, len(req.Directions))
	for _, d := range req.Directions {
		narrow, err := toUint8("directions", d)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		directions = append(directions, navigation.Direction(narrow))
	}

	out, err := h.voyageService.MovePlayer(ctx, &voyage.MovePlayerInput{
		PlayerID:   req.PlayerID,
		Directions: directions,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &tidesv1alpha1.MovePlayerResponse{
		Player:       convertPlayer(out.Player),
		FuelConsumed: out.FuelConsumed,
	}, nil
}

// PurchaseFuel buys fuel units
func (h *VoyageHandler) PurchaseFuel(
	ctx context.Context,
	req *tidesv1alpha1.PurchaseFuelRequest,
) (*tidesv1alpha1.PurchaseFuelResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.voyageService.PurchaseFuel(ctx, &voyage.PurchaseFuelInput{
		PlayerID: req.PlayerID,
		Units:    req.Units,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &tidesv1alpha1.PurchaseFuelResponse{Player: convertPlayer(out.Player), Cost: out.Cost}, nil
}

// GrantBait credits bait without payment
func (h *VoyageHandler) GrantBait(
	ctx context.Context,
	req *tidesv1alpha1.GrantBaitRequest,
) (*tidesv1alpha1.GrantBaitResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.voyageService.GrantBait(ctx, &voyage.GrantBaitInput{
		PlayerID: req.PlayerID,
		BaitID:   req.BaitID,
		Amount:   req.Amount,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &tidesv1alpha1.GrantBaitResponse{Player: convertPlayer(out.Player)}, nil
}

// PurchaseBait buys bait
func (h *VoyageHandler) PurchaseBait(
	ctx context.Context,
	req *tidesv1alpha1.PurchaseBaitRequest,
) (*tidesv1alpha1.PurchaseBaitResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.voyageService.PurchaseBait(ctx, &voyage.PurchaseBaitInput{
		PlayerID: req.PlayerID,
		BaitID:   req.BaitID,
		Amount:   req.Amount,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &tidesv1alpha1.PurchaseBaitResponse{Player: convertPlayer(out.Player), Cost: out.Cost}, nil
}
