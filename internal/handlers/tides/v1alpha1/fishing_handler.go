package v1alpha1

import (
	"context"

	tidesv1alpha1 "github.com/tides-game/tides-api/internal/api/tides/v1alpha1"
	"github.com/tides-game/tides-api/internal/engine/market"
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/orchestrators/fishing"
)

// FishingHandlerConfig holds dependencies for the fishing handler
type FishingHandlerConfig struct {
	FishingService fishing.Service
}

// Validate ensures all required dependencies are present
func (c *FishingHandlerConfig) Validate() error {
	if c.FishingService == nil {
		return errors.InvalidArgument("fishing service is required")
	}
	return nil
}

// FishingHandler implements the FishingService gRPC service
type FishingHandler struct {
	tidesv1alpha1.UnimplementedFishingServiceServer
	fishingService fishing.Service
}

// NewFishingHandler creates a new fishing handler with the given configuration
func NewFishingHandler(cfg *FishingHandlerConfig) (*FishingHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &FishingHandler{
		fishingService: cfg.FishingService,
	}, nil
}

// InitiateFishing casts a line with one bait
func (h *FishingHandler) InitiateFishing(
	ctx context.Context,
	req *tidesv1alpha1.InitiateFishingRequest,
) (*tidesv1alpha1.InitiateFishingResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.fishingService.InitiateFishing(ctx, &fishing.InitiateFishingInput{
		PlayerID: req.PlayerID,
		BaitID:   req.BaitID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &tidesv1alpha1.InitiateFishingResponse{
		Nonce:          out.Nonce,
		ReplacedNonce:  out.ReplacedNonce,
		BaitRemaining:  out.BaitRemaining,
		FishingRequest: convertFishingRequest(out.Request),
	}, nil
}

// FulfillFishing settles a pending request with a signed oracle result
func (h *FishingHandler) FulfillFishing(
	ctx context.Context,
	req *tidesv1alpha1.FulfillFishingRequest,
) (*tidesv1alpha1.FulfillFishingResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	if req.Result == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("result is required"))
	}

	weight, err := toUint16("result.weight", req.Result.Weight)
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

	out, err := h.fishingService.FulfillFishing(ctx, &fishing.FulfillFishingInput{
		PlayerID: req.PlayerID,
		Result: entities.FishingResult{
			Nonce:     req.Result.Nonce,
			SpeciesID: req.Result.SpeciesID,
			Weight:    weight,
			Timestamp: req.Result.Timestamp,
		},
		Signature:  req.Signature,
		ShouldKeep: req.ShouldKeep,
		X:          x,
		Y:          y,
		Rotation:   rotation,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	var landed *tidesv1alpha1.CatchRecord
	if out.Record != nil {
		// freshness as of the moment it was landed
		landed = convertCatch(out.Record, market.Freshness(out.Record.CaughtAt, out.Record.CaughtAt))
	}

	return &tidesv1alpha1.FulfillFishingResponse{
		Kept:       out.Kept,
		InstanceID: out.InstanceID,
		Catch:      landed,
		Inventory:  convertInventory(out.Grid),
	}, nil
}

// GetFishingState returns the fishing request of a player
func (h *FishingHandler) GetFishingState(
	ctx context.Context,
	req *tidesv1alpha1.GetFishingStateRequest,
) (*tidesv1alpha1.GetFishingStateResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.fishingService.GetFishingState(ctx, &fishing.GetFishingStateInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &tidesv1alpha1.GetFishingStateResponse{
		FishingRequest: convertFishingRequest(out.Request),
		Expired:        out.Expired,
	}, nil
}

// AbandonFishing clears an expired pending request
func (h *FishingHandler) AbandonFishing(
	ctx context.Context,
	req *tidesv1alpha1.AbandonFishingRequest,
) (*tidesv1alpha1.AbandonFishingResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.fishingService.AbandonFishing(ctx, &fishing.AbandonFishingInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &tidesv1alpha1.AbandonFishingResponse{
		AbandonedNonce: out.AbandonedNonce,
		FishingRequest: convertFishingRequest(out.Request),
	}, nil
}
