package v1alpha1

import (
	"context"

	tidesv1alpha1 "github.com/tides-game/tides-api/internal/api/tides/v1alpha1"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/orchestrators/market"
)

// MarketHandlerConfig holds dependencies for the market handler
type MarketHandlerConfig struct {
	MarketService market.Service
}

// Validate ensures all required dependencies are present
func (c *MarketHandlerConfig) Validate() error {
	if c.MarketService == nil {
		return errors.InvalidArgument("market service is required")
	}
	return nil
}

// MarketHandler implements the MarketService gRPC service
type MarketHandler struct {
	tidesv1alpha1.UnimplementedMarketServiceServer
	marketService market.Service
}

// NewMarketHandler creates a new market handler with the given configuration
func NewMarketHandler(cfg *MarketHandlerConfig) (*MarketHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &MarketHandler{
		marketService: cfg.MarketService,
	}, nil
}

// SellCatch sells a held fish
func (h *MarketHandler) SellCatch(
	ctx context.Context,
	req *tidesv1alpha1.SellCatchRequest,
) (*tidesv1alpha1.SellCatchResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	if req.InstanceID == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("instance_id is required"))
	}

	out, err := h.marketService.SellCatch(ctx, &market.SellCatchInput{
		PlayerID:   req.PlayerID,
		InstanceID: req.InstanceID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &tidesv1alpha1.SellCatchResponse{
		SalePrice: out.SalePrice,
		Freshness: out.Freshness,
		Market:    convertMarket(out.Record),
	}
	if out.Settlement != nil {
		resp.SettlementID = out.Settlement.ID
	}
	return resp, nil
}

// GetMarket returns the price state of a species
func (h *MarketHandler) GetMarket(
	ctx context.Context,
	req *tidesv1alpha1.GetMarketRequest,
) (*tidesv1alpha1.GetMarketResponse, error) {
	if req.SpeciesID == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("species_id is required"))
	}

	out, err := h.marketService.GetMarket(ctx, &market.GetMarketInput{SpeciesID: req.SpeciesID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &tidesv1alpha1.GetMarketResponse{
		Market:         convertMarket(out.Record),
		BasePrice:      out.BasePrice,
		EffectiveValue: out.EffectiveValue,
	}, nil
}

// ListMarkets returns every traded species
func (h *MarketHandler) ListMarkets(
	ctx context.Context,
	_ *tidesv1alpha1.ListMarketsRequest,
) (*tidesv1alpha1.ListMarketsResponse, error) {
	out, err := h.marketService.ListMarkets(ctx, &market.ListMarketsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	records := make([]*tidesv1alpha1.MarketRecord, 0, len(out.Records))
	for _, rec := range out.Records {
		records = append(records, convertMarket(rec))
	}
	return &tidesv1alpha1.ListMarketsResponse{Markets: records}, nil
}

// ListCatches returns a player's held catches
func (h *MarketHandler) ListCatches(
	ctx context.Context,
	req *tidesv1alpha1.ListCatchesRequest,
) (*tidesv1alpha1.ListCatchesResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.marketService.ListCatches(ctx, &market.ListCatchesInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	catches := make([]*tidesv1alpha1.CatchRecord, 0, len(out.Catches))
	for _, quote := range out.Catches {
		catches = append(catches, convertCatch(quote.Record, quote.Freshness))
	}
	return &tidesv1alpha1.ListCatchesResponse{Catches: catches}, nil
}
