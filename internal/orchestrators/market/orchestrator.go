// Package market sells caught fish into the shared species markets
package market

//go:generate mockgen -destination=mock/mock_service.go -package=marketmock github.com/tides-game/tides-api/internal/orchestrators/market Service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/tides-game/tides-api/internal/catalog"
	"github.com/tides-game/tides-api/internal/engine/inventory"
	rules "github.com/tides-game/tides-api/internal/engine/market"
	"github.com/tides-game/tides-api/internal/engine/rpgtoolkit"
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	"github.com/tides-game/tides-api/internal/payout"
	"github.com/tides-game/tides-api/internal/pkg/clock"
	"github.com/tides-game/tides-api/internal/pkg/idgen"
	"github.com/tides-game/tides-api/internal/pkg/keylock"
	"github.com/tides-game/tides-api/internal/repositories/catches"
	"github.com/tides-game/tides-api/internal/repositories/inventories"
	"github.com/tides-game/tides-api/internal/repositories/markets"
)

// Service defines the interface for market operations
type Service interface {
	SellCatch(ctx context.Context, input *SellCatchInput) (*SellCatchOutput, error)
	GetMarket(ctx context.Context, input *GetMarketInput) (*GetMarketOutput, error)
	ListMarkets(ctx context.Context, input *ListMarketsInput) (*ListMarketsOutput, error)
	ListCatches(ctx context.Context, input *ListCatchesInput) (*ListCatchesOutput, error)
}

// Config holds the dependencies for the market orchestrator
type Config struct {
	MarketRepo    markets.Repository
	CatchRepo     catches.Repository
	InventoryRepo inventories.Repository
	Catalog       catalog.Lookup
	Custodian     payout.Custodian
	Publisher     rpgtoolkit.Publisher
	IDGenerator   idgen.Generator
	Clock         clock.Clock
	Locker        *keylock.Locker
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MarketRepo == nil {
		vb.RequiredField("MarketRepo")
	}
	if c.CatchRepo == nil {
		vb.RequiredField("CatchRepo")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Custodian == nil {
		vb.RequiredField("Custodian")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
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
	marketRepo    markets.Repository
	catchRepo     catches.Repository
	inventoryRepo inventories.Repository
	catalog       catalog.Lookup
	custodian     payout.Custodian
	publisher     rpgtoolkit.Publisher
	idGenerator   idgen.Generator
	clock         clock.Clock
	locker        *keylock.Locker
}

// NewOrchestrator creates a new market orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		marketRepo:    cfg.MarketRepo,
		catchRepo:     cfg.CatchRepo,
		inventoryRepo: cfg.InventoryRepo,
		catalog:       cfg.Catalog,
		custodian:     cfg.Custodian,
		publisher:     cfg.Publisher,
		idGenerator:   cfg.IDGenerator,
		clock:         cfg.Clock,
		locker:        cfg.Locker,
	}, nil
}

// SellCatch settles a held fish against its species market and pays the seller
func (o *orchestrator) SellCatch(ctx context.Context, input *SellCatchInput) (*SellCatchOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock, err := o.locker.Lock(ctx, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock player")
	}
	defer unlock()

	held, err := o.catchRepo.Get(ctx, catches.GetInput{Owner: input.PlayerID, InstanceID: input.InstanceID})
	if err != nil {
		return nil, err
	}
	record := held.Record

	species, err := o.catalog.GetSpecies(record.SpeciesID)
	if err != nil {
		return nil, err
	}

	now := clock.Unix(o.clock)
	freshness := rules.Freshness(record.CaughtAt, now)

	var sale *rules.SaleOutput
	settled, err := o.marketRepo.Settle(ctx, markets.SettleInput{
		SpeciesID: species.ID,
		Apply: func(current entities.MarketRecord) (*entities.MarketRecord, error) {
			out, err := rules.SettleSale(rules.SaleInput{
				Record:    current,
				BasePrice: species.BasePrice,
				SpeciesID: species.ID,
				Weight:    record.Weight,
				Freshness: freshness,
				Now:       now,
			})
			if err != nil {
				return nil, err
			}
			sale = out
			return &out.Record, nil
		},
	})
	if err != nil {
		return nil, err
	}

	settlement := &entities.Settlement{
		ID:         o.idGenerator.Generate(),
		PlayerID:   input.PlayerID,
		SpeciesID:  species.ID,
		InstanceID: record.InstanceID,
		Weight:     record.Weight,
		Freshness:  freshness,
		SalePrice:  sale.SalePrice,
		SoldAt:     now,
	}

	if sale.SalePrice > 0 {
		if err := o.custodian.Payout(ctx, input.PlayerID, sale.SalePrice, "sale:"+settlement.ID); err != nil {
			// the market has moved; the catch stays with the player
			slog.Error("sale payout failed",
				"player_id", input.PlayerID,
				"settlement_id", settlement.ID,
				"amount", sale.SalePrice,
				"error", err)
			return nil, errors.Wrap(err, "failed to pay out sale")
		}
	}

	o.clearFish(ctx, input.PlayerID, record.InstanceID)

	if _, err := o.catchRepo.Delete(ctx, catches.DeleteInput{Owner: input.PlayerID, InstanceID: record.InstanceID}); err != nil {
		slog.Error("failed to consume catch record",
			"player_id", input.PlayerID,
			"instance_id", record.InstanceID,
			"error", err)
		return nil, errors.Wrap(err, "failed to consume catch")
	}

	if err := o.publisher.FishSold(ctx, settlement, settled.Record); err != nil {
		slog.Warn("failed to publish sale", "settlement_id", settlement.ID, "error", err)
	}

	slog.Info("catch sold",
		"player_id", input.PlayerID,
		"settlement_id", settlement.ID,
		"species_id", species.ID,
		"weight", record.Weight,
		"freshness", freshness,
		"sale_price", strconv.FormatUint(sale.SalePrice, 10))

	return &SellCatchOutput{
		SalePrice:  sale.SalePrice,
		Freshness:  freshness,
		Record:     settled.Record,
		Settlement: settlement,
	}, nil
}

// clearFish removes a sold fish from the grid. Caller holds the player lock.
func (o *orchestrator) clearFish(ctx context.Context, playerID string, instanceID uint64) {
	inv, err := o.inventoryRepo.Get(ctx, inventories.GetInput{PlayerID: playerID})
	if err != nil {
		slog.Warn("cannot load grid for sold fish", "player_id", playerID, "error", err)
		return
	}
	if err := inventory.Remove(inv.Grid, instanceID); err != nil {
		slog.Warn("sold fish was not in the grid",
			"player_id", playerID,
			"instance_id", instanceID,
			"error", err)
		return
	}
	if _, err := o.inventoryRepo.Save(ctx, inventories.SaveInput{Grid: inv.Grid}); err != nil {
		slog.Error("failed to save grid after sale", "player_id", playerID, "error", err)
	}
}

// GetMarket returns a species record and its value at the current time
func (o *orchestrator) GetMarket(ctx context.Context, input *GetMarketInput) (*GetMarketOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	species, err := o.catalog.GetSpecies(input.SpeciesID)
	if err != nil {
		return nil, err
	}

	got, err := o.marketRepo.Get(ctx, markets.GetInput{SpeciesID: species.ID})
	if err != nil {
		return nil, err
	}

	effective, err := rules.EffectiveValue(*got.Record, species.BasePrice, clock.Unix(o.clock))
	if err != nil {
		return nil, err
	}

	return &GetMarketOutput{
		Record:         got.Record,
		BasePrice:      species.BasePrice,
		EffectiveValue: effective,
	}, nil
}

// ListMarkets returns every species record that has traded
func (o *orchestrator) ListMarkets(ctx context.Context, _ *ListMarketsInput) (*ListMarketsOutput, error) {
	out, err := o.marketRepo.List(ctx, markets.ListInput{})
	if err != nil {
		return nil, err
	}
	return &ListMarketsOutput{Records: out.Records}, nil
}

// ListCatches returns the player's held catches with their freshness
func (o *orchestrator) ListCatches(ctx context.Context, input *ListCatchesInput) (*ListCatchesOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.catchRepo.ListByOwner(ctx, catches.ListByOwnerInput{Owner: input.PlayerID})
	if err != nil {
		return nil, err
	}

	now := clock.Unix(o.clock)
	quotes := make([]CatchQuote, 0, len(out.Records))
	for _, rec := range out.Records {
		quotes = append(quotes, CatchQuote{Record: rec, Freshness: rules.Freshness(rec.CaughtAt, now)})
	}
	return &ListCatchesOutput{Catches: quotes}, nil
}
