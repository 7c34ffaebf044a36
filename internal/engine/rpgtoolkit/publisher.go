// Package rpgtoolkit bridges tides state changes onto the rpg-toolkit event bus.
package rpgtoolkit

//go:generate mockgen -destination=mock/mock_publisher.go -package=rpgtoolkitmock github.com/tides-game/tides-api/internal/engine/rpgtoolkit Publisher

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

// Event types published on the bus
const (
	EventFishCaught = "tides.fish_caught"
	EventFishSold   = "tides.fish_sold"
)

// Publisher announces completed catches and sales
type Publisher interface {
	// FishCaught announces a kept catch; source is the catch, target the player
	FishCaught(ctx context.Context, player *entities.PlayerState, rec *entities.CatchRecord) error

	// FishSold announces a settlement; source is the settlement, target the species market
	FishSold(ctx context.Context, settlement *entities.Settlement, market *entities.MarketRecord) error
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus events.EventBus
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	return nil
}

// Adapter implements Publisher on an rpg-toolkit event bus
type Adapter struct {
	eventBus events.EventBus
}

// NewAdapter creates a new rpg-toolkit event adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{eventBus: cfg.EventBus}, nil
}

var _ Publisher = (*Adapter)(nil)

// FishCaught publishes EventFishCaught
func (a *Adapter) FishCaught(ctx context.Context, player *entities.PlayerState, rec *entities.CatchRecord) error {
	if player == nil || rec == nil {
		return errors.InvalidArgument("player and catch are required")
	}

	event := events.NewGameEvent(EventFishCaught, wrapCatch(rec), wrapPlayer(player))
	if err := a.eventBus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s", EventFishCaught)
	}
	return nil
}

// FishSold publishes EventFishSold
func (a *Adapter) FishSold(ctx context.Context, settlement *entities.Settlement, market *entities.MarketRecord) error {
	if settlement == nil || market == nil {
		return errors.InvalidArgument("settlement and market are required")
	}

	event := events.NewGameEvent(EventFishSold, wrapSettlement(settlement), wrapMarket(market))
	if err := a.eventBus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s", EventFishSold)
	}
	return nil
}

// SaleHandler receives the settlement and resulting market of a sale
type SaleHandler func(ctx context.Context, settlement *entities.Settlement, market *entities.MarketRecord)

// SubscribeSales registers handler for EventFishSold and returns the subscription ID
func SubscribeSales(bus events.EventBus, handler SaleHandler) string {
	return bus.SubscribeFunc(EventFishSold, 0, func(ctx context.Context, event events.Event) error {
		settlement, ok := event.Source().(*SettlementEntity)
		if !ok {
			return nil
		}
		market, ok := event.Target().(*MarketEntity)
		if !ok {
			return nil
		}
		handler(ctx, settlement.Settlement, market.MarketRecord)
		return nil
	})
}

// CatchHandler receives the player and record of a kept catch
type CatchHandler func(ctx context.Context, player *entities.PlayerState, rec *entities.CatchRecord)

// SubscribeCatches registers handler for EventFishCaught and returns the subscription ID
func SubscribeCatches(bus events.EventBus, handler CatchHandler) string {
	return bus.SubscribeFunc(EventFishCaught, 0, func(ctx context.Context, event events.Event) error {
		rec, ok := event.Source().(*CatchEntity)
		if !ok {
			return nil
		}
		player, ok := event.Target().(*PlayerEntity)
		if !ok {
			return nil
		}
		handler(ctx, player.PlayerState, rec.CatchRecord)
		return nil
	})
}
