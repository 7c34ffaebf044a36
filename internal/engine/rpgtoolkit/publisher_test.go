package rpgtoolkit_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tides-game/tides-api/internal/engine/rpgtoolkit"
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

func TestNewAdapterRequiresBus(t *testing.T) {
	_, err := rpgtoolkit.NewAdapter(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestFishSoldReachesSubscribers(t *testing.T) {
	bus := events.NewBus()
	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{EventBus: bus})
	require.NoError(t, err)

	var (
		gotSettlement *entities.Settlement
		gotMarket     *entities.MarketRecord
	)
	rpgtoolkit.SubscribeSales(bus, func(_ context.Context, s *entities.Settlement, m *entities.MarketRecord) {
		gotSettlement = s
		gotMarket = m
	})

	settlement := &entities.Settlement{ID: "sale-1", SpeciesID: 2, SalePrice: 500}
	market := &entities.MarketRecord{SpeciesID: 2, CurrentValue: 95}
	require.NoError(t, adapter.FishSold(context.Background(), settlement, market))

	assert.Equal(t, settlement, gotSettlement)
	assert.Equal(t, market, gotMarket)
}

func TestFishCaughtReachesSubscribers(t *testing.T) {
	bus := events.NewBus()
	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{EventBus: bus})
	require.NoError(t, err)

	var caught []*entities.CatchRecord
	rpgtoolkit.SubscribeCatches(bus, func(_ context.Context, p *entities.PlayerState, rec *entities.CatchRecord) {
		assert.Equal(t, "player-1", p.ID)
		caught = append(caught, rec)
	})

	sold := 0
	rpgtoolkit.SubscribeSales(bus, func(context.Context, *entities.Settlement, *entities.MarketRecord) { sold++ })

	rec := &entities.CatchRecord{Owner: "player-1", InstanceID: 3, SpeciesID: 1, Weight: 20}
	require.NoError(t, adapter.FishCaught(context.Background(), &entities.PlayerState{ID: "player-1"}, rec))

	require.Len(t, caught, 1)
	assert.Equal(t, rec, caught[0])
	assert.Zero(t, sold)
}

func TestPublishRejectsNil(t *testing.T) {
	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{EventBus: events.NewBus()})
	require.NoError(t, err)

	assert.True(t, errors.IsInvalidArgument(adapter.FishCaught(context.Background(), nil, nil)))
	assert.True(t, errors.IsInvalidArgument(adapter.FishSold(context.Background(), nil, nil)))
}
