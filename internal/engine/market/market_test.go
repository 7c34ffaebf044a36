package market_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tides-game/tides-api/internal/engine/market"
	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

const basePrice = uint64(100_000_000)

func TestSettleSaleVirginMarket(t *testing.T) {
	out, err := market.SettleSale(market.SaleInput{
		Record:    entities.MarketRecord{SpeciesID: 3},
		BasePrice: basePrice,
		SpeciesID: 3,
		Weight:    500,
		Freshness: 100,
		Now:       1_700_000_000,
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(50_000_000_000), out.SalePrice)
	assert.Equal(t, basePrice, out.EffectiveValue)
	assert.Equal(t, entities.MarketRecord{
		SpeciesID:    3,
		CurrentValue: 95_000_000,
		LastSaleTime: 1_700_000_000,
	}, out.Record)
}

func TestSettleSaleRecovery(t *testing.T) {
	testCases := []struct {
		name          string
		record        entities.MarketRecord
		now           int64
		wantEffective uint64
		wantLastSale  int64
	}{
		{
			name:          "partial recovery after an hour",
			record:        entities.MarketRecord{SpeciesID: 1, CurrentValue: 50_000_000, LastSaleTime: 1000},
			now:           1000 + 3600,
			wantEffective: 66_668_000,
			wantLastSale:  4600,
		},
		{
			name:          "recovery capped at base",
			record:        entities.MarketRecord{SpeciesID: 1, CurrentValue: 99_000_000, LastSaleTime: 1000},
			now:           1000 + 3600,
			wantEffective: basePrice,
			wantLastSale:  4600,
		},
		{
			name:          "full recovery after six hours",
			record:        entities.MarketRecord{SpeciesID: 1, CurrentValue: 1, LastSaleTime: 1000},
			now:           1000 + market.FullRecoverySeconds,
			wantEffective: basePrice,
			wantLastSale:  1000 + market.FullRecoverySeconds,
		},
		{
			name:          "same second sale sees no recovery",
			record:        entities.MarketRecord{SpeciesID: 1, CurrentValue: 40_000_000, LastSaleTime: 1000},
			now:           1000,
			wantEffective: 40_000_000,
			wantLastSale:  1000,
		},
		{
			name:          "clock behind last sale clamps elapsed",
			record:        entities.MarketRecord{SpeciesID: 1, CurrentValue: 40_000_000, LastSaleTime: 2000},
			now:           1500,
			wantEffective: 40_000_000,
			wantLastSale:  2000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := market.SettleSale(market.SaleInput{
				Record:    tc.record,
				BasePrice: basePrice,
				SpeciesID: 1,
				Weight:    10,
				Freshness: 50,
				Now:       tc.now,
			})
			require.NoError(t, err)

			assert.Equal(t, tc.wantEffective, out.EffectiveValue)
			assert.Equal(t, tc.wantEffective*10*50/100, out.SalePrice)
			assert.Equal(t, tc.wantEffective-tc.wantEffective*5/100, out.Record.CurrentValue)
			assert.Equal(t, tc.wantLastSale, out.Record.LastSaleTime)
		})
	}
}

func TestSettleSaleOverflow(t *testing.T) {
	_, err := market.SettleSale(market.SaleInput{
		BasePrice: math.MaxUint64 / 2,
		SpeciesID: 1,
		Weight:    500,
		Freshness: 100,
		Now:       10,
	})
	require.Error(t, err)
	assert.True(t, errors.IsOutOfRange(err))
	assert.Equal(t, entities.ReasonArithmeticOverflow, errors.GetReason(err))
}

func TestSettleSaleRejectsBadInput(t *testing.T) {
	testCases := []struct {
		name  string
		input market.SaleInput
	}{
		{name: "no species", input: market.SaleInput{BasePrice: basePrice, Weight: 1, Freshness: 100, Now: 10}},
		{name: "record of other species", input: market.SaleInput{Record: entities.MarketRecord{SpeciesID: 2}, BasePrice: basePrice, SpeciesID: 1, Weight: 1, Freshness: 100, Now: 10}},
		{name: "zero time", input: market.SaleInput{BasePrice: basePrice, SpeciesID: 1, Weight: 1, Freshness: 100}},
		{name: "freshness over 100", input: market.SaleInput{BasePrice: basePrice, SpeciesID: 1, Weight: 1, Freshness: 101, Now: 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := market.SettleSale(tc.input)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestMarketValueStaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	record := entities.MarketRecord{SpeciesID: 9}
	now := int64(1_000)

	for i := 0; i < 500; i++ {
		now += rng.Int63n(3 * 3600)
		out, err := market.SettleSale(market.SaleInput{
			Record:    record,
			BasePrice: basePrice,
			SpeciesID: 9,
			Weight:    uint16(rng.Intn(1000) + 1),
			Freshness: uint64(rng.Intn(101)),
			Now:       now,
		})
		require.NoError(t, err)
		require.LessOrEqual(t, out.Record.CurrentValue, basePrice)
		require.GreaterOrEqual(t, out.Record.LastSaleTime, record.LastSaleTime)
		record = out.Record
	}
}

func TestFreshness(t *testing.T) {
	assert.Equal(t, uint64(100), market.Freshness(1000, 1000))
	assert.Equal(t, uint64(100), market.Freshness(1000, 900))
	assert.Equal(t, uint64(100), market.Freshness(1000, 1899))
	assert.Equal(t, uint64(75), market.Freshness(1000, 1900))
	assert.Equal(t, uint64(50), market.Freshness(1000, 1000+1801))
	assert.Equal(t, uint64(25), market.Freshness(1000, 1000+2700))
	assert.Equal(t, uint64(0), market.Freshness(1000, 1000+3600))
	assert.Equal(t, uint64(0), market.Freshness(1000, 1000+86_400))
}

func TestFreshnessIsMonotonic(t *testing.T) {
	prev := market.Freshness(500, 0)
	for now := int64(0); now < 6000; now += 37 {
		fresh := market.Freshness(500, now)
		assert.LessOrEqual(t, fresh, prev)
		prev = fresh
	}
	assert.Equal(t, uint64(0), prev)
}
