// Package market implements species price settlement and catch freshness.
package market

import (
	"math/bits"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

const (
	// DecayRatePct is the share of value lost on every sale
	DecayRatePct = 5

	// RecoveryRate is the per-second recovery of base price, scaled by RecoveryScale.
	// 463 / 10_000_000 per second restores roughly 100% in six hours.
	RecoveryRate  = 463
	RecoveryScale = 10_000_000

	// FullRecoverySeconds is the idle time after which a market is back at base price
	FullRecoverySeconds = 6 * 60 * 60

	// FreshnessDecayPeriod is the interval after which a catch loses FreshnessDecayRate points
	FreshnessDecayPeriod = 900
	FreshnessDecayRate   = 25
	FullFreshness        = 100
)

// SaleInput describes one sale to settle against a market record
type SaleInput struct {
	Record    entities.MarketRecord
	BasePrice uint64
	SpeciesID uint64
	Weight    uint16
	Freshness uint64
	Now       int64
}

// SaleOutput is the settled record and the amount owed to the seller
type SaleOutput struct {
	Record    entities.MarketRecord
	SalePrice uint64

	// EffectiveValue is the per-unit value the sale was priced at
	EffectiveValue uint64
}

// SettleSale prices a sale and returns the decayed market record.
// No partial result is returned on error.
func SettleSale(input SaleInput) (*SaleOutput, error) {
	if input.SpeciesID == 0 {
		return nil, errors.Reasoned(errors.CodeInvalidArgument, entities.ReasonInvalidSpecies,
			"species id is required")
	}
	if input.Record.SpeciesID != 0 && input.Record.SpeciesID != input.SpeciesID {
		return nil, errors.Reasonedf(errors.CodeInvalidArgument, entities.ReasonInvalidSpecies,
			"market record belongs to species %d, not %d", input.Record.SpeciesID, input.SpeciesID)
	}
	if input.Now <= 0 {
		return nil, errors.InvalidArgument("sale time must be positive")
	}
	if input.Freshness > FullFreshness {
		return nil, errors.InvalidArgumentf("freshness %d exceeds %d", input.Freshness, FullFreshness)
	}

	effective, err := EffectiveValue(input.Record, input.BasePrice, input.Now)
	if err != nil {
		return nil, err
	}

	price, err := salePrice(effective, uint64(input.Weight), input.Freshness)
	if err != nil {
		return nil, errors.Wrap(err, "failed to price sale").
			WithMeta("species_id", input.SpeciesID).
			WithMeta("weight", input.Weight)
	}

	lastSale := input.Now
	if input.Record.LastSaleTime > lastSale {
		lastSale = input.Record.LastSaleTime
	}

	return &SaleOutput{
		Record: entities.MarketRecord{
			SpeciesID:    input.SpeciesID,
			CurrentValue: effective - effective*DecayRatePct/100,
			LastSaleTime: lastSale,
		},
		SalePrice:      price,
		EffectiveValue: effective,
	}, nil
}

// EffectiveValue returns the recovered per-unit value of a record at now, capped at base
func EffectiveValue(record entities.MarketRecord, basePrice uint64, now int64) (uint64, error) {
	if record.LastSaleTime == 0 {
		return basePrice, nil
	}
	if record.CurrentValue >= basePrice {
		return basePrice, nil
	}

	elapsed := now - record.LastSaleTime
	if elapsed <= 0 {
		return record.CurrentValue, nil
	}
	if elapsed >= FullRecoverySeconds {
		return basePrice, nil
	}

	hi, lo := bits.Mul64(basePrice, RecoveryRate)
	if hi != 0 {
		return 0, overflow("recovery rate")
	}
	hi, lo = bits.Mul64(lo, uint64(elapsed))
	if hi != 0 {
		return 0, overflow("recovery amount")
	}
	recovered, carry := bits.Add64(record.CurrentValue, lo/RecoveryScale, 0)
	if carry != 0 {
		return 0, overflow("recovered value")
	}

	if recovered > basePrice {
		return basePrice, nil
	}
	return recovered, nil
}

func salePrice(effective, weight, freshness uint64) (uint64, error) {
	hi, lo := bits.Mul64(effective, weight)
	if hi != 0 {
		return 0, overflow("value times weight")
	}
	hi, lo = bits.Mul64(lo, freshness)
	if hi != 0 {
		return 0, overflow("value times freshness")
	}
	return lo / 100, nil
}

func overflow(stage string) error {
	return errors.Reasonedf(errors.CodeOutOfRange, entities.ReasonArithmeticOverflow,
		"arithmetic overflow computing %s", stage)
}

// Freshness returns the remaining freshness percentage of a catch at now
func Freshness(caughtAt, now int64) uint64 {
	if now <= caughtAt {
		return FullFreshness
	}
	periods := uint64(now-caughtAt) / FreshnessDecayPeriod
	if periods >= FullFreshness/FreshnessDecayRate {
		return 0
	}
	return FullFreshness - periods*FreshnessDecayRate
}
