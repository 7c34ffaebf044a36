package market

import (
	"github.com/tides-game/tides-api/internal/entities"
)

// SellCatchInput defines the request for selling a held fish
type SellCatchInput struct {
	PlayerID   string
	InstanceID uint64
}

// SellCatchOutput defines the response for a completed sale
type SellCatchOutput struct {
	SalePrice  uint64
	Freshness  uint64
	Record     *entities.MarketRecord
	Settlement *entities.Settlement
}

// GetMarketInput defines the request for reading a species market
type GetMarketInput struct {
	SpeciesID uint64
}

// GetMarketOutput defines the response for reading a species market
type GetMarketOutput struct {
	Record    *entities.MarketRecord
	BasePrice uint64

	// EffectiveValue is the per-unit value a sale would be priced at right now
	EffectiveValue uint64
}

// ListMarketsInput defines the request for listing traded species
type ListMarketsInput struct{}

// ListMarketsOutput defines the response for listing traded species
type ListMarketsOutput struct {
	Records []*entities.MarketRecord
}

// ListCatchesInput defines the request for listing a player's catches
type ListCatchesInput struct {
	PlayerID string
}

// CatchQuote is a held catch with its current freshness
type CatchQuote struct {
	Record    *entities.CatchRecord
	Freshness uint64
}

// ListCatchesOutput defines the response for listing a player's catches
type ListCatchesOutput struct {
	Catches []CatchQuote
}
