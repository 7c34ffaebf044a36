package entities

// MarketRecord is the shared price state of one fish species.
// LastSaleTime 0 means the species has never been sold.
type MarketRecord struct {
	SpeciesID    uint64 `json:"species_id"`
	CurrentValue uint64 `json:"current_value"`
	LastSaleTime int64  `json:"last_sale_time"`
}

// Settlement is the outcome of a completed sale
type Settlement struct {
	ID         string `json:"id"`
	PlayerID   string `json:"player_id"`
	SpeciesID  uint64 `json:"species_id"`
	InstanceID uint64 `json:"instance_id"`
	Weight     uint16 `json:"weight"`
	Freshness  uint64 `json:"freshness"`
	SalePrice  uint64 `json:"sale_price"`
	SoldAt     int64  `json:"sold_at"`
}
