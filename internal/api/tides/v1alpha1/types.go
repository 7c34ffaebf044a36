package v1alpha1

// Player is a registered ship
type Player struct {
	ID            string            `json:"id"`
	MapID         uint64            `json:"map_id"`
	ShipID        uint64            `json:"ship_id"`
	X             int32             `json:"x"`
	Y             int32             `json:"y"`
	Fuel          uint64            `json:"fuel"`
	MovementSpeed uint64            `json:"movement_speed"`
	CooldownUntil int64             `json:"cooldown_until"`
	Bait          map[uint64]uint64 `json:"bait,omitempty"`
	RegisteredAt  int64             `json:"registered_at"`
}

// Item is one placed item and its footprint
type Item struct {
	Kind       string `json:"kind"`
	CatalogID  uint64 `json:"catalog_id"`
	InstanceID uint64 `json:"instance_id"`
	X          uint32 `json:"x"`
	Y          uint32 `json:"y"`
	Width      uint32 `json:"width"`
	Height     uint32 `json:"height"`
	Rotation   uint32 `json:"rotation"`
}

// Cell is one grid cell
type Cell struct {
	Kind       string `json:"kind"`
	CatalogID  uint64 `json:"catalog_id"`
	InstanceID uint64 `json:"instance_id"`
	Rotation   uint32 `json:"rotation"`
	SlotKind   string `json:"slot_kind"`
}

// Inventory is a cargo grid with its placed items
type Inventory struct {
	PlayerID       string   `json:"player_id"`
	Width          uint32   `json:"width"`
	Height         uint32   `json:"height"`
	SlotKinds      []string `json:"slot_kinds"`
	Items          []*Item  `json:"items"`
	NextInstanceID uint64   `json:"next_instance_id"`
}

// FishingRequest is the fishing state of a player
type FishingRequest struct {
	PlayerID      string `json:"player_id"`
	PendingNonce  uint64 `json:"pending_nonce"`
	FishingNonce  uint64 `json:"fishing_nonce"`
	BaitKindInUse uint64 `json:"bait_kind_in_use"`
	IssuedAt      int64  `json:"issued_at"`
}

// FishingResult is an oracle answer
type FishingResult struct {
	Nonce     uint64 `json:"nonce"`
	SpeciesID uint64 `json:"species_id"`
	Weight    uint32 `json:"weight"`
	Timestamp int64  `json:"timestamp"`
}

// CatchRecord is a held catch
type CatchRecord struct {
	Owner      string `json:"owner"`
	InstanceID uint64 `json:"instance_id"`
	SpeciesID  uint64 `json:"species_id"`
	Weight     uint32 `json:"weight"`
	CaughtAt   int64  `json:"caught_at"`
	Freshness  uint64 `json:"freshness,omitempty"`
}

// MarketRecord is the price state of a species
type MarketRecord struct {
	SpeciesID    uint64 `json:"species_id"`
	CurrentValue uint64 `json:"current_value"`
	LastSaleTime int64  `json:"last_sale_time"`
}
