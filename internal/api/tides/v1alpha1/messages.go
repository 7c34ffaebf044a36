package v1alpha1

type RegisterPlayerRequest struct {
	PlayerID string `json:"player_id"`
	MapID    uint64 `json:"map_id,omitempty"`
}

type RegisterPlayerResponse struct {
	Player         *Player         `json:"player"`
	Inventory      *Inventory      `json:"inventory"`
	FishingRequest *FishingRequest `json:"fishing_request"`
}

type GetPlayerRequest struct {
	PlayerID string `json:"player_id"`
}

type GetPlayerResponse struct {
	Player *Player `json:"player"`
}

type MovePlayerRequest struct {
	PlayerID   string   `json:"player_id"`
	Directions []uint32 `json:"directions"`
}

type MovePlayerResponse struct {
	Player       *Player `json:"player"`
	FuelConsumed uint64  `json:"fuel_consumed"`
}

type PurchaseFuelRequest struct {
	PlayerID string `json:"player_id"`
	Units    uint64 `json:"units"`
}

type PurchaseFuelResponse struct {
	Player *Player `json:"player"`
	Cost   uint64  `json:"cost"`
}

type GrantBaitRequest struct {
	PlayerID string `json:"player_id"`
	BaitID   uint64 `json:"bait_id"`
	Amount   uint64 `json:"amount"`
}

type GrantBaitResponse struct {
	Player *Player `json:"player"`
}

type PurchaseBaitRequest struct {
	PlayerID string `json:"player_id"`
	BaitID   uint64 `json:"bait_id"`
	Amount   uint64 `json:"amount"`
}

type PurchaseBaitResponse struct {
	Player *Player `json:"player"`
	Cost   uint64  `json:"cost"`
}

type GetInventoryRequest struct {
	PlayerID string `json:"player_id"`
}

type GetInventoryResponse struct {
	Inventory *Inventory `json:"inventory"`
}

type EquipItemRequest struct {
	PlayerID  string `json:"player_id"`
	Kind      string `json:"kind"`
	CatalogID uint64 `json:"catalog_id"`
	X         uint32 `json:"x"`
	Y         uint32 `json:"y"`
	Rotation  uint32 `json:"rotation"`
}

type EquipItemResponse struct {
	InstanceID uint64     `json:"instance_id"`
	Inventory  *Inventory `json:"inventory"`
}

type RemoveItemRequest struct {
	PlayerID   string `json:"player_id"`
	InstanceID uint64 `json:"instance_id"`
}

type RemoveItemResponse struct {
	Removed   *Item      `json:"removed"`
	Inventory *Inventory `json:"inventory"`
}

type QueryCellRequest struct {
	PlayerID string `json:"player_id"`
	X        uint32 `json:"x"`
	Y        uint32 `json:"y"`
}

type QueryCellResponse struct {
	Cell *Cell `json:"cell"`
}

type InitiateFishingRequest struct {
	PlayerID string `json:"player_id"`
	BaitID   uint64 `json:"bait_id"`
}

type InitiateFishingResponse struct {
	Nonce          uint64          `json:"nonce"`
	ReplacedNonce  uint64          `json:"replaced_nonce,omitempty"`
	BaitRemaining  uint64          `json:"bait_remaining"`
	FishingRequest *FishingRequest `json:"fishing_request"`
}

type FulfillFishingRequest struct {
	PlayerID   string         `json:"player_id"`
	Result     *FishingResult `json:"result"`
	Signature  []byte         `json:"signature,omitempty"`
	ShouldKeep bool           `json:"should_keep"`
	X          uint32         `json:"x"`
	Y          uint32         `json:"y"`
	Rotation   uint32         `json:"rotation"`
}

type FulfillFishingResponse struct {
	Kept       bool         `json:"kept"`
	InstanceID uint64       `json:"instance_id"`
	Catch      *CatchRecord `json:"catch,omitempty"`
	Inventory  *Inventory   `json:"inventory,omitempty"`
}

type GetFishingStateRequest struct {
	PlayerID string `json:"player_id"`
}

type GetFishingStateResponse struct {
	FishingRequest *FishingRequest `json:"fishing_request"`
	Expired        bool            `json:"expired"`
}

type AbandonFishingRequest struct {
	PlayerID string `json:"player_id"`
}

type AbandonFishingResponse struct {
	AbandonedNonce uint64          `json:"abandoned_nonce"`
	FishingRequest *FishingRequest `json:"fishing_request"`
}

type SellCatchRequest struct {
	PlayerID   string `json:"player_id"`
	InstanceID uint64 `json:"instance_id"`
}

type SellCatchResponse struct {
	SalePrice    uint64        `json:"sale_price"`
	Freshness    uint64        `json:"freshness"`
	Market       *MarketRecord `json:"market"`
	SettlementID string        `json:"settlement_id"`
}

type GetMarketRequest struct {
	SpeciesID uint64 `json:"species_id"`
}

type GetMarketResponse struct {
	Market         *MarketRecord `json:"market"`
	BasePrice      uint64        `json:"base_price"`
	EffectiveValue uint64        `json:"effective_value"`
}

type ListMarketsRequest struct{}

type ListMarketsResponse struct {
	Markets []*MarketRecord `json:"markets"`
}

type ListCatchesRequest struct {
	PlayerID string `json:"player_id"`
}

type ListCatchesResponse struct {
	Catches []*CatchRecord `json:"catches"`
}
