package voyage

import (
	"github.com/tides-game/tides-api/internal/engine/navigation"
	"github.com/tides-game/tides-api/internal/entities"
)

// RegisterPlayerInput defines the request for registering a player
type RegisterPlayerInput struct {
	PlayerID string
	MapID    uint64 // 0 selects the catalog default
}

// RegisterPlayerOutput defines the response for registering a player
type RegisterPlayerOutput struct {
	Player  *entities.PlayerState
	Grid    *entities.InventoryGrid
	Request *entities.FishingRequest
}

// GetPlayerInput defines the request for getting a player
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayerOutput defines the response for getting a player
type GetPlayerOutput struct {
	Player *entities.PlayerState
}

// MovePlayerInput defines the request for sailing
type MovePlayerInput struct {
	PlayerID   string
	Directions []navigation.Direction
}

// MovePlayerOutput defines the response for sailing
type MovePlayerOutput struct {
	Player       *entities.PlayerState
	FuelConsumed uint64
}

// PurchaseFuelInput defines the request for buying fuel
type PurchaseFuelInput struct {
	PlayerID string
	Units    uint64
}

// PurchaseFuelOutput defines the response for buying fuel
type PurchaseFuelOutput struct {
	Player *entities.PlayerState
	Cost   uint64
}

// GrantBaitInput defines the request for crediting bait without payment
type GrantBaitInput struct {
	PlayerID string
	BaitID   uint64
	Amount   uint64
}

// GrantBaitOutput defines the response for crediting bait
type GrantBaitOutput struct {
	Player *entities.PlayerState
}

// PurchaseBaitInput defines the request for buying bait
type PurchaseBaitInput struct {
	PlayerID string
	BaitID   uint64
	Amount   uint64
}

// PurchaseBaitOutput defines the response for buying bait
type PurchaseBaitOutput struct {
	Player *entities.PlayerState
	Cost   uint64
}
