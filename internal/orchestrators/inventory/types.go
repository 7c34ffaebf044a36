package inventory

import (
	"github.com/tides-game/tides-api/internal/entities"
)

// GetInventoryInput defines the request for reading a grid
type GetInventoryInput struct {
	PlayerID string
}

// GetInventoryOutput defines the response for reading a grid
type GetInventoryOutput struct {
	Grid  *entities.InventoryGrid
	Items []entities.PlacedItem
}

// EquipItemInput defines the request for fitting gear
type EquipItemInput struct {
	PlayerID  string
	Kind      entities.ItemKind // engine or fishing rod
	CatalogID uint64
	X, Y      uint8
	Rotation  uint8
}

// EquipItemOutput defines the response for fitting gear
type EquipItemOutput struct {
	InstanceID uint64
	Grid       *entities.InventoryGrid
}

// RemoveItemInput defines the request for removing an item
type RemoveItemInput struct {
	PlayerID   string
	InstanceID uint64
}

// RemoveItemOutput defines the response for removing an item
type RemoveItemOutput struct {
	Removed entities.PlacedItem
	Grid    *entities.InventoryGrid
}

// QueryCellInput defines the request for reading one cell
type QueryCellInput struct {
	PlayerID string
	X, Y     uint8
}

// QueryCellOutput defines the response for reading one cell
type QueryCellOutput struct {
	Cell     entities.GridCell
	SlotKind entities.SlotKind
}
