// Package inventories defines the interface for inventory grid persistence
package inventories

//go:generate mockgen -destination=mock/mock_repository.go -package=inventoriesmock github.com/tides-game/tides-api/internal/repositories/inventories Repository

import (
	"context"

	"github.com/tides-game/tides-api/internal/entities"
)

// Repository stores one inventory grid per player
type Repository interface {
	// Save creates or replaces the player's grid
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves the player's grid
	// Returns errors.NotFound if the player has no grid
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// SaveInput defines the input for saving a grid
type SaveInput struct {
	Grid *entities.InventoryGrid
}

// SaveOutput defines the output for saving a grid
type SaveOutput struct{}

// GetInput defines the input for getting a grid
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting a grid
type GetOutput struct {
	Grid *entities.InventoryGrid
}
