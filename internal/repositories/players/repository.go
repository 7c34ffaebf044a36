// Package players defines the interface for player state persistence
package players

//go:generate mockgen -destination=mock/mock_repository.go -package=playersmock github.com/tides-game/tides-api/internal/repositories/players Repository

import (
	"context"

	"github.com/tides-game/tides-api/internal/entities"
)

// Repository defines the interface for player state persistence
type Repository interface {
	// Create stores a newly registered player
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the player is already registered
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a player by ID
	// Returns errors.NotFound if the player is not registered
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing player
	// Returns errors.NotFound if the player is not registered
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
}

// CreateInput defines the input for creating a player
type CreateInput struct {
	Player *entities.PlayerState
}

// CreateOutput defines the output for creating a player
type CreateOutput struct{}

// GetInput defines the input for getting a player
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting a player
type GetOutput struct {
	Player *entities.PlayerState
}

// UpdateInput defines the input for updating a player
type UpdateInput struct {
	Player *entities.PlayerState
}

// UpdateOutput defines the output for updating a player
type UpdateOutput struct{}
