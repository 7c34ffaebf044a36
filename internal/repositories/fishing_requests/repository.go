// Package fishingrequests persists the single fishing request of each player
package fishingrequests

//go:generate mockgen -destination=mock/mock_repository.go -package=fishingrequestsmock github.com/tides-game/tides-api/internal/repositories/fishing_requests Repository

import (
	"context"

	"github.com/tides-game/tides-api/internal/entities"
)

// Repository stores one fishing request per player
type Repository interface {
	// Save creates or replaces the player's request
	// Returns errors.InvalidArgument for validation failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves the player's request
	// Returns errors.NotFound if the player has none
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// SaveInput defines the input for saving a request
type SaveInput struct {
	Request *entities.FishingRequest
}

// SaveOutput defines the output for saving a request
type SaveOutput struct{}

// GetInput defines the input for getting a request
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting a request
type GetOutput struct {
	Request *entities.FishingRequest
}
