// Package catches is the ledger of kept catches awaiting sale or discard
package catches

//go:generate mockgen -destination=mock/mock_repository.go -package=catchesmock github.com/tides-game/tides-api/internal/repositories/catches Repository

import (
	"context"

	"github.com/tides-game/tides-api/internal/entities"
)

// Repository stores catch records keyed by (owner, instance id)
type Repository interface {
	// Create records a new catch
	// Returns errors.AlreadyExists if the owner already has a record for the instance
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves one catch
	// Returns errors.NotFound with reason CATCH_NOT_FOUND if absent
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByOwner returns the owner's catches ordered by instance id
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)

	// Delete consumes a catch
	// Returns errors.NotFound with reason CATCH_NOT_FOUND if absent
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for recording a catch
type CreateInput struct {
	Record *entities.CatchRecord
}

// CreateOutput defines the output for recording a catch
type CreateOutput struct{}

// GetInput identifies one catch
type GetInput struct {
	Owner      string
	InstanceID uint64
}

// GetOutput defines the output for getting a catch
type GetOutput struct {
	Record *entities.CatchRecord
}

// ListByOwnerInput defines the input for listing an owner's catches
type ListByOwnerInput struct {
	Owner string
}

// ListByOwnerOutput defines the output for listing an owner's catches
type ListByOwnerOutput struct {
	Records []*entities.CatchRecord
}

// DeleteInput identifies the catch to consume
type DeleteInput struct {
	Owner      string
	InstanceID uint64
}

// DeleteOutput defines the output for consuming a catch
type DeleteOutput struct{}
