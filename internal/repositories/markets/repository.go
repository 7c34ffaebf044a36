// Package markets persists per-species market records with atomic settlement
package markets

//go:generate mockgen -destination=mock/mock_repository.go -package=marketsmock github.com/tides-game/tides-api/internal/repositories/markets Repository

import (
	"context"

	"github.com/tides-game/tides-api/internal/entities"
)

// DefaultMaxRetries bounds optimistic retries of a contended settlement
const DefaultMaxRetries = 8

// SettleFunc computes the next record from the current one.
// Returning an error aborts the settlement without a write.
type SettleFunc func(current entities.MarketRecord) (*entities.MarketRecord, error)

// Repository stores one market record per species
type Repository interface {
	// Get returns the species record; unsold species come back as a virgin record
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Settle applies fn as an atomic read-modify-write of the species record
	// Returns fn's error unchanged when fn rejects the sale
	// Returns errors.Aborted when retries are exhausted under contention
	Settle(ctx context.Context, input SettleInput) (*SettleOutput, error)

	// List returns every species that has been sold at least once, ordered by species
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput defines the input for getting a record
type GetInput struct {
	SpeciesID uint64
}

// GetOutput defines the output for getting a record
type GetOutput struct {
	Record *entities.MarketRecord
}

// SettleInput defines the input for settling a sale
type SettleInput struct {
	SpeciesID uint64
	Apply     SettleFunc
}

// SettleOutput defines the output for settling a sale
type SettleOutput struct {
	Record *entities.MarketRecord
}

// ListInput defines the input for listing records
type ListInput struct{}

// ListOutput defines the output for listing records
type ListOutput struct {
	Records []*entities.MarketRecord
}
