package markets

import (
	"context"
	"sort"
	"sync"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

// InMemoryRepository implements Repository with a single mutex guarding every species
type InMemoryRepository struct {
	mu    sync.Mutex
	store map[uint64]entities.MarketRecord
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[uint64]entities.MarketRecord),
	}
}

func (r *InMemoryRepository) current(speciesID uint64) entities.MarketRecord {
	if rec, ok := r.store[speciesID]; ok {
		return rec
	}
	return entities.MarketRecord{SpeciesID: speciesID}
}

// Get returns the species record
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.SpeciesID == 0 {
		return nil, errors.InvalidArgument(errSpeciesZero)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.current(input.SpeciesID)
	return &GetOutput{Record: &rec}, nil
}

// Settle runs fn under the repository lock
func (r *InMemoryRepository) Settle(_ context.Context, input SettleInput) (*SettleOutput, error) {
	if input.SpeciesID == 0 {
		return nil, errors.InvalidArgument(errSpeciesZero)
	}
	if input.Apply == nil {
		return nil, errors.InvalidArgument(errApplyNil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := input.Apply(r.current(input.SpeciesID))
	if err != nil {
		return nil, err
	}
	r.store[input.SpeciesID] = *next

	out := *next
	return &SettleOutput{Record: &out}, nil
}

// List returns sold species ordered by ID
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	return &ListOutput{Records: r.Export()}, nil
}

// Export returns every stored record ordered by species
func (r *InMemoryRepository) Export() []*entities.MarketRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entities.MarketRecord, 0, len(r.store))
	for _, rec := range r.store {
		rec := rec
		out = append(out, &rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SpeciesID < out[j].SpeciesID })
	return out
}

// Import replaces the stored records
func (r *InMemoryRepository) Import(records []*entities.MarketRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store = make(map[uint64]entities.MarketRecord, len(records))
	for _, rec := range records {
		if rec == nil || rec.SpeciesID == 0 {
			continue
		}
		r.store[rec.SpeciesID] = *rec
	}
}
