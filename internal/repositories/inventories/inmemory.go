package inventories

import (
	"context"
	"sort"
	"sync"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.InventoryGrid
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.InventoryGrid),
	}
}

// Save stores a copy of the grid
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateGrid(input.Grid); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[input.Grid.PlayerID] = input.Grid.Clone()

	return &SaveOutput{}, nil
}

// Get returns a copy of the player's grid
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	grid, ok := r.store[input.PlayerID]
	if !ok {
		return nil, errors.NotFoundf("no inventory for player %s", input.PlayerID)
	}
	return &GetOutput{Grid: grid.Clone()}, nil
}

// Export returns copies of every grid ordered by player
func (r *InMemoryRepository) Export() []*entities.InventoryGrid {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.InventoryGrid, 0, len(r.store))
	for _, g := range r.store {
		out = append(out, g.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}

// Import replaces the stored grids
func (r *InMemoryRepository) Import(grids []*entities.InventoryGrid) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store = make(map[string]*entities.InventoryGrid, len(grids))
	for _, g := range grids {
		if g == nil || g.PlayerID == "" {
			continue
		}
		r.store[g.PlayerID] = g.Clone()
	}
}
