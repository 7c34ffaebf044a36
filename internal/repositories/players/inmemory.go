package players

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
	store map[string]*entities.PlayerState
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.PlayerState),
	}
}

// Create stores a new player
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validatePlayer(input.Player); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Player.ID]; exists {
		return nil, errors.Reasonedf(errors.CodeAlreadyExists, entities.ReasonAlreadyRegistered,
			"player %s is already registered", input.Player.ID)
	}
	r.store[input.Player.ID] = input.Player.Clone()

	return &CreateOutput{}, nil
}

// Get retrieves a copy of a player
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	player, exists := r.store[input.PlayerID]
	if !exists {
		return nil, notRegistered(input.PlayerID)
	}

	return &GetOutput{Player: player.Clone()}, nil
}

// Update replaces an existing player
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validatePlayer(input.Player); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Player.ID]; !exists {
		return nil, notRegistered(input.Player.ID)
	}
	r.store[input.Player.ID] = input.Player.Clone()

	return &UpdateOutput{}, nil
}

// Export returns copies of every stored player ordered by ID
func (r *InMemoryRepository) Export() []*entities.PlayerState {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.PlayerState, 0, len(r.store))
	for _, p := range r.store {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Import replaces the stored players
func (r *InMemoryRepository) Import(players []*entities.PlayerState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store = make(map[string]*entities.PlayerState, len(players))
	for _, p := range players {
		if p == nil || p.ID == "" {
			continue
		}
		r.store[p.ID] = p.Clone()
	}
}
