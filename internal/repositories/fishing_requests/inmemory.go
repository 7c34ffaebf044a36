package fishingrequests

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
	store map[string]entities.FishingRequest
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]entities.FishingRequest),
	}
}

// Save stores the request by value
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateRequest(input.Request); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[input.Request.PlayerID] = *input.Request

	return &SaveOutput{}, nil
}

// Get returns a copy of the player's request
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.store[input.PlayerID]
	if !ok {
		return nil, errors.NotFoundf("no fishing request for player %s", input.PlayerID)
	}
	return &GetOutput{Request: &req}, nil
}

// Export returns every request ordered by player
func (r *InMemoryRepository) Export() []*entities.FishingRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.FishingRequest, 0, len(r.store))
	for _, req := range r.store {
		req := req
		out = append(out, &req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}

// Import replaces the stored requests
func (r *InMemoryRepository) Import(reqs []*entities.FishingRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store = make(map[string]entities.FishingRequest, len(reqs))
	for _, req := range reqs {
		if req == nil || req.PlayerID == "" {
			continue
		}
		r.store[req.PlayerID] = *req
	}
}
