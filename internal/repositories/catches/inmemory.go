package catches

import (
	"context"
	"sort"
	"sync"

	"github.com/tides-game/tides-api/internal/entities"
)

type catchKey struct {
	owner      string
	instanceID uint64
}

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[catchKey]entities.CatchRecord
}

// NewInMemory creates a new in-memory ledger
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[catchKey]entities.CatchRecord),
	}
}

// Create records a catch
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	key := catchKey{input.Record.Owner, input.Record.InstanceID}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[key]; exists {
		return nil, catchExists(key.owner, key.instanceID)
	}
	r.store[key] = *input.Record

	return &CreateOutput{}, nil
}

// Get returns a copy of one catch
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.Owner, input.InstanceID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.store[catchKey{input.Owner, input.InstanceID}]
	if !ok {
		return nil, catchNotFound(input.Owner, input.InstanceID)
	}
	return &GetOutput{Record: &rec}, nil
}

// ListByOwner returns the owner's catches
func (r *InMemoryRepository) ListByOwner(_ context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if err := validateKey(input.Owner, 1); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entities.CatchRecord
	for key, rec := range r.store {
		if key.owner != input.Owner {
			continue
		}
		rec := rec
		out = append(out, &rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InstanceID < out[j].InstanceID })

	return &ListByOwnerOutput{Records: out}, nil
}

// Delete consumes a catch
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.Owner, input.InstanceID); err != nil {
		return nil, err
	}

	key := catchKey{input.Owner, input.InstanceID}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[key]; !ok {
		return nil, catchNotFound(input.Owner, input.InstanceID)
	}
	delete(r.store, key)

	return &DeleteOutput{}, nil
}

// Export returns every catch ordered by owner then instance
func (r *InMemoryRepository) Export() []*entities.CatchRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.CatchRecord, 0, len(r.store))
	for _, rec := range r.store {
		rec := rec
		out = append(out, &rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Owner != out[j].Owner {
			return out[i].Owner < out[j].Owner
		}
		return out[i].InstanceID < out[j].InstanceID
	})
	return out
}

// Import replaces the stored catches
func (r *InMemoryRepository) Import(records []*entities.CatchRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store = make(map[catchKey]entities.CatchRecord, len(records))
	for _, rec := range records {
		if validateRecord(rec) != nil {
			continue
		}
		r.store[catchKey{rec.Owner, rec.InstanceID}] = *rec
	}
}
