package inventories

import (
	"context"
	"encoding/json"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	redisclient "github.com/tides-game/tides-api/internal/redis"
)

const (
	inventoryKeyPrefix = "inventory:player:"

	errGridNil       = "grid cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed inventory repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{client: client}
}

func validateGrid(g *entities.InventoryGrid) error {
	if g == nil {
		return errors.InvalidArgument(errGridNil)
	}
	if g.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	return nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateGrid(input.Grid); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Grid)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal grid")
	}

	if err := r.client.Set(ctx, inventoryKeyPrefix+input.Grid.PlayerID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save grid")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, inventoryKeyPrefix+input.PlayerID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("no inventory for player %s", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get grid")
	}

	var grid entities.InventoryGrid
	if err := json.Unmarshal([]byte(result), &grid); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal grid")
	}

	return &GetOutput{Grid: &grid}, nil
}
