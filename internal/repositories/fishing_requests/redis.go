package fishingrequests

import (
	"context"
	"encoding/json"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	redisclient "github.com/tides-game/tides-api/internal/redis"
)

const (
	requestKeyPrefix = "fishing:player:"

	errRequestNil    = "request cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed request repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{client: client}
}

func validateRequest(req *entities.FishingRequest) error {
	if req == nil {
		return errors.InvalidArgument(errRequestNil)
	}
	if req.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	return nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateRequest(input.Request); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Request)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal fishing request")
	}

	if err := r.client.Set(ctx, requestKeyPrefix+input.Request.PlayerID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save fishing request")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, requestKeyPrefix+input.PlayerID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("no fishing request for player %s", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get fishing request")
	}

	var req entities.FishingRequest
	if err := json.Unmarshal([]byte(result), &req); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal fishing request")
	}

	return &GetOutput{Request: &req}, nil
}
