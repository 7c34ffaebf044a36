package players

import (
	"context"
	"encoding/json"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	redisclient "github.com/tides-game/tides-api/internal/redis"
)

const (
	playerKeyPrefix = "player:"

	errPlayerNil     = "player cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed player repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{client: client}
}

func validatePlayer(p *entities.PlayerState) error {
	if p == nil {
		return errors.InvalidArgument(errPlayerNil)
	}
	if p.ID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	return nil
}

func notRegistered(playerID string) error {
	return errors.Reasonedf(errors.CodeNotFound, entities.ReasonPlayerNotRegistered,
		"player %s is not registered", playerID)
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validatePlayer(input.Player); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player")
	}

	ok, err := r.client.SetNX(ctx, playerKeyPrefix+input.Player.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create player")
	}
	if !ok {
		return nil, errors.Reasonedf(errors.CodeAlreadyExists, entities.ReasonAlreadyRegistered,
			"player %s is already registered", input.Player.ID)
	}

	return &CreateOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, playerKeyPrefix+input.PlayerID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, notRegistered(input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get player")
	}

	var player entities.PlayerState
	if err := json.Unmarshal([]byte(result), &player); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal player")
	}

	return &GetOutput{Player: &player}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validatePlayer(input.Player); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player")
	}

	// SET XX only writes when the key already exists
	ok, err := r.client.SetXX(ctx, playerKeyPrefix+input.Player.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update player")
	}
	if !ok {
		return nil, notRegistered(input.Player.ID)
	}

	return &UpdateOutput{}, nil
}
