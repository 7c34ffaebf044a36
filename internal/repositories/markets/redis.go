package markets

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/tides-game/tides-api/internal/entities"
	"github.com/tides-game/tides-api/internal/errors"
	redisclient "github.com/tides-game/tides-api/internal/redis"
)

const (
	marketKeyPrefix = "market:species:"

	errSpeciesZero = "species ID must be positive"
	errApplyNil    = "settle function is required"
)

type redisRepository struct {
	client     redisclient.Client
	maxRetries int
}

// NewRedisRepository creates a Redis-backed market repository.
// Settlements use WATCH/MULTI and retry up to maxRetries times.
func NewRedisRepository(client redisclient.Client, maxRetries int) Repository {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &redisRepository{client: client, maxRetries: maxRetries}
}

func marketKey(speciesID uint64) string {
	return marketKeyPrefix + strconv.FormatUint(speciesID, 10)
}

func readRecord(ctx context.Context, c goredis.Cmdable, speciesID uint64) (entities.MarketRecord, error) {
	result, err := c.Get(ctx, marketKey(speciesID)).Result()
	if err == redisclient.Nil {
		return entities.MarketRecord{SpeciesID: speciesID}, nil
	}
	if err != nil {
		return entities.MarketRecord{}, errors.Wrapf(err, "failed to get market record")
	}

	var rec entities.MarketRecord
	if err := json.Unmarshal([]byte(result), &rec); err != nil {
		return entities.MarketRecord{}, errors.Wrapf(err, "failed to unmarshal market record")
	}
	return rec, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SpeciesID == 0 {
		return nil, errors.InvalidArgument(errSpeciesZero)
	}

	rec, err := readRecord(ctx, r.client, input.SpeciesID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Record: &rec}, nil
}

func (r *redisRepository) Settle(ctx context.Context, input SettleInput) (*SettleOutput, error) {
	if input.SpeciesID == 0 {
		return nil, errors.InvalidArgument(errSpeciesZero)
	}
	if input.Apply == nil {
		return nil, errors.InvalidArgument(errApplyNil)
	}

	key := marketKey(input.SpeciesID)
	for attempt := 0; attempt < r.maxRetries; attempt++ {
		var updated *entities.MarketRecord

		err := r.client.Watch(ctx, func(tx *goredis.Tx) error {
			current, err := readRecord(ctx, tx, input.SpeciesID)
			if err != nil {
				return err
			}

			next, err := input.Apply(current)
			if err != nil {
				return err
			}

			data, err := json.Marshal(next)
			if err != nil {
				return errors.Wrapf(err, "failed to marshal market record")
			}

			_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
				pipe.Set(ctx, key, data, 0)
				return nil
			})
			if err != nil {
				return err
			}

			updated = next
			return nil
		}, key)

		if err == nil {
			return &SettleOutput{Record: updated}, nil
		}
		if err == redisclient.TxFailedErr {
			continue
		}
		var coded *errors.Error
		if errors.As(err, &coded) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to settle market")
	}

	return nil, errors.Abortedf("market for species %d is contended, gave up after %d attempts",
		input.SpeciesID, r.maxRetries)
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	var records []*entities.MarketRecord

	iter := r.client.Scan(ctx, 0, marketKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		result, err := r.client.Get(ctx, iter.Val()).Result()
		if err == redisclient.Nil {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get market record")
		}

		var rec entities.MarketRecord
		if err := json.Unmarshal([]byte(result), &rec); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal market record")
		}
		records = append(records, &rec)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan market records")
	}

	sort.Slice(records, func(i, j int) bool { return records[i].SpeciesID < records[j].SpeciesID })
	return &ListOutput{Records: records}, nil
}
