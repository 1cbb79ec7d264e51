package rulestate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	traiterr "github.com/KirkDiggler/talent-traits/internal/errors"
	"github.com/KirkDiggler/talent-traits/internal/rewards"
)

// Data is the serialized form of the rule state in Redis
type Data struct {
	SaveID    string                     `json:"save_id"`
	Imported  bool                       `json:"imported"`
	Rewards   map[string][]rewards.Entry `json:"rewards"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedis creates a Redis-backed rule state repository. A nil time
// provider uses the system clock.
func NewRedis(client redis.UniversalClient, timeProvider TimeProvider) Repository {
	if client == nil {
		panic("Redis client cannot be nil")
	}
	if timeProvider == nil {
		timeProvider = systemTime{}
	}
	return &redisRepo{
		client:       client,
		timeProvider: timeProvider,
	}
}

func (r *redisRepo) key(saveID string) string {
	return fmt.Sprintf("rule_state:%s", saveID)
}

func (r *redisRepo) Save(ctx context.Context, saveID string, state *rewards.State) error {
	if saveID == "" {
		return traiterr.InvalidArgument("save ID is required")
	}
	if state == nil {
		return traiterr.InvalidArgument("rule state cannot be nil")
	}

	data := Data{
		SaveID:    saveID,
		Imported:  state.Imported,
		Rewards:   state.Rewards,
		UpdatedAt: r.timeProvider.Now(),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return traiterr.WrapWithCode(err, traiterr.CodeInternal, "failed to marshal rule state")
	}

	if err := r.client.Set(ctx, r.key(saveID), string(jsonData), 0).Err(); err != nil {
		return traiterr.WrapWithCode(err, traiterr.CodeUnavailable, "failed to save rule state to Redis").
			WithMeta("save_id", saveID)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, saveID string) (*rewards.State, error) {
	if saveID == "" {
		return nil, traiterr.InvalidArgument("save ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(saveID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, traiterr.NotFoundf("rule state for save %s not found", saveID)
		}
		return nil, traiterr.WrapWithCode(err, traiterr.CodeUnavailable, "failed to get rule state from Redis").
			WithMeta("save_id", saveID)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, traiterr.WrapWithCode(err, traiterr.CodeInternal, "failed to unmarshal rule state")
	}

	rewardsCopy := data.Rewards
	if rewardsCopy == nil {
		rewardsCopy = make(map[string][]rewards.Entry)
	}

	return &rewards.State{
		Imported: data.Imported,
		Rewards:  rewardsCopy,
	}, nil
}

func (r *redisRepo) Delete(ctx context.Context, saveID string) error {
	deleted, err := r.client.Del(ctx, r.key(saveID)).Result()
	if err != nil {
		return traiterr.WrapWithCode(err, traiterr.CodeUnavailable, "failed to delete rule state from Redis").
			WithMeta("save_id", saveID)
	}
	if deleted == 0 {
		return traiterr.NotFoundf("rule state for save %s not found", saveID)
	}
	return nil
}
