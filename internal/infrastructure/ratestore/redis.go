package ratestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"ebay_pricer/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const keyPrefix = "exchange_rate:"

// RedisStore хранит курсы в Redis под ключом exchange_rate:{BASE}:{QUOTE}.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, base, quote string) (entity.ExchangeRate, bool, error) {
	raw, err := s.client.Get(ctx, key(base, quote)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.ExchangeRate{}, false, nil
		}

		return entity.ExchangeRate{}, false, fmt.Errorf("redis.Get: %w", err)
	}

	var rate entity.ExchangeRate
	if err := json.Unmarshal(raw, &rate); err != nil {
		return entity.ExchangeRate{}, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return rate, true, nil
}

func (s *RedisStore) Set(ctx context.Context, rate entity.ExchangeRate, ttl time.Duration) error {
	raw, err := json.Marshal(rate)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := s.client.Set(ctx, key(rate.Base, rate.Quote), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}

func key(base, quote string) string {
	return keyPrefix + strings.ToUpper(base) + ":" + strings.ToUpper(quote)
}
