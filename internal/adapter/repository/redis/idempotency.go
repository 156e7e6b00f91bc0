package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "idempotency:"

	// placeholder marks a key claimed by an in-flight request that has not
	// produced a response yet.
	placeholder = "processing"
)

// IdempotencyStore implements usecase.IdempotencyStore using Redis, shared
// across process instances so a retried POST replays the recorded response
// instead of applying the transaction twice.
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// CheckAndSet atomically claims the key if it is free. It returns
// (true, recorded response or nil) when another request already holds the
// key, and (false, nil) when this request claimed it.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	fullKey := keyPrefix + key

	value := []byte(placeholder)
	if response != nil {
		value = response
	}

	claimed, err := s.client.SetNX(ctx, fullKey, value, ttl).Result()
	if err != nil {
		return false, nil, err
	}

	if claimed {
		return false, nil, nil
	}

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Holder expired between SetNX and Get.
			return true, nil, nil
		}

		return false, nil, err
	}

	if string(existing) == placeholder {
		return true, nil, nil
	}

	return true, existing, nil
}

// Update records the final response under an already claimed key.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+key, response, ttl).Err()
}

// Delete releases a claimed key. Called after a failed request so a retry
// with the same key is not stuck behind the placeholder until the TTL runs
// out.
func (s *IdempotencyStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
