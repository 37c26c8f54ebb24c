// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/tomtranjr/msds601-highdim-group9/fullrank"
)

// DefaultKeyPrefix namespaces session keys in Redis.
const DefaultKeyPrefix = "highdim:session:"

// RedisStore is a Store backed by Redis. Values are JSON-encoded states.
type RedisStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisStore returns a store using client. An empty prefix selects
// DefaultKeyPrefix; ttl <= 0 stores keys without expiry.
func NewRedisStore(client redis.Cmdable, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

// Key returns the Redis key for a session ID.
func (s *RedisStore) Key(id string) string { return s.prefix + id }

// Load fetches and decodes the state for id.
func (s *RedisStore) Load(ctx context.Context, id string) (fullrank.State, bool, error) {
	val, err := s.client.Get(ctx, s.Key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return fullrank.State{}, false, nil
		}
		return fullrank.State{}, false, fmt.Errorf("redis get: %w", err)
	}
	var st fullrank.State
	if err = json.Unmarshal(val, &st); err != nil {
		return fullrank.State{}, false, fmt.Errorf("%w: %w", ErrCorruptState, err)
	}

	return st, true, nil
}

// Save encodes state and writes it with the store TTL.
func (s *RedisStore) Save(ctx context.Context, id string, state fullrank.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err = s.client.Set(ctx, s.Key(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// Delete removes id.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.Key(id)).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}

	return nil
}

// Ping checks connectivity; used by the health endpoint.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
