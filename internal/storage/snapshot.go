package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// SnapshotStore keeps the last known value per key.
type SnapshotStore interface {

	// Load returns the value stored for the key.
	// If the key is not found, it returns false and no error.
	Load(ctx context.Context, key string) (string, bool, error)

	// Save sets/updates the value stored for the key.
	Save(ctx context.Context, key, value string) error
}

type InMemorySnapshotStore struct {
	storage Storage[string, string]
}

func NewInMemorySnapshotStore() *InMemorySnapshotStore {
	return &InMemorySnapshotStore{storage: NewInMemoryStorage[string, string]()}
}

func (s *InMemorySnapshotStore) Load(_ context.Context, key string) (string, bool, error) {
	value, ok := s.storage.Get(key)
	return value, ok, nil
}

func (s *InMemorySnapshotStore) Save(_ context.Context, key, value string) error {
	s.storage.Set(key, value)
	return nil
}

type RedisSnapshotStore struct {
	client *redis.Client
}

func NewRedisSnapshotStore(client *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client}
}

func (s *RedisSnapshotStore) Load(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}

	return value, true, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}

	return nil
}

// Ping checks the connection to redis.
func (s *RedisSnapshotStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
