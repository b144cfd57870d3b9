package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 5 * time.Second

// RedisKVStore provides simple kv store interface based on redis.
// Keys are prefixed and expire after ttl, so stale entries are dropped by the server.
type RedisKVStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisKVStore connects to redis server at given address and checks the connection.
// Zero ttl means keys never expire.
func NewRedisKVStore(ctx context.Context, address string, prefix string, ttl time.Duration) (*RedisKVStore, error) {
	if address == "" {
		return nil, fmt.Errorf("empty redis address")
	}

	client := redis.NewClient(&redis.Options{
		Addr: address,
	})

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &RedisKVStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}, nil
}

// ReadKey returns data saved for given key. Returns nil if there's no data stored.
func (s *RedisKVStore) ReadKey(key []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading from redis: %w", err)
	}

	return data, nil
}

// UpdateKey stores given data under given key.
func (s *RedisKVStore) UpdateKey(key []byte, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key(key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("writing to redis: %w", err)
	}

	return nil
}

// Close closes redis connection pool.
func (s *RedisKVStore) Close() error {
	return s.client.Close()
}

func (s *RedisKVStore) key(key []byte) string {
	return s.prefix + string(key)
}
