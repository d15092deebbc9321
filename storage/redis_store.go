package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "elgato:"

// RedisStore is an Adapter backed by redis. Values never expire; the
// store is the durable mirror of the in-memory state, not a cache.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (rs *RedisStore) Load(key string) ([]byte, bool, error) {
	data, err := rs.client.Get(context.Background(), redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (rs *RedisStore) Save(key string, data []byte) error {
	return rs.client.Set(context.Background(), redisKeyPrefix+key, data, 0).Err()
}

func (rs *RedisStore) Delete(key string) error {
	return rs.client.Del(context.Background(), redisKeyPrefix+key).Err()
}
