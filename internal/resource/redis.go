package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// stringGetter — часть redis.Client, нужная RedisReader.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisReader читает ресурсы из строковых ключей Redis.
type RedisReader struct {
	rdb    stringGetter
	prefix string
}

// NewRedisReader создаёт RedisReader. Имя ресурса дополняется префиксом prefix.
func NewRedisReader(rdb stringGetter, prefix string) *RedisReader {
	return &RedisReader{
		rdb:    rdb,
		prefix: prefix,
	}
}

// ReadResource возвращает значение ключа prefix+name.
func (r *RedisReader) ReadResource(ctx context.Context, name string) ([]byte, error) {
	key := r.prefix + name

	data, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("key %s: %w", key, ErrNotFound)
		}
		return nil, err
	}

	return data, nil
}
