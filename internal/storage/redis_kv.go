package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisKV хранит ключи в Redis с общим префиксом.
type RedisKV struct {
	rdb    goredis.UniversalClient
	prefix string
}

// NewRedisKV подключается к Redis и проверяет соединение.
func NewRedisKV(ctx context.Context, addr, prefix string) (*RedisKV, error) {
	if addr == "" {
		return nil, fmt.Errorf("storage: не задан адрес redis")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("storage: redis ping: %w", err)
	}

	return NewRedisKVFromClient(rdb, prefix), nil
}

// NewRedisKVFromClient использует уже созданный клиент.
func NewRedisKVFromClient(rdb goredis.UniversalClient, prefix string) *RedisKV {
	return &RedisKV{rdb: rdb, prefix: prefix}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.rdb.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("storage: redis set %s: %w", key, err)
	}
	return nil
}

// Close закрывает соединение с Redis.
func (r *RedisKV) Close() error {
	return r.rdb.Close()
}
