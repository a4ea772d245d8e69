package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// hitScript increments a counter and starts its window on the first hit in a
// single server-side step, so concurrent requests from one client cannot
// interleave between INCR and PEXPIRE.
var hitScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// RedisStore shares counters between server instances.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Hit(ctx context.Context, key string, window time.Duration) (int, time.Duration, error) {
	res, err := hitScript.Run(ctx, s.client, []string{key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to record hit: %w", err)
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("unexpected script reply length %d", len(res))
	}
	return int(res[0]), time.Duration(res[1]) * time.Millisecond, nil
}

func (s *RedisStore) Name() string {
	return "redis"
}

// Ping reports whether the store is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
