package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/local-services/internal/domain/identity"
)

const loginAttemptsPrefix = "login_attempts:"

// Counter is the part of the redis client the limiter needs.
type Counter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// LoginAttempts counts failed logins per identifier in a fixed window that
// starts at the first failure.
type LoginAttempts struct {
	rdb    Counter
	max    int
	window time.Duration
}

func NewLoginAttempts(rdb Counter, max int, window time.Duration) *LoginAttempts {
	return &LoginAttempts{rdb: rdb, max: max, window: window}
}

func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (l *LoginAttempts) Blocked(ctx context.Context, key string) (bool, error) {
	v, err := l.rdb.Get(ctx, loginAttemptsPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read login attempts: %w", err)
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return false, fmt.Errorf("parse login attempts: %w", err)
	}
	return n >= l.max, nil
}

func (l *LoginAttempts) Fail(ctx context.Context, key string) error {
	k := loginAttemptsPrefix + key
	n, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("count login attempt: %w", err)
	}
	if n == 1 {
		if err := l.rdb.Expire(ctx, k, l.window).Err(); err != nil {
			return fmt.Errorf("expire login attempts: %w", err)
		}
	}
	return nil
}

func (l *LoginAttempts) Reset(ctx context.Context, key string) error {
	if err := l.rdb.Del(ctx, loginAttemptsPrefix+key).Err(); err != nil {
		return fmt.Errorf("reset login attempts: %w", err)
	}
	return nil
}

var _ identity.AttemptLimiter = (*LoginAttempts)(nil)
