package locking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/go-redis/redis/v8"
)

// RedisLocker распределённые блокировки через bsm/redislock (для backend = "redis")
type RedisLocker struct {
	locker *redislock.Client
	prefix string
	wait   time.Duration
	retry  time.Duration
}

// NewRedisLocker создает locker поверх Redis
func NewRedisLocker(client *redis.Client, prefix string, wait time.Duration) *RedisLocker {
	return &RedisLocker{
		locker: redislock.New(client),
		prefix: prefix,
		wait:   wait,
		retry:  50 * time.Millisecond,
	}
}

// Acquire пытается получить блокировку, пока не истечёт время ожидания
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (Lock, error) {
	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	lock, err := l.locker.Obtain(ctx, l.prefix+key, ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(l.retry),
	})
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: key=%s", ErrNotObtained, key)
		}
		return nil, fmt.Errorf("%w: failed to obtain key=%s: %v", ErrInternal, key, err)
	}

	return &redisLock{key: key, lock: lock}, nil
}

type redisLock struct {
	key  string
	lock *redislock.Lock
}

func (l *redisLock) Key() string {
	return l.key
}

// Release освобождает блокировку. Истёкшая по TTL блокировка не считается ошибкой.
func (l *redisLock) Release(ctx context.Context) error {
	if err := l.lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
		return fmt.Errorf("%w: failed to release key=%s: %v", ErrInternal, l.key, err)
	}
	return nil
}
