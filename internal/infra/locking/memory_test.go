package locking

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker_SerializesSameKey(t *testing.T) {
	locker := NewMemoryLocker(time.Second)
	ctx := context.Background()

	var (
		inside  int32
		maxSeen int32
		wg      sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lock, err := locker.Acquire(ctx, DraftKey("d1"), time.Minute)
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				seen := atomic.LoadInt32(&maxSeen)
				if n <= seen || atomic.CompareAndSwapInt32(&maxSeen, seen, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&inside, -1)
			assert.NoError(t, lock.Release(ctx))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen)
	assert.Empty(t, locker.slots, "released keys are forgotten")
}

func TestMemoryLocker_DifferentKeysDoNotBlock(t *testing.T) {
	locker := NewMemoryLocker(10 * time.Millisecond)
	ctx := context.Background()

	first, err := locker.Acquire(ctx, DraftKey("d1"), time.Minute)
	require.NoError(t, err)
	second, err := locker.Acquire(ctx, DraftKey("d2"), time.Minute)
	require.NoError(t, err)

	assert.Equal(t, "draft:d2", second.Key())
	require.NoError(t, first.Release(ctx))
	require.NoError(t, second.Release(ctx))
}

func TestMemoryLocker_WaitExpires(t *testing.T) {
	locker := NewMemoryLocker(20 * time.Millisecond)
	ctx := context.Background()

	held, err := locker.Acquire(ctx, DraftKey("d1"), time.Minute)
	require.NoError(t, err)

	_, err = locker.Acquire(ctx, DraftKey("d1"), time.Minute)
	assert.ErrorIs(t, err, ErrNotObtained)

	require.NoError(t, held.Release(ctx))
	require.NoError(t, held.Release(ctx), "release is idempotent")

	again, err := locker.Acquire(ctx, DraftKey("d1"), time.Minute)
	require.NoError(t, err)
	require.NoError(t, again.Release(ctx))
}
