package locking

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type memorySlot struct {
	ch   chan struct{}
	refs int
}

// MemoryLocker блокировки внутри процесса (для backend = "memory")
type MemoryLocker struct {
	mu    sync.Mutex
	slots map[string]*memorySlot
	wait  time.Duration
}

// NewMemoryLocker создает locker, который ждёт освобождения ключа не дольше wait
func NewMemoryLocker(wait time.Duration) *MemoryLocker {
	return &MemoryLocker{
		slots: make(map[string]*memorySlot),
		wait:  wait,
	}
}

// Acquire ждёт освобождения ключа. ttl не используется: блокировка живёт до Release.
func (l *MemoryLocker) Acquire(ctx context.Context, key string, _ time.Duration) (Lock, error) {
	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	slot := l.ref(key)
	select {
	case slot.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(key)
		return nil, fmt.Errorf("%w: key=%s: %v", ErrNotObtained, key, ctx.Err())
	}

	var once sync.Once
	return &memoryLock{
		key: key,
		release: func() {
			once.Do(func() {
				<-slot.ch
				l.unref(key)
			})
		},
	}, nil
}

func (l *MemoryLocker) ref(key string) *memorySlot {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[key]
	if !ok {
		slot = &memorySlot{ch: make(chan struct{}, 1)}
		l.slots[key] = slot
	}
	slot.refs++
	return slot
}

func (l *MemoryLocker) unref(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[key]
	if !ok {
		return
	}
	slot.refs--
	if slot.refs == 0 {
		delete(l.slots, key)
	}
}

type memoryLock struct {
	key     string
	release func()
}

func (l *memoryLock) Key() string {
	return l.key
}

func (l *memoryLock) Release(_ context.Context) error {
	l.release()
	return nil
}
