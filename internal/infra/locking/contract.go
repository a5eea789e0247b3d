package locking

import (
	"context"
	"time"
)

// Locker выдаёт эксклюзивные блокировки по ключу
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (Lock, error)
}

// Lock удерживаемая блокировка
type Lock interface {
	Key() string
	Release(ctx context.Context) error
}

// DraftKey ключ блокировки черновика
func DraftKey(draftID string) string {
	return "draft:" + draftID
}
