package draftstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"

	"github.com/curanest/booking-gateway/internal/domain"
)

// RedisStore хранит черновики в Redis (msgpack через go-redis/cache)
type RedisStore struct {
	cache  *cache.Cache
	prefix string
	ttl    time.Duration
}

// NewRedisStore создает хранилище черновиков поверх Redis
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return newRedisStore(cache.New(&cache.Options{
		Redis: client,
	}), prefix, ttl)
}

func newRedisStore(c *cache.Cache, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		cache:  c,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Save сохраняет черновик и продлевает его время жизни
func (s *RedisStore) Save(ctx context.Context, draft *domain.Draft) error {
	err := s.cache.Set(&cache.Item{
		Ctx:   ctx,
		Key:   s.key(draft.ID),
		Value: draft,
		TTL:   s.ttl,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to save draft id=%s: %v", ErrInternal, draft.ID, err)
	}
	return nil
}

// Get возвращает черновик
func (s *RedisStore) Get(ctx context.Context, draftID string) (*domain.Draft, error) {
	var draft domain.Draft
	if err := s.cache.Get(ctx, s.key(draftID), &draft); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, fmt.Errorf("%w: id=%s", ErrDraftNotFound, draftID)
		}
		return nil, fmt.Errorf("%w: failed to load draft id=%s: %v", ErrInternal, draftID, err)
	}

	normalize(&draft)
	return &draft, nil
}

// Delete удаляет черновик
func (s *RedisStore) Delete(ctx context.Context, draftID string) error {
	if err := s.cache.Delete(ctx, s.key(draftID)); err != nil {
		return fmt.Errorf("%w: failed to delete draft id=%s: %v", ErrInternal, draftID, err)
	}
	return nil
}

func (s *RedisStore) key(draftID string) string {
	return s.prefix + draftID
}

// normalize приводит декодированные msgpack времена (в локальной зоне) обратно к UTC
func normalize(d *domain.Draft) {
	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = d.UpdatedAt.UTC()
	for i := range d.Occurrences {
		d.Occurrences[i].Date = domain.DateOnly(d.Occurrences[i].Date.UTC())
	}
}
