package draftstore

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/curanest/booking-gateway/internal/domain"
)

type memoryEntry struct {
	draft     *domain.Draft
	expiresAt time.Time
}

// MemoryStore хранит черновики в LRU-кэше процесса
type MemoryStore struct {
	cache        *lru.Cache
	ttl          time.Duration
	timeProvider TimeProvider
}

// NewMemoryStore создает in-memory хранилище на maxItems черновиков
func NewMemoryStore(maxItems int, ttl time.Duration) (*MemoryStore, error) {
	cache, err := lru.New(maxItems)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create lru: %v", ErrInternal, err)
	}

	return &MemoryStore{
		cache:        cache,
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
	}, nil
}

// Save сохраняет черновик и продлевает его время жизни
func (s *MemoryStore) Save(_ context.Context, draft *domain.Draft) error {
	s.cache.Add(draft.ID, &memoryEntry{
		draft:     draft.Clone(),
		expiresAt: s.timeProvider.Now().Add(s.ttl),
	})
	return nil
}

// Get возвращает копию черновика
func (s *MemoryStore) Get(_ context.Context, draftID string) (*domain.Draft, error) {
	result, ok := s.cache.Get(draftID)
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrDraftNotFound, draftID)
	}

	entry, ok := result.(*memoryEntry)
	if !ok {
		return nil, fmt.Errorf("%w: cache entry was not a draft", ErrInternal)
	}

	if !s.timeProvider.Now().Before(entry.expiresAt) {
		s.cache.Remove(draftID)
		return nil, fmt.Errorf("%w: id=%s (expired)", ErrDraftNotFound, draftID)
	}

	return entry.draft.Clone(), nil
}

// Delete удаляет черновик
func (s *MemoryStore) Delete(_ context.Context, draftID string) error {
	s.cache.Remove(draftID)
	return nil
}
