// Package catalog caches package task catalogs in front of the CuraNest API.
package catalog

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"

	"github.com/curanest/booking-gateway/internal/domain"
)

type entry struct {
	tasks     []domain.ServiceTask
	expiresAt time.Time
}

// Cache LRU-кэш каталогов задач с TTL; параллельные промахи по одному пакету
// схлопываются в один запрос к источнику.
// Каталог пакета одинаков для всех пользователей, поэтому ключ только packageID.
// Токен вызывающего лишь авторизует запрос, ошибки (в том числе 401) не кэшируются.
type Cache struct {
	source       Source
	items        *lru.Cache
	group        singleflight.Group
	ttl          time.Duration
	metrics      Metrics
	timeProvider TimeProvider
	log          Logger
}

// NewCache создает кэш каталога
func NewCache(source Source, size int, ttl time.Duration, metrics Metrics, log Logger) (*Cache, error) {
	items, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to create lru: %w", err)
	}

	return &Cache{
		source:       source,
		items:        items,
		ttl:          ttl,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		log:          log,
	}, nil
}

// GetServiceTasks возвращает каталог задач пакета из кэша или из источника
func (c *Cache) GetServiceTasks(ctx context.Context, packageID string) ([]domain.ServiceTask, error) {
	if tasks, ok := c.lookup(packageID); ok {
		c.metrics.IncCatalogLookup(true)
		return tasks, nil
	}
	c.metrics.IncCatalogLookup(false)

	// Отмена одного вызывающего не должна обрывать общий запрос
	fetchCtx := context.WithoutCancel(ctx)
	v, err, shared := c.group.Do(packageID, func() (interface{}, error) {
		tasks, err := c.source.GetServiceTasks(fetchCtx, packageID)
		if err != nil {
			return nil, err
		}
		c.items.Add(packageID, entry{
			tasks:     cloneTasks(tasks),
			expiresAt: c.timeProvider.Now().Add(c.ttl),
		})
		return tasks, nil
	})
	if err != nil {
		c.log.Warn("Catalog.GetServiceTasks: fetch failed, package_id=%s, error=%v", packageID, err)
		return nil, err
	}
	if shared {
		c.log.Info("Catalog.GetServiceTasks: shared fetch, package_id=%s", packageID)
	}

	return cloneTasks(v.([]domain.ServiceTask)), nil
}

func (c *Cache) lookup(packageID string) ([]domain.ServiceTask, bool) {
	v, ok := c.items.Get(packageID)
	if !ok {
		return nil, false
	}

	e := v.(entry)
	if !c.timeProvider.Now().Before(e.expiresAt) {
		c.items.Remove(packageID)
		return nil, false
	}
	return cloneTasks(e.tasks), true
}

func cloneTasks(tasks []domain.ServiceTask) []domain.ServiceTask {
	out := make([]domain.ServiceTask, len(tasks))
	copy(out, tasks)
	return out
}
