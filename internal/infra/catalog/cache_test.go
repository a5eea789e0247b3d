package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curanest/booking-gateway/internal/domain"
	"github.com/curanest/booking-gateway/internal/integrations/curanest"
	"github.com/curanest/booking-gateway/pkg/logger"
)

type fakeSource struct {
	calls atomic.Int32
	delay time.Duration
	err   error
}

func (s *fakeSource) GetServiceTasks(ctx context.Context, packageID string) ([]domain.ServiceTask, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	return []domain.ServiceTask{{ID: packageID + "-task", PackageID: packageID}}, nil
}

type fakeMetrics struct {
	mu         sync.Mutex
	hits, miss int
}

func (m *fakeMetrics) IncCatalogLookup(hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if hit {
		m.hits++
	} else {
		m.miss++
	}
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

func newTestCache(t *testing.T, source Source, metrics Metrics) (*Cache, *fixedTime) {
	t.Helper()
	c, err := NewCache(source, 8, time.Minute, metrics, logger.NewNop())
	require.NoError(t, err)
	clock := &fixedTime{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	c.timeProvider = clock
	return c, clock
}

func TestCache_HitAfterMiss(t *testing.T) {
	source := &fakeSource{}
	metrics := &fakeMetrics{}
	c, _ := newTestCache(t, source, metrics)

	first, err := c.GetServiceTasks(context.Background(), "pkg-1")
	require.NoError(t, err)
	second, err := c.GetServiceTasks(context.Background(), "pkg-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), source.calls.Load())
	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, 1, metrics.miss)
}

func TestCache_ExpiredEntryIsRefetched(t *testing.T) {
	source := &fakeSource{}
	c, clock := newTestCache(t, source, &fakeMetrics{})

	_, err := c.GetServiceTasks(context.Background(), "pkg-1")
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Minute)
	_, err = c.GetServiceTasks(context.Background(), "pkg-1")
	require.NoError(t, err)

	assert.Equal(t, int32(2), source.calls.Load())
}

func TestCache_ReturnedSliceIsACopy(t *testing.T) {
	c, _ := newTestCache(t, &fakeSource{}, &fakeMetrics{})

	tasks, err := c.GetServiceTasks(context.Background(), "pkg-1")
	require.NoError(t, err)
	tasks[0].Name = "mutated"

	again, err := c.GetServiceTasks(context.Background(), "pkg-1")
	require.NoError(t, err)
	assert.Empty(t, again[0].Name)
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	source := &fakeSource{err: errors.New("boom")}
	c, _ := newTestCache(t, source, &fakeMetrics{})

	_, err := c.GetServiceTasks(context.Background(), "pkg-1")
	require.Error(t, err)

	source.err = nil
	tasks, err := c.GetServiceTasks(context.Background(), "pkg-1")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestCache_ConcurrentMissesShareOneFetch(t *testing.T) {
	source := &fakeSource{delay: 50 * time.Millisecond}
	c, _ := newTestCache(t, source, &fakeMetrics{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.GetServiceTasks(context.Background(), "pkg-1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, source.calls.Load(), int32(2))
}

type tokenSource struct {
	mu     sync.Mutex
	tokens []string
}

func (s *tokenSource) GetServiceTasks(ctx context.Context, packageID string) ([]domain.ServiceTask, error) {
	token := curanest.AccessTokenFromContext(ctx)
	s.mu.Lock()
	s.tokens = append(s.tokens, token)
	s.mu.Unlock()

	if token != "good" {
		return nil, curanest.ErrUnauthorized
	}
	return []domain.ServiceTask{{ID: packageID + "-task", PackageID: packageID}}, nil
}

func TestCache_CatalogIsSharedButRejectedTokensAreNot(t *testing.T) {
	source := &tokenSource{}
	c, _ := newTestCache(t, source, &fakeMetrics{})

	_, err := c.GetServiceTasks(curanest.WithAccessToken(context.Background(), "expired"), "pkg-1")
	assert.ErrorIs(t, err, curanest.ErrUnauthorized)

	tasks, err := c.GetServiceTasks(curanest.WithAccessToken(context.Background(), "good"), "pkg-1")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	tasks, err = c.GetServiceTasks(curanest.WithAccessToken(context.Background(), "other-user"), "pkg-1")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	assert.Equal(t, []string{"expired", "good"}, source.tokens)
}
