package drafts

import (
	"context"
	"time"

	"github.com/curanest/booking-gateway/internal/domain"
	"github.com/curanest/booking-gateway/internal/infra/locking"
)

// DraftStore хранилище черновиков
type DraftStore interface {
	Save(ctx context.Context, draft *domain.Draft) error
	Get(ctx context.Context, draftID string) (*domain.Draft, error)
	Delete(ctx context.Context, draftID string) error
}

// DraftLocker блокировки черновиков на время чтения-изменения-записи
type DraftLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (locking.Lock, error)
}

// CatalogProvider источник каталога задач пакета
type CatalogProvider interface {
	GetServiceTasks(ctx context.Context, packageID string) ([]domain.ServiceTask, error)
}

// Metrics бизнес-метрики черновиков
type Metrics interface {
	IncQuote()
	IncIntervalViolation()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
