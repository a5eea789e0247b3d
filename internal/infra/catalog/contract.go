package catalog

import (
	"context"
	"time"

	"github.com/curanest/booking-gateway/internal/domain"
)

// Source источник каталога задач (клиент CuraNest)
type Source interface {
	GetServiceTasks(ctx context.Context, packageID string) ([]domain.ServiceTask, error)
}

// Metrics счётчики попаданий в кэш
type Metrics interface {
	IncCatalogLookup(hit bool)
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
