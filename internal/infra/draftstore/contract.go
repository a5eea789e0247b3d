package draftstore

import (
	"context"
	"time"

	"github.com/curanest/booking-gateway/internal/domain"
)

// Store хранилище черновиков бронирования с ограниченным временем жизни
type Store interface {
	Save(ctx context.Context, draft *domain.Draft) error
	Get(ctx context.Context, draftID string) (*domain.Draft, error)
	Delete(ctx context.Context, draftID string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
