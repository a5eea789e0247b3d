package submit_draft

import (
	"context"
	"time"

	"github.com/curanest/booking-gateway/internal/domain"
	"github.com/curanest/booking-gateway/internal/infra/locking"
	"github.com/curanest/booking-gateway/internal/integrations/curanest"
)

// DraftStore хранилище черновиков
type DraftStore interface {
	Get(ctx context.Context, draftID string) (*domain.Draft, error)
	Delete(ctx context.Context, draftID string) error
}

// DraftLocker блокировка черновика на время отправки
type DraftLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (locking.Lock, error)
}

// SubmissionRepository интерфейс журнала отправленных бронирований
type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.Submission) (*domain.Submission, error)
}

// BackendClient интерфейс клиента CuraNest API
type BackendClient interface {
	CreateCustomerPackage(ctx context.Context, payload curanest.CreateCusPackageRequest) (*curanest.CusPackage, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчик отправок по результату
type Metrics interface {
	IncSubmission(result string)
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
