package submissions

import (
	"context"

	"github.com/curanest/booking-gateway/internal/domain"
)

// SubmissionRepository интерфейс журнала отправленных бронирований
type SubmissionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Submission, error)
	GetByUserID(ctx context.Context, userID string) ([]*domain.Submission, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
