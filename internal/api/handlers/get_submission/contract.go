package get_submission

import (
	"context"

	"github.com/curanest/booking-gateway/internal/service/submissions/models"
)

// SubmissionService интерфейс сервиса журнала отправок
type SubmissionService interface {
	GetByID(ctx context.Context, id int64, userID string) (*models.SubmissionResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
