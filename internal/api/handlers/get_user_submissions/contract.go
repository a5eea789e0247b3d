package get_user_submissions

import (
	"context"

	"github.com/curanest/booking-gateway/internal/service/submissions/models"
)

// SubmissionService интерфейс сервиса журнала отправок
type SubmissionService interface {
	GetUserSubmissions(ctx context.Context, req *models.GetUserSubmissionsRequest) (*models.SubmissionListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
