package add_task

import (
	"context"

	"github.com/curanest/booking-gateway/internal/service/drafts/models"
)

// DraftService интерфейс сервиса черновиков
type DraftService interface {
	AddTask(ctx context.Context, draftID, userID, taskID string) (*models.DraftResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
