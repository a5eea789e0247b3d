package get_draft

import (
	"context"

	"github.com/curanest/booking-gateway/internal/service/drafts/models"
)

// DraftService интерфейс сервиса черновиков
type DraftService interface {
	Get(ctx context.Context, draftID, userID string) (*models.DraftResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
