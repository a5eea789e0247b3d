package delete_draft

import "context"

// DraftService интерфейс сервиса черновиков
type DraftService interface {
	Delete(ctx context.Context, draftID, userID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
