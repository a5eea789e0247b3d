package submit_draft

import (
	"context"

	submitDraft "github.com/curanest/booking-gateway/internal/usecase/submit_draft"
)

// SubmitDraftUseCase интерфейс use case отправки черновика
type SubmitDraftUseCase interface {
	Execute(ctx context.Context, req *submitDraft.Request) (*submitDraft.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
