package submission

import "errors"

var (
	// ErrSubmissionNotFound возвращается, когда отправленное бронирование не найдено
	ErrSubmissionNotFound = errors.New("submission.repository: submission not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("submission.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("submission.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("submission.repository: failed to scan row")
)
