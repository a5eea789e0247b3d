package curanest

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет услуг не найден
	ErrPackageNotFound = errors.New("curanest client: service package not found")

	// ErrRejected возвращается, когда бэкенд отклонил запрос (400/422)
	ErrRejected = errors.New("curanest client: request rejected")

	// ErrUnauthorized возвращается, когда бэкенд не принял токен
	ErrUnauthorized = errors.New("curanest client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("curanest client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("curanest client: invalid response")
)
