package locking

import "errors"

var (
	// ErrNotObtained возвращается, когда блокировку не удалось получить за время ожидания
	ErrNotObtained = errors.New("locking: lock not obtained")

	// ErrInternal возвращается при ошибках хранилища блокировок
	ErrInternal = errors.New("locking: internal error")
)
