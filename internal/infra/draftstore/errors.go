package draftstore

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истёк
	ErrDraftNotFound = errors.New("draftstore: draft not found")

	// ErrInternal возвращается при внутренних ошибках хранилища
	ErrInternal = errors.New("draftstore: internal error")
)
