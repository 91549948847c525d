package list_catalog

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных критериях
	ErrInvalidInput = errors.New("list_catalog: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("list_catalog: internal error")
)
