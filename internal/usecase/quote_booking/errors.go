package quote_booking

import "errors"

// Ошибки количества (DurationExceedsLimit, InsufficientSeats,
// InvalidQuantity) пробрасываются из пакета resolver без подмены

var (
	// ErrListingNotFound возвращается, когда листинг не найден
	ErrListingNotFound = errors.New("quote_booking: listing not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_booking: internal error")
)
