package create_booking

import "errors"

// Ошибки валидации намерения бронирования (ListingUnavailable,
// MissingContactInfo, DurationExceedsLimit, InsufficientSeats,
// InvalidPaymentMethod) пробрасываются из пакета resolver без подмены

var (
	// ErrListingNotFound возвращается, когда листинг не найден
	ErrListingNotFound = errors.New("create_booking: listing not found")

	// ErrOwnListing возвращается при попытке забронировать собственный листинг
	ErrOwnListing = errors.New("create_booking: cannot book your own listing")

	// ErrUserNotFound возвращается, когда арендатор не найден в IdentityService
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrEmailNotVerified возвращается, когда email арендатора не подтвержден
	ErrEmailNotVerified = errors.New("create_booking: user email is not verified")

	// ErrIdentityUnavailable возвращается при недоступности IdentityService
	// Отдельная категория "submission failed", не ошибка валидации
	ErrIdentityUnavailable = errors.New("create_booking: identity service unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
