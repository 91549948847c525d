package listings

import "errors"

var (
	// ErrListingNotFound возвращается, когда листинг не найден
	ErrListingNotFound = errors.New("listings.service: listing not found")

	// ErrAccessDenied возвращается при попытке изменить чужой листинг
	ErrAccessDenied = errors.New("listings.service: access denied")

	// ErrNotFullRental возвращается при попытке переключить доступность
	// листинга, который не является full rental
	ErrNotFullRental = errors.New("listings.service: listing is not a full rental")

	// ErrHasActiveBookings возвращается при попытке удалить листинг
	// с активными бронированиями
	ErrHasActiveBookings = errors.New("listings.service: listing has active bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("listings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("listings.service: internal error")
)
