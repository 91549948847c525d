package resolver

import "errors"

var (
	// ErrListingUnavailable возвращается, когда листинг недоступен для бронирования
	// (full rental уже занят, либо гонка за последние места проиграна)
	ErrListingUnavailable = errors.New("resolver: listing is unavailable")

	// ErrMissingContactInfo возвращается при пустом телефоне или regNo
	ErrMissingContactInfo = errors.New("resolver: contact info is missing")

	// ErrDurationExceedsLimit возвращается, когда запрошенная длительность
	// превышает лимит листинга или платформенный потолок
	ErrDurationExceedsLimit = errors.New("resolver: duration exceeds listing limit")

	// ErrInsufficientSeats возвращается, когда запрошено больше мест, чем осталось
	ErrInsufficientSeats = errors.New("resolver: not enough seats available")

	// ErrInvalidPaymentMethod возвращается при нераспознанном способе оплаты
	ErrInvalidPaymentMethod = errors.New("resolver: invalid payment method")

	// ErrInvalidQuantity возвращается при количестве меньше 1
	ErrInvalidQuantity = errors.New("resolver: quantity must be at least 1")
)
