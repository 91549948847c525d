package domain

import "errors"

var (
	// ErrInvalidListingMode возвращается при неизвестном режиме листинга
	ErrInvalidListingMode = errors.New("domain: invalid listing mode")

	// ErrModeTermsMismatch возвращается, когда условия листинга не соответствуют его режиму
	// (не заполнены условия своего режима или заполнены условия чужого)
	ErrModeTermsMismatch = errors.New("domain: listing terms do not match its mode")

	// ErrInvalidPrice возвращается при неположительной цене за единицу
	ErrInvalidPrice = errors.New("domain: unit price must be positive")

	// ErrInvalidDurationLimit возвращается, когда maxDurationHours вне диапазона [1, 24]
	ErrInvalidDurationLimit = errors.New("domain: max duration limit out of range")

	// ErrNegativeSeats возвращается при отрицательном количестве мест
	ErrNegativeSeats = errors.New("domain: seats available cannot be negative")
)
