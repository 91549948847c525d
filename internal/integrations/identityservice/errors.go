package identityservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identityservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identityservice client: invalid response")

	// ErrEmailNotVerified возвращается, когда email пользователя не подтвержден
	ErrEmailNotVerified = errors.New("user email is not verified")

	// ErrServiceUnavailable возвращается, когда IdentityService недоступен
	// Вызывающая сторона обязана показать это как отдельную категорию
	// "submission failed", а не как ошибку валидации бронирования
	ErrServiceUnavailable = errors.New("identityservice unavailable")
)
