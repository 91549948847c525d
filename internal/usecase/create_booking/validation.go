package create_booking

import "fmt"

// validateRequest валидирует входные данные запроса
// Ошибки намерения (контакты, количество, способ оплаты) проверяет resolver
// против свежего снапшота листинга внутри транзакции
func validateRequest(req *Request) error {
	if req.RenterID <= 0 {
		return fmt.Errorf("%w: renterID must be positive", ErrInvalidInput)
	}

	if req.ListingID <= 0 {
		return fmt.Errorf("%w: listingID must be positive", ErrInvalidInput)
	}

	if req.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	return nil
}
