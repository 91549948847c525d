// Package resolver содержит чистую логику каталога и бронирования:
// отбор листингов, расчет стоимости и валидацию намерения бронирования.
//
// Пакет не выполняет I/O и работает со снапшотом каталога, переданным
// вызывающей стороной. Снапшот может устареть к моменту фактического
// сохранения бронирования, поэтому usecase обязан повторно получить листинг
// (с блокировкой) непосредственно перед записью и проиграть валидацию заново.
package resolver

import (
	"sort"

	"github.com/geargik/GearGik-BookingService/internal/domain"
)

// FilterCatalog отбирает листинги, подходящие под критерии, и сортирует их
// по возрастанию цены за единицу (за час или за место в зависимости от режима).
// Сортировка стабильная: при равной цене сохраняется исходный порядок.
// Пустой вход дает пустой выход, ошибок не бывает.
func FilterCatalog(listings []domain.Listing, criteria Criteria) []domain.Listing {
	result := make([]domain.Listing, 0, len(listings))

	for _, l := range listings {
		if l.Mode != criteria.Mode {
			continue
		}

		if criteria.VehicleType != "" && criteria.VehicleType != domain.VehicleTypeAll &&
			l.VehicleType != criteria.VehicleType {
			continue
		}

		switch criteria.Mode {
		case domain.ModeFullRental:
			if criteria.RequiredDurationHours > 0 && l.MaxDuration() < criteria.RequiredDurationHours {
				continue
			}
		case domain.ModeSeatShare:
			if l.SeatShare == nil || l.SeatShare.SeatsAvailable <= 0 {
				continue
			}
		}

		result = append(result, l)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UnitPrice() < result[j].UnitPrice()
	})

	return result
}

// QuoteCost вычисляет полную стоимость бронирования: quantity умножить на цену
// за единицу. Всегда считает с нуля от канонического листинга и количества,
// никогда не модифицирует предыдущий результат.
//
// quantity интерпретируется как часы для full_rental и как места для seat_share.
func QuoteCost(listing domain.Listing, quantity int) (int64, error) {
	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}

	switch listing.Mode {
	case domain.ModeFullRental:
		if quantity > listing.MaxDuration() {
			return 0, ErrDurationExceedsLimit
		}
	case domain.ModeSeatShare:
		if listing.SeatShare == nil || quantity > listing.SeatShare.SeatsAvailable {
			return 0, ErrInsufficientSeats
		}
	default:
		return 0, domain.ErrInvalidListingMode
	}

	return int64(quantity) * listing.UnitPrice(), nil
}

// ValidateBookingIntent проверяет намерение бронирования против снапшота
// листинга. Проверки выполняются по порядку с остановкой на первой ошибке:
//
//  1. доступность листинга - ErrListingUnavailable
//  2. контактные данные - ErrMissingContactInfo
//  3. количество (как в QuoteCost) - ErrDurationExceedsLimit / ErrInsufficientSeats
//  4. способ оплаты - ErrInvalidPaymentMethod
//
// Ошибки никогда не маскируются и не подменяются одна другой.
// При успехе возвращается нормализованный запрос с пересчитанной стоимостью.
func ValidateBookingIntent(intent BookingIntent, listing domain.Listing) (*ConfirmedBookingRequest, error) {
	// 1. Доступность
	switch listing.Mode {
	case domain.ModeFullRental:
		if !listing.IsAvailable {
			return nil, ErrListingUnavailable
		}
	case domain.ModeSeatShare:
		if listing.SeatShare == nil || listing.SeatShare.SeatsAvailable <= 0 {
			return nil, ErrListingUnavailable
		}
	default:
		return nil, domain.ErrInvalidListingMode
	}

	// 2. Контактные данные
	if intent.Contact.Phone == "" || intent.Contact.RegNo == "" {
		return nil, ErrMissingContactInfo
	}

	// 3. Количество и стоимость
	total, err := QuoteCost(listing, intent.Quantity)
	if err != nil {
		return nil, err
	}

	// 4. Способ оплаты
	if !intent.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	return &ConfirmedBookingRequest{
		ListingID:     listing.ID,
		Mode:          listing.Mode,
		Quantity:      intent.Quantity,
		UnitPrice:     listing.UnitPrice(),
		TotalCost:     total,
		Contact:       intent.Contact,
		PaymentMethod: intent.PaymentMethod,
	}, nil
}
