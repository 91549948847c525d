package resolver

import "github.com/geargik/GearGik-BookingService/internal/domain"

// ContactInfo контактные данные арендатора
type ContactInfo struct {
	Phone string
	RegNo string
}

// BookingIntent намерение бронирования до валидации
// Не персистентно: либо проходит валидацию и превращается в
// ConfirmedBookingRequest, либо отклоняется
type BookingIntent struct {
	ListingID int64
	// Quantity часы для full_rental, места для seat_share
	Quantity       int
	Contact        ContactInfo
	PaymentMethod  domain.PaymentMethod
	PickupLocation string
}

// ConfirmedBookingRequest нормализованный результат успешной валидации,
// готовый к передаче на сохранение
type ConfirmedBookingRequest struct {
	ListingID     int64
	Mode          domain.ListingMode
	Quantity      int
	UnitPrice     int64
	TotalCost     int64
	Contact       ContactInfo
	PaymentMethod domain.PaymentMethod
}

// Criteria критерии отбора листингов в FilterCatalog
type Criteria struct {
	Mode domain.ListingMode
	// VehicleType пустая строка или сентинел "All" отключают фильтр по типу
	VehicleType string
	// RequiredDurationHours учитывается только для full_rental
	// 0 означает отсутствие требования к длительности
	RequiredDurationHours int
}
