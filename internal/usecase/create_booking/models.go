package create_booking

import (
	"time"

	"github.com/geargik/GearGik-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	RenterID  int64
	ListingID int64
	// Quantity часы для full_rental, места для seat_share
	Quantity      int
	Phone         string
	RegNo         string
	PaymentMethod domain.PaymentMethod
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	ListingID int64
	RenterID  int64
	OwnerID   int64

	Mode      domain.ListingMode
	Quantity  int
	UnitPrice int64
	TotalCost int64

	ContactPhone   string
	RegNo          string
	PaymentMethod  domain.PaymentMethod
	PickupLocation string

	// Денормализованные данные листинга
	ListingName string
	VehicleType string

	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
