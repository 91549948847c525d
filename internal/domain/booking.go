package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending           BookingStatus = "pending"
	StatusConfirmed         BookingStatus = "confirmed"
	StatusRejected          BookingStatus = "rejected"
	StatusCompleted         BookingStatus = "completed"
	StatusCancelledByRenter BookingStatus = "cancelled_by_renter"
	StatusCancelledByOwner  BookingStatus = "cancelled_by_owner"
)

// PaymentMethod способ оплаты бронирования
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "cash"
	PaymentJazzCash  PaymentMethod = "jazzcash"
	PaymentEasypaisa PaymentMethod = "easypaisa"
)

// IsValid returns true if the payment method is one of the recognized values
func (p PaymentMethod) IsValid() bool {
	return p == PaymentCash || p == PaymentJazzCash || p == PaymentEasypaisa
}

// Booking represents an accepted booking in the system
type Booking struct {
	ID        int64
	ListingID int64
	RenterID  int64
	OwnerID   int64 // Денормализовано из листинга на момент бронирования

	Mode      ListingMode
	Quantity  int   // Часы для full_rental, места для seat_share
	UnitPrice int64 // Денормализованная цена за единицу на момент бронирования
	TotalCost int64

	ContactPhone   string
	RegNo          string
	PaymentMethod  PaymentMethod
	PickupLocation string

	// Denormalized listing data for history
	ListingName string
	VehicleType string

	Status             BookingStatus
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies the listing
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled or rejected
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByRenter ||
		b.Status == StatusCancelledByOwner ||
		b.Status == StatusRejected
}

// InactiveStatuses список статусов, не занимающих листинг
// Используется при фильтрации истории бронирований
var InactiveStatuses = []BookingStatus{
	StatusRejected,
	StatusCompleted,
	StatusCancelledByRenter,
	StatusCancelledByOwner,
}

// OwnerBookingsFilter фильтр для бронирований владельца
type OwnerBookingsFilter struct {
	OwnerID         int64
	ListingID       *int64         // Фильтр по листингу (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли завершенные и отмененные
}
