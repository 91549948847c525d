package models

import (
	"fmt"
	"time"

	"github.com/geargik/GearGik-BookingService/internal/domain"
)

// GetRenterBookingsRequest запрос истории бронирований арендатора
type GetRenterBookingsRequest struct {
	RenterID int64   `json:"renterId"`
	Status   *string `json:"status,omitempty"`
}

// GetOwnerBookingsRequest запрос бронирований на листинги владельца
type GetOwnerBookingsRequest struct {
	OwnerID         int64   `json:"ownerId"`
	UserID          int64   `json:"userId"` // Инициатор запроса
	ListingID       *int64  `json:"listingId,omitempty"`
	Status          *string `json:"status,omitempty"`
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на смену статуса бронирования владельцем
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// BookingResponse модель бронирования для вызывающего кода
type BookingResponse struct {
	ID        int64 `json:"id"`
	ListingID int64 `json:"listingId"`
	RenterID  int64 `json:"renterId"`
	OwnerID   int64 `json:"ownerId"`

	Mode      domain.ListingMode `json:"mode"`
	Quantity  int                `json:"quantity"`
	UnitPrice int64              `json:"unitPrice"`
	TotalCost int64              `json:"totalCost"`

	ContactPhone   string               `json:"contactPhone"`
	RegNo          string               `json:"regNo"`
	PaymentMethod  domain.PaymentMethod `json:"paymentMethod"`
	PickupLocation string               `json:"pickupLocation"`

	ListingName string `json:"listingName"`
	VehicleType string `json:"vehicleType"`

	Status             string     `json:"status"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует доменное бронирование в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		ListingID:          b.ListingID,
		RenterID:           b.RenterID,
		OwnerID:            b.OwnerID,
		Mode:               b.Mode,
		Quantity:           b.Quantity,
		UnitPrice:          b.UnitPrice,
		TotalCost:          b.TotalCost,
		ContactPhone:       b.ContactPhone,
		RegNo:              b.RegNo,
		PaymentMethod:      b.PaymentMethod,
		PickupLocation:     b.PickupLocation,
		ListingName:        b.ListingName,
		VehicleType:        b.VehicleType,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных бронирований в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus валидирует и конвертирует строковый статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	switch status {
	case domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusRejected,
		domain.StatusCompleted,
		domain.StatusCancelledByRenter,
		domain.StatusCancelledByOwner:
		return status, nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}
