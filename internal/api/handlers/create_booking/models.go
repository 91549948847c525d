package create_booking

import (
	"time"

	"github.com/geargik/GearGik-BookingService/internal/domain"
	createBooking "github.com/geargik/GearGik-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// RenterID берется из контекста аутентификации, не из тела запроса
type CreateBookingRequest struct {
	VehicleID int64 `json:"vehicleId"`
	// Quantity часы для full_rental, места для seat_share
	Quantity      int    `json:"quantity"`
	Phone         string `json:"phone"`
	RegNo         string `json:"regNo"`
	PaymentMethod string `json:"paymentMethod"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	VehicleID int64  `json:"vehicleId"`
	RenterID  int64  `json:"renterId"`
	OwnerID   int64  `json:"ownerId"`
	Mode      string `json:"mode"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	TotalCost int64  `json:"totalCost"`

	ContactPhone   string `json:"contactPhone"`
	RegNo          string `json:"regNo"`
	PaymentMethod  string `json:"paymentMethod"`
	PickupLocation string `json:"pickupLocation"`

	VehicleName string `json:"vehicleName"`
	VehicleType string `json:"vehicleType"`

	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(renterID int64) *createBooking.Request {
	return &createBooking.Request{
		RenterID:      renterID,
		ListingID:     r.VehicleID,
		Quantity:      r.Quantity,
		Phone:         r.Phone,
		RegNo:         r.RegNo,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		VehicleID:      resp.ListingID,
		RenterID:       resp.RenterID,
		OwnerID:        resp.OwnerID,
		Mode:           string(resp.Mode),
		Quantity:       resp.Quantity,
		UnitPrice:      resp.UnitPrice,
		TotalCost:      resp.TotalCost,
		ContactPhone:   resp.ContactPhone,
		RegNo:          resp.RegNo,
		PaymentMethod:  string(resp.PaymentMethod),
		PickupLocation: resp.PickupLocation,
		VehicleName:    resp.ListingName,
		VehicleType:    resp.VehicleType,
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
