package create_vehicle

import (
	"github.com/geargik/GearGik-BookingService/internal/domain"
	"github.com/geargik/GearGik-BookingService/internal/service/listings/models"
)

// CreateVehicleRequest HTTP request model
// OwnerID берется из контекста аутентификации, не из тела запроса
type CreateVehicleRequest struct {
	Name         string   `json:"name"`
	VehicleType  string   `json:"vehicleType"`
	Location     string   `json:"location"`
	Features     []string `json:"features,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	ContactPhone string   `json:"contactPhone"`
	RegNo        string   `json:"regNo"`

	Mode string `json:"mode"`

	PricePerHour     *int64 `json:"pricePerHour,omitempty"`
	MaxDurationHours *int   `json:"maxDurationHours,omitempty"`

	PricePerSeat   *int64 `json:"pricePerSeat,omitempty"`
	SeatsAvailable *int   `json:"seatsAvailable,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateVehicleRequest) ToServiceRequest(ownerID int64) *models.CreateListingRequest {
	return &models.CreateListingRequest{
		OwnerID:          ownerID,
		Name:             r.Name,
		VehicleType:      r.VehicleType,
		Location:         r.Location,
		Features:         r.Features,
		ImageURL:         r.ImageURL,
		ContactPhone:     r.ContactPhone,
		RegNo:            r.RegNo,
		Mode:             domain.ListingMode(r.Mode),
		PricePerHour:     r.PricePerHour,
		MaxDurationHours: r.MaxDurationHours,
		PricePerSeat:     r.PricePerSeat,
		SeatsAvailable:   r.SeatsAvailable,
	}
}
