package update_vehicle

import (
	"github.com/geargik/GearGik-BookingService/internal/service/listings/models"
)

// UpdateVehicleRequest HTTP request model
// Все поля опциональны, затрагиваются только переданные
type UpdateVehicleRequest struct {
	Name         *string  `json:"name,omitempty"`
	VehicleType  *string  `json:"vehicleType,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Features     []string `json:"features,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	ContactPhone *string  `json:"contactPhone,omitempty"`
	RegNo        *string  `json:"regNo,omitempty"`

	PricePerHour     *int64 `json:"pricePerHour,omitempty"`
	MaxDurationHours *int   `json:"maxDurationHours,omitempty"`
	PricePerSeat     *int64 `json:"pricePerSeat,omitempty"`
	SeatsAvailable   *int   `json:"seatsAvailable,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateVehicleRequest) ToServiceRequest(vehicleID, userID int64) *models.UpdateListingRequest {
	return &models.UpdateListingRequest{
		ListingID:        vehicleID,
		UserID:           userID,
		Name:             r.Name,
		VehicleType:      r.VehicleType,
		Location:         r.Location,
		Features:         r.Features,
		ImageURL:         r.ImageURL,
		ContactPhone:     r.ContactPhone,
		RegNo:            r.RegNo,
		PricePerHour:     r.PricePerHour,
		MaxDurationHours: r.MaxDurationHours,
		PricePerSeat:     r.PricePerSeat,
		SeatsAvailable:   r.SeatsAvailable,
	}
}
