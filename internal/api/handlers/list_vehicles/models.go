package list_vehicles

import (
	listingModels "github.com/geargik/GearGik-BookingService/internal/service/listings/models"
	listCatalog "github.com/geargik/GearGik-BookingService/internal/usecase/list_catalog"
)

// VehicleListResponse HTTP response model
type VehicleListResponse struct {
	Vehicles []listingModels.ListingResponse `json:"vehicles"`
	Total    int                             `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listCatalog.Response) *VehicleListResponse {
	return &VehicleListResponse{
		Vehicles: resp.Listings,
		Total:    resp.Total,
	}
}
