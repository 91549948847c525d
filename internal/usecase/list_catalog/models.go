package list_catalog

import (
	"github.com/geargik/GearGik-BookingService/internal/domain"
	listingModels "github.com/geargik/GearGik-BookingService/internal/service/listings/models"
)

// Request критерии выборки каталога
type Request struct {
	Mode domain.ListingMode
	// VehicleType пустая строка или "All" - без фильтра по типу
	VehicleType string
	// RequiredDurationHours только для full_rental, 0 - без требования
	RequiredDurationHours int
}

// Response упорядоченный по цене список подходящих листингов
type Response struct {
	Listings []listingModels.ListingResponse
	Total    int
}
