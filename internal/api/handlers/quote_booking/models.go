package quote_booking

import (
	"github.com/geargik/GearGik-BookingService/internal/domain"
	quoteBooking "github.com/geargik/GearGik-BookingService/internal/usecase/quote_booking"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	VehicleID int64              `json:"vehicleId"`
	Mode      domain.ListingMode `json:"mode"`
	Quantity  int                `json:"quantity"`
	UnitPrice int64              `json:"unitPrice"`
	TotalCost int64              `json:"totalCost"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	return &QuoteResponse{
		VehicleID: resp.ListingID,
		Mode:      resp.Mode,
		Quantity:  resp.Quantity,
		UnitPrice: resp.UnitPrice,
		TotalCost: resp.TotalCost,
	}
}
