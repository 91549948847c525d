package create_vehicle

import (
	"context"

	"github.com/geargik/GearGik-BookingService/internal/service/listings/models"
)

type ListingService interface {
	Create(ctx context.Context, req *models.CreateListingRequest) (*models.ListingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
