package set_availability

import (
	"context"

	"github.com/geargik/GearGik-BookingService/internal/service/listings/models"
)

type ListingService interface {
	SetAvailability(ctx context.Context, req *models.SetAvailabilityRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
