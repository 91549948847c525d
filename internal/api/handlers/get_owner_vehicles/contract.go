package get_owner_vehicles

import (
	"context"

	"github.com/geargik/GearGik-BookingService/internal/service/listings/models"
)

type ListingService interface {
	GetByOwner(ctx context.Context, ownerID int64) (*models.ListingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
