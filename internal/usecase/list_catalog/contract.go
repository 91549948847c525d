package list_catalog

import (
	"context"

	"github.com/geargik/GearGik-BookingService/internal/domain"
)

// ListingRepository интерфейс репозитория листингов
type ListingRepository interface {
	GetWithFilter(ctx context.Context, mode *domain.ListingMode, ownerID *int64) ([]domain.Listing, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
