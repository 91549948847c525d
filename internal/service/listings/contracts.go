package listings

import (
	"context"

	"github.com/geargik/GearGik-BookingService/internal/domain"
)

// ListingRepository интерфейс репозитория листингов
type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	GetWithFilter(ctx context.Context, mode *domain.ListingMode, ownerID *int64) ([]domain.Listing, error)
	Update(ctx context.Context, l *domain.Listing) error
	SetAvailability(ctx context.Context, id int64, available bool) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
// Нужен для проверки активных бронирований перед удалением листинга
type BookingRepository interface {
	GetActiveByListingID(ctx context.Context, listingID int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
