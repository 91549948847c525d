package create_booking

import (
	"context"

	"github.com/geargik/GearGik-BookingService/internal/domain"
	"github.com/geargik/GearGik-BookingService/internal/integrations/identityservice"
)

// ListingRepository интерфейс репозитория листингов
type ListingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
	DecrementSeats(ctx context.Context, id int64, count int) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// IdentityServiceClient интерфейс клиента для IdentityService
type IdentityServiceClient interface {
	GetVerifiedUser(ctx context.Context, userID int64) (*identityservice.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
