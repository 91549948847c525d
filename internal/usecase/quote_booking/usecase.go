package quote_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/geargik/GearGik-BookingService/internal/domain"
	listingRepo "github.com/geargik/GearGik-BookingService/internal/infra/storage/listing"
	"github.com/geargik/GearGik-BookingService/internal/resolver"
)

// ListingRepository интерфейс репозитория листингов
type ListingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Request запрос расчета стоимости
type Request struct {
	ListingID int64
	// Quantity часы для full_rental, места для seat_share
	Quantity int
}

// Response расчет стоимости бронирования
type Response struct {
	ListingID int64
	Mode      domain.ListingMode
	Quantity  int
	UnitPrice int64
	TotalCost int64
}

// UseCase use case расчета стоимости бронирования
// Стоимость всегда считается заново от канонического листинга и количества:
// вызывается на каждое изменение количества, никаких инкрементальных правок
// предыдущего итога
type UseCase struct {
	listingRepo ListingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(listingRepo ListingRepository, logger Logger) *UseCase {
	return &UseCase{
		listingRepo: listingRepo,
		logger:      logger,
	}
}

// Execute выполняет расчет стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteBooking: listing=%d, quantity=%d", req.ListingID, req.Quantity)

	if req.ListingID <= 0 {
		return nil, fmt.Errorf("%w: listingID must be positive", ErrInvalidInput)
	}

	l, err := uc.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			uc.logger.Warn("QuoteBooking: listing id=%d not found", req.ListingID)
			return nil, ErrListingNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get listing id=%d: %v", req.ListingID, err)
		return nil, fmt.Errorf("%w: failed to get listing: %v", ErrInternal, err)
	}

	total, err := resolver.QuoteCost(*l, req.Quantity)
	if err != nil {
		uc.logger.Warn("QuoteBooking: quote rejected for listing id=%d: %v", req.ListingID, err)
		return nil, err
	}

	return &Response{
		ListingID: l.ID,
		Mode:      l.Mode,
		Quantity:  req.Quantity,
		UnitPrice: l.UnitPrice(),
		TotalCost: total,
	}, nil
}
