package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/geargik/GearGik-BookingService/internal/domain"
	listingRepo "github.com/geargik/GearGik-BookingService/internal/infra/storage/listing"
	identityClient "github.com/geargik/GearGik-BookingService/internal/integrations/identityservice"
	"github.com/geargik/GearGik-BookingService/internal/resolver"
)

// UseCase use case для создания бронирования
type UseCase struct {
	listingRepo    ListingRepository
	bookingRepo    BookingRepository
	identityClient IdentityServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	listingRepo ListingRepository,
	bookingRepo BookingRepository,
	identityClient IdentityServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		listingRepo:    listingRepo,
		bookingRepo:    bookingRepo,
		identityClient: identityClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Любая валидация до транзакции работает с потенциально устаревшим снапшотом,
// поэтому решающая проверка выполняется внутри сериализуемой транзакции
// по перечитанному с блокировкой листингу. Проигранная гонка за листинг
// выражается как ErrListingUnavailable
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: renter=%d, listing=%d, quantity=%d, payment=%s",
		req.RenterID, req.ListingID, req.Quantity, req.PaymentMethod)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем арендатора через IdentityService
	if _, err := uc.identityClient.GetVerifiedUser(ctx, req.RenterID); err != nil {
		switch {
		case errors.Is(err, identityClient.ErrUserNotFound):
			uc.logger.Warn("CreateBooking: renter id=%d not found", req.RenterID)
			return nil, ErrUserNotFound
		case errors.Is(err, identityClient.ErrEmailNotVerified):
			uc.logger.Warn("CreateBooking: renter id=%d has unverified email", req.RenterID)
			return nil, ErrEmailNotVerified
		default:
			uc.logger.Error("CreateBooking: identity check failed for renter id=%d: %v", req.RenterID, err)
			return nil, fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
		}
	}

	intent := resolver.BookingIntent{
		ListingID: req.ListingID,
		Quantity:  req.Quantity,
		Contact: resolver.ContactInfo{
			Phone: req.Phone,
			RegNo: req.RegNo,
		},
		PaymentMethod: req.PaymentMethod,
	}

	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Перечитываем листинг с блокировкой (FOR UPDATE)
		l, err := uc.listingRepo.GetByID(txCtx, req.ListingID)
		if err != nil {
			if errors.Is(err, listingRepo.ErrListingNotFound) {
				uc.logger.Warn("CreateBooking: listing id=%d not found", req.ListingID)
				return ErrListingNotFound
			}
			uc.logger.Error("CreateBooking: failed to get listing id=%d: %v", req.ListingID, err)
			return fmt.Errorf("%w: failed to get listing: %v", ErrInternal, err)
		}

		// 3.2. Собственный листинг бронировать нельзя
		if l.IsOwnedBy(req.RenterID) {
			uc.logger.Warn("CreateBooking: renter id=%d owns listing id=%d", req.RenterID, req.ListingID)
			return ErrOwnListing
		}

		// 3.3. Валидируем намерение против свежего снапшота
		confirmed, err := resolver.ValidateBookingIntent(intent, *l)
		if err != nil {
			uc.logger.Warn("CreateBooking: intent rejected for listing id=%d: %v", req.ListingID, err)
			return err
		}

		// 3.4. Занимаем листинг
		switch l.Mode {
		case domain.ModeFullRental:
			if err := uc.listingRepo.SetAvailability(txCtx, l.ID, false); err != nil {
				uc.logger.Error("CreateBooking: failed to reserve listing id=%d: %v", l.ID, err)
				return fmt.Errorf("%w: failed to reserve listing: %v", ErrInternal, err)
			}
		case domain.ModeSeatShare:
			if err := uc.listingRepo.DecrementSeats(txCtx, l.ID, confirmed.Quantity); err != nil {
				if errors.Is(err, listingRepo.ErrNotEnoughSeats) {
					// Гонка за последние места проиграна
					uc.logger.Warn("CreateBooking: lost race for seats on listing id=%d", l.ID)
					return resolver.ErrListingUnavailable
				}
				uc.logger.Error("CreateBooking: failed to decrement seats on listing id=%d: %v", l.ID, err)
				return fmt.Errorf("%w: failed to decrement seats: %v", ErrInternal, err)
			}
		}

		// 3.5. Создаем бронирование с денормализацией данных листинга
		booking := &domain.Booking{
			ListingID:      l.ID,
			RenterID:       req.RenterID,
			OwnerID:        l.OwnerID,
			Mode:           confirmed.Mode,
			Quantity:       confirmed.Quantity,
			UnitPrice:      confirmed.UnitPrice,
			TotalCost:      confirmed.TotalCost,
			ContactPhone:   confirmed.Contact.Phone,
			RegNo:          confirmed.Contact.RegNo,
			PaymentMethod:  confirmed.PaymentMethod,
			PickupLocation: l.Location,
			ListingName:    l.Name,
			VehicleType:    l.VehicleType,
			Status:         domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%d", result.ID, result.TotalCost)

	return &Response{
		ID:             result.ID,
		ListingID:      result.ListingID,
		RenterID:       result.RenterID,
		OwnerID:        result.OwnerID,
		Mode:           result.Mode,
		Quantity:       result.Quantity,
		UnitPrice:      result.UnitPrice,
		TotalCost:      result.TotalCost,
		ContactPhone:   result.ContactPhone,
		RegNo:          result.RegNo,
		PaymentMethod:  result.PaymentMethod,
		PickupLocation: result.PickupLocation,
		ListingName:    result.ListingName,
		VehicleType:    result.VehicleType,
		Status:         string(result.Status),
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}
