package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/geargik/GearGik-BookingService/internal/domain"
	bookingRepo "github.com/geargik/GearGik-BookingService/internal/infra/storage/booking"
	"github.com/geargik/GearGik-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	listingRepo ListingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	listingRepo ListingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Доступно арендатору и владельцу листинга
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.RenterID != userID && b.OwnerID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(b), nil
}

// GetRenterBookings получает историю бронирований арендатора
// Опционально фильтрует по статусу
func (s *Service) GetRenterBookings(ctx context.Context, req *models.GetRenterBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetRenterBookings: fetching bookings for renter=%d, status=%v", req.RenterID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetRenterBookings: invalid status=%s for renter=%d", *req.Status, req.RenterID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByRenterID(ctx, req.RenterID, domainStatus)
	if err != nil {
		s.logger.Error("GetRenterBookings: repository error for renter=%d: %v", req.RenterID, err)
		return nil, fmt.Errorf("%w: GetRenterBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRenterBookings: successfully fetched %d bookings for renter=%d", len(bookings), req.RenterID)
	return models.FromDomainBookingList(bookings), nil
}

// GetOwnerBookings получает бронирования на листинги владельца
// Доступно только самому владельцу
func (s *Service) GetOwnerBookings(ctx context.Context, req *models.GetOwnerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetOwnerBookings: fetching bookings for owner=%d by user=%d", req.OwnerID, req.UserID)

	if req.OwnerID != req.UserID {
		s.logger.Warn("GetOwnerBookings: user=%d requested bookings of owner=%d", req.UserID, req.OwnerID)
		return nil, ErrAccessDenied
	}

	filter := domain.OwnerBookingsFilter{
		OwnerID:         req.OwnerID,
		ListingID:       req.ListingID,
		IncludeInactive: req.IncludeInactive,
	}
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetOwnerBookings: invalid status=%s for owner=%d", *req.Status, req.OwnerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetByOwnerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetOwnerBookings: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: GetOwnerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerBookings: successfully fetched %d bookings for owner=%d", len(bookings), req.OwnerID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Арендатор отменяет своё бронирование (cancelled_by_renter),
// владелец листинга - любое бронирование на него (cancelled_by_owner).
// Отмена возвращает ресурсы листингу: места для seat share,
// доступность для full rental
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	var cancelStatus domain.BookingStatus
	switch {
	case b.RenterID == req.UserID:
		cancelStatus = domain.StatusCancelledByRenter
	case b.OwnerID == req.UserID:
		cancelStatus = domain.StatusCancelledByOwner
	default:
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	if !b.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, b.Status)
		return ErrCannotCancel
	}

	// Отмена и возврат ресурсов листингу в одной транзакции.
	// Ресурсы возвращаются только если охраняемый UPDATE статуса прошел:
	// проверка CanBeCancelled выше сделана по снимку и могла устареть
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.Cancel(txCtx, bookingID, cancelStatus, req.CancellationReason); err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}
		return s.releaseListing(txCtx, b)
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			s.logger.Warn("Cancel: booking id=%d already left active status", bookingID)
			return ErrCannotCancel
		}
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: transaction failed for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// UpdateStatus меняет статус бронирования
// Доступно только владельцу листинга. Допустимые переходы:
// pending -> confirmed, pending -> rejected, confirmed -> completed.
// Отклонение возвращает ресурсы листингу; завершение full rental НЕ
// возвращает доступность автоматически - владелец делает это явным
// действием make available
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d", bookingID, req.Status, req.UserID)

	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if b.OwnerID != req.UserID {
		s.logger.Warn("UpdateStatus: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if !isAllowedTransition(b.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%d", b.Status, newStatus, bookingID)
		return ErrInvalidTransition
	}

	// Переход охраняется исходным статусом в WHERE: если конкурентный
	// запрос уже увел бронирование из b.Status, освобождение листинга
	// не выполняется повторно
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, b.Status, newStatus); err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		// Отклоненное бронирование освобождает листинг
		if newStatus == domain.StatusRejected {
			return s.releaseListing(txCtx, b)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			s.logger.Warn("UpdateStatus: booking id=%d left status=%s concurrently", bookingID, b.Status)
			return ErrInvalidTransition
		}
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: transaction failed for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// releaseListing возвращает ресурсы листингу после отмены/отклонения
func (s *Service) releaseListing(ctx context.Context, b *domain.Booking) error {
	switch b.Mode {
	case domain.ModeSeatShare:
		if err := s.listingRepo.IncrementSeats(ctx, b.ListingID, b.Quantity); err != nil {
			return fmt.Errorf("restore seats: %w", err)
		}
	case domain.ModeFullRental:
		if err := s.listingRepo.SetAvailability(ctx, b.ListingID, true); err != nil {
			return fmt.Errorf("restore availability: %w", err)
		}
	}
	return nil
}

// getBooking получает бронирование, транслируя ошибку "не найдено"
func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("getBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getBooking: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return b, nil
}

// isAllowedTransition проверяет допустимость перехода статуса владельцем
func isAllowedTransition(from, to domain.BookingStatus) bool {
	switch from {
	case domain.StatusPending:
		return to == domain.StatusConfirmed || to == domain.StatusRejected
	case domain.StatusConfirmed:
		return to == domain.StatusCompleted
	default:
		return false
	}
}
