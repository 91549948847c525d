package listings

import (
	"context"
	"errors"
	"fmt"

	"github.com/geargik/GearGik-BookingService/internal/domain"
	listingRepo "github.com/geargik/GearGik-BookingService/internal/infra/storage/listing"
	"github.com/geargik/GearGik-BookingService/internal/service/listings/models"
)

// Service сервис для управления листингами каталога
type Service struct {
	listingRepo ListingRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса листингов
func NewService(
	listingRepo ListingRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		listingRepo: listingRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create создает новый листинг от имени владельца
func (s *Service) Create(ctx context.Context, req *models.CreateListingRequest) (*models.ListingResponse, error) {
	s.logger.Info("Create: owner=%d, mode=%s, name=%q", req.OwnerID, req.Mode, req.Name)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed for owner=%d: %v", req.OwnerID, err)
		return nil, err
	}

	l := req.ToDomainListing()
	if err := l.Validate(); err != nil {
		s.logger.Warn("Create: domain validation failed for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.listingRepo.Create(ctx, l)
	if err != nil {
		s.logger.Error("Create: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created listing id=%d", created.ID)
	return models.FromDomainListing(created), nil
}

// GetByID получает листинг по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ListingResponse, error) {
	l, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			s.logger.Warn("GetByID: listing id=%d not found", id)
			return nil, ErrListingNotFound
		}
		s.logger.Error("GetByID: repository error for listing id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainListing(l), nil
}

// GetByOwner получает все листинги владельца (включая недоступные)
func (s *Service) GetByOwner(ctx context.Context, ownerID int64) (*models.ListingListResponse, error) {
	s.logger.Info("GetByOwner: fetching listings for owner=%d", ownerID)

	listings, err := s.listingRepo.GetWithFilter(ctx, nil, &ownerID)
	if err != nil {
		s.logger.Error("GetByOwner: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetByOwner - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainListingList(listings), nil
}

// Update обновляет листинг
// Доступно только владельцу листинга
func (s *Service) Update(ctx context.Context, req *models.UpdateListingRequest) (*models.ListingResponse, error) {
	s.logger.Info("Update: listing id=%d by user=%d", req.ListingID, req.UserID)

	l, err := s.getOwnedListing(ctx, req.ListingID, req.UserID)
	if err != nil {
		return nil, err
	}

	applyUpdate(l, req)

	if err := l.Validate(); err != nil {
		s.logger.Warn("Update: domain validation failed for listing id=%d: %v", req.ListingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.listingRepo.Update(ctx, l); err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			return nil, ErrListingNotFound
		}
		s.logger.Error("Update: repository error for listing id=%d: %v", req.ListingID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated listing id=%d", req.ListingID)
	return models.FromDomainListing(l), nil
}

// SetAvailability переключает доступность full rental листинга
// Переход Reserved -> Available выполняется только этим явным действием
// владельца, автоматического возврата доступности нет
func (s *Service) SetAvailability(ctx context.Context, req *models.SetAvailabilityRequest) error {
	s.logger.Info("SetAvailability: listing id=%d -> %v by user=%d", req.ListingID, req.IsAvailable, req.UserID)

	l, err := s.getOwnedListing(ctx, req.ListingID, req.UserID)
	if err != nil {
		return err
	}

	if l.Mode != domain.ModeFullRental {
		s.logger.Warn("SetAvailability: listing id=%d is not a full rental", req.ListingID)
		return ErrNotFullRental
	}

	if err := s.listingRepo.SetAvailability(ctx, req.ListingID, req.IsAvailable); err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			return ErrListingNotFound
		}
		s.logger.Error("SetAvailability: repository error for listing id=%d: %v", req.ListingID, err)
		return fmt.Errorf("%w: SetAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetAvailability: listing id=%d is now available=%v", req.ListingID, req.IsAvailable)
	return nil
}

// Delete удаляет листинг
// Доступно только владельцу; листинг с активными бронированиями не удаляется
func (s *Service) Delete(ctx context.Context, listingID, userID int64) error {
	s.logger.Info("Delete: listing id=%d by user=%d", listingID, userID)

	if _, err := s.getOwnedListing(ctx, listingID, userID); err != nil {
		return err
	}

	active, err := s.bookingRepo.GetActiveByListingID(ctx, listingID)
	if err != nil {
		s.logger.Error("Delete: failed to check active bookings for listing id=%d: %v", listingID, err)
		return fmt.Errorf("%w: Delete - failed to check active bookings: %v", ErrInternal, err)
	}
	if len(active) > 0 {
		s.logger.Warn("Delete: listing id=%d has %d active bookings", listingID, len(active))
		return ErrHasActiveBookings
	}

	if err := s.listingRepo.Delete(ctx, listingID); err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			return ErrListingNotFound
		}
		s.logger.Error("Delete: repository error for listing id=%d: %v", listingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted listing id=%d", listingID)
	return nil
}

// getOwnedListing получает листинг и проверяет, что им владеет userID
func (s *Service) getOwnedListing(ctx context.Context, listingID, userID int64) (*domain.Listing, error) {
	l, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			s.logger.Warn("getOwnedListing: listing id=%d not found", listingID)
			return nil, ErrListingNotFound
		}
		s.logger.Error("getOwnedListing: repository error for listing id=%d: %v", listingID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if !l.IsOwnedBy(userID) {
		s.logger.Warn("getOwnedListing: user=%d is not the owner of listing id=%d", userID, listingID)
		return nil, ErrAccessDenied
	}

	return l, nil
}

// validateCreateRequest валидирует поля запроса создания листинга
func validateCreateRequest(req *models.CreateListingRequest) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}
	if req.Name == "" || len(req.Name) > domain.MaxListingNameLength {
		return fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxListingNameLength)
	}
	if !domain.IsValidVehicleType(req.VehicleType) {
		return fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidInput, req.VehicleType)
	}
	if !domain.IsValidPickupLocation(req.Location) {
		return fmt.Errorf("%w: unknown pickup location %q", ErrInvalidInput, req.Location)
	}
	if len(req.Features) > domain.MaxFeaturesCount {
		return fmt.Errorf("%w: too many features", ErrInvalidInput)
	}
	for _, f := range req.Features {
		if f == "" || len(f) > domain.MaxFeatureLength {
			return fmt.Errorf("%w: feature must be 1..%d characters", ErrInvalidInput, domain.MaxFeatureLength)
		}
	}
	if req.ContactPhone == "" || req.RegNo == "" {
		return fmt.Errorf("%w: contact phone and regNo are required", ErrInvalidInput)
	}
	return nil
}

// applyUpdate применяет непустые поля запроса к листингу
func applyUpdate(l *domain.Listing, req *models.UpdateListingRequest) {
	if req.Name != nil {
		l.Name = *req.Name
	}
	if req.VehicleType != nil {
		l.VehicleType = *req.VehicleType
	}
	if req.Location != nil {
		l.Location = *req.Location
	}
	if req.Features != nil {
		l.Features = req.Features
	}
	if req.ImageURL != nil {
		l.ImageURL = req.ImageURL
	}
	if req.ContactPhone != nil {
		l.ContactPhone = *req.ContactPhone
	}
	if req.RegNo != nil {
		l.RegNo = *req.RegNo
	}

	switch l.Mode {
	case domain.ModeFullRental:
		if l.FullRental == nil {
			break
		}
		if req.PricePerHour != nil {
			l.FullRental.PricePerHour = *req.PricePerHour
		}
		if req.MaxDurationHours != nil {
			l.FullRental.MaxDurationHours = req.MaxDurationHours
		}
	case domain.ModeSeatShare:
		if l.SeatShare == nil {
			break
		}
		if req.PricePerSeat != nil {
			l.SeatShare.PricePerSeat = *req.PricePerSeat
		}
		if req.SeatsAvailable != nil {
			l.SeatShare.SeatsAvailable = *req.SeatsAvailable
		}
	}
}
