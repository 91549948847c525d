package list_catalog

import (
	"context"
	"fmt"

	"github.com/geargik/GearGik-BookingService/internal/resolver"
	listingModels "github.com/geargik/GearGik-BookingService/internal/service/listings/models"
)

// UseCase use case выборки каталога
// Снапшот листингов берется из репозитория, отбор и сортировка по цене
// выполняются пакетом resolver в памяти: он единственный источник
// семантики фильтрации каталога
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

// Execute выполняет выборку каталога по критериям
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListCatalog: mode=%s, vehicleType=%q, requiredDuration=%d",
		req.Mode, req.VehicleType, req.RequiredDurationHours)

	if !req.Mode.IsValid() {
		uc.logger.Warn("ListCatalog: invalid mode %q", req.Mode)
		return nil, fmt.Errorf("%w: invalid listing mode", ErrInvalidInput)
	}
	if req.RequiredDurationHours < 0 {
		return nil, fmt.Errorf("%w: requiredDurationHours cannot be negative", ErrInvalidInput)
	}

	// Снапшот каталога: грубый срез по режиму делает БД,
	// остальные критерии применяются в памяти
	snapshot, err := uc.listingRepo.GetWithFilter(ctx, &req.Mode, nil)
	if err != nil {
		uc.logger.Error("ListCatalog: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch catalog: %v", ErrInternal, err)
	}

	eligible := resolver.FilterCatalog(snapshot, resolver.Criteria{
		Mode:                  req.Mode,
		VehicleType:           req.VehicleType,
		RequiredDurationHours: req.RequiredDurationHours,
	})

	uc.logger.Info("ListCatalog: %d of %d listings match", len(eligible), len(snapshot))

	list := listingModels.FromDomainListingList(eligible)
	return &Response{
		Listings: list.Listings,
		Total:    list.Total,
	}, nil
}
