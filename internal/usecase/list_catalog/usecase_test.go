package list_catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geargik/GearGik-BookingService/internal/domain"
	"github.com/geargik/GearGik-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeListingRepo struct {
	listings []domain.Listing
	lastMode *domain.ListingMode
}

func (f *fakeListingRepo) GetWithFilter(_ context.Context, mode *domain.ListingMode, _ *int64) ([]domain.Listing, error) {
	f.lastMode = mode
	return f.listings, nil
}

func catalog() []domain.Listing {
	return []domain.Listing{
		{
			ID:          1,
			Name:        "Honda City",
			VehicleType: "Sedan",
			Mode:        domain.ModeFullRental,
			FullRental:  &domain.FullRentalTerms{PricePerHour: 1000},
			IsAvailable: true,
		},
		{
			ID:          2,
			Name:        "Toyota Corolla",
			VehicleType: "Sedan",
			Mode:        domain.ModeFullRental,
			FullRental:  &domain.FullRentalTerms{PricePerHour: 500, MaxDurationHours: ptr.Ptr(5)},
			IsAvailable: true,
		},
		{
			ID:          3,
			Name:        "Suzuki Alto",
			VehicleType: "Hatchback",
			Mode:        domain.ModeFullRental,
			FullRental:  &domain.FullRentalTerms{PricePerHour: 300},
			IsAvailable: true,
		},
	}
}

func TestExecute_SortsByPriceAscending(t *testing.T) {
	repo := &fakeListingRepo{listings: catalog()}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Mode: domain.ModeFullRental})
	require.NoError(t, err)

	require.Equal(t, 3, resp.Total)
	assert.Equal(t, int64(3), resp.Listings[0].ID)
	assert.Equal(t, int64(2), resp.Listings[1].ID)
	assert.Equal(t, int64(1), resp.Listings[2].ID)

	// Грубый срез по режиму делает репозиторий
	require.NotNil(t, repo.lastMode)
	assert.Equal(t, domain.ModeFullRental, *repo.lastMode)
}

func TestExecute_VehicleTypeFilter(t *testing.T) {
	uc := NewUseCase(&fakeListingRepo{listings: catalog()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Mode:        domain.ModeFullRental,
		VehicleType: "Hatchback",
	})
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Suzuki Alto", resp.Listings[0].Name)
}

func TestExecute_DurationRequirement(t *testing.T) {
	uc := NewUseCase(&fakeListingRepo{listings: catalog()}, nopLogger{})

	// Corolla ограничена 5 часами владельцем и выпадает
	resp, err := uc.Execute(context.Background(), &Request{
		Mode:                  domain.ModeFullRental,
		RequiredDurationHours: 6,
	})
	require.NoError(t, err)

	require.Equal(t, 2, resp.Total)
	for _, l := range resp.Listings {
		assert.NotEqual(t, int64(2), l.ID)
	}
}

func TestExecute_InvalidMode(t *testing.T) {
	uc := NewUseCase(&fakeListingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Mode: "lease"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NegativeDuration(t *testing.T) {
	uc := NewUseCase(&fakeListingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Mode:                  domain.ModeFullRental,
		RequiredDurationHours: -1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_EmptyCatalog(t *testing.T) {
	uc := NewUseCase(&fakeListingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Mode: domain.ModeSeatShare})
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Empty(t, resp.Listings)
}
