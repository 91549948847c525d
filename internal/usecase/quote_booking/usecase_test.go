package quote_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geargik/GearGik-BookingService/internal/domain"
	listingRepo "github.com/geargik/GearGik-BookingService/internal/infra/storage/listing"
	"github.com/geargik/GearGik-BookingService/internal/resolver"
	"github.com/geargik/GearGik-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeListingRepo struct {
	listing *domain.Listing
}

func (f *fakeListingRepo) GetByID(_ context.Context, id int64) (*domain.Listing, error) {
	if f.listing == nil || f.listing.ID != id {
		return nil, listingRepo.ErrListingNotFound
	}
	copied := *f.listing
	return &copied, nil
}

func TestExecute_FullRental(t *testing.T) {
	uc := NewUseCase(&fakeListingRepo{listing: &domain.Listing{
		ID:         10,
		Mode:       domain.ModeFullRental,
		FullRental: &domain.FullRentalTerms{PricePerHour: 500, MaxDurationHours: ptr.Ptr(5)},
	}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ListingID: 10, Quantity: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(2500), resp.TotalCost)
	assert.Equal(t, int64(500), resp.UnitPrice)
	assert.Equal(t, domain.ModeFullRental, resp.Mode)

	_, err = uc.Execute(context.Background(), &Request{ListingID: 10, Quantity: 6})
	assert.ErrorIs(t, err, resolver.ErrDurationExceedsLimit)
}

func TestExecute_SeatShare(t *testing.T) {
	uc := NewUseCase(&fakeListingRepo{listing: &domain.Listing{
		ID:        20,
		Mode:      domain.ModeSeatShare,
		SeatShare: &domain.SeatShareTerms{PricePerSeat: 800, SeatsAvailable: 2},
	}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ListingID: 20, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1600), resp.TotalCost)

	_, err = uc.Execute(context.Background(), &Request{ListingID: 20, Quantity: 3})
	assert.ErrorIs(t, err, resolver.ErrInsufficientSeats)
}

func TestExecute_NotFound(t *testing.T) {
	uc := NewUseCase(&fakeListingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ListingID: 42, Quantity: 1})
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestExecute_InvalidQuantity(t *testing.T) {
	uc := NewUseCase(&fakeListingRepo{listing: &domain.Listing{
		ID:         10,
		Mode:       domain.ModeFullRental,
		FullRental: &domain.FullRentalTerms{PricePerHour: 500},
	}}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ListingID: 10, Quantity: 0})
	assert.ErrorIs(t, err, resolver.ErrInvalidQuantity)
}
