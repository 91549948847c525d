package listings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geargik/GearGik-BookingService/internal/domain"
	listingRepo "github.com/geargik/GearGik-BookingService/internal/infra/storage/listing"
	"github.com/geargik/GearGik-BookingService/internal/service/listings/models"
	"github.com/geargik/GearGik-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeListingRepo struct {
	listing *domain.Listing

	created         *domain.Listing
	updated         *domain.Listing
	availabilitySet *bool
	deleted         bool
}

func (f *fakeListingRepo) Create(_ context.Context, l *domain.Listing) (*domain.Listing, error) {
	l.ID = 77
	f.created = l
	return l, nil
}

func (f *fakeListingRepo) GetByID(_ context.Context, id int64) (*domain.Listing, error) {
	if f.listing == nil || f.listing.ID != id {
		return nil, listingRepo.ErrListingNotFound
	}
	copied := *f.listing
	return &copied, nil
}

func (f *fakeListingRepo) GetWithFilter(_ context.Context, _ *domain.ListingMode, _ *int64) ([]domain.Listing, error) {
	if f.listing == nil {
		return nil, nil
	}
	return []domain.Listing{*f.listing}, nil
}

func (f *fakeListingRepo) Update(_ context.Context, l *domain.Listing) error {
	f.updated = l
	return nil
}

func (f *fakeListingRepo) SetAvailability(_ context.Context, _ int64, available bool) error {
	f.availabilitySet = &available
	return nil
}

func (f *fakeListingRepo) Delete(_ context.Context, _ int64) error {
	f.deleted = true
	return nil
}

type fakeBookingRepo struct {
	active []*domain.Booking
}

func (f *fakeBookingRepo) GetActiveByListingID(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return f.active, nil
}

func fullRentalListing() *domain.Listing {
	return &domain.Listing{
		ID:           10,
		OwnerID:      1,
		Name:         "Toyota Corolla",
		VehicleType:  "Sedan",
		Location:     "FME",
		ContactPhone: "03001234567",
		RegNo:        "LEB-1234",
		Mode:         domain.ModeFullRental,
		FullRental:   &domain.FullRentalTerms{PricePerHour: 500, MaxDurationHours: ptr.Ptr(5)},
		IsAvailable:  true,
	}
}

func seatShareListing() *domain.Listing {
	return &domain.Listing{
		ID:           20,
		OwnerID:      1,
		Name:         "Hiace to Islamabad",
		VehicleType:  "Van",
		Location:     "FCSE",
		ContactPhone: "03007654321",
		RegNo:        "ISB-9876",
		Mode:         domain.ModeSeatShare,
		SeatShare:    &domain.SeatShareTerms{PricePerSeat: 800, SeatsAvailable: 3},
		IsAvailable:  true,
	}
}

func validCreateRequest() *models.CreateListingRequest {
	return &models.CreateListingRequest{
		OwnerID:      1,
		Name:         "Toyota Corolla",
		VehicleType:  "Sedan",
		Location:     "FME",
		ContactPhone: "03001234567",
		RegNo:        "LEB-1234",
		Mode:         domain.ModeFullRental,
		PricePerHour: ptr.Ptr(int64(500)),
	}
}

func newService(lr *fakeListingRepo, br *fakeBookingRepo) *Service {
	return NewService(lr, br, nopLogger{})
}

func TestCreate(t *testing.T) {
	lr := &fakeListingRepo{}
	svc := newService(lr, &fakeBookingRepo{})

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(77), resp.ID)
	assert.Equal(t, domain.ModeFullRental, resp.Mode)
	require.NotNil(t, resp.PricePerHour)
	assert.Equal(t, int64(500), *resp.PricePerHour)
	assert.True(t, resp.IsAvailable)
	require.NotNil(t, lr.created)
	assert.True(t, lr.created.IsAvailable)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateListingRequest)
	}{
		{name: "empty name", mutate: func(r *models.CreateListingRequest) { r.Name = "" }},
		{name: "unknown vehicle type", mutate: func(r *models.CreateListingRequest) { r.VehicleType = "Tractor" }},
		{name: "unknown location", mutate: func(r *models.CreateListingRequest) { r.Location = "Airport" }},
		{name: "missing contact", mutate: func(r *models.CreateListingRequest) { r.ContactPhone = "" }},
		{name: "missing price", mutate: func(r *models.CreateListingRequest) { r.PricePerHour = nil }},
		{name: "zero price", mutate: func(r *models.CreateListingRequest) { r.PricePerHour = ptr.Ptr(int64(0)) }},
		{
			name: "seat share without seats",
			mutate: func(r *models.CreateListingRequest) {
				r.Mode = domain.ModeSeatShare
				r.PricePerHour = nil
				r.PricePerSeat = ptr.Ptr(int64(800))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			svc := newService(&fakeListingRepo{}, &fakeBookingRepo{})
			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(&fakeListingRepo{}, &fakeBookingRepo{})

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestUpdate(t *testing.T) {
	lr := &fakeListingRepo{listing: fullRentalListing()}
	svc := newService(lr, &fakeBookingRepo{})

	resp, err := svc.Update(context.Background(), &models.UpdateListingRequest{
		ListingID:    10,
		UserID:       1,
		Name:         ptr.Ptr("Toyota Corolla 2022"),
		PricePerHour: ptr.Ptr(int64(600)),
	})
	require.NoError(t, err)

	assert.Equal(t, "Toyota Corolla 2022", resp.Name)
	require.NotNil(t, resp.PricePerHour)
	assert.Equal(t, int64(600), *resp.PricePerHour)
	require.NotNil(t, lr.updated)
}

func TestUpdate_NotOwner(t *testing.T) {
	lr := &fakeListingRepo{listing: fullRentalListing()}
	svc := newService(lr, &fakeBookingRepo{})

	_, err := svc.Update(context.Background(), &models.UpdateListingRequest{
		ListingID: 10,
		UserID:    2,
		Name:      ptr.Ptr("Not mine"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestSetAvailability(t *testing.T) {
	t.Run("owner restores full rental", func(t *testing.T) {
		lr := &fakeListingRepo{listing: fullRentalListing()}
		svc := newService(lr, &fakeBookingRepo{})

		err := svc.SetAvailability(context.Background(), &models.SetAvailabilityRequest{
			ListingID:   10,
			UserID:      1,
			IsAvailable: true,
		})
		require.NoError(t, err)
		require.NotNil(t, lr.availabilitySet)
		assert.True(t, *lr.availabilitySet)
	})

	t.Run("seat share rejected", func(t *testing.T) {
		lr := &fakeListingRepo{listing: seatShareListing()}
		svc := newService(lr, &fakeBookingRepo{})

		err := svc.SetAvailability(context.Background(), &models.SetAvailabilityRequest{
			ListingID:   20,
			UserID:      1,
			IsAvailable: true,
		})
		assert.ErrorIs(t, err, ErrNotFullRental)
	})

	t.Run("not owner", func(t *testing.T) {
		lr := &fakeListingRepo{listing: fullRentalListing()}
		svc := newService(lr, &fakeBookingRepo{})

		err := svc.SetAvailability(context.Background(), &models.SetAvailabilityRequest{
			ListingID:   10,
			UserID:      2,
			IsAvailable: true,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		lr := &fakeListingRepo{listing: fullRentalListing()}
		svc := newService(lr, &fakeBookingRepo{})

		err := svc.Delete(context.Background(), 10, 1)
		require.NoError(t, err)
		assert.True(t, lr.deleted)
	})

	t.Run("blocked by active bookings", func(t *testing.T) {
		lr := &fakeListingRepo{listing: fullRentalListing()}
		br := &fakeBookingRepo{active: []*domain.Booking{{ID: 1, Status: domain.StatusConfirmed}}}
		svc := newService(lr, br)

		err := svc.Delete(context.Background(), 10, 1)
		assert.ErrorIs(t, err, ErrHasActiveBookings)
		assert.False(t, lr.deleted)
	})

	t.Run("not owner", func(t *testing.T) {
		lr := &fakeListingRepo{listing: fullRentalListing()}
		svc := newService(lr, &fakeBookingRepo{})

		err := svc.Delete(context.Background(), 10, 2)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
