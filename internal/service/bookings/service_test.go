package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geargik/GearGik-BookingService/internal/domain"
	bookingRepo "github.com/geargik/GearGik-BookingService/internal/infra/storage/booking"
	"github.com/geargik/GearGik-BookingService/internal/service/bookings/models"
	"github.com/geargik/GearGik-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	booking *domain.Booking
	list    []*domain.Booking

	// snapshot, если задан, отдается из GetByID вместо текущей строки -
	// имитация устаревшего чтения при конкурентных запросах
	snapshot *domain.Booking

	cancelledWith domain.BookingStatus
	cancelReason  string
	updatedStatus domain.BookingStatus

	lastRenterFilter *domain.BookingStatus
	lastOwnerFilter  domain.OwnerBookingsFilter
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b := f.booking
	if f.snapshot != nil {
		b = f.snapshot
	}
	if b == nil || b.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByRenterID(_ context.Context, _ int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.lastRenterFilter = status
	return f.list, nil
}

func (f *fakeBookingRepo) GetByOwnerWithFilter(_ context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error) {
	f.lastOwnerFilter = filter
	return f.list, nil
}

// UpdateStatus воспроизводит guard репозитория: переход проходит только
// из ожидаемого исходного статуса
func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, from, to domain.BookingStatus) error {
	if f.booking == nil || f.booking.Status != from {
		return bookingRepo.ErrStatusConflict
	}
	f.booking.Status = to
	f.updatedStatus = to
	return nil
}

// Cancel воспроизводит guard репозитория: отменяются только активные
func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, status domain.BookingStatus, reason string) error {
	if f.booking == nil || !f.booking.IsActive() {
		return bookingRepo.ErrStatusConflict
	}
	f.booking.Status = status
	f.cancelledWith = status
	f.cancelReason = reason
	return nil
}

type fakeListingRepo struct {
	availabilitySet  *bool
	seatsIncremented int
}

func (f *fakeListingRepo) SetAvailability(_ context.Context, _ int64, available bool) error {
	f.availabilitySet = &available
	return nil
}

func (f *fakeListingRepo) IncrementSeats(_ context.Context, _ int64, count int) error {
	f.seatsIncremented += count
	return nil
}

func pendingFullRental() *domain.Booking {
	return &domain.Booking{
		ID:        1,
		ListingID: 10,
		RenterID:  2,
		OwnerID:   3,
		Mode:      domain.ModeFullRental,
		Quantity:  4,
		UnitPrice: 500,
		TotalCost: 2000,
		Status:    domain.StatusPending,
	}
}

func confirmedSeatShare() *domain.Booking {
	return &domain.Booking{
		ID:        2,
		ListingID: 20,
		RenterID:  2,
		OwnerID:   3,
		Mode:      domain.ModeSeatShare,
		Quantity:  2,
		UnitPrice: 800,
		TotalCost: 1600,
		Status:    domain.StatusConfirmed,
	}
}

func newService(br *fakeBookingRepo, lr *fakeListingRepo) *Service {
	return NewService(br, lr, fakeTxManager{}, nopLogger{})
}

func TestGetByID(t *testing.T) {
	br := &fakeBookingRepo{booking: pendingFullRental()}
	svc := newService(br, &fakeListingRepo{})

	t.Run("renter can read", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("owner can read", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 3)
		assert.NoError(t, err)
	})

	t.Run("stranger denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 42, 2)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetRenterBookings(t *testing.T) {
	br := &fakeBookingRepo{list: []*domain.Booking{pendingFullRental(), confirmedSeatShare()}}
	svc := newService(br, &fakeListingRepo{})

	resp, err := svc.GetRenterBookings(context.Background(), &models.GetRenterBookingsRequest{
		RenterID: 2,
		Status:   ptr.Ptr("pending"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	require.NotNil(t, br.lastRenterFilter)
	assert.Equal(t, domain.StatusPending, *br.lastRenterFilter)
}

func TestGetRenterBookings_InvalidStatus(t *testing.T) {
	svc := newService(&fakeBookingRepo{}, &fakeListingRepo{})

	_, err := svc.GetRenterBookings(context.Background(), &models.GetRenterBookingsRequest{
		RenterID: 2,
		Status:   ptr.Ptr("unknown"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetOwnerBookings(t *testing.T) {
	br := &fakeBookingRepo{list: []*domain.Booking{pendingFullRental()}}
	svc := newService(br, &fakeListingRepo{})

	resp, err := svc.GetOwnerBookings(context.Background(), &models.GetOwnerBookingsRequest{
		OwnerID:         3,
		UserID:          3,
		ListingID:       ptr.Ptr(int64(10)),
		IncludeInactive: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(3), br.lastOwnerFilter.OwnerID)
	require.NotNil(t, br.lastOwnerFilter.ListingID)
	assert.Equal(t, int64(10), *br.lastOwnerFilter.ListingID)
	assert.True(t, br.lastOwnerFilter.IncludeInactive)
}

func TestGetOwnerBookings_OnlyOwnerHimself(t *testing.T) {
	svc := newService(&fakeBookingRepo{}, &fakeListingRepo{})

	_, err := svc.GetOwnerBookings(context.Background(), &models.GetOwnerBookingsRequest{
		OwnerID: 3,
		UserID:  2,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_ByRenterReleasesFullRental(t *testing.T) {
	br := &fakeBookingRepo{booking: pendingFullRental()}
	lr := &fakeListingRepo{}
	svc := newService(br, lr)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             2,
		CancellationReason: "планы изменились",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelledByRenter, br.cancelledWith)
	assert.Equal(t, "планы изменились", br.cancelReason)
	require.NotNil(t, lr.availabilitySet)
	assert.True(t, *lr.availabilitySet)
}

func TestCancel_ByOwnerRestoresSeats(t *testing.T) {
	br := &fakeBookingRepo{booking: confirmedSeatShare()}
	lr := &fakeListingRepo{}
	svc := newService(br, lr)

	err := svc.Cancel(context.Background(), 2, &models.CancelBookingRequest{UserID: 3})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelledByOwner, br.cancelledWith)
	assert.Equal(t, 2, lr.seatsIncremented)
	assert.Nil(t, lr.availabilitySet)
}

func TestCancel_StrangerDenied(t *testing.T) {
	br := &fakeBookingRepo{booking: pendingFullRental()}
	svc := newService(br, &fakeListingRepo{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_TerminalStatus(t *testing.T) {
	done := pendingFullRental()
	done.Status = domain.StatusCompleted
	br := &fakeBookingRepo{booking: done}
	svc := newService(br, &fakeListingRepo{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 2})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

// Два конкурентных запроса отмены читают одно и то же активное
// бронирование; охраняемый UPDATE пропускает только первый, поэтому
// места возвращаются листингу ровно один раз
func TestCancel_RepeatedCancelReleasesSeatsOnce(t *testing.T) {
	br := &fakeBookingRepo{booking: confirmedSeatShare(), snapshot: confirmedSeatShare()}
	lr := &fakeListingRepo{}
	svc := newService(br, lr)

	require.NoError(t, svc.Cancel(context.Background(), 2, &models.CancelBookingRequest{UserID: 2}))

	err := svc.Cancel(context.Background(), 2, &models.CancelBookingRequest{UserID: 2})
	assert.ErrorIs(t, err, ErrCannotCancel)

	assert.Equal(t, 2, lr.seatsIncremented)
}

// Отклонение владельцем проигрывает гонку отмене арендатором:
// переход не применяется и листинг не освобождается второй раз
func TestUpdateStatus_LostRaceDoesNotReleaseListing(t *testing.T) {
	b := pendingFullRental()
	b.Status = domain.StatusCancelledByRenter
	br := &fakeBookingRepo{booking: b, snapshot: pendingFullRental()}
	lr := &fakeListingRepo{}
	svc := newService(br, lr)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: 3,
		Status: "rejected",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	assert.Nil(t, lr.availabilitySet)
	assert.Zero(t, lr.seatsIncremented)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	br := &fakeBookingRepo{booking: pendingFullRental()}
	svc := newService(br, &fakeListingRepo{})

	long := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range long {
		long[i] = 'x'
	}

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             2,
		CancellationReason: string(long),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{name: "pending to confirmed", from: domain.StatusPending, to: "confirmed"},
		{name: "pending to rejected", from: domain.StatusPending, to: "rejected"},
		{name: "confirmed to completed", from: domain.StatusConfirmed, to: "completed"},
		{name: "pending to completed", from: domain.StatusPending, to: "completed", wantErr: ErrInvalidTransition},
		{name: "confirmed to rejected", from: domain.StatusConfirmed, to: "rejected", wantErr: ErrInvalidTransition},
		{name: "completed is terminal", from: domain.StatusCompleted, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "unknown status", from: domain.StatusPending, to: "paused", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := pendingFullRental()
			b.Status = tt.from
			br := &fakeBookingRepo{booking: b}
			svc := newService(br, &fakeListingRepo{})

			err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
				UserID: 3,
				Status: tt.to,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatus(tt.to), br.updatedStatus)
		})
	}
}

func TestUpdateStatus_OnlyOwner(t *testing.T) {
	br := &fakeBookingRepo{booking: pendingFullRental()}
	svc := newService(br, &fakeListingRepo{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: 2, // арендатор, не владелец
		Status: "confirmed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_RejectReleasesListing(t *testing.T) {
	br := &fakeBookingRepo{booking: pendingFullRental()}
	lr := &fakeListingRepo{}
	svc := newService(br, lr)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: 3,
		Status: "rejected",
	})
	require.NoError(t, err)

	require.NotNil(t, lr.availabilitySet)
	assert.True(t, *lr.availabilitySet)
}

// Завершение full rental не возвращает доступность: владелец делает
// это явным действием make available
func TestUpdateStatus_CompleteDoesNotRestoreAvailability(t *testing.T) {
	b := pendingFullRental()
	b.Status = domain.StatusConfirmed
	br := &fakeBookingRepo{booking: b}
	lr := &fakeListingRepo{}
	svc := newService(br, lr)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: 3,
		Status: "completed",
	})
	require.NoError(t, err)

	assert.Nil(t, lr.availabilitySet)
	assert.Zero(t, lr.seatsIncremented)
}
