package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geargik/GearGik-BookingService/pkg/ptr"
)

func TestListingValidate(t *testing.T) {
	tests := []struct {
		name    string
		listing Listing
		wantErr error
	}{
		{
			name: "valid full rental",
			listing: Listing{
				Mode:       ModeFullRental,
				FullRental: &FullRentalTerms{PricePerHour: 500, MaxDurationHours: ptr.Ptr(5)},
			},
		},
		{
			name: "valid full rental without owner limit",
			listing: Listing{
				Mode:       ModeFullRental,
				FullRental: &FullRentalTerms{PricePerHour: 500},
			},
		},
		{
			name: "valid seat share",
			listing: Listing{
				Mode:      ModeSeatShare,
				SeatShare: &SeatShareTerms{PricePerSeat: 800, SeatsAvailable: 3},
			},
		},
		{
			name:    "unknown mode",
			listing: Listing{Mode: "lease"},
			wantErr: ErrInvalidListingMode,
		},
		{
			name:    "full rental without terms",
			listing: Listing{Mode: ModeFullRental},
			wantErr: ErrModeTermsMismatch,
		},
		{
			name: "both terms populated",
			listing: Listing{
				Mode:       ModeFullRental,
				FullRental: &FullRentalTerms{PricePerHour: 500},
				SeatShare:  &SeatShareTerms{PricePerSeat: 800},
			},
			wantErr: ErrModeTermsMismatch,
		},
		{
			name: "zero hourly price",
			listing: Listing{
				Mode:       ModeFullRental,
				FullRental: &FullRentalTerms{PricePerHour: 0},
			},
			wantErr: ErrInvalidPrice,
		},
		{
			name: "owner limit above platform ceiling",
			listing: Listing{
				Mode:       ModeFullRental,
				FullRental: &FullRentalTerms{PricePerHour: 500, MaxDurationHours: ptr.Ptr(25)},
			},
			wantErr: ErrInvalidDurationLimit,
		},
		{
			name: "owner limit below one hour",
			listing: Listing{
				Mode:       ModeFullRental,
				FullRental: &FullRentalTerms{PricePerHour: 500, MaxDurationHours: ptr.Ptr(0)},
			},
			wantErr: ErrInvalidDurationLimit,
		},
		{
			name: "negative seats",
			listing: Listing{
				Mode:      ModeSeatShare,
				SeatShare: &SeatShareTerms{PricePerSeat: 800, SeatsAvailable: -1},
			},
			wantErr: ErrNegativeSeats,
		},
		{
			name: "zero seats is a valid sold out state",
			listing: Listing{
				Mode:      ModeSeatShare,
				SeatShare: &SeatShareTerms{PricePerSeat: 800, SeatsAvailable: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.listing.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestListingMaxDuration(t *testing.T) {
	t.Run("owner limit wins", func(t *testing.T) {
		l := Listing{
			Mode:       ModeFullRental,
			FullRental: &FullRentalTerms{PricePerHour: 500, MaxDurationHours: ptr.Ptr(5)},
		}
		assert.Equal(t, 5, l.MaxDuration())
	})

	t.Run("platform ceiling when owner limit absent", func(t *testing.T) {
		l := Listing{
			Mode:       ModeFullRental,
			FullRental: &FullRentalTerms{PricePerHour: 500},
		}
		assert.Equal(t, MaxRentalDurationHours, l.MaxDuration())
	})
}

func TestListingUnitPrice(t *testing.T) {
	full := Listing{Mode: ModeFullRental, FullRental: &FullRentalTerms{PricePerHour: 500}}
	assert.Equal(t, int64(500), full.UnitPrice())

	share := Listing{Mode: ModeSeatShare, SeatShare: &SeatShareTerms{PricePerSeat: 800}}
	assert.Equal(t, int64(800), share.UnitPrice())
}

func TestBookingPredicates(t *testing.T) {
	t.Run("active statuses can be cancelled", func(t *testing.T) {
		for _, status := range []BookingStatus{StatusPending, StatusConfirmed} {
			b := Booking{Status: status}
			assert.True(t, b.IsActive(), "status %s", status)
			assert.True(t, b.CanBeCancelled(), "status %s", status)
		}
	})

	t.Run("terminal statuses cannot be cancelled", func(t *testing.T) {
		for _, status := range []BookingStatus{StatusRejected, StatusCompleted, StatusCancelledByRenter, StatusCancelledByOwner} {
			b := Booking{Status: status}
			assert.False(t, b.IsActive(), "status %s", status)
			assert.False(t, b.CanBeCancelled(), "status %s", status)
		}
	})
}

func TestPaymentMethodIsValid(t *testing.T) {
	assert.True(t, PaymentCash.IsValid())
	assert.True(t, PaymentJazzCash.IsValid())
	assert.True(t, PaymentEasypaisa.IsValid())
	assert.False(t, PaymentMethod("bitcoin").IsValid())
	assert.False(t, PaymentMethod("").IsValid())
}
