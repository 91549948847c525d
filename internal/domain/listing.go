package domain

import "time"

// ListingMode defines the pricing scheme of a listing.
// A listing is in exactly one mode; the terms of the other mode are absent.
type ListingMode string

const (
	// ModeFullRental hourly rental of the whole vehicle
	ModeFullRental ListingMode = "full_rental"
	// ModeSeatShare per-seat booking in a shared ride
	ModeSeatShare ListingMode = "seat_share"
)

// IsValid returns true if the mode is one of the recognized values
func (m ListingMode) IsValid() bool {
	return m == ModeFullRental || m == ModeSeatShare
}

// FullRentalTerms pricing terms for a full hourly rental
type FullRentalTerms struct {
	PricePerHour int64 // Цена за час в целых рупиях
	// MaxDurationHours максимальная длительность аренды
	// nil означает отсутствие ограничения владельца (действует платформенный потолок)
	MaxDurationHours *int
}

// SeatShareTerms pricing terms for a shared-ride listing
type SeatShareTerms struct {
	PricePerSeat   int64
	SeatsAvailable int // Уменьшается при каждом принятом бронировании, не бывает отрицательным
}

// Listing represents a vehicle or shared-ride offer in the catalog.
// Exactly one of FullRental / SeatShare is populated, discriminated by Mode.
type Listing struct {
	ID          int64
	OwnerID     int64
	Name        string
	VehicleType string
	Location    string
	Features    []string
	ImageURL    *string

	// Owner contact shown to renters after booking
	ContactPhone string
	RegNo        string

	Mode       ListingMode
	FullRental *FullRentalTerms
	SeatShare  *SeatShareTerms

	// IsAvailable is false once a full rental has an active booking.
	// Seat-share listings have no binary state, only the seat counter.
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UnitPrice returns the mode-appropriate unit price (per hour or per seat)
func (l *Listing) UnitPrice() int64 {
	switch l.Mode {
	case ModeFullRental:
		if l.FullRental != nil {
			return l.FullRental.PricePerHour
		}
	case ModeSeatShare:
		if l.SeatShare != nil {
			return l.SeatShare.PricePerSeat
		}
	}
	return 0
}

// MaxDuration returns the effective duration limit in hours for a full rental.
// An owner limit, when set, is already capped by the platform ceiling.
func (l *Listing) MaxDuration() int {
	if l.Mode == ModeFullRental && l.FullRental != nil && l.FullRental.MaxDurationHours != nil {
		return *l.FullRental.MaxDurationHours
	}
	return MaxRentalDurationHours
}

// IsOwnedBy returns true if the listing belongs to the given user
func (l *Listing) IsOwnedBy(userID int64) bool {
	return l.OwnerID == userID
}

// Validate checks the tagged-union invariant and per-mode constraints
func (l *Listing) Validate() error {
	if !l.Mode.IsValid() {
		return ErrInvalidListingMode
	}

	switch l.Mode {
	case ModeFullRental:
		if l.FullRental == nil || l.SeatShare != nil {
			return ErrModeTermsMismatch
		}
		if l.FullRental.PricePerHour <= 0 {
			return ErrInvalidPrice
		}
		if l.FullRental.MaxDurationHours != nil {
			if *l.FullRental.MaxDurationHours < 1 || *l.FullRental.MaxDurationHours > MaxRentalDurationHours {
				return ErrInvalidDurationLimit
			}
		}
	case ModeSeatShare:
		if l.SeatShare == nil || l.FullRental != nil {
			return ErrModeTermsMismatch
		}
		if l.SeatShare.PricePerSeat <= 0 {
			return ErrInvalidPrice
		}
		if l.SeatShare.SeatsAvailable < 0 {
			return ErrNegativeSeats
		}
	}

	return nil
}
