package models

import (
	"time"

	"github.com/geargik/GearGik-BookingService/internal/domain"
)

// CreateListingRequest запрос на создание листинга
// Поля режимов взаимоисключающие: заполняется ровно одна группа
type CreateListingRequest struct {
	OwnerID      int64    `json:"ownerId"`
	Name         string   `json:"name"`
	VehicleType  string   `json:"vehicleType"`
	Location     string   `json:"location"`
	Features     []string `json:"features,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	ContactPhone string   `json:"contactPhone"`
	RegNo        string   `json:"regNo"`

	Mode domain.ListingMode `json:"mode"`

	// FullRental
	PricePerHour     *int64 `json:"pricePerHour,omitempty"`
	MaxDurationHours *int   `json:"maxDurationHours,omitempty"`

	// SeatShare
	PricePerSeat   *int64 `json:"pricePerSeat,omitempty"`
	SeatsAvailable *int   `json:"seatsAvailable,omitempty"`
}

// ToDomainListing собирает доменный листинг из запроса
// Инвариант tagged union проверяется дальше в domain.Listing.Validate
func (r *CreateListingRequest) ToDomainListing() *domain.Listing {
	l := &domain.Listing{
		OwnerID:      r.OwnerID,
		Name:         r.Name,
		VehicleType:  r.VehicleType,
		Location:     r.Location,
		Features:     r.Features,
		ImageURL:     r.ImageURL,
		ContactPhone: r.ContactPhone,
		RegNo:        r.RegNo,
		Mode:         r.Mode,
		IsAvailable:  true,
	}

	switch r.Mode {
	case domain.ModeFullRental:
		if r.PricePerHour != nil {
			l.FullRental = &domain.FullRentalTerms{
				PricePerHour:     *r.PricePerHour,
				MaxDurationHours: r.MaxDurationHours,
			}
		}
	case domain.ModeSeatShare:
		if r.PricePerSeat != nil && r.SeatsAvailable != nil {
			l.SeatShare = &domain.SeatShareTerms{
				PricePerSeat:   *r.PricePerSeat,
				SeatsAvailable: *r.SeatsAvailable,
			}
		}
	}

	return l
}

// UpdateListingRequest запрос на обновление листинга владельцем
type UpdateListingRequest struct {
	ListingID int64 `json:"listingId"`
	UserID    int64 `json:"userId"` // Инициатор - должен быть владельцем

	Name         *string  `json:"name,omitempty"`
	VehicleType  *string  `json:"vehicleType,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Features     []string `json:"features,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	ContactPhone *string  `json:"contactPhone,omitempty"`
	RegNo        *string  `json:"regNo,omitempty"`

	// Условия в рамках текущего режима листинга
	PricePerHour     *int64 `json:"pricePerHour,omitempty"`
	MaxDurationHours *int   `json:"maxDurationHours,omitempty"`
	PricePerSeat     *int64 `json:"pricePerSeat,omitempty"`
	SeatsAvailable   *int   `json:"seatsAvailable,omitempty"`
}

// SetAvailabilityRequest запрос на переключение доступности full rental
type SetAvailabilityRequest struct {
	ListingID   int64 `json:"listingId"`
	UserID      int64 `json:"userId"`
	IsAvailable bool  `json:"isAvailable"`
}

// ListingResponse модель листинга для вызывающего кода
type ListingResponse struct {
	ID           int64    `json:"id"`
	OwnerID      int64    `json:"ownerId"`
	Name         string   `json:"name"`
	VehicleType  string   `json:"vehicleType"`
	Location     string   `json:"location"`
	Features     []string `json:"features,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	ContactPhone string   `json:"contactPhone"`
	RegNo        string   `json:"regNo"`

	Mode             domain.ListingMode `json:"mode"`
	PricePerHour     *int64             `json:"pricePerHour,omitempty"`
	MaxDurationHours *int               `json:"maxDurationHours,omitempty"`
	PricePerSeat     *int64             `json:"pricePerSeat,omitempty"`
	SeatsAvailable   *int               `json:"seatsAvailable,omitempty"`

	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListingListResponse список листингов
type ListingListResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int               `json:"total"`
}

// FromDomainListing конвертирует доменный листинг в response
func FromDomainListing(l *domain.Listing) *ListingResponse {
	resp := &ListingResponse{
		ID:           l.ID,
		OwnerID:      l.OwnerID,
		Name:         l.Name,
		VehicleType:  l.VehicleType,
		Location:     l.Location,
		Features:     l.Features,
		ImageURL:     l.ImageURL,
		ContactPhone: l.ContactPhone,
		RegNo:        l.RegNo,
		Mode:         l.Mode,
		IsAvailable:  l.IsAvailable,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}

	if l.FullRental != nil {
		resp.PricePerHour = &l.FullRental.PricePerHour
		resp.MaxDurationHours = l.FullRental.MaxDurationHours
	}
	if l.SeatShare != nil {
		resp.PricePerSeat = &l.SeatShare.PricePerSeat
		resp.SeatsAvailable = &l.SeatShare.SeatsAvailable
	}

	return resp
}

// FromDomainListingList конвертирует список доменных листингов в response
func FromDomainListingList(listings []domain.Listing) *ListingListResponse {
	result := make([]ListingResponse, 0, len(listings))
	for i := range listings {
		result = append(result, *FromDomainListing(&listings[i]))
	}
	return &ListingListResponse{
		Listings: result,
		Total:    len(result),
	}
}
