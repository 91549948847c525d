package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geargik/GearGik-BookingService/internal/domain"
	"github.com/geargik/GearGik-BookingService/pkg/ptr"
)

func fullRental(id int64, vehicleType string, pricePerHour int64, maxHours *int) domain.Listing {
	return domain.Listing{
		ID:          id,
		OwnerID:     100,
		Name:        "Test Car",
		VehicleType: vehicleType,
		Mode:        domain.ModeFullRental,
		FullRental:  &domain.FullRentalTerms{PricePerHour: pricePerHour, MaxDurationHours: maxHours},
		IsAvailable: true,
	}
}

func seatShare(id int64, vehicleType string, pricePerSeat int64, seats int) domain.Listing {
	return domain.Listing{
		ID:          id,
		OwnerID:     100,
		Name:        "Test Ride",
		VehicleType: vehicleType,
		Mode:        domain.ModeSeatShare,
		SeatShare:   &domain.SeatShareTerms{PricePerSeat: pricePerSeat, SeatsAvailable: seats},
		IsAvailable: true,
	}
}

func validIntent(quantity int) BookingIntent {
	return BookingIntent{
		ListingID:      1,
		Quantity:       quantity,
		Contact:        ContactInfo{Phone: "03001234567", RegNo: "2021-CS-042"},
		PaymentMethod:  domain.PaymentCash,
		PickupLocation: "FME",
	}
}

func TestFilterCatalog_ModeIsolation(t *testing.T) {
	catalog := []domain.Listing{
		fullRental(1, "Sedan", 500, nil),
		seatShare(2, "Van", 800, 3),
		fullRental(3, "SUV", 1000, nil),
		seatShare(4, "Sedan", 300, 1),
	}

	rentals := FilterCatalog(catalog, Criteria{Mode: domain.ModeFullRental})
	require.Len(t, rentals, 2)
	for _, l := range rentals {
		assert.Equal(t, domain.ModeFullRental, l.Mode)
	}

	rides := FilterCatalog(catalog, Criteria{Mode: domain.ModeSeatShare})
	require.Len(t, rides, 2)
	for _, l := range rides {
		assert.Equal(t, domain.ModeSeatShare, l.Mode)
	}
}

func TestFilterCatalog_SortedByUnitPriceAscending(t *testing.T) {
	catalog := []domain.Listing{
		fullRental(1, "SUV", 1000, nil),
		fullRental(2, "Sedan", 500, nil),
	}

	result := FilterCatalog(catalog, Criteria{Mode: domain.ModeFullRental, VehicleType: "All"})

	require.Len(t, result, 2)
	assert.Equal(t, int64(2), result[0].ID) // Sedan(500)
	assert.Equal(t, int64(1), result[1].ID) // SUV(1000)

	for i := 1; i < len(result); i++ {
		assert.LessOrEqual(t, result[i-1].UnitPrice(), result[i].UnitPrice())
	}
}

func TestFilterCatalog_StableOrderOnEqualPrice(t *testing.T) {
	catalog := []domain.Listing{
		fullRental(10, "Sedan", 700, nil),
		fullRental(20, "SUV", 700, nil),
		fullRental(30, "Sedan", 700, nil),
	}

	result := FilterCatalog(catalog, Criteria{Mode: domain.ModeFullRental})

	require.Len(t, result, 3)
	assert.Equal(t, int64(10), result[0].ID)
	assert.Equal(t, int64(20), result[1].ID)
	assert.Equal(t, int64(30), result[2].ID)
}

func TestFilterCatalog_VehicleTypeFilter(t *testing.T) {
	catalog := []domain.Listing{
		fullRental(1, "Sedan", 500, nil),
		fullRental(2, "SUV", 1000, nil),
	}

	suvs := FilterCatalog(catalog, Criteria{Mode: domain.ModeFullRental, VehicleType: "SUV"})
	require.Len(t, suvs, 1)
	assert.Equal(t, int64(2), suvs[0].ID)

	// Сентинел "All" и пустая строка отключают фильтр
	assert.Len(t, FilterCatalog(catalog, Criteria{Mode: domain.ModeFullRental, VehicleType: "All"}), 2)
	assert.Len(t, FilterCatalog(catalog, Criteria{Mode: domain.ModeFullRental, VehicleType: ""}), 2)
}

func TestFilterCatalog_DurationFeasibility(t *testing.T) {
	catalog := []domain.Listing{
		fullRental(1, "Sedan", 500, ptr.Ptr(3)),
		fullRental(2, "Sedan", 600, ptr.Ptr(8)),
		fullRental(3, "Sedan", 700, nil), // без лимита владельца - потолок 24
	}

	result := FilterCatalog(catalog, Criteria{Mode: domain.ModeFullRental, RequiredDurationHours: 5})

	require.Len(t, result, 2)
	assert.Equal(t, int64(2), result[0].ID)
	assert.Equal(t, int64(3), result[1].ID)
}

func TestFilterCatalog_SeatShareRequiresFreeSeats(t *testing.T) {
	catalog := []domain.Listing{
		seatShare(1, "Van", 800, 0),
		seatShare(2, "Van", 900, 2),
	}

	result := FilterCatalog(catalog, Criteria{Mode: domain.ModeSeatShare})

	require.Len(t, result, 1)
	assert.Equal(t, int64(2), result[0].ID)
}

func TestFilterCatalog_EmptyInput(t *testing.T) {
	assert.Empty(t, FilterCatalog(nil, Criteria{Mode: domain.ModeFullRental}))
	assert.Empty(t, FilterCatalog([]domain.Listing{}, Criteria{Mode: domain.ModeSeatShare}))
}

func TestFilterCatalog_Deterministic(t *testing.T) {
	catalog := []domain.Listing{
		fullRental(1, "SUV", 1000, nil),
		fullRental(2, "Sedan", 500, ptr.Ptr(10)),
		fullRental(3, "Bike", 200, ptr.Ptr(4)),
	}
	criteria := Criteria{Mode: domain.ModeFullRental, RequiredDurationHours: 4}

	first := FilterCatalog(catalog, criteria)
	second := FilterCatalog(catalog, criteria)

	assert.Equal(t, first, second)
}

func TestQuoteCost_FullRental(t *testing.T) {
	listing := fullRental(1, "Sedan", 500, ptr.Ptr(5))

	total, err := QuoteCost(listing, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), total)

	_, err = QuoteCost(listing, 6)
	assert.ErrorIs(t, err, ErrDurationExceedsLimit)
}

func TestQuoteCost_FullRentalPlatformCeiling(t *testing.T) {
	listing := fullRental(1, "Sedan", 1500, nil)

	// Без лимита владельца действует платформенный потолок 24 часа
	total, err := QuoteCost(listing, 24)
	require.NoError(t, err)
	assert.Equal(t, int64(36000), total)

	_, err = QuoteCost(listing, 25)
	assert.ErrorIs(t, err, ErrDurationExceedsLimit)
}

func TestQuoteCost_SeatShare(t *testing.T) {
	listing := seatShare(1, "Van", 800, 2)

	total, err := QuoteCost(listing, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1600), total)

	_, err = QuoteCost(listing, 3)
	assert.ErrorIs(t, err, ErrInsufficientSeats)
}

func TestQuoteCost_QuantityBelowOne(t *testing.T) {
	listing := fullRental(1, "Sedan", 500, nil)

	_, err := QuoteCost(listing, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = QuoteCost(listing, -3)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestQuoteCost_Idempotent(t *testing.T) {
	listing := fullRental(1, "Sedan", 500, nil)

	first, err := QuoteCost(listing, 4)
	require.NoError(t, err)
	second, err := QuoteCost(listing, 4)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(2000), first)
}

func TestValidateBookingIntent_Success(t *testing.T) {
	listing := fullRental(1, "Sedan", 500, ptr.Ptr(5))

	req, err := ValidateBookingIntent(validIntent(4), listing)
	require.NoError(t, err)

	assert.Equal(t, listing.ID, req.ListingID)
	assert.Equal(t, domain.ModeFullRental, req.Mode)
	assert.Equal(t, 4, req.Quantity)
	assert.Equal(t, int64(500), req.UnitPrice)
	assert.Equal(t, int64(2000), req.TotalCost)
	assert.Equal(t, domain.PaymentCash, req.PaymentMethod)
}

func TestValidateBookingIntent_UnavailableFullRental(t *testing.T) {
	listing := fullRental(1, "Sedan", 500, ptr.Ptr(5))
	listing.IsAvailable = false

	// Недоступный листинг отклоняется независимо от запрошенной длительности
	for _, hours := range []int{1, 3, 5, 6} {
		_, err := ValidateBookingIntent(validIntent(hours), listing)
		assert.ErrorIs(t, err, ErrListingUnavailable)
	}
}

func TestValidateBookingIntent_SeatShareNoSeats(t *testing.T) {
	listing := seatShare(1, "Van", 800, 0)

	_, err := ValidateBookingIntent(validIntent(1), listing)
	assert.ErrorIs(t, err, ErrListingUnavailable)
}

func TestValidateBookingIntent_MissingContactInfo(t *testing.T) {
	listing := fullRental(1, "Sedan", 500, nil)

	intent := validIntent(2)
	intent.Contact.Phone = ""
	_, err := ValidateBookingIntent(intent, listing)
	assert.ErrorIs(t, err, ErrMissingContactInfo)

	intent = validIntent(2)
	intent.Contact.RegNo = ""
	_, err = ValidateBookingIntent(intent, listing)
	assert.ErrorIs(t, err, ErrMissingContactInfo)
}

func TestValidateBookingIntent_InsufficientSeats(t *testing.T) {
	listing := seatShare(1, "Van", 800, 2)

	_, err := ValidateBookingIntent(validIntent(3), listing)
	assert.ErrorIs(t, err, ErrInsufficientSeats)
}

func TestValidateBookingIntent_InvalidPaymentMethod(t *testing.T) {
	listing := fullRental(1, "Sedan", 500, nil)

	intent := validIntent(2)
	intent.PaymentMethod = "bitcoin"
	_, err := ValidateBookingIntent(intent, listing)
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestValidateBookingIntent_CheckOrder(t *testing.T) {
	// Недоступность проверяется раньше контактов и способа оплаты
	listing := fullRental(1, "Sedan", 500, nil)
	listing.IsAvailable = false

	intent := validIntent(2)
	intent.Contact.Phone = ""
	intent.PaymentMethod = "bitcoin"

	_, err := ValidateBookingIntent(intent, listing)
	assert.ErrorIs(t, err, ErrListingUnavailable)

	// Контакты проверяются раньше количества и способа оплаты
	listing.IsAvailable = true
	_, err = ValidateBookingIntent(intent, listing)
	assert.ErrorIs(t, err, ErrMissingContactInfo)

	// Количество проверяется раньше способа оплаты
	intent.Contact.Phone = "03001234567"
	intent.Quantity = 48
	_, err = ValidateBookingIntent(intent, listing)
	assert.ErrorIs(t, err, ErrDurationExceedsLimit)
}

func TestValidateBookingIntent_Deterministic(t *testing.T) {
	listing := seatShare(1, "Van", 800, 2)
	intent := validIntent(2)

	first, err1 := ValidateBookingIntent(intent, listing)
	second, err2 := ValidateBookingIntent(intent, listing)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}
