package create_booking

import (
	"errors"
	"net/http"

	"github.com/geargik/GearGik-BookingService/internal/api/handlers"
	"github.com/geargik/GearGik-BookingService/internal/api/middleware"
	"github.com/geargik/GearGik-BookingService/internal/resolver"
	createBooking "github.com/geargik/GearGik-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgVehicleNotFound      = "транспорт не найден"
	msgVehicleUnavailable   = "транспорт недоступен для бронирования"
	msgMissingContact       = "телефон и регистрационный номер обязательны"
	msgDurationOverLimit    = "запрошенная длительность превышает лимит аренды"
	msgNotEnoughSeats       = "недостаточно свободных мест"
	msgInvalidPaymentMethod = "неподдерживаемый способ оплаты"
	msgOwnListing           = "нельзя забронировать собственный транспорт"
	msgUserNotFound         = "пользователь не найден"
	msgEmailNotVerified     = "email пользователя не подтвержден"
	msgSubmissionFailed     = "не удалось оформить бронирование, попробуйте позже"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	renterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(renterID))
	if err != nil {
		switch {
		// Проигранная гонка за листинг тоже попадает сюда: для клиента
		// это одно и то же состояние — листинг уже занят
		case errors.Is(err, resolver.ErrListingUnavailable):
			h.logger.Warn("POST /bookings - Vehicle unavailable: renter_id=%d, vehicle_id=%d", renterID, req.VehicleID)
			handlers.RespondConflict(w, msgVehicleUnavailable)

		case errors.Is(err, resolver.ErrMissingContactInfo):
			h.logger.Warn("POST /bookings - Missing contact info: renter_id=%d", renterID)
			handlers.RespondBadRequest(w, msgMissingContact)

		case errors.Is(err, resolver.ErrDurationExceedsLimit):
			h.logger.Warn("POST /bookings - Duration over limit: renter_id=%d, quantity=%d", renterID, req.Quantity)
			handlers.RespondBadRequest(w, msgDurationOverLimit)

		case errors.Is(err, resolver.ErrInsufficientSeats):
			h.logger.Warn("POST /bookings - Not enough seats: renter_id=%d, quantity=%d", renterID, req.Quantity)
			handlers.RespondBadRequest(w, msgNotEnoughSeats)

		case errors.Is(err, resolver.ErrInvalidPaymentMethod):
			h.logger.Warn("POST /bookings - Invalid payment method: renter_id=%d, method=%q", renterID, req.PaymentMethod)
			handlers.RespondBadRequest(w, msgInvalidPaymentMethod)

		case errors.Is(err, createBooking.ErrListingNotFound):
			h.logger.Warn("POST /bookings - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createBooking.ErrOwnListing):
			h.logger.Warn("POST /bookings - Own listing: renter_id=%d, vehicle_id=%d", renterID, req.VehicleID)
			handlers.RespondForbidden(w, msgOwnListing)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: renter_id=%d", renterID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrEmailNotVerified):
			h.logger.Warn("POST /bookings - Email not verified: renter_id=%d", renterID)
			handlers.RespondForbidden(w, msgEmailNotVerified)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		// Сбой отправки (identity или хранилище) отличим от ошибок
		// валидации: клиент может повторить тот же запрос
		case errors.Is(err, createBooking.ErrIdentityUnavailable):
			h.logger.Error("POST /bookings - Identity service unavailable: renter_id=%d, error=%v", renterID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgSubmissionFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: renter_id=%d, vehicle_id=%d, error=%v",
				renterID, req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, renter_id=%d, vehicle_id=%d",
		result.ID, renterID, req.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
