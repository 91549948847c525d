package quote_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/geargik/GearGik-BookingService/internal/api/handlers"
	"github.com/geargik/GearGik-BookingService/internal/resolver"
	quoteBooking "github.com/geargik/GearGik-BookingService/internal/usecase/quote_booking"
)

const (
	msgInvalidVehicleID  = "некорректный ID транспорта"
	msgInvalidQuantity   = "количество должно быть положительным числом"
	msgNotFound          = "транспорт не найден"
	msgDurationOverLimit = "запрошенная длительность превышает лимит аренды"
	msgNotEnoughSeats    = "недостаточно свободных мест"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/quote?quantity=5
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/quote - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/quote - Invalid quantity: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuantity)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &quoteBooking.Request{
		ListingID: vehicleID,
		Quantity:  quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrListingNotFound):
			h.logger.Warn("GET /vehicles/{id}/quote - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, resolver.ErrInvalidQuantity):
			h.logger.Warn("GET /vehicles/{id}/quote - Invalid quantity: vehicle_id=%d, quantity=%d", vehicleID, quantity)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		case errors.Is(err, resolver.ErrDurationExceedsLimit):
			h.logger.Warn("GET /vehicles/{id}/quote - Duration over limit: vehicle_id=%d, quantity=%d", vehicleID, quantity)
			handlers.RespondBadRequest(w, msgDurationOverLimit)

		case errors.Is(err, resolver.ErrInsufficientSeats):
			h.logger.Warn("GET /vehicles/{id}/quote - Not enough seats: vehicle_id=%d, quantity=%d", vehicleID, quantity)
			handlers.RespondBadRequest(w, msgNotEnoughSeats)

		case errors.Is(err, quoteBooking.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{id}/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		default:
			h.logger.Error("GET /vehicles/{id}/quote - Failed to quote: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{id}/quote - Quote calculated: vehicle_id=%d, quantity=%d, total=%d",
		vehicleID, quantity, result.TotalCost)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
