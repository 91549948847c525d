package set_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/geargik/GearGik-BookingService/internal/api/handlers"
	"github.com/geargik/GearGik-BookingService/internal/api/middleware"
	"github.com/geargik/GearGik-BookingService/internal/service/listings"
	"github.com/geargik/GearGik-BookingService/internal/service/listings/models"
)

const (
	msgInvalidVehicleID   = "некорректный ID транспорта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "транспорт не найден"
	msgForbidden          = "доступ запрещен"
	msgNotFullRental      = "доступность переключается только у полной аренды"
)

type Handler struct {
	service ListingService
	logger  Logger
}

func NewHandler(service ListingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/vehicles/{vehicleId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /vehicles/{id}/availability - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /vehicles/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /vehicles/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.SetAvailability(r.Context(), &models.SetAvailabilityRequest{
		ListingID:   vehicleID,
		UserID:      userID,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, listings.ErrListingNotFound):
			h.logger.Warn("PATCH /vehicles/{id}/availability - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, listings.ErrAccessDenied):
			h.logger.Warn("PATCH /vehicles/{id}/availability - Access denied: vehicle_id=%d, user_id=%d", vehicleID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, listings.ErrNotFullRental):
			h.logger.Warn("PATCH /vehicles/{id}/availability - Not a full rental: vehicle_id=%d", vehicleID)
			handlers.RespondBadRequest(w, msgNotFullRental)

		default:
			h.logger.Error("PATCH /vehicles/{id}/availability - Failed to set availability: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /vehicles/{id}/availability - Availability updated: vehicle_id=%d, available=%v",
		vehicleID, req.IsAvailable)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
