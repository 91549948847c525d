package delete_vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/geargik/GearGik-BookingService/internal/api/handlers"
	"github.com/geargik/GearGik-BookingService/internal/api/middleware"
	"github.com/geargik/GearGik-BookingService/internal/service/listings"
)

const (
	msgInvalidVehicleID  = "некорректный ID транспорта"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgNotFound          = "транспорт не найден"
	msgForbidden         = "доступ запрещен"
	msgHasActiveBookings = "транспорт имеет активные бронирования"
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

// Handle DELETE /api/v1/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /vehicles/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /vehicles/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), vehicleID, userID); err != nil {
		switch {
		case errors.Is(err, listings.ErrListingNotFound):
			h.logger.Warn("DELETE /vehicles/{id} - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, listings.ErrAccessDenied):
			h.logger.Warn("DELETE /vehicles/{id} - Access denied: vehicle_id=%d, user_id=%d", vehicleID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, listings.ErrHasActiveBookings):
			h.logger.Warn("DELETE /vehicles/{id} - Vehicle has active bookings: vehicle_id=%d", vehicleID)
			handlers.RespondConflict(w, msgHasActiveBookings)

		default:
			h.logger.Error("DELETE /vehicles/{id} - Failed to delete vehicle: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /vehicles/{id} - Vehicle deleted successfully: vehicle_id=%d, user_id=%d", vehicleID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
