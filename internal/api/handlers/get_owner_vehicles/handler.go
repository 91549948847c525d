package get_owner_vehicles

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/geargik/GearGik-BookingService/internal/api/handlers"
	"github.com/geargik/GearGik-BookingService/internal/api/middleware"
)

const (
	msgInvalidOwnerID = "некорректный ID владельца"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
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

// Handle GET /api/v1/owners/{ownerId}/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ownerID, err := strconv.ParseInt(vars["ownerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /owners/{id}/vehicles - Invalid owner ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOwnerID)
		return
	}

	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /owners/{id}/vehicles - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Свой гараж (включая недоступные листинги) видит только владелец
	if ownerID != authUserID {
		h.logger.Warn("GET /owners/{id}/vehicles - Access denied: owner_id=%d, user_id=%d", ownerID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetByOwner(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("GET /owners/{id}/vehicles - Failed to get vehicles: owner_id=%d, error=%v", ownerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /owners/{id}/vehicles - Vehicles retrieved successfully: owner_id=%d, total=%d",
		ownerID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
