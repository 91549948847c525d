package list_vehicles

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/geargik/GearGik-BookingService/internal/api/handlers"
	"github.com/geargik/GearGik-BookingService/internal/domain"
	listCatalog "github.com/geargik/GearGik-BookingService/internal/usecase/list_catalog"
)

const (
	msgInvalidMode     = "некорректный режим листинга, ожидается full_rental или seat_share"
	msgInvalidDuration = "некорректное значение minDurationHours"
)

type Handler struct {
	useCase ListCatalogUseCase
	logger  Logger
}

func NewHandler(useCase ListCatalogUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles?mode=full_rental&type=Sedan&minDurationHours=5
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Режим обязателен: каталог никогда не смешивает full rental и seat share
	mode := domain.ListingMode(query.Get("mode"))
	if mode != domain.ModeFullRental && mode != domain.ModeSeatShare {
		h.logger.Warn("GET /vehicles - Invalid mode: %q", query.Get("mode"))
		handlers.RespondBadRequest(w, msgInvalidMode)
		return
	}

	vehicleType := query.Get("type")

	requiredDuration := 0
	if raw := query.Get("minDurationHours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /vehicles - Invalid minDurationHours: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		requiredDuration = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &listCatalog.Request{
		Mode:                  mode,
		VehicleType:           vehicleType,
		RequiredDurationHours: requiredDuration,
	})
	if err != nil {
		switch {
		case errors.Is(err, listCatalog.ErrInvalidInput):
			h.logger.Warn("GET /vehicles - Invalid criteria: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /vehicles - Failed to list catalog: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles - Catalog listed successfully: mode=%s, type=%s, total=%d",
		mode, vehicleType, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
