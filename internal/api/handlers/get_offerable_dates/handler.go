package get_offerable_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	getOfferableDates "github.com/m04kA/SMC-StorefrontService/internal/usecase/get_offerable_dates"
)

const (
	msgInvalidHorizon = "некорректное значение horizonDays"
)

type Handler struct {
	useCase GetOfferableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetOfferableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/dates
// Query params: horizonDays (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	horizonDays := 0
	if raw := r.URL.Query().Get("horizonDays"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /schedule/dates - Invalid horizonDays: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHorizon)
			return
		}
		horizonDays = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getOfferableDates.Request{HorizonDays: horizonDays})
	if err != nil {
		switch {
		case errors.Is(err, getOfferableDates.ErrInvalidInput):
			h.logger.Warn("GET /schedule/dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHorizon)

		default:
			h.logger.Error("GET /schedule/dates - Failed to compute dates: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/dates - Dates retrieved successfully: dates_count=%d", len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
